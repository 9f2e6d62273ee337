package evolution

import (
	"strings"

	"opsboard/internal/domain/integration"
)

// Evolution deployments disagree on endpoint layout and auth header. Each
// strategy is a pure request builder; the client tries them in order and the
// first 2xx wins.

type Message struct {
	Number string `json:"number"`
	Text   string `json:"text"`
}

type RequestSpec struct {
	URL     string
	Headers map[string]string
	Body    any
}

type Strategy struct {
	Name  string
	Build func(cred integration.Integration, msg Message) RequestSpec
}

func DefaultStrategies() []Strategy {
	return []Strategy{
		{
			Name: "instance-path apikey",
			Build: func(cred integration.Integration, msg Message) RequestSpec {
				return RequestSpec{
					URL:     joinURL(cred.BaseURL, "/"+cred.Instance+"/message/sendText"),
					Headers: map[string]string{"apikey": cred.APIKey},
					Body:    msg,
				}
			},
		},
		{
			Name: "sendText-path apikey",
			Build: func(cred integration.Integration, msg Message) RequestSpec {
				return RequestSpec{
					URL:     joinURL(cred.BaseURL, "/message/sendText/"+cred.Instance),
					Headers: map[string]string{"apikey": cred.APIKey},
					Body:    msg,
				}
			},
		},
		{
			Name: "instance-path bearer",
			Build: func(cred integration.Integration, msg Message) RequestSpec {
				return RequestSpec{
					URL:     joinURL(cred.BaseURL, "/"+cred.Instance+"/message/sendText"),
					Headers: map[string]string{"Authorization": "Bearer " + cred.APIKey},
					Body:    msg,
				}
			},
		},
		{
			Name: "instance-path apikey nested-text",
			Build: func(cred integration.Integration, msg Message) RequestSpec {
				return RequestSpec{
					URL:     joinURL(cred.BaseURL, "/"+cred.Instance+"/message/sendText"),
					Headers: map[string]string{"apikey": cred.APIKey},
					Body: map[string]any{
						"number":      msg.Number,
						"textMessage": map[string]string{"text": msg.Text},
					},
				}
			},
		},
	}
}

func joinURL(base, path string) string {
	return strings.TrimRight(base, "/") + path
}
