// Package evolution sends WhatsApp text messages through an Evolution-style
// chat gateway.
package evolution

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"opsboard/internal/domain/integration"
	"opsboard/internal/pkg/errs"
)

type Client struct {
	http       *http.Client
	logger     *slog.Logger
	strategies []Strategy
}

func NewClient(timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		http:       &http.Client{Timeout: timeout},
		logger:     logger,
		strategies: DefaultStrategies(),
	}
}

// SendText delivers one text message, walking the strategy list until a 2xx.
// The returned error is the last strategy's failure when all of them miss.
func (c *Client) SendText(ctx context.Context, cred integration.Integration, msg Message) error {
	var lastErr error
	for _, strat := range c.strategies {
		spec := strat.Build(cred, msg)
		err := c.post(ctx, spec)
		if err == nil {
			return nil
		}
		lastErr = err
		c.logger.Debug("evolution send strategy failed",
			"strategy", strat.Name, "error", err)
	}
	if lastErr == nil {
		lastErr = errs.New("no send strategies configured")
	}
	return lastErr
}

func (c *Client) post(ctx context.Context, spec RequestSpec) error {
	body, err := json.Marshal(spec.Body)
	if err != nil {
		return errs.Wrap(err, "marshal message payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, spec.URL, bytes.NewReader(body))
	if err != nil {
		return errs.Wrap(err, "build send request")
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range spec.Headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errs.Wrap(err, "send request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 8192))
		return errs.Newf("Evolution API error: status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}
	return nil
}
