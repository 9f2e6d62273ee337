package evolution_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsboard/internal/client/evolution"
	"opsboard/internal/domain/integration"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testCred(baseURL string) integration.Integration {
	return integration.Integration{
		BaseURL:  baseURL,
		APIKey:   "key-1",
		Instance: "ops",
	}
}

func TestSendText_FirstStrategyWins(t *testing.T) {
	var hits []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits = append(hits, r.URL.Path)
		assert.Equal(t, "key-1", r.Header.Get("apikey"))

		var msg evolution.Message
		require.NoError(t, json.NewDecoder(r.Body).Decode(&msg))
		assert.Equal(t, "5511999990000", msg.Number)
		assert.Equal(t, "hello", msg.Text)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := evolution.NewClient(5*time.Second, testLogger())
	err := client.SendText(context.Background(), testCred(srv.URL), evolution.Message{
		Number: "5511999990000",
		Text:   "hello",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"/ops/message/sendText"}, hits)
}

func TestSendText_FallsBackToNextStrategy(t *testing.T) {
	var hits []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits = append(hits, r.URL.Path)
		if r.URL.Path == "/ops/message/sendText" && len(hits) == 1 {
			http.Error(w, "unknown route", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := evolution.NewClient(5*time.Second, testLogger())
	err := client.SendText(context.Background(), testCred(srv.URL), evolution.Message{Number: "551", Text: "x"})
	require.NoError(t, err)
	assert.Equal(t, []string{"/ops/message/sendText", "/message/sendText/ops"}, hits)
}

func TestSendText_AllStrategiesFailReturnsLastError(t *testing.T) {
	count := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		count++
		http.Error(w, "instance not connected", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := evolution.NewClient(5*time.Second, testLogger())
	err := client.SendText(context.Background(), testCred(srv.URL), evolution.Message{Number: "551", Text: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
	assert.Equal(t, len(evolution.DefaultStrategies()), count)
}

func TestDefaultStrategies_CoverAuthVariants(t *testing.T) {
	cred := testCred("https://evo.example")
	msg := evolution.Message{Number: "551", Text: "x"}

	var sawBearer, sawAPIKey bool
	for _, strat := range evolution.DefaultStrategies() {
		spec := strat.Build(cred, msg)
		assert.Contains(t, spec.URL, "https://evo.example/")
		if spec.Headers["Authorization"] != "" {
			sawBearer = true
			assert.Equal(t, "Bearer key-1", spec.Headers["Authorization"])
		}
		if spec.Headers["apikey"] != "" {
			sawAPIKey = true
		}
	}
	assert.True(t, sawBearer)
	assert.True(t, sawAPIKey)
}
