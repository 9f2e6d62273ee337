package glpi_test

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

	"opsboard/internal/client/glpi"
	"opsboard/internal/domain/integration"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCreateTicket_FullSessionFlow(t *testing.T) {
	var calls []string
	var ticketBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.URL.Path)
		switch r.URL.Path {
		case "/initSession":
			assert.Equal(t, "app-tok", r.Header.Get("App-Token"))
			assert.Equal(t, "user_token user-tok", r.Header.Get("Authorization"))
			json.NewEncoder(w).Encode(map[string]string{"session_token": "sess-1"})
		case "/Ticket":
			assert.Equal(t, "sess-1", r.Header.Get("Session-Token"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&ticketBody))
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]int{"id": 456})
		case "/killSession":
			assert.Equal(t, "sess-1", r.Header.Get("Session-Token"))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	client := glpi.NewClient(5*time.Second, testLogger())
	cred := integration.Integration{
		BaseURL:   srv.URL,
		AppToken:  "app-tok",
		UserToken: "user-tok",
	}
	assignee := int32(7)

	id, err := client.CreateTicket(context.Background(), cred, glpi.TicketInput{
		Name:       "Disk full",
		Content:    "Host srv-01",
		Urgency:    3,
		Impact:     3,
		Priority:   4,
		EntityID:   2,
		AssigneeID: &assignee,
	})
	require.NoError(t, err)
	assert.Equal(t, "456", id)
	assert.Equal(t, []string{"/initSession", "/Ticket", "/killSession"}, calls)

	input, ok := ticketBody["input"].(map[string]any)
	require.True(t, ok, "payload must nest fields under input")
	assert.Equal(t, "Disk full", input["name"])
	assert.Equal(t, float64(4), input["priority"])
	assert.Equal(t, float64(7), input["_users_id_assign"])
}

func TestCreateTicket_LoginFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad credentials", http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := glpi.NewClient(5*time.Second, testLogger())
	_, err := client.CreateTicket(context.Background(), integration.Integration{BaseURL: srv.URL}, glpi.TicketInput{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestCreateTicket_CreateFailureStillLogsOut(t *testing.T) {
	loggedOut := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/initSession":
			json.NewEncoder(w).Encode(map[string]string{"session_token": "sess-1"})
		case "/Ticket":
			http.Error(w, "right was not granted", http.StatusBadRequest)
		case "/killSession":
			loggedOut = true
		}
	}))
	defer srv.Close()

	client := glpi.NewClient(5*time.Second, testLogger())
	_, err := client.CreateTicket(context.Background(), integration.Integration{BaseURL: srv.URL}, glpi.TicketInput{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
	assert.True(t, loggedOut)
}

func TestCreateTicket_LogoutFailureIsSwallowed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/initSession":
			json.NewEncoder(w).Encode(map[string]string{"session_token": "sess-1"})
		case "/Ticket":
			json.NewEncoder(w).Encode(map[string]int{"id": 9})
		case "/killSession":
			http.Error(w, "session already gone", http.StatusBadRequest)
		}
	}))
	defer srv.Close()

	client := glpi.NewClient(5*time.Second, testLogger())
	id, err := client.CreateTicket(context.Background(), integration.Integration{BaseURL: srv.URL}, glpi.TicketInput{})
	require.NoError(t, err)
	assert.Equal(t, "9", id)
}

func TestCreateTicket_EmptySessionToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer srv.Close()

	client := glpi.NewClient(5*time.Second, testLogger())
	_, err := client.CreateTicket(context.Background(), integration.Integration{BaseURL: srv.URL}, glpi.TicketInput{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty session token")
}
