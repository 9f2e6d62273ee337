// Package glpi talks to a GLPI-style REST API. Every authenticated call rides
// on a short-lived session token obtained via initSession and released via
// killSession; logout failures are swallowed since sessions expire on their own.
package glpi

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
	http   *http.Client
	logger *slog.Logger
}

func NewClient(timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		http:   &http.Client{Timeout: timeout},
		logger: logger,
	}
}

type TicketInput struct {
	Name       string
	Content    string
	Urgency    int32
	Impact     int32
	Priority   int32
	EntityID   int32
	AssigneeID *int32
}

type sessionResponse struct {
	SessionToken string `json:"session_token"`
}

type createTicketResponse struct {
	ID json.Number `json:"id"`
}

// CreateTicket logs in, creates one ticket, and logs out.
// Returns the externally-assigned ticket id.
func (c *Client) CreateTicket(ctx context.Context, cred integration.Integration, in TicketInput) (string, error) {
	token, err := c.initSession(ctx, cred)
	if err != nil {
		return "", err
	}
	defer c.killSession(ctx, cred, token)

	payload := map[string]any{
		"input": buildTicketBody(in),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", errs.Wrap(err, "marshal ticket payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, joinURL(cred.BaseURL, "/Ticket"), bytes.NewReader(body))
	if err != nil {
		return "", errs.Wrap(err, "build ticket request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("App-Token", cred.AppToken)
	req.Header.Set("Session-Token", token)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", errs.Wrap(err, "create ticket request failed")
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 8192))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errs.Newf("GLPI API error: status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var created createTicketResponse
	if err := json.Unmarshal(respBody, &created); err != nil {
		return "", errs.Wrap(err, "decode create ticket response")
	}
	return created.ID.String(), nil
}

func (c *Client) initSession(ctx context.Context, cred integration.Integration) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, joinURL(cred.BaseURL, "/initSession"), nil)
	if err != nil {
		return "", errs.Wrap(err, "build initSession request")
	}
	req.Header.Set("App-Token", cred.AppToken)
	req.Header.Set("Authorization", "user_token "+cred.UserToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", errs.Wrap(err, "initSession request failed")
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 8192))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errs.Newf("GLPI login failed: status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var session sessionResponse
	if err := json.Unmarshal(respBody, &session); err != nil {
		return "", errs.Wrap(err, "decode initSession response")
	}
	if session.SessionToken == "" {
		return "", errs.New("GLPI login returned empty session token")
	}
	return session.SessionToken, nil
}

// killSession is best-effort cleanup; the session expires server-side anyway.
func (c *Client) killSession(ctx context.Context, cred integration.Integration, token string) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, joinURL(cred.BaseURL, "/killSession"), nil)
	if err != nil {
		return
	}
	req.Header.Set("App-Token", cred.AppToken)
	req.Header.Set("Session-Token", token)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("GLPI killSession failed", "error", err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("GLPI killSession returned non-2xx", "status", resp.StatusCode)
	}
}

func buildTicketBody(in TicketInput) map[string]any {
	body := map[string]any{
		"name":        in.Name,
		"content":     in.Content,
		"urgency":     in.Urgency,
		"impact":      in.Impact,
		"priority":    in.Priority,
		"entities_id": in.EntityID,
		"status":      1, // new
		"type":        1, // incident
	}
	if in.AssigneeID != nil {
		body["_users_id_assign"] = *in.AssigneeID
	}
	return body
}

func joinURL(base, path string) string {
	return strings.TrimRight(base, "/") + path
}
