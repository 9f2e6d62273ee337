package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"opsboard/internal/analytics"
	"opsboard/internal/client/evolution"
	"opsboard/internal/client/glpi"
	"opsboard/internal/domain/integration"
	"opsboard/internal/domain/job"
	"opsboard/internal/domain/webhook"
	"opsboard/internal/infra"
	"opsboard/internal/metrics"
	"opsboard/internal/pkg/clock"
	"opsboard/internal/pkg/errs"
)

// ErrMalformedPayload marks a non-empty body that is not valid JSON.
var ErrMalformedPayload = errs.New("malformed webhook payload")

const (
	actionCreateTicket = "create_ticket"
	actionSendMessage  = "send_message"
)

// FanoutResult is the summary returned to the webhook caller.
type FanoutResult struct {
	Success           bool
	Message           string
	TriggerType       webhook.TriggerType
	ProcessedWebhooks int
	Results           []webhook.SubscriptionResult
}

// WebhookFanout dispatches one inbound alert to every matching subscription.
type WebhookFanout interface {
	Handle(ctx context.Context, body []byte) (*FanoutResult, error)
}

type fanoutImpl struct {
	subs    SubscriptionStore
	creds   CredentialStore
	glpi    TicketCreator
	sender  MessageSender
	runLogs RunLogStore
	clock   clock.Clock
	logger  *slog.Logger
	metrics metrics.Sink
	feed    analytics.Sink
}

func NewWebhookFanout(
	subs SubscriptionStore,
	creds CredentialStore,
	glpiClient TicketCreator,
	sender MessageSender,
	runLogs RunLogStore,
	clk clock.Clock,
	logger *slog.Logger,
	sink metrics.Sink,
	feed analytics.Sink,
) WebhookFanout {
	return &fanoutImpl{
		subs:    subs,
		creds:   creds,
		glpi:    glpiClient,
		sender:  sender,
		runLogs: runLogs,
		clock:   clk,
		logger:  logger,
		metrics: sink,
		feed:    feed,
	}
}

func (uc *fanoutImpl) Handle(ctx context.Context, body []byte) (*FanoutResult, error) {
	alert, err := webhook.ParseAlert(body)
	if err != nil {
		return nil, errs.Mark(err, ErrMalformedPayload)
	}
	trigger := alert.TriggerTypeOf()
	now := uc.clock.Now()

	uc.metrics.WebhookReceived(string(trigger))
	uc.logger.Info("webhook received",
		"trigger", trigger, "subject", alert.Subject, "host", alert.Host)

	subs, err := uc.subs.FindActiveByTrigger(ctx, trigger)
	if err != nil {
		uc.logger.Error("webhook fanout aborted", "error", err)
		_ = uc.runLogs.Insert(ctx, job.PipelineWebhookFanout, job.RunCriticalError, map[string]any{
			"timestamp": now,
			"error":     err.Error(),
		})
		return nil, err
	}

	results := make([]webhook.SubscriptionResult, 0, len(subs))
	for _, sub := range subs {
		// Counter moves on match, before any side effect is attempted.
		if terr := uc.subs.RecordTrigger(ctx, sub.ID, now); terr != nil {
			uc.logger.Error("failed to record trigger", "subscription", sub.Name, "error", terr)
		}
		results = append(results, uc.dispatch(ctx, sub, alert))
	}

	_ = uc.runLogs.Insert(ctx, job.PipelineWebhookFanout, job.RunCompleted, map[string]any{
		"timestamp":          now,
		"trigger_type":       string(trigger),
		"processed_webhooks": len(subs),
		"results":            results,
	})
	if uc.feed != nil {
		uc.feed.Record(ctx, analytics.Event{
			Kind:      "webhook_received",
			Trigger:   string(trigger),
			Detail:    alert.Subject,
			Timestamp: now,
		})
	}

	return &FanoutResult{
		Success:           true,
		Message:           fmt.Sprintf("Processados %d webhooks", len(subs)),
		TriggerType:       trigger,
		ProcessedWebhooks: len(subs),
		Results:           results,
	}, nil
}

// dispatch attempts each configured action independently; one action's failure
// never blocks the other, nor other subscriptions.
func (uc *fanoutImpl) dispatch(ctx context.Context, sub *webhook.Subscription, alert webhook.Alert) webhook.SubscriptionResult {
	out := webhook.SubscriptionResult{SubscriptionID: sub.ID, Name: sub.Name}

	if sub.Actions.CreateTicket {
		out.Actions = append(out.Actions, uc.createTicket(ctx, sub, alert))
	}
	if sub.Actions.SendMessage {
		out.Actions = append(out.Actions, uc.sendMessage(ctx, sub, alert))
	}
	return out
}

func (uc *fanoutImpl) createTicket(ctx context.Context, sub *webhook.Subscription, alert webhook.Alert) webhook.ActionResult {
	res := webhook.ActionResult{Action: actionCreateTicket}

	cred, err := uc.creds.FindActive(ctx, sub.OwnerID, integration.KindGLPI)
	if err != nil {
		res.Error = actionError(err, glpiNotConfigured)
		uc.metrics.WebhookActionOutcome(actionCreateTicket, false)
		return res
	}

	ticketID, err := uc.glpi.CreateTicket(ctx, *cred, glpi.TicketInput{
		Name:     alertTitle(alert),
		Content:  alertContent(alert),
		Urgency:  3,
		Impact:   3,
		Priority: 3,
		EntityID: sub.Actions.TicketEntityID,
	})
	if err != nil {
		res.Error = err.Error()
		uc.metrics.WebhookActionOutcome(actionCreateTicket, false)
		return res
	}

	res.Success = true
	res.Detail = "ticket " + ticketID
	uc.metrics.WebhookActionOutcome(actionCreateTicket, true)
	return res
}

func (uc *fanoutImpl) sendMessage(ctx context.Context, sub *webhook.Subscription, alert webhook.Alert) webhook.ActionResult {
	res := webhook.ActionResult{Action: actionSendMessage}

	cred, err := uc.creds.FindActive(ctx, sub.OwnerID, integration.KindEvolution)
	if err != nil {
		res.Error = actionError(err, evolutionNotConfigured)
		uc.metrics.WebhookActionOutcome(actionSendMessage, false)
		return res
	}

	msg := evolution.Message{
		Number: sub.Actions.MessageTarget,
		Text:   renderMessage(sub.Actions.CustomMessageTemplate, alert),
	}
	if err := uc.sender.SendText(ctx, *cred, msg); err != nil {
		res.Error = err.Error()
		uc.metrics.WebhookActionOutcome(actionSendMessage, false)
		return res
	}

	res.Success = true
	uc.metrics.WebhookActionOutcome(actionSendMessage, true)
	return res
}

func actionError(err error, notConfiguredMsg string) string {
	if infra.IsKind(err, infra.KindNotFound) {
		return notConfiguredMsg
	}
	return err.Error()
}

func alertTitle(alert webhook.Alert) string {
	if alert.TriggerTypeOf() == webhook.TriggerProblemResolved {
		return "[Resolvido] " + alert.Subject
	}
	return "[Alerta] " + alert.Subject
}

func alertContent(alert webhook.Alert) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Problema: %s\n", alert.Subject)
	fmt.Fprintf(&b, "Host: %s\n", alert.Host)
	fmt.Fprintf(&b, "Severidade: %s\n", alert.Severity)
	if alert.EventID != "" {
		fmt.Fprintf(&b, "Event ID: %s\n", alert.EventID)
	}
	if alert.TriggerID != "" {
		fmt.Fprintf(&b, "Trigger ID: %s\n", alert.TriggerID)
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderMessage substitutes alert fields into the subscription's template.
// An empty template falls back to a default notification body.
func renderMessage(template string, alert webhook.Alert) string {
	if template == "" {
		if alert.TriggerTypeOf() == webhook.TriggerProblemResolved {
			return fmt.Sprintf("✅ Problema resolvido: %s\nHost: %s", alert.Subject, alert.Host)
		}
		return fmt.Sprintf("🚨 Problema: %s\nHost: %s\nSeveridade: %s", alert.Subject, alert.Host, alert.Severity)
	}
	r := strings.NewReplacer(
		"{subject}", alert.Subject,
		"{host}", alert.Host,
		"{severity}", alert.Severity,
		"{event_id}", alert.EventID,
		"{status}", alert.Status,
	)
	return r.Replace(template)
}
