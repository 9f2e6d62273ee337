// Package analytics keeps a short recent-activity feed in Redis for the
// dashboard's activity widget. Best-effort: failures are logged and dropped,
// never surfaced to the pipelines.
package analytics

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const feedKey = "opsboard:activity"

// Event is one feed entry.
type Event struct {
	Kind      string    `json:"kind"` // batch_completed | batch_critical | webhook_received
	Pipeline  string    `json:"pipeline,omitempty"`
	Trigger   string    `json:"trigger,omitempty"`
	Detail    string    `json:"detail,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Sink appends events to the feed. Nil *RedisSink is a valid disabled sink.
type Sink interface {
	Record(ctx context.Context, ev Event)
}

type RedisSink struct {
	client *redis.Client
	logger *slog.Logger
	maxLen int64
	ttl    time.Duration
}

func NewRedisSink(client *redis.Client, logger *slog.Logger, maxLen int64, ttl time.Duration) *RedisSink {
	return &RedisSink{client: client, logger: logger, maxLen: maxLen, ttl: ttl}
}

func (s *RedisSink) Record(ctx context.Context, ev Event) {
	if s == nil || s.client == nil {
		return
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		s.logger.Warn("failed to marshal activity event", "error", err)
		return
	}

	pipe := s.client.TxPipeline()
	pipe.LPush(ctx, feedKey, payload)
	pipe.LTrim(ctx, feedKey, 0, s.maxLen-1)
	pipe.Expire(ctx, feedKey, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		s.logger.Warn("failed to record activity event", "error", err)
	}
}

// Recent returns up to n newest feed entries, newest first.
func (s *RedisSink) Recent(ctx context.Context, n int64) ([]Event, error) {
	if s == nil || s.client == nil {
		return nil, nil
	}
	raw, err := s.client.LRange(ctx, feedKey, 0, n-1).Result()
	if err != nil {
		return nil, err
	}
	out := make([]Event, 0, len(raw))
	for _, item := range raw {
		var ev Event
		if err := json.Unmarshal([]byte(item), &ev); err != nil {
			continue
		}
		out = append(out, ev)
	}
	return out, nil
}

var _ Sink = (*RedisSink)(nil)
