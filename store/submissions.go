// Package store keeps an audit trail of contact submissions and feedback
// reports in Redis lists. It is a log, not the system of record: a nil
// client turns every operation into a no-op.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"

	"portfolio-server/model"
)

const (
	contactKey  = "submissions:contact"
	feedbackKey = "submissions:feedback"

	maxEntries = 1000
	retention  = 90 * 24 * time.Hour
)

// SubmissionStore logs submissions to Redis.
type SubmissionStore struct {
	redis *redis.Client
}

// New creates a store over the given client (nil disables logging).
func New(rdb *redis.Client) *SubmissionStore {
	return &SubmissionStore{redis: rdb}
}

// Enabled reports whether a Redis client is attached.
func (s *SubmissionStore) Enabled() bool {
	return s.redis != nil
}

// LogSubmission records a contact submission, most recent first.
func (s *SubmissionStore) LogSubmission(ctx context.Context, sub model.ContactSubmission) error {
	return s.push(ctx, contactKey, sub)
}

// LogFeedback records a feedback report, most recent first.
func (s *SubmissionStore) LogFeedback(ctx context.Context, fb model.Feedback) error {
	return s.push(ctx, feedbackKey, fb)
}

func (s *SubmissionStore) push(ctx context.Context, key string, entry interface{}) error {
	if s.redis == nil {
		return nil
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal log entry: %w", err)
	}

	if err := s.redis.LPush(ctx, key, data).Err(); err != nil {
		return fmt.Errorf("failed to store log entry: %w", err)
	}
	if err := s.redis.LTrim(ctx, key, 0, maxEntries-1).Err(); err != nil {
		return fmt.Errorf("failed to trim log: %w", err)
	}
	if err := s.redis.Expire(ctx, key, retention).Err(); err != nil {
		return fmt.Errorf("failed to set log expiration: %w", err)
	}
	return nil
}

// RecentSubmissions returns up to n contact submissions, newest first.
func (s *SubmissionStore) RecentSubmissions(ctx context.Context, n int) ([]model.ContactSubmission, error) {
	if s.redis == nil {
		return nil, nil
	}
	if n <= 0 {
		n = 10
	}

	raw, err := s.redis.LRange(ctx, contactKey, 0, int64(n-1)).Result()
	if err != nil && err != redis.Nil {
		return nil, err
	}

	out := make([]model.ContactSubmission, 0, len(raw))
	for _, item := range raw {
		var sub model.ContactSubmission
		if err := json.Unmarshal([]byte(item), &sub); err != nil {
			log.Warn().Err(err).Msg("Skipping malformed submission entry")
			continue
		}
		out = append(out, sub)
	}
	return out, nil
}

// Ping checks Redis connectivity for the health endpoint.
func (s *SubmissionStore) Ping(ctx context.Context) error {
	if s.redis == nil {
		return nil
	}
	return s.redis.Ping(ctx).Err()
}
