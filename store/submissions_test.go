package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"

	"portfolio-server/model"
)

func newTestStore(t *testing.T) (*SubmissionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return New(rdb), mr
}

func TestLogSubmission(t *testing.T) {
	s, mr := newTestStore(t)
	ctx := context.Background()

	sub := model.ContactSubmission{
		ID:         "abc-123",
		Name:       "Maria",
		Email:      "maria@example.com",
		Subject:    "Hello",
		Message:    "Nice site",
		ReceivedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}

	if err := s.LogSubmission(ctx, sub); err != nil {
		t.Fatalf("LogSubmission() error = %v", err)
	}

	got, err := s.RecentSubmissions(ctx, 10)
	if err != nil {
		t.Fatalf("RecentSubmissions() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Expected 1 submission, got %d", len(got))
	}
	if got[0].ID != "abc-123" || got[0].Email != "maria@example.com" {
		t.Errorf("Round-tripped submission mismatch: %+v", got[0])
	}

	// Retention is set on the key
	if mr.TTL("submissions:contact") <= 0 {
		t.Error("Expected a TTL on the submissions key")
	}
}

func TestRecentSubmissionsOrder(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"first", "second", "third"} {
		if err := s.LogSubmission(ctx, model.ContactSubmission{ID: id}); err != nil {
			t.Fatalf("LogSubmission() error = %v", err)
		}
	}

	got, err := s.RecentSubmissions(ctx, 2)
	if err != nil {
		t.Fatalf("RecentSubmissions() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 submissions, got %d", len(got))
	}
	if got[0].ID != "third" || got[1].ID != "second" {
		t.Errorf("Expected newest first, got %s then %s", got[0].ID, got[1].ID)
	}
}

func TestLogFeedback(t *testing.T) {
	s, mr := newTestStore(t)
	ctx := context.Background()

	fb := model.Feedback{
		Type:      model.FeedbackBug,
		Message:   "The chart overlaps on mobile",
		Page:      "/pt/dashboard",
		Timestamp: time.Now(),
	}
	if err := s.LogFeedback(ctx, fb); err != nil {
		t.Fatalf("LogFeedback() error = %v", err)
	}

	if n, _ := mr.List("submissions:feedback"); len(n) != 1 {
		t.Errorf("Expected 1 feedback entry, got %d", len(n))
	}
}

func TestNilClientIsNoop(t *testing.T) {
	s := New(nil)
	ctx := context.Background()

	if s.Enabled() {
		t.Error("Nil client should report disabled")
	}
	if err := s.LogSubmission(ctx, model.ContactSubmission{ID: "x"}); err != nil {
		t.Errorf("Nil client LogSubmission should be a no-op, got %v", err)
	}
	if err := s.Ping(ctx); err != nil {
		t.Errorf("Nil client Ping should succeed, got %v", err)
	}
	got, err := s.RecentSubmissions(ctx, 5)
	if err != nil || got != nil {
		t.Errorf("Nil client RecentSubmissions = (%v, %v), want (nil, nil)", got, err)
	}
}
