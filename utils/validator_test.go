package utils

import (
	"errors"
	"strings"
	"testing"

	"portfolio-server/model"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr error
	}{
		{"Valid", "user@example.com", nil},
		{"Valid with subdomain", "a.b@mail.example.co", nil},
		{"Empty", "", ErrEmailRequired},
		{"Whitespace only", "   ", ErrEmailRequired},
		{"Missing at", "userexample.com", ErrInvalidEmail},
		{"Missing domain dot", "user@example", ErrInvalidEmail},
		{"Contains space", "us er@example.com", ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateEmail(%q) = %v, want %v", tt.email, err, tt.wantErr)
			}
		})
	}
}

func TestValidateSubmission(t *testing.T) {
	valid := model.ContactSubmission{
		Name:    "Maria",
		Email:   "maria@example.com",
		Subject: "Hi",
		Message: "Hello there",
	}

	tests := []struct {
		name    string
		mutate  func(*model.ContactSubmission)
		wantErr error
	}{
		{"Valid", func(s *model.ContactSubmission) {}, nil},
		{"Missing name", func(s *model.ContactSubmission) { s.Name = "" }, ErrNameRequired},
		{"Blank name", func(s *model.ContactSubmission) { s.Name = "  " }, ErrNameRequired},
		{"Missing email", func(s *model.ContactSubmission) { s.Email = "" }, ErrEmailRequired},
		{"Bad email", func(s *model.ContactSubmission) { s.Email = "nope" }, ErrInvalidEmail},
		{"Missing subject", func(s *model.ContactSubmission) { s.Subject = "" }, ErrSubjectRequired},
		{"Missing message", func(s *model.ContactSubmission) { s.Message = "" }, ErrMessageRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := valid
			tt.mutate(&sub)
			err := ValidateSubmission(sub)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateSubmission() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateFeedback(t *testing.T) {
	tests := []struct {
		name    string
		fb      model.Feedback
		wantErr error
	}{
		{"Valid bug", model.Feedback{Type: model.FeedbackBug, Message: "broken"}, nil},
		{"Valid with email", model.Feedback{Type: model.FeedbackOther, Message: "hi", Email: "a@b.co"}, nil},
		{"Missing type", model.Feedback{Message: "hi"}, ErrFeedbackTypeRequired},
		{"Unknown type", model.Feedback{Type: "rant", Message: "hi"}, ErrInvalidFeedbackType},
		{"Missing message", model.Feedback{Type: model.FeedbackBug}, ErrMessageRequired},
		{"Message too long", model.Feedback{Type: model.FeedbackBug, Message: strings.Repeat("x", 1001)}, ErrMessageTooLong},
		{"Message at limit", model.Feedback{Type: model.FeedbackBug, Message: strings.Repeat("x", 1000)}, nil},
		{"Bad optional email", model.Feedback{Type: model.FeedbackBug, Message: "hi", Email: "zzz"}, ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFeedback(tt.fb)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateFeedback() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
