package model

import "time"

// ContactSubmission is one message sent through the contact form.
type ContactSubmission struct {
	ID         string    `json:"id,omitempty"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Subject    string    `json:"subject"`
	Message    string    `json:"message"`
	ReceivedAt time.Time `json:"receivedAt,omitempty"`
}

// FeedbackType classifies a feedback report.
type FeedbackType string

const (
	FeedbackBug        FeedbackType = "bug"
	FeedbackSuggestion FeedbackType = "suggestion"
	FeedbackCompliment FeedbackType = "compliment"
	FeedbackOther      FeedbackType = "other"
)

// Feedback is an anonymous feedback report from any page.
type Feedback struct {
	Type      FeedbackType `json:"type"`
	Message   string       `json:"message"` // Max 1000 characters
	Email     string       `json:"email,omitempty"`
	Page      string       `json:"page,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
	UserAgent string       `json:"userAgent,omitempty"`
}
