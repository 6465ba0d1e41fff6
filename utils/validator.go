package utils

import (
	"regexp"
	"strings"

	"portfolio-server/model"
)

const maxFeedbackMessageLength = 1000

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail checks the address has a plausible mailbox@domain shape.
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmailRequired
	}
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

// ValidateSubmission checks a contact submission at the request boundary.
// All four fields are required; the email must parse.
func ValidateSubmission(sub model.ContactSubmission) error {
	if strings.TrimSpace(sub.Name) == "" {
		return ErrNameRequired
	}
	if err := ValidateEmail(sub.Email); err != nil {
		return err
	}
	if strings.TrimSpace(sub.Subject) == "" {
		return ErrSubjectRequired
	}
	if strings.TrimSpace(sub.Message) == "" {
		return ErrMessageRequired
	}
	return nil
}

// ValidateFeedback checks a feedback report: type must be one of the known
// values, message present and within the length cap. Email is optional but
// validated when supplied.
func ValidateFeedback(fb model.Feedback) error {
	switch fb.Type {
	case model.FeedbackBug, model.FeedbackSuggestion, model.FeedbackCompliment, model.FeedbackOther:
	case "":
		return ErrFeedbackTypeRequired
	default:
		return ErrInvalidFeedbackType
	}

	if strings.TrimSpace(fb.Message) == "" {
		return ErrMessageRequired
	}
	if len(fb.Message) > maxFeedbackMessageLength {
		return ErrMessageTooLong
	}
	if fb.Email != "" {
		return ValidateEmail(fb.Email)
	}
	return nil
}
