package utils

import "errors"

var (
	ErrNameRequired    = errors.New("name is required")
	ErrEmailRequired   = errors.New("email is required")
	ErrSubjectRequired = errors.New("subject is required")
	ErrMessageRequired = errors.New("message is required")
	ErrInvalidEmail    = errors.New("invalid email address")

	ErrFeedbackTypeRequired = errors.New("feedback type is required")
	ErrInvalidFeedbackType  = errors.New("feedback type must be bug, suggestion, compliment or other")
	ErrMessageTooLong       = errors.New("message exceeds the 1000 character limit")
)
