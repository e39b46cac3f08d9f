// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Input errors.
	ErrSourceNotFound = errors.New("source document not found")
	ErrParse          = errors.New("failed to parse document")

	// Output errors.
	ErrWriteFailure = errors.New("failed to write file")

	// Manifest errors.
	ErrStructure = errors.New("manifest structure violation")

	// Classification errors.
	ErrInvalidRules = errors.New("invalid rule table")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// Describe returns a short user-facing explanation for the known error kinds.
func Describe(err error) string {
	var userErr *UserError
	switch {
	case errors.As(err, &userErr):
		return userErr.UserMessage
	case errors.Is(err, ErrSourceNotFound):
		return "The types document could not be found"
	case errors.Is(err, ErrParse):
		return "A document is not well-formed XML"
	case errors.Is(err, ErrStructure):
		return "The economy manifest is missing a required section"
	case errors.Is(err, ErrWriteFailure):
		return "An output file could not be written"
	case errors.Is(err, ErrInvalidRules):
		return "The rule table is invalid"
	case errors.Is(err, ErrInvalidConfig), errors.Is(err, ErrMissingConfig):
		return "The configuration is invalid"
	default:
		return "Unexpected error"
	}
}
