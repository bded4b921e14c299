// Package errors defines the application's typed errors.
// AppError carries a type classification so callers can map failures to
// the inline messages shown to the user.
package errors

import (
	"fmt"
)

// AppError represents a classified application failure
type AppError struct {
	Type    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an AppError of the same type, so that
// errors.Is(err, ErrFetchFailed) matches any fetch failure regardless of cause.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// Error type constants
const (
	ErrorTypeEmptyQuery           = "EMPTY_QUERY"
	ErrorTypeNoResults            = "NO_RESULTS"
	ErrorTypeFetchFailed          = "FETCH_FAILED"
	ErrorTypeConfigurationInvalid = "CONFIGURATION_INVALID"
)

// User visible messages, one per kind
const (
	MessageEmptyQuery  = "empty query"
	MessageNoResults   = "no results"
	MessageFetchFailed = "fetch failed"
)

// Sentinels for errors.Is checks
var (
	ErrEmptyQuery  = &AppError{Type: ErrorTypeEmptyQuery, Message: MessageEmptyQuery}
	ErrNoResults   = &AppError{Type: ErrorTypeNoResults, Message: MessageNoResults}
	ErrFetchFailed = &AppError{Type: ErrorTypeFetchFailed, Message: MessageFetchFailed}
)

// NewAppError creates a new AppError
func NewAppError(errorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// NewFetchError wraps any network, status or decode failure of a remote call
func NewFetchError(operation string, cause error) *AppError {
	return NewAppError(ErrorTypeFetchFailed, fmt.Sprintf("%s: %s", MessageFetchFailed, operation), cause)
}

// NewConfigurationError creates a configuration-related error
func NewConfigurationError(message string, cause error) *AppError {
	return NewAppError(ErrorTypeConfigurationInvalid, message, cause)
}

// UserMessage returns the inline text for err, or the fetch failure text
// for anything unclassified.
func UserMessage(err error) string {
	if e, ok := err.(*AppError); ok {
		switch e.Type {
		case ErrorTypeEmptyQuery:
			return MessageEmptyQuery
		case ErrorTypeNoResults:
			return MessageNoResults
		}
	}
	return MessageFetchFailed
}
