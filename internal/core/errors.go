package core

import "fmt"

type UrlsxError struct {
	Message string
	Cause   error
}

func (e *UrlsxError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *UrlsxError) Unwrap() error {
	return e.Cause
}

type ConfigurationError struct {
	*UrlsxError
}

func NewConfigurationError(message string, cause error) *ConfigurationError {
	return &ConfigurationError{
		UrlsxError: &UrlsxError{Message: message, Cause: cause},
	}
}

type ValidationError struct {
	*UrlsxError
}

func NewValidationError(message string, cause error) *ValidationError {
	return &ValidationError{
		UrlsxError: &UrlsxError{Message: message, Cause: cause},
	}
}

// TooManyCombinationsError is returned by the expander before any URL is
// materialized. Attempted is the running product at the point the ceiling
// was crossed, so callers can tell the user how far over they are.
type TooManyCombinationsError struct {
	Attempted int
	Limit     int
}

func (e *TooManyCombinationsError) Error() string {
	return fmt.Sprintf("too many combinations (%d, limit %d): reduce the values per tag", e.Attempted, e.Limit)
}
