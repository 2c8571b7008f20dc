package translation

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedResponse is returned when a backend answers without a
	// usable translation
	ErrMalformedResponse = errors.New("malformed translation response")

	// ErrMissingAPIKey is returned when the selected backend has no credential
	ErrMissingAPIKey = errors.New("API key not found")
)

// Error wraps any failure of a translation backend call
type Error struct {
	Provider string
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s translation failed: %v", e.Provider, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func failure(provider string, err error) error {
	return &Error{Provider: provider, Err: err}
}
