package client

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrNetwork is returned whenever a request could not complete (connection
// refused, DNS, cancelled context, truncated body); the underlying cause is
// not kept.
var ErrNetwork = errors.New("network error: unable to reach the server")

// ErrMalformedResponse is returned (wrapped with detail) when a response
// claims to be JSON but can't be parsed, or doesn't have the expected shape.
var ErrMalformedResponse = errors.New("malformed response")

// ErrNotOpen is returned when a request is attempted before Open.
var ErrNotOpen = errors.New("client not open")

// Error is a server-reported failure: a response with a status outside of
// the 2xx range.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

func statusMessage(statusCode int) string {
	return fmt.Sprintf("request failed with status code: %d", statusCode)
}

// newError builds the error for a failed response, preferring the non-empty
// string "message" field of a JSON body.
func newError(statusCode int, envelope Envelope) *Error {
	message := statusMessage(statusCode)
	if value, err := envelope.Value(); err == nil {
		if body, ok := value.(map[string]any); ok {
			if m, ok := body["message"].(string); ok && m != "" {
				message = m
			}
		}
	}
	return &Error{
		StatusCode: statusCode,
		Message:    message,
	}
}

// IsStatus reports whether err is a server-reported failure with the given
// status code.
func IsStatus(err error, statusCode int) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.StatusCode == statusCode
	}
	return false
}

func malformed(format string, v ...any) error {
	return errors.Wrapf(ErrMalformedResponse, format, v...)
}
