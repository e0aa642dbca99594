package uos

import (
	"errors"
	"fmt"
)

// Result is the outcome of every resource call: either OK with a Value, or not
// OK with a human-readable Error of the form "<code>: <message>".
//
// Callers branch on OK; Error is only meant for display.
type Result[T any] struct {
	OK    bool   `json:"ok"`
	Value T      `json:"value,omitempty"`
	Error string `json:"error,omitempty"`
}

// Ok returns a successful Result.
func Ok[T any](v T) Result[T] {
	return Result[T]{OK: true, Value: v}
}

// Fail returns a failed Result carrying msg.
func Fail[T any](msg string) Result[T] {
	return Result[T]{Error: msg}
}

// Failf returns a failed Result with a formatted message.
func Failf[T any](format string, args ...any) Result[T] {
	return Result[T]{Error: fmt.Sprintf(format, args...)}
}

// FailWith converts a failed Result of one type into another, keeping the message.
func FailWith[T, U any](r Result[U]) Result[T] {
	return Result[T]{Error: r.Error}
}

// Unwrap returns the value, or the failure as an error.
func (r Result[T]) Unwrap() (T, error) {
	if !r.OK {
		var zero T
		return zero, errors.New(r.Error)
	}
	return r.Value, nil
}

// ServiceError is an error payload reported by the service itself.
type ServiceError struct {
	Code    string
	Message string
}

func (e ServiceError) Error() string {
	return e.Code + ": " + e.Message
}
