// Package apierr classifies handler outcomes so the HTTP status is decided
// in one place at the response boundary.
package apierr

import "net/http"

type Kind int

const (
	Validation Kind = iota
	NotFound
	Conflict
	Internal
)

// Status maps an error kind to its HTTP status code. Validation, not-found
// and conflict all answer 400, matching the service's existing contract.
func (k Kind) Status() int {
	if k == Internal {
		return http.StatusInternalServerError
	}
	return http.StatusBadRequest
}

type Error struct {
	Kind    Kind
	Message string
	Err     error // underlying cause, set for Internal
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "Erro inesperado"
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap marks err as an unexpected failure. Its message is surfaced on the
// 500 response when available.
func Wrap(err error) *Error {
	return &Error{Kind: Internal, Err: err}
}
