package mpesa

import (
	"fmt"
)

// StatusCodeError шлюз ответил статусом, отличным от 200.
type StatusCodeError struct {
	Code int
	Body string
}

func NewStatusCodeError(code int, body string) *StatusCodeError {
	return &StatusCodeError{Code: code, Body: body}
}

func (e *StatusCodeError) Error() string {
	return fmt.Sprintf("unexpected status code %d: %s", e.Code, e.Body)
}
