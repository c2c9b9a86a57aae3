package notify

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNoEvents       = errors.New("no events")
	ErrNoDeliverer    = errors.New("no deliverer for event kind")
	ErrInvalidPayload = errors.New("invalid event payload")
	ErrDeliveryFailed = errors.New("delivery failed")
)

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

// TooManyRequestError получатель ответил 429. RetryAfter - сколько нужно подождать перед повтором.
type TooManyRequestError struct {
	RetryAfter time.Duration
}

func NewTooManyRequestError(retryAfter time.Duration) *TooManyRequestError {
	return &TooManyRequestError{RetryAfter: retryAfter}
}

func (e *TooManyRequestError) Error() string {
	return fmt.Sprintf("too many requests, retry after %.f seconds", e.RetryAfter.Seconds())
}
