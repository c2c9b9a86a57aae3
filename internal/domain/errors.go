package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrPasswordMissMatch = errors.New("password mismatch")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrUnknown           = errors.New("unknown error")
	ErrValidation        = errors.New("validation error")

	ErrOrderCompleted   = errors.New("order already completed")
	ErrAccountSuspended = errors.New("account suspended")
	ErrForbidden        = errors.New("forbidden")
	ErrTokenRevoked     = errors.New("token revoked")
	ErrInvalidToken     = errors.New("invalid token")
)

// ValidationError ошибка валидации входных данных сервиса. errors.Is(err, ErrValidation) == true.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// GatewayError ошибка платежного шлюза при инициации платежа.
type GatewayError struct {
	Err error
}

func NewGatewayError(err error) error {
	return &GatewayError{Err: err}
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("payment gateway: %s", e.Err.Error())
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}
