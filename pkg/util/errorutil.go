package util

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Messages   []string
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// ErrorMessages returns the user-visible error list for the response envelope.
func (e *DomainError) ErrorMessages() []string {
	if len(e.Messages) > 0 {
		return e.Messages
	}
	return []string{e.Message}
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, messages []string) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Messages: messages}
}

// NewValidationError carries every accumulated field violation.
func NewValidationError(messages []string) error {
	message := "validation failed"
	if len(messages) == 1 {
		message = messages[0]
	}
	return NewDomainError("VALIDATION_FAILED", message, http.StatusBadRequest, messages)
}

// DuplicateEmailMessage is the user-visible text for a taken address.
func DuplicateEmailMessage(email string) string {
	return fmt.Sprintf("Email '%s' is already taken.", email)
}

func NewDuplicateEmail(email string) error {
	return NewDomainError("DUPLICATE_EMAIL", DuplicateEmailMessage(email),
		http.StatusBadRequest, nil)
}

// NewInvalidCredentials deliberately reuses one message for unknown email and
// wrong password so callers cannot tell which one failed.
func NewInvalidCredentials() error {
	return NewDomainError("INVALID_CREDENTIALS", "Invalid Password", http.StatusBadRequest, nil)
}

func NewNotFound(resource string) error {
	return NewDomainError("NOT_FOUND", fmt.Sprintf("%s not found", resource), http.StatusNotFound, nil)
}

func NewUnauthorized(message string) error {
	return NewDomainError("UNAUTHORIZED", message, http.StatusUnauthorized, nil)
}

func NewForbidden(message string) error {
	return NewDomainError("FORBIDDEN", message, http.StatusForbidden, nil)
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	if errors.Is(err, pgx.ErrNoRows) {
		if de, ok := NewNotFound("resource").(*DomainError); ok {
			return de
		}
	}
	if de, ok := NewInternalError(err).(*DomainError); ok {
		return de
	}
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func MapError(err error) error {
	return ToDomainError(err)
}
