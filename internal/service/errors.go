package service

import (
	"errors"
	"fmt"
)

// ServiceError represents a business logic error with a code
type ServiceError struct {
	Err     error
	Message string
	Code    string
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrCodeInvalidCredentials = "invalid_credentials"
	ErrCodeInvalidTargetCard  = "invalid_target_card"
	ErrCodeSameAccount        = "same_account"
	ErrCodeTargetNotFound     = "target_not_found"
	ErrCodeInsufficientFunds  = "insufficient_funds"
	ErrCodeAccountNotFound    = "account_not_found"
	ErrCodeInvalidAmount      = "invalid_amount"
	ErrCodeInternalError      = "internal_error"
)

// Code extracts the ServiceError code from err, or ErrCodeInternalError when
// err is not a ServiceError.
func Code(err error) string {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Code
	}
	return ErrCodeInternalError
}

// IsInvalidTarget reports whether err rejects a transfer target: a checksum
// failure, a self-transfer or an unknown card.
func IsInvalidTarget(err error) bool {
	switch Code(err) {
	case ErrCodeInvalidTargetCard, ErrCodeSameAccount, ErrCodeTargetNotFound:
		return true
	default:
		return false
	}
}

func internalError(message string, err error) *ServiceError {
	return &ServiceError{
		Code:    ErrCodeInternalError,
		Message: message,
		Err:     err,
	}
}
