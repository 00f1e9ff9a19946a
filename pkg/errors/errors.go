package errors

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrPoliciesRequired      = errors.New("insurance policies are required")
	ErrInvalidDownpaymentOp  = errors.New("invalid downpayment operator")
	ErrInvalidDownpaymentVal = errors.New("invalid downpayment value")
	ErrInvalidSortField      = errors.New("invalid sort field")
	ErrFinanceTermNotFound   = errors.New("finance term not found")
)

// ServiceError represents an error surfaced to the API caller
type ServiceError struct {
	Code    string
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new service error
func NewServiceError(code, message string, err error) *ServiceError {
	return &ServiceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Error codes
const (
	ErrCodeValidation = "VALIDATION_ERROR"
	ErrCodeStorage    = "STORAGE_ERROR"
	ErrCodeNotFound   = "NOT_FOUND"
)

// IsValidation reports whether err is a validation-class error.
func IsValidation(err error) bool {
	var se *ServiceError
	return errors.As(err, &se) && se.Code == ErrCodeValidation
}

// Wrap common errors with request context

func WrapPoliciesRequired() *ServiceError {
	return NewServiceError(
		ErrCodeValidation,
		"Insurance policies are required.",
		ErrPoliciesRequired,
	)
}

func WrapInvalidDownpaymentOperator() *ServiceError {
	return NewServiceError(
		ErrCodeValidation,
		"Invalid downpayment operator.",
		ErrInvalidDownpaymentOp,
	)
}

func WrapInvalidDownpaymentValue(raw string) *ServiceError {
	return NewServiceError(
		ErrCodeValidation,
		fmt.Sprintf("Invalid downpayment value: %s", raw),
		ErrInvalidDownpaymentVal,
	)
}

func WrapInvalidSortField(field string) *ServiceError {
	return NewServiceError(
		ErrCodeValidation,
		fmt.Sprintf("Invalid sort field: %s", field),
		ErrInvalidSortField,
	)
}

func WrapValidationError(message string, err error) *ServiceError {
	return NewServiceError(ErrCodeValidation, message, err)
}

func WrapStorageError(err error) *ServiceError {
	return NewServiceError(
		ErrCodeStorage,
		err.Error(),
		err,
	)
}
