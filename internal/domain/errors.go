package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business logic error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

const (
	ErrCodePaymentNotFound      = "PAYMENT_NOT_FOUND"
	ErrCodeNilPayment           = "NIL_PAYMENT"
	ErrCodeMissingRequiredField = "MISSING_REQUIRED_FIELD"
	ErrCodeInvalidQuantity      = "INVALID_QUANTITY"
	ErrCodeIDMismatch           = "ID_MISMATCH"
	ErrCodeDuplicateReference   = "DUPLICATE_REFERENCE"
	ErrCodeConflict             = "CONFLICT"
)

func NewNilPaymentError() *DomainError {
	return &DomainError{
		Code:    ErrCodeNilPayment,
		Message: "payment cannot be null",
	}
}

func NewMissingRequiredFieldError(field string) *DomainError {
	return &DomainError{
		Code:    ErrCodeMissingRequiredField,
		Message: fmt.Sprintf("%s is required", field),
	}
}

func NewInvalidQuantityError(quantity float64) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidQuantity,
		Message: fmt.Sprintf("quantity can't be %v", quantity),
	}
}

func NewIDMismatchError(pathID, bodyID int64) *DomainError {
	return &DomainError{
		Code:    ErrCodeIDMismatch,
		Message: fmt.Sprintf("the ID in the URL (%d) does not match the ID in the payment object (%d)", pathID, bodyID),
	}
}

func NewPaymentNotFoundError(id int64) *DomainError {
	return &DomainError{
		Code:    ErrCodePaymentNotFound,
		Message: fmt.Sprintf("payment with ID %d not found", id),
	}
}

func NewPaymentReferenceNotFoundError(reference string) *DomainError {
	return &DomainError{
		Code:    ErrCodePaymentNotFound,
		Message: fmt.Sprintf("payment with reference %q not found", reference),
	}
}

func NewDuplicateReferenceError(reference string, err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeDuplicateReference,
		Message: fmt.Sprintf("payment reference %q already exists", reference),
		Err:     err,
	}
}

func NewConflictError(err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeConflict,
		Message: "payment was modified concurrently",
		Err:     err,
	}
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}

// IsValidationError reports whether err is a DomainError raised by payment validation.
func IsValidationError(err error) bool {
	return IsErrorCode(err, ErrCodeNilPayment) ||
		IsErrorCode(err, ErrCodeMissingRequiredField) ||
		IsErrorCode(err, ErrCodeInvalidQuantity) ||
		IsErrorCode(err, ErrCodeIDMismatch)
}
