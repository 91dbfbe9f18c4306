package application

import (
	"errors"
	"fmt"
	"net/http"
)

// APPLICATION-LEVEL ERRORS (Orchestration)

type ServiceError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeValidationFailed      = "VALIDATION_FAILED"
	ErrCodeSoftDeleteUnsupported = "SOFT_DELETE_UNSUPPORTED"
	ErrCodeTimeout               = "TIMEOUT"
	ErrCodeInternal              = "INTERNAL_ERROR"
)

func NewInvalidInputError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeValidationFailed,
		Message:    "Invalid request body",
		HTTPStatus: http.StatusBadRequest,
		Err:        err,
	}
}

func NewInvalidParameterError(name string, err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeValidationFailed,
		Message:    fmt.Sprintf("Invalid %s parameter", name),
		HTTPStatus: http.StatusBadRequest,
		Err:        err,
	}
}

func NewSoftDeleteUnsupportedError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeSoftDeleteUnsupported,
		Message:    "Soft delete is not supported for this record",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func NewTimeoutError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeTimeout,
		Message:    "Request timed out",
		HTTPStatus: http.StatusRequestTimeout,
		Err:        err,
	}
}

func NewInternalError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInternal,
		Message:    "An internal error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func IsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	ok := errors.As(err, &svcErr)
	return svcErr, ok
}
