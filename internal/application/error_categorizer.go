package application

import (
	"context"
	"errors"
	"net/http"

	"github.com/DanielPopoola/payment-records/internal/domain"
)

// ErrorCategory represents the nature of an error for logging purposes
type ErrorCategory string

const (
	CategoryTransient      ErrorCategory = "TRANSIENT"
	CategoryBusinessRule   ErrorCategory = "BUSINESS_RULE"
	CategoryClientError    ErrorCategory = "CLIENT_ERROR"
	CategoryInfrastructure ErrorCategory = "INFRASTRUCTURE"
)

// CategorizeError determines the error category. Client and business rule
// errors are expected outcomes; the other categories deserve an error log.
func CategorizeError(err error) ErrorCategory {
	if err == nil {
		return ""
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return CategoryTransient
	}

	if domain.IsValidationError(err) || domain.IsErrorCode(err, domain.ErrCodePaymentNotFound) {
		return CategoryClientError
	}

	if domain.IsErrorCode(err, domain.ErrCodeDuplicateReference) ||
		domain.IsErrorCode(err, domain.ErrCodeConflict) {
		return CategoryBusinessRule
	}

	if svcErr, ok := IsServiceError(err); ok {
		switch svcErr.Code {
		case ErrCodeValidationFailed:
			return CategoryClientError
		case ErrCodeTimeout:
			return CategoryTransient
		}
	}

	return CategoryInfrastructure
}

// IsExpected reports whether err is a normal outcome of a client request.
func IsExpected(err error) bool {
	category := CategorizeError(err)
	return category == CategoryClientError || category == CategoryBusinessRule
}

// ToHTTPStatus maps error to appropriate HTTP status code
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.HTTPStatus
	}

	switch {
	case domain.IsValidationError(err):
		return http.StatusBadRequest

	case domain.IsErrorCode(err, domain.ErrCodePaymentNotFound):
		return http.StatusNotFound

	case domain.IsErrorCode(err, domain.ErrCodeDuplicateReference),
		domain.IsErrorCode(err, domain.ErrCodeConflict):
		return http.StatusConflict

	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout
	}

	// Default to 500
	return http.StatusInternalServerError
}

// ToErrorCode clear error code for API responses
func ToErrorCode(err error) string {
	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.Code
	}

	if domain.IsValidationError(err) {
		return ErrCodeValidationFailed
	}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return ErrCodeTimeout
	}

	return ErrCodeInternal
}

// ToErrorMessage returns the message safe to show to API clients.
// Infrastructure details are never exposed.
func ToErrorMessage(err error) string {
	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.Message
	}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return "Request timed out"
	}

	return "An internal error occurred"
}
