package application

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/DanielPopoola/payment-records/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestErrorMapping(t *testing.T) {
	dbErr := errors.New("connection reset")

	tests := []struct {
		name     string
		err      error
		status   int
		code     string
		category ErrorCategory
	}{
		{
			name:     "missing reference",
			err:      domain.NewMissingRequiredFieldError("reference"),
			status:   http.StatusBadRequest,
			code:     ErrCodeValidationFailed,
			category: CategoryClientError,
		},
		{
			name:     "nil payment",
			err:      domain.NewNilPaymentError(),
			status:   http.StatusBadRequest,
			code:     ErrCodeValidationFailed,
			category: CategoryClientError,
		},
		{
			name:     "id mismatch",
			err:      domain.NewIDMismatchError(1, 2),
			status:   http.StatusBadRequest,
			code:     ErrCodeValidationFailed,
			category: CategoryClientError,
		},
		{
			name:     "malformed body",
			err:      NewInvalidInputError(errors.New("unexpected EOF")),
			status:   http.StatusBadRequest,
			code:     ErrCodeValidationFailed,
			category: CategoryClientError,
		},
		{
			name:     "not found",
			err:      fmt.Errorf("get payment: %w", domain.NewPaymentNotFoundError(7)),
			status:   http.StatusNotFound,
			code:     domain.ErrCodePaymentNotFound,
			category: CategoryClientError,
		},
		{
			name:     "duplicate reference",
			err:      domain.NewDuplicateReferenceError("R1", dbErr),
			status:   http.StatusConflict,
			code:     domain.ErrCodeDuplicateReference,
			category: CategoryBusinessRule,
		},
		{
			name:     "concurrent modification",
			err:      domain.NewConflictError(dbErr),
			status:   http.StatusConflict,
			code:     domain.ErrCodeConflict,
			category: CategoryBusinessRule,
		},
		{
			name:     "soft delete unsupported",
			err:      NewSoftDeleteUnsupportedError(dbErr),
			status:   http.StatusInternalServerError,
			code:     ErrCodeSoftDeleteUnsupported,
			category: CategoryInfrastructure,
		},
		{
			name:     "deadline exceeded",
			err:      fmt.Errorf("query payments: %w", context.DeadlineExceeded),
			status:   http.StatusRequestTimeout,
			code:     ErrCodeTimeout,
			category: CategoryTransient,
		},
		{
			name:     "unknown error",
			err:      NewInternalError(dbErr),
			status:   http.StatusInternalServerError,
			code:     ErrCodeInternal,
			category: CategoryInfrastructure,
		},
		{
			name:     "raw error",
			err:      dbErr,
			status:   http.StatusInternalServerError,
			code:     ErrCodeInternal,
			category: CategoryInfrastructure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, ToHTTPStatus(tt.err))
			assert.Equal(t, tt.code, ToErrorCode(tt.err))
			assert.Equal(t, tt.category, CategorizeError(tt.err))
		})
	}
}

func TestToErrorMessage_HidesInfrastructureDetails(t *testing.T) {
	err := NewInternalError(errors.New("password authentication failed for user"))

	assert.Equal(t, "An internal error occurred", ToErrorMessage(err))
	assert.Equal(t, "An internal error occurred", ToErrorMessage(errors.New("boom")))
	assert.Equal(t, "reference is required", ToErrorMessage(domain.NewMissingRequiredFieldError("reference")))
}

func TestIsExpected(t *testing.T) {
	assert.True(t, IsExpected(domain.NewPaymentNotFoundError(1)))
	assert.True(t, IsExpected(domain.NewDuplicateReferenceError("R1", nil)))
	assert.False(t, IsExpected(errors.New("boom")))
	assert.Equal(t, http.StatusOK, ToHTTPStatus(nil))
}
