package postgres

import (
	"errors"

	"github.com/DanielPopoola/payment-records/internal/application"
	"github.com/DanielPopoola/payment-records/internal/domain"
	"github.com/DanielPopoola/payment-records/internal/infrastructure/persistence"
)

// translateError converts PostgreSQL failures into the errors the
// application layer understands. Errors that are already typed pass through,
// as does anything unrecognised.
func translateError(err error, reference string) error {
	if err == nil {
		return nil
	}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return err
	}
	if _, ok := application.IsServiceError(err); ok {
		return err
	}

	switch {
	case persistence.IsUniqueViolation(err):
		return domain.NewDuplicateReferenceError(reference, err)
	case persistence.IsSerializationFailure(err):
		return domain.NewConflictError(err)
	case errors.Is(err, persistence.ErrSoftDeleteUnsupported):
		return application.NewSoftDeleteUnsupportedError(err)
	}
	return err
}
