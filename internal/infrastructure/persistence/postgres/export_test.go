package postgres

import (
	"context"

	"github.com/DanielPopoola/payment-records/internal/domain"
	"github.com/DanielPopoola/payment-records/internal/infrastructure/persistence"
)

var TranslateError = translateError

// FindDeleted returns the soft-deleted payments.
func (r *PaymentRepository) FindDeleted(ctx context.Context) ([]*domain.Payment, error) {
	models, err := r.store.GetBy(ctx, persistence.Eq("is_deleted", true))
	if err != nil {
		return nil, err
	}
	return toDomainModels(models), nil
}

// CreateMany inserts all payments atomically.
func (r *PaymentRepository) CreateMany(ctx context.Context, payments []*domain.Payment) error {
	models := make([]*PaymentModel, len(payments))
	for i, p := range payments {
		models[i] = toDBModel(p)
	}
	if err := r.store.InsertMany(ctx, models); err != nil {
		return translateError(err, "")
	}
	for i, m := range models {
		payments[i].ID = m.ID
	}
	return nil
}
