package application

import (
	"context"

	"github.com/DanielPopoola/payment-records/internal/domain"
)

// PaymentRepository is the store the payment service depends on.
// Lookups return a PAYMENT_NOT_FOUND DomainError when nothing matches.
type PaymentRepository interface {
	FindAll(ctx context.Context) ([]*domain.Payment, error)
	FindByID(ctx context.Context, id int64) (*domain.Payment, error)
	FindByReference(ctx context.Context, reference string) (*domain.Payment, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, payment *domain.Payment) error
	Update(ctx context.Context, payment *domain.Payment) error
	Delete(ctx context.Context, id int64, soft bool) error
	WithTx(ctx context.Context, fn func(ctx context.Context, repo PaymentRepository) error) error
}
