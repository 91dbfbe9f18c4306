package postgres

import (
	"context"

	"github.com/DanielPopoola/payment-records/internal/application"
	"github.com/DanielPopoola/payment-records/internal/domain"
	"github.com/DanielPopoola/payment-records/internal/infrastructure/persistence"
)

type paymentStore = persistence.Repository[PaymentModel, *PaymentModel]

// PaymentRepository binds the generic repository to the payments table.
// Missing payments are reported as PAYMENT_NOT_FOUND domain errors and
// constraint failures as DUPLICATE_REFERENCE or CONFLICT.
type PaymentRepository struct {
	store *paymentStore
}

var _ application.PaymentRepository = (*PaymentRepository)(nil)

func NewPaymentRepository(db *persistence.DB) *PaymentRepository {
	return &PaymentRepository{
		store: persistence.NewRepository[PaymentModel, *PaymentModel](db.Pool),
	}
}

// FindAll returns every payment that has not been soft-deleted.
func (r *PaymentRepository) FindAll(ctx context.Context) ([]*domain.Payment, error) {
	models, err := r.store.GetAll(ctx, persistence.All())
	if err != nil {
		return nil, err
	}
	return toDomainModels(models), nil
}

// FindByID returns the payment whether or not it was soft-deleted.
func (r *PaymentRepository) FindByID(ctx context.Context, id int64) (*domain.Payment, error) {
	m, err := r.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.NewPaymentNotFoundError(id)
	}
	return toDomainModel(m), nil
}

// FindByReference matches the reference exactly, ignoring soft-deleted rows.
func (r *PaymentRepository) FindByReference(ctx context.Context, reference string) (*domain.Payment, error) {
	models, err := r.store.GetAll(ctx, persistence.Eq("reference", reference))
	if err != nil {
		return nil, err
	}
	if len(models) == 0 {
		return nil, domain.NewPaymentReferenceNotFoundError(reference)
	}
	return toDomainModel(models[0]), nil
}

func (r *PaymentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return r.store.Exists(ctx, id)
}

// Create inserts the payment and writes the generated ID back onto it.
func (r *PaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	m := toDBModel(payment)
	if err := r.store.Insert(ctx, m); err != nil {
		return translateError(err, payment.Reference)
	}
	payment.ID = m.ID
	return nil
}

func (r *PaymentRepository) Update(ctx context.Context, payment *domain.Payment) error {
	return translateError(r.store.Update(ctx, toDBModel(payment)), payment.Reference)
}

func (r *PaymentRepository) Delete(ctx context.Context, id int64, soft bool) error {
	return translateError(r.store.Delete(ctx, id, soft), "")
}

// WithTx runs fn with a repository bound to a single transaction.
func (r *PaymentRepository) WithTx(ctx context.Context, fn func(ctx context.Context, repo application.PaymentRepository) error) error {
	err := r.store.ExecuteTransaction(ctx, func(ctx context.Context, tx *paymentStore) error {
		return fn(ctx, &PaymentRepository{store: tx})
	})
	return translateError(err, "")
}
