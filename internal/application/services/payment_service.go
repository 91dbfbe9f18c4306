package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/DanielPopoola/payment-records/internal/application"
	"github.com/DanielPopoola/payment-records/internal/domain"
)

type PaymentService struct {
	paymentRepo application.PaymentRepository
	logger      *slog.Logger
}

func NewPaymentService(
	paymentRepo application.PaymentRepository,
	logger *slog.Logger,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		logger:      logger,
	}
}

// GetAll lists the payments that have not been deleted.
func (s *PaymentService) GetAll(ctx context.Context) ([]*domain.Payment, error) {
	payments, err := s.paymentRepo.FindAll(ctx)
	if err != nil {
		return nil, s.translate(err)
	}
	return payments, nil
}

// GetByID returns the payment even when it has been soft-deleted.
func (s *PaymentService) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, s.translate(err)
	}
	return payment, nil
}

// GetByReference returns the live payment whose reference matches exactly.
func (s *PaymentService) GetByReference(ctx context.Context, reference string) (*domain.Payment, error) {
	payment, err := s.paymentRepo.FindByReference(ctx, reference)
	if err != nil {
		return nil, s.translate(err)
	}
	return payment, nil
}

// Create validates and stores a new payment. The stored ID is written back
// onto payment.
func (s *PaymentService) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	if err := s.Validate(payment); err != nil {
		return nil, err
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, s.translate(err)
	}

	s.logger.Info("payment created",
		"payment_id", payment.ID,
		"reference", payment.Reference,
	)
	return payment, nil
}

// Update replaces every field of an existing payment.
func (s *PaymentService) Update(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	if err := s.Validate(payment); err != nil {
		return nil, err
	}

	err := s.paymentRepo.WithTx(ctx, func(ctx context.Context, txRepo application.PaymentRepository) error {
		exists, err := txRepo.Exists(ctx, payment.ID)
		if err != nil {
			return err
		}
		if !exists {
			return domain.NewPaymentNotFoundError(payment.ID)
		}
		return txRepo.Update(ctx, payment)
	})
	if err != nil {
		return nil, s.translate(err)
	}

	s.logger.Info("payment updated", "payment_id", payment.ID)
	return payment, nil
}

// Delete soft-deletes the payment. Hard deletion is not offered here, so a
// request with soft unset is still served as a soft delete.
func (s *PaymentService) Delete(ctx context.Context, id int64, soft bool) error {
	if !soft {
		s.logger.Debug("hard delete requested, deleting softly", "payment_id", id)
	}

	err := s.paymentRepo.WithTx(ctx, func(ctx context.Context, txRepo application.PaymentRepository) error {
		exists, err := txRepo.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return domain.NewPaymentNotFoundError(id)
		}
		return txRepo.Delete(ctx, id, true)
	})
	if err != nil {
		return s.translate(err)
	}

	s.logger.Info("payment deleted", "payment_id", id)
	return nil
}

// Validate applies the payment rules used by Create and Update.
func (s *PaymentService) Validate(payment *domain.Payment) error {
	return payment.Validate()
}

// translate passes typed errors through and hides everything else behind
// an internal error. Store failures arrive already classified by the
// repository.
func (s *PaymentService) translate(err error) error {
	var domainErr *domain.DomainError
	switch {
	case errors.As(err, &domainErr):
		return err
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return application.NewTimeoutError(err)
	}
	if svcErr, ok := application.IsServiceError(err); ok {
		if svcErr.HTTPStatus >= 500 {
			s.logger.Error("payment store failure", "code", svcErr.Code, "error", err)
		}
		return err
	}

	s.logger.Error("payment store failure", "error", err)
	return application.NewInternalError(err)
}
