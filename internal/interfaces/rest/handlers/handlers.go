package handlers

import (
	"context"
	"log/slog"

	"github.com/DanielPopoola/payment-records/internal/domain"
	"github.com/go-chi/chi/v5"
)

type PaymentService interface {
	GetAll(ctx context.Context) ([]*domain.Payment, error)
	GetByID(ctx context.Context, id int64) (*domain.Payment, error)
	GetByReference(ctx context.Context, reference string) (*domain.Payment, error)
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	Update(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	Delete(ctx context.Context, id int64, soft bool) error
}

type PaymentHandler struct {
	service PaymentService
	logger  *slog.Logger
}

func NewPaymentHandler(service PaymentService, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		logger:  logger,
	}
}

func (h *PaymentHandler) RegisterRoutes(r chi.Router) {
	r.Route("/payments", func(r chi.Router) {
		r.Get("/", h.HandleList)
		r.Post("/", h.HandleCreate)
		r.Get("/ref/{reference}", h.HandleGetByReference)
		r.Get("/{id}", h.HandleGetByID)
		r.Put("/{id}", h.HandleUpdate)
		r.Delete("/{id}", h.HandleDelete)
	})
}
