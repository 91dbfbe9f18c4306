package postgres

import (
	"github.com/DanielPopoola/payment-records/internal/domain"
)

// toDomainModel: maps db model to domain entity
func toDomainModel(m *PaymentModel) *domain.Payment {
	return &domain.Payment{
		ID:        m.ID,
		Reference: m.Reference,
		Quantity:  m.Quantity,
		Sender:    m.Sender,
		Receiver:  m.Receiver,
		IsDeleted: m.IsDeleted,
	}
}

// toDBModel: maps domain entity to db model
func toDBModel(p *domain.Payment) *PaymentModel {
	return &PaymentModel{
		ID:        p.ID,
		Reference: p.Reference,
		Quantity:  p.Quantity,
		Sender:    p.Sender,
		Receiver:  p.Receiver,
		IsDeleted: p.IsDeleted,
	}
}

func toDomainModels(ms []*PaymentModel) []*domain.Payment {
	payments := make([]*domain.Payment, 0, len(ms))
	for _, m := range ms {
		payments = append(payments, toDomainModel(m))
	}
	return payments
}
