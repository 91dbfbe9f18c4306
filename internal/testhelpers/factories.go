package testhelpers

import (
	"github.com/DanielPopoola/payment-records/internal/domain"
	"github.com/google/uuid"
)

// UniqueReference returns a payment reference that no other test uses.
func UniqueReference() string {
	return "ref-" + uuid.New().String()
}

// NewPayment returns a valid, unsaved payment with a unique reference.
func NewPayment() *domain.Payment {
	sender := "sender-" + uuid.New().String()[:8]
	receiver := "receiver-" + uuid.New().String()[:8]
	return &domain.Payment{
		Reference: UniqueReference(),
		Quantity:  100,
		Sender:    &sender,
		Receiver:  &receiver,
	}
}
