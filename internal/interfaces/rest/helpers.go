package rest

import (
	"encoding/json"
	"net/http"

	"github.com/DanielPopoola/payment-records/internal/domain"
)

// Payment is the wire shape of a payment record.
type Payment struct {
	ID        int64   `json:"id"`
	Reference string  `json:"reference"`
	Quantity  float64 `json:"quantity"`
	Sender    *string `json:"sender"`
	Receiver  *string `json:"receiver"`
	IsDeleted bool    `json:"isDeleted"`
}

func ToAPIPayment(p *domain.Payment) Payment {
	return Payment{
		ID:        p.ID,
		Reference: p.Reference,
		Quantity:  p.Quantity,
		Sender:    p.Sender,
		Receiver:  p.Receiver,
		IsDeleted: p.IsDeleted,
	}
}

func ToAPIPayments(ps []*domain.Payment) []Payment {
	out := make([]Payment, 0, len(ps))
	for _, p := range ps {
		out = append(out, ToAPIPayment(p))
	}
	return out
}

// ToDomainPayment converts a request body. A nil body yields a nil payment
// so that validation can reject it.
func ToDomainPayment(p *Payment) *domain.Payment {
	if p == nil {
		return nil
	}
	return &domain.Payment{
		ID:        p.ID,
		Reference: p.Reference,
		Quantity:  p.Quantity,
		Sender:    p.Sender,
		Receiver:  p.Receiver,
		IsDeleted: p.IsDeleted,
	}
}

func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
