// Package domain encodes a payment record and the rules it must satisfy
package domain

// Payment is a single money movement identified by a unique reference.
// Deleted payments stay in storage with IsDeleted set.
type Payment struct {
	ID        int64
	Reference string
	Quantity  float64
	Sender    *string
	Receiver  *string
	IsDeleted bool
}

// Validate checks the fields a payment needs before it can be written.
// A nil payment is rejected before any field is read. Quantity may be
// negative; only exactly zero is refused.
func (p *Payment) Validate() error {
	if p == nil {
		return NewNilPaymentError()
	}
	if p.Reference == "" {
		return NewMissingRequiredFieldError("reference")
	}
	if p.Quantity == 0 {
		return NewInvalidQuantityError(p.Quantity)
	}
	return nil
}

// MarkDeleted flags the payment as soft-deleted.
func (p *Payment) MarkDeleted() {
	p.IsDeleted = true
}
