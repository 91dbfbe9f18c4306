package postgres

// PaymentModel is the row shape of the payments table.
type PaymentModel struct {
	ID        int64   `db:"id"`
	Reference string  `db:"reference"`
	Quantity  float64 `db:"quantity"`
	Sender    *string `db:"sender"`
	Receiver  *string `db:"receiver"`
	IsDeleted bool    `db:"is_deleted"`
}

func (PaymentModel) TableName() string { return "payments" }

func (m *PaymentModel) GetID() int64   { return m.ID }
func (m *PaymentModel) SetID(id int64) { m.ID = id }

func (*PaymentModel) Columns() []string {
	return []string{"reference", "quantity", "sender", "receiver", "is_deleted"}
}

func (m *PaymentModel) Values() []any {
	return []any{m.Reference, m.Quantity, m.Sender, m.Receiver, m.IsDeleted}
}

func (m *PaymentModel) IsSoftDeleted() bool { return m.IsDeleted }
func (m *PaymentModel) MarkDeleted()        { m.IsDeleted = true }
