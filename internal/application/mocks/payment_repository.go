package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/DanielPopoola/payment-records/internal/application"
	"github.com/DanielPopoola/payment-records/internal/domain"
)

// MockPaymentRepository is an in-memory PaymentRepository. Any Fn field that
// is set replaces the default behaviour of its method.
type MockPaymentRepository struct {
	mu       sync.RWMutex
	payments map[int64]*domain.Payment
	nextID   int64

	FindAllFn         func(ctx context.Context) ([]*domain.Payment, error)
	FindByIDFn        func(ctx context.Context, id int64) (*domain.Payment, error)
	FindByReferenceFn func(ctx context.Context, reference string) (*domain.Payment, error)
	ExistsFn          func(ctx context.Context, id int64) (bool, error)
	CreateFn          func(ctx context.Context, payment *domain.Payment) error
	UpdateFn          func(ctx context.Context, payment *domain.Payment) error
	DeleteFn          func(ctx context.Context, id int64, soft bool) error
	WithTxFn          func(ctx context.Context, fn func(ctx context.Context, repo application.PaymentRepository) error) error

	UpdateCalls int
	DeleteCalls []DeleteCall
}

type DeleteCall struct {
	ID   int64
	Soft bool
}

var _ application.PaymentRepository = (*MockPaymentRepository)(nil)

func NewMockPaymentRepository() *MockPaymentRepository {
	return &MockPaymentRepository{
		payments: make(map[int64]*domain.Payment),
	}
}

// Seed stores copies of payments, assigning IDs to those without one.
func (m *MockPaymentRepository) Seed(payments ...*domain.Payment) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range payments {
		if p.ID == 0 {
			m.nextID++
			p.ID = m.nextID
		} else if p.ID > m.nextID {
			m.nextID = p.ID
		}
		stored := *p
		m.payments[p.ID] = &stored
	}
}

// Stored returns a copy of the stored payment, or nil.
func (m *MockPaymentRepository) Stored(id int64) *domain.Payment {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.payments[id]
	if !ok {
		return nil
	}
	out := *p
	return &out
}

func (m *MockPaymentRepository) FindAll(ctx context.Context) ([]*domain.Payment, error) {
	if m.FindAllFn != nil {
		return m.FindAllFn(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.Payment, 0, len(m.payments))
	for _, p := range m.payments {
		if !p.IsDeleted {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MockPaymentRepository) FindByID(ctx context.Context, id int64) (*domain.Payment, error) {
	if m.FindByIDFn != nil {
		return m.FindByIDFn(ctx, id)
	}
	if p := m.Stored(id); p != nil {
		return p, nil
	}
	return nil, domain.NewPaymentNotFoundError(id)
}

func (m *MockPaymentRepository) FindByReference(ctx context.Context, reference string) (*domain.Payment, error) {
	if m.FindByReferenceFn != nil {
		return m.FindByReferenceFn(ctx, reference)
	}
	all, _ := m.FindAll(ctx)
	for _, p := range all {
		if p.Reference == reference {
			return p, nil
		}
	}
	return nil, domain.NewPaymentReferenceNotFoundError(reference)
}

func (m *MockPaymentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	if m.ExistsFn != nil {
		return m.ExistsFn(ctx, id)
	}
	return m.Stored(id) != nil, nil
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, payment)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.payments {
		if p.Reference == payment.Reference {
			return domain.NewDuplicateReferenceError(payment.Reference, nil)
		}
	}
	m.nextID++
	payment.ID = m.nextID
	stored := *payment
	m.payments[payment.ID] = &stored
	return nil
}

func (m *MockPaymentRepository) Update(ctx context.Context, payment *domain.Payment) error {
	m.mu.Lock()
	m.UpdateCalls++
	m.mu.Unlock()
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, payment)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.payments[payment.ID]; ok {
		stored := *payment
		m.payments[payment.ID] = &stored
	}
	return nil
}

func (m *MockPaymentRepository) Delete(ctx context.Context, id int64, soft bool) error {
	m.mu.Lock()
	m.DeleteCalls = append(m.DeleteCalls, DeleteCall{ID: id, Soft: soft})
	m.mu.Unlock()
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id, soft)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.payments[id]
	if !ok {
		return nil
	}
	if soft {
		p.MarkDeleted()
		return nil
	}
	delete(m.payments, id)
	return nil
}

func (m *MockPaymentRepository) WithTx(ctx context.Context, fn func(ctx context.Context, repo application.PaymentRepository) error) error {
	if m.WithTxFn != nil {
		return m.WithTxFn(ctx, fn)
	}
	return fn(ctx, m)
}
