package commands_test

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"shasanseva/internal/core/application/usecases/commands"
	"shasanseva/internal/core/domain/model/admin"
	"shasanseva/internal/core/domain/model/kernel"
	"shasanseva/internal/core/domain/model/notification"
	"shasanseva/internal/core/domain/model/order"
	"shasanseva/internal/core/domain/model/scheme"
	"shasanseva/internal/core/ports"
	"shasanseva/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ApplyPatch(ctx context.Context, patch order.Patch) (bool, error) {
	args := m.Called(ctx, patch)
	return args.Bool(0), args.Error(1)
}

type MockSchemeRepository struct{ mock.Mock }

func (m *MockSchemeRepository) Get(ctx context.Context, id kernel.UUID) (*scheme.Scheme, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*scheme.Scheme), args.Error(1)
}

type MockProofRepository struct{ mock.Mock }

func (m *MockProofRepository) Add(ctx context.Context, proof order.Proof) error {
	args := m.Called(ctx, proof)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) SchemeRepository() ports.SchemeRepository {
	args := m.Called()
	return args.Get(0).(ports.SchemeRepository)
}

func (m *MockUoW) ProofRepository() ports.ProofRepository {
	args := m.Called()
	return args.Get(0).(ports.ProofRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) create() *MockUoW {
	args := m.Called()
	return args.Get(0).(*MockUoW)
}

func (m *MockUoWFactory) Orders() commands.OrderUoWFactory {
	return orderFactory(func() commands.OrderUoW { return m.create() })
}

func (m *MockUoWFactory) Catalog() commands.CatalogUoWFactory {
	return catalogFactory(func() commands.CatalogUoW { return m.create() })
}

func (m *MockUoWFactory) Proofs() commands.ProofUoWFactory {
	return proofFactory(func() commands.ProofUoW { return m.create() })
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Enqueue(ctx context.Context, n notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

type MockPaymentVerifier struct{ mock.Mock }

func (m *MockPaymentVerifier) Verify(gatewayOrderID, paymentID, signature string) error {
	args := m.Called(gatewayOrderID, paymentID, signature)
	return args.Error(0)
}

type orderFactory func() commands.OrderUoW

func (f orderFactory) Create() commands.OrderUoW { return f() }

type catalogFactory func() commands.CatalogUoW

func (f catalogFactory) Create() commands.CatalogUoW { return f() }

type proofFactory func() commands.ProofUoW

func (f proofFactory) Create() commands.ProofUoW { return f() }

// memoryStore keeps orders and proofs in memory and honours the conditional
// update contract of ports.OrderRepository.
type memoryStore struct {
	mu     sync.Mutex
	orders map[kernel.UUID]order.Snapshot
	proofs []order.Proof
	writes int
}

func newMemoryStore(orders ...*order.Order) *memoryStore {
	s := &memoryStore{orders: make(map[kernel.UUID]order.Snapshot)}
	for _, o := range orders {
		s.orders[o.ID()] = o.Snapshot()
	}
	return s
}

func (s *memoryStore) Create() *memoryUoW { return &memoryUoW{store: s} }

func (s *memoryStore) Orders() commands.OrderUoWFactory {
	return orderFactory(func() commands.OrderUoW { return s.Create() })
}

func (s *memoryStore) Proofs() commands.ProofUoWFactory {
	return proofFactory(func() commands.ProofUoW { return s.Create() })
}

func (s *memoryStore) Add(_ context.Context, o *order.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.ID()] = o.Snapshot()
	return nil
}

func (s *memoryStore) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot, ok := s.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return order.RestoreOrder(snapshot)
}

func (s *memoryStore) ApplyPatch(_ context.Context, p order.Patch) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot, ok := s.orders[p.OrderID]
	if !ok || snapshot.Status != p.ExpectedStatus ||
		!kernel.OptionalUUIDsEqual(snapshot.AssignedTo, p.ExpectedAssignee) {
		return false, nil
	}

	o, err := order.RestoreOrder(snapshot)
	if err != nil {
		return false, err
	}
	if err = o.Apply(p); err != nil {
		return false, err
	}
	s.orders[p.OrderID] = o.Snapshot()
	s.writes++
	return true, nil
}

func (s *memoryStore) snapshot(id kernel.UUID) order.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders[id]
}

type memoryProofs struct{ store *memoryStore }

func (p memoryProofs) Add(_ context.Context, proof order.Proof) error {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()
	p.store.proofs = append(p.store.proofs, proof)
	return nil
}

type memoryUoW struct{ store *memoryStore }

func (u *memoryUoW) Begin(context.Context) error { return nil }
func (u *memoryUoW) Commit(context.Context) error { return nil }
func (u *memoryUoW) Rollback(context.Context) error { return nil }
func (u *memoryUoW) OrderRepository() ports.OrderRepository { return u.store }
func (u *memoryUoW) SchemeRepository() ports.SchemeRepository { return nil }
func (u *memoryUoW) ProofRepository() ports.ProofRepository { return memoryProofs{store: u.store} }

// syncBuffer collects log output written from several goroutines.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func testLogger() (*slog.Logger, *syncBuffer) {
	buf := &syncBuffer{}
	return slog.New(slog.NewTextHandler(buf, nil)), buf
}

func newAdmin(t *testing.T, role admin.Role) admin.Actor {
	t.Helper()
	a, err := admin.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return a
}

// newOrderIn builds an order already in status, paid for and assigned to
// assignee when given.
func newOrderIn(t *testing.T, status order.Status, assignee *admin.Actor) *order.Order {
	t.Helper()
	amount, err := kernel.MoneyFromString("250.00")
	require.NoError(t, err)

	created := time.Now().Add(-48 * time.Hour).UTC()
	s := order.Snapshot{
		ID:            kernel.NewUUID(),
		UserID:        kernel.NewUUID(),
		SchemeID:      kernel.NewUUID(),
		Status:        status,
		PaymentAmount: amount,
		CreatedAt:     created,
		UpdatedAt:     created,
	}
	if status != order.PendingPayment {
		paidAt := created.Add(time.Hour)
		s.PaidAt = &paidAt
		s.PaymentID = "pay_test"
		s.GatewayOrderID = "order_test"
	}
	if assignee != nil {
		id := assignee.ID()
		s.AssignedTo = &id
	}

	o, err := order.RestoreOrder(s)
	require.NoError(t, err)
	return o
}
