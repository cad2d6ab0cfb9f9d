package commands_test

import (
	"context"
	"time"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindFirstByArticle(ctx context.Context, articleName string) (*order.Order, error) {
	args := m.Called(ctx, articleName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) LockArticles(ctx context.Context, articleNames []string) error {
	args := m.Called(ctx, articleNames)
	return args.Error(0)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderUoW) TrackedOrders() []*order.Order {
	args := m.Called()
	switch v := args.Get(0).(type) {
	case func() []*order.Order:
		return v()
	case []*order.Order:
		return v
	default:
		return nil
	}
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockPriceCache struct{ mock.Mock }

func (m *MockPriceCache) Get(ctx context.Context, articleName string) (*kernel.Price, error) {
	args := m.Called(ctx, articleName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*kernel.Price), args.Error(1)
}

func (m *MockPriceCache) Remember(ctx context.Context, articleName string, price kernel.Price) error {
	args := m.Called(ctx, articleName, price)
	return args.Error(0)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) PublishOrderChanged(ctx context.Context, kind order.ChangeKind, o *order.Order) error {
	args := m.Called(ctx, kind, o)
	return args.Error(0)
}

type MockMetrics struct{ mock.Mock }

func (m *MockMetrics) OrdersCreated(count int)     { m.Called(count) }
func (m *MockMetrics) PriceReused(overridden bool) { m.Called(overridden) }
func (m *MockMetrics) OrderCanceled()              { m.Called() }

// memoryOrderRepository keeps orders in insertion order, like an auto-increment table.
// written holds the orders added or updated since the last Begin.
type memoryOrderRepository struct {
	orders  []*order.Order
	locked  []string
	written []*order.Order
}

func (r *memoryOrderRepository) Add(_ context.Context, o *order.Order) error {
	r.orders = append(r.orders, o)
	if err := o.AssignID(int64(len(r.orders))); err != nil {
		return err
	}
	r.written = append(r.written, o)
	return nil
}

func (r *memoryOrderRepository) Update(_ context.Context, o *order.Order) error {
	r.written = append(r.written, o)
	return nil
}

func (r *memoryOrderRepository) Get(_ context.Context, id int64) (*order.Order, error) {
	for _, o := range r.orders {
		if o.ID() == id {
			return o, nil
		}
	}
	return nil, nil
}

func (r *memoryOrderRepository) FindFirstByArticle(_ context.Context, articleName string) (*order.Order, error) {
	for _, o := range r.orders {
		if o.ArticleName() == articleName {
			return o, nil
		}
	}
	return nil, nil
}

func (r *memoryOrderRepository) LockArticles(_ context.Context, articleNames []string) error {
	r.locked = append(r.locked, articleNames...)
	return nil
}

type memoryUoW struct {
	repo      *memoryOrderRepository
	committed bool
}

func (u *memoryUoW) Begin(context.Context) error {
	u.repo.written = nil
	return nil
}

func (u *memoryUoW) Rollback(context.Context) error { return nil }

func (u *memoryUoW) Commit(context.Context) error {
	u.committed = true
	return nil
}

func (u *memoryUoW) OrderRepository() ports.OrderRepository { return u.repo }

func (u *memoryUoW) TrackedOrders() []*order.Order { return u.repo.written }

type memoryUoWFactory struct{ uow *memoryUoW }

func (f memoryUoWFactory) Create() commands.OrderUoW { return f.uow }

func fixedClock() kernel.Clock {
	return kernel.ClockFunc(func() time.Time {
		return time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)
	})
}

func mustPrice(s string) kernel.Price {
	p, err := kernel.NewPrice(decimal.RequireFromString(s))
	if err != nil {
		panic(err)
	}
	return p
}

func mustOrder(id int64, article string, price string) *order.Order {
	created, _ := kernel.NewDate(2024, time.March, 1)
	o, err := order.RestoreOrder(id, created, nil, "Someone", article, mustPrice(price), 1)
	if err != nil {
		panic(err)
	}
	return o
}
