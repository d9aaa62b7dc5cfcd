package commands_test

import (
	"context"
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
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

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByTrackingID(ctx context.Context, trackingID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, trackingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInCancellingStatus(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
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

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, event order.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func testAddress(t *testing.T) order.DeliveryAddress {
	t.Helper()
	address, err := order.NewDeliveryAddress("12 Main Street", "Springfield", "10001")
	require.NoError(t, err)
	return address
}

// testLine builds a consistent order line for the given unit price and
// quantity.
func testLine(t *testing.T, price string, quantity int) commands.OrderLine {
	t.Helper()
	unitPrice := mustMoney(t, price)
	product, err := order.NewProduct(kernel.NewUUID(), "Margherita", unitPrice)
	require.NoError(t, err)

	return commands.OrderLine{
		Product:  product,
		Quantity: quantity,
		Price:    unitPrice,
		SubTotal: unitPrice.Multiply(quantity),
	}
}

// storedOrder builds an initialized aggregate in the given status for
// repository mocks to return.
func storedOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	unitPrice := mustMoney(t, "15.00")
	product, err := order.NewProduct(kernel.NewUUID(), "Margherita", unitPrice)
	require.NoError(t, err)
	item, err := order.NewOrderItem(product, 1, unitPrice, unitPrice)
	require.NoError(t, err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), testAddress(t), unitPrice, []*order.OrderItem{item})
	require.NoError(t, err)
	require.NoError(t, aggregate.ValidateOrder())
	aggregate.InitializeOrder()

	switch status {
	case order.Pending:
	case order.Paid:
		require.NoError(t, aggregate.Pay())
	case order.Cancelling:
		require.NoError(t, aggregate.Pay())
		require.NoError(t, aggregate.InitCancel())
	default:
		t.Fatalf("unsupported stored status %s", status)
	}

	return aggregate
}
