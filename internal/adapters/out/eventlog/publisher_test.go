package eventlog_test

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"ordering/internal/adapters/out/eventlog"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrder(t *testing.T) *order.Order {
	t.Helper()

	price, err := kernel.MoneyFromString("15.00")
	require.NoError(t, err)
	product, err := order.NewProduct(kernel.NewUUID(), "Margherita", price)
	require.NoError(t, err)
	item, err := order.NewOrderItem(product, 1, price, price)
	require.NoError(t, err)
	address, err := order.NewDeliveryAddress("12 Main Street", "Springfield", "10001")
	require.NoError(t, err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), address, price, []*order.OrderItem{item})
	require.NoError(t, err)
	require.NoError(t, aggregate.ValidateOrder())
	aggregate.InitializeOrder()

	return aggregate
}

func TestPublisher_Publish(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	publisher := eventlog.NewPublisher(logger)

	aggregate := testOrder(t)
	event := order.NewOrderCreatedEvent(aggregate, time.Now().UTC())

	err := publisher.Publish(t.Context(), event)
	require.NoError(t, err)

	logged := buf.String()
	assert.Contains(t, logged, "order.created")
	assert.Contains(t, logged, aggregate.ID().String())
	assert.Contains(t, logged, aggregate.TrackingID().String())
	assert.Contains(t, logged, "Pending")
}

func TestPublisher_NilLoggerFallsBack(t *testing.T) {
	publisher := eventlog.NewPublisher(nil)

	aggregate := testOrder(t)
	event := order.NewOrderPaidEvent(aggregate, time.Now().UTC())

	require.NoError(t, publisher.Publish(t.Context(), event))
}
