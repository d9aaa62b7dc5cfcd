package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	customerID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	address := testAddress(t)
	price := mustMoney(t, "20.00")
	lines := []commands.OrderLine{testLine(t, "10.00", 2)}

	cmd, err := commands.NewCreateOrderCommand(customerID, restaurantID, address, price, lines)
	require.NoError(t, err)
	assert.Equal(t, customerID, cmd.CustomerID())
	assert.Equal(t, restaurantID, cmd.RestaurantID())
	assert.True(t, address.IsEqual(cmd.Address()))
	assert.True(t, price.IsEqual(cmd.Price()))
	assert.Len(t, cmd.Lines(), 1)
}

func TestNewCreateOrderCommand_InvalidCustomerID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	lines := []commands.OrderLine{testLine(t, "10.00", 1)}
	_, err := commands.NewCreateOrderCommand(
		invalidID, kernel.NewUUID(), testAddress(t), mustMoney(t, "10.00"), lines)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_InvalidAddress(t *testing.T) {
	lines := []commands.OrderLine{testLine(t, "10.00", 1)}
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), order.DeliveryAddress{}, mustMoney(t, "10.00"), lines)
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrDeliveryAddressIsNotConstructed)
}

func TestNewCreateOrderCommand_NoLines(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), testAddress(t), mustMoney(t, "10.00"), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateOrderCommand_PriceNotReconciledHere(t *testing.T) {
	// A declared price that disagrees with the lines is accepted by the
	// command; the aggregate rejects it during ValidateOrder.
	lines := []commands.OrderLine{testLine(t, "10.00", 2)}
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), testAddress(t), mustMoney(t, "99.99"), lines)
	require.NoError(t, err)
	assert.Equal(t, "99.99", cmd.Price().String())
}
