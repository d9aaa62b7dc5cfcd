package order

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrOrderItemIsNotConstructed is returned when an OrderItem was not created
// through the NewOrderItem constructor.
var ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem constructor")

// OrderItem is one line of an order. It is owned exclusively by its Order
// aggregate: a standalone item has no identifiers, and receives its owning
// order id plus a 1-based sequential item id exactly once, when the order is
// initialized. It is never mutated afterward.
//
// Price consistency (unit price equals the product's authoritative price,
// subtotal equals unit price times quantity) is checked by the owning
// aggregate during Order.ValidateOrder, not at construction.
type OrderItem struct {
	// id is the item's 1-based position within its order, assigned at
	// order initialization
	id int64

	// orderID is the owning order's identifier, assigned at order
	// initialization
	orderID kernel.UUID

	// product is the referenced catalog product with its authoritative price
	product Product

	// quantity is the ordered amount (must be positive)
	quantity int

	// price is the unit price declared for this line
	price kernel.Money

	// subTotal is the declared line total
	subTotal kernel.Money

	guard guard.ConstructorGuard
}

// NewOrderItem creates a standalone order line with no identifiers.
// The product must be constructed and the quantity positive; the declared
// price and subtotal are carried as-is and reconciled by Order.ValidateOrder.
func NewOrderItem(product Product, quantity int, price kernel.Money, subTotal kernel.Money) (*OrderItem, error) {
	if err := product.Validate(); err != nil {
		return nil, err
	}

	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	return &OrderItem{
		product:  product,
		quantity: quantity,
		price:    price,
		subTotal: subTotal,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the OrderItem was created through its constructor.
func (i *OrderItem) Validate() error {
	if i == nil {
		return ErrOrderItemIsNotConstructed
	}
	return i.guard.Validate(ErrOrderItemIsNotConstructed)
}

// ID returns the item's sequential identifier within its order.
// It is zero until the owning order has been initialized.
func (i *OrderItem) ID() int64 {
	return i.id
}

// OrderID returns the owning order's identifier.
// It is the zero UUID until the owning order has been initialized.
func (i *OrderItem) OrderID() kernel.UUID {
	return i.orderID
}

// Product returns the referenced catalog product.
func (i *OrderItem) Product() Product {
	return i.product
}

// Quantity returns the ordered amount.
func (i *OrderItem) Quantity() int {
	return i.quantity
}

// Price returns the declared unit price for this line.
func (i *OrderItem) Price() kernel.Money {
	return i.price
}

// SubTotal returns the declared line total.
func (i *OrderItem) SubTotal() kernel.Money {
	return i.subTotal
}

// initialize assigns the owning order back-reference and the sequential item
// identifier. Called exactly once by Order.InitializeOrder.
func (i *OrderItem) initialize(orderID kernel.UUID, itemID int64) {
	i.orderID = orderID
	i.id = itemID
}

// validatePrice reconciles the line against the product's authoritative
// price. The unit price must be positive and equal to the product price, and
// the subtotal must equal unit price times quantity.
func (i *OrderItem) validatePrice() error {
	if !i.price.IsGreaterThanZero() || !i.price.IsEqual(i.product.Price()) {
		return errs.NewValueIsInvalidErrorWithCause("orderItem", fmt.Errorf(
			"order item price %s is not valid for product %s with price %s",
			i.price, i.product.ID(), i.product.Price()))
	}

	if !i.subTotal.IsEqual(i.price.Multiply(i.quantity)) {
		return errs.NewValueIsInvalidErrorWithCause("orderItem", fmt.Errorf(
			"order item subtotal %s is not equal to price %s times quantity %d",
			i.subTotal, i.price, i.quantity))
	}

	return nil
}
