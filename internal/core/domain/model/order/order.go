package order

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order represents a customer order in the ordering system. It is the
// aggregate root that owns the order's line items and manages the lifecycle
// from placement through payment and approval, or cancellation.
//
// Order follows these invariants:
//   - Before InitializeOrder, the order has no identifier, no tracking
//     identifier, and no status; ValidateOrder enforces this ordering
//   - After a successful ValidateOrder, the declared total price is positive
//     and equals the sum of all line subtotals
//   - Each line's unit price equals the referenced product's authoritative
//     price and its subtotal equals unit price times quantity
//   - Status transitions follow the state machine defined on Status
//
// A failed validation or transition leaves the aggregate unchanged. The
// aggregate assumes exclusive access for the duration of one operation;
// concurrent callers must be serialized by the persistence layer.
type Order struct {
	// id is the unique identifier, assigned by InitializeOrder
	id kernel.UUID

	// customerID references the customer placing the order
	customerID kernel.UUID

	// restaurantID references the restaurant preparing the order
	restaurantID kernel.UUID

	// deliveryAddress is the destination for the order
	deliveryAddress DeliveryAddress

	// price is the declared total, reconciled against line subtotals
	price kernel.Money

	// items are the order's lines, in placement order
	items []*OrderItem

	// trackingID is the customer-facing identifier, assigned by InitializeOrder
	trackingID kernel.UUID

	// status is the current lifecycle state; Unknown until InitializeOrder
	status Status

	// failureMessages collects failure descriptions reported by downstream
	// collaborators on cancellation; transitions never touch it
	failureMessages []string

	guard guard.ConstructorGuard
}

// NewOrder creates an Order in its pre-initialization state: no identifier,
// no tracking identifier, no status. The customer and restaurant identities
// and the delivery address are validated here because they arrive from
// collaborating services; the declared price and the line items are
// deliberately carried as-is so that ValidateOrder owns every price rule.
func NewOrder(
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	deliveryAddress DeliveryAddress,
	price kernel.Money,
	items []*OrderItem,
) (*Order, error) {
	order := &Order{
		price: price,
		items: items,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setCustomerID(customerID),
		order.setRestaurantID(restaurantID),
		order.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence with its full state.
// All identifiers and the status must already be valid.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	deliveryAddress DeliveryAddress,
	price kernel.Money,
	items []*OrderItem,
	trackingID kernel.UUID,
	status Status,
	failureMessages []string,
) (*Order, error) {
	order, err := NewOrder(customerID, restaurantID, deliveryAddress, price, items)
	if err != nil {
		return nil, err
	}

	if err := errors.Join(
		id.Validate(),
		trackingID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	order.id = id
	order.trackingID = trackingID
	order.status = status
	order.failureMessages = failureMessages

	for i, item := range order.items {
		item.initialize(id, int64(i+1))
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. Called when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
// It is the zero UUID until InitializeOrder has been called.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer placing the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// RestaurantID returns the identifier of the restaurant preparing the order.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// DeliveryAddress returns the destination address.
func (o *Order) DeliveryAddress() DeliveryAddress {
	return o.deliveryAddress
}

// Price returns the declared total price.
func (o *Order) Price() kernel.Money {
	return o.price
}

// Items returns the order's line items in placement order.
func (o *Order) Items() []*OrderItem {
	return o.items
}

// TrackingID returns the customer-facing tracking identifier.
// It is the zero UUID until InitializeOrder has been called.
func (o *Order) TrackingID() kernel.UUID {
	return o.trackingID
}

// Status returns the current lifecycle status of the order.
func (o *Order) Status() Status {
	return o.status
}

// FailureMessages returns the failure descriptions reported by downstream
// collaborators.
func (o *Order) FailureMessages() []string {
	return o.failureMessages
}

// AppendFailureMessages records failure descriptions reported by downstream
// collaborators (payment, restaurant approval). Empty entries are dropped.
// Status transitions themselves never modify this list.
func (o *Order) AppendFailureMessages(messages ...string) {
	for _, message := range messages {
		if message == "" {
			continue
		}
		o.failureMessages = append(o.failureMessages, message)
	}
}

// InitializeOrder assigns the order a fresh identifier and tracking
// identifier, moves it to Pending, and numbers the line items 1..N in
// placement order while giving each its owning-order back-reference.
//
// It is meant to be called exactly once, after ValidateOrder. There is no
// re-entrancy guard: a second call reassigns identifiers and is a caller
// error.
func (o *Order) InitializeOrder() {
	o.id = kernel.NewUUID()
	o.trackingID = kernel.NewUUID()
	o.status = Pending
	o.initializeOrderItems()
}

func (o *Order) initializeOrderItems() {
	var itemID int64 = 1
	for _, item := range o.items {
		item.initialize(o.id, itemID)
		itemID++
	}
}

// ValidateOrder checks the order's structural invariants before it is
// initialized. It runs three checks in sequence, failing fast on the first
// violation:
//  1. the order has no identifier and no status yet (validation precedes
//     identity assignment)
//  2. the declared total price is present and greater than zero
//  3. every line's price is valid against its product and the sum of line
//     subtotals equals the declared total
//
// Validation is read-only: a failure leaves the aggregate unchanged.
func (o *Order) ValidateOrder() error {
	if err := o.validateInitialOrder(); err != nil {
		return err
	}
	if err := o.validateTotalPrice(); err != nil {
		return err
	}
	return o.validateItemsPrice()
}

func (o *Order) validateInitialOrder() error {
	if o.status != Unknown || o.id.Validate() == nil {
		return errs.NewValueIsInvalidErrorWithCause("order",
			errors.New("order is not in correct state for initialization"))
	}
	return nil
}

func (o *Order) validateTotalPrice() error {
	if !o.price.IsGreaterThanZero() {
		return errs.NewValueIsInvalidErrorWithCause("order",
			errors.New("total price must be greater than zero"))
	}
	return nil
}

func (o *Order) validateItemsPrice() error {
	itemsTotal := kernel.ZeroMoney()
	for _, item := range o.items {
		if err := item.validatePrice(); err != nil {
			return err
		}
		itemsTotal = itemsTotal.Add(item.SubTotal())
	}

	if !o.price.IsEqual(itemsTotal) {
		return errs.NewValueIsInvalidErrorWithCause("order", fmt.Errorf(
			"total price %s is not equal to order items total %s",
			o.price, itemsTotal))
	}

	return nil
}

// Pay records the payment confirmation, moving the order from Pending to
// Paid. Fails without mutation if the order is in any other state.
func (o *Order) Pay() error {
	newStatus, err := o.status.Pay()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Approve records the restaurant approval, moving the order from Paid to
// Approved. Fails without mutation if the order is in any other state.
func (o *Order) Approve() error {
	newStatus, err := o.status.Approve()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// InitCancel starts cancellation of a paid order, moving it from Paid to
// Cancelling while compensation runs. Fails without mutation if the order is
// in any other state.
func (o *Order) InitCancel() error {
	newStatus, err := o.status.InitCancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel finalizes cancellation, moving the order from Cancelling or Pending
// to Cancelled. Fails without mutation if the order is in any other state.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setDeliveryAddress(deliveryAddress DeliveryAddress) error {
	if err := deliveryAddress.Validate(); err != nil {
		return err
	}
	o.deliveryAddress = deliveryAddress
	return nil
}
