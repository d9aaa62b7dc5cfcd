package order

import (
	"errors"
	"fmt"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrDeliveryAddressIsNotConstructed is returned when a DeliveryAddress was
// not created through the NewDeliveryAddress constructor.
var ErrDeliveryAddressIsNotConstructed = errors.New(
	"DeliveryAddress must be created via NewDeliveryAddress constructor")

// DeliveryAddress is the destination for an order. It is an immutable value
// object compared by its street, city, and postal code.
type DeliveryAddress struct { //nolint:recvcheck //using for validation
	street     string
	city       string
	postalCode string

	guard guard.ConstructorGuard
}

// NewDeliveryAddress creates a DeliveryAddress. All three parts are required.
func NewDeliveryAddress(street string, city string, postalCode string) (DeliveryAddress, error) {
	address := DeliveryAddress{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		address.setStreet(street),
		address.setCity(city),
		address.setPostalCode(postalCode),
	); err != nil {
		return DeliveryAddress{}, err
	}

	return address, nil
}

// Validate ensures the DeliveryAddress was created through its constructor.
func (a DeliveryAddress) Validate() error {
	return a.guard.Validate(ErrDeliveryAddressIsNotConstructed)
}

// Street returns the street line of the address.
func (a DeliveryAddress) Street() string {
	return a.street
}

// City returns the city of the address.
func (a DeliveryAddress) City() string {
	return a.city
}

// PostalCode returns the postal code of the address.
func (a DeliveryAddress) PostalCode() string {
	return a.postalCode
}

// IsEqual compares two addresses by value.
func (a DeliveryAddress) IsEqual(other DeliveryAddress) bool {
	return a.street == other.street && a.city == other.city && a.postalCode == other.postalCode
}

// String renders the address as a single display line.
func (a DeliveryAddress) String() string {
	return fmt.Sprintf("%s, %s %s", a.street, a.postalCode, a.city)
}

func (a *DeliveryAddress) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	a.street = street
	return nil
}

func (a *DeliveryAddress) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}

func (a *DeliveryAddress) setPostalCode(postalCode string) error {
	if postalCode == "" {
		return errs.NewValueIsRequiredError("postal code")
	}
	a.postalCode = postalCode
	return nil
}
