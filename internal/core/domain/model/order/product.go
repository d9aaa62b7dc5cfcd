package order

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrProductIsNotConstructed is returned when a Product was not created
// through the NewProduct constructor.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is the catalog reference carried by an order line. It is supplied by
// the restaurant service with an already-validated identity and authoritative
// price; the order aggregate only reads it to reconcile line prices.
type Product struct { //nolint:recvcheck //using for validation
	id    kernel.UUID
	name  string
	price kernel.Money

	guard guard.ConstructorGuard
}

// NewProduct creates a Product reference with a validated identity and
// authoritative price.
func NewProduct(id kernel.UUID, name string, price kernel.Money) (Product, error) {
	product := Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		product.setID(id),
		product.setName(name),
		product.setPrice(price),
	); err != nil {
		return Product{}, err
	}

	return product, nil
}

// Validate ensures the Product was created through its constructor.
func (p Product) Validate() error {
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the product's unique identifier.
func (p Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's display name.
func (p Product) Name() string {
	return p.name
}

// Price returns the product's authoritative price.
func (p Product) Price() kernel.Money {
	return p.price
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}
