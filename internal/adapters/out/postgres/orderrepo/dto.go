// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper
// indexing for querying by tracking identifier and status.
type OrderDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID       `gorm:"type:uuid;index"`
	RestaurantID    uuid.UUID       `gorm:"type:uuid;index"`
	TrackingID      uuid.UUID       `gorm:"type:uuid;uniqueIndex"`
	Address         AddressDTO      `gorm:"embedded;embeddedPrefix:address_"`
	Price           decimal.Decimal `gorm:"type:numeric(19,2)"`
	Status          int             `gorm:"index"`
	FailureMessages []string        `gorm:"serializer:json;type:jsonb"`
	Items           []OrderItemDTO  `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents the embedded delivery address within the order table.
type AddressDTO struct {
	Street     string
	City       string
	PostalCode string
}

// OrderItemDTO represents one order line. The item identifier is unique only
// within its order, so the primary key is composite.
type OrderItemDTO struct {
	ID           int64           `gorm:"primaryKey;autoIncrement:false"`
	OrderID      uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductID    uuid.UUID       `gorm:"type:uuid"`
	ProductName  string
	ProductPrice decimal.Decimal `gorm:"type:numeric(19,2)"`
	Quantity     int
	Price        decimal.Decimal `gorm:"type:numeric(19,2)"`
	SubTotal     decimal.Decimal `gorm:"type:numeric(19,2)"`
}

// TableName specifies the database table name for order item entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:           item.ID(),
			OrderID:      aggregate.ID().Bytes(),
			ProductID:    item.Product().ID().Bytes(),
			ProductName:  item.Product().Name(),
			ProductPrice: item.Product().Price().Amount(),
			Quantity:     item.Quantity(),
			Price:        item.Price().Amount(),
			SubTotal:     item.SubTotal().Amount(),
		})
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		CustomerID:   aggregate.CustomerID().Bytes(),
		RestaurantID: aggregate.RestaurantID().Bytes(),
		TrackingID:   aggregate.TrackingID().Bytes(),
		Address: AddressDTO{
			Street:     aggregate.DeliveryAddress().Street(),
			City:       aggregate.DeliveryAddress().City(),
			PostalCode: aggregate.DeliveryAddress().PostalCode(),
		},
		Price:           aggregate.Price().Amount(),
		Status:          int(aggregate.Status()),
		FailureMessages: aggregate.FailureMessages(),
		Items:           items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder; item identifiers
// are reassigned in stored item order.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	trackingID, err := kernel.UUIDFromBytes(dto.TrackingID[:])
	if err != nil {
		return nil, err
	}

	address, err := order.NewDeliveryAddress(dto.Address.Street, dto.Address.City, dto.Address.PostalCode)
	if err != nil {
		return nil, err
	}

	items := make([]*order.OrderItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, itemErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		product, itemErr := order.NewProduct(productID, itemDTO.ProductName, kernel.NewMoney(itemDTO.ProductPrice))
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewOrderItem(
			product,
			itemDTO.Quantity,
			kernel.NewMoney(itemDTO.Price),
			kernel.NewMoney(itemDTO.SubTotal),
		)
		if itemErr != nil {
			return nil, itemErr
		}

		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		customerID,
		restaurantID,
		address,
		kernel.NewMoney(dto.Price),
		items,
		trackingID,
		order.Status(dto.Status),
		dto.FailureMessages,
	)
}
