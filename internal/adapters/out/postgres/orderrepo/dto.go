// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Implements the repository pattern for the order
// aggregate, handling the conversion between the aggregate (order, user
// reference, item lines) and its relational shape across the orders and
// order_items tables.
package orderrepo

import (
	"time"

	"ordering/internal/adapters/out/postgres/productrepo"
	"ordering/internal/adapters/out/postgres/userrepo"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The owning user and the item lines are separate tables joined on read.
type OrderDTO struct {
	ID        uuid.UUID        `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID        `gorm:"type:uuid;index"`
	User      userrepo.UserDTO `gorm:"foreignKey:UserID"`
	Status    string           `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Items     []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one persisted order line. The unit price is stored
// as an exact numeric amount plus a currency code, captured at ordering time.
type OrderItemDTO struct {
	ID                string                 `gorm:"primaryKey"`
	OrderID           uuid.UUID              `gorm:"type:uuid;index"`
	ProductID         uuid.UUID              `gorm:"type:uuid;index"`
	Product           productrepo.ProductDTO `gorm:"foreignKey:ProductID"`
	Quantity          int
	UnitPriceAmount   decimal.Decimal `gorm:"type:numeric(14,2)"`
	UnitPriceCurrency string          `gorm:"type:varchar(3)"`
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
// Only foreign keys are populated for the user and product references; the
// referenced rows are owned by their own repositories.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:                item.ID(),
			OrderID:           aggregate.ID().Bytes(),
			ProductID:         item.Product().ID().Bytes(),
			Quantity:          item.Quantity(),
			UnitPriceAmount:   item.UnitPrice().Amount(),
			UnitPriceCurrency: item.UnitPrice().Currency(),
		})
	}

	return OrderDTO{
		ID:        aggregate.ID().Bytes(),
		UserID:    aggregate.User().ID().Bytes(),
		Status:    aggregate.Status().String(),
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
		Items:     items,
	}
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder.
// The DTO must have been loaded with its user and item products.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	owner, err := userrepo.ToDomain(dto.User)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]*order.OrderItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		p, itemErr := productrepo.ToDomain(itemDTO.Product)
		if itemErr != nil {
			return nil, itemErr
		}

		unitPrice, itemErr := kernel.NewMoney(itemDTO.UnitPriceAmount, itemDTO.UnitPriceCurrency)
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.RestoreOrderItem(itemDTO.ID, p, itemDTO.Quantity, unitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, owner, items, status, dto.CreatedAt, dto.UpdatedAt)
}
