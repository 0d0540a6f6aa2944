// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and database rows.
package orderrepo

import (
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The display number and its assignment timestamp are nullable and stored as
// NULL until assignment; sentinel values are never written.
type OrderDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderNumber      *int       `gorm:"index"`
	NumberAssignedAt *time.Time `gorm:"index"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var number *int
	if n := aggregate.Number(); n != nil {
		v := n.Value()
		number = &v
	}

	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		OrderNumber:      number,
		NumberAssignedAt: aggregate.NumberAssignedAt(),
	}
}

// toDomain converts a database row to an order aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var number *order.Number
	if dto.OrderNumber != nil {
		n, numberErr := order.NewNumber(*dto.OrderNumber)
		if numberErr != nil {
			return nil, numberErr
		}
		number = &n
	}

	return order.RestoreOrder(id, number, dto.NumberAssignedAt)
}
