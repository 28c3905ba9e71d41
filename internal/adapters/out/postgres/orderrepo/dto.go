// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and database
// rows.
package orderrepo

import (
	"time"

	"expertise/internal/core/domain/model/kernel"
	"expertise/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The operator column is nullable and indexed: unassigned orders carry NULL
// until an operator takes the order into work.
type OrderDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ClientID    uuid.UUID  `gorm:"type:uuid;index;not null"`
	OperatorID  *uuid.UUID `gorm:"type:uuid;index"`
	Title       string     `gorm:"not null"`
	Description string
	Status      int       `gorm:"index;not null"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database
// representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var operatorID *uuid.UUID
	if id := aggregate.Operator(); id != nil {
		raw := id.Bytes()
		operatorID = &raw
	}

	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		ClientID:    aggregate.ClientID().Bytes(),
		OperatorID:  operatorID,
		Title:       aggregate.Title(),
		Description: aggregate.Description(),
		Status:      int(aggregate.Status()),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder, re-running the aggregate's own validation.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	var operatorID *kernel.UUID
	if dto.OperatorID != nil {
		opID, opErr := kernel.UUIDFromBytes((*dto.OperatorID)[:])
		if opErr != nil {
			return nil, opErr
		}

		operatorID = &opID
	}

	return order.RestoreOrder(
		id,
		clientID,
		operatorID,
		dto.Title,
		dto.Description,
		order.Status(dto.Status),
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
