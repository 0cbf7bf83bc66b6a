// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status and notification type are stored by enum name so rows stay readable
// and survive enum reordering.
type OrderDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerName     string    `gorm:"type:varchar(255);not null"`
	CustomerEmail    string    `gorm:"type:varchar(255);not null"`
	MobileNumber     string    `gorm:"type:varchar(10);not null"`
	TotalAmount      float64   `gorm:"type:decimal(12,2);not null"`
	Status           string    `gorm:"type:varchar(32);not null;index"`
	NotificationType string    `gorm:"type:varchar(32);not null"`
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		CustomerName:     aggregate.CustomerName(),
		CustomerEmail:    aggregate.CustomerEmail(),
		MobileNumber:     aggregate.MobileNumber(),
		TotalAmount:      aggregate.TotalAmount(),
		Status:           aggregate.Status().String(),
		NotificationType: aggregate.NotificationType().String(),
		CreatedAt:        aggregate.CreatedAt(),
		UpdatedAt:        aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	notificationType, err := order.NotificationTypeFromString(dto.NotificationType)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.CustomerName,
		dto.CustomerEmail,
		dto.MobileNumber,
		dto.TotalAmount,
		status,
		notificationType,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
