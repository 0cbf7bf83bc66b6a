package ports

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// NotificationChannel is a pluggable delivery mechanism for customer
// notifications (email, SMS). Implementations deliver a composed message for
// an order; cross-cutting behavior such as logging and retry is layered on
// top by decorators, never inside the channel itself.
type NotificationChannel interface {
	// Send delivers the message to the customer of the given order.
	// A non-nil error indicates the delivery attempt failed.
	Send(ctx context.Context, aggregate *order.Order, message string) error

	// Type returns the notification type this channel serves.
	Type() order.NotificationType
}
