package ports

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// StatusObserver reacts to an order status change, independent of the
// customer notification path. Observers receive the fully updated order and
// the name of the status it held before the change.
//
// Observers are invoked synchronously by the status change notifier; a
// returned error is recorded by the notifier but does not prevent the
// remaining observers from running.
type StatusObserver interface {
	OnStatusChanged(ctx context.Context, aggregate *order.Order, previousStatus string) error
}
