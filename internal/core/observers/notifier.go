package observers

import (
	"context"
	"log/slog"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// StatusChangeNotifier fans an order status change out to a fixed set of
// observers. The observer list is supplied at construction and immutable
// afterwards.
//
// NotifyAll invokes every observer synchronously in registration order. An
// observer error is logged and does not prevent the remaining observers
// from running.
type StatusChangeNotifier struct {
	observers []ports.StatusObserver
	logger    *slog.Logger
}

// NewStatusChangeNotifier creates a notifier over the given observers.
// Observers are invoked in the order they are passed here.
func NewStatusChangeNotifier(logger *slog.Logger, observers ...ports.StatusObserver) *StatusChangeNotifier {
	return &StatusChangeNotifier{
		observers: observers,
		logger:    logger.With("component", "status_change_notifier"),
	}
}

// NotifyAll delivers the status change to every registered observer,
// passing the fully updated order and the name of the status it held before
// the change.
func (n *StatusChangeNotifier) NotifyAll(ctx context.Context, aggregate *order.Order, previousStatus string) {
	for _, observer := range n.observers {
		if err := observer.OnStatusChanged(ctx, aggregate, previousStatus); err != nil {
			n.logger.ErrorContext(ctx, "Status observer failed",
				"order_id", aggregate.ID().String(),
				"previous_status", previousStatus,
				"status", aggregate.Status().String(),
				"error", err,
			)
		}
	}
}
