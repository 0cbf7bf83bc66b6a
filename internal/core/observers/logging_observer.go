package observers

import (
	"context"
	"log/slog"

	"ordering/internal/core/domain/model/order"
)

// LoggingObserver records every order status change for audit visibility.
type LoggingObserver struct {
	logger *slog.Logger
}

// NewLoggingObserver creates an observer that logs status changes.
func NewLoggingObserver(logger *slog.Logger) *LoggingObserver {
	return &LoggingObserver{
		logger: logger.With("component", "order_status_log"),
	}
}

// OnStatusChanged logs the transition with the order identity and both
// status names.
func (o *LoggingObserver) OnStatusChanged(ctx context.Context, aggregate *order.Order, previousStatus string) error {
	o.logger.InfoContext(ctx, "Order status changed",
		"order_id", aggregate.ID().String(),
		"previous_status", previousStatus,
		"status", aggregate.Status().String(),
	)
	return nil
}
