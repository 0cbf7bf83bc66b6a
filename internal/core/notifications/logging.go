package notifications

import (
	"context"
	"log/slog"
	"time"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// loggingChannel wraps a NotificationChannel purely for observability: it
// records start, channel type, order identity, elapsed duration and outcome
// around the inner call. Errors from the inner channel are returned
// unchanged after being recorded; the decorator never masks failures.
type loggingChannel struct {
	inner  ports.NotificationChannel
	logger *slog.Logger
}

// NewLoggingChannel wraps the given channel with structured send tracing.
func NewLoggingChannel(inner ports.NotificationChannel, logger *slog.Logger) ports.NotificationChannel {
	return &loggingChannel{
		inner:  inner,
		logger: logger.With("component", "notification_channel"),
	}
}

// Send delegates to the inner channel, recording duration and outcome.
func (c *loggingChannel) Send(ctx context.Context, aggregate *order.Order, message string) error {
	c.logger.InfoContext(ctx, "Sending notification",
		"channel", c.inner.Type().String(),
		"order_id", aggregate.ID().String(),
	)

	start := time.Now()
	err := c.inner.Send(ctx, aggregate, message)
	elapsed := time.Since(start)

	if err != nil {
		c.logger.ErrorContext(ctx, "Notification send failed",
			"channel", c.inner.Type().String(),
			"order_id", aggregate.ID().String(),
			"elapsed", elapsed,
			"error", err,
		)
		return err
	}

	c.logger.InfoContext(ctx, "Notification sent",
		"channel", c.inner.Type().String(),
		"order_id", aggregate.ID().String(),
		"elapsed", elapsed,
	)
	return nil
}

// Type returns the inner channel's notification type.
func (c *loggingChannel) Type() order.NotificationType {
	return c.inner.Type()
}
