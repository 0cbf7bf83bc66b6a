package notifications

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

const (
	// DefaultMaxAttempts is the delivery attempt budget applied when no
	// explicit value is configured.
	DefaultMaxAttempts = 3

	// retryInitialInterval is the delay before the second attempt; later
	// delays grow exponentially up to retryMaxInterval. The cap keeps the
	// worst-case duration of a dispatch bounded.
	retryInitialInterval = 50 * time.Millisecond
	retryMaxInterval     = 2 * time.Second
)

// retryChannel wraps a NotificationChannel with a bounded retry budget.
// Send makes up to maxAttempts delivery attempts with capped exponential
// backoff; attempt N+1 never starts before attempt N finished. When the
// budget is exhausted the terminal failure is wrapped in a
// *DeliveryFailedError and returned, never swallowed.
type retryChannel struct {
	inner       ports.NotificationChannel
	maxAttempts int
	logger      *slog.Logger
}

// NewRetryChannel wraps the given channel with bounded retry semantics.
// A non-positive maxAttempts falls back to DefaultMaxAttempts.
func NewRetryChannel(inner ports.NotificationChannel, maxAttempts int, logger *slog.Logger) ports.NotificationChannel {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &retryChannel{
		inner:       inner,
		maxAttempts: maxAttempts,
		logger:      logger.With("component", "notification_retry"),
	}
}

// Send attempts delivery through the inner channel until it succeeds or the
// attempt budget is exhausted. Every failed attempt is logged individually
// before the next one starts.
func (c *retryChannel) Send(ctx context.Context, aggregate *order.Order, message string) error {
	attempts := 0

	operation := func() error {
		attempts++
		return c.inner.Send(ctx, aggregate, message)
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = retryInitialInterval
	policy.MaxInterval = retryMaxInterval
	policy.MaxElapsedTime = 0 // the attempt budget bounds the retry loop

	notify := func(err error, next time.Duration) {
		c.logger.WarnContext(ctx, "Notification attempt failed, retrying",
			"channel", c.inner.Type().String(),
			"order_id", aggregate.ID().String(),
			"attempt", attempts,
			"next_attempt_in", next,
			"error", err,
		)
	}

	err := backoff.RetryNotify(operation, backoff.WithMaxRetries(policy, uint64(c.maxAttempts-1)), notify)
	if err != nil {
		return NewDeliveryFailedError(c.inner.Type().String(), attempts, err)
	}
	return nil
}

// Type returns the inner channel's notification type.
func (c *retryChannel) Type() order.NotificationType {
	return c.inner.Type()
}
