package notify

import (
	"context"
	"log/slog"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
)

// EmailChannel delivers order notifications to the customer's email address.
type EmailChannel struct {
	logger *slog.Logger
}

// NewEmailChannel creates an email notification channel.
func NewEmailChannel(logger *slog.Logger) (*EmailChannel, error) {
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	return &EmailChannel{
		logger: logger.With("component", "email_channel"),
	}, nil
}

// Type returns the notification type this channel serves.
func (c *EmailChannel) Type() order.NotificationType {
	return order.Email
}

// Send delivers the composed message to the customer's email address.
func (c *EmailChannel) Send(_ context.Context, aggregate *order.Order, message string) error {
	if aggregate == nil {
		return errs.NewValueIsRequiredError("aggregate")
	}
	if message == "" {
		return errs.NewValueIsRequiredError("message")
	}

	// The email gateway is stubbed: a production deployment plugs an SMTP
	// or provider client in here without touching the core pipeline.
	c.logger.Info("email sent",
		"order_id", aggregate.ID().String(),
		"recipient", aggregate.CustomerEmail(),
		"message", message)

	return nil
}
