package notify

import (
	"context"
	"log/slog"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
)

// SMSChannel delivers order notifications to the customer's mobile number.
type SMSChannel struct {
	logger *slog.Logger
}

// NewSMSChannel creates an SMS notification channel.
func NewSMSChannel(logger *slog.Logger) (*SMSChannel, error) {
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	return &SMSChannel{
		logger: logger.With("component", "sms_channel"),
	}, nil
}

// Type returns the notification type this channel serves.
func (c *SMSChannel) Type() order.NotificationType {
	return order.SMS
}

// Send delivers the composed message to the customer's mobile number.
func (c *SMSChannel) Send(_ context.Context, aggregate *order.Order, message string) error {
	if aggregate == nil {
		return errs.NewValueIsRequiredError("aggregate")
	}
	if message == "" {
		return errs.NewValueIsRequiredError("message")
	}

	// The SMS gateway is stubbed: a production deployment plugs a provider
	// client in here without touching the core pipeline.
	c.logger.Info("sms sent",
		"order_id", aggregate.ID().String(),
		"recipient", aggregate.MobileNumber(),
		"message", message)

	return nil
}
