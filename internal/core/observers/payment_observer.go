package observers

import (
	"context"
	"log/slog"

	"ordering/internal/core/domain/model/order"
)

// PaymentObserver reacts to terminal status changes on the payment side:
// completed orders trigger a payment capture, cancelled orders release the
// payment authorization. The payment gateway integration is stubbed; the
// calls are recorded through the logger.
type PaymentObserver struct {
	logger *slog.Logger
}

// NewPaymentObserver creates the payment-triggering observer.
func NewPaymentObserver(logger *slog.Logger) *PaymentObserver {
	return &PaymentObserver{
		logger: logger.With("component", "payment_observer"),
	}
}

// OnStatusChanged triggers the payment action matching the new status.
// Non-terminal statuses require no payment action.
func (o *PaymentObserver) OnStatusChanged(ctx context.Context, aggregate *order.Order, previousStatus string) error {
	switch aggregate.Status() {
	case order.Completed:
		return o.capturePayment(ctx, aggregate)
	case order.Cancelled:
		return o.releaseAuthorization(ctx, aggregate)
	default:
		return nil
	}
}

// capturePayment charges the customer for a delivered order.
func (o *PaymentObserver) capturePayment(ctx context.Context, aggregate *order.Order) error {
	o.logger.InfoContext(ctx, "Capturing payment",
		"order_id", aggregate.ID().String(),
		"amount", aggregate.TotalAmount(),
	)
	return nil
}

// releaseAuthorization frees the payment hold for a cancelled order.
func (o *PaymentObserver) releaseAuthorization(ctx context.Context, aggregate *order.Order) error {
	o.logger.InfoContext(ctx, "Releasing payment authorization",
		"order_id", aggregate.ID().String(),
		"amount", aggregate.TotalAmount(),
	)
	return nil
}
