package commands

import (
	"context"
	"log/slog"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Persists new orders in CREATED status inside a transaction and then hands
// a creation notification off to the dispatcher on the customer's preferred
// channel.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, dispatcher, logger)
//	cmd, _ := NewCreateOrderCommand("John Doe", "john@example.com", "9876543210", 100.00, order.Email)
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher NotificationDispatcher
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation
// operations. Requires an OrderUoWFactory for transactional persistence and
// a NotificationDispatcher for the asynchronous creation notification.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	dispatcher NotificationDispatcher,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		logger:     logger.With("component", "create_order_handler"),
	}
}

// Handle processes the order creation command.
//
// The order is created in CREATED status with a fresh identifier and
// persisted inside a transaction. Only after a successful commit is the
// creation notification dispatched, asynchronously, so notification
// delivery never blocks or rolls back the creation.
//
// Returns the created order for the caller's response mapping.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		cmd.CustomerName(),
		cmd.CustomerEmail(),
		cmd.MobileNumber(),
		cmd.TotalAmount(),
		cmd.NotificationType(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "Order created",
		"order_id", aggregate.ID().String(),
		"customer", aggregate.CustomerName(),
	)

	h.dispatcher.Dispatch(aggregate, aggregate.NotificationType(), aggregate.Status())

	return aggregate, nil
}
