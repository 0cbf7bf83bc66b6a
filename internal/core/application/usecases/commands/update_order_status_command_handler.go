package commands

import (
	"context"
	"log/slog"

	"ordering/internal/core/domain/model/order"
)

// UpdateOrderStatusCommandHandler drives order status transitions.
//
// The handler loads the order, validates the requested transition against
// the state machine, persists the mutation and only then triggers the side
// effects: synchronous observer fan-out with the previous status, and
// asynchronous customer notification on the order's preferred channel.
//
// A rejected transition aborts before any persistence or notification side
// effect; a notification failure never rolls back the committed mutation.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher NotificationDispatcher
	notifier   StatusNotifier
	logger     *slog.Logger
}

// NewUpdateOrderStatusCommandHandler creates a handler for status update
// operations.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	dispatcher NotificationDispatcher,
	notifier StatusNotifier,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		notifier:   notifier,
		logger:     logger.With("component", "update_order_status_handler"),
	}
}

// Handle processes the status update command.
//
// The previous status is captured as a value before the mutation and
// threaded through to the observers and never stored on the handler, so
// concurrent updates to different orders cannot interfere with each other.
//
// Returns the updated order for the caller's response mapping.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	previousStatus := aggregate.Status()

	if err = aggregate.ChangeStatus(cmd.TargetStatus()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "Order status updated",
		"order_id", aggregate.ID().String(),
		"previous_status", previousStatus.String(),
		"status", aggregate.Status().String(),
	)

	h.dispatcher.Dispatch(aggregate, aggregate.NotificationType(), aggregate.Status())
	h.notifier.NotifyAll(ctx, aggregate, previousStatus.String())

	return aggregate, nil
}
