// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, persistence, and side-effect triggering
// (notification dispatch and observer fan-out).
package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. These abstractions ensure data consistency around order
// mutations.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderUoW manages transactions for order operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)

// Side-effect collaborators triggered by command handlers after a committed
// order mutation.
type (
	// NotificationDispatcher hands a customer notification off for
	// asynchronous delivery. Dispatch returns immediately; delivery failures
	// never propagate back to the command handler.
	NotificationDispatcher interface {
		Dispatch(aggregate *order.Order, channelType order.NotificationType, status order.Status)
	}

	// StatusNotifier fans a committed status change out to the registered
	// observers, synchronously, before the command handler returns.
	StatusNotifier interface {
		NotifyAll(ctx context.Context, aggregate *order.Order, previousStatus string)
	}
)
