// Package ports defines the contracts between the order management core and
// its collaborators. The interfaces establish boundaries for persistence,
// notification delivery and status-change observation, enabling dependency
// inversion and testability.
package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The core treats it as synchronous and authoritative: persistence failures
// are propagated, never retried by the core itself.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when no order exists for the id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
