// Package order provides domain entities and business logic for order
// management. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, customer details and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - NotificationType: The customer's preferred notification channel
//
// Key business rules:
//   - Orders must have a valid unique identifier and a positive total amount
//   - Customer name, email and a ten digit mobile number are required
//   - Order status follows a strict workflow: CREATED -> SHIPPED -> COMPLETED/CANCELLED,
//     with CREATED also allowed to move directly to COMPLETED or CANCELLED
//   - COMPLETED and CANCELLED are terminal; no transition leaves them
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
