package order

import (
	"errors"
	"fmt"

	"ordering/internal/pkg/errs"
)

// ErrInvalidTransition is the sentinel for illegal status transitions.
// Use errors.Is to classify transition failures at the boundary.
var ErrInvalidTransition = errors.New("invalid order status transition")

// InvalidTransitionError describes a rejected status transition.
// From and To carry the status names involved.
type InvalidTransitionError struct {
	From string
	To   string
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given
// source and target statuses.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from.String(), To: to.String()}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: from %s to %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Created ──┬──> Shipped ──┬──> Completed
//	          │              └──> Cancelled
//	          ├──> Completed
//	          └──> Cancelled
//
// Completed and Cancelled are terminal: no transition leaves them, and
// self-transitions are never legal for any status.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when an order is first placed.
	Created

	// Shipped indicates the order has left the warehouse.
	Shipped

	// Completed indicates the order has been delivered.
	// This is a terminal state with no further transitions allowed.
	Completed

	// Cancelled indicates the order was cancelled before completion.
	// This is a terminal state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string
// representations. All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Created:   "CREATED",
		Shipped:   "SHIPPED",
		Completed: "COMPLETED",
		Cancelled: "CANCELLED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:   "CREATED",
		Shipped:   "SHIPPED",
		Completed: "COMPLETED",
		Cancelled: "CANCELLED",
	}
}

// getStatusTransitions returns the complete transition table of the order
// state machine. A transition is legal only if the target appears in the
// source's entry. Terminal statuses have no entry.
func getStatusTransitions() map[Status][]Status {
	return map[Status][]Status{
		Created: {Shipped, Completed, Cancelled},
		Shipped: {Completed, Cancelled},
	}
}

// StatusFromString parses a status from its persisted or transport name
// ("CREATED", "SHIPPED", "COMPLETED", "CANCELLED").
//
// Returns:
//   - the parsed Status on success
//   - Unknown and an error if the name does not match a valid status
func StatusFromString(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid order status", name),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Created, Shipped, Completed, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical name of the status.
//
// Returns "CREATED", "SHIPPED", "COMPLETED" or "CANCELLED" for valid
// statuses and "UNKNOWN" for anything else. This method implements the
// fmt.Stringer interface and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status permits no outgoing transitions.
// Completed and Cancelled are the terminal statuses.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// CanTransitionTo reports whether the transition from s to next is legal
// under the order state machine, without performing it.
//
// The transition table is strict: self-transitions are never legal, and no
// transition leaves a terminal status regardless of the requested target.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range getStatusTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo validates and performs the transition from s to next.
//
// Returns:
//   - (next, nil) when the transition is legal
//   - (Unknown, *InvalidTransitionError) otherwise; no side effects occur
//
// Example:
//
//	newStatus, err := currentStatus.TransitionTo(order.Shipped)
//	if err != nil {
//	    // transition rejected, order state unchanged
//	}
func (s Status) TransitionTo(next Status) (Status, error) {
	if !s.CanTransitionTo(next) {
		return Unknown, NewInvalidTransitionError(s, next)
	}
	return next, nil
}
