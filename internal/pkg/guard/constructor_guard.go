// Package guard provides the constructor-guard pattern used by commands and
// queries to ensure they are only created through their designated constructor
// functions. A zero-value object fails validation, which prevents handlers
// from operating on requests that bypassed input validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error
// is supplied and the object was not created via its constructor.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. Embed it in a
// struct and set it with NewConstructorGuard inside the constructor; the
// zero value reports the object as not constructed.
//
// Example:
//
//	type CreateOrderCommand struct {
//	    customerName string
//	    guard        guard.ConstructorGuard
//	}
//
//	func NewCreateOrderCommand(name string) (CreateOrderCommand, error) {
//	    if name == "" {
//	        return CreateOrderCommand{}, errors.New("name is required")
//	    }
//	    return CreateOrderCommand{customerName: name, guard: guard.NewConstructorGuard()}, nil
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// constructed. Call it only from the object's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the object was properly constructed. Otherwise it
// returns validationError, or ErrDefaultConstructorGuard when validationError
// is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
