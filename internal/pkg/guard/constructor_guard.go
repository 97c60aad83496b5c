// Package guard enforces constructor usage for value objects and commands.
// Embedding a ConstructorGuard in a struct makes zero-value instances
// detectable, so objects that bypassed their constructor fail validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is passed
// for a zero-value guard. It guarantees validation always fails with a
// meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value
// is invalid; only NewConstructorGuard produces a valid guard.
//
// Example:
//
//	type CreateShipmentCommand struct {
//	    orderID string
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewCreateShipmentCommand(orderID string) (CreateShipmentCommand, error) {
//	    if orderID == "" {
//	        return CreateShipmentCommand{}, errors.New("orderID is required")
//	    }
//	    return CreateShipmentCommand{
//	        orderID: orderID,
//	        guard:   guard.NewConstructorGuard(),
//	    }, nil
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a properly constructed guard. For a zero-value
// guard it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
