// Package guard provides a defensive construction pattern for value objects,
// commands, and queries. Embedding a ConstructorGuard in a struct makes it
// possible to detect zero-value instances that bypassed the designated
// constructor function, keeping domain invariants enforceable.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its constructor.
// The zero value represents an object that skipped construction and
// therefore fails validation.
//
// Example:
//
//	type CreateUserCommand struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewCreateUserCommand(name string) (CreateUserCommand, error) {
//	    return CreateUserCommand{name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c CreateUserCommand) Validate() error {
//	    return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking its holder as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a properly constructed holder. For a zero-value
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
