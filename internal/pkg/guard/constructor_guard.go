// Package guard detects values that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil
// error and the guarded value is a zero value.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in value objects and commands that must only be
// built through their constructor. Its zero value reports "not constructed",
// so a struct literal of the enclosing type fails validation.
//
// Example usage:
//
//	var ErrTitleNotConstructed = errors.New("Title must be created via NewTitle")
//
//	type Title struct {
//	    value string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewTitle(value string) Title {
//	    return Title{value: value, guard: guard.NewConstructorGuard()}
//	}
//
//	func (t Title) Validate() error {
//	    return t.guard.Validate(ErrTitleNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking its owner as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	switch {
	case g.isConstructed:
		return nil
	case validationError != nil:
		return validationError
	default:
		return ErrDefaultConstructorGuard
	}
}
