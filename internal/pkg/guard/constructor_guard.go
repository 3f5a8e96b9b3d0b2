// Package guard provides the constructor guard embedded by value objects,
// entities and commands so that zero values can be told apart from values
// built through their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when the
// caller passes a nil validation error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as built by its constructor. Embed it as a
// private field, set it with NewConstructorGuard inside the constructor and call
// Validate from the owner's Validate method.
//
// Example usage:
//
//	var ErrParcelNotConstructed = errors.New("Parcel must be created via NewParcel")
//
//	type Parcel struct {
//	    weightKg float64
//	    guard    guard.ConstructorGuard
//	}
//
//	func NewParcel(weightKg float64) (Parcel, error) {
//	    if weightKg < 0 {
//	        return Parcel{}, errors.New("weight cannot be negative")
//	    }
//	    return Parcel{weightKg: weightKg, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (p Parcel) Validate() error {
//	    return p.guard.Validate(ErrParcelNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard flagged as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero value it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
