// Package guard provides a defensive construction marker for value objects,
// commands, and queries. Embedding a ConstructorGuard lets a type detect
// whether it was created through its designated constructor or as a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is provided for a zero-value object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value
// fails validation, so structs created outside their constructor are rejected.
//
// Example:
//
//	type AddCommentCommand struct {
//	    content string
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewAddCommentCommand(content string) (AddCommentCommand, error) {
//	    if content == "" {
//	        return AddCommentCommand{}, errors.New("content is required")
//	    }
//	    return AddCommentCommand{content: content, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c AddCommentCommand) Validate() error {
//	    return c.guard.Validate(ErrAddCommentCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when nil)
// if the enclosing object was not created through its constructor.
func (g ConstructorGuard) Validate(validationError error) error {
	if !g.isConstructed {
		if validationError == nil {
			return ErrDefaultConstructorGuard
		}
		return validationError
	}
	return nil
}
