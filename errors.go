package injector

import (
	"errors"
	"fmt"
	"strings"
)

// ErrRegistrationClosed is returned by Register once the container has started resolving.
var ErrRegistrationClosed = errors.New("registration closed: container has already resolved services")

// AmbiguousConstructorError represents a registration offering more than one constructor.
type AmbiguousConstructorError struct {
	Type  string
	Count int
}

func (e *AmbiguousConstructorError) Error() string {
	return fmt.Sprintf("type %s has %d constructors, only one constructor per type allowed", e.Type, e.Count)
}

// InvalidConstructorError represents a constructor whose signature cannot build its type.
type InvalidConstructorError struct {
	Type   string
	Reason string
}

func (e *InvalidConstructorError) Error() string {
	return fmt.Sprintf("invalid constructor for type %s: %s", e.Type, e.Reason)
}

// DuplicateRegistrationError represents a second registration of the same type.
type DuplicateRegistrationError struct {
	Type string
}

func (e *DuplicateRegistrationError) Error() string {
	return fmt.Sprintf("type %s already registered", e.Type)
}

// UnregisteredTypeError represents a request for a type that was never registered.
type UnregisteredTypeError struct {
	Type string
}

func (e *UnregisteredTypeError) Error() string {
	return fmt.Sprintf("type %s not registered", e.Type)
}

// CircularDependencyError represents a resolution that would revisit a type
// already under construction. Type closes the cycle; Path is the ancestor
// chain from the root request down to and including the revisit.
type CircularDependencyError struct {
	Type string
	Path []string
}

func (e *CircularDependencyError) Error() string {
	if len(e.Path) == 0 {
		return fmt.Sprintf("circular dependency detected involving %s", e.Type)
	}
	return fmt.Sprintf("circular dependency detected involving %s: %s", e.Type, strings.Join(e.Path, " -> "))
}

// ReentrantResolutionError represents a constructor asking the container for
// a service while the container is still resolving on the same goroutine.
type ReentrantResolutionError struct {
	Type string
}

func (e *ReentrantResolutionError) Error() string {
	return fmt.Sprintf("re-entrant resolution of %s: constructors must not call the container", e.Type)
}

// ConstructionError represents a constructor that returned an error.
type ConstructionError struct {
	Type string
	Err  error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("construction failed for type %s: %v", e.Type, e.Err)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}
