package world

import (
	"errors"
	"fmt"
)

// Sentinel errors. Typed errors below match them through errors.Is.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidZone     = errors.New("invalid zone")
	ErrInvalidCapacity = errors.New("invalid capacity")
	ErrDuplicate       = errors.New("duplicate")
)

// baseError carries an optional underlying cause.
type baseError struct {
	cause error
}

// Unwrap returns the underlying error.
func (e *baseError) Unwrap() error {
	return e.cause
}

// NotFoundError reports a hub (or other named resource) missing from the graph.
//
// Example:
//
//	err := world.NewNotFoundError("hub", "roof")
//	fmt.Println(err) // "hub 'roof' not found"
type NotFoundError struct {
	Kind string
	Name string
}

// NewNotFoundError creates a NotFoundError.
func NewNotFoundError(kind, name string) *NotFoundError {
	return &NotFoundError{Kind: kind, Name: name}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s '%s' not found", e.Kind, e.Name)
}

// Is matches ErrNotFound and any *NotFoundError.
func (e *NotFoundError) Is(target error) bool {
	if _, ok := target.(*NotFoundError); ok {
		return true
	}
	return target == ErrNotFound
}

// InvalidZoneError reports a zone token outside the closed zone set.
// Suggestion holds the nearest valid token, or "" when nothing is close.
type InvalidZoneError struct {
	baseError
	Value      string
	Suggestion string
}

// NewInvalidZoneError creates an InvalidZoneError.
func NewInvalidZoneError(value, suggestion string) *InvalidZoneError {
	return &InvalidZoneError{Value: value, Suggestion: suggestion}
}

func (e *InvalidZoneError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("'%s' is an invalid zone. Did you mean '%s'?", e.Value, e.Suggestion)
	}
	return fmt.Sprintf("'%s' is an invalid zone.", e.Value)
}

// Is matches ErrInvalidZone and any *InvalidZoneError.
func (e *InvalidZoneError) Is(target error) bool {
	if _, ok := target.(*InvalidZoneError); ok {
		return true
	}
	return target == ErrInvalidZone
}

// InvalidCapacityError reports a capacity that is not a non-negative integer.
type InvalidCapacityError struct {
	baseError
	Field string
	Value string
}

// NewInvalidCapacityError creates an InvalidCapacityError.
func NewInvalidCapacityError(field, value string) *InvalidCapacityError {
	return &InvalidCapacityError{Field: field, Value: value}
}

// WithCause adds a cause to the error, typically a strconv error.
func (e *InvalidCapacityError) WithCause(cause error) *InvalidCapacityError {
	e.cause = cause
	return e
}

func (e *InvalidCapacityError) Error() string {
	return fmt.Sprintf("'%s' must be a non-negative integer (got: %s)", e.Field, e.Value)
}

// Is matches ErrInvalidCapacity and any *InvalidCapacityError.
func (e *InvalidCapacityError) Is(target error) bool {
	if _, ok := target.(*InvalidCapacityError); ok {
		return true
	}
	return target == ErrInvalidCapacity
}

// DuplicateError reports a hub or link declared twice.
type DuplicateError struct {
	baseError
	Kind string
	Name string
}

// NewDuplicateError creates a DuplicateError.
func NewDuplicateError(kind, name string) *DuplicateError {
	return &DuplicateError{Kind: kind, Name: name}
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s '%s' already exists", e.Kind, e.Name)
}

// Is matches ErrDuplicate and any *DuplicateError.
func (e *DuplicateError) Is(target error) bool {
	if _, ok := target.(*DuplicateError); ok {
		return true
	}
	return target == ErrDuplicate
}
