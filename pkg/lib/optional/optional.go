// Package optional represents values that may be absent without relying on nil.
package optional

import (
	"errors"
	"fmt"
)

// ErrNoValue is returned by Get when the Optional holds no value.
var ErrNoValue = errors.New("optional: no value present")

// Optional holds a value of type T that may or may not be present.
// The zero Optional is empty.
type Optional[T any] struct {
	value   T
	present bool
}

// Of returns an Optional holding v. Zero values of T are still present.
func Of[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// Empty returns an Optional with no value.
func Empty[T any]() Optional[T] {
	return Optional[T]{}
}

// FromPointer returns an empty Optional for a nil pointer, otherwise one
// holding the pointed-to value.
func FromPointer[T any](p *T) Optional[T] {
	if p == nil {
		return Empty[T]()
	}
	return Of(*p)
}

func (o Optional[T]) IsPresent() bool {
	return o.present
}

func (o Optional[T]) IsAbsent() bool {
	return !o.present
}

// Get returns the held value, or ErrNoValue if there is none.
func (o Optional[T]) Get() (T, error) {
	if !o.present {
		var zero T
		return zero, ErrNoValue
	}
	return o.value, nil
}

func (o Optional[T]) GetOrDefault(defaultValue T) T {
	if !o.present {
		return defaultValue
	}
	return o.value
}

func (o Optional[T]) String() string {
	if !o.present {
		return "Optional.empty"
	}
	return fmt.Sprintf("Optional[%v]", o.value)
}

// compile time check that Optional[T] implements fmt.Stringer
var _ fmt.Stringer = Optional[string]{}
