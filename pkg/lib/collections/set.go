package collections

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/exp/maps"
)

// Set is an unordered collection of distinct items. Distinctness follows Go
// equality for T. The zero Set is empty and ready to use.
type Set[T comparable] struct {
	items map[T]struct{}
}

// NewSet returns a set holding each distinct item once. The set owns its
// storage; it never shares memory with items.
func NewSet[T comparable](items ...T) Set[T] {
	s := Set[T]{items: make(map[T]struct{}, len(items))}
	for _, item := range items {
		s.items[item] = struct{}{}
	}
	return s
}

// Add inserts item, returning false if it was already present.
func (s *Set[T]) Add(item T) bool {
	if _, ok := s.items[item]; ok {
		return false
	}
	if s.items == nil {
		s.items = make(map[T]struct{})
	}
	s.items[item] = struct{}{}
	return true
}

// Remove deletes item, returning false if it was not present.
func (s *Set[T]) Remove(item T) bool {
	if _, ok := s.items[item]; !ok {
		return false
	}
	delete(s.items, item)
	return true
}

func (s Set[T]) Contains(item T) bool {
	_, ok := s.items[item]
	return ok
}

func (s Set[T]) Len() int {
	return len(s.items)
}

func (s Set[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Slice returns the items in no particular order.
func (s Set[T]) Slice() []T {
	return lo.Keys(s.items)
}

func (s Set[T]) Clone() Set[T] {
	return Set[T]{items: maps.Clone(s.items)}
}

// Equal reports whether both sets hold the same items.
func (s Set[T]) Equal(other Set[T]) bool {
	return maps.Equal(s.items, other.items)
}

func (s Set[T]) String() string {
	parts := make([]string, 0, len(s.items))
	for item := range s.items {
		parts = append(parts, fmt.Sprint(item))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
