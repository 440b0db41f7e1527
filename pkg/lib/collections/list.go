// Package collections builds containers from a variable list of items.
package collections

// NewList returns the items in order, duplicates included, backed by a fresh
// array. It never returns nil.
func NewList[T any](items ...T) []T {
	list := make([]T, 0, len(items))
	return append(list, items...)
}
