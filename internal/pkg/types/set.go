// Package types holds small generic containers shared across packages.
package types

// Set is a generic hash set for comparable types.
//
// It is backed by a map[T]struct{} and is mutable: Add, Insert and Delete modify
// the set in place. It is not safe for concurrent use.
type Set[T comparable] map[T]struct{}

// NewSet creates a Set holding the provided elements.
func NewSet[T comparable](data ...T) Set[T] {
	set := make(Set[T], len(data))
	set.Add(data...)
	return set
}

// Add inserts one or more elements into the set.
func (s Set[T]) Add(values ...T) {
	for _, val := range values {
		s[val] = struct{}{}
	}
}

// Insert adds value and reports whether it was absent before the call.
func (s Set[T]) Insert(value T) bool {
	if s.Has(value) {
		return false
	}

	s[value] = struct{}{}
	return true
}

// Has reports whether value is in the set.
func (s Set[T]) Has(value T) bool {
	_, ok := s[value]
	return ok
}

// Delete removes one or more elements from the set.
func (s Set[T]) Delete(values ...T) {
	for _, val := range values {
		delete(s, val)
	}
}
