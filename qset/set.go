/*
© 2026–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

// Package qset provides a generic hash-backed key-set with the
// union/intersect/difference algebra the index and filter layers use to
// narrow a query's surviving key-set.
package qset

import "golang.org/x/exp/maps"

// Set is an unordered collection of unique keys.
type Set[K comparable] struct {
	m map[K]struct{}
}

// New returns an empty Set, optionally pre-sized.
func New[K comparable](sizeHint ...int) (set *Set[K]) {
	var n int
	if len(sizeHint) > 0 {
		n = sizeHint[0]
	}
	return &Set[K]{m: make(map[K]struct{}, n)}
}

// Of returns a Set containing keys.
func Of[K comparable](keys ...K) (set *Set[K]) {
	set = New[K](len(keys))
	for _, key := range keys {
		set.Add(key)
	}
	return
}

// Add inserts key into the set. Idempotent.
func (s *Set[K]) Add(key K) { s.m[key] = struct{}{} }

// Remove deletes key from the set. No-op if absent.
func (s *Set[K]) Remove(key K) { delete(s.m, key) }

// Contains reports whether key is a member.
func (s *Set[K]) Contains(key K) (contains bool) {
	_, contains = s.m[key]
	return
}

// Len returns the number of members.
func (s *Set[K]) Len() (length int) { return len(s.m) }

// Keys returns the members as a slice, undefined order.
func (s *Set[K]) Keys() (keys []K) { return maps.Keys(s.m) }

// Range traverses members until rangeFunc returns false.
//   - order is undefined
func (s *Set[K]) Range(rangeFunc func(key K) (keepGoing bool)) {
	for key := range s.m {
		if !rangeFunc(key) {
			return
		}
	}
}

// Clone returns a shallow copy of the set.
func (s *Set[K]) Clone() (clone *Set[K]) {
	return &Set[K]{m: maps.Clone(s.m)}
}

// Clear empties the set.
func (s *Set[K]) Clear() { s.m = make(map[K]struct{}) }
