/*
© 2026–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package qfilter

import (
	"github.com/haraldrudell/gridquery/qentry"
	"github.com/haraldrudell/gridquery/qindex"
	"github.com/haraldrudell/gridquery/qset"
)

// Key retains only keys present in Keys. It is an internal helper
// built by combinators (e.g. Not's unresolved path) rather than
// constructed directly by callers — it carries no extractor and is
// not serializable.
type Key[K comparable, V any] struct {
	Keys *qset.Set[K]
}

func NewKey[K comparable, V any](keys *qset.Set[K]) *Key[K, V] {
	return &Key[K, V]{Keys: keys}
}

// Evaluate has no key to test against — Key only has meaning against
// an Entry. Consistent with the rest of the package's zero-key
// convention for value-only evaluation (evalValue), a bare value is
// tested as if keyed by K's zero value.
func (f *Key[K, V]) Evaluate(value V) bool {
	var zero K
	return f.Keys.Contains(zero)
}

func (f *Key[K, V]) EvaluateEntry(entry *qentry.Entry[K, V]) bool {
	return f.Keys.Contains(entry.GetKey())
}

// Effectiveness is 1: a Key filter only ever performs a set-membership
// retain, needing no index lookup.
func (f *Key[K, V]) Effectiveness(indexMap qindex.IndexMap[K, V], keys *qset.Set[K]) int {
	return 1
}

// ApplyIndex always fully resolves: keys is intersected with f.Keys.
func (f *Key[K, V]) ApplyIndex(indexMap qindex.IndexMap[K, V], keys *qset.Set[K]) (residual Filter[K, V], fullyResolved bool) {
	keys.RetainAll(f.Keys)
	return nil, true
}

// InKeySet restricts evaluation to Keys, then delegates to Inner.
type InKeySet[K comparable, V any] struct {
	Inner Filter[K, V]
	Keys  *qset.Set[K]
}

func NewInKeySet[K comparable, V any](inner Filter[K, V], keys *qset.Set[K]) *InKeySet[K, V] {
	return &InKeySet[K, V]{Inner: inner, Keys: keys}
}

// Evaluate has no key to restrict against, so it delegates straight
// to Inner — the restriction only applies to entry-based evaluation.
func (f *InKeySet[K, V]) Evaluate(value V) bool {
	return f.Inner.Evaluate(value)
}

func (f *InKeySet[K, V]) EvaluateEntry(entry *qentry.Entry[K, V]) bool {
	return f.Keys.Contains(entry.GetKey()) && f.Inner.EvaluateEntry(entry)
}

func (f *InKeySet[K, V]) Effectiveness(indexMap qindex.IndexMap[K, V], keys *qset.Set[K]) int {
	if iaf, ok := f.Inner.(IndexAwareFilter[K, V]); ok {
		return iaf.Effectiveness(indexMap, keys)
	}
	return evalCost * keys.Len()
}

// ApplyIndex intersects keys with Keys first, then delegates any
// further narrowing to Inner if it is index-aware.
func (f *InKeySet[K, V]) ApplyIndex(indexMap qindex.IndexMap[K, V], keys *qset.Set[K]) (residual Filter[K, V], fullyResolved bool) {
	keys.RetainAll(f.Keys)
	if iaf, ok := f.Inner.(IndexAwareFilter[K, V]); ok {
		return iaf.ApplyIndex(indexMap, keys)
	}
	return f.Inner, false
}

var (
	_ IndexAwareFilter[int, int] = (*Key[int, int])(nil)
	_ IndexAwareFilter[int, int] = (*InKeySet[int, int])(nil)
)
