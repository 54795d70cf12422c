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

// Not is the complement of Inner.
type Not[K comparable, V any] struct {
	Inner Filter[K, V]
}

func NewNot[K comparable, V any](inner Filter[K, V]) *Not[K, V] {
	return &Not[K, V]{Inner: inner}
}

func (f *Not[K, V]) Evaluate(value V) bool { return !f.Inner.Evaluate(value) }

func (f *Not[K, V]) EvaluateEntry(entry *qentry.Entry[K, V]) bool {
	return !f.Inner.EvaluateEntry(entry)
}

func (f *Not[K, V]) Effectiveness(indexMap qindex.IndexMap[K, V], keys *qset.Set[K]) int {
	if iaf, ok := f.Inner.(IndexAwareFilter[K, V]); ok {
		return iaf.Effectiveness(indexMap, keys)
	}
	return evalCost * keys.Len()
}

// partialChecker is implemented by every qindex index type
// (SimpleMapIndex and ConditionalIndex) — used here without importing
// their concrete types, since Not only needs to know which entries of
// an index map to hide from Inner.
type partialChecker interface {
	IsPartial() bool
}

// nonPartial returns a copy of indexMap with every partial index
// removed — a partial index cannot be used to prove a key fails,
// since its absence may be due to exclusion rather than predicate
// failure.
func nonPartial[K comparable, V any](indexMap qindex.IndexMap[K, V]) qindex.IndexMap[K, V] {
	var filtered = make(qindex.IndexMap[K, V], len(indexMap))
	for tag, idx := range indexMap {
		if pc, ok := idx.(partialChecker); ok && pc.IsPartial() {
			continue
		}
		filtered[tag] = idx
	}
	return filtered
}

// ApplyIndex restricts Inner to non-partial indexes only, then either
// inverts a full resolution (the keys Inner's pass removed are Not's
// matches) or, when Inner can't fully resolve against the restricted
// view, emits Any(Key(removedByInner), InKeySet(Not(residual),
// survivors)) — never narrowing keys itself in that case, since
// nothing proven false by a partial-restricted pass can safely be
// removed from the outer set. removedByInner and survivors partition
// keys, so the Any correctly routes each key to whichever half
// decides it: proven Inner-failures pass Not outright, while
// undetermined survivors still need Not(residual) evaluated.
func (f *Not[K, V]) ApplyIndex(indexMap qindex.IndexMap[K, V], keys *qset.Set[K]) (residual Filter[K, V], fullyResolved bool) {
	var iaf, ok = f.Inner.(IndexAwareFilter[K, V])
	if !ok {
		return f, false
	}

	var restricted = nonPartial(indexMap)
	var survivors = keys.Clone()
	var innerResidual, resolved = iaf.ApplyIndex(restricted, survivors)

	var removedByInner = keys.Clone()
	removedByInner.RemoveAll(survivors) // keys Inner proved fail, over the non-partial view

	if resolved {
		keys.RetainAll(removedByInner)
		return nil, true
	}
	return NewAny[K, V](NewKey[K, V](removedByInner), NewInKeySet[K, V](NewNot(innerResidual), survivors)), false
}

var _ IndexAwareFilter[int, int] = (*Not[int, int])(nil)
