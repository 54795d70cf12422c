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

// Any is the disjunction of Filters: at least one child must pass.
type Any[K comparable, V any] struct {
	Filters []Filter[K, V]
}

func NewAny[K comparable, V any](filters ...Filter[K, V]) *Any[K, V] {
	return &Any[K, V]{Filters: filters}
}

// NewOr is the two-child special case of Any.
func NewOr[K comparable, V any](l, r Filter[K, V]) *Any[K, V] {
	return NewAny(l, r)
}

func (f *Any[K, V]) Evaluate(value V) bool {
	for _, child := range f.Filters {
		if child.Evaluate(value) {
			return true
		}
	}
	return false
}

func (f *Any[K, V]) EvaluateEntry(entry *qentry.Entry[K, V]) bool {
	for _, child := range f.Filters {
		if child.EvaluateEntry(entry) {
			return true
		}
	}
	return false
}

// Effectiveness is the last child's cost: Or must consider every
// child regardless of how cheap the others are, so its total cost is
// dominated by whichever child is evaluated last.
func (f *Any[K, V]) Effectiveness(indexMap qindex.IndexMap[K, V], keys *qset.Set[K]) int {
	if len(f.Filters) == 0 {
		return 0
	}
	var last = f.Filters[len(f.Filters)-1]
	if iaf, ok := last.(IndexAwareFilter[K, V]); ok {
		return iaf.Effectiveness(indexMap, keys)
	}
	return evalCost * keys.Len()
}

// ApplyIndex applies each child to an independent copy of keys,
// accumulating provable matches into matched and collecting residual
// work for every child that could not fully resolve. Keys proven by a
// fully-resolved child are also carried forward as a Key residual
// term, since the driver evaluates the returned residual alone and
// never re-consults matched.
func (f *Any[K, V]) ApplyIndex(indexMap qindex.IndexMap[K, V], keys *qset.Set[K]) (residual Filter[K, V], fullyResolved bool) {
	var original = keys.Clone()
	var matched = qset.New[K]()
	var provenMatched = qset.New[K]() // keys a fully-resolved child already proved pass
	var residuals []Filter[K, V]
	var anyUnresolved bool

	for _, child := range f.Filters {
		if iaf, ok := child.(IndexAwareFilter[K, V]); ok {
			var copy = original.Clone()
			var childResidual, resolved = iaf.ApplyIndex(indexMap, copy)
			matched = qset.Union(matched, copy)
			if resolved {
				provenMatched = qset.Union(provenMatched, copy)
				continue
			}
			anyUnresolved = true
			if childResidual != nil {
				residuals = append(residuals, NewInKeySet(childResidual, copy))
			}
			continue
		}
		anyUnresolved = true
		matched = qset.Union(matched, original)
		residuals = append(residuals, child)
	}

	keys.RetainAll(matched) // only ever removes: provably-failing keys matched no child's surviving copy
	if !anyUnresolved {
		return nil, true
	}
	// A key a fully-resolved child already proved matching must survive
	// no matter what an unresolved sibling's own residual says about it,
	// since Or only needs one true disjunct. The driver consults only
	// the returned residual from here on, never matched again, so
	// provenMatched is folded back in as its own Key term.
	if provenMatched.Len() > 0 {
		residuals = append(residuals, NewKey[K, V](provenMatched))
	}
	if len(residuals) == 1 {
		return residuals[0], false
	}
	return NewAny(residuals...), false
}

var _ IndexAwareFilter[int, int] = (*Any[int, int])(nil)
