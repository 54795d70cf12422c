/*
© 2026–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package qfilter

import (
	"sort"

	"github.com/haraldrudell/gridquery/qentry"
	"github.com/haraldrudell/gridquery/qindex"
	"github.com/haraldrudell/gridquery/qset"
)

// All is the conjunction of Filters: every child must pass.
type All[K comparable, V any] struct {
	Filters []Filter[K, V]
}

func NewAll[K comparable, V any](filters ...Filter[K, V]) *All[K, V] {
	return &All[K, V]{Filters: filters}
}

// NewAnd is the two-child special case of All.
func NewAnd[K comparable, V any](l, r Filter[K, V]) *All[K, V] {
	return NewAll(l, r)
}

func (f *All[K, V]) Evaluate(value V) bool {
	for _, child := range f.Filters {
		if !child.Evaluate(value) {
			return false
		}
	}
	return true
}

func (f *All[K, V]) EvaluateEntry(entry *qentry.Entry[K, V]) bool {
	for _, child := range f.Filters {
		if !child.EvaluateEntry(entry) {
			return false
		}
	}
	return true
}

// Effectiveness is the cheapest child's effectiveness: once children
// are reordered ascending, ApplyIndex starts with this cost.
func (f *All[K, V]) Effectiveness(indexMap qindex.IndexMap[K, V], keys *qset.Set[K]) int {
	var best = infiniteCost
	for _, child := range f.Filters {
		if iaf, ok := child.(IndexAwareFilter[K, V]); ok {
			if c := iaf.Effectiveness(indexMap, keys); c < best {
				best = c
			}
		}
	}
	if best == infiniteCost {
		return evalCost * keys.Len()
	}
	return best
}

// ApplyIndex orders index-aware children by ascending effectiveness
// and applies them in sequence, each narrowing keys further; children
// with no index path are collected as residuals untouched. The
// residual is nil when every child fully resolved.
func (f *All[K, V]) ApplyIndex(indexMap qindex.IndexMap[K, V], keys *qset.Set[K]) (residual Filter[K, V], fullyResolved bool) {
	type ranked struct {
		filter IndexAwareFilter[K, V]
		cost   int
	}
	var rankedChildren []ranked
	var plainChildren []Filter[K, V]
	for _, child := range f.Filters {
		if iaf, ok := child.(IndexAwareFilter[K, V]); ok {
			rankedChildren = append(rankedChildren, ranked{iaf, iaf.Effectiveness(indexMap, keys)})
		} else {
			plainChildren = append(plainChildren, child)
		}
	}
	sort.SliceStable(rankedChildren, func(i, j int) bool { return rankedChildren[i].cost < rankedChildren[j].cost })

	var residuals []Filter[K, V]
	for _, r := range rankedChildren {
		var childResidual, resolved = r.filter.ApplyIndex(indexMap, keys)
		if !resolved && childResidual != nil {
			residuals = append(residuals, childResidual)
		}
	}
	residuals = append(residuals, plainChildren...)

	if len(residuals) == 0 {
		return nil, true
	}
	if len(residuals) == 1 {
		return residuals[0], false
	}
	return NewAll(residuals...), false
}

var _ IndexAwareFilter[int, int] = (*All[int, int])(nil)
