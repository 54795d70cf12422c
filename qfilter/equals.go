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

// Equals matches entries whose extracted attribute equals Value. A
// failed or null extraction never matches.
type Equals[K comparable, V any, X comparable] struct {
	Extractor TaggedExtractor[K, V, X]
	Value     X
}

func NewEquals[K comparable, V any, X comparable](extractor TaggedExtractor[K, V, X], value X) *Equals[K, V, X] {
	return &Equals[K, V, X]{Extractor: extractor, Value: value}
}

func (f *Equals[K, V, X]) Evaluate(value V) bool {
	var extracted, err = evalValue[K](f.Extractor, value)
	return err == nil && extracted == f.Value
}

func (f *Equals[K, V, X]) EvaluateEntry(entry *qentry.Entry[K, V]) bool {
	var extracted, err = f.Extractor.ExtractFromEntry(entry)
	return err == nil && extracted == f.Value
}

// Effectiveness is 1: an Equals lookup is a single posting fetch.
func (f *Equals[K, V, X]) Effectiveness(indexMap qindex.IndexMap[K, V], keys *qset.Set[K]) int {
	if _, ok := indexFor[K, V, X](indexMap, f.Extractor.Tag()); ok {
		return 1
	}
	return evalCost * keys.Len()
}

// ApplyIndex intersects keys with inverse[Value] — the exact set of
// matches — except for keys the index excluded for a reason unrelated
// to this predicate, which are kept for entry-by-entry resolution
// rather than assumed to fail.
func (f *Equals[K, V, X]) ApplyIndex(indexMap qindex.IndexMap[K, V], keys *qset.Set[K]) (residual Filter[K, V], fullyResolved bool) {
	var idx, ok = indexFor[K, V, X](indexMap, f.Extractor.Tag())
	if !ok {
		return f, false
	}
	var posting, found = idx.Inverse().Get(f.Value)
	if !found {
		posting = qset.New[K]()
	}
	if narrowConservatively(keys, posting, idx).Len() == 0 {
		return nil, true
	}
	return f, false
}

// NotEquals matches entries whose extracted attribute does not equal
// Value.
type NotEquals[K comparable, V any, X comparable] struct {
	Extractor TaggedExtractor[K, V, X]
	Value     X
}

func NewNotEquals[K comparable, V any, X comparable](extractor TaggedExtractor[K, V, X], value X) *NotEquals[K, V, X] {
	return &NotEquals[K, V, X]{Extractor: extractor, Value: value}
}

func (f *NotEquals[K, V, X]) Evaluate(value V) bool {
	var extracted, err = evalValue[K](f.Extractor, value)
	return err == nil && extracted != f.Value
}

func (f *NotEquals[K, V, X]) EvaluateEntry(entry *qentry.Entry[K, V]) bool {
	var extracted, err = f.Extractor.ExtractFromEntry(entry)
	return err == nil && extracted != f.Value
}

func (f *NotEquals[K, V, X]) Effectiveness(indexMap qindex.IndexMap[K, V], keys *qset.Set[K]) int {
	if _, ok := indexFor[K, V, X](indexMap, f.Extractor.Tag()); ok {
		return 1
	}
	return evalCost * keys.Len()
}

// ApplyIndex subtracts inverse[Value] from keys — an ordered index is
// unneeded. A key the index excluded for an unrelated reason is never
// in inverse[Value] regardless of its real attribute, so subtraction
// alone can't prove it passes; it is left for entry-by-entry
// resolution instead.
func (f *NotEquals[K, V, X]) ApplyIndex(indexMap qindex.IndexMap[K, V], keys *qset.Set[K]) (residual Filter[K, V], fullyResolved bool) {
	var idx, ok = indexFor[K, V, X](indexMap, f.Extractor.Tag())
	if !ok {
		return f, false
	}
	var posting, found = idx.Inverse().Get(f.Value)
	if found {
		keys.RemoveAll(posting)
	}
	if qset.Intersect(idx.Excluded(), keys).Len() == 0 {
		return nil, true
	}
	return f, false
}

var (
	_ IndexAwareFilter[int, int] = (*Equals[int, int, int])(nil)
	_ IndexAwareFilter[int, int] = (*NotEquals[int, int, int])(nil)
)
