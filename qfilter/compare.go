/*
© 2026–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package qfilter

import (
	"github.com/haraldrudell/gridquery/qcompare"
	"github.com/haraldrudell/gridquery/qentry"
	"github.com/haraldrudell/gridquery/qindex"
	"github.com/haraldrudell/gridquery/qset"
)

// orderOp identifies which ordering comparison a rangeFilter performs.
type orderOp int

const (
	opGreater orderOp = iota
	opGreaterEquals
	opLess
	opLessEquals
)

// rangeFilter implements Greater/GreaterEquals/Less/LessEquals: all
// four differ only in which comparison op they apply and which side
// of an ordered index's split they take.
type rangeFilter[K comparable, V any, X comparable] struct {
	extractor TaggedExtractor[K, V, X]
	value     X
	cmp       qcompare.Comparator[X]
	op        orderOp
}

func newRangeFilter[K comparable, V any, X comparable](extractor TaggedExtractor[K, V, X], value X, cmp qcompare.Comparator[X], op orderOp) *rangeFilter[K, V, X] {
	return &rangeFilter[K, V, X]{extractor: extractor, value: value, cmp: qcompare.Resolve(cmp), op: op}
}

func NewGreater[K comparable, V any, X comparable](extractor TaggedExtractor[K, V, X], value X, cmp qcompare.Comparator[X]) Filter[K, V] {
	return newRangeFilter(extractor, value, cmp, opGreater)
}

func NewGreaterEquals[K comparable, V any, X comparable](extractor TaggedExtractor[K, V, X], value X, cmp qcompare.Comparator[X]) Filter[K, V] {
	return newRangeFilter(extractor, value, cmp, opGreaterEquals)
}

func NewLess[K comparable, V any, X comparable](extractor TaggedExtractor[K, V, X], value X, cmp qcompare.Comparator[X]) Filter[K, V] {
	return newRangeFilter(extractor, value, cmp, opLess)
}

func NewLessEquals[K comparable, V any, X comparable](extractor TaggedExtractor[K, V, X], value X, cmp qcompare.Comparator[X]) Filter[K, V] {
	return newRangeFilter(extractor, value, cmp, opLessEquals)
}

func (f *rangeFilter[K, V, X]) passes(extracted X) bool {
	var r, err = f.cmp(extracted, f.value)
	if err != nil {
		return false
	}
	switch f.op {
	case opGreater:
		return r > 0
	case opGreaterEquals:
		return r >= 0
	case opLess:
		return r < 0
	default: // opLessEquals
		return r <= 0
	}
}

func (f *rangeFilter[K, V, X]) Evaluate(value V) bool {
	var extracted, err = evalValue[K](f.extractor, value)
	return err == nil && f.passes(extracted)
}

func (f *rangeFilter[K, V, X]) EvaluateEntry(entry *qentry.Entry[K, V]) bool {
	var extracted, err = f.extractor.ExtractFromEntry(entry)
	return err == nil && f.passes(extracted)
}

func (f *rangeFilter[K, V, X]) Effectiveness(indexMap qindex.IndexMap[K, V], keys *qset.Set[K]) int {
	var idx, ok = indexFor[K, V, X](indexMap, f.extractor.Tag())
	if !ok || !idx.IsOrdered() {
		return evalCost * keys.Len()
	}
	return keys.Len() / 2 // range-size estimate
}

// ApplyIndex takes tailMap/headMap from an ordered index, unions the
// postings, and intersects with keys. With an unordered index, every
// posting is iterated and tested by comparison.
func (f *rangeFilter[K, V, X]) ApplyIndex(indexMap qindex.IndexMap[K, V], keys *qset.Set[K]) (residual Filter[K, V], fullyResolved bool) {
	var idx, ok = indexFor[K, V, X](indexMap, f.extractor.Tag())
	if !ok {
		return f, false
	}
	if !idx.IsOrdered() {
		return f.applyUnordered(idx, keys)
	}
	var matching *qset.Set[K]
	var found bool
	switch f.op {
	case opGreater:
		matching, found = idx.Inverse().TailKeys(f.value, false)
	case opGreaterEquals:
		matching, found = idx.Inverse().TailKeys(f.value, true)
	case opLess:
		matching, found = idx.Inverse().HeadKeys(f.value, false)
	default: // opLessEquals
		matching, found = idx.Inverse().HeadKeys(f.value, true)
	}
	if !found {
		matching = qset.New[K]()
	}
	if narrowConservatively(keys, matching, idx).Len() == 0 {
		return nil, true
	}
	return f, false
}

// applyUnordered iterates every posting, testing each value by
// comparison and discarding the postings that fail. Keys the index
// excluded for an unrelated reason are kept for entry-by-entry
// resolution rather than assumed to fail, since an absent posting says
// nothing about whether such a key would have passed.
func (f *rangeFilter[K, V, X]) applyUnordered(idx qindex.Index[K, X], keys *qset.Set[K]) (residual Filter[K, V], fullyResolved bool) {
	var matching = keys.Clone()
	idx.Inverse().Range(func(value X, posting *qset.Set[K]) bool {
		if !f.passes(value) {
			matching.RemoveAll(posting)
		}
		return true
	})
	if narrowConservatively(keys, matching, idx).Len() == 0 {
		return nil, true
	}
	return f, false
}

var (
	_ IndexAwareFilter[int, int] = (*rangeFilter[int, int, int])(nil)
)
