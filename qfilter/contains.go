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

// CollectionExtractor projects the collection-valued attribute that
// Contains/ContainsAll/ContainsAny test, returning its elements
// directly — the same shape a split-collection qindex.Config.Elements
// uses, so the same extractor configuration backs both the index and
// the filter.
type CollectionExtractor[K comparable, V any, X comparable] interface {
	Tag() string
	ExtractElements(entry *qentry.Entry[K, V]) (elements []X, err error)
}

func has[X comparable](elements []X, v X) bool {
	for _, e := range elements {
		if e == v {
			return true
		}
	}
	return false
}

// Contains matches entries whose collection-valued attribute contains
// Value.
type Contains[K comparable, V any, X comparable] struct {
	Extractor CollectionExtractor[K, V, X]
	Value     X
}

func NewContains[K comparable, V any, X comparable](extractor CollectionExtractor[K, V, X], value X) *Contains[K, V, X] {
	return &Contains[K, V, X]{Extractor: extractor, Value: value}
}

func (f *Contains[K, V, X]) EvaluateEntry(entry *qentry.Entry[K, V]) bool {
	var elements, err = f.Extractor.ExtractElements(entry)
	return err == nil && has(elements, f.Value)
}

func (f *Contains[K, V, X]) Evaluate(value V) bool {
	var zero K
	return f.EvaluateEntry(qentry.New(zero, value))
}

func (f *Contains[K, V, X]) Effectiveness(indexMap qindex.IndexMap[K, V], keys *qset.Set[K]) int {
	if _, ok := indexFor[K, V, X](indexMap, f.Extractor.Tag()); ok {
		return 1
	}
	return evalCost * keys.Len()
}

// ApplyIndex intersects keys with inverse[Value] — split-collection
// postings already key directly by element; keys the index excluded
// for an unrelated reason are kept for entry-by-entry resolution.
func (f *Contains[K, V, X]) ApplyIndex(indexMap qindex.IndexMap[K, V], keys *qset.Set[K]) (residual Filter[K, V], fullyResolved bool) {
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

// ContainsAll matches entries whose collection contains every member
// of Values.
type ContainsAll[K comparable, V any, X comparable] struct {
	Extractor CollectionExtractor[K, V, X]
	Values    []X
}

func NewContainsAll[K comparable, V any, X comparable](extractor CollectionExtractor[K, V, X], values ...X) *ContainsAll[K, V, X] {
	return &ContainsAll[K, V, X]{Extractor: extractor, Values: values}
}

func (f *ContainsAll[K, V, X]) EvaluateEntry(entry *qentry.Entry[K, V]) bool {
	var elements, err = f.Extractor.ExtractElements(entry)
	if err != nil {
		return false
	}
	for _, want := range f.Values {
		if !has(elements, want) {
			return false
		}
	}
	return true
}

func (f *ContainsAll[K, V, X]) Evaluate(value V) bool {
	var zero K
	return f.EvaluateEntry(qentry.New(zero, value))
}

func (f *ContainsAll[K, V, X]) Effectiveness(indexMap qindex.IndexMap[K, V], keys *qset.Set[K]) int {
	if _, ok := indexFor[K, V, X](indexMap, f.Extractor.Tag()); ok {
		return len(f.Values)
	}
	return evalCost * keys.Len()
}

// ApplyIndex intersects with each inverse[x] in turn; keys the index
// excluded for an unrelated reason are kept for entry-by-entry
// resolution.
func (f *ContainsAll[K, V, X]) ApplyIndex(indexMap qindex.IndexMap[K, V], keys *qset.Set[K]) (residual Filter[K, V], fullyResolved bool) {
	var idx, ok = indexFor[K, V, X](indexMap, f.Extractor.Tag())
	if !ok {
		return f, false
	}
	var matching = keys.Clone()
	for _, v := range f.Values {
		var posting, found = idx.Inverse().Get(v)
		if !found {
			matching.Clear()
			break
		}
		matching.RetainAll(posting)
	}
	if narrowConservatively(keys, matching, idx).Len() == 0 {
		return nil, true
	}
	return f, false
}

// ContainsAny matches entries whose collection contains at least one
// member of Values.
type ContainsAny[K comparable, V any, X comparable] struct {
	Extractor CollectionExtractor[K, V, X]
	Values    []X
}

func NewContainsAny[K comparable, V any, X comparable](extractor CollectionExtractor[K, V, X], values ...X) *ContainsAny[K, V, X] {
	return &ContainsAny[K, V, X]{Extractor: extractor, Values: values}
}

func (f *ContainsAny[K, V, X]) EvaluateEntry(entry *qentry.Entry[K, V]) bool {
	var elements, err = f.Extractor.ExtractElements(entry)
	if err != nil {
		return false
	}
	for _, want := range f.Values {
		if has(elements, want) {
			return true
		}
	}
	return false
}

func (f *ContainsAny[K, V, X]) Evaluate(value V) bool {
	var zero K
	return f.EvaluateEntry(qentry.New(zero, value))
}

func (f *ContainsAny[K, V, X]) Effectiveness(indexMap qindex.IndexMap[K, V], keys *qset.Set[K]) int {
	if _, ok := indexFor[K, V, X](indexMap, f.Extractor.Tag()); ok {
		return len(f.Values)
	}
	return evalCost * keys.Len()
}

// ApplyIndex unions inverse[x] for each x in Values then intersects;
// keys the index excluded for an unrelated reason are kept for
// entry-by-entry resolution.
func (f *ContainsAny[K, V, X]) ApplyIndex(indexMap qindex.IndexMap[K, V], keys *qset.Set[K]) (residual Filter[K, V], fullyResolved bool) {
	var idx, ok = indexFor[K, V, X](indexMap, f.Extractor.Tag())
	if !ok {
		return f, false
	}
	var sets []*qset.Set[K]
	for _, v := range f.Values {
		if posting, found := idx.Inverse().Get(v); found {
			sets = append(sets, posting)
		}
	}
	if narrowConservatively(keys, qset.Union(sets...), idx).Len() == 0 {
		return nil, true
	}
	return f, false
}

var (
	_ IndexAwareFilter[int, int] = (*Contains[int, int, int])(nil)
	_ IndexAwareFilter[int, int] = (*ContainsAll[int, int, int])(nil)
	_ IndexAwareFilter[int, int] = (*ContainsAny[int, int, int])(nil)
)
