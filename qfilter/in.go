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

// In matches entries whose extracted attribute is a member of Values.
type In[K comparable, V any, X comparable] struct {
	Extractor TaggedExtractor[K, V, X]
	Values    map[X]struct{}
}

func NewIn[K comparable, V any, X comparable](extractor TaggedExtractor[K, V, X], values ...X) *In[K, V, X] {
	var set = make(map[X]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return &In[K, V, X]{Extractor: extractor, Values: set}
}

func (f *In[K, V, X]) member(extracted X) bool {
	var _, ok = f.Values[extracted]
	return ok
}

func (f *In[K, V, X]) Evaluate(value V) bool {
	var extracted, err = evalValue[K](f.Extractor, value)
	return err == nil && f.member(extracted)
}

func (f *In[K, V, X]) EvaluateEntry(entry *qentry.Entry[K, V]) bool {
	var extracted, err = f.Extractor.ExtractFromEntry(entry)
	return err == nil && f.member(extracted)
}

func (f *In[K, V, X]) Effectiveness(indexMap qindex.IndexMap[K, V], keys *qset.Set[K]) int {
	if _, ok := indexFor[K, V, X](indexMap, f.Extractor.Tag()); ok {
		return len(f.Values)
	}
	return evalCost * keys.Len()
}

// ApplyIndex unions inverse[x] for each x in Values and intersects
// with keys; keys the index excluded for an unrelated reason are kept
// for entry-by-entry resolution.
func (f *In[K, V, X]) ApplyIndex(indexMap qindex.IndexMap[K, V], keys *qset.Set[K]) (residual Filter[K, V], fullyResolved bool) {
	var idx, ok = indexFor[K, V, X](indexMap, f.Extractor.Tag())
	if !ok {
		return f, false
	}
	var sets []*qset.Set[K]
	for v := range f.Values {
		if posting, found := idx.Inverse().Get(v); found {
			sets = append(sets, posting)
		}
	}
	if narrowConservatively(keys, qset.Union(sets...), idx).Len() == 0 {
		return nil, true
	}
	return f, false
}

var _ IndexAwareFilter[int, int] = (*In[int, int, int])(nil)
