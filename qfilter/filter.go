/*
© 2026–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

// Package qfilter implements the composable predicate algebra that
// evaluates against key/value entries and, where an index is
// available, narrows a key-set without visiting every entry.
package qfilter

import (
	"github.com/haraldrudell/gridquery/qentry"
	"github.com/haraldrudell/gridquery/qindex"
	"github.com/haraldrudell/gridquery/qset"
)

// evalCost is the fixed per-evaluation cost constant: non-index paths
// rank as evalCost times the number of keys they would have to visit.
const evalCost = 1000

// infiniteCost marks a filter with no index path (Xor).
const infiniteCost = int(^uint(0) >> 1)

// Filter is the contract every predicate node implements: evaluate
// against a bare value or a full entry.
type Filter[K comparable, V any] interface {
	Evaluate(value V) bool
	EvaluateEntry(entry *qentry.Entry[K, V]) bool
}

// IndexAwareFilter is implemented by filters that can consult an
// index to prove keys fail without per-entry evaluation.
type IndexAwareFilter[K comparable, V any] interface {
	Filter[K, V]
	// Effectiveness estimates the relative cost of resolving this
	// filter against keys using indexMap: 1 for a single-point lookup,
	// a range-size estimate for ordered ranges, evalCost*len(keys) when
	// no index applies, infiniteCost when no index path exists at all.
	Effectiveness(indexMap qindex.IndexMap[K, V], keys *qset.Set[K]) int
	// ApplyIndex mutates keys in place, removing every key the filter
	// can prove fails — it only ever removes, never adds. residual is
	// nil when fully resolved (every remaining key passes); otherwise
	// it must be evaluated entry-by-entry against survivors.
	ApplyIndex(indexMap qindex.IndexMap[K, V], keys *qset.Set[K]) (residual Filter[K, V], fullyResolved bool)
}

// indexFor looks up extractor's index in indexMap and asserts it has
// extracted-type X, returning ok=false when absent or of a mismatched
// shape — the filter degrades to entry-by-entry evaluation in that
// case. The assertion targets qindex.Index[K,X] rather than the
// concrete *SimpleMapIndex[K,V,X] so that a ConditionalIndex
// registered under the same tag gets the identical index-aware
// treatment.
func indexFor[K comparable, V any, X comparable](indexMap qindex.IndexMap[K, V], tag string) (idx qindex.Index[K, X], ok bool) {
	if indexMap == nil {
		return
	}
	var raw, found = indexMap[tag]
	if !found {
		return
	}
	idx, ok = raw.(qindex.Index[K, X])
	return
}

// narrowConservatively is the shared tail of every "positive" leaf
// filter's ApplyIndex (Equals, In, Contains, ContainsAll, ContainsAny,
// Like's literal degrade, Between, the range-comparison family): it
// keeps whatever the index proved matches (matching) plus whichever
// currently-surviving keys the index cannot vouch for (the
// intersection of keys with idx.Excluded()), and reports whether any
// such uncertain key remains.
//
// An excluded key's absence from every posting may be unrelated to
// this filter's own predicate — a ConditionalIndex can exclude a key
// for a reason tied to its admission filter, not to the attribute
// being queried — so ApplyIndex must never treat "missing from the
// index" as "fails the predicate" for a key it cannot vouch
// for. Fully decided (non-excluded) keys
// outside matching are still safely dropped here, which is what keeps
// this faster than a blanket fall-back to entry-by-entry evaluation
// whenever any exclusion exists anywhere in the index.
func narrowConservatively[K comparable, X comparable](keys, matching *qset.Set[K], idx qindex.Index[K, X]) (uncertain *qset.Set[K]) {
	uncertain = qset.Intersect(idx.Excluded(), keys)
	if uncertain.Len() == 0 {
		keys.RetainAll(matching)
		return
	}
	keys.RetainAll(qset.Union(matching, uncertain))
	return
}
