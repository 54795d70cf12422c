/*
© 2026–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

// Package qindex maintains the forward and inverse indexes that let a
// filter reduce evaluation from O(N) to sub-linear set algebra.
//
// SimpleMapIndex.Update degrades to scanning every posting when
// neither a forward index nor an original value is available for the
// key being updated — a deliberate performance cliff rather than a
// hard requirement that every index carry a forward map.
package qindex

import (
	"github.com/haraldrudell/gridquery/qentry"
	"github.com/haraldrudell/gridquery/qset"
)

// InverseIndex maps an extracted value to the set of keys whose
// extraction produced it — the posting list.
//   - the ordered variant additionally supports range views; the
//     unordered variant reports ok=false from all of them
type InverseIndex[K comparable, X comparable] interface {
	// Get returns the posting for value, if any.
	Get(value X) (keys *qset.Set[K], ok bool)
	// Len returns the number of distinct extracted values indexed.
	Len() (length int)
	// IsOrdered reports whether this inverse index supports range views.
	IsOrdered() (ordered bool)
	// Add inserts key into the posting for value, creating the posting
	// if necessary. When an equal value is already indexed, its stored
	// posting is reused rather than allocating a duplicate.
	Add(value X, key K)
	// Remove deletes key from the posting for value.
	//   - removed is false when the posting existed but did not contain
	//     key — the caller logs a rate-limited warning in that case
	//   - the posting is pruned once empty
	Remove(value X, key K) (removed bool)
	// Range traverses every posting, undefined order for the unordered
	// variant, ascending value order for the ordered variant.
	Range(fn func(value X, keys *qset.Set[K]) (keepGoing bool))
	// HeadKeys returns the union of postings for values less than
	// (or, if inclusive, less than or equal to) hi. ok is false for an
	// unordered index, or when no indexed value lies in the range.
	HeadKeys(hi X, inclusive bool) (keys *qset.Set[K], ok bool)
	// TailKeys returns the union of postings for values greater than
	// (or, if inclusive, greater than or equal to) lo. ok is false for
	// an unordered index, or when no indexed value lies in the range.
	TailKeys(lo X, inclusive bool) (keys *qset.Set[K], ok bool)
	// SubKeys returns the union of postings for values within
	// [lo, hi] or (lo, hi) per loInclusive/hiInclusive. ok is false for
	// an unordered index, or when no indexed value lies in the range.
	SubKeys(lo, hi X, loInclusive, hiInclusive bool) (keys *qset.Set[K], ok bool)
}

// Index is the read contract qfilter consults through an IndexMap
// entry: the subset of SimpleMapIndex's methods both it and
// ConditionalIndex implement identically (ConditionalIndex overrides
// Get/IsPartial but inherits IsOrdered/Inverse from the embedded
// SimpleMapIndex). Filters type-assert to this interface rather than
// to *SimpleMapIndex[K,V,X] directly, so a ConditionalIndex registered
// in the same map gets the same index-aware treatment — including
// being skipped by Not's partial-index restriction.
type Index[K comparable, X comparable] interface {
	IsOrdered() bool
	IsPartial() bool
	Get(key K) (value X, ok bool)
	Inverse() InverseIndex[K, X]
	// Excluded returns the keys this index cannot vouch for one way or
	// the other — extraction failures (SimpleMapIndex) and, for
	// ConditionalIndex, keys the admission filter rejected. A filter's
	// ApplyIndex may only resolve members of this set by falling back
	// to entry-by-entry evaluation; it must never assume "absent from
	// every posting" means "predicate false" for an excluded key, since
	// the exclusion may be unrelated to the predicate being evaluated.
	Excluded() *qset.Set[K]
}

// MutableIndex is the maintenance contract a query driver dispatches
// DataMap mutation events against. It deliberately omits the
// extracted type X — both SimpleMapIndex[K,V,X] and
// ConditionalIndex[K,V,X] already bind X on their receiver, so a
// registry keyed only by (K,V) can maintain every index it holds
// without itself knowing each one's X.
type MutableIndex[K comparable, V any] interface {
	Insert(entry *qentry.Entry[K, V])
	Update(entry *qentry.Entry[K, V])
	Remove(entry *qentry.Entry[K, V])
}
