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

// Between matches attributes within [lo, hi] per the inclusivity
// flags — the conjunction of a lower and an upper bound; with an
// ordered index it walks a single subMap range rather than applying
// both halves separately.
type Between[K comparable, V any, X comparable] struct {
	extractor                TaggedExtractor[K, V, X]
	lo, hi                   X
	loInclusive, hiInclusive bool
	cmp                      qcompare.Comparator[X]
}

func NewBetween[K comparable, V any, X comparable](
	extractor TaggedExtractor[K, V, X],
	lo, hi X,
	loInclusive, hiInclusive bool,
	cmp qcompare.Comparator[X],
) *Between[K, V, X] {
	return &Between[K, V, X]{
		extractor: extractor, lo: lo, hi: hi,
		loInclusive: loInclusive, hiInclusive: hiInclusive,
		cmp: qcompare.Resolve(cmp),
	}
}

func (f *Between[K, V, X]) passes(extracted X) bool {
	var rLo, errLo = f.cmp(extracted, f.lo)
	if errLo != nil {
		return false
	}
	var rHi, errHi = f.cmp(extracted, f.hi)
	if errHi != nil {
		return false
	}
	var loOk = rLo > 0 || (rLo == 0 && f.loInclusive)
	var hiOk = rHi < 0 || (rHi == 0 && f.hiInclusive)
	return loOk && hiOk
}

func (f *Between[K, V, X]) Evaluate(value V) bool {
	var extracted, err = evalValue[K](f.extractor, value)
	return err == nil && f.passes(extracted)
}

func (f *Between[K, V, X]) EvaluateEntry(entry *qentry.Entry[K, V]) bool {
	var extracted, err = f.extractor.ExtractFromEntry(entry)
	return err == nil && f.passes(extracted)
}

func (f *Between[K, V, X]) Effectiveness(indexMap qindex.IndexMap[K, V], keys *qset.Set[K]) int {
	var idx, ok = indexFor[K, V, X](indexMap, f.extractor.Tag())
	if !ok || !idx.IsOrdered() {
		return evalCost * keys.Len()
	}
	return keys.Len() / 2
}

func (f *Between[K, V, X]) ApplyIndex(indexMap qindex.IndexMap[K, V], keys *qset.Set[K]) (residual Filter[K, V], fullyResolved bool) {
	var idx, ok = indexFor[K, V, X](indexMap, f.extractor.Tag())
	if !ok || !idx.IsOrdered() {
		return f, false
	}
	var matching, found = idx.Inverse().SubKeys(f.lo, f.hi, f.loInclusive, f.hiInclusive)
	if !found {
		matching = qset.New[K]()
	}
	if narrowConservatively(keys, matching, idx).Len() == 0 {
		return nil, true
	}
	return f, false
}

var _ IndexAwareFilter[int, int] = (*Between[int, int, int])(nil)
