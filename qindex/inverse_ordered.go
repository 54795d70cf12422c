/*
© 2026–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package qindex

import (
	"github.com/google/btree"
	"github.com/haraldrudell/gridquery/qcompare"
	"github.com/haraldrudell/gridquery/qset"
)

const btreeDegree = 6

// orderedInverseIndex is the ordered InverseIndex, a B-tree keeping
// extracted values in comparator order alongside a hash map of
// postings. The tree carries only the ordering; postings live in m
// so that HeadKeys/TailKeys/SubKeys can union postings found during
// a single ascending walk.
type orderedInverseIndex[K comparable, X comparable] struct {
	tree *btree.BTreeG[X]
	m    map[X]*qset.Set[K]
	cmp  qcompare.Comparator[X]
}

var _ InverseIndex[int, int] = (*orderedInverseIndex[int, int])(nil)

// newOrderedInverseIndex returns an InverseIndex ordered by cmp.
func newOrderedInverseIndex[K comparable, X comparable](cmp qcompare.Comparator[X]) (inv *orderedInverseIndex[K, X]) {
	cmp = qcompare.Resolve(cmp)
	var less btree.LessFunc[X] = func(a, b X) bool {
		var r, err = cmp(a, b)
		if err != nil {
			panic(err)
		}
		return r < 0
	}
	return &orderedInverseIndex[K, X]{
		tree: btree.NewG(btreeDegree, less),
		m:    make(map[X]*qset.Set[K]),
		cmp:  cmp,
	}
}

func (o *orderedInverseIndex[K, X]) Get(value X) (keys *qset.Set[K], ok bool) {
	keys, ok = o.m[value]
	return
}

func (o *orderedInverseIndex[K, X]) Len() (length int) { return len(o.m) }

func (o *orderedInverseIndex[K, X]) IsOrdered() (ordered bool) { return true }

func (o *orderedInverseIndex[K, X]) Add(value X, key K) {
	var posting, ok = o.m[value]
	if !ok {
		posting = qset.New[K](1)
		o.m[value] = posting
		o.tree.ReplaceOrInsert(value)
	}
	posting.Add(key)
}

func (o *orderedInverseIndex[K, X]) Remove(value X, key K) (removed bool) {
	var posting, ok = o.m[value]
	if !ok {
		return false
	}
	removed = posting.Contains(key)
	posting.Remove(key)
	if posting.Len() == 0 {
		delete(o.m, value)
		o.tree.Delete(value)
	}
	return
}

func (o *orderedInverseIndex[K, X]) Range(fn func(value X, keys *qset.Set[K]) (keepGoing bool)) {
	o.tree.Ascend(func(value X) bool {
		return fn(value, o.m[value])
	})
}

// cmp3 reports the sign of comparing a to b, panicking on comparator
// error since values already live in the tree and were comparable at
// insertion time.
func (o *orderedInverseIndex[K, X]) cmp3(a, b X) int {
	var r, err = o.cmp(a, b)
	if err != nil {
		panic(err)
	}
	return r
}

// HeadKeys unions postings for values below hi, ascending walk broken
// as soon as the bound is passed since the tree is sorted.
func (o *orderedInverseIndex[K, X]) HeadKeys(hi X, inclusive bool) (keys *qset.Set[K], ok bool) {
	var sets []*qset.Set[K]
	o.tree.Ascend(func(value X) bool {
		var c = o.cmp3(value, hi)
		if c > 0 || (c == 0 && !inclusive) {
			return false // sorted ascending: nothing further qualifies
		}
		sets = append(sets, o.m[value])
		return true
	})
	if len(sets) == 0 {
		return nil, false
	}
	return qset.Union(sets...), true
}

// TailKeys unions postings for values above lo. The walk cannot skip
// ahead without a range-seeking primitive, so it scans from the
// start and collects once the bound is reached.
func (o *orderedInverseIndex[K, X]) TailKeys(lo X, inclusive bool) (keys *qset.Set[K], ok bool) {
	var sets []*qset.Set[K]
	o.tree.Ascend(func(value X) bool {
		var c = o.cmp3(value, lo)
		if c > 0 || (c == 0 && inclusive) {
			sets = append(sets, o.m[value])
		}
		return true
	})
	if len(sets) == 0 {
		return nil, false
	}
	return qset.Union(sets...), true
}

// SubKeys unions postings for values within [lo, hi] per the
// inclusivity flags, breaking the ascending walk once past hi.
func (o *orderedInverseIndex[K, X]) SubKeys(lo, hi X, loInclusive, hiInclusive bool) (keys *qset.Set[K], ok bool) {
	var sets []*qset.Set[K]
	o.tree.Ascend(func(value X) bool {
		var cLo = o.cmp3(value, lo)
		var cHi = o.cmp3(value, hi)
		if cHi > 0 || (cHi == 0 && !hiInclusive) {
			return false // sorted ascending: past the upper bound
		}
		if cLo > 0 || (cLo == 0 && loInclusive) {
			sets = append(sets, o.m[value])
		}
		return true
	})
	if len(sets) == 0 {
		return nil, false
	}
	return qset.Union(sets...), true
}
