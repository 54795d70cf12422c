/*
© 2026–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package qindex

import "github.com/haraldrudell/gridquery/qset"

// hashInverseIndex is the unordered InverseIndex — a plain Go map.
type hashInverseIndex[K comparable, X comparable] struct {
	m map[X]*qset.Set[K]
}

var _ InverseIndex[int, int] = (*hashInverseIndex[int, int])(nil)

func newHashInverseIndex[K comparable, X comparable]() (inv *hashInverseIndex[K, X]) {
	return &hashInverseIndex[K, X]{m: make(map[X]*qset.Set[K])}
}

func (h *hashInverseIndex[K, X]) Get(value X) (keys *qset.Set[K], ok bool) {
	keys, ok = h.m[value]
	return
}

func (h *hashInverseIndex[K, X]) Len() (length int) { return len(h.m) }

func (h *hashInverseIndex[K, X]) IsOrdered() (ordered bool) { return false }

func (h *hashInverseIndex[K, X]) Add(value X, key K) {
	var posting, ok = h.m[value]
	if !ok {
		posting = qset.New[K](1)
		h.m[value] = posting
	}
	posting.Add(key)
}

func (h *hashInverseIndex[K, X]) Remove(value X, key K) (removed bool) {
	var posting, ok = h.m[value]
	if !ok {
		return false
	}
	removed = posting.Contains(key)
	posting.Remove(key)
	if posting.Len() == 0 {
		delete(h.m, value)
	}
	return
}

func (h *hashInverseIndex[K, X]) Range(fn func(value X, keys *qset.Set[K]) (keepGoing bool)) {
	for value, posting := range h.m {
		if !fn(value, posting) {
			return
		}
	}
}

func (h *hashInverseIndex[K, X]) HeadKeys(hi X, inclusive bool) (keys *qset.Set[K], ok bool) {
	return nil, false
}

func (h *hashInverseIndex[K, X]) TailKeys(lo X, inclusive bool) (keys *qset.Set[K], ok bool) {
	return nil, false
}

func (h *hashInverseIndex[K, X]) SubKeys(lo, hi X, loInclusive, hiInclusive bool) (keys *qset.Set[K], ok bool) {
	return nil, false
}
