/*
© 2026–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package qfilter

import (
	"sort"

	"github.com/haraldrudell/gridquery/qcompare"
	"github.com/haraldrudell/gridquery/qentry"
	"github.com/haraldrudell/gridquery/qerrors"
	"github.com/haraldrudell/gridquery/qindex"
	"github.com/haraldrudell/gridquery/qset"
)

// Limit wraps Inner as a paging filter. Evaluation delegates straight
// to Inner — paging itself is applied by the query driver against the
// sorted, materialized result.
type Limit[K comparable, V any] struct {
	Inner      Filter[K, V]
	PageSize   int
	Page       int
	Comparator qcompare.Comparator[V] // nil: natural order / offset-only paging

	topAnchor    *V // last value of the previous page
	bottomAnchor *V // last value of the current page
}

// NewLimit constructs a Limit over inner, paginating pageSize entries
// at a time. Fails immediately with InvalidArgument for a non-positive
// page size or when inner is itself a *Limit.
func NewLimit[K comparable, V any](inner Filter[K, V], pageSize int) (limit *Limit[K, V], err error) {
	if pageSize <= 0 {
		err = qerrors.InvalidArgument("qfilter: NewLimit: invalid page size %d", pageSize)
		return
	}
	if _, isLimit := inner.(*Limit[K, V]); isLimit {
		err = qerrors.InvalidArgument("qfilter: NewLimit: limit of limit")
		return
	}
	return &Limit[K, V]{Inner: inner, PageSize: pageSize}, nil
}

func (f *Limit[K, V]) Evaluate(value V) bool { return f.Inner.Evaluate(value) }

func (f *Limit[K, V]) EvaluateEntry(entry *qentry.Entry[K, V]) bool {
	return f.Inner.EvaluateEntry(entry)
}

func (f *Limit[K, V]) Effectiveness(indexMap qindex.IndexMap[K, V], keys *qset.Set[K]) int {
	if iaf, ok := f.Inner.(IndexAwareFilter[K, V]); ok {
		return iaf.Effectiveness(indexMap, keys)
	}
	return evalCost * keys.Len()
}

func (f *Limit[K, V]) ApplyIndex(indexMap qindex.IndexMap[K, V], keys *qset.Set[K]) (residual Filter[K, V], fullyResolved bool) {
	if iaf, ok := f.Inner.(IndexAwareFilter[K, V]); ok {
		return iaf.ApplyIndex(indexMap, keys)
	}
	return f.Inner, false
}

// SetPage positions the cursor at page p: p==0 resets both anchors;
// p==Page+1/Page-1 shifts one anchor over from the adjacent page; any
// other jump clears both anchors, falling back to an offset walk.
func (f *Limit[K, V]) SetPage(p int) {
	switch {
	case p == 0:
		f.Page, f.topAnchor, f.bottomAnchor = 0, nil, nil
	case p == f.Page+1:
		f.NextPage()
	case p == f.Page-1:
		f.PrevPage()
	default:
		f.Page, f.topAnchor, f.bottomAnchor = p, nil, nil
	}
}

// NextPage advances one page: the outgoing bottom anchor becomes the
// new top anchor.
func (f *Limit[K, V]) NextPage() {
	f.Page++
	f.topAnchor = f.bottomAnchor
	f.bottomAnchor = nil
}

// PrevPage retreats one page: the outgoing top anchor becomes the new
// bottom anchor.
func (f *Limit[K, V]) PrevPage() {
	f.Page--
	f.bottomAnchor = f.topAnchor
	f.topAnchor = nil
}

// ExtractPage slices the current page out of sorted, a result set
// already ordered by f.Comparator (or natural order). When both a
// comparator and a top anchor are available, a binary search positions
// the cursor directly instead of rescanning from the start. The page's
// last value becomes the bottom anchor, which NextPage carries over as
// the next page's top anchor.
func (f *Limit[K, V]) ExtractPage(sorted []V) (page []V) {
	var n = len(sorted)
	var lo, hi int
	if f.Comparator != nil && f.topAnchor != nil {
		lo = sort.Search(n, func(i int) bool {
			var r, err = f.Comparator(sorted[i], *f.topAnchor)
			return err == nil && r > 0
		})
	} else {
		lo = f.Page * f.PageSize
	}
	if lo > n {
		lo = n
	}
	hi = lo + f.PageSize
	if hi > n {
		hi = n
	}
	page = sorted[lo:hi]
	if len(page) > 0 {
		var bottom = page[len(page)-1]
		f.bottomAnchor = &bottom
	}
	return
}

var _ IndexAwareFilter[int, int] = (*Limit[int, int])(nil)
