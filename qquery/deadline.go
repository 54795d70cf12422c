/*
© 2026–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package qquery

import (
	"context"

	"github.com/haraldrudell/gridquery/perrors"
	"github.com/haraldrudell/gridquery/qentry"
	"github.com/haraldrudell/gridquery/qfilter"
	"github.com/haraldrudell/gridquery/qindex"
	"github.com/haraldrudell/gridquery/qset"
)

// KeySetContext is KeySet with a caller-supplied deadline: ctx is
// checked between the top-level combinator's children, so a query over
// All/Any aborts fail-fast at the next child boundary once ctx
// expires. Cancellation is not supported below the top level — an
// individual child runs to completion — and no partial result set is
// returned on abort.
func (m *Map[K, V]) KeySetContext(ctx context.Context, filter qfilter.Filter[K, V]) (keys *qset.Set[K], err error) {
	if err = ctxErr(ctx); err != nil {
		return
	}

	switch outer := filter.(type) {
	case *qfilter.All[K, V]:
		return m.conjunctionContext(ctx, outer.Filters)
	case *qfilter.Any[K, V]:
		return m.disjunctionContext(ctx, outer.Filters)
	default:
		keys = m.resolve(filter)
		return
	}
}

// conjunctionContext narrows the key-set through each child in turn,
// fully resolving each child — index pass plus residual evaluation —
// before checking ctx again at the next child boundary.
func (m *Map[K, V]) conjunctionContext(ctx context.Context, children []qfilter.Filter[K, V]) (keys *qset.Set[K], err error) {
	keys = qset.New[K](0)
	for _, key := range m.data.Keys() {
		keys.Add(key)
	}
	var snapshot = m.snapshotIndexes()

	for _, child := range children {
		if err = ctxErr(ctx); err != nil {
			return nil, err
		}
		m.resolveChild(snapshot, child, keys)
	}
	return
}

// disjunctionContext resolves each child against its own copy of the
// full key-set, unioning matches, with a ctx check before every child.
func (m *Map[K, V]) disjunctionContext(ctx context.Context, children []qfilter.Filter[K, V]) (keys *qset.Set[K], err error) {
	var all = qset.New[K](0)
	for _, key := range m.data.Keys() {
		all.Add(key)
	}
	var snapshot = m.snapshotIndexes()

	var matched = qset.New[K]()
	for _, child := range children {
		if err = ctxErr(ctx); err != nil {
			return nil, err
		}
		var candidate = all.Clone()
		m.resolveChild(snapshot, child, candidate)
		matched = qset.Union(matched, candidate)
	}
	return matched, nil
}

// resolveChild fully decides one filter against keys: index pass
// first, then entry-by-entry evaluation of any residual.
func (m *Map[K, V]) resolveChild(snapshot qindex.IndexMap[K, V], child qfilter.Filter[K, V], keys *qset.Set[K]) {
	var residual = child
	if iaf, ok := child.(qfilter.IndexAwareFilter[K, V]); ok {
		var r, resolved = iaf.ApplyIndex(snapshot, keys)
		if resolved {
			return
		}
		residual = r
	}
	if residual == nil {
		return
	}
	keys.RetainFunc(func(key K) bool {
		var value, ok = m.data.Get(key)
		if !ok {
			return false
		}
		return residual.EvaluateEntry(qentry.New(key, value))
	})
}

func ctxErr(ctx context.Context) (err error) {
	if ctx == nil {
		return
	}
	if ctxError := ctx.Err(); ctxError != nil {
		err = perrors.ErrorfPF("query aborted: %w", ctxError)
	}
	return
}
