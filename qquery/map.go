/*
© 2026–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

// Package qquery implements the query driver: it turns a DataMap plus
// a Filter into a key-set or entry-set, consulting whatever indexes
// are registered to avoid a full scan where possible.
package qquery

import (
	"sort"
	"sync"

	"github.com/haraldrudell/gridquery/qcompare"
	"github.com/haraldrudell/gridquery/qentry"
	"github.com/haraldrudell/gridquery/qerrors"
	"github.com/haraldrudell/gridquery/qfilter"
	"github.com/haraldrudell/gridquery/qgrid"
	"github.com/haraldrudell/gridquery/qindex"
	"github.com/haraldrudell/gridquery/qset"
)

// TaggedOriginalExtractor is what AddIndex needs beyond
// qentry.OriginalExtractor: a stable configuration tag to register the
// resulting index under — the tag is how a later query finds the
// index its filter was built against.
type TaggedOriginalExtractor[K comparable, V any, X comparable] interface {
	qentry.OriginalExtractor[K, V, X]
	Tag() string
}

// Map is the query driver over a DataMap: it owns the index-map
// registry — installation and teardown serialize on its lock — and
// answers KeySet/EntrySet queries against it.
type Map[K comparable, V any] struct {
	data qgrid.DataMap[K, V]

	indexLock     sync.RWMutex
	indexes       qindex.IndexMap[K, V]
	listenerStops map[string]chan struct{}
}

// NewMap returns a query driver over data with no indexes registered.
func NewMap[K comparable, V any](data qgrid.DataMap[K, V]) (m *Map[K, V]) {
	return &Map[K, V]{
		data:          data,
		indexes:       make(qindex.IndexMap[K, V]),
		listenerStops: make(map[string]chan struct{}),
	}
}

// listen subscribes to data's mutation events on index's behalf and
// maintains it for as long as stop stays open. DataMap.Events returns
// a fresh multicast channel per call, so each index gets its own
// undisturbed stream.
func (m *Map[K, V]) listen(index qindex.MutableIndex[K, V], events <-chan qgrid.MapEvent[K, V], stop chan struct{}) {
	if events == nil {
		return
	}
	for {
		select {
		case <-stop:
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			var entry = event.Entry()
			switch event.Type {
			case qgrid.EventInsert:
				index.Insert(entry)
			case qgrid.EventUpdate:
				index.Update(entry)
			case qgrid.EventRemove:
				index.Remove(entry)
			}
		}
	}
}

// install backfills index from data's current contents, then starts
// its live listener under tag. Subscribing before the backfill scan
// favors a redundant (idempotent) re-insert of an entry that mutated
// mid-scan over silently missing it.
func (m *Map[K, V]) install(tag string, index qindex.MutableIndex[K, V]) {
	var events = m.data.Events()
	for _, entry := range m.data.EntrySet() {
		index.Insert(entry)
	}
	var stop = make(chan struct{})
	m.listenerStops[tag] = stop
	go m.listen(index, events, stop)
}

// uninstall stops tag's live listener, if one is running.
func (m *Map[K, V]) uninstall(tag string) {
	if stop, found := m.listenerStops[tag]; found {
		close(stop)
		delete(m.listenerStops, tag)
	}
}

// AddIndex registers an index for extractor. When extractor is an
// IndexAwareExtractor, construction is delegated to it;
// otherwise a SimpleMapIndex is created. Idempotent for an identical
// extractor+configuration already registered; InvalidArgument on a
// conflicting re-registration under the same tag.
//   - a free function, not a method: Go does not support generic type
//     parameters on methods, so X cannot be introduced by Map[K,V].AddIndex
func AddIndex[K comparable, V any, X comparable](
	m *Map[K, V],
	extractor TaggedOriginalExtractor[K, V, X],
	ordered bool,
	comparator qcompare.Comparator[X],
) (err error) {
	m.indexLock.Lock()
	defer m.indexLock.Unlock()

	var cfg = qindex.Config[K, V, X]{Extractor: extractor, Ordered: ordered, Comparator: comparator, Forward: true}
	var created *qindex.SimpleMapIndex[K, V, X]
	if iae, ok := any(extractor).(qindex.IndexAwareExtractor[K, V, X]); ok {
		created, err = iae.CreateIndex(ordered, cfg, m.indexes)
	} else {
		created, err = qindex.CreateIndex[K, V, X](extractor.Tag(), cfg, m.indexes)
	}
	if err != nil || created == nil {
		return // nil+nil is the idempotent re-registration case: nothing new to install
	}
	m.install(extractor.Tag(), created)
	return
}

// RemoveIndex tears down the index registered for extractor, a no-op
// when none was registered.
func RemoveIndex[K comparable, V any, X comparable](
	m *Map[K, V],
	extractor TaggedOriginalExtractor[K, V, X],
) {
	m.indexLock.Lock()
	defer m.indexLock.Unlock()

	m.uninstall(extractor.Tag())
	if iae, ok := any(extractor).(qindex.IndexAwareExtractor[K, V, X]); ok {
		iae.DestroyIndex(m.indexes)
		return
	}
	qindex.DestroyIndex[K, V, X](extractor.Tag(), m.indexes)
}

// AddConditionalIndex registers a partial index gated by filter:
// AddIndex's default SimpleMapIndex path only covers unconditional
// indexes, so a ConditionalIndex is installed directly
// under extractor's tag instead of through qindex.CreateIndex. Like
// AddIndex, it fails with InvalidArgument when tag already names a
// conflicting registration; it is not idempotent against an identical
// ConditionalIndex since admission filters carry no value-based
// equality contract in this core.
func AddConditionalIndex[K comparable, V any, X comparable](
	m *Map[K, V],
	extractor TaggedOriginalExtractor[K, V, X],
	ordered bool,
	comparator qcompare.Comparator[X],
	admission qindex.AdmissionFilter[K, V],
	forward bool,
) (err error) {
	m.indexLock.Lock()
	defer m.indexLock.Unlock()

	var tag = extractor.Tag()
	if _, found := m.indexes[tag]; found {
		err = qerrors.InvalidArgument("qquery: index tag %q already registered", tag)
		return
	}
	var cfg = qindex.Config[K, V, X]{Extractor: extractor, Ordered: ordered, Comparator: comparator, Forward: forward}
	var created = qindex.NewConditionalIndex(cfg, admission)
	m.indexes[tag] = created
	m.install(tag, created)
	return
}

// snapshotIndexes returns a shallow copy of the index map so that
// ApplyIndex — which only reads — never races a concurrent AddIndex /
// RemoveIndex registration: a query only ever sees a consistent
// snapshot, never a half-installed index.
func (m *Map[K, V]) snapshotIndexes() (snapshot qindex.IndexMap[K, V]) {
	m.indexLock.RLock()
	defer m.indexLock.RUnlock()

	snapshot = make(qindex.IndexMap[K, V], len(m.indexes))
	for tag, idx := range m.indexes {
		snapshot[tag] = idx
	}
	return
}

// resolve seeds keys from the data map, narrows via ApplyIndex where
// possible, then falls back to entry-by-entry evaluation of whatever
// filter remains unresolved.
func (m *Map[K, V]) resolve(filter qfilter.Filter[K, V]) (keys *qset.Set[K]) {
	keys = qset.New[K](0)
	for _, key := range m.data.Keys() {
		keys.Add(key)
	}

	var residual = filter
	if iaf, ok := filter.(qfilter.IndexAwareFilter[K, V]); ok {
		var r, resolved = iaf.ApplyIndex(m.snapshotIndexes(), keys)
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
	return
}

// KeySet returns every key satisfying filter.
func (m *Map[K, V]) KeySet(filter qfilter.Filter[K, V]) (keys *qset.Set[K]) {
	return m.resolve(filter)
}

// EntrySet returns every entry satisfying filter.
func (m *Map[K, V]) EntrySet(filter qfilter.Filter[K, V]) (entries []*qentry.Entry[K, V]) {
	var keys = m.resolve(filter)
	entries = make([]*qentry.Entry[K, V], 0, keys.Len())
	keys.Range(func(key K) bool {
		if value, ok := m.data.Get(key); ok {
			entries = append(entries, qentry.New(key, value))
		}
		return true
	})
	return
}

// EntrySetOrdered returns every entry satisfying filter, sorted by
// comparator over the entry's value. When filter's outermost node is
// a *qfilter.Limit, the current page is extracted from the sorted
// array before returning.
func (m *Map[K, V]) EntrySetOrdered(
	filter qfilter.Filter[K, V],
	comparator qcompare.Comparator[V],
) (entries []*qentry.Entry[K, V], err error) {
	if comparator == nil {
		err = qerrors.NullArgument("qquery: EntrySetOrdered: comparator is nil")
		return
	}
	entries = m.EntrySet(filter)

	var sortErr error
	sort.SliceStable(entries, func(i, j int) bool {
		if sortErr != nil {
			return false
		}
		var vi, _ = entries[i].GetValue()
		var vj, _ = entries[j].GetValue()
		var result int
		if result, sortErr = comparator(vi, vj); sortErr != nil {
			return false
		}
		return result < 0
	})
	if sortErr != nil {
		return nil, sortErr
	}

	if limit, ok := filter.(*qfilter.Limit[K, V]); ok {
		var values = make([]V, len(entries))
		for i, e := range entries {
			values[i], _ = e.GetValue()
		}
		var pageValues = limit.ExtractPage(values)
		// pageValues is a plain sub-slice of values (ExtractPage never
		// appends), so its start offset recovers from the capacity it
		// lost by slicing: lo = len(values) - cap(pageValues).
		var lo = len(values) - cap(pageValues)
		entries = entries[lo : lo+len(pageValues)]
	}
	return
}
