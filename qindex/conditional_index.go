/*
© 2026–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package qindex

import (
	"sync"

	"github.com/haraldrudell/gridquery/qentry"
	"github.com/haraldrudell/gridquery/qset"
)

// AdmissionFilter gates whether ConditionalIndex admits an entry,
// mirroring the shape of qfilter.Filter's EvaluateEntry without
// introducing an import cycle (qfilter will depend on qindex, not the
// reverse).
type AdmissionFilter[K comparable, V any] interface {
	EvaluateEntry(entry *qentry.Entry[K, V]) bool
}

// ConditionalIndex wraps a SimpleMapIndex with an admission filter,
// producing a partial index over only the entries the filter admits.
type ConditionalIndex[K comparable, V any, X comparable] struct {
	*SimpleMapIndex[K, V, X]
	filter AdmissionFilter[K, V]

	// admissionLock guards ownPartial and admitted: mutations arrive on
	// the owning listener goroutine while IsPartial/Excluded are read
	// from concurrent query goroutines.
	admissionLock sync.RWMutex
	ownPartial    bool
	admitted      map[K]bool // last-known admission outcome, for update/remove
}

// NewConditionalIndex constructs a partial index gated by filter. When
// cfg.Forward is set, the forward index records extracted values only
// for admitted entries; the forward toggle must not change after the
// first insert.
func NewConditionalIndex[K comparable, V any, X comparable](
	cfg Config[K, V, X],
	filter AdmissionFilter[K, V],
	dataEntries ...*qentry.Entry[K, V],
) (idx *ConditionalIndex[K, V, X]) {
	idx = &ConditionalIndex[K, V, X]{
		SimpleMapIndex: newSimpleMapIndex(cfg),
		filter:         filter,
		admitted:       make(map[K]bool),
	}
	for _, e := range dataEntries {
		idx.Insert(e)
	}
	return
}

func (idx *ConditionalIndex[K, V, X]) admits(entry *qentry.Entry[K, V]) (admitted bool) {
	defer func() {
		if r := recover(); r != nil {
			// evaluation exception: do not include, mark partial,
			// keep the index itself
			admitted = false
			idx.markOwnPartial()
		}
	}()
	return idx.filter.EvaluateEntry(entry)
}

func (idx *ConditionalIndex[K, V, X]) markOwnPartial() {
	idx.admissionLock.Lock()
	defer idx.admissionLock.Unlock()

	idx.ownPartial = true
}

func (idx *ConditionalIndex[K, V, X]) setAdmitted(key K, admitted bool) {
	idx.admissionLock.Lock()
	defer idx.admissionLock.Unlock()

	idx.admitted[key] = admitted
}

// Insert delegates to SimpleMapIndex.Insert only if filter admits
// entry; otherwise marks the index partial and skips it.
func (idx *ConditionalIndex[K, V, X]) Insert(entry *qentry.Entry[K, V]) {
	var key = entry.GetKey()
	if !idx.admits(entry) {
		idx.markOwnPartial()
		idx.setAdmitted(key, false)
		return
	}
	idx.setAdmitted(key, true)
	idx.SimpleMapIndex.Insert(entry)
}

// Update delegates to Insert's semantics when filter still admits
// entry; otherwise treats the transition as a Remove, since a prior
// insert may have placed the key in the index.
func (idx *ConditionalIndex[K, V, X]) Update(entry *qentry.Entry[K, V]) {
	var key = entry.GetKey()
	if idx.admits(entry) {
		idx.setAdmitted(key, true)
		idx.SimpleMapIndex.Update(entry)
		return
	}
	idx.markOwnPartial()
	idx.admissionLock.RLock()
	var wasAdmitted = idx.admitted[key]
	idx.admissionLock.RUnlock()
	if wasAdmitted {
		idx.SimpleMapIndex.Remove(entry)
	}
	idx.setAdmitted(key, false)
}

// Remove is a no-op when the entry was last known non-admitted — the
// key was never in the index — otherwise it delegates to
// SimpleMapIndex.Remove.
func (idx *ConditionalIndex[K, V, X]) Remove(entry *qentry.Entry[K, V]) {
	var key = entry.GetKey()
	idx.admissionLock.Lock()
	var wasAdmitted, known = idx.admitted[key]
	delete(idx.admitted, key)
	idx.admissionLock.Unlock()

	if known && !wasAdmitted {
		return
	}
	idx.SimpleMapIndex.Remove(entry)
}

// Get returns ok=false when no forward index is configured; otherwise
// the forward value, or ok=false if absent.
func (idx *ConditionalIndex[K, V, X]) Get(key K) (value X, ok bool) {
	if !idx.config.Forward {
		return
	}
	return idx.SimpleMapIndex.Get(key)
}

// IsPartial reports this index's own admission-driven partiality or
// the embedded SimpleMapIndex's extraction-driven one.
func (idx *ConditionalIndex[K, V, X]) IsPartial() bool {
	idx.admissionLock.RLock()
	var ownPartial = idx.ownPartial
	idx.admissionLock.RUnlock()

	return ownPartial || idx.SimpleMapIndex.IsPartial()
}

// Excluded returns every key the admission filter has rejected, union
// the embedded SimpleMapIndex's own extraction-failure exclusions —
// both are reasons a key's absence from a posting says nothing about
// whether an unrelated predicate over the same extractor would match
// it.
func (idx *ConditionalIndex[K, V, X]) Excluded() *qset.Set[K] {
	var excluded = idx.SimpleMapIndex.Excluded()
	idx.admissionLock.RLock()
	defer idx.admissionLock.RUnlock()

	for key, admitted := range idx.admitted {
		if !admitted {
			excluded.Add(key)
		}
	}
	return excluded
}
