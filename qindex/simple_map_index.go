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

// SimpleMapIndex maintains a forward (optional) and inverse index for
// one extractor over a key/value map, keeping both coherent across
// insert/update/remove: outside of an in-flight update, every
// non-excluded key is posted under exactly one extracted value (or one
// per element in split-collection mode), and the forward index always
// reflects the latest successful extraction.
type SimpleMapIndex[K comparable, V any, X comparable] struct {
	config Config[K, V, X]
	lock   sync.RWMutex

	inverse  InverseIndex[K, X]
	forward  *forwardIndex[K, X]
	excluded *qset.Set[K]
	rl       *rateLimitedLogger

	missedUpdate bool // an inverse posting was found absent on remove
}

// NewSimpleMapIndex constructs an index from cfg and scans dataEntries
// once to populate it. After construction the index is mutated only by
// Insert, Update and Remove.
func NewSimpleMapIndex[K comparable, V any, X comparable](
	cfg Config[K, V, X],
	dataEntries ...*qentry.Entry[K, V],
) (idx *SimpleMapIndex[K, V, X]) {
	idx = newSimpleMapIndex(cfg)
	for _, e := range dataEntries {
		idx.Insert(e)
	}
	return
}

func newSimpleMapIndex[K comparable, V any, X comparable](cfg Config[K, V, X]) (idx *SimpleMapIndex[K, V, X]) {
	var inv InverseIndex[K, X]
	if cfg.Ordered {
		inv = newOrderedInverseIndex[K](cfg.Comparator)
	} else {
		inv = newHashInverseIndex[K, X]()
	}
	var forward = cfg.Forward && !cfg.isSplit()
	return &SimpleMapIndex[K, V, X]{
		config:   cfg,
		inverse:  inv,
		forward:  newForwardIndex[K, X](forward),
		excluded: qset.New[K](),
		rl:       newRateLimitedLogger(),
	}
}

// Extractor returns the extractor this index was built for, used by
// callers matching an index-map entry by extractor identity.
func (idx *SimpleMapIndex[K, V, X]) Extractor() qentry.OriginalExtractor[K, V, X] {
	return idx.config.Extractor
}

// IsOrdered reports whether range queries (HeadKeys/TailKeys/SubKeys) are
// supported.
func (idx *SimpleMapIndex[K, V, X]) IsOrdered() bool { return idx.config.Ordered }

// IsPartial is true iff the excluded set is non-empty or a remove
// observed a missing posting.
func (idx *SimpleMapIndex[K, V, X]) IsPartial() bool {
	idx.lock.RLock()
	defer idx.lock.RUnlock()

	return idx.excluded.Len() > 0 || idx.missedUpdate
}

// Get returns the forward-indexed extracted value for key, or
// ok=false when there is no forward index or the key is excluded or
// absent.
func (idx *SimpleMapIndex[K, V, X]) Get(key K) (value X, ok bool) {
	idx.lock.RLock()
	defer idx.lock.RUnlock()

	return idx.forward.get(key)
}

// Inverse exposes the read-only inverse index for filters to consult.
func (idx *SimpleMapIndex[K, V, X]) Inverse() InverseIndex[K, X] { return idx.inverse }

// Excluded returns a snapshot of the keys whose extraction failed —
// the only reason a SimpleMapIndex omits a key.
func (idx *SimpleMapIndex[K, V, X]) Excluded() *qset.Set[K] {
	idx.lock.RLock()
	defer idx.lock.RUnlock()

	return idx.excluded.Clone()
}

// equalExtractor is satisfied by extractors (qextract.Func included)
// whose equality depends only on configuration, never identity.
type equalExtractor[K comparable, V any, X comparable] interface {
	Equal(other qentry.OriginalExtractor[K, V, X]) bool
}

// Equal reports structural equality with other: same extractor and
// matching ordered/forward configuration. Extractors not implementing
// value-based equality are never considered equal.
func (idx *SimpleMapIndex[K, V, X]) Equal(other *SimpleMapIndex[K, V, X]) bool {
	if other == nil {
		return false
	}
	if idx.config.Ordered != other.config.Ordered || idx.config.Forward != other.config.Forward {
		return false
	}
	var e, ok = idx.config.Extractor.(equalExtractor[K, V, X])
	if !ok {
		return false
	}
	return e.Equal(other.config.Extractor)
}

// currentElements returns the posting values entry's current value
// should contribute: Elements(value) in split mode, or the single
// scalar extraction otherwise.
func (idx *SimpleMapIndex[K, V, X]) currentElements(entry *qentry.Entry[K, V]) (values []X, err error) {
	if idx.config.isSplit() {
		value, _ := entry.GetValue()
		return idx.config.Elements(value)
	}
	var scalar, scalarErr = qentry.ExtractFrom[K, V, X](idx.config.Extractor, entry)
	if scalarErr != nil {
		return nil, scalarErr
	}
	return []X{scalar}, nil
}

// originalElements mirrors currentElements against entry's original
// value, reporting ok=false when none is available or extraction
// fails.
func (idx *SimpleMapIndex[K, V, X]) originalElements(entry *qentry.Entry[K, V]) (values []X, ok bool) {
	original, present := entry.GetOriginalValue()
	if !present {
		return nil, false
	}
	if idx.config.isSplit() {
		var elements, err = idx.config.Elements(original)
		if err != nil {
			return nil, false
		}
		return elements, true
	}
	var scalar, extractOk, err = idx.config.Extractor.ExtractOriginalFromEntry(entry)
	if err != nil || !extractOk {
		return nil, false
	}
	return []X{scalar}, true
}

// Insert extracts cfg.Extractor (or cfg.Elements, in split mode) from
// entry and posts its key into the inverse (and, if configured,
// forward) index. Extraction failure moves the key to the excluded
// set rather than propagating.
func (idx *SimpleMapIndex[K, V, X]) Insert(entry *qentry.Entry[K, V]) {
	idx.lock.Lock()
	defer idx.lock.Unlock()

	var key = entry.GetKey()
	var values, err = idx.currentElements(entry)
	if err != nil {
		idx.excluded.Add(key)
		return
	}
	idx.excluded.Remove(key)

	for _, v := range values {
		idx.inverse.Add(v, key)
	}
	if !idx.config.isSplit() {
		idx.forward.put(key, values[0])
	}
}

// Update recomputes the extracted value(s) and moves key's posting(s)
// as needed. The old value is resolved from the forward index first,
// then by re-extracting against entry's original value, and only as a
// last resort by scanning every posting — a performance cliff, but a
// forward index is deliberately not required for correctness.
func (idx *SimpleMapIndex[K, V, X]) Update(entry *qentry.Entry[K, V]) {
	idx.lock.Lock()
	defer idx.lock.Unlock()

	var key = entry.GetKey()
	var newValues, err = idx.currentElements(entry)
	if err != nil {
		idx.excluded.Add(key)
		idx.removeKeyFromAllPostings(key)
		idx.forward.remove(key)
		return
	}

	var oldValues, hadOld = idx.resolveOldElements(key, entry)
	idx.excluded.Remove(key)

	if hadOld && sameElements(oldValues, newValues) {
		return // unchanged extraction: no-op on the inverse index
	}

	if hadOld {
		for _, v := range oldValues {
			idx.removePosting(v, key)
		}
	} else {
		// performance cliff: no reliable old value, scan every posting
		idx.removeKeyFromAllPostings(key)
	}

	for _, v := range newValues {
		idx.inverse.Add(v, key)
	}
	if !idx.config.isSplit() {
		idx.forward.put(key, newValues[0])
	}
}

func sameElements[X comparable](a, b []X) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// resolveOldElements resolves the previously-indexed value: forward
// index first (scalar mode only), then the entry's original value,
// else unknown.
func (idx *SimpleMapIndex[K, V, X]) resolveOldElements(key K, entry *qentry.Entry[K, V]) (old []X, ok bool) {
	if !idx.config.isSplit() {
		if scalar, found := idx.forward.get(key); found {
			return []X{scalar}, true
		}
	}
	return idx.originalElements(entry)
}

// removePosting removes key from the posting for v, logging a
// rate-limited warning if the posting was missing it.
func (idx *SimpleMapIndex[K, V, X]) removePosting(v X, key K) {
	if removed := idx.inverse.Remove(v, key); !removed {
		idx.missedUpdate = true
		idx.rl.warnMissingPosting("SimpleMapIndex", v, key)
	}
}

// removeKeyFromAllPostings is the Update/Remove fallback scan used
// when no reliable old extracted value is available. Postings are
// collected during the walk and removed after it, so that pruning an
// emptied posting never mutates the inverse index mid-traversal.
func (idx *SimpleMapIndex[K, V, X]) removeKeyFromAllPostings(key K) {
	var containing []X
	idx.inverse.Range(func(value X, keys *qset.Set[K]) bool {
		if keys.Contains(key) {
			containing = append(containing, value)
		}
		return true
	})
	for _, value := range containing {
		idx.inverse.Remove(value, key)
	}
}

// Remove mirrors Insert's additions: it removes key from whichever
// postings the old value (or, failing that, every posting) placed it
// in.
func (idx *SimpleMapIndex[K, V, X]) Remove(entry *qentry.Entry[K, V]) {
	idx.lock.Lock()
	defer idx.lock.Unlock()

	var key = entry.GetKey()
	idx.excluded.Remove(key)

	if old, ok := idx.resolveOldElements(key, entry); ok {
		for _, v := range old {
			idx.removePosting(v, key)
		}
	} else {
		idx.removeKeyFromAllPostings(key)
	}
	idx.forward.remove(key)
}
