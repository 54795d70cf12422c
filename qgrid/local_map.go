/*
© 2026–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package qgrid

import (
	"sync"

	"github.com/google/uuid"

	"github.com/haraldrudell/gridquery/qentry"
)

// LocalMap is an in-memory DataMap: a plain Go map guarded by a mutex,
// with mutation events published to subscribed index listeners the way
// a real distributed cache would deliver them. It exists so the query
// engine can be exercised end-to-end without any network dependency.
type LocalMap[K comparable, V any] struct {
	id uuid.UUID

	lock sync.RWMutex
	m    map[K]V

	listenersLock sync.Mutex
	listeners     []chan MapEvent[K, V]
}

// NewLocalMap returns an empty LocalMap, stamped with a fresh instance
// ID so diagnostics can tell two LocalMap instances apart in a log
// stream without comparing pointers.
func NewLocalMap[K comparable, V any]() (lm *LocalMap[K, V]) {
	return &LocalMap[K, V]{id: uuid.New(), m: make(map[K]V)}
}

// ID returns this LocalMap's instance identity.
func (lm *LocalMap[K, V]) ID() uuid.UUID { return lm.id }

func (lm *LocalMap[K, V]) Get(key K) (value V, ok bool) {
	lm.lock.RLock()
	defer lm.lock.RUnlock()

	value, ok = lm.m[key]
	return
}

func (lm *LocalMap[K, V]) ContainsKey(key K) (contains bool) {
	lm.lock.RLock()
	defer lm.lock.RUnlock()

	_, contains = lm.m[key]
	return
}

func (lm *LocalMap[K, V]) Keys() (keys []K) {
	lm.lock.RLock()
	defer lm.lock.RUnlock()

	keys = make([]K, 0, len(lm.m))
	for k := range lm.m {
		keys = append(keys, k)
	}
	return
}

func (lm *LocalMap[K, V]) EntrySet() (entries []*qentry.Entry[K, V]) {
	lm.lock.RLock()
	defer lm.lock.RUnlock()

	entries = make([]*qentry.Entry[K, V], 0, len(lm.m))
	for k, v := range lm.m {
		entries = append(entries, qentry.New(k, v))
	}
	return
}

// Events returns a fresh subscription channel. Every Put/Remove on
// this LocalMap publishes to every subscriber — indexes register here
// as listeners; the query driver does not.
func (lm *LocalMap[K, V]) Events() <-chan MapEvent[K, V] {
	lm.listenersLock.Lock()
	defer lm.listenersLock.Unlock()

	var ch = make(chan MapEvent[K, V], 64)
	lm.listeners = append(lm.listeners, ch)
	return ch
}

func (lm *LocalMap[K, V]) publish(event MapEvent[K, V]) {
	lm.listenersLock.Lock()
	defer lm.listenersLock.Unlock()

	for _, ch := range lm.listeners {
		select {
		case ch <- event:
		default: // a slow listener must not block the mutating caller
		}
	}
}

// Put inserts or replaces the value at key, publishing an Insert or
// Update event accordingly.
func (lm *LocalMap[K, V]) Put(key K, value V) {
	lm.lock.Lock()
	var old, had = lm.m[key]
	lm.m[key] = value
	lm.lock.Unlock()

	if had {
		lm.publish(MapEvent[K, V]{Type: EventUpdate, Key: key, OldValue: old, HasOld: true, NewValue: value, HasNew: true})
	} else {
		lm.publish(MapEvent[K, V]{Type: EventInsert, Key: key, NewValue: value, HasNew: true})
	}
}

// Remove deletes the mapping for key, publishing a Remove event when
// one existed.
func (lm *LocalMap[K, V]) Remove(key K) {
	lm.lock.Lock()
	var old, had = lm.m[key]
	delete(lm.m, key)
	lm.lock.Unlock()

	if had {
		lm.publish(MapEvent[K, V]{Type: EventRemove, Key: key, OldValue: old, HasOld: true})
	}
}

var _ DataMap[int, int] = (*LocalMap[int, int])(nil)
