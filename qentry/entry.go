/*
© 2026–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

// Package qentry provides the Entry type: the (key, value,
// original-value) unit evaluated by filters and maintained by indexes.
// Entry is a concrete generic struct, not an interface.
package qentry

import "github.com/haraldrudell/gridquery/qerrors"

// Entry is the unit evaluated by filters: a key, its current value and,
// while a mutation is in flight, the value it is replacing.
//   - Key is immutable for the lifetime of the Entry
//   - Value is mutable via [Entry.SetValue] and [Entry.Update]
//   - OriginalValue is present only during mutation evaluation — the
//     pre-commit snapshot used by triggers and by update-time index
//     maintenance — absent otherwise, distinct from a present nil value
type Entry[K comparable, V any] struct {
	key K
	// value holds the current value. present is false once Remove has
	// been invoked.
	value   V
	present bool
	// originalValue is the pre-commit snapshot. originalPresent is false
	// when no original value is available — e.g. for a plain insert, or
	// when the backing data map does not expose one.
	originalValue   V
	originalPresent bool
	// synthetic marks the most recent mutation as not requiring external
	// side effects such as write-through. Advisory only.
	synthetic bool
	// immutable entries (snapshot views) reject Remove.
	immutable bool
}

// New returns an Entry with no original value, as for a plain read or
// insert.
func New[K comparable, V any](key K, value V) (entry *Entry[K, V]) {
	return &Entry[K, V]{key: key, value: value, present: true}
}

// NewWithOriginal returns an Entry carrying a pre-commit snapshot, as
// used by triggers and by update-time index maintenance.
func NewWithOriginal[K comparable, V any](key K, value V, originalValue V) (entry *Entry[K, V]) {
	return &Entry[K, V]{
		key: key, value: value, present: true,
		originalValue: originalValue, originalPresent: true,
	}
}

// NewImmutable returns an Entry backed by an immutable snapshot.
// [Entry.Remove] fails with [qerrors.ErrNotSupported] on such an entry.
func NewImmutable[K comparable, V any](key K, value V) (entry *Entry[K, V]) {
	return &Entry[K, V]{key: key, value: value, present: true, immutable: true}
}

// GetKey returns the entry's key.
func (e *Entry[K, V]) GetKey() (key K) { return e.key }

// GetValue returns the current value and whether it is present — false
// after [Entry.Remove].
func (e *Entry[K, V]) GetValue() (value V, present bool) { return e.value, e.present }

// SetValue replaces the current value with newValue.
func (e *Entry[K, V]) SetValue(newValue V) {
	e.value = newValue
	e.present = true
	e.synthetic = false
}

// SetValueSynthetic replaces the current value with newValue, marking
// the mutation synthetic per synthetic.
func (e *Entry[K, V]) SetValueSynthetic(newValue V, synthetic bool) {
	e.value = newValue
	e.present = true
	e.synthetic = synthetic
}

// IsPresent returns whether the entry currently has a value — false
// after [Entry.Remove].
func (e *Entry[K, V]) IsPresent() (present bool) { return e.present }

// IsOriginalPresent returns whether a pre-commit snapshot value is
// available on this Entry.
func (e *Entry[K, V]) IsOriginalPresent() (present bool) { return e.originalPresent }

// GetOriginalValue returns the pre-commit snapshot value and whether it
// is present.
func (e *Entry[K, V]) GetOriginalValue() (value V, present bool) {
	return e.originalValue, e.originalPresent
}

// IsSynthetic returns whether the most recent mutation was marked
// synthetic.
func (e *Entry[K, V]) IsSynthetic() (synthetic bool) { return e.synthetic }

// Update applies valueUpdater to the current value and stores the
// result, marking the mutation per synthetic.
func (e *Entry[K, V]) Update(valueUpdater func(current V) (updated V), synthetic bool) {
	e.SetValueSynthetic(valueUpdater(e.value), synthetic)
}

// Remove marks the entry as having no value, per synthetic.
//   - fails with [qerrors.ErrNotSupported] when the entry is backed by an
//     immutable snapshot
func (e *Entry[K, V]) Remove(synthetic bool) (err error) {
	if e.immutable {
		return qerrors.NotSupported("qentry: Remove on immutable snapshot entry")
	}
	var zero V
	e.value = zero
	e.present = false
	e.synthetic = synthetic
	return nil
}
