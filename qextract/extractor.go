/*
© 2026–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

// Package qextract provides value extractors: pure projections from an
// entry's value or key to an indexable attribute.
package qextract

import (
	"github.com/haraldrudell/gridquery/qentry"
	"github.com/haraldrudell/gridquery/qerrors"
)

// Target selects whether an extractor runs against an entry's value or
// its key.
type Target int

const (
	// TargetValue: extractFromEntry applies to entry.Value — the default.
	TargetValue Target = iota
	// TargetKey: extractFromEntry applies to entry.Key.
	TargetKey
)

func (t Target) String() (s string) {
	if t == TargetKey {
		return "key"
	}
	return "value"
}

// Func is an extractor built from plain functions over the value and, if
// configured for TargetKey, the key.
//   - equality and hash depend only on configuration (target + the
//     function identity tag), never on call-time state, so two Func
//     extractors built with the same tag and target are interchangeable
//     — see [Func.Equal]
type Func[K comparable, V any, X any] struct {
	target     Target
	tag        string // configuration identity for Equal/hash — not the function pointer
	extractV   func(value V) (X, error)
	extractK   func(key K) (X, error)
	extractOrg func(value V) (X, bool, error) // optional, for OriginalExtractor
}

var _ qentry.Extractor[int, int, int] = (*Func[int, int, int])(nil)
var _ qentry.OriginalExtractor[int, int, int] = (*Func[int, int, int])(nil)

// NewValueExtractor returns an extractor that applies extract to an
// entry's value. tag identifies the extractor's configuration for
// equality/hash purposes (e.g. a field name) — it must be stable and
// unique per distinct extraction the caller intends.
func NewValueExtractor[K comparable, V any, X any](tag string, extract func(value V) (X, error)) (extractor *Func[K, V, X]) {
	return &Func[K, V, X]{target: TargetValue, tag: tag, extractV: extract}
}

// NewKeyExtractor returns an extractor that applies extract to an
// entry's key rather than its value — realized by the target=KEY
// configuration rather than by wrapping another extractor.
func NewKeyExtractor[K comparable, V any, X any](tag string, extract func(key K) (X, error)) (extractor *Func[K, V, X]) {
	return &Func[K, V, X]{target: TargetKey, tag: tag, extractK: extract}
}

// WithOriginal attaches an extraction function over an entry's original
// value, enabling [qentry.OriginalExtractor] support used by
// SimpleMapIndex.Update.
func (f *Func[K, V, X]) WithOriginal(extractOrg func(value V) (X, bool, error)) (extractor *Func[K, V, X]) {
	f.extractOrg = extractOrg
	return f
}

// Target returns whether this extractor applies to the value or the key.
func (f *Func[K, V, X]) Target() (target Target) { return f.target }

// Extract applies the extractor directly to a value, for target=VALUE
// extractors. Target=KEY extractors return [qerrors.ErrInvalidArgument].
func (f *Func[K, V, X]) Extract(value V) (extracted X, err error) {
	if f.target != TargetValue || f.extractV == nil {
		err = qerrors.InvalidArgument("qextract: Extract called on a key-targeted extractor")
		return
	}
	return f.extractV(value)
}

// ExtractFromEntry dispatches to the value or the key per [Func.Target] —
// the default behavior every extractor implementation gets for free.
func (f *Func[K, V, X]) ExtractFromEntry(entry *qentry.Entry[K, V]) (extracted X, err error) {
	if f.target == TargetKey {
		if f.extractK == nil {
			err = qerrors.InvalidArgument("qextract: key-targeted extractor has no key function")
			return
		}
		return f.extractK(entry.GetKey())
	}
	value, _ := entry.GetValue()
	return f.extractV(value)
}

// ExtractOriginalFromEntry extracts from entry's original (pre-commit)
// value. ok is false when entry has no original value or extraction
// fails. A KEY-targeted extractor extracts from the key, since a key
// never changes across an update. A value extractor created without
// [Func.WithOriginal] applies its value function to the original value.
func (f *Func[K, V, X]) ExtractOriginalFromEntry(entry *qentry.Entry[K, V]) (extracted X, ok bool, err error) {
	if f.target == TargetKey {
		extracted, err = f.ExtractFromEntry(entry)
		ok = err == nil
		return
	}
	original, present := entry.GetOriginalValue()
	if !present {
		return
	}
	if f.extractOrg != nil {
		return f.extractOrg(original)
	}
	if f.extractV == nil {
		return
	}
	extracted, err = f.extractV(original)
	ok = err == nil
	return
}

// Equal reports whether two extractors are configuration-equal: same
// target and same tag. Equality and hash must be value-based so that two
// extractors with identical configuration are interchangeable for index
// lookup and registration purposes. other need not be a *Func; anything
// else compares unequal.
func (f *Func[K, V, X]) Equal(other qentry.OriginalExtractor[K, V, X]) (equal bool) {
	var o, ok = other.(*Func[K, V, X])
	if !ok || o == nil {
		return false
	}
	return f.target == o.target && f.tag == o.tag
}

// Tag returns the extractor's configuration identity, used as a map key
// by index registries that key on extractor equality.
func (f *Func[K, V, X]) Tag() (tag string) { return f.tag }
