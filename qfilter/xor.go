/*
© 2026–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package qfilter

import "github.com/haraldrudell/gridquery/qentry"

// Xor matches entries where exactly one of L, R passes. It is
// defined by per-entry evaluation only: Xor deliberately does not
// implement IndexAwareFilter, so a combinator holding it always
// treats it as a residual to evaluate entry-by-entry — no index path
// is attempted.
type Xor[K comparable, V any] struct {
	L, R Filter[K, V]
}

func NewXor[K comparable, V any](l, r Filter[K, V]) *Xor[K, V] {
	return &Xor[K, V]{L: l, R: r}
}

func (f *Xor[K, V]) Evaluate(value V) bool {
	return f.L.Evaluate(value) != f.R.Evaluate(value)
}

func (f *Xor[K, V]) EvaluateEntry(entry *qentry.Entry[K, V]) bool {
	return f.L.EvaluateEntry(entry) != f.R.EvaluateEntry(entry)
}

var _ Filter[int, int] = (*Xor[int, int])(nil)
