/*
© 2026–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package qfilter

import "github.com/haraldrudell/gridquery/qentry"

// TaggedExtractor is what every leaf predicate needs from an
// extractor: the ability to project from an entry plus a stable
// configuration tag — the tag is how ApplyIndex finds the matching
// index in the index map.
type TaggedExtractor[K comparable, V any, X any] interface {
	qentry.Extractor[K, V, X]
	Tag() string
}

// evalValue runs extractor against a standalone value by wrapping it
// in a throwaway entry with the zero key — the convenience path for
// Filter.Evaluate, which takes a bare value rather than a full entry.
// Key-targeted extractors evaluated this way see only the zero key,
// since no real key exists in this path.
func evalValue[K comparable, V any, X any](extractor qentry.Extractor[K, V, X], value V) (extracted X, err error) {
	var zero K
	return extractor.ExtractFromEntry(qentry.New(zero, value))
}
