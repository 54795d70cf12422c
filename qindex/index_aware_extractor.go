/*
© 2026–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package qindex

import (
	"github.com/haraldrudell/gridquery/qentry"
	"github.com/haraldrudell/gridquery/qerrors"
)

// IndexMap is the extractor → index-instance registry AddIndex and
// RemoveIndex install into. Keys are the extractor's Tag so that two
// extractors with identical configuration collide.
type IndexMap[K comparable, V any] map[string]any

// IndexAwareExtractor is an extractor that owns its index type and
// controls its own construction/teardown, for extractors that need a
// specialized index rather than the default SimpleMapIndex.
type IndexAwareExtractor[K comparable, V any, X comparable] interface {
	qentry.OriginalExtractor[K, V, X]
	// CreateIndex registers a new index for this extractor in indexMap
	// keyed by Tag(). Returns index=nil without error when an identical
	// extractor+configuration is already registered (idempotent); fails
	// with InvalidArgument when a conflicting registration exists under
	// the same tag.
	CreateIndex(ordered bool, cfg Config[K, V, X], indexMap IndexMap[K, V]) (index *SimpleMapIndex[K, V, X], err error)
	// DestroyIndex removes this extractor's index from indexMap,
	// returning it (or nil if none was registered).
	DestroyIndex(indexMap IndexMap[K, V]) (index *SimpleMapIndex[K, V, X])
}

// CreateIndex is the default IndexAwareExtractor.CreateIndex
// implementation: register a SimpleMapIndex under tag, or reuse the
// existing one when it is configuration-equal.
func CreateIndex[K comparable, V any, X comparable](
	tag string,
	cfg Config[K, V, X],
	indexMap IndexMap[K, V],
) (index *SimpleMapIndex[K, V, X], err error) {
	if existing, found := indexMap[tag]; found {
		var existingIdx, ok = existing.(*SimpleMapIndex[K, V, X])
		if !ok {
			err = qerrors.InvalidArgument("qindex: index tag %q already registered with an incompatible type", tag)
			return
		}
		var candidate = newSimpleMapIndex(cfg)
		if existingIdx.Equal(candidate) {
			return nil, nil // idempotent: identical extractor+configuration
		}
		err = qerrors.InvalidArgument("qindex: index tag %q already registered with a conflicting configuration", tag)
		return
	}
	index = newSimpleMapIndex(cfg)
	indexMap[tag] = index
	return
}

// DestroyIndex is the default IndexAwareExtractor.DestroyIndex
// implementation.
func DestroyIndex[K comparable, V any, X comparable](tag string, indexMap IndexMap[K, V]) (index *SimpleMapIndex[K, V, X]) {
	var existing, found = indexMap[tag]
	if !found {
		return nil
	}
	delete(indexMap, tag)
	index, _ = existing.(*SimpleMapIndex[K, V, X])
	return
}
