/*
© 2026–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package qconfig

import (
	"github.com/haraldrudell/gridquery/qerrors"
	"github.com/haraldrudell/gridquery/qquery"
)

// Factory installs one tagged extractor as an index on m, honoring
// ordered. A caller builds one Factory per extractor it wants
// addressable from YAML, closing over the extractor's own concrete X
// type and comparator — the same "caller supplies the live,
// type-complete collaborator" shape qfilter's FromXShape functions use
// for reconstructing filters from a qcodec.Shape, and for the same
// reason: X is erased from the document.
type Factory[K comparable, V any] func(m *qquery.Map[K, V], ordered bool) (err error)

// Registry maps an IndexSpec.Tag to the Factory that knows how to
// install it.
type Registry[K comparable, V any] map[string]Factory[K, V]

// Apply installs every index mapping names, using registry to resolve
// each IndexSpec.Tag to a live Factory. An unregistered tag is an
// InvalidArgument: a document referencing an extractor the running
// binary never registered is a configuration error, not a silent
// no-op.
func Apply[K comparable, V any](m *qquery.Map[K, V], mapping CacheMapping, registry Registry[K, V]) (err error) {
	for _, spec := range mapping.Indexes {
		var factory, ok = registry[spec.Tag]
		if !ok {
			return qerrors.InvalidArgument("qconfig: no index factory registered for extractor tag %q", spec.Tag)
		}
		if err = factory(m, spec.Ordered); err != nil {
			return
		}
	}
	return
}

// ApplyForCache resolves cacheName against doc and, if a mapping
// applies, installs its indexes via registry. ok reports whether a
// mapping was found; a cache name matching no mapping and no default
// is left with no indexes at all, which is a valid outcome (not every
// cache need be indexed).
func ApplyForCache[K comparable, V any](
	m *qquery.Map[K, V],
	doc Document,
	cacheName string,
	registry Registry[K, V],
) (ok bool, err error) {
	var mapping CacheMapping
	if mapping, ok = doc.Resolve(cacheName); !ok {
		return
	}
	err = Apply(m, mapping, registry)
	return
}
