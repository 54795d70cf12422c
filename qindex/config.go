/*
© 2026–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package qindex

import (
	"github.com/haraldrudell/gridquery/qcompare"
	"github.com/haraldrudell/gridquery/qentry"
)

// ElementsFunc extracts the set of elements a split-collection index
// should post a key under, given a value. It is applied to
// both the current and, during Update, the original value — whichever
// is available — so the index can compute both the old and new
// posting sets. Err non-nil behaves like any other extraction
// failure — the key moves to the excluded set.
type ElementsFunc[K comparable, V any, X comparable] func(value V) (elements []X, err error)

// Config is the immutable configuration snapshot an index is created
// with: extractor, ordering, comparator, and whether a forward index
// is maintained.
//
// Elements, when set, switches the index into split-collection mode:
// every Insert/Update/Remove posts a key under each element Elements
// returns instead of under a single scalar extraction, and the
// forward index (if enabled) is left unset per key since there is no
// single extracted value to cache. Extractor is still required in
// this mode — it supplies Tag()/Equal() identity so filters can find
// the index — but its ExtractFromEntry is not consulted.
type Config[K comparable, V any, X comparable] struct {
	Extractor  qentry.OriginalExtractor[K, V, X]
	Ordered    bool
	Comparator qcompare.Comparator[X] // nil uses natural order when Ordered
	Forward    bool                   // maintain a forward index (scalar mode only)
	Elements   ElementsFunc[K, V, X]  // nil: scalar extraction via Extractor
}

func (c Config[K, V, X]) isSplit() bool { return c.Elements != nil }
