/*
© 2026–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package qcompare

import "github.com/haraldrudell/gridquery/qentry"

// CompareEntries projects both entries with extractor and compares the
// extracted values with cmp. The extracted values are not returned.
func CompareEntries[K comparable, V any, X any](
	cmp Comparator[X],
	extractor qentry.Extractor[K, V, X],
	e1, e2 *qentry.Entry[K, V],
) (result int, err error) {
	var x1, x2 X
	if x1, err = extractor.ExtractFromEntry(e1); err != nil {
		return
	}
	if x2, err = extractor.ExtractFromEntry(e2); err != nil {
		return
	}
	return cmp(x1, x2)
}
