/*
© 2026–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package qquery

import (
	"testing"
	"time"

	"github.com/haraldrudell/gridquery/qcompare"
	"github.com/haraldrudell/gridquery/qentry"
	"github.com/haraldrudell/gridquery/qextract"
	"github.com/haraldrudell/gridquery/qfilter"
	"github.com/haraldrudell/gridquery/qgrid"
)

func TestKeySetUsesIndexAndFallsBackToEntryScan(t *testing.T) {
	var data = qgrid.NewLocalMap[int, string]()
	data.Put(1, "David")
	data.Put(2, "Mark")
	data.Put(3, "David")

	var m = NewMap[int, string](data)
	var extractor = qextract.NewValueExtractor[int, string, string]("name", func(v string) (string, error) { return v, nil })
	if err := AddIndex[int, string, string](m, extractor, false, nil); err != nil {
		t.Fatalf("AddIndex: %v", err)
	}

	var keys = m.KeySet(qfilter.NewEquals[int, string, string](extractor, "David"))
	if keys.Len() != 2 || !keys.Contains(1) || !keys.Contains(3) {
		t.Errorf("want {1,3}, got %v", keys.Keys())
	}

	RemoveIndex[int, string, string](m, extractor)
	var keys2 = m.KeySet(qfilter.NewEquals[int, string, string](extractor, "Mark"))
	if keys2.Len() != 1 || !keys2.Contains(2) {
		t.Errorf("want {2} via entry-by-entry fallback, got %v", keys2.Keys())
	}
}

func TestAddIndexMaintainsLiveMutations(t *testing.T) {
	var data = qgrid.NewLocalMap[int, string]()
	data.Put(1, "David")

	var m = NewMap[int, string](data)
	var extractor = qextract.NewValueExtractor[int, string, string]("name", func(v string) (string, error) { return v, nil })
	if err := AddIndex[int, string, string](m, extractor, false, nil); err != nil {
		t.Fatalf("AddIndex: %v", err)
	}

	data.Put(2, "Mark") // posted after the index existed — exercises the live listener, not the backfill scan

	var deadline = time.Now().Add(2 * time.Second)
	for {
		var keys = m.KeySet(qfilter.NewEquals[int, string, string](extractor, "Mark"))
		if keys.Len() == 1 && keys.Contains(2) {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("index never observed the post-registration insert; got %v", keys.Keys())
		}
		time.Sleep(time.Millisecond)
	}

	data.Put(1, "Updated") // update: old posting for David must vanish
	deadline = time.Now().Add(2 * time.Second)
	for {
		var keys = m.KeySet(qfilter.NewEquals[int, string, string](extractor, "David"))
		if keys.Len() == 0 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("index never observed the post-registration update; got %v", keys.Keys())
		}
		time.Sleep(time.Millisecond)
	}
}

func TestAddConditionalIndexWiresIntoFilterApplyIndex(t *testing.T) {
	var data = qgrid.NewLocalMap[int, string]()
	data.Put(1, "David") // long enough to be admitted
	data.Put(2, "Bob")   // too short, excluded by the admission filter

	var m = NewMap[int, string](data)
	var extractor = qextract.NewValueExtractor[int, string, string]("name", func(v string) (string, error) { return v, nil })
	var admitLongNames = admissionFunc(func(e *qentry.Entry[int, string]) bool {
		v, _ := e.GetValue()
		return len(v) > 3
	})
	if err := AddConditionalIndex[int, string, string](m, extractor, false, nil, admitLongNames, true); err != nil {
		t.Fatalf("AddConditionalIndex: %v", err)
	}

	// Equals finds the admitted key straight through the partial index's
	// inverse posting.
	var keys = m.KeySet(qfilter.NewEquals[int, string, string](extractor, "David"))
	if keys.Len() != 1 || !keys.Contains(1) {
		t.Errorf("want {1}, got %v", keys.Keys())
	}

	// Not must not claim the excluded key as a match merely because
	// the partial index lacks it.
	var notDavid = m.KeySet(qfilter.NewNot[int, string](qfilter.NewEquals[int, string, string](extractor, "David")))
	if notDavid.Len() != 1 || !notDavid.Contains(2) {
		t.Errorf("want {2} from Not(Equals(David)) over a partial index, got %v", notDavid.Keys())
	}
}

// admissionFunc adapts a plain func into a qindex.AdmissionFilter,
// mirroring qindex's own test helper.
type admissionFunc func(entry *qentry.Entry[int, string]) bool

func (f admissionFunc) EvaluateEntry(entry *qentry.Entry[int, string]) bool { return f(entry) }

func TestEntrySetOrderedSortsByValue(t *testing.T) {
	var data = qgrid.NewLocalMap[int, int]()
	for i, v := range []int{30, 10, 20} {
		data.Put(i+1, v)
	}
	var m = NewMap[int, int](data)
	var always = qfilter.NewAll[int, int]() // no children: trivially resolves to every key
	var entries, err = m.EntrySetOrdered(always, qcompare.Natural[int]())
	if err != nil {
		t.Fatalf("EntrySetOrdered: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("want 3 entries, got %d", len(entries))
	}
	var prev, _ = entries[0].GetValue()
	for _, e := range entries[1:] {
		var v, _ = e.GetValue()
		if v < prev {
			t.Errorf("entries not sorted ascending: %d before %d", prev, v)
		}
		prev = v
	}
}

func TestEntrySetOrderedExtractsLimitPage(t *testing.T) {
	var data = qgrid.NewLocalMap[int, int]()
	for i := 0; i < 10; i++ {
		data.Put(i, i)
	}
	var m = NewMap[int, int](data)
	var limit, err = qfilter.NewLimit[int, int](qfilter.NewAll[int, int](), 3)
	if err != nil {
		t.Fatalf("NewLimit: %v", err)
	}
	limit.Comparator = qcompare.Natural[int]()

	var entries, entriesErr = m.EntrySetOrdered(limit, qcompare.Natural[int]())
	if entriesErr != nil {
		t.Fatalf("EntrySetOrdered: %v", entriesErr)
	}
	if len(entries) != 3 {
		t.Fatalf("want page of 3, got %d", len(entries))
	}
	var v0, _ = entries[0].GetValue()
	if v0 != 0 {
		t.Errorf("first page should start at value 0, got %d", v0)
	}
}
