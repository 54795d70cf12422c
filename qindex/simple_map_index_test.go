/*
© 2026–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package qindex

import (
	"errors"
	"testing"

	"github.com/haraldrudell/gridquery/qentry"
	"github.com/haraldrudell/gridquery/qextract"
)

func nameExtractor() *qextract.Func[int, string, string] {
	return qextract.NewValueExtractor[int, string, string]("name", func(v string) (string, error) { return v, nil })
}

func TestSimpleMapIndexInsertGet(t *testing.T) {
	var idx = newSimpleMapIndex(Config[int, string, string]{Extractor: nameExtractor(), Forward: true})
	idx.Insert(qentry.New(1, "David"))
	idx.Insert(qentry.New(2, "Mark"))

	if v, ok := idx.Get(1); !ok || v != "David" {
		t.Errorf("Get(1): got (%q,%v), want (David,true)", v, ok)
	}
	var posting, ok = idx.Inverse().Get("David")
	if !ok || !posting.Contains(1) {
		t.Error("inverse posting for David must contain key 1")
	}
}

func TestSimpleMapIndexUpdateMovesPosting(t *testing.T) {
	var idx = newSimpleMapIndex(Config[int, string, string]{Extractor: nameExtractor(), Forward: true})
	idx.Insert(qentry.New(1, "David"))

	var e = qentry.NewWithOriginal(1, "Larry", "David")
	idx.Update(e)

	if p, ok := idx.Inverse().Get("David"); ok && p.Contains(1) {
		t.Error("key 1 must no longer be posted under David")
	}
	if p, ok := idx.Inverse().Get("Larry"); !ok || !p.Contains(1) {
		t.Error("key 1 must be posted under Larry")
	}
}

func TestSimpleMapIndexUpdateNoOp(t *testing.T) {
	var idx = newSimpleMapIndex(Config[int, string, string]{Extractor: nameExtractor(), Forward: true})
	idx.Insert(qentry.New(1, "David"))

	var e = qentry.NewWithOriginal(1, "David", "David")
	idx.Update(e)
	idx.Update(e)

	var p, ok = idx.Inverse().Get("David")
	if !ok || p.Len() != 1 {
		t.Error("repeated no-op update must leave a single posting")
	}
}

func TestSimpleMapIndexRemoveRestoresEmpty(t *testing.T) {
	var idx = newSimpleMapIndex(Config[int, string, string]{Extractor: nameExtractor(), Forward: true})
	var e = qentry.New(1, "David")
	idx.Insert(e)
	idx.Remove(e)

	if idx.Inverse().Len() != 0 {
		t.Error("insert then remove must restore the index to empty")
	}
}

func TestSimpleMapIndexExtractionFailureExcludes(t *testing.T) {
	var errExtraction = errors.New("extraction failed")
	var failing = qextract.NewValueExtractor[int, string, string]("fails", func(v string) (string, error) {
		return "", errExtraction
	})
	var idx = newSimpleMapIndex(Config[int, string, string]{Extractor: failing})
	idx.Insert(qentry.New(1, "x"))

	if !idx.IsPartial() {
		t.Error("extraction failure must mark the index partial (excluded key)")
	}
}
