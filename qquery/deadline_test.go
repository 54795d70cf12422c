/*
© 2026–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package qquery

import (
	"context"
	"testing"

	"github.com/haraldrudell/gridquery/qextract"
	"github.com/haraldrudell/gridquery/qfilter"
	"github.com/haraldrudell/gridquery/qgrid"
)

func TestKeySetContextMatchesKeySet(t *testing.T) {
	var data = qgrid.NewLocalMap[int, string]()
	data.Put(1, "David")
	data.Put(2, "Mark")
	data.Put(3, "David")
	var m = NewMap[int, string](data)
	var extractor = qextract.NewValueExtractor[int, string, string]("name", func(v string) (string, error) { return v, nil })

	var f = qfilter.NewAnd[int, string](
		qfilter.NewEquals[int, string, string](extractor, "David"),
		qfilter.NewNotEquals[int, string, string](extractor, "Mark"),
	)
	var keys, err = m.KeySetContext(context.Background(), f)
	if err != nil {
		t.Fatalf("KeySetContext: %v", err)
	}
	var want = m.KeySet(f)
	if keys.Len() != want.Len() {
		t.Fatalf("KeySetContext and KeySet disagree: %v vs %v", keys.Keys(), want.Keys())
	}
	for _, k := range want.Keys() {
		if !keys.Contains(k) {
			t.Errorf("KeySetContext missing key %d", k)
		}
	}
}

func TestKeySetContextDisjunction(t *testing.T) {
	var data = qgrid.NewLocalMap[int, string]()
	data.Put(1, "David")
	data.Put(2, "Mark")
	data.Put(3, "Larry")
	var m = NewMap[int, string](data)
	var extractor = qextract.NewValueExtractor[int, string, string]("name", func(v string) (string, error) { return v, nil })

	var f = qfilter.NewOr[int, string](
		qfilter.NewEquals[int, string, string](extractor, "David"),
		qfilter.NewEquals[int, string, string](extractor, "Larry"),
	)
	var keys, err = m.KeySetContext(context.Background(), f)
	if err != nil {
		t.Fatalf("KeySetContext: %v", err)
	}
	if keys.Len() != 2 || !keys.Contains(1) || !keys.Contains(3) {
		t.Errorf("want {1,3}, got %v", keys.Keys())
	}
}

func TestKeySetContextAbortsOnExpiredContext(t *testing.T) {
	var data = qgrid.NewLocalMap[int, string]()
	data.Put(1, "David")
	var m = NewMap[int, string](data)
	var extractor = qextract.NewValueExtractor[int, string, string]("name", func(v string) (string, error) { return v, nil })

	var ctx, cancel = context.WithCancel(context.Background())
	cancel()

	var keys, err = m.KeySetContext(ctx, qfilter.NewEquals[int, string, string](extractor, "David"))
	if err == nil {
		t.Fatal("an expired context must abort the query")
	}
	if keys != nil {
		t.Error("no partial result set may be returned on abort")
	}
}
