/*
© 2026–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package qconfig

import (
	"testing"

	"github.com/haraldrudell/gridquery/qextract"
	"github.com/haraldrudell/gridquery/qgrid"
	"github.com/haraldrudell/gridquery/qquery"
)

const doc = `
mappings:
  - cache-name: accounts
    indexes:
      - extractor: name
        ordered: false
  - cache-name: "orders-*"
    indexes:
      - extractor: name
        ordered: true
  - cache-name: "*"
    indexes: []
`

func TestResolveExactPrefixAndDefault(t *testing.T) {
	var parsed, err = Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if m, ok := parsed.Resolve("accounts"); !ok || m.Name != "accounts" {
		t.Fatalf("exact match: got %+v, ok=%v", m, ok)
	}
	if m, ok := parsed.Resolve("orders-2026"); !ok || m.Name != "orders-*" {
		t.Fatalf("prefix match: got %+v, ok=%v", m, ok)
	}
	if m, ok := parsed.Resolve("unrelated"); !ok || m.Name != "*" {
		t.Fatalf("default match: got %+v, ok=%v", m, ok)
	}
}

func TestResolveNoMappingsIsNotFound(t *testing.T) {
	var empty Document
	if _, ok := empty.Resolve("anything"); ok {
		t.Fatal("expected no match against an empty document")
	}
}

func TestApplyForCacheInstallsIndexViaRegistry(t *testing.T) {
	var parsed, err = Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	var data = qgrid.NewLocalMap[int, string]()
	data.Put(1, "David")
	var m = qquery.NewMap[int, string](data)

	var registry = Registry[int, string]{
		"name": func(m *qquery.Map[int, string], ordered bool) (err error) {
			var extractor = qextract.NewValueExtractor[int, string, string]("name", func(v string) (string, error) { return v, nil })
			return qquery.AddIndex[int, string, string](m, extractor, ordered, nil)
		},
	}

	var ok bool
	if ok, err = ApplyForCache(m, parsed, "accounts", registry); err != nil {
		t.Fatalf("ApplyForCache: %v", err)
	}
	if !ok {
		t.Fatal("expected a mapping to be found for \"accounts\"")
	}
}

func TestApplyRejectsUnregisteredTag(t *testing.T) {
	var mapping = CacheMapping{Name: "accounts", Indexes: []IndexSpec{{Tag: "missing"}}}
	var data = qgrid.NewLocalMap[int, string]()
	var m = qquery.NewMap[int, string](data)

	if err := Apply(m, mapping, Registry[int, string]{}); err == nil {
		t.Fatal("expected an error for an unregistered extractor tag")
	}
}
