/*
© 2026–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package qgrid

import "testing"

func TestLocalMapPutGetRemove(t *testing.T) {
	var m = NewLocalMap[int, string]()
	var events = m.Events()

	m.Put(1, "David")
	var v, ok = m.Get(1)
	if !ok || v != "David" {
		t.Fatalf("Get(1) = %q, %v", v, ok)
	}
	if !m.ContainsKey(1) {
		t.Error("ContainsKey(1) must be true after Put")
	}

	m.Put(1, "Mark")
	m.Remove(1)
	if m.ContainsKey(1) {
		t.Error("ContainsKey(1) must be false after Remove")
	}

	var gotTypes []EventType
	for i := 0; i < 3; i++ {
		gotTypes = append(gotTypes, (<-events).Type)
	}
	var want = []EventType{EventInsert, EventUpdate, EventRemove}
	for i, w := range want {
		if gotTypes[i] != w {
			t.Errorf("event %d = %v, want %v", i, gotTypes[i], w)
		}
	}
}

func TestLocalMapIDIsUniquePerInstance(t *testing.T) {
	var a = NewLocalMap[int, string]()
	var b = NewLocalMap[int, string]()
	if a.ID() == b.ID() {
		t.Fatal("two distinct LocalMap instances must not share an ID")
	}
}

func TestLocalMapKeysAndEntrySet(t *testing.T) {
	var m = NewLocalMap[int, string]()
	m.Put(1, "David")
	m.Put(2, "Mark")

	if len(m.Keys()) != 2 {
		t.Errorf("Keys: want 2, got %d", len(m.Keys()))
	}
	if len(m.EntrySet()) != 2 {
		t.Errorf("EntrySet: want 2, got %d", len(m.EntrySet()))
	}
}

func TestWithSubjectScopesAndRestores(t *testing.T) {
	if _, ok := CurrentSubject(); ok {
		t.Fatal("CurrentSubject must be unset before any WithSubject span")
	}

	WithSubject("alice", func() {
		var s, ok = CurrentSubject()
		if !ok || s != "alice" {
			t.Errorf("CurrentSubject inside span = %v, %v", s, ok)
		}
		WithSubject("bob", func() {
			var s2, ok2 = CurrentSubject()
			if !ok2 || s2 != "bob" {
				t.Errorf("nested CurrentSubject = %v, %v", s2, ok2)
			}
		})
		var s3, ok3 = CurrentSubject()
		if !ok3 || s3 != "alice" {
			t.Errorf("CurrentSubject after nested span must restore to alice, got %v, %v", s3, ok3)
		}
	})

	if _, ok := CurrentSubject(); ok {
		t.Error("CurrentSubject must be unset after the outer span exits")
	}
	if !EverAuthenticated() {
		t.Error("EverAuthenticated must be true once any WithSubject span has run")
	}
}
