/*
© 2026–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package qset

// RetainAll mutates s in place, keeping only members also present in
// other — the Equals/In index path's "intersect with keys" operation.
// It never adds members.
func (s *Set[K]) RetainAll(other *Set[K]) {
	for key := range s.m {
		if !other.Contains(key) {
			delete(s.m, key)
		}
	}
}

// RemoveAll mutates s in place, discarding every member also present in
// other — the NotEquals index path's "subtract inverse[v] from keys".
func (s *Set[K]) RemoveAll(other *Set[K]) {
	other.Range(func(key K) (keepGoing bool) {
		delete(s.m, key)
		return true
	})
}

// RetainFunc mutates s in place, keeping only members for which keep
// returns true.
func (s *Set[K]) RetainFunc(keep func(key K) bool) {
	for key := range s.m {
		if !keep(key) {
			delete(s.m, key)
		}
	}
}

// Union returns a new Set containing every member of sets, deduplicated.
func Union[K comparable](sets ...*Set[K]) (union *Set[K]) {
	var n int
	for _, set := range sets {
		n += set.Len()
	}
	union = New[K](n)
	for _, set := range sets {
		set.Range(func(key K) (keepGoing bool) {
			union.Add(key)
			return true
		})
	}
	return
}

// Intersect returns a new Set containing members present in every
// element of sets. Intersect of zero sets is empty.
func Intersect[K comparable](sets ...*Set[K]) (intersection *Set[K]) {
	intersection = New[K]()
	if len(sets) == 0 {
		return
	}
	sets[0].Range(func(key K) (keepGoing bool) {
		intersection.Add(key)
		return true
	})
	for _, set := range sets[1:] {
		intersection.RetainAll(set)
	}
	return
}
