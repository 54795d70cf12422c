/*
© 2026–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package qextract

// Identity returns an extractor whose Extract returns its argument
// unchanged.
func Identity[K comparable, V any]() (extractor *Func[K, V, V]) {
	return NewValueExtractor[K, V, V]("identity", func(value V) (V, error) {
		return value, nil
	})
}
