/*
© 2022–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package perrors

import "fmt"

// nilPanic panics if ptr is nil
//   - label is the argument name used in the panic message
//   - used to guard pointer arguments in deferrable functions where
//     a nil pointer would otherwise cause a less helpful panic downstream
func nilPanic(label string, ptr *error) {
	if ptr == nil {
		panic(fmt.Errorf("%s cannot be nil", label))
	}
}
