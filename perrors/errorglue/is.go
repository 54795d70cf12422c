/*
© 2024–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package errorglue

import "fmt"

// IsPlusFlag determines if fmt.State has the '+' flag
func IsPlusFlag(s fmt.State) (is bool) { return s.Flag('+') }

// IsMinusFlag determines if fmt.State has the '-' flag
func IsMinusFlag(s fmt.State) (is bool) { return s.Flag('-') }
