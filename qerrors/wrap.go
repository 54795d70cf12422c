/*
© 2026–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package qerrors

import "github.com/haraldrudell/gridquery/perrors"

// InvalidArgument wraps [ErrInvalidArgument] with a stack trace and message
func InvalidArgument(format string, a ...any) (err error) {
	return perrors.ErrorfPF(format+": %w", append(a, ErrInvalidArgument)...)
}

// NotSupported wraps [ErrNotSupported] with a stack trace and message
func NotSupported(format string, a ...any) (err error) {
	return perrors.ErrorfPF(format+": %w", append(a, ErrNotSupported)...)
}

// Incomparable wraps [ErrIncomparable] with a stack trace and message
func Incomparable(format string, a ...any) (err error) {
	return perrors.ErrorfPF(format+": %w", append(a, ErrIncomparable)...)
}

// NullArgument wraps [ErrNullArgument] with a stack trace and message
func NullArgument(format string, a ...any) (err error) {
	return perrors.ErrorfPF(format+": %w", append(a, ErrNullArgument)...)
}

// ExtractionFailed wraps [ErrExtractionFailed] with a stack trace and message
func ExtractionFailed(format string, a ...any) (err error) {
	return perrors.ErrorfPF(format+": %w", append(a, ErrExtractionFailed)...)
}

// TypeMismatch wraps [ErrTypeMismatch] with a stack trace and message
func TypeMismatch(format string, a ...any) (err error) {
	return perrors.ErrorfPF(format+": %w", append(a, ErrTypeMismatch)...)
}
