/*
© 2026–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

// Package qerrors defines the error kinds raised by the query and
// indexing core: invalid configuration, unsupported operations,
// incomparable or null comparator arguments, extraction failures
// absorbed during index maintenance, and type mismatches encountered
// while attempting an index-aware evaluation path.
package qerrors

import "errors"

// sentinel error kinds — test with errors.Is
var (
	// ErrInvalidArgument: misconfigured filter, extractor or index —
	// nil extractor, duplicate index registration, invalid wildcard
	// escape, non-positive page size, limit-of-limit.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotSupported: operation disallowed by the entry or filter kind —
	// Remove on a snapshot entry, binary encoding of a filter kind that
	// has no shape (such as Key).
	ErrNotSupported = errors.New("not supported")
	// ErrIncomparable: a Comparator was given arguments of mismatched
	// or unorderable type.
	ErrIncomparable = errors.New("incomparable")
	// ErrNullArgument: a Comparator was given a nil argument.
	ErrNullArgument = errors.New("null argument")
	// ErrExtractionFailed: an Extractor raised during index maintenance.
	// Recovered locally by the index: the key moves to the excluded set.
	ErrExtractionFailed = errors.New("extraction failed")
	// ErrTypeMismatch: a cast failure while consulting index contents
	// during ApplyIndex; causes that filter to fall back to
	// entry-by-entry evaluation.
	ErrTypeMismatch = errors.New("type mismatch")
)
