/*
© 2026–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

// Package qcompare provides the total/partial order used to sort and
// range-query extracted values.
package qcompare

import (
	"reflect"

	"github.com/haraldrudell/gridquery/qerrors"
	"golang.org/x/exp/constraints"
)

// Comparator defines an order over a subset of extractable values of
// type T.
//   - antisymmetric, transitive, consistent with equality where both are
//     defined
//   - fails with [qerrors.ErrNullArgument] when either argument is the
//     type's zero value and the implementation treats zero as "no value"
//     (callers that need to compare actual zero values should not use a
//     Comparator that rejects them)
//   - fails with [qerrors.ErrIncomparable] when the arguments cannot be
//     ordered by this Comparator
type Comparator[T any] func(a, b T) (result int, err error)

// Natural returns a Comparator using T's natural ordering.
func Natural[T constraints.Ordered]() (cmp Comparator[T]) {
	return func(a, b T) (result int, err error) {
		switch {
		case a < b:
			return -1, nil
		case a > b:
			return 1, nil
		default:
			return 0, nil
		}
	}
}

// Resolve returns cmp if non-nil, else a Comparator built on T's
// natural ordering. Index and filter construction use this so that an
// absent Comparator falls back to the natural ordering of the
// extracted type.
//
// Unlike Natural, Resolve is only constrained to comparable: the
// ordered-or-not distinction for an index or range filter is a
// runtime Config.Ordered flag, not a separate type, so the generic
// code building orderedInverseIndex / rangeFilter / Between is itself
// only ever constrained to comparable and cannot call a
// constraints.Ordered-bound helper directly. The fallback dispatches
// on T's underlying reflect.Kind to cover every type
// constraints.Ordered does, and fails with Incomparable at the first
// comparison for any other comparable T — such a type must supply its
// own Comparator instead of relying on this fallback.
func Resolve[T comparable](cmp Comparator[T]) (resolved Comparator[T]) {
	if cmp != nil {
		return cmp
	}
	return reflectNatural[T]()
}

// reflectNatural compares two values of a comparable type by
// reflecting to their underlying numeric or string kind.
func reflectNatural[T comparable]() (cmp Comparator[T]) {
	return func(a, b T) (result int, err error) {
		var va, vb = reflect.ValueOf(a), reflect.ValueOf(b)
		switch va.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return compareOrdered(va.Int(), vb.Int()), nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return compareOrdered(va.Uint(), vb.Uint()), nil
		case reflect.Float32, reflect.Float64:
			return compareOrdered(va.Float(), vb.Float()), nil
		case reflect.String:
			return compareOrdered(va.String(), vb.String()), nil
		default:
			return 0, qerrors.Incomparable("qcompare: type %T has no natural ordering; supply an explicit Comparator", a)
		}
	}
}

func compareOrdered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Reverse returns a Comparator with the order of cmp inverted.
func Reverse[T any](cmp Comparator[T]) (reversed Comparator[T]) {
	return func(a, b T) (result int, err error) {
		result, err = cmp(a, b)
		if err != nil {
			return 0, err
		}
		return -result, nil
	}
}

// NullArgument is the error a Comparator implementation should return
// when given a sentinel "no value" argument it does not support.
func NullArgument(format string, a ...any) (err error) {
	return qerrors.NullArgument(format, a...)
}

// Incomparable is the error a Comparator implementation should return
// when its arguments are not both comparable under this order.
func Incomparable(format string, a ...any) (err error) {
	return qerrors.Incomparable(format, a...)
}
