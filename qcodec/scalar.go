/*
© 2026–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package qcodec

import (
	"encoding/binary"
	"math"

	"github.com/haraldrudell/gridquery/qerrors"
)

// EncodeString returns s as raw UTF-8 bytes.
func EncodeString(s string) (data []byte) { return []byte(s) }

// DecodeString is the inverse of EncodeString.
func DecodeString(data []byte) (s string, err error) { return string(data), nil }

// EncodeInt64 encodes v as 8 bytes, big-endian.
func EncodeInt64(v int64) (data []byte) {
	data = make([]byte, 8)
	binary.BigEndian.PutUint64(data, uint64(v))
	return
}

// DecodeInt64 is the inverse of EncodeInt64.
func DecodeInt64(data []byte) (v int64, err error) {
	if len(data) != 8 {
		return 0, qerrors.TypeMismatch("qcodec: DecodeInt64: want 8 bytes, got %d", len(data))
	}
	return int64(binary.BigEndian.Uint64(data)), nil
}

// EncodeFloat64 encodes v as its IEEE-754 bit pattern, big-endian.
func EncodeFloat64(v float64) (data []byte) {
	data = make([]byte, 8)
	binary.BigEndian.PutUint64(data, math.Float64bits(v))
	return
}

// DecodeFloat64 is the inverse of EncodeFloat64.
func DecodeFloat64(data []byte) (v float64, err error) {
	if len(data) != 8 {
		return 0, qerrors.TypeMismatch("qcodec: DecodeFloat64: want 8 bytes, got %d", len(data))
	}
	return math.Float64frombits(binary.BigEndian.Uint64(data)), nil
}

// EncodeBool encodes v as a single byte.
func EncodeBool(v bool) (data []byte) {
	if v {
		return []byte{1}
	}
	return []byte{0}
}

// DecodeBool is the inverse of EncodeBool.
func DecodeBool(data []byte) (v bool, err error) {
	if len(data) != 1 {
		return false, qerrors.TypeMismatch("qcodec: DecodeBool: want 1 byte, got %d", len(data))
	}
	return data[0] != 0, nil
}

// EncodeScalar dispatches on v's dynamic type — the scalar attribute
// types filter leaves carry: string, integral, floating, boolean.
func EncodeScalar(v any) (data []byte, err error) {
	switch x := v.(type) {
	case string:
		return EncodeString(x), nil
	case int:
		return EncodeInt64(int64(x)), nil
	case int64:
		return EncodeInt64(x), nil
	case float64:
		return EncodeFloat64(x), nil
	case bool:
		return EncodeBool(x), nil
	default:
		return nil, qerrors.TypeMismatch("qcodec: unsupported scalar field type %T", v)
	}
}

// DecodeScalar decodes data into X, dispatching on X's own zero value
// to pick the right fixed-width decoder — the same "switch on the
// boxed zero value's dynamic type" idiom used since Go generics have
// no runtime type-parameter switch.
func DecodeScalar[X any](data []byte) (x X, err error) {
	switch any(x).(type) {
	case string:
		var s string
		s, err = DecodeString(data)
		x, _ = any(s).(X)
	case int:
		var v int64
		if v, err = DecodeInt64(data); err == nil {
			x, _ = any(int(v)).(X)
		}
	case int64:
		var v int64
		v, err = DecodeInt64(data)
		x, _ = any(v).(X)
	case float64:
		var v float64
		v, err = DecodeFloat64(data)
		x, _ = any(v).(X)
	case bool:
		var v bool
		v, err = DecodeBool(data)
		x, _ = any(v).(X)
	default:
		err = qerrors.TypeMismatch("qcodec: unsupported scalar field type %T", x)
	}
	return
}
