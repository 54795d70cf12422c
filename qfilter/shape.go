/*
© 2026–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

// Every filter has a stable numeric type-id and a binary shape
// {type-id, fields…}; qcodec defines the envelope and scalar codecs,
// this file teaches each filter leaf and combinator how to project
// itself into one. Reconstructing a filter from a decoded Shape
// additionally needs an extractor, looked up by Shape.Tag — an
// external collaborator's responsibility, so the FromShape functions
// below take it as a parameter rather than resolving it themselves.
package qfilter

import (
	"github.com/haraldrudell/gridquery/qcodec"
	"github.com/haraldrudell/gridquery/qcompare"
	"github.com/haraldrudell/gridquery/qerrors"
)

// shaper is implemented by every filter in this package that has a
// binary shape. Declared locally so toShape can dispatch across
// heterogeneous Filter[K,V] values without each filter type needing
// to declare it explicitly.
type shaper interface {
	ToShape() (shape qcodec.Shape, err error)
}

// toShape type-asserts f to shaper and projects it, failing with
// NotSupported for any Filter implementation outside this package
// that hasn't implemented ToShape.
func toShape[K comparable, V any](f Filter[K, V]) (shape qcodec.Shape, err error) {
	var s, ok = f.(shaper)
	if !ok {
		err = qerrors.NotSupported("qfilter: %T has no binary shape", f)
		return
	}
	return s.ToShape()
}

func (f *Equals[K, V, X]) ToShape() (shape qcodec.Shape, err error) {
	var scalar []byte
	if scalar, err = qcodec.EncodeScalar(any(f.Value)); err != nil {
		return
	}
	return qcodec.Shape{Type: qcodec.TypeEquals, Tag: f.Extractor.Tag(), Scalars: [][]byte{scalar}}, nil
}

// FromEqualsShape reconstructs an Equals filter from shape using
// extractor, supplied by the caller since a Shape alone carries only
// extractor.Tag(), not a live extractor.
func FromEqualsShape[K comparable, V any, X comparable](shape qcodec.Shape, extractor TaggedExtractor[K, V, X]) (f *Equals[K, V, X], err error) {
	if shape.Type != qcodec.TypeEquals || len(shape.Scalars) != 1 {
		return nil, qerrors.TypeMismatch("qfilter: shape is not an Equals shape")
	}
	var value X
	if value, err = qcodec.DecodeScalar[X](shape.Scalars[0]); err != nil {
		return
	}
	return NewEquals(extractor, value), nil
}

func (f *NotEquals[K, V, X]) ToShape() (shape qcodec.Shape, err error) {
	var scalar []byte
	if scalar, err = qcodec.EncodeScalar(any(f.Value)); err != nil {
		return
	}
	return qcodec.Shape{Type: qcodec.TypeNotEquals, Tag: f.Extractor.Tag(), Scalars: [][]byte{scalar}}, nil
}

func FromNotEqualsShape[K comparable, V any, X comparable](shape qcodec.Shape, extractor TaggedExtractor[K, V, X]) (f *NotEquals[K, V, X], err error) {
	if shape.Type != qcodec.TypeNotEquals || len(shape.Scalars) != 1 {
		return nil, qerrors.TypeMismatch("qfilter: shape is not a NotEquals shape")
	}
	var value X
	if value, err = qcodec.DecodeScalar[X](shape.Scalars[0]); err != nil {
		return
	}
	return NewNotEquals(extractor, value), nil
}

func (f *rangeFilter[K, V, X]) ToShape() (shape qcodec.Shape, err error) {
	var scalar []byte
	if scalar, err = qcodec.EncodeScalar(any(f.value)); err != nil {
		return
	}
	var t qcodec.TypeID
	switch f.op {
	case opGreater:
		t = qcodec.TypeGreater
	case opGreaterEquals:
		t = qcodec.TypeGreaterEquals
	case opLess:
		t = qcodec.TypeLess
	default:
		t = qcodec.TypeLessEquals
	}
	return qcodec.Shape{Type: t, Tag: f.extractor.Tag(), Scalars: [][]byte{scalar}}, nil
}

// FromRangeShape reconstructs whichever of Greater/GreaterEquals/
// Less/LessEquals shape.Type names.
func FromRangeShape[K comparable, V any, X comparable](shape qcodec.Shape, extractor TaggedExtractor[K, V, X], cmp qcompare.Comparator[X]) (f Filter[K, V], err error) {
	if len(shape.Scalars) != 1 {
		return nil, qerrors.TypeMismatch("qfilter: shape is not a range-filter shape")
	}
	var value X
	if value, err = qcodec.DecodeScalar[X](shape.Scalars[0]); err != nil {
		return
	}
	switch shape.Type {
	case qcodec.TypeGreater:
		return NewGreater(extractor, value, cmp), nil
	case qcodec.TypeGreaterEquals:
		return NewGreaterEquals(extractor, value, cmp), nil
	case qcodec.TypeLess:
		return NewLess(extractor, value, cmp), nil
	case qcodec.TypeLessEquals:
		return NewLessEquals(extractor, value, cmp), nil
	default:
		return nil, qerrors.TypeMismatch("qfilter: shape type %v is not a range filter", shape.Type)
	}
}

func (f *Between[K, V, X]) ToShape() (shape qcodec.Shape, err error) {
	var loBytes, hiBytes []byte
	if loBytes, err = qcodec.EncodeScalar(any(f.lo)); err != nil {
		return
	}
	if hiBytes, err = qcodec.EncodeScalar(any(f.hi)); err != nil {
		return
	}
	return qcodec.Shape{
		Type: qcodec.TypeBetween,
		Tag:  f.extractor.Tag(),
		Scalars: [][]byte{
			loBytes, hiBytes,
			qcodec.EncodeBool(f.loInclusive), qcodec.EncodeBool(f.hiInclusive),
		},
	}, nil
}

func FromBetweenShape[K comparable, V any, X comparable](shape qcodec.Shape, extractor TaggedExtractor[K, V, X], cmp qcompare.Comparator[X]) (f *Between[K, V, X], err error) {
	if shape.Type != qcodec.TypeBetween || len(shape.Scalars) != 4 {
		return nil, qerrors.TypeMismatch("qfilter: shape is not a Between shape")
	}
	var lo, hi X
	if lo, err = qcodec.DecodeScalar[X](shape.Scalars[0]); err != nil {
		return
	}
	if hi, err = qcodec.DecodeScalar[X](shape.Scalars[1]); err != nil {
		return
	}
	var loInclusive, hiInclusive bool
	if loInclusive, err = qcodec.DecodeBool(shape.Scalars[2]); err != nil {
		return
	}
	if hiInclusive, err = qcodec.DecodeBool(shape.Scalars[3]); err != nil {
		return
	}
	return NewBetween(extractor, lo, hi, loInclusive, hiInclusive, cmp), nil
}

func (f *In[K, V, X]) ToShape() (shape qcodec.Shape, err error) {
	var scalars = make([][]byte, 0, len(f.Values))
	for v := range f.Values {
		var b []byte
		if b, err = qcodec.EncodeScalar(any(v)); err != nil {
			return
		}
		scalars = append(scalars, b)
	}
	return qcodec.Shape{Type: qcodec.TypeIn, Tag: f.Extractor.Tag(), Scalars: scalars}, nil
}

func FromInShape[K comparable, V any, X comparable](shape qcodec.Shape, extractor TaggedExtractor[K, V, X]) (f *In[K, V, X], err error) {
	if shape.Type != qcodec.TypeIn {
		return nil, qerrors.TypeMismatch("qfilter: shape is not an In shape")
	}
	var values = make([]X, len(shape.Scalars))
	for i, scalar := range shape.Scalars {
		if values[i], err = qcodec.DecodeScalar[X](scalar); err != nil {
			return
		}
	}
	return NewIn(extractor, values...), nil
}

func (f *Contains[K, V, X]) ToShape() (shape qcodec.Shape, err error) {
	var scalar []byte
	if scalar, err = qcodec.EncodeScalar(any(f.Value)); err != nil {
		return
	}
	return qcodec.Shape{Type: qcodec.TypeContains, Tag: f.Extractor.Tag(), Scalars: [][]byte{scalar}}, nil
}

func (f *ContainsAll[K, V, X]) ToShape() (shape qcodec.Shape, err error) {
	var scalars = make([][]byte, len(f.Values))
	for i, v := range f.Values {
		if scalars[i], err = qcodec.EncodeScalar(any(v)); err != nil {
			return
		}
	}
	return qcodec.Shape{Type: qcodec.TypeContainsAll, Tag: f.Extractor.Tag(), Scalars: scalars}, nil
}

func (f *ContainsAny[K, V, X]) ToShape() (shape qcodec.Shape, err error) {
	var scalars = make([][]byte, len(f.Values))
	for i, v := range f.Values {
		if scalars[i], err = qcodec.EncodeScalar(any(v)); err != nil {
			return
		}
	}
	return qcodec.Shape{Type: qcodec.TypeContainsAny, Tag: f.Extractor.Tag(), Scalars: scalars}, nil
}

func (f *Like[K, V]) ToShape() (shape qcodec.Shape, err error) {
	return qcodec.Shape{
		Type: qcodec.TypeLike,
		Tag:  f.Extractor.Tag(),
		Scalars: [][]byte{
			qcodec.EncodeString(f.Pattern),
			qcodec.EncodeInt64(int64(f.Escape)),
			qcodec.EncodeBool(f.HasEscape),
			qcodec.EncodeBool(f.IgnoreCase),
		},
	}, nil
}

func FromLikeShape[K comparable, V any](shape qcodec.Shape, extractor TaggedExtractor[K, V, string]) (f *Like[K, V], err error) {
	if shape.Type != qcodec.TypeLike || len(shape.Scalars) != 4 {
		return nil, qerrors.TypeMismatch("qfilter: shape is not a Like shape")
	}
	var pattern string
	if pattern, err = qcodec.DecodeString(shape.Scalars[0]); err != nil {
		return
	}
	var escape int64
	if escape, err = qcodec.DecodeInt64(shape.Scalars[1]); err != nil {
		return
	}
	var hasEscape, ignoreCase bool
	if hasEscape, err = qcodec.DecodeBool(shape.Scalars[2]); err != nil {
		return
	}
	if ignoreCase, err = qcodec.DecodeBool(shape.Scalars[3]); err != nil {
		return
	}
	return NewLike(extractor, pattern, rune(escape), hasEscape, ignoreCase)
}

// ToShape fails: Key is an internal helper combinators build on the
// fly and is never sent over the wire.
func (f *Key[K, V]) ToShape() (shape qcodec.Shape, err error) {
	err = qerrors.NotSupported("qfilter: Key filters are internal and not serializable")
	return
}

func (f *InKeySet[K, V]) ToShape() (shape qcodec.Shape, err error) {
	var scalars [][]byte
	for _, k := range f.Keys.Keys() {
		var b []byte
		if b, err = qcodec.EncodeScalar(any(k)); err != nil {
			return
		}
		scalars = append(scalars, b)
	}
	var inner qcodec.Shape
	if inner, err = toShape[K, V](f.Inner); err != nil {
		return
	}
	return qcodec.Shape{Type: qcodec.TypeInKeySet, Scalars: scalars, Children: []qcodec.Shape{inner}}, nil
}

func (f *All[K, V]) ToShape() (shape qcodec.Shape, err error) {
	var children = make([]qcodec.Shape, len(f.Filters))
	for i, child := range f.Filters {
		if children[i], err = toShape[K, V](child); err != nil {
			return
		}
	}
	return qcodec.Shape{Type: qcodec.TypeAll, Children: children}, nil
}

func (f *Any[K, V]) ToShape() (shape qcodec.Shape, err error) {
	var children = make([]qcodec.Shape, len(f.Filters))
	for i, child := range f.Filters {
		if children[i], err = toShape[K, V](child); err != nil {
			return
		}
	}
	return qcodec.Shape{Type: qcodec.TypeAny, Children: children}, nil
}

// FromCombinatorShape reconstructs an All or Any from shape given its
// already-decoded children — decoding each child's own Shape into a
// live Filter requires knowing that child's extracted type X, which
// only the caller assembling the tree has.
func FromCombinatorShape[K comparable, V any](shape qcodec.Shape, children []Filter[K, V]) (f Filter[K, V], err error) {
	switch shape.Type {
	case qcodec.TypeAll:
		return NewAll(children...), nil
	case qcodec.TypeAny:
		return NewAny(children...), nil
	default:
		return nil, qerrors.TypeMismatch("qfilter: shape type %v is not All or Any", shape.Type)
	}
}

func (f *Not[K, V]) ToShape() (shape qcodec.Shape, err error) {
	var inner qcodec.Shape
	if inner, err = toShape[K, V](f.Inner); err != nil {
		return
	}
	return qcodec.Shape{Type: qcodec.TypeNot, Children: []qcodec.Shape{inner}}, nil
}

func FromNotShape[K comparable, V any](shape qcodec.Shape, inner Filter[K, V]) (f *Not[K, V], err error) {
	if shape.Type != qcodec.TypeNot {
		return nil, qerrors.TypeMismatch("qfilter: shape is not a Not shape")
	}
	return NewNot(inner), nil
}

func (f *Xor[K, V]) ToShape() (shape qcodec.Shape, err error) {
	var l, r qcodec.Shape
	if l, err = toShape[K, V](f.L); err != nil {
		return
	}
	if r, err = toShape[K, V](f.R); err != nil {
		return
	}
	return qcodec.Shape{Type: qcodec.TypeXor, Children: []qcodec.Shape{l, r}}, nil
}

func FromXorShape[K comparable, V any](shape qcodec.Shape, l, r Filter[K, V]) (f *Xor[K, V], err error) {
	if shape.Type != qcodec.TypeXor {
		return nil, qerrors.TypeMismatch("qfilter: shape is not a Xor shape")
	}
	return NewXor(l, r), nil
}

func (f *Limit[K, V]) ToShape() (shape qcodec.Shape, err error) {
	var inner qcodec.Shape
	if inner, err = toShape[K, V](f.Inner); err != nil {
		return
	}
	return qcodec.Shape{
		Type:     qcodec.TypeLimit,
		Scalars:  [][]byte{qcodec.EncodeInt64(int64(f.PageSize)), qcodec.EncodeInt64(int64(f.Page))},
		Children: []qcodec.Shape{inner},
	}, nil
}

func FromLimitShape[K comparable, V any](shape qcodec.Shape, inner Filter[K, V]) (f *Limit[K, V], err error) {
	if shape.Type != qcodec.TypeLimit || len(shape.Scalars) != 2 {
		return nil, qerrors.TypeMismatch("qfilter: shape is not a Limit shape")
	}
	var pageSize int64
	if pageSize, err = qcodec.DecodeInt64(shape.Scalars[0]); err != nil {
		return
	}
	var page int64
	if page, err = qcodec.DecodeInt64(shape.Scalars[1]); err != nil {
		return
	}
	if f, err = NewLimit(inner, int(pageSize)); err != nil {
		return
	}
	f.SetPage(int(page))
	return
}

var (
	_ shaper = (*Equals[int, int, int])(nil)
	_ shaper = (*NotEquals[int, int, int])(nil)
	_ shaper = (*rangeFilter[int, int, int])(nil)
	_ shaper = (*Between[int, int, int])(nil)
	_ shaper = (*In[int, int, int])(nil)
	_ shaper = (*Contains[int, int, int])(nil)
	_ shaper = (*ContainsAll[int, int, int])(nil)
	_ shaper = (*ContainsAny[int, int, int])(nil)
	_ shaper = (*Like[int, int])(nil)
	_ shaper = (*Key[int, int])(nil)
	_ shaper = (*InKeySet[int, int])(nil)
	_ shaper = (*All[int, int])(nil)
	_ shaper = (*Any[int, int])(nil)
	_ shaper = (*Not[int, int])(nil)
	_ shaper = (*Xor[int, int])(nil)
	_ shaper = (*Limit[int, int])(nil)
)
