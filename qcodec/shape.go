/*
© 2026–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package qcodec

import (
	"bytes"
	"encoding/binary"

	"github.com/haraldrudell/gridquery/qerrors"
)

// Shape is the {type-id, fields…} binary envelope. Tag
// identifies the extractor a leaf filter was built from (empty for
// combinators, which carry no extractor of their own); Scalars holds
// the filter's own opaque scalar arguments (e.g. Equals.Value);
// Children holds the recursively-encoded shapes of any nested
// filters (e.g. All.Filters, Not.Inner).
//
// Shape only defines the wire layout. Reconstructing a live filter
// from a decoded Shape additionally requires an extractor — looked up
// by Tag — which is an external collaborator's responsibility, not
// this package's.
type Shape struct {
	Type     TypeID
	Tag      string
	Scalars  [][]byte
	Children []Shape
}

func writeUvarint(buf *bytes.Buffer, v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	var n = binary.PutUvarint(tmp[:], v)
	buf.Write(tmp[:n])
}

func writeBytes(buf *bytes.Buffer, b []byte) {
	writeUvarint(buf, uint64(len(b)))
	buf.Write(b)
}

// MarshalBinary encodes the shape as: type-id (uvarint), tag
// (length-prefixed), scalar count + each length-prefixed scalar, child
// count + each length-prefixed child encoding (recursive).
func (s Shape) MarshalBinary() (data []byte, err error) {
	var buf bytes.Buffer
	writeUvarint(&buf, uint64(s.Type))
	writeBytes(&buf, []byte(s.Tag))

	writeUvarint(&buf, uint64(len(s.Scalars)))
	for _, scalar := range s.Scalars {
		writeBytes(&buf, scalar)
	}

	writeUvarint(&buf, uint64(len(s.Children)))
	for _, child := range s.Children {
		var encoded, childErr = child.MarshalBinary()
		if childErr != nil {
			return nil, childErr
		}
		writeBytes(&buf, encoded)
	}
	return buf.Bytes(), nil
}

type byteReader struct {
	data []byte
	pos  int
}

func (r *byteReader) uvarint() (v uint64, err error) {
	var n int
	v, n = binary.Uvarint(r.data[r.pos:])
	if n <= 0 {
		err = qerrors.InvalidArgument("qcodec: truncated varint at offset %d", r.pos)
		return
	}
	r.pos += n
	return
}

func (r *byteReader) bytes() (b []byte, err error) {
	var n uint64
	if n, err = r.uvarint(); err != nil {
		return
	}
	if r.pos+int(n) > len(r.data) {
		err = qerrors.InvalidArgument("qcodec: truncated field at offset %d, want %d bytes", r.pos, n)
		return
	}
	b = r.data[r.pos : r.pos+int(n)]
	r.pos += int(n)
	return
}

// UnmarshalBinary decodes data into s, the inverse of MarshalBinary.
func (s *Shape) UnmarshalBinary(data []byte) (err error) {
	var r = &byteReader{data: data}

	var typeVal uint64
	if typeVal, err = r.uvarint(); err != nil {
		return
	}
	s.Type = TypeID(typeVal)

	var tagBytes []byte
	if tagBytes, err = r.bytes(); err != nil {
		return
	}
	s.Tag = string(tagBytes)

	var numScalars uint64
	if numScalars, err = r.uvarint(); err != nil {
		return
	}
	s.Scalars = make([][]byte, numScalars)
	for i := range s.Scalars {
		if s.Scalars[i], err = r.bytes(); err != nil {
			return
		}
	}

	var numChildren uint64
	if numChildren, err = r.uvarint(); err != nil {
		return
	}
	s.Children = make([]Shape, numChildren)
	for i := range s.Children {
		var encoded []byte
		if encoded, err = r.bytes(); err != nil {
			return
		}
		if err = s.Children[i].UnmarshalBinary(encoded); err != nil {
			return
		}
	}
	return nil
}
