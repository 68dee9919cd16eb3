// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tiffmeta

import (
	"encoding/binary"
	"math"
)

// tiffBuilder creates TIFF structures for testing.
// Values larger than 4 bytes and sub-IFDs are laid out after the IFD they belong to,
// all on word boundaries.
type tiffBuilder struct {
	order binary.ByteOrder
	ifds  []*testIFD

	// Overrides.
	version uint16
	first   *uint32
}

type testIFD struct {
	entries []testEntry

	// If set, written as the next pointer instead of the chain offset.
	next *uint32
}

type testEntry struct {
	id    uint16
	typ   Type
	count uint32

	// Encoded value.
	data []byte

	// If set, the entry points to this IFD.
	sub *testIFD

	// If set, written verbatim to the value field.
	raw *[4]byte
}

func newTIFFBuilder(order binary.ByteOrder) *tiffBuilder {
	return &tiffBuilder{order: order}
}

func (b *tiffBuilder) addIFD(entries ...testEntry) *tiffBuilder {
	b.ifds = append(b.ifds, &testIFD{entries: entries})
	return b
}

func (b *tiffBuilder) bytes() []byte {
	buf := make([]byte, 8)
	if b.order == binary.BigEndian {
		copy(buf, "MM")
	} else {
		copy(buf, "II")
	}
	version := b.version
	if version == 0 {
		version = tiffVersion
	}
	b.order.PutUint16(buf[2:], version)

	nextFieldPos := 4
	for _, ifd := range b.ifds {
		off := b.appendIFD(&buf, ifd)
		if nextFieldPos >= 0 {
			b.order.PutUint32(buf[nextFieldPos:], off)
		}
		nextFieldPos = int(off) + 2 + entrySize*len(ifd.entries)
		if ifd.next != nil {
			nextFieldPos = -1
		}
	}

	if b.first != nil {
		b.order.PutUint32(buf[4:], *b.first)
	}

	return buf
}

func (b *tiffBuilder) appendIFD(buf *[]byte, ifd *testIFD) uint32 {
	b.pad(buf)
	off := len(*buf)
	*buf = append(*buf, make([]byte, 2+entrySize*len(ifd.entries)+4)...)
	b.order.PutUint16((*buf)[off:], uint16(len(ifd.entries)))

	for i, e := range ifd.entries {
		pos := off + 2 + entrySize*i
		b.order.PutUint16((*buf)[pos:], e.id)
		b.order.PutUint16((*buf)[pos+2:], uint16(e.typ))
		b.order.PutUint32((*buf)[pos+4:], e.count)
		switch {
		case e.sub != nil:
			subOff := b.appendIFD(buf, e.sub)
			b.order.PutUint32((*buf)[pos+8:], subOff)
		case e.raw != nil:
			copy((*buf)[pos+8:pos+12], e.raw[:])
		case len(e.data) <= 4:
			copy((*buf)[pos+8:pos+12], e.data)
		default:
			b.pad(buf)
			dataOff := len(*buf)
			*buf = append(*buf, e.data...)
			b.order.PutUint32((*buf)[pos+8:], uint32(dataOff))
		}
	}

	if ifd.next != nil {
		b.order.PutUint32((*buf)[off+2+entrySize*len(ifd.entries):], *ifd.next)
	}

	return uint32(off)
}

func (b *tiffBuilder) pad(buf *[]byte) {
	if len(*buf)%2 != 0 {
		*buf = append(*buf, 0)
	}
}

func (b *tiffBuilder) bytesEntry(id uint16, typ Type, vals ...uint8) testEntry {
	return testEntry{id: id, typ: typ, count: uint32(len(vals)), data: vals}
}

func (b *tiffBuilder) ascii(id uint16, s string) testEntry {
	data := append([]byte(s), 0)
	return testEntry{id: id, typ: TypeASCII, count: uint32(len(data)), data: data}
}

func (b *tiffBuilder) sbytes(id uint16, vals ...int8) testEntry {
	data := make([]byte, len(vals))
	for i, v := range vals {
		data[i] = uint8(v)
	}
	return testEntry{id: id, typ: TypeSByte, count: uint32(len(vals)), data: data}
}

func (b *tiffBuilder) shorts(id uint16, vals ...uint16) testEntry {
	return testEntry{id: id, typ: TypeShort, count: uint32(len(vals)), data: b.enc16(vals...)}
}

func (b *tiffBuilder) sshorts(id uint16, vals ...int16) testEntry {
	u := make([]uint16, len(vals))
	for i, v := range vals {
		u[i] = uint16(v)
	}
	return testEntry{id: id, typ: TypeSShort, count: uint32(len(vals)), data: b.enc16(u...)}
}

func (b *tiffBuilder) longs(id uint16, vals ...uint32) testEntry {
	return testEntry{id: id, typ: TypeLong, count: uint32(len(vals)), data: b.enc32(vals...)}
}

func (b *tiffBuilder) slongs(id uint16, vals ...int32) testEntry {
	u := make([]uint32, len(vals))
	for i, v := range vals {
		u[i] = uint32(v)
	}
	return testEntry{id: id, typ: TypeSLong, count: uint32(len(vals)), data: b.enc32(u...)}
}

// rationals takes numerator and denominator pairs.
func (b *tiffBuilder) rationals(id uint16, vals ...uint32) testEntry {
	return testEntry{id: id, typ: TypeRational, count: uint32(len(vals) / 2), data: b.enc32(vals...)}
}

// srationals takes numerator and denominator pairs.
func (b *tiffBuilder) srationals(id uint16, vals ...int32) testEntry {
	u := make([]uint32, len(vals))
	for i, v := range vals {
		u[i] = uint32(v)
	}
	return testEntry{id: id, typ: TypeSRational, count: uint32(len(vals) / 2), data: b.enc32(u...)}
}

func (b *tiffBuilder) floats(id uint16, vals ...float32) testEntry {
	u := make([]uint32, len(vals))
	for i, v := range vals {
		u[i] = math.Float32bits(v)
	}
	return testEntry{id: id, typ: TypeFloat, count: uint32(len(vals)), data: b.enc32(u...)}
}

func (b *tiffBuilder) doubles(id uint16, vals ...float64) testEntry {
	data := make([]byte, 8*len(vals))
	for i, v := range vals {
		b.order.PutUint64(data[i*8:], math.Float64bits(v))
	}
	return testEntry{id: id, typ: TypeDouble, count: uint32(len(vals)), data: data}
}

func (b *tiffBuilder) subIFD(id uint16, entries ...testEntry) testEntry {
	return testEntry{id: id, typ: TypeLong, count: 1, sub: &testIFD{entries: entries}}
}

func (b *tiffBuilder) rawEntry(id uint16, typ Type, count uint32, data [4]byte) testEntry {
	return testEntry{id: id, typ: typ, count: count, raw: &data}
}

// pointerEntry creates an entry with the given offset in the value field.
func (b *tiffBuilder) pointerEntry(id uint16, typ Type, count uint32, offset uint32) testEntry {
	var data [4]byte
	b.order.PutUint32(data[:], offset)
	return b.rawEntry(id, typ, count, data)
}

func (b *tiffBuilder) enc16(vals ...uint16) []byte {
	data := make([]byte, 2*len(vals))
	for i, v := range vals {
		b.order.PutUint16(data[i*2:], v)
	}
	return data
}

func (b *tiffBuilder) enc32(vals ...uint32) []byte {
	data := make([]byte, 4*len(vals))
	for i, v := range vals {
		b.order.PutUint32(data[i*4:], v)
	}
	return data
}

func uint32p(v uint32) *uint32 {
	return &v
}

var byteOrders = []binary.ByteOrder{binary.LittleEndian, binary.BigEndian}
