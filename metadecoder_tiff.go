// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tiffmeta

import "io"

const entrySize = 12

// An entry is represented in 12 bytes:
//   - 2 bytes for the tag ID
//   - 2 bytes for the data type
//   - 4 bytes for the number of data values of the specified type
//   - 4 bytes for the value itself, if it fits, otherwise for a pointer to another location where the data may be found;
//     this could be a pointer to the beginning of another IFD.
type entry struct {
	id    TagID
	typ   Type
	count uint32
	data  [4]byte
}

func newMetaDecoderTIFF(r io.ReadSeeker, start, end int64, opts Options) *metaDecoderTIFF {
	return &metaDecoderTIFF{
		streamReader: newStreamReader(r, LittleEndian, start, end),
		opts:         opts,
		visited:      make(map[uint32]bool),
	}
}

type metaDecoderTIFF struct {
	*streamReader

	opts Options

	// Offsets of the IFDs decoded so far.
	visited map[uint32]bool
}

// decode reads the header and the IFD chain with all sub-IFDs.
func (e *metaDecoderTIFF) decode() ([]*IFD, error) {
	next, err := e.readHeader()
	if err != nil {
		return nil, err
	}

	var ifds []*IFD
	for next != 0 {
		ifd, err := e.decodeIFD(next, TIFFSpace, 0)
		if err != nil {
			return nil, err
		}
		ifds = append(ifds, ifd)
		next = ifd.next
	}

	return ifds, nil
}

// decodeIFD decodes the IFD at offset in two passes.
// The first pass reads all entries sequentially,
// the second resolves the values, which may require seeking.
func (e *metaDecoderTIFF) decodeIFD(offset uint32, space Space, depth int) (*IFD, error) {
	if offset == 0 {
		return nil, &InvalidPointerError{Pointer: offset}
	}
	if err := e.validatePointer(offset); err != nil {
		return nil, err
	}
	if e.visited[offset] {
		return nil, &InvalidPointerError{Pointer: offset}
	}
	e.visited[offset] = true

	e.seekPointer(offset)
	entries := e.readEntries()

	next := e.read4()
	if err := e.validatePointer(next); err != nil {
		return nil, err
	}

	ifd := &IFD{
		offset: offset,
		space:  space,
		tags:   make([]Tag, 0, len(entries)),
		next:   next,
	}

	for _, en := range entries {
		tag, err := e.resolveTag(en, space, depth)
		if err != nil {
			return nil, err
		}
		ifd.tags = append(ifd.tags, tag)
	}

	return ifd, nil
}

func (e *metaDecoderTIFF) readEntries() []entry {
	n := int(e.read2())
	b := e.readBytesVolatile(n * entrySize)
	entries := make([]entry, n)
	for i := range entries {
		eb := b[i*entrySize : (i+1)*entrySize]
		en := &entries[i]
		en.id = TagID(e.byteOrder.Uint16(eb[0:2]))
		en.typ = Type(e.byteOrder.Uint16(eb[2:4]))
		en.count = e.byteOrder.Uint32(eb[4:8])
		copy(en.data[:], eb[8:12])
	}
	return entries
}

func (e *metaDecoderTIFF) resolveTag(en entry, space Space, depth int) (Tag, error) {
	name, known := space.tagName(en.id)
	tag := Tag{
		id:    en.id,
		name:  name,
		typ:   en.typ,
		count: en.count,
	}

	if known {
		if sub, ok := space.subIFDSpace(en.id); ok {
			ifd, err := e.decodeSubIFD(e.byteOrder.Uint32(en.data[:]), sub, depth+1)
			if err != nil {
				return tag, err
			}
			tag.value = ifd
			return tag, nil
		}
	}

	v, err := e.readValue(en)
	if err != nil {
		return tag, err
	}

	if known {
		if convert, found := space.valueConverter(en.id); found {
			v = convert(valueConverterContext{tag: en.id, name: name, warnf: e.opts.Warnf}, v)
		}
	}

	tag.value = v

	return tag, nil
}

func (e *metaDecoderTIFF) decodeSubIFD(offset uint32, space Space, depth int) (*IFD, error) {
	if depth > e.opts.MaxDepth {
		return nil, newInvalidFormatErrorf("IFD nesting exceeds max depth %d", e.opts.MaxDepth)
	}
	var ifd *IFD
	err := e.preservePos(func() error {
		var err error
		ifd, err = e.decodeIFD(offset, space, depth)
		return err
	})
	return ifd, err
}

// readValue reads the value of en.
// Values that fit in the 4 byte data field are decoded without touching the stream.
func (e *metaDecoderTIFF) readValue(en entry) (any, error) {
	size, ok := en.typ.Size()
	if !ok {
		e.opts.Warnf("tag 0x%04x: unknown type %d, keeping raw value", uint16(en.id), uint16(en.typ))
		return RawValue(en.data), nil
	}

	if en.count == 0 {
		return nil, nil
	}

	total := uint64(size) * uint64(en.count)
	if total <= 4 {
		return decodeValue(en.typ, en.count, en.data[:total], e.byteOrder), nil
	}

	if total > uint64(e.opts.LimitTagSize) {
		return nil, newInvalidFormatErrorf("tag 0x%04x: value size %d exceeds limit %d", uint16(en.id), total, e.opts.LimitTagSize)
	}

	offset := e.byteOrder.Uint32(en.data[:])
	if err := e.validateDataPointer(offset, total); err != nil {
		return nil, err
	}

	var v any
	err := e.preservePos(func() error {
		e.seekPointer(offset)
		buf := getBytesBuf(int(total))
		defer putBytesBuf(buf)
		e.readBytes(buf.b)
		v = decodeValue(en.typ, en.count, buf.b, e.byteOrder)
		return nil
	})

	return v, err
}
