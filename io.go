// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tiffmeta

import (
	"encoding/binary"
	"io"
	"sync"
)

//go:generate stringer -type=ByteOrder

// ByteOrder is the byte order declared in the TIFF header.
type ByteOrder uint8

const (
	// LittleEndian is declared with "II" (Intel).
	LittleEndian ByteOrder = iota + 1
	// BigEndian is declared with "MM" (Motorola).
	BigEndian
)

func (b ByteOrder) binary() binary.ByteOrder {
	if b == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

type bytesBuf struct {
	b []byte
}

var bytesBufPool = &sync.Pool{
	New: func() any {
		return &bytesBuf{
			b: make([]byte, 1024),
		}
	},
}

func getBytesBuf(length int) *bytesBuf {
	b := bytesBufPool.Get().(*bytesBuf)
	if length > cap(b.b) {
		b.b = make([]byte, length)
	}
	b.b = b.b[:length]
	return b
}

func putBytesBuf(b *bytesBuf) {
	b.b = b.b[:0]
	bytesBufPool.Put(b)
}

func newStreamReader(r io.ReadSeeker, byteOrder ByteOrder, start, end int64) *streamReader {
	return &streamReader{
		r:         r,
		byteOrder: byteOrder.binary(),
		order:     byteOrder,
		start:     start,
		end:       end,
	}
}

// streamReader is a wrapper around a ReadSeeker that provides methods to read binary data.
// All pointers read from the stream are relative to start.
// Note that this is not thread safe.
type streamReader struct {
	r         io.ReadSeeker
	byteOrder binary.ByteOrder
	order     ByteOrder

	// The TIFF region in r. end is exclusive and 0 if unknown.
	start int64
	end   int64

	buf []byte

	readErr error
}

func (e *streamReader) setByteOrder(order ByteOrder) {
	e.order = order
	e.byteOrder = order.binary()
}

func (e *streamReader) allocateBuf(length int) {
	if length > cap(e.buf) {
		e.buf = make([]byte, length)
	}
}

func (e *streamReader) pos() int64 {
	n, err := e.r.Seek(0, io.SeekCurrent)
	if err != nil {
		e.stop(err)
	}
	return n
}

func (e *streamReader) read1() uint8 {
	e.readNIntoBuf(1)
	return e.buf[0]
}

func (e *streamReader) read2() uint16 {
	const n = 2
	e.readNIntoBuf(n)
	return e.byteOrder.Uint16(e.buf[:n])
}

func (e *streamReader) read4() uint32 {
	const n = 4
	e.readNIntoBuf(n)
	return e.byteOrder.Uint32(e.buf[:n])
}

// readBytesVolatile reads a slice of bytes from the stream
// which is not guaranteed to be valid after the next read.
func (e *streamReader) readBytesVolatile(n int) []byte {
	e.readNIntoBuf(n)
	return e.buf[:n]
}

// readBytes reads len(b) bytes into b.
func (e *streamReader) readBytes(b []byte) {
	if _, err := io.ReadFull(e.r, b); err != nil {
		e.stop(err)
	}
}

func (e *streamReader) readNIntoBuf(n int) {
	e.allocateBuf(n)
	if _, err := io.ReadFull(e.r, e.buf[:n]); err != nil {
		e.stop(err)
	}
}

// preservePos runs f and restores the read cursor afterwards.
func (e *streamReader) preservePos(f func() error) error {
	pos := e.pos()
	err := f()
	e.seek(pos)
	return err
}

func (e *streamReader) seek(pos int64) {
	if _, err := e.r.Seek(pos, io.SeekStart); err != nil {
		e.stop(err)
	}
}

// seekPointer seeks to p relative to the start of the TIFF region.
func (e *streamReader) seekPointer(p uint32) {
	e.seek(e.start + int64(p))
}

func (e *streamReader) skip(n int64) {
	if _, err := e.r.Seek(n, io.SeekCurrent); err != nil {
		e.stop(err)
	}
}

// stop records err and aborts decoding.
// A short read is always fatal, so io.EOF is reported as io.ErrUnexpectedEOF.
func (e *streamReader) stop(err error) {
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	if err != nil {
		e.readErr = err
	}
	panic(errStop)
}
