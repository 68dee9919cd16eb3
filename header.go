// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tiffmeta

const (
	tiffVersion    = 42
	tiffHeaderSize = 8

	byteOrderLittleEndian = 0x4949 // "II"
	byteOrderBigEndian    = 0x4d4d // "MM"
)

// readHeader reads the 8 byte TIFF header at the start of the region
// and returns the offset of the first IFD.
// The byte order of e is set from the header.
func (e *streamReader) readHeader() (uint32, error) {
	e.seek(e.start)

	// The marker reads the same in both byte orders.
	switch e.read2() {
	case byteOrderLittleEndian:
		e.setByteOrder(LittleEndian)
	case byteOrderBigEndian:
		e.setByteOrder(BigEndian)
	default:
		return 0, ErrNotTIFF
	}

	if v := e.read2(); v != tiffVersion {
		return 0, &WrongVersionError{Found: v}
	}

	first := e.read4()
	if err := e.validatePointer(first); err != nil {
		return 0, err
	}

	return first, nil
}

// validatePointer checks an IFD pointer relative to the start of the TIFF region.
// Zero is valid, but only as the chain terminator, which the caller must handle.
func (e *streamReader) validatePointer(p uint32) error {
	if p == 0 {
		return nil
	}
	if p%2 != 0 || p < tiffHeaderSize {
		return &InvalidPointerError{Pointer: p}
	}
	if e.end > 0 && int64(p) >= e.end-e.start {
		return &InvalidPointerError{Pointer: p}
	}
	return nil
}

// validateDataPointer checks the offset of an out-of-line value of size bytes.
func (e *streamReader) validateDataPointer(p uint32, size uint64) error {
	if p == 0 {
		return &InvalidPointerError{Pointer: p}
	}
	if err := e.validatePointer(p); err != nil {
		return err
	}
	if e.end > 0 && uint64(p)+size > uint64(e.end-e.start) {
		return &InvalidPointerError{Pointer: p}
	}
	return nil
}
