// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tiffmeta

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"golang.org/x/image/riff"
)

const (
	markerSOI      = 0xffd8
	markerEOI      = 0xffd9
	markerSOS      = 0xffda
	markerTEM      = 0xff01
	markerRST0     = 0xffd0
	markerRST7     = 0xffd7
	markerApp1EXIF = 0xffe1

	pngEXIFMarker = 0x65584966 // eXIf
	pngIENDMarker = 0x49454e44 // IEND
)

var (
	exifHeader   = []byte("Exif\x00\x00")
	pngSignature = []byte("\x89PNG\r\n\x1a\n")

	fccWEBP = riff.FourCC{'W', 'E', 'B', 'P'}
	fccEXIF = riff.FourCC{'E', 'X', 'I', 'F'}
)

// region is a TIFF structure embedded in r.
// end is exclusive.
type region struct {
	r     io.ReadSeeker
	start int64
	end   int64
}

type locator interface {
	locate() (region, error)
}

// sniffFormat detects the image format from the first bytes at the current position.
// The read position is restored.
func sniffFormat(e *streamReader) (ImageFormat, error) {
	var b [12]byte
	var n int
	if err := e.preservePos(func() error {
		var err error
		n, err = io.ReadFull(e.r, b[:])
		return err
	}); err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return 0, err
	}
	head := b[:n]

	switch {
	case bytes.HasPrefix(head, []byte("II")), bytes.HasPrefix(head, []byte("MM")):
		return TIFF, nil
	case bytes.HasPrefix(head, []byte{0xff, 0xd8}):
		return JPEG, nil
	case bytes.HasPrefix(head, pngSignature):
		return PNG, nil
	case len(head) == 12 && bytes.HasPrefix(head, []byte("RIFF")) && bytes.Equal(head[8:12], fccWEBP[:]):
		return WebP, nil
	default:
		return 0, ErrNotTIFF
	}
}

type locatorJPEG struct {
	*streamReader
}

// locate walks the JPEG markers until it finds an APP1 segment with an Exif header.
func (e *locatorJPEG) locate() (region, error) {
	if e.read2() != markerSOI {
		return region{}, ErrNotTIFF
	}

	for {
		marker := e.read2()

		if marker == 0xffff {
			// Fill byte, the marker starts at the next byte.
			e.skip(-1)
			continue
		}

		if marker&0xff00 != 0xff00 {
			return region{}, newInvalidFormatErrorf("invalid JPEG marker 0x%04x", marker)
		}

		if marker == markerSOS || marker == markerEOI {
			// No Exif before the image data.
			return region{}, ErrNotTIFF
		}

		if marker == markerTEM || (marker >= markerRST0 && marker <= markerRST7) {
			// No length.
			continue
		}

		// Read the 16-bit length of the segment. The value includes the 2 bytes for the
		// length itself, so we subtract 2 to get the number of remaining bytes.
		length := e.read2()
		if length < 2 {
			return region{}, newInvalidFormatErrorf("invalid JPEG segment length %d", length)
		}
		length -= 2

		if marker == markerApp1EXIF && int(length) >= len(exifHeader) {
			if bytes.Equal(e.readBytesVolatile(len(exifHeader)), exifHeader) {
				start := e.pos()
				return region{
					r:     e.r,
					start: start,
					end:   start + int64(length) - int64(len(exifHeader)),
				}, nil
			}
			e.skip(int64(length) - int64(len(exifHeader)))
			continue
		}

		e.skip(int64(length))
	}
}

type locatorPNG struct {
	*streamReader
}

// locate walks the PNG chunks until it finds the eXIf chunk.
// The chunk holds the TIFF structure without any Exif header.
func (e *locatorPNG) locate() (region, error) {
	if !bytes.Equal(e.readBytesVolatile(len(pngSignature)), pngSignature) {
		return region{}, ErrNotTIFF
	}

	for {
		chunkLength, typ := e.read4(), e.read4()

		switch typ {
		case pngEXIFMarker:
			start := e.pos()
			return region{
				r:     e.r,
				start: start,
				end:   start + int64(chunkLength),
			}, nil
		case pngIENDMarker:
			return region{}, ErrNotTIFF
		}

		e.skip(int64(chunkLength))
		e.skip(4) // skip CRC
	}
}

type locatorWebP struct {
	*streamReader
	opts Options
}

// locate finds the EXIF chunk in a WebP RIFF container.
// The chunk is read into memory.
func (e *locatorWebP) locate() (region, error) {
	formType, riffReader, err := riff.NewReader(e.r)
	if err != nil {
		return region{}, newInvalidFormatError(fmt.Errorf("invalid RIFF container: %w", err))
	}
	if formType != fccWEBP {
		return region{}, ErrNotTIFF
	}

	for {
		chunkID, chunkLen, chunkData, err := riffReader.Next()
		if err == io.EOF {
			return region{}, ErrNotTIFF
		}
		if err != nil {
			return region{}, newInvalidFormatError(fmt.Errorf("invalid RIFF chunk: %w", err))
		}

		if chunkID != fccEXIF {
			continue
		}

		if chunkLen > e.opts.LimitTagSize {
			return region{}, newInvalidFormatErrorf("EXIF chunk size %d exceeds limit %d", chunkLen, e.opts.LimitTagSize)
		}

		b := make([]byte, chunkLen)
		if _, err := io.ReadFull(chunkData, b); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				e.stop(err)
			}
			return region{}, newInvalidFormatError(fmt.Errorf("invalid RIFF chunk: %w", err))
		}

		// Some writers keep the JPEG style Exif header.
		b = bytes.TrimPrefix(b, exifHeader)

		return region{
			r:     bytes.NewReader(b),
			start: 0,
			end:   int64(len(b)),
		}, nil
	}
}
