// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

// Package tiffmeta decodes the IFD tree of TIFF files and of the TIFF structure
// embedded as Exif in JPEG, PNG and WebP images.
package tiffmeta

import (
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	// ImageFormatAuto signals that the image format should be detected from the first bytes in R.
	ImageFormatAuto ImageFormat = iota
	// TIFF is a plain TIFF structure, e.g. a .tif or .dng file or a raw Exif blob.
	TIFF
	// JPEG is the JPEG image format. The TIFF structure is read from the Exif APP1 segment.
	JPEG
	// PNG is the PNG image format. The TIFF structure is read from the eXIf chunk.
	PNG
	// WebP is the WebP image format. The TIFF structure is read from the EXIF chunk.
	WebP
)

const (
	defaultMaxDepth     = 8
	defaultLimitTagSize = 10 << 20
)

// ImageFormat is the image format.
//
//go:generate stringer -type=ImageFormat
type ImageFormat int

// Options contains the options for the Decode function.
type Options struct {
	// The Reader (typically a *os.File) to read from.
	R io.ReadSeeker

	// The image format in R.
	// Default is ImageFormatAuto.
	ImageFormat ImageFormat

	// Start is the offset in R where the TIFF structure
	// (or, for JPEG, PNG and WebP, the image) starts.
	// All pointers in the TIFF structure are relative to this offset.
	Start int64

	// End is the offset in R where the TIFF structure ends, exclusive.
	// If set, pointers at or beyond End are rejected.
	// For JPEG, PNG and WebP this is set from the container.
	// Default is 0, meaning unknown.
	End int64

	// Warnf will be called for each warning,
	// e.g. for tag values that could not be interpreted.
	Warnf func(string, ...any)

	// MaxDepth is the maximum nesting depth of sub-IFDs.
	// Default value is 8.
	MaxDepth int

	// LimitTagSize is the maximum size in bytes of a tag value to read.
	// Larger values are rejected as an invalid format.
	// Default value is 10 MiB.
	LimitTagSize uint32
}

func (opts *Options) setDefaults() {
	if opts.Warnf == nil {
		opts.Warnf = func(string, ...any) {}
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = defaultMaxDepth
	}
	if opts.LimitTagSize == 0 {
		opts.LimitTagSize = defaultLimitTagSize
	}
}

// Decode reads the TIFF header and all IFDs reachable from it.
// The returned slice holds the IFDs of the main chain in order (IFD0, IFD1 ...),
// with sub-IFDs available as *IFD tag values.
//
// Errors caused by malformed data are of type *InvalidFormatError, see IsInvalidFormat.
// Other errors, e.g. io.ErrUnexpectedEOF on a short read, are returned as is.
func Decode(opts Options) (ifds []*IFD, err error) {
	var base *streamReader

	errFinal := func(err2 error) error {
		if err2 == nil {
			return nil
		}

		if err2 == errStop && base != nil && base.readErr != nil {
			err2 = base.readErr
		}

		if isInvalidFormatErrorCandidate(err2) {
			err2 = newInvalidFormatError(err2)
		}

		return err2
	}

	errFromRecover := func(r any) (err2 error) {
		if r == nil {
			return nil
		}
		if errp, ok := r.(error); ok {
			return errp
		}
		return fmt.Errorf("unknown panic: %v", r)
	}

	defer func() {
		if err2 := errFromRecover(recover()); err2 != nil && err == nil {
			err = err2
		}
		err = errFinal(err)
		if err != nil {
			ifds = nil
		}
	}()

	if opts.R == nil {
		return nil, errors.New("no reader provided")
	}
	if opts.Start < 0 || (opts.End != 0 && opts.End <= opts.Start) {
		return nil, fmt.Errorf("invalid range [%d, %d)", opts.Start, opts.End)
	}
	opts.setDefaults()

	// Containers are always big endian, except RIFF, which has its own reader.
	base = newStreamReader(opts.R, BigEndian, opts.Start, opts.End)
	base.seek(opts.Start)

	if opts.ImageFormat == ImageFormatAuto {
		opts.ImageFormat, err = sniffFormat(base)
		if err != nil {
			return nil, err
		}
	}

	var loc locator
	switch opts.ImageFormat {
	case TIFF:
	case JPEG:
		loc = &locatorJPEG{streamReader: base}
	case PNG:
		loc = &locatorPNG{streamReader: base}
	case WebP:
		loc = &locatorWebP{streamReader: base, opts: opts}
	default:
		return nil, fmt.Errorf("unsupported image format %s", opts.ImageFormat)
	}

	r, start, end := opts.R, opts.Start, opts.End
	if loc != nil {
		reg, err := loc.locate()
		if err != nil {
			return nil, err
		}
		r, start, end = reg.r, reg.start, reg.end
	}

	dec := newMetaDecoderTIFF(r, start, end, opts)
	// Short reads in the TIFF structure are reported through base.
	base = dec.streamReader

	return dec.decode()
}

// DecodeFile opens the file with the given filename and decodes it with Decode.
// If opts.R is set, it is ignored.
func DecodeFile(filename string, opts Options) ([]*IFD, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	opts.R = f
	return Decode(opts)
}
