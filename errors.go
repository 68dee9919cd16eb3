// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tiffmeta

import (
	"errors"
	"fmt"
)

var (
	// ErrNotTIFF is returned when the byte order marker is neither "II" nor "MM",
	// or when no TIFF structure could be located in a container format.
	ErrNotTIFF = errors.New("not a TIFF")

	// ErrStopWalking is a sentinel error to signal that Traverse should stop.
	ErrStopWalking = errors.New("stop walking")

	// Internal error to signal that we should stop any further processing.
	errStop = errors.New("stop")
)

// WrongVersionError is returned when the TIFF version word is not 42.
type WrongVersionError struct {
	Found uint16
}

func (e *WrongVersionError) Error() string {
	return fmt.Sprintf("wrong TIFF version %d, expected %d", e.Found, tiffVersion)
}

// InvalidPointerError is returned when an IFD offset or an out-of-line value offset
// is odd, points into the header, points outside of the TIFF region,
// or points back to a directory already decoded.
type InvalidPointerError struct {
	Pointer uint32
}

func (e *InvalidPointerError) Error() string {
	return fmt.Sprintf("invalid pointer %d (0x%x)", e.Pointer, e.Pointer)
}

// InvalidFormatError is used when the data is not decodable as TIFF.
// Use errors.Is/errors.As to get to the underlying ErrNotTIFF,
// *WrongVersionError or *InvalidPointerError.
type InvalidFormatError struct {
	Err error
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("tiffmeta: invalid format: %s", e.Err)
}

func (e *InvalidFormatError) Unwrap() error {
	return e.Err
}

// IsInvalidFormat reports whether err is an InvalidFormatError.
func IsInvalidFormat(err error) bool {
	var e *InvalidFormatError
	return errors.As(err, &e)
}

func newInvalidFormatError(err error) error {
	if IsInvalidFormat(err) {
		return err
	}
	return &InvalidFormatError{Err: err}
}

func newInvalidFormatErrorf(format string, args ...any) error {
	return &InvalidFormatError{Err: fmt.Errorf(format, args...)}
}

func isInvalidFormatErrorCandidate(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrNotTIFF) {
		return true
	}
	var (
		versionErr *WrongVersionError
		pointerErr *InvalidPointerError
	)
	return errors.As(err, &versionErr) || errors.As(err, &pointerErr)
}
