// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tiffmeta

import (
	"encoding/binary"
	"math"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// RawValue holds the unparsed 4 byte value field of an entry with an unknown type.
type RawValue [4]byte

// decodeValue decodes count values of type typ from b.
// A count of 1 gives a scalar, a larger count a slice.
// ASCII values are always returned as a string.
// The caller must make sure that b holds at least size*count bytes.
func decodeValue(typ Type, count uint32, b []byte, byteOrder binary.ByteOrder) any {
	if count == 0 {
		return nil
	}

	switch typ {
	case TypeByte, TypeUndefined:
		if count == 1 {
			return b[0]
		}
		v := make([]uint8, count)
		copy(v, b)
		return v
	case TypeASCII:
		return decodeASCII(b[:count])
	case TypeSByte:
		return decodeItems(count, 1, b, func(b []byte) int8 {
			return int8(b[0])
		})
	case TypeShort:
		return decodeItems(count, 2, b, byteOrder.Uint16)
	case TypeSShort:
		return decodeItems(count, 2, b, func(b []byte) int16 {
			return int16(byteOrder.Uint16(b))
		})
	case TypeLong:
		return decodeItems(count, 4, b, byteOrder.Uint32)
	case TypeSLong:
		return decodeItems(count, 4, b, func(b []byte) int32 {
			return int32(byteOrder.Uint32(b))
		})
	case TypeRational:
		return decodeItems(count, 8, b, func(b []byte) Rat[uint32] {
			return newRatRaw(byteOrder.Uint32(b), byteOrder.Uint32(b[4:]))
		})
	case TypeSRational:
		return decodeItems(count, 8, b, func(b []byte) Rat[int32] {
			return newRatRaw(int32(byteOrder.Uint32(b)), int32(byteOrder.Uint32(b[4:])))
		})
	case TypeFloat:
		return decodeItems(count, 4, b, func(b []byte) float32 {
			return math.Float32frombits(byteOrder.Uint32(b))
		})
	case TypeDouble:
		return decodeItems(count, 8, b, func(b []byte) float64 {
			return math.Float64frombits(byteOrder.Uint64(b))
		})
	default:
		panic("unreachable: unknown type " + typ.String())
	}
}

func decodeItems[T any](count uint32, size int, b []byte, f func([]byte) T) any {
	if count == 1 {
		return f(b[:size])
	}
	vals := make([]T, count)
	for i := range vals {
		vals[i] = f(b[i*size : (i+1)*size])
	}
	return vals
}

// decodeASCII drops the NUL terminator and decodes the rest.
// Bytes that are not valid UTF-8 are read as ISO 8859-1.
func decodeASCII(b []byte) string {
	if n := len(b); n > 0 && b[n-1] == 0 {
		b = b[:n-1]
	}
	if utf8.Valid(b) {
		return string(b)
	}
	s, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(s)
}
