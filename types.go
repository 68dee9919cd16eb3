// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tiffmeta

import "fmt"

// Type is the field type code of an IFD entry.
type Type uint16

// The field types defined by TIFF 6.0.
const (
	TypeByte      Type = 1  // 8-bit unsigned integer.
	TypeASCII     Type = 2  // 8-bit bytes with last byte null.
	TypeShort     Type = 3  // 16-bit unsigned integer.
	TypeLong      Type = 4  // 32-bit unsigned integer.
	TypeRational  Type = 5  // 64-bit unsigned fraction.
	TypeSByte     Type = 6  // 8-bit signed integer.
	TypeUndefined Type = 7  // 8-bit untyped data.
	TypeSShort    Type = 8  // 16-bit signed integer.
	TypeSLong     Type = 9  // 32-bit signed integer.
	TypeSRational Type = 10 // 64-bit signed fraction.
	TypeFloat     Type = 11 // 32-bit IEEE floating point.
	TypeDouble    Type = 12 // 64-bit IEEE floating point.
)

type typeInfo struct {
	name string
	size uint32
}

var typeInfos = map[Type]typeInfo{
	TypeByte:      {"BYTE", 1},
	TypeASCII:     {"ASCII", 1},
	TypeShort:     {"SHORT", 2},
	TypeLong:      {"LONG", 4},
	TypeRational:  {"RATIONAL", 8},
	TypeSByte:     {"SBYTE", 1},
	TypeUndefined: {"UNDEFINED", 1},
	TypeSShort:    {"SSHORT", 2},
	TypeSLong:     {"SLONG", 4},
	TypeSRational: {"SRATIONAL", 8},
	TypeFloat:     {"FLOAT", 4},
	TypeDouble:    {"DOUBLE", 8},
}

// Name returns the TIFF name of the type, e.g. "SHORT".
// The second return value is false for type codes outside 1 to 12.
func (t Type) Name() (string, bool) {
	info, found := typeInfos[t]
	return info.name, found
}

// Size returns the width in bytes of one value of this type.
// The second return value is false for type codes outside 1 to 12.
func (t Type) Size() (uint32, bool) {
	info, found := typeInfos[t]
	return info.size, found
}

func (t Type) String() string {
	if name, found := t.Name(); found {
		return name
	}
	return fmt.Sprintf("UnknownType_%d", uint16(t))
}
