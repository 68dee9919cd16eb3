// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tiffmeta

import (
	"fmt"
	"slices"
)

// Space identifies the tag namespace of an IFD.
// The same tag ID may mean different things in different spaces,
// e.g. 0x0002 is GPSLatitude in a GPS IFD and InteroperabilityVersion in an interoperability IFD.
type Space uint8

const (
	// TIFFSpace is the space of the IFDs in the main chain.
	TIFFSpace Space = iota
	// ExifSpace is the space of the IFD pointed to by ExifIFDPointer.
	ExifSpace
	// GPSSpace is the space of the IFD pointed to by GPSInfoIFDPointer.
	GPSSpace
	// InteropSpace is the space of the IFD pointed to by InteroperabilityIFDPointer.
	InteropSpace
)

var spaceNames = map[Space]string{
	TIFFSpace:    "IFD",
	ExifSpace:    "ExifIFD",
	GPSSpace:     "GPSInfoIFD",
	InteropSpace: "InteroperabilityIFD",
}

func (s Space) String() string {
	if name, found := spaceNames[s]; found {
		return name
	}
	return fmt.Sprintf("Space(%d)", uint8(s))
}

// Sub-IFD pointer tags and the space of the IFD they point to.
var subIFDSpaces = map[TagID]Space{
	TagExifIFDPointer:    ExifSpace,
	TagGPSIFDPointer:     GPSSpace,
	TagInteropIFDPointer: InteropSpace,
}

func (s Space) tagName(id TagID) (string, bool) {
	var name string
	var found bool
	switch s {
	case GPSSpace:
		name, found = gpsFieldNames[id]
	case InteropSpace:
		name, found = interopFieldNames[id]
	}
	if found {
		return name, true
	}
	if name, found = tiffFieldNames[id]; found {
		return name, true
	}
	name, found = exifFieldNames[id]
	return name, found
}

func (s Space) subIFDSpace(id TagID) (Space, bool) {
	if s != TIFFSpace && s != ExifSpace {
		return 0, false
	}
	sub, found := subIFDSpaces[id]
	return sub, found
}

func (s Space) valueConverter(id TagID) (valueConverter, bool) {
	var conv valueConverter
	var found bool
	switch s {
	case GPSSpace:
		conv, found = gpsValueConverters[id]
	case InteropSpace:
		conv, found = interopValueConverters[id]
	default:
		conv, found = tiffValueConverters[id]
	}
	return conv, found
}

// Tag is a decoded IFD entry.
type Tag struct {
	id    TagID
	name  string
	typ   Type
	count uint32
	value any
}

// ID returns the numeric tag ID.
func (t Tag) ID() TagID {
	return t.id
}

// Name returns the symbolic name of the tag resolved in the space
// of the IFD it was found in.
// The second return value is false if the ID is not in any table.
func (t Tag) Name() (string, bool) {
	return t.name, t.name != ""
}

// Type returns the field type as stored in the file.
// This may be a type code outside the 12 known types.
func (t Tag) Type() Type {
	return t.typ
}

// Count returns the number of values as stored in the file.
func (t Tag) Count() uint32 {
	return t.count
}

// Value returns the decoded value.
//
// Depending on the type and the count, this is one of:
//   - nil for a count of 0 or an enumerated value without meaning.
//   - A scalar (uint8, int8, uint16, int16, uint32, int32, Rat[uint32], Rat[int32], float32, float64) for a count of 1.
//   - A slice of the same for larger counts.
//   - A string for ASCII.
//   - RawValue for unknown types.
//   - *IFD for sub-IFD pointers.
//   - Symbol, FlashFlags, Version or *GeoKeyDirectory for interpreted tags.
func (t Tag) Value() any {
	return t.value
}

func (t Tag) String() string {
	name := t.name
	if name == "" {
		name = t.id.String()
	}
	return fmt.Sprintf("%s(%s x %d)=%v", name, t.typ, t.count, t.value)
}

// IFD is an image file directory.
type IFD struct {
	offset uint32
	space  Space
	tags   []Tag
	next   uint32
}

// Offset returns the offset of the IFD relative to the start of the TIFF structure.
func (f *IFD) Offset() uint32 {
	return f.offset
}

// Space returns the tag space of the IFD.
func (f *IFD) Space() Space {
	return f.space
}

// Next returns the raw next-IFD pointer, 0 for the last IFD in a chain.
func (f *IFD) Next() uint32 {
	return f.next
}

// Len returns the number of entries.
func (f *IFD) Len() int {
	return len(f.tags)
}

// Tags returns the entries in directory order.
func (f *IFD) Tags() []Tag {
	return slices.Clone(f.tags)
}

// Tag returns the first entry with the given ID.
func (f *IFD) Tag(id TagID) (Tag, bool) {
	for _, t := range f.tags {
		if t.id == id {
			return t, true
		}
	}
	return Tag{}, false
}

// Value is a shorthand for looking up a tag and returning its value.
func (f *IFD) Value(id TagID) (any, bool) {
	t, found := f.Tag(id)
	return t.value, found
}
