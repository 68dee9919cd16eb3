// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tiffmeta

import (
	"encoding/binary"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestEnumValues(t *testing.T) {
	c := qt.New(t)

	var w warnings
	ctx := valueConverterContext{tag: TagCompression, name: "Compression", warnf: w.warnf}

	c.Assert(compressionValues.convert(ctx, uint16(5)), qt.Equals, Symbol("LZW"))
	c.Assert(compressionValues.convert(ctx, uint32(32773)), qt.Equals, Symbol("PackBits"))
	c.Assert(meteringModeValues.convert(ctx, uint16(0)), qt.IsNil)
	c.Assert(meteringModeValues.convert(ctx, uint16(255)), qt.Equals, Symbol("Other"))
	c.Assert(fileSourceValues.convert(ctx, uint8(3)), qt.Equals, Symbol("DigitalCamera"))

	// Unmapped values are kept as is.
	c.Assert(compressionValues.convert(ctx, uint16(9999)), qt.Equals, uint16(9999))
	c.Assert(w, qt.HasLen, 0)

	// Multiple values are kept as is without a warning.
	c.Assert(sampleFormatValues.convert(ctx, []uint16{1, 1, 1}), qt.DeepEquals, []uint16{1, 1, 1})
	c.Assert(w, qt.HasLen, 0)

	// Values of the wrong kind are kept as is with a warning.
	c.Assert(compressionValues.convert(ctx, "LZW"), qt.Equals, "LZW")
	c.Assert(compressionValues.convert(ctx, int16(5)), qt.Equals, int16(5))
	c.Assert(w, qt.HasLen, 2)
	c.Assert(w[0], qt.Equals, "Compression: unexpected value of type string, keeping raw value")
}

func TestDecodeFlash(t *testing.T) {
	c := qt.New(t)

	for _, test := range []struct {
		v    uint16
		want FlashFlags
	}{
		{0x00, FlashFlags{}},
		{0x01, FlashFlags{FlashFired}},
		{0x05, FlashFlags{FlashFired, FlashReturnNotDetected}},
		{0x07, FlashFlags{FlashFired, FlashReturnDetected}},
		{0x02, FlashFlags{}},
		{0x08, FlashFlags{FlashModeForcedOn}},
		{0x09, FlashFlags{FlashFired, FlashModeForcedOn}},
		{0x10, FlashFlags{FlashModeDisabled}},
		{0x18, FlashFlags{FlashModeAuto}},
		{0x19, FlashFlags{FlashFired, FlashModeAuto}},
		{0x20, FlashFlags{FlashNoFunction}},
		{0x41, FlashFlags{FlashFired, FlashRedEyeReduction}},
		{0x5f, FlashFlags{FlashFired, FlashReturnDetected, FlashModeAuto, FlashRedEyeReduction}},
	} {
		c.Assert(decodeFlash(test.v), qt.DeepEquals, test.want, qt.Commentf("0x%02x", test.v))
	}

	flags := decodeFlash(0x19)
	c.Assert(flags.Has(FlashFired), qt.IsTrue)
	c.Assert(flags.Has(FlashModeAuto), qt.IsTrue)
	c.Assert(flags.Has(FlashModeForcedOn), qt.IsFalse)
	c.Assert(flags.String(), qt.Equals, "{Fired, ModeAuto}")
}

func TestConvertVersion(t *testing.T) {
	c := qt.New(t)

	var w warnings
	ctx := valueConverterContext{tag: TagExifVersion, name: "ExifVersion", warnf: w.warnf}

	c.Assert(convertVersion(ctx, []uint8("0230")), qt.Equals, Version{Major: 2, Minor: 30})
	c.Assert(convertVersion(ctx, "0100"), qt.Equals, Version{Major: 1, Minor: 0})
	c.Assert(convertVersion(ctx, []uint8("0232")).(Version).String(), qt.Equals, "2.32")
	c.Assert(w, qt.HasLen, 0)

	c.Assert(convertVersion(ctx, []uint8("02x0")), qt.DeepEquals, []uint8("02x0"))
	c.Assert(convertVersion(ctx, []uint8("023")), qt.DeepEquals, []uint8("023"))
	c.Assert(convertVersion(ctx, uint32(230)), qt.Equals, uint32(230))
	c.Assert(w, qt.HasLen, 3)
}

func TestDecodeInterpretedTags(t *testing.T) {
	c := qt.New(t)

	b := newTIFFBuilder(binary.BigEndian)
	b.addIFD(
		b.shorts(uint16(TagCompression), 5),
		b.shorts(uint16(TagPhotometricInterpretation), 2),
		b.shorts(uint16(TagOrientation), 6),
		b.rationals(uint16(TagXResolution), 72, 1),
		b.shorts(uint16(TagResolutionUnit), 1),
		b.shorts(uint16(TagPlanarConfiguration), 7),
		// Not a known tag, no interpretation.
		b.shorts(0xf103, 5),
		b.subIFD(uint16(TagExifIFDPointer),
			b.bytesEntry(uint16(TagExifVersion), TypeUndefined, '0', '2', '3', '0'),
			b.shorts(uint16(TagFlash), 0x19),
			b.shorts(uint16(TagMeteringMode), 0),
			b.shorts(uint16(TagColorSpace), 0xffff),
		),
		b.subIFD(uint16(TagGPSIFDPointer),
			b.bytesEntry(uint16(TagGPSVersionID), TypeByte, 2, 2, 0, 0),
			b.bytesEntry(uint16(TagGPSAltitudeRef), TypeByte, 1),
		),
	)

	ifds := mustDecodeBytes(c, b.bytes())
	ifd0 := ifds[0]

	value := func(ifd *IFD, id TagID) any {
		v, found := ifd.Value(id)
		c.Assert(found, qt.IsTrue, qt.Commentf("tag 0x%x", id))
		return v
	}

	c.Assert(value(ifd0, TagCompression), qt.Equals, Symbol("LZW"))
	c.Assert(value(ifd0, TagPhotometricInterpretation), qt.Equals, Symbol("RGB"))
	c.Assert(value(ifd0, TagOrientation), qt.Equals, Symbol("RightTop"))
	c.Assert(value(ifd0, TagXResolution), eq, newRatRaw[uint32](72, 1))
	c.Assert(value(ifd0, TagResolutionUnit), qt.IsNil)
	c.Assert(value(ifd0, TagPlanarConfiguration), qt.Equals, uint16(7))
	c.Assert(value(ifd0, 0xf103), qt.Equals, uint16(5))

	exif := value(ifd0, TagExifIFDPointer).(*IFD)
	c.Assert(exif.Space(), qt.Equals, ExifSpace)
	c.Assert(value(exif, TagExifVersion), qt.Equals, Version{Major: 2, Minor: 30})
	c.Assert(value(exif, TagFlash), qt.DeepEquals, FlashFlags{FlashFired, FlashModeAuto})
	c.Assert(value(exif, TagMeteringMode), qt.IsNil)
	c.Assert(value(exif, TagColorSpace), qt.Equals, Symbol("Uncalibrated"))

	gps := value(ifd0, TagGPSIFDPointer).(*IFD)
	c.Assert(gps.Space(), qt.Equals, GPSSpace)
	c.Assert(value(gps, TagGPSVersionID), qt.DeepEquals, []uint8{2, 2, 0, 0})
	c.Assert(value(gps, TagGPSAltitudeRef), qt.Equals, Symbol("BelowSeaLevel"))
	tag, _ := gps.Tag(TagGPSAltitudeRef)
	name, _ := tag.Name()
	c.Assert(name, qt.Equals, "GPSAltitudeRef")
}
