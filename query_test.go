// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tiffmeta

import (
	"encoding/binary"
	"errors"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestTraverse(t *testing.T) {
	c := qt.New(t)

	ifds := mustDecodeBytes(c, newExifTestBuilder(binary.LittleEndian).bytes())

	var got []string
	err := Traverse(ifds, func(namespace string, tag Tag) error {
		got = append(got, namespace+"/"+tag.ID().String())
		return nil
	})
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.DeepEquals, []string{
		"IFD0/ImageWidth",
		"IFD0/Make",
		"IFD0/ExifIFD/ExposureTime",
		"IFD0/ExifIFD/FNumber",
		"IFD0/ExifIFD/InteroperabilityIFD/UnknownTag_0x0001",
		"IFD0/ExifIFD/InteroperabilityIFD/UnknownTag_0x0002",
		"IFD0/ExifIFD/DateTimeOriginal",
		"IFD0/GPSInfoIFD/UnknownTag_0x0001",
		"IFD0/GPSInfoIFD/UnknownTag_0x0002",
		"IFD0/Copyright",
		"IFD1/ImageWidth",
	})

	c.Run("Contextual names", func(c *qt.C) {
		var names []string
		Traverse(ifds, func(namespace string, tag Tag) error {
			name, _ := tag.Name()
			names = append(names, name)
			return nil
		})
		c.Assert(names[4:9], qt.DeepEquals, []string{
			"InteroperabilityIndex",
			"InteroperabilityVersion",
			"DateTimeOriginal",
			"GPSLatitudeRef",
			"GPSLatitude",
		})
	})

	c.Run("Stop walking", func(c *qt.C) {
		var n int
		err := Traverse(ifds, func(namespace string, tag Tag) error {
			n++
			if tag.ID() == TagFNumber {
				return ErrStopWalking
			}
			return nil
		})
		c.Assert(err, qt.IsNil)
		c.Assert(n, qt.Equals, 4)
	})

	c.Run("Error", func(c *qt.C) {
		errBoom := errors.New("boom")
		err := Traverse(ifds, func(namespace string, tag Tag) error {
			if namespace == "IFD1" {
				return errBoom
			}
			return nil
		})
		c.Assert(err, qt.Equals, errBoom)
	})

	c.Run("Empty", func(c *qt.C) {
		c.Assert(Traverse(nil, func(string, Tag) error { return errors.New("called") }), qt.IsNil)
	})
}

func TestExtract(t *testing.T) {
	c := qt.New(t)

	ifds := mustDecodeBytes(c, newExifTestBuilder(binary.BigEndian).bytes())

	c.Run("Leaf tags", func(c *qt.C) {
		values := Extract(ifds, TagImageWidth, TagMake)
		c.Assert(values, qt.DeepEquals, []TagValue{
			{Namespace: "IFD0", ID: TagImageWidth, Name: "ImageWidth", Value: uint32(4000)},
			{Namespace: "IFD0", ID: TagMake, Name: "Make", Value: "Canon"},
			{Namespace: "IFD1", ID: TagImageWidth, Name: "ImageWidth", Value: uint32(160)},
		})
	})

	c.Run("Sub-IFD pointer", func(c *qt.C) {
		values := Extract(ifds, TagExifIFDPointer)
		var keys []string
		for _, v := range values {
			keys = append(keys, v.Namespace+"/"+v.Key())
		}
		c.Assert(keys, qt.DeepEquals, []string{
			"IFD0/ExifIFD/ExposureTime",
			"IFD0/ExifIFD/FNumber",
			"IFD0/ExifIFD/InteroperabilityIFD/InteroperabilityIndex",
			"IFD0/ExifIFD/InteroperabilityIFD/InteroperabilityVersion",
			"IFD0/ExifIFD/DateTimeOriginal",
		})
	})

	c.Run("Not found", func(c *qt.C) {
		c.Assert(Extract(ifds, TagSoftware), qt.HasLen, 0)
		c.Assert(Extract(ifds), qt.HasLen, 0)
	})
}

func TestExtractAll(t *testing.T) {
	c := qt.New(t)

	ifds := mustDecodeBytes(c, newExifTestBuilder(binary.LittleEndian).bytes())
	values := ExtractAll(ifds)
	c.Assert(values, qt.HasLen, 11)
	c.Assert(values[0].Key(), qt.Equals, "ImageWidth")
	c.Assert(values[7].Namespace, qt.Equals, "IFD0/GPSInfoIFD")
	c.Assert(values[7].Key(), qt.Equals, "GPSLatitudeRef")
	c.Assert(values[7].Value, qt.Equals, "N")

	c.Assert(TagValue{ID: 0xf00d}.Key(), qt.Equals, "UnknownTag_0xf00d")
}

func TestFlatten(t *testing.T) {
	c := qt.New(t)

	ifds := mustDecodeBytes(c, newExifTestBuilder(binary.LittleEndian).bytes())
	m := Flatten(ifds)
	c.Assert(m, qt.HasLen, 10)
	c.Assert(m["ImageWidth"], qt.Equals, uint32(4000))
	c.Assert(m["Make"], qt.Equals, "Canon")
	c.Assert(m["InteroperabilityVersion"], qt.Equals, Version{Major: 1, Minor: 0})
	c.Assert(m["GPSLatitude"], eq, []Rat[uint32]{newRatRaw[uint32](59, 1), newRatRaw[uint32](54, 1), newRatRaw[uint32](0, 1)})
	c.Assert(m["ExposureTime"], eq, newRatRaw[uint32](1, 200))
}
