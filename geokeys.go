// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tiffmeta

import (
	"slices"
	"strings"
)

// GeoKeyDirectory is the decoded GeoKeyDirectoryTag (34735).
type GeoKeyDirectory struct {
	Version       uint16
	KeyRevision   uint16
	MinorRevision uint16
	Keys          []GeoKey

	// The SHORT values the directory was decoded from.
	// Keys with a Ref to TagGeoKeyDirectory index into these.
	raw []uint16
}

// GeoKey is a single entry in a GeoKeyDirectory.
// A key holds either a direct Value or a Ref to values stored in another tag.
type GeoKey struct {
	ID    GeoKeyID
	Value uint16
	Ref   *GeoKeyRef
}

// GeoKeyRef points into the values of another tag,
// usually GeoDoubleParamsTag or GeoAsciiParamsTag.
type GeoKeyRef struct {
	Tag    TagID
	Count  uint16
	Offset uint16
}

// Key returns the first key with the given ID.
func (d *GeoKeyDirectory) Key(id GeoKeyID) (GeoKey, bool) {
	for _, k := range d.Keys {
		if k.ID == id {
			return k, true
		}
	}
	return GeoKey{}, false
}

// Resolve returns the value of key.
// Direct values are returned as uint16.
// Referenced values are looked up in ifd, the IFD the directory was found in:
// GeoDoubleParamsTag values give a float64 or a []float64,
// GeoAsciiParamsTag values give a string without the trailing "|",
// and references to the directory itself give a uint16 or a []uint16.
// The second return value is false if the reference cannot be resolved.
func (d *GeoKeyDirectory) Resolve(ifd *IFD, key GeoKey) (any, bool) {
	ref := key.Ref
	if ref == nil {
		return key.Value, true
	}
	lo, hi := int(ref.Offset), int(ref.Offset)+int(ref.Count)

	switch ref.Tag {
	case TagGeoKeyDirectory:
		if hi > len(d.raw) {
			return nil, false
		}
		if ref.Count == 1 {
			return d.raw[lo], true
		}
		return slices.Clone(d.raw[lo:hi]), true
	case TagGeoDoubleParams:
		v, found := ifd.Value(TagGeoDoubleParams)
		if !found {
			return nil, false
		}
		var doubles []float64
		switch vv := v.(type) {
		case float64:
			doubles = []float64{vv}
		case []float64:
			doubles = vv
		default:
			return nil, false
		}
		if hi > len(doubles) {
			return nil, false
		}
		if ref.Count == 1 {
			return doubles[lo], true
		}
		return slices.Clone(doubles[lo:hi]), true
	case TagGeoAsciiParams:
		v, found := ifd.Value(TagGeoAsciiParams)
		if !found {
			return nil, false
		}
		s, ok := v.(string)
		if !ok || hi > len(s) {
			return nil, false
		}
		return strings.TrimSuffix(s[lo:hi], "|"), true
	default:
		return nil, false
	}
}

// decodeGeoKeyDirectory decodes the header and the key entries,
// 4 SHORTs each, of a GeoTIFF key directory.
func decodeGeoKeyDirectory(shorts []uint16) (*GeoKeyDirectory, bool) {
	if len(shorts) < 4 {
		return nil, false
	}
	n := int(shorts[3])
	if len(shorts) != 4+4*n {
		return nil, false
	}

	d := &GeoKeyDirectory{
		Version:       shorts[0],
		KeyRevision:   shorts[1],
		MinorRevision: shorts[2],
		Keys:          make([]GeoKey, n),
		raw:           shorts,
	}

	for i := range d.Keys {
		k := shorts[4+i*4 : 8+i*4]
		key := GeoKey{ID: GeoKeyID(k[0])}
		if location := k[1]; location == 0 {
			// The value is stored in the offset field.
			key.Value = k[3]
		} else {
			key.Ref = &GeoKeyRef{
				Tag:    TagID(location),
				Count:  k[2],
				Offset: k[3],
			}
		}
		d.Keys[i] = key
	}

	return d, true
}

func convertGeoKeyDirectory(ctx valueConverterContext, v any) any {
	shorts, ok := v.([]uint16)
	if !ok {
		ctx.warnf("%s: unexpected value of type %T, keeping raw value", ctx.name, v)
		return v
	}
	d, ok := decodeGeoKeyDirectory(shorts)
	if !ok {
		ctx.warnf("%s: malformed key directory with %d values, keeping raw value", ctx.name, len(shorts))
		return v
	}
	return d
}
