// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tiffmeta

import (
	"errors"
	"fmt"
	"path"
)

// TagValue is a leaf tag value with its position in the IFD tree.
type TagValue struct {
	// Namespace is the path of the IFD the tag was found in, e.g. "IFD0/ExifIFD".
	Namespace string
	ID        TagID
	Name      string
	Value     any
}

// Key returns the name of the tag, or a hex representation for unknown tags.
func (t TagValue) Key() string {
	if t.Name != "" {
		return t.Name
	}
	return t.ID.String()
}

// Traverse walks all leaf tags in ifds depth-first in directory order,
// descending into sub-IFDs in place of their pointer tags.
// The root IFDs get the namespaces "IFD0", "IFD1" and so on.
// Return ErrStopWalking from fn to stop the walk without an error.
func Traverse(ifds []*IFD, fn func(namespace string, tag Tag) error) error {
	for i, ifd := range ifds {
		if err := ifd.walk(fmt.Sprintf("IFD%d", i), fn); err != nil {
			if errors.Is(err, ErrStopWalking) {
				return nil
			}
			return err
		}
	}
	return nil
}

func (f *IFD) walk(namespace string, fn func(namespace string, tag Tag) error) error {
	for _, tag := range f.tags {
		if sub, ok := tag.value.(*IFD); ok {
			if err := sub.walk(path.Join(namespace, sub.space.String()), fn); err != nil {
				return err
			}
			continue
		}
		if err := fn(namespace, tag); err != nil {
			return err
		}
	}
	return nil
}

// Extract returns the leaf values of the tags with the given IDs.
// If an ID is a sub-IFD pointer, all leaf values below it are included.
func Extract(ifds []*IFD, ids ...TagID) []TagValue {
	want := make(map[TagID]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}

	var values []TagValue
	var extract func(namespace string, ifd *IFD, all bool)
	extract = func(namespace string, ifd *IFD, all bool) {
		for _, tag := range ifd.tags {
			if sub, ok := tag.value.(*IFD); ok {
				extract(path.Join(namespace, sub.space.String()), sub, all || want[tag.id])
				continue
			}
			if all || want[tag.id] {
				values = append(values, newTagValue(namespace, tag))
			}
		}
	}

	for i, ifd := range ifds {
		extract(fmt.Sprintf("IFD%d", i), ifd, false)
	}

	return values
}

// ExtractAll returns all leaf values in ifds.
func ExtractAll(ifds []*IFD) []TagValue {
	var values []TagValue
	Traverse(ifds, func(namespace string, tag Tag) error {
		values = append(values, newTagValue(namespace, tag))
		return nil
	})
	return values
}

// Flatten returns all leaf values keyed by tag name.
// Tags in later IFDs do not overwrite tags with the same name found earlier,
// so e.g. the main image's ImageWidth wins over the thumbnail's.
func Flatten(ifds []*IFD) map[string]any {
	m := make(map[string]any)
	for _, v := range ExtractAll(ifds) {
		if _, found := m[v.Key()]; !found {
			m[v.Key()] = v.Value
		}
	}
	return m
}

func newTagValue(namespace string, tag Tag) TagValue {
	return TagValue{
		Namespace: namespace,
		ID:        tag.id,
		Name:      tag.name,
		Value:     tag.value,
	}
}
