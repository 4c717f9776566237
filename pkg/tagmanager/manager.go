// ABOUTME: Tag operations on files: list, add, remove, and remove all.
// ABOUTME: Each call is one read-modify-write of the file's tag attribute.

package tagmanager

import (
	"slices"

	"github.com/harper/taggit/pkg/tags"
	"github.com/harper/taggit/pkg/xattrs"
)

// Manager manipulates the tags of files on one platform.
type Manager interface {
	List(path string) ([]tags.Tag, error)
	Add(path string, inputs ...tags.Input) error
	Remove(path string, inputs ...tags.Input) error
	RemoveAll(path string) error
}

// Checker is implemented by managers that can test for one tag without
// decoding the whole list.
type Checker interface {
	Has(path string, in tags.Input) (bool, error)
}

// Replacer is implemented by managers that can overwrite the whole list.
type Replacer interface {
	Set(path string, inputs ...tags.Input) error
}

// MacOS stores tags the way Finder does. Add and Remove read the attribute,
// modify it and write it back without locking, so concurrent writers to the
// same file can lose updates. Callers that need atomicity must serialize
// access per path themselves.
type MacOS struct {
	attr     *xattrs.Attribute
	reporter tags.Reporter
}

var (
	_ Manager  = (*MacOS)(nil)
	_ Checker  = (*MacOS)(nil)
	_ Replacer = (*MacOS)(nil)
)

// NewMacOS returns a manager writing through attr. Color warnings go to r,
// which may be nil.
func NewMacOS(attr *xattrs.Attribute, r tags.Reporter) *MacOS {
	if r == nil {
		r = tags.Discard
	}
	return &MacOS{attr: attr, reporter: r}
}

// List returns the tags of path in stored order, duplicates included. A file
// without tags yields an empty slice.
func (m *MacOS) List(path string) ([]tags.Tag, error) {
	raw := m.attr.ReadRaw(path)

	out := make([]tags.Tag, 0, len(raw))
	for _, entry := range raw {
		t, err := tags.FromWire(entry, m.reporter)
		if err != nil {
			// Written by another tool; show what can be shown.
			m.reporter.Warn(tags.Warning{Input: entry, Reason: err.Error()})
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

// Has reports whether the wire form of in is stored on path.
func (m *MacOS) Has(path string, in tags.Input) (bool, error) {
	t, err := in.Resolve(m.reporter)
	if err != nil {
		return false, err
	}
	return slices.Contains(m.attr.ReadRaw(path), t.Wire()), nil
}

// Add appends every input whose wire form is not already stored. Adding the
// same name with another color creates a second entry.
func (m *MacOS) Add(path string, inputs ...tags.Input) error {
	resolved, err := tags.ResolveAll(inputs, m.reporter)
	if err != nil {
		return err
	}

	entries := m.attr.ReadRaw(path)
	for _, t := range resolved {
		if w := t.Wire(); !slices.Contains(entries, w) {
			entries = append(entries, w)
		}
	}
	return m.attr.WriteRaw(path, entries)
}

// Remove deletes the first stored entry matching each input. Inputs that
// are not stored are ignored.
func (m *MacOS) Remove(path string, inputs ...tags.Input) error {
	resolved, err := tags.ResolveAll(inputs, m.reporter)
	if err != nil {
		return err
	}

	entries := m.attr.ReadRaw(path)
	for _, t := range resolved {
		if i := slices.Index(entries, t.Wire()); i >= 0 {
			entries = slices.Delete(entries, i, i+1)
		}
	}
	return m.attr.WriteRaw(path, entries)
}

// Set replaces the stored list with inputs, keeping the first of any
// duplicates.
func (m *MacOS) Set(path string, inputs ...tags.Input) error {
	resolved, err := tags.ResolveAll(inputs, m.reporter)
	if err != nil {
		return err
	}

	entries := make([]string, 0, len(resolved))
	for _, t := range resolved {
		if w := t.Wire(); !slices.Contains(entries, w) {
			entries = append(entries, w)
		}
	}
	return m.attr.WriteRaw(path, entries)
}

// RemoveAll writes an empty tag list.
func (m *MacOS) RemoveAll(path string) error {
	return m.attr.WriteRaw(path, []string{})
}
