// ABOUTME: Accepted forms of tag input for add and remove operations.
// ABOUTME: A closed set: wire string, name only, name and color, or a built Tag.

package tags

import "fmt"

// Input is something that resolves to a Tag. The implementations in this
// package are the only ones: Wire, Name, NameColor and Tag.
type Input interface {
	Resolve(r Reporter) (Tag, error)
	isInput()
}

// Wire is a tag in attribute form, "name\ncode".
type Wire string

// Name is a tag name with no color.
type Name string

// NameColor is a tag name with textual color input, a name or a code.
type NameColor struct {
	Name  string
	Color string
}

func (w Wire) Resolve(r Reporter) (Tag, error) { return FromWire(string(w), r) }

func (n Name) Resolve(r Reporter) (Tag, error) { return FromTuple([]string{string(n)}, r) }

func (nc NameColor) Resolve(r Reporter) (Tag, error) {
	return FromTuple([]string{nc.Name, nc.Color}, r)
}

// Resolve returns t unchanged. The zero Tag is rejected.
func (t Tag) Resolve(Reporter) (Tag, error) {
	if err := validateName(t.name); err != nil {
		return Tag{}, err
	}
	return t, nil
}

func (Wire) isInput()      {}
func (Name) isInput()      {}
func (NameColor) isInput() {}
func (Tag) isInput()       {}

// ResolveAll resolves every input, stopping at the first failure so that a
// batch is applied entirely or not at all.
func ResolveAll(inputs []Input, r Reporter) ([]Tag, error) {
	out := make([]Tag, 0, len(inputs))
	for i, in := range inputs {
		if in == nil {
			return nil, fmt.Errorf("%w: tag input %d is nil", ErrInvalidArgument, i)
		}
		t, err := in.Resolve(r)
		if err != nil {
			return nil, fmt.Errorf("tag input %d: %w", i, err)
		}
		out = append(out, t)
	}
	return out, nil
}
