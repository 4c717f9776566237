// ABOUTME: Tag model pairing a name with a Finder label color.
// ABOUTME: Converts between tags and their "name\ncode" attribute form.

package tags

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidArgument marks tag input that cannot be turned into a Tag.
var ErrInvalidArgument = errors.New("invalid argument")

const wireSeparator = "\n"

// Tag is an immutable name and color pair. Tags are comparable with ==.
type Tag struct {
	name  string
	color Color
}

// New builds a tag from a name and textual color input. Unrecognized
// colors fall back to None and are reported on r.
func New(name, color string, r Reporter) (Tag, error) {
	if err := validateName(name); err != nil {
		return Tag{}, err
	}
	return Tag{name: name, color: NormalizeColor(color, r)}, nil
}

// NewColored builds a tag from a name and an already normalized color.
func NewColored(name string, c Color) (Tag, error) {
	if err := validateName(name); err != nil {
		return Tag{}, err
	}
	if !c.Valid() {
		return Tag{}, fmt.Errorf("%w: color code %d out of range", ErrInvalidArgument, int(c))
	}
	return Tag{name: name, color: c}, nil
}

// FromWire parses the attribute form of a tag. A string without a newline
// is a name with no color.
func FromWire(s string, r Reporter) (Tag, error) {
	name, color, found := strings.Cut(s, wireSeparator)
	if !found {
		return New(s, "", r)
	}
	return New(name, color, r)
}

// FromTuple builds a tag from a one element (name) or two element
// (name, color) tuple.
func FromTuple(t []string, r Reporter) (Tag, error) {
	switch len(t) {
	case 1:
		return New(t[0], "", r)
	case 2:
		return New(t[0], t[1], r)
	default:
		return Tag{}, fmt.Errorf("%w: tag tuple must have 1 or 2 elements, got %d", ErrInvalidArgument, len(t))
	}
}

func (t Tag) Name() string { return t.name }

func (t Tag) Color() Color { return t.color }

func (t Tag) Code() int { return t.color.Code() }

// Wire renders the attribute form "name\ncode".
func (t Tag) Wire() string {
	return t.name + wireSeparator + strconv.Itoa(t.color.Code())
}

func (t Tag) String() string {
	return fmt.Sprintf("Tag(%q, %s, %d)", t.name, t.color, t.color.Code())
}

type tagJSON struct {
	Name      string `json:"name" yaml:"name"`
	ColorName string `json:"color_name" yaml:"color_name"`
	ColorCode int    `json:"color_code" yaml:"color_code"`
}

func (t Tag) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.record())
}

// MarshalYAML implements yaml.Marshaler.
func (t Tag) MarshalYAML() (any, error) {
	return t.record(), nil
}

func (t Tag) record() tagJSON {
	return tagJSON{Name: t.name, ColorName: t.color.String(), ColorCode: t.color.Code()}
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty tag name", ErrInvalidArgument)
	}
	if strings.Contains(name, wireSeparator) {
		return fmt.Errorf("%w: tag name %q contains a newline", ErrInvalidArgument, name)
	}
	if strings.ContainsRune(name, 0) {
		return fmt.Errorf("%w: null byte in tag name", ErrInvalidArgument)
	}
	return nil
}
