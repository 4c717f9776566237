// ABOUTME: Finder label colors and their numeric codes.
// ABOUTME: Normalizes textual or numeric color input, degrading to None.

package tags

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is one of the eight Finder label colors. Its value is the code
// stored in the attribute.
type Color int

const (
	None Color = iota
	Gray
	Green
	Purple
	Blue
	Yellow
	Red
	Orange
)

var colorNames = [...]string{
	None:   "NONE",
	Gray:   "GRAY",
	Green:  "GREEN",
	Purple: "PURPLE",
	Blue:   "BLUE",
	Yellow: "YELLOW",
	Red:    "RED",
	Orange: "ORANGE",
}

// Colors returns every color in code order.
func Colors() []Color {
	out := make([]Color, len(colorNames))
	for i := range colorNames {
		out[i] = Color(i)
	}
	return out
}

// Code returns the integer written to the attribute.
func (c Color) Code() int {
	return int(c)
}

// Valid reports whether c is one of the eight defined colors.
func (c Color) Valid() bool {
	return c >= None && c <= Orange
}

func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

// Warning is a non-fatal diagnostic about color input that could not be
// interpreted. The value it belongs to has already fallen back to None.
type Warning struct {
	Input  string
	Reason string
}

func (w Warning) String() string {
	return fmt.Sprintf("invalid color %q: %s; valid colors are %s (or codes 0-%d)",
		w.Input, w.Reason, ValidColors(), Orange.Code())
}

// ValidColors lists the canonical color names, comma separated.
func ValidColors() string {
	return strings.Join(colorNames[:], ", ")
}

// Reporter receives warnings raised while interpreting tag input.
type Reporter interface {
	Warn(w Warning)
}

// Warnings collects warnings in memory.
type Warnings []Warning

func (ws *Warnings) Warn(w Warning) {
	*ws = append(*ws, w)
}

// Discard drops every warning.
var Discard Reporter = discard{}

type discard struct{}

func (discard) Warn(Warning) {}

// NormalizeColor interprets input as a color code when it is made of
// decimal digits and as a case-insensitive color name otherwise. It never
// fails: bad input yields None and a warning on r, which may be nil.
func NormalizeColor(input string, r Reporter) Color {
	s := strings.TrimSpace(input)
	if s == "" {
		return None
	}

	if isNumeric(s) {
		n, err := strconv.Atoi(s)
		if err != nil || !Color(n).Valid() {
			report(r, Warning{Input: input, Reason: "code out of range"})
			return None
		}
		return Color(n)
	}

	for i, name := range colorNames {
		if strings.EqualFold(s, name) {
			return Color(i)
		}
	}
	report(r, Warning{Input: input, Reason: "unknown name"})
	return None
}

// ColorFromCode maps an integer code to a color, degrading like
// NormalizeColor for values outside 0-7.
func ColorFromCode(code int, r Reporter) Color {
	c := Color(code)
	if !c.Valid() {
		report(r, Warning{Input: strconv.Itoa(code), Reason: "code out of range"})
		return None
	}
	return c
}

func isNumeric(s string) bool {
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func report(r Reporter, w Warning) {
	if r != nil {
		r.Warn(w)
	}
}
