// ABOUTME: Parsing of name[:color] tag arguments.
// ABOUTME: Splits on the last colon and applies the default color.

package main

import (
	"strings"

	"github.com/harper/taggit/pkg/tags"
)

// parseTagArg splits arg on its last colon into a (name, color) tuple. An
// argument without a colon, or with nothing after it, is a name that gets
// defaultColor.
func parseTagArg(arg, defaultColor string) (tags.Tag, error) {
	tuple := []string{arg}
	if name, color, found := cutLast(arg, ":"); found {
		tuple = []string{name}
		if color != "" {
			tuple = append(tuple, color)
		}
	}
	if len(tuple) == 1 && defaultColor != "" {
		tuple = append(tuple, defaultColor)
	}
	return tags.FromTuple(tuple, reporter)
}

func cutLast(s, sep string) (before, after string, found bool) {
	i := strings.LastIndex(s, sep)
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i+len(sep):], true
}

// parseTagArgs resolves every argument before anything is written, so one
// bad argument fails the whole command.
func parseTagArgs(args []string, defaultColor string) ([]tags.Input, error) {
	inputs := make([]tags.Input, 0, len(args))
	for _, arg := range args {
		t, err := parseTagArg(arg, defaultColor)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, t)
	}
	return inputs, nil
}
