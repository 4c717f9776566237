// ABOUTME: Entry point for taggit CLI application.
// ABOUTME: Executes the root command and maps errors to exit codes.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/harper/taggit/internal/ui"
	"github.com/harper/taggit/pkg/tags"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const (
	exitError      = 1
	exitInvalidArg = 2
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error(err.Error()))
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if errors.Is(err, tags.ErrInvalidArgument) {
		return exitInvalidArg
	}
	return exitError
}
