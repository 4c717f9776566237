// Package logging builds the zerolog logger used by the CLI and adapts it
// to the tag warning channel.
package logging

import (
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/harper/taggit/pkg/tags"
)

// Options controls logger construction.
type Options struct {
	Level string // zerolog level name; empty means warn
	JSON  bool   // force JSON output even on a terminal
}

// New creates a logger writing to w. Terminals get the console writer
// unless JSON is requested; everything else gets JSON lines. Each logger
// carries a run id so lines from one invocation can be correlated.
func New(w io.Writer, opts Options) zerolog.Logger {
	level, err := zerolog.ParseLevel(opts.Level)
	if err != nil || opts.Level == "" {
		level = zerolog.WarnLevel
	}

	out := w
	if !opts.JSON && isTerminal(w) {
		out = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: "15:04:05",
		}
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("run", uuid.NewString()).
		Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Reporter sends tag warnings to a logger at warn level.
type Reporter struct {
	log zerolog.Logger
}

var _ tags.Reporter = Reporter{}

func NewReporter(l zerolog.Logger) Reporter {
	return Reporter{log: l}
}

func (r Reporter) Warn(w tags.Warning) {
	r.log.Warn().
		Str("input", w.Input).
		Str("valid", tags.ValidColors()).
		Msg(w.String())
}

// Multi fans a warning out to several reporters.
type Multi []tags.Reporter

func (m Multi) Warn(w tags.Warning) {
	for _, r := range m {
		if r != nil {
			r.Warn(w)
		}
	}
}
