// ABOUTME: Terminal UI formatting for taggit output.
// ABOUTME: Uses fatih/color for label swatches and glamour for reports.

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/harper/taggit/pkg/tags"
)

var (
	faint = color.New(color.Faint).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
)

var swatches = map[tags.Color]*color.Color{
	tags.None:   color.New(color.Faint),
	tags.Gray:   color.New(color.FgHiBlack),
	tags.Green:  color.New(color.FgGreen),
	tags.Purple: color.New(color.FgMagenta),
	tags.Blue:   color.New(color.FgBlue),
	tags.Yellow: color.New(color.FgYellow),
	tags.Red:    color.New(color.FgRed),
	tags.Orange: color.New(color.FgHiRed),
}

// DisableColor turns off ANSI escapes for all output.
func DisableColor(disabled bool) {
	if disabled {
		color.NoColor = true
	}
}

// Swatch renders a dot in the terminal color closest to c.
func Swatch(c tags.Color) string {
	s, ok := swatches[c]
	if !ok {
		s = swatches[tags.None]
	}
	if c == tags.None {
		return s.Sprint("○")
	}
	return s.Sprint("●")
}

func FormatTag(t tags.Tag) string {
	return fmt.Sprintf("%s %s %s", Swatch(t.Color()), t.Name(),
		faint(fmt.Sprintf("(%s)", strings.ToLower(t.Color().String()))))
}

// FormatTagList renders the tags of one file under a bold header.
func FormatTagList(path string, list []tags.Tag) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s\n", bold(path)))
	if len(list) == 0 {
		sb.WriteString(fmt.Sprintf("  %s\n", faint("No tags.")))
		return sb.String()
	}
	for _, t := range list {
		sb.WriteString(fmt.Sprintf("  %s\n", FormatTag(t)))
	}
	return sb.String()
}

// ReportMarkdown describes the tags of a file as a markdown document.
func ReportMarkdown(path string, list []tags.Tag) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# %s\n\n", path))
	if len(list) == 0 {
		sb.WriteString("_No tags._\n")
		return sb.String()
	}

	sb.WriteString("| Tag | Color | Code |\n|---|---|---|\n")
	for _, t := range list {
		sb.WriteString(fmt.Sprintf("| %s | %s | %d |\n",
			strings.ReplaceAll(t.Name(), "|", `\|`), t.Color(), t.Code()))
	}
	return sb.String()
}

// RenderReport renders ReportMarkdown for the terminal.
func RenderReport(path string, list []tags.Tag) (string, error) {
	content := ReportMarkdown(path, list)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		// Fallback to raw markdown if renderer fails
		return content, nil //nolint:nilerr // Intentional fallback
	}

	out, err := renderer.Render(content)
	if err != nil {
		return content, nil //nolint:nilerr // Intentional fallback
	}
	return out, nil
}

func Success(msg string) string {
	return color.New(color.FgGreen).Sprint("✓ ") + msg
}

func Warning(msg string) string {
	return color.New(color.FgYellow).Sprint("! ") + msg
}

func Error(msg string) string {
	return color.New(color.FgRed).Sprint("✗ ") + msg
}
