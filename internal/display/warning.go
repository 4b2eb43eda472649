package display

import (
	"fmt"
	"io"
	"strings"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Details    []string // Extra lines, e.g. affected files (optional)
	Suggestion string   // Action to take (optional)
}

// Display writes the warning to out, in yellow when useColor is set.
func (w Warning) Display(out io.Writer, useColor bool) {
	var b strings.Builder

	b.WriteString("Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	for _, d := range w.Details {
		b.WriteString("      - ")
		b.WriteString(d)
		b.WriteString("\n")
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion: ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	fmt.Fprint(out, newPalette(useColor).warn.Sprint(b.String()))
}

// PatternWarning creates the warning shown when the search pattern does not compile.
func PatternWarning(pattern string, err error) Warning {
	return Warning{
		Title:      fmt.Sprintf("regular expression %q is invalid", pattern),
		Message:    "No file will match; the search runs anyway.",
		Details:    []string{err.Error()},
		Suggestion: "Quote the pattern for your shell and escape regex metacharacters such as ( [ { with a backslash.",
	}
}
