package display

import (
	"fmt"
	"io"

	"github.com/harrison/textfinder/internal/search"
)

// Reporter prints search results: a line per reported directory, an indented
// line per matching file and a closing summary.
type Reporter struct {
	writer io.Writer
	colors *palette
	err    error
}

// NewReporter creates a Reporter writing to w.
func NewReporter(w io.Writer, mode ColorMode) *Reporter {
	return &Reporter{
		writer: w,
		colors: newPalette(UseColor(w, mode)),
	}
}

// ReportDir implements search.Reporter.
func (r *Reporter) ReportDir(path string) {
	r.printf("%s\n", r.colors.dir.Sprint(path))
}

// ReportFile implements search.Reporter.
func (r *Reporter) ReportFile(name string) {
	r.printf("    %s\n", r.colors.file.Sprint(name))
}

// Summary prints the totals of a finished run.
func (r *Reporter) Summary(s *search.Summary) {
	if s == nil {
		return
	}
	r.printf("\n%s %d files in %d directories, %s\n",
		r.colors.label.Sprint("processed"),
		s.FilesVisited, s.DirsVisited,
		r.matchesLabel(s.Matches))
}

func (r *Reporter) matchesLabel(n int) string {
	text := fmt.Sprintf("%d matches", n)
	if n == 1 {
		text = "1 match"
	}
	if n == 0 {
		return text
	}
	return r.colors.success.Sprint(text)
}

// Err returns the first write error, if any.
func (r *Reporter) Err() error {
	return r.err
}

// printf writes unless an earlier write already failed.
func (r *Reporter) printf(format string, args ...interface{}) {
	if r.err != nil {
		return
	}
	if _, err := fmt.Fprintf(r.writer, format, args...); err != nil {
		r.err = fmt.Errorf("failed to write report: %w", err)
	}
}
