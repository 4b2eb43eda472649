package display

import (
	"fmt"
	"io"
)

// FileList prints a numbered list of files: [N/Total] path
type FileList struct {
	writer  io.Writer
	total   int
	current int
	colors  *palette
}

// NewFileList creates a FileList for total files.
func NewFileList(w io.Writer, total int, useColor bool) *FileList {
	return &FileList{
		writer: w,
		total:  total,
		colors: newPalette(useColor),
	}
}

// Start displays the header.
func (l *FileList) Start(root string) {
	fmt.Fprintf(l.writer, "Files searched under %s:\n", l.colors.dir.Sprint(root))
}

// Step displays the next file.
func (l *FileList) Step(path string) {
	l.current++
	fmt.Fprintf(l.writer, "  %s %s\n", l.colors.label.Sprintf("[%d/%d]", l.current, l.total), path)
}

// Complete displays the totals.
func (l *FileList) Complete(dirs int) {
	fmt.Fprintf(l.writer, "%s %d files in %d directories\n", l.colors.success.Sprint("✓"), l.total, dirs)
}
