package search

import (
	"path/filepath"
)

// Finder decides whether the file at path matches.
type Finder interface {
	Find(path string) bool
}

// Reporter receives the lines of a search report.
type Reporter interface {
	ReportDir(path string)
	ReportFile(name string)
}

// Visitor connects navigation events to a Finder and applies the display
// policy. With hideEmptyDirs set, a directory is only reported right before
// its first matching file, and at most once. Otherwise every directory is
// reported as soon as it is entered.
//
// A Visitor is bound to a single traversal and is not safe for concurrent use.
type Visitor struct {
	finder        Finder
	reporter      Reporter
	hideEmptyDirs bool

	currentDir      string
	lastReportedDir string
	matches         int
}

// NewVisitor creates a Visitor.
func NewVisitor(finder Finder, reporter Reporter, hideEmptyDirs bool) *Visitor {
	return &Visitor{
		finder:        finder,
		reporter:      reporter,
		hideEmptyDirs: hideEmptyDirs,
	}
}

// OnDir implements fileutil.Visitor.
func (v *Visitor) OnDir(path string) {
	v.currentDir = path
	if !v.hideEmptyDirs {
		v.reporter.ReportDir(path)
	}
}

// OnFile implements fileutil.Visitor.
func (v *Visitor) OnFile(name string) {
	if !v.finder.Find(filepath.Join(v.currentDir, name)) {
		return
	}

	if v.hideEmptyDirs && v.currentDir != v.lastReportedDir {
		v.reporter.ReportDir(v.currentDir)
		v.lastReportedDir = v.currentDir
	}
	v.matches++
	v.reporter.ReportFile(name)
}

// Matches returns the number of matching files seen so far.
func (v *Visitor) Matches() int {
	return v.matches
}
