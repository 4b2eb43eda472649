package search

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeFinder matches the paths in its set.
type fakeFinder map[string]bool

func (f fakeFinder) Find(path string) bool { return f[path] }

// recordingReporter keeps report lines in order, prefixed with their kind.
type recordingReporter struct {
	lines []string
}

func (r *recordingReporter) ReportDir(path string)  { r.lines = append(r.lines, "dir:"+path) }
func (r *recordingReporter) ReportFile(name string) { r.lines = append(r.lines, "file:"+name) }

func TestVisitor_ShowEmptyDirs(t *testing.T) {
	a := filepath.Join("root", "a")
	finder := fakeFinder{filepath.Join("root", "x.txt"): true}
	rep := &recordingReporter{}
	v := NewVisitor(finder, rep, false)

	v.OnDir("root")
	v.OnFile("x.txt")
	v.OnFile("y.txt")
	v.OnDir(a)
	v.OnFile("z.txt")

	assert.Equal(t, []string{"dir:root", "file:x.txt", "dir:" + a}, rep.lines)
	assert.Equal(t, 1, v.Matches())
	assert.Empty(t, v.lastReportedDir, "last reported directory is only used in hide mode")
}

func TestVisitor_HideEmptyDirs(t *testing.T) {
	a := filepath.Join("root", "a")
	b := filepath.Join("root", "b")
	finder := fakeFinder{
		filepath.Join(a, "1.txt"): true,
		filepath.Join(a, "2.txt"): true,
		filepath.Join(b, "4.txt"): true,
	}
	rep := &recordingReporter{}
	v := NewVisitor(finder, rep, true)

	v.OnDir("root")
	v.OnFile("0.txt")
	v.OnDir(a)
	v.OnFile("1.txt")
	v.OnFile("2.txt")
	v.OnFile("3.txt")
	v.OnDir(b)
	v.OnFile("4.txt")

	assert.Equal(t, []string{
		"dir:" + a, "file:1.txt", "file:2.txt",
		"dir:" + b, "file:4.txt",
	}, rep.lines)
	assert.Equal(t, 3, v.Matches())
}

func TestVisitor_HideModeNoMatchesNoOutput(t *testing.T) {
	rep := &recordingReporter{}
	v := NewVisitor(fakeFinder{}, rep, true)

	v.OnDir("root")
	v.OnFile("a.txt")
	v.OnDir(filepath.Join("root", "sub"))
	v.OnFile("b.txt")

	assert.Empty(t, rep.lines)
	assert.Zero(t, v.Matches())
}

func TestVisitor_JoinsCurrentDirectory(t *testing.T) {
	var seen []string
	finder := finderFunc(func(path string) bool {
		seen = append(seen, path)
		return false
	})
	v := NewVisitor(finder, &recordingReporter{}, true)

	v.OnDir("first")
	v.OnFile("a.txt")
	v.OnDir("second")
	v.OnFile("b.txt")

	assert.Equal(t, []string{filepath.Join("first", "a.txt"), filepath.Join("second", "b.txt")}, seen)
}

type finderFunc func(string) bool

func (f finderFunc) Find(path string) bool { return f(path) }
