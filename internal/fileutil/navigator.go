package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidRoot is returned by Navigator.Visit when the root path does not
// exist, is not a directory, or cannot be listed.
var ErrInvalidRoot = errors.New("invalid root directory")

// Visitor receives traversal events from a Navigator.
//
// OnDir is called once for every directory entered, before any OnFile call for
// files inside it. OnFile receives the bare file name; the directory it lives in
// is the one passed to the most recent OnDir call.
type Visitor interface {
	OnDir(path string)
	OnFile(name string)
}

// Filesystem access, replaceable in tests.
var (
	readDir  = os.ReadDir
	openFile = os.Open
)

// Logger receives diagnostics about entries skipped during traversal.
type Logger interface {
	LogDebug(message string)
}

// Navigator walks a directory tree depth-first and dispatches events to a Visitor.
// Files are filtered by extension; subdirectories are entered only when
// recursion is enabled.
//
// A Navigator is not safe for concurrent use.
type Navigator struct {
	visitor  Visitor
	recurse  bool
	patterns []string
	patSet   map[string]bool
	logger   Logger

	filesVisited int
	dirsVisited  int
}

// NewNavigator creates a Navigator that reports to visitor.
func NewNavigator(visitor Visitor, recurse bool) *Navigator {
	return &Navigator{
		visitor: visitor,
		recurse: recurse,
		patSet:  make(map[string]bool),
	}
}

// SetLogger sets the logger used for skipped entries. A nil logger disables it.
func (n *Navigator) SetLogger(l Logger) *Navigator {
	n.logger = l
	return n
}

// AddPattern adds an extension (without the leading dot) to the set of
// extensions whose files are dispatched to the visitor. Matching is
// case-sensitive. Patterns must be added before Visit is called.
func (n *Navigator) AddPattern(ext string) *Navigator {
	ext = strings.TrimPrefix(ext, ".")
	if n.patSet[ext] {
		return n
	}
	n.patSet[ext] = true
	n.patterns = append(n.patterns, ext)
	return n
}

// Patterns returns the configured extensions in the order they were added.
func (n *Navigator) Patterns() []string {
	out := make([]string, len(n.patterns))
	copy(out, n.patterns)
	return out
}

// FilesVisited returns the number of OnFile events dispatched by the last Visit.
func (n *Navigator) FilesVisited() int {
	return n.filesVisited
}

// DirsVisited returns the number of OnDir events dispatched by the last Visit.
func (n *Navigator) DirsVisited() int {
	return n.dirsVisited
}

// Visit walks the tree rooted at root. It returns an error wrapping
// ErrInvalidRoot, without calling the visitor, when root is not a readable
// directory. Unreadable entries below root are skipped.
func (n *Navigator) Visit(root string) error {
	n.filesVisited = 0
	n.dirsVisited = 0

	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRoot, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrInvalidRoot, root)
	}

	entries, err := readDir(root)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRoot, err)
	}

	n.walk(root, entries)
	return nil
}

// walk dispatches dir and its files, then descends into subdirectories.
// os.ReadDir returns entries sorted by name, which keeps sibling order stable.
func (n *Navigator) walk(dir string, entries []os.DirEntry) {
	n.dirsVisited++
	n.visitor.OnDir(dir)

	var subdirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			if n.recurse {
				subdirs = append(subdirs, entry.Name())
			}
			continue
		}

		if !n.matches(entry.Name()) {
			continue
		}
		if !n.isRegularFile(dir, entry) {
			continue
		}
		if !n.isReadable(filepath.Join(dir, entry.Name())) {
			continue
		}

		n.filesVisited++
		n.visitor.OnFile(entry.Name())
	}

	for _, name := range subdirs {
		path := filepath.Join(dir, name)
		children, err := readDir(path)
		if err != nil {
			n.debugf("skipping unreadable directory %s: %v", path, err)
			continue
		}
		n.walk(path, children)
	}
}

// matches reports whether the file name's extension is in the pattern set.
// An empty pattern set accepts every file.
func (n *Navigator) matches(name string) bool {
	if len(n.patSet) == 0 {
		return true
	}
	return n.patSet[Extension(name)]
}

// isRegularFile follows symlinks so that links to regular files are searched;
// broken links and special files are skipped.
func (n *Navigator) isRegularFile(dir string, entry os.DirEntry) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}

	path := filepath.Join(dir, entry.Name())
	info, err := os.Stat(path)
	if err != nil {
		n.debugf("skipping unreadable entry %s: %v", path, err)
		return false
	}
	return info.Mode().IsRegular()
}

// isReadable reports whether path can be opened for reading.
func (n *Navigator) isReadable(path string) bool {
	f, err := openFile(path)
	if err != nil {
		n.debugf("skipping unreadable file %s: %v", path, err)
		return false
	}
	f.Close()
	return true
}

func (n *Navigator) debugf(format string, args ...interface{}) {
	if n.logger == nil {
		return
	}
	n.logger.LogDebug(fmt.Sprintf(format, args...))
}

// Extension returns the part of name after its last dot, or "" when name has no dot.
func Extension(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return ""
	}
	return name[i+1:]
}
