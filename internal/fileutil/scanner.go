package fileutil

import (
	"fmt"
	"path/filepath"
)

// ScanOptions configures the directory scanning behavior
type ScanOptions struct {
	// Extensions is a list of file extensions to include (e.g., "txt", "rs").
	// An empty list includes every regular file.
	Extensions []string
	// Recursive enables recursive directory scanning
	Recursive bool
}

// ScanResult contains the results of a directory scan
type ScanResult struct {
	// Dirs contains the absolute paths of all visited directories, in visit order
	Dirs []string
	// Files contains the absolute paths of all matched files, in visit order
	Files []string
}

// ScanDirectory lists the files a Navigator configured with opts would dispatch,
// without looking at their content.
func ScanDirectory(dir string, opts ScanOptions) (*ScanResult, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", dir, err)
	}

	c := &collector{result: &ScanResult{
		Dirs:  make([]string, 0),
		Files: make([]string, 0),
	}}

	nav := NewNavigator(c, opts.Recursive)
	for _, ext := range opts.Extensions {
		nav.AddPattern(ext)
	}

	if err := nav.Visit(absDir); err != nil {
		return nil, err
	}
	return c.result, nil
}

// collector is a Visitor that records every event.
type collector struct {
	current string
	result  *ScanResult
}

func (c *collector) OnDir(path string) {
	c.current = path
	c.result.Dirs = append(c.result.Dirs, path)
}

func (c *collector) OnFile(name string) {
	c.result.Files = append(c.result.Files, filepath.Join(c.current, name))
}
