// Package search runs a content search over a directory tree.
//
// It wires a fileutil.Navigator to a textfind.TextFinder through a Visitor
// that owns the reporting policy, and summarizes the run.
package search

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harrison/textfinder/internal/fileutil"
	"github.com/harrison/textfinder/internal/textfind"
)

// Config is the immutable configuration of one search.
type Config struct {
	// Pattern is the regular expression searched for in file content
	Pattern string
	// Extensions selects the files to inspect (no leading dot, case-sensitive)
	Extensions []string
	// Recurse enables descending into subdirectories
	Recurse bool
	// HideEmptyDirs suppresses directories without matching files
	HideEmptyDirs bool
	// FallbackEncoding decodes files that are not valid UTF-8 ("" = lossy UTF-8)
	FallbackEncoding string
}

// Logger receives diagnostics about a run.
type Logger interface {
	LogDebug(message string)
	LogInfo(message string)
}

// Summary describes a finished run.
type Summary struct {
	RunID        string
	Root         string
	Pattern      string
	FilesVisited int
	DirsVisited  int
	Matches      int
	Duration     time.Duration
}

// Searcher runs searches with a fixed configuration.
type Searcher struct {
	cfg        Config
	finder     *textfind.TextFinder
	decoder    *textfind.Decoder
	patternErr error
	logger     Logger
}

// New creates a Searcher. An invalid pattern does not fail construction: the
// Searcher then never matches and PatternErr reports why. An unknown fallback
// encoding is an error.
func New(cfg Config, logger Logger) (*Searcher, error) {
	decoder, err := textfind.NewDecoder(cfg.FallbackEncoding)
	if err != nil {
		return nil, err
	}

	matcher, patternErr := textfind.NewMatcher(cfg.Pattern)

	return &Searcher{
		cfg:        cfg,
		finder:     textfind.NewTextFinder(matcher, textfind.NewContentReader(decoder)),
		decoder:    decoder,
		patternErr: patternErr,
		logger:     logger,
	}, nil
}

// PatternErr returns the compile error of the pattern, or nil.
func (s *Searcher) PatternErr() error {
	return s.patternErr
}

// Run searches the tree rooted at root and sends report lines to reporter.
// The returned Summary is never nil; on an invalid root its counts are zero.
func (s *Searcher) Run(root string, reporter Reporter) (*Summary, error) {
	start := time.Now()
	summary := &Summary{
		RunID:   uuid.NewString(),
		Root:    root,
		Pattern: s.cfg.Pattern,
	}

	visitor := NewVisitor(s.finder, reporter, s.cfg.HideEmptyDirs)
	nav := fileutil.NewNavigator(visitor, s.cfg.Recurse)
	if s.logger != nil {
		nav.SetLogger(s.logger)
	}
	for _, ext := range s.cfg.Extensions {
		nav.AddPattern(ext)
	}
	s.debugf("run %s: searching %s for %q in %v (recurse=%t, hide=%t, encoding=%s)",
		summary.RunID, root, s.cfg.Pattern, nav.Patterns(), s.cfg.Recurse, s.cfg.HideEmptyDirs, s.decoder.Name())

	if err := nav.Visit(root); err != nil {
		return summary, fmt.Errorf("search %s: %w", root, err)
	}

	summary.FilesVisited = nav.FilesVisited()
	summary.DirsVisited = nav.DirsVisited()
	summary.Matches = visitor.Matches()
	summary.Duration = time.Since(start)

	if s.logger != nil {
		s.logger.LogInfo(fmt.Sprintf("run %s: %d matches in %d files, %d directories (%s)",
			summary.RunID, summary.Matches, summary.FilesVisited, summary.DirsVisited, summary.Duration))
	}
	return summary, nil
}

func (s *Searcher) debugf(format string, args ...interface{}) {
	if s.logger == nil {
		return
	}
	s.logger.LogDebug(fmt.Sprintf(format, args...))
}
