package textfind

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidPattern is returned when a regular expression does not compile.
var ErrInvalidPattern = errors.New("invalid pattern")

// Matcher wraps a compiled regular expression. It is immutable and safe for
// concurrent use.
type Matcher struct {
	pattern string
	re      *regexp.Regexp
}

// NewMatcher compiles pattern. When the pattern is invalid it returns a Matcher
// that never matches together with an error wrapping ErrInvalidPattern, so
// callers can warn and carry on.
func NewMatcher(pattern string) (*Matcher, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return &Matcher{pattern: pattern}, fmt.Errorf("%w %q: %v", ErrInvalidPattern, pattern, err)
	}
	return &Matcher{pattern: pattern, re: re}, nil
}

// IsMatch reports whether text contains at least one match anywhere.
func (m *Matcher) IsMatch(text string) bool {
	if m == nil || m.re == nil {
		return false
	}
	return m.re.MatchString(text)
}

// Valid reports whether the pattern compiled.
func (m *Matcher) Valid() bool {
	return m != nil && m.re != nil
}

// String returns the source pattern.
func (m *Matcher) String() string {
	if m == nil {
		return ""
	}
	return m.pattern
}
