// Package textfind decides whether a file's content matches a regular expression.
//
// Files are read completely, decoded permissively (see Decoder) and tested with
// an unanchored search. Failures never escape Find: an unreadable file or an
// invalid pattern simply means "no match".
package textfind

// TextFinder tests files against one compiled pattern. It holds no mutable
// state, so a single TextFinder may be shared between goroutines.
type TextFinder struct {
	matcher *Matcher
	reader  *ContentReader
}

// NewTextFinder combines a Matcher and a ContentReader. A nil reader selects
// lossy UTF-8 decoding.
func NewTextFinder(matcher *Matcher, reader *ContentReader) *TextFinder {
	if reader == nil {
		reader = NewContentReader(nil)
	}
	return &TextFinder{matcher: matcher, reader: reader}
}

// Find reports whether the file at path contains a match.
func (f *TextFinder) Find(path string) bool {
	if !f.matcher.Valid() {
		return false
	}
	text, err := f.reader.Read(path)
	if err != nil {
		return false
	}
	return f.matcher.IsMatch(text)
}

// Pattern returns the source regular expression.
func (f *TextFinder) Pattern() string {
	return f.matcher.String()
}
