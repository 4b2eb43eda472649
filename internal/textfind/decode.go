package textfind

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Decoder turns file bytes into text without ever failing.
//
// A UTF-8 byte order mark is dropped. Input with a UTF-16 byte order mark is
// decoded as UTF-16 when its content is consistent with it. Otherwise valid UTF-8 is used as is, and anything else goes through the
// fallback encoding. The default fallback is UTF-8 with invalid sequences
// replaced by U+FFFD.
type Decoder struct {
	name     string
	fallback encoding.Encoding
}

// NewDecoder returns a Decoder whose fallback is the named encoding
// (IANA names and aliases such as "latin1" or "windows-1252").
// An empty name selects lossy UTF-8.
func NewDecoder(name string) (*Decoder, error) {
	if name == "" {
		return &Decoder{name: "utf-8", fallback: unicode.UTF8}, nil
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
	return &Decoder{name: strings.ToLower(name), fallback: enc}, nil
}

// Name returns the fallback encoding name.
func (d *Decoder) Name() string {
	return d.name
}

// Decode converts b to text.
func (d *Decoder) Decode(b []byte) string {
	if bytes.HasPrefix(b, bomUTF8) {
		b = b[len(bomUTF8):]
	} else if text, ok := decodeUTF16(b); ok {
		return text
	}

	if utf8.Valid(b) {
		return string(b)
	}

	out, _, err := transform.Bytes(d.fallback.NewDecoder(), b)
	if err != nil {
		return strings.ToValidUTF8(string(b), string(utf8.RuneError))
	}
	return string(out)
}

var defaultDecoder = &Decoder{name: "utf-8", fallback: unicode.UTF8}

// DecodeBestEffort converts b to text, substituting U+FFFD for byte
// sequences that are not valid UTF-8.
func DecodeBestEffort(b []byte) string {
	return defaultDecoder.Decode(b)
}

// decodeUTF16 decodes b as UTF-16 when it starts with a UTF-16 byte order
// mark and really looks like UTF-16: an even number of bytes, at least one
// NUL byte (ASCII, spaces and line breaks all produce one) and no invalid
// surrogates. Binary data that merely starts with FF FE or FE FF is left to
// the 8-bit path.
func decodeUTF16(b []byte) (string, bool) {
	var endianness unicode.Endianness
	switch {
	case bytes.HasPrefix(b, bomUTF16LE):
		endianness = unicode.LittleEndian
	case bytes.HasPrefix(b, bomUTF16BE):
		endianness = unicode.BigEndian
	default:
		return "", false
	}

	body := b[len(bomUTF16LE):]
	if len(body)%2 != 0 || bytes.IndexByte(body, 0) < 0 {
		return "", false
	}

	out, _, err := transform.Bytes(unicode.UTF16(endianness, unicode.ExpectBOM).NewDecoder(), b)
	if err != nil || bytes.ContainsRune(out, utf8.RuneError) {
		return "", false
	}
	return string(out), true
}
