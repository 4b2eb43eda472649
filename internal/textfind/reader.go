package textfind

import (
	"fmt"
	"os"
)

// ContentReader reads a whole file and decodes it with a Decoder.
type ContentReader struct {
	decoder *Decoder
}

// NewContentReader creates a ContentReader. A nil decoder selects lossy UTF-8.
func NewContentReader(decoder *Decoder) *ContentReader {
	if decoder == nil {
		decoder = defaultDecoder
	}
	return &ContentReader{decoder: decoder}
}

// Read returns the best-effort text of the file at path. It only fails when
// the file itself cannot be read.
func (r *ContentReader) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return r.decoder.Decode(data), nil
}
