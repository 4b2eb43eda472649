package textfind

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBestEffort(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{"ascii", []byte("abcdefg"), "abcdefg"},
		{"valid utf-8", []byte("héllo wörld"), "héllo wörld"},
		{"empty", []byte{}, ""},
		{"invalid byte", []byte{'a', 0xFF, 'b'}, "a�b"},
		{"truncated sequence", []byte{'a', 0xC3}, "a�"},
		{"utf-8 bom is dropped", []byte{0xEF, 0xBB, 0xBF, 'h', 'i'}, "hi"},
		{"utf-16le bom", []byte{0xFF, 0xFE, 'h', 0, 'i', 0}, "hi"},
		{"utf-16be bom", []byte{0xFE, 0xFF, 0, 'h', 0, 'i'}, "hi"},
		{"utf-16le cjk with line break", []byte{0xFF, 0xFE, 0x60, 0x4F, 0x7D, 0x59, '\n', 0}, "你好\n"},
		{"binary after utf-16le bom", []byte{0xFF, 0xFE, 'm', 'a', 'g', 'i', 'c', 0x80}, "\uFFFD\uFFFDmagic\uFFFD"},
		{"binary after utf-16be bom", []byte{0xFE, 0xFF, 'm', 'a', 'g', 'i', 'c'}, "\uFFFD\uFFFDmagic"},
		{"odd length after utf-16 bom", []byte{0xFF, 0xFE, 'h', 0, 'i'}, "\uFFFD\uFFFDh\x00i"},
		{"unpaired surrogate after utf-16 bom", []byte{0xFF, 0xFE, 'a', 0, 0x00, 0xD8}, "\uFFFD\uFFFDa\x00\x00\uFFFD"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeBestEffort(tt.input)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestDecodeBestEffort_BinaryIsAlwaysValidText(t *testing.T) {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}
	got := DecodeBestEffort(data)
	assert.True(t, utf8.ValidString(got))
	assert.Contains(t, got, "ABC")
}

func TestNewDecoder(t *testing.T) {
	tests := []struct {
		name     string
		encoding string
		wantName string
		wantErr  bool
	}{
		{"default", "", "utf-8", false},
		{"utf-8", "UTF-8", "utf-8", false},
		{"latin1 alias", "latin1", "latin1", false},
		{"windows-1252", "windows-1252", "windows-1252", false},
		{"unknown", "no-such-encoding", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewDecoder(tt.encoding)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, d)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, d.Name())
		})
	}
}

func TestDecoder_Latin1Fallback(t *testing.T) {
	d, err := NewDecoder("latin1")
	require.NoError(t, err)

	// "café" in ISO-8859-1 is not valid UTF-8.
	assert.Equal(t, "café", d.Decode([]byte{'c', 'a', 'f', 0xE9}))
	// Valid UTF-8 never goes through the fallback.
	assert.Equal(t, "café", d.Decode([]byte("café")))
}
