package display

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/harrison/textfinder/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporter_Plain(t *testing.T) {
	var buf bytes.Buffer
	rep := NewReporter(&buf, ColorNever)

	rep.ReportDir("/tmp/root")
	rep.ReportFile("a.txt")
	rep.ReportFile("b.rs")
	rep.ReportDir("/tmp/root/sub")
	rep.ReportFile("c.txt")
	rep.Summary(&search.Summary{FilesVisited: 5, DirsVisited: 3, Matches: 3, Duration: time.Millisecond})

	want := "/tmp/root\n" +
		"    a.txt\n" +
		"    b.rs\n" +
		"/tmp/root/sub\n" +
		"    c.txt\n" +
		"\nprocessed 5 files in 3 directories, 3 matches\n"
	assert.Equal(t, want, buf.String())
	assert.NoError(t, rep.Err())
}

func TestReporter_SummaryWording(t *testing.T) {
	tests := []struct {
		matches int
		want    string
	}{
		{0, "0 matches"},
		{1, "1 match"},
		{7, "7 matches"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			var buf bytes.Buffer
			NewReporter(&buf, ColorNever).Summary(&search.Summary{Matches: tt.matches})
			assert.True(t, strings.HasSuffix(buf.String(), tt.want+"\n"), "got %q", buf.String())
		})
	}
}

func TestReporter_NilSummary(t *testing.T) {
	var buf bytes.Buffer
	NewReporter(&buf, ColorNever).Summary(nil)
	assert.Empty(t, buf.String())
}

func TestReporter_ColorAlways(t *testing.T) {
	var buf bytes.Buffer
	rep := NewReporter(&buf, ColorAlways)
	rep.ReportDir("/tmp/root")
	rep.ReportFile("a.txt")

	out := buf.String()
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "/tmp/root")
	assert.Contains(t, out, "a.txt")
}

func TestReporter_AutoColorOnBufferIsPlain(t *testing.T) {
	var buf bytes.Buffer
	rep := NewReporter(&buf, ColorAuto)
	rep.ReportDir("/tmp/root")

	assert.Equal(t, "/tmp/root\n", buf.String())
}

type failingWriter struct {
	writes int
}

func (f *failingWriter) Write(p []byte) (int, error) {
	f.writes++
	return 0, errors.New("disk full")
}

func TestReporter_StopsAfterWriteError(t *testing.T) {
	w := &failingWriter{}
	rep := NewReporter(w, ColorNever)

	rep.ReportDir("/a")
	rep.ReportFile("b")
	rep.ReportFile("c")

	require.Error(t, rep.Err())
	assert.Contains(t, rep.Err().Error(), "disk full")
	assert.Equal(t, 1, w.writes)
}
