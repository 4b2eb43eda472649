package display

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ColorMode selects when output is colored.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// UseColor resolves mode for the given writer.
func UseColor(w io.Writer, mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// palette holds the colors used in reports. Each color is forced on or off
// so output does not depend on fatih/color's global detection.
type palette struct {
	dir     *color.Color
	file    *color.Color
	label   *color.Color
	success *color.Color
	warn    *color.Color
}

func newPalette(enabled bool) *palette {
	p := &palette{
		dir:     color.New(color.FgCyan, color.Bold),
		file:    color.New(color.FgGreen),
		label:   color.New(color.FgHiBlack),
		success: color.New(color.FgGreen),
		warn:    color.New(color.FgYellow),
	}
	for _, c := range []*color.Color{p.dir, p.file, p.label, p.success, p.warn} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}
