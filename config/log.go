package config

import (
	"io"
	"log"

	"github.com/gookit/color"
)

// Level tags prepended to log lines.
var (
	InfoTag  = color.Green.Sprint("[INFO]")
	ErrorTag = color.Red.Sprint("[ERROR]")
	FatalTag = color.Red.Sprint("[FATAL]")
)

// Component name colors.
var (
	ColorApp     = color.Green
	ColorService = color.Cyan
	ColorStorage = color.Magenta
	ColorAPI     = color.Blue
)

// NewLogger creates a logger whose lines start with the colored component name.
func NewLogger(name string, c color.Color, w io.Writer) *log.Logger {
	return log.New(w, c.Sprintf("[%s] ", name), log.LstdFlags|log.Lmsgprefix)
}
