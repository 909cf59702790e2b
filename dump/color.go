package dump

import (
	"io"
	"os"
)

// Color identifies one of the visual categories the printer distinguishes.
// How (or whether) a category maps to an actual color is up to the Sink.
type Color int

const (
	ColorDefault Color = iota
	ColorKey
	ColorString
	ColorNumber
	ColorTable
	ColorFunc
	ColorTrue
	ColorFalse
)

// Sink is the text/color destination a Printer writes to. WriteText
// appends raw text to the current line; SetColor changes the color of
// subsequently written text until the next call. The printer never
// manages a sink's lifecycle.
type Sink interface {
	WriteText(s string)
	SetColor(c Color)
}

// ansiCodes maps each category to an ANSI escape sequence. true and
// false get distinct colors; the bold variants keep booleans apart from
// strings and numbers.
var ansiCodes = map[Color]string{
	ColorDefault: "\033[0m",
	ColorKey:     "\033[36m",
	ColorString:  "\033[32m",
	ColorNumber:  "\033[33m",
	ColorTable:   "\033[35m",
	ColorFunc:    "\033[34m",
	ColorTrue:    "\033[1;32m",
	ColorFalse:   "\033[1;31m",
}

// ANSISink is a Sink that writes ANSI escape sequences to W.
// Set Enabled to false to suppress the escapes (e.g. for non-TTY output);
// text still goes through untouched.
type ANSISink struct {
	W       io.Writer
	Enabled bool
}

// WriteText appends raw text to W.
func (s *ANSISink) WriteText(text string) {
	io.WriteString(s.W, text)
}

// SetColor emits the escape sequence for c when Enabled.
func (s *ANSISink) SetColor(c Color) {
	if !s.Enabled {
		return
	}
	io.WriteString(s.W, ansiCodes[c])
}

// Stdout returns a Printer over a colored stdout sink.
func Stdout() *Printer {
	return &Printer{Sink: &ANSISink{W: os.Stdout, Enabled: true}}
}
