package console

import (
	"os"

	"github.com/mattn/go-isatty"
)

// ColorSupport says whether ANSI colour sequences are written.
type ColorSupport int

const (
	Disabled ColorSupport = iota
	Enabled
)

// DetectColor resolves a COLOR setting ("auto", "always" or "never") against
// the terminal f writes to.
func DetectColor(mode string, f *os.File) ColorSupport {
	switch mode {
	case "always":
		return Enabled
	case "never":
		return Disabled
	}
	if f == nil {
		return Disabled
	}
	fd := f.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return Enabled
	}
	return Disabled
}

const reset = "\033[0m"

// Palette styles text for the terminal. The zero value is colourless.
type Palette struct {
	Support ColorSupport
}

func (p Palette) apply(code, text string) string {
	if p.Support != Enabled {
		return text
	}
	return code + text + reset
}

func (p Palette) Success(text string) string { return p.apply("\033[1;92m", text) }
func (p Palette) Info(text string) string    { return p.apply("\033[96m", text) }
func (p Palette) Failure(text string) string { return p.apply("\033[1;91m", text) }
func (p Palette) Header(text string) string  { return p.apply("\033[1;95m", text) }
func (p Palette) Accent(text string) string  { return p.apply("\033[1;96m", text) }
func (p Palette) Subtle(text string) string  { return p.apply("\033[2m", text) }
