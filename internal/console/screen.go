package console

import (
	"io"
	"strings"
)

const blankLines = 40

// Screen clears the visible terminal between views.
type Screen struct {
	out     io.Writer
	support ColorSupport
}

func NewScreen(out io.Writer, support ColorSupport) *Screen {
	return &Screen{out: out, support: support}
}

// Clear homes the cursor and erases the display. Without ANSI support it
// scrolls the previous view out of sight instead.
func (s *Screen) Clear() {
	if s.support == Enabled {
		io.WriteString(s.out, "\033[H\033[2J")
		return
	}
	io.WriteString(s.out, strings.Repeat("\n", blankLines))
}
