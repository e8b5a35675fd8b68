package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vytor/rpsarena/internal/models"
	"github.com/vytor/rpsarena/internal/rules"
)

// ErrInputClosed is returned once the input stream ends. Nothing can be
// read after it, so callers unwind to main.
var ErrInputClosed = errors.New("input closed")

// Input reads trimmed lines, re-prompting until a line parses.
type Input struct {
	reader *bufio.Reader
	out    io.Writer
	pal    Palette
}

func NewInput(r io.Reader, out io.Writer, pal Palette) *Input {
	return &Input{reader: bufio.NewReader(r), out: out, pal: pal}
}

// ReadLine prints prompt and returns the next line with surrounding
// whitespace removed. Lines of any length are accepted; a final line
// without a trailing newline still counts.
func (in *Input) ReadLine(prompt string) (string, error) {
	fmt.Fprint(in.out, prompt)
	line, err := in.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: %v", ErrInputClosed, err)
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}
	return strings.TrimSpace(line), nil
}

func (in *Input) ReadNonEmpty(prompt string) (string, error) {
	for {
		line, err := in.ReadLine(prompt)
		if err != nil {
			return "", err
		}
		if line != "" {
			return line, nil
		}
		fmt.Fprintln(in.out, in.pal.Subtle("Input cannot be empty. Please try again."))
	}
}

func (in *Input) ReadNumber(prompt string) (uint32, error) {
	for {
		line, err := in.ReadLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.ParseUint(line, 10, 32)
		if err == nil {
			return uint32(n), nil
		}
		fmt.Fprintln(in.out, in.pal.Subtle("Please enter a valid number."))
	}
}

// ReadChoice reads a number in [min, max].
func (in *Input) ReadChoice(prompt string, min, max uint32) (uint32, error) {
	for {
		n, err := in.ReadNumber(prompt)
		if err != nil {
			return 0, err
		}
		if n >= min && n <= max {
			return n, nil
		}
		fmt.Fprintln(in.out, in.pal.Subtle(fmt.Sprintf("Please enter a number from %d to %d.", min, max)))
	}
}

// ReadYesNo is true for "y" or "yes" in any case and false for anything else.
func (in *Input) ReadYesNo(prompt string) (bool, error) {
	line, err := in.ReadLine(prompt)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

func (in *Input) ReadGesture(prompt string, ruleset models.Ruleset) (models.Gesture, error) {
	for {
		line, err := in.ReadLine(prompt)
		if err != nil {
			return 0, err
		}
		if g, ok := rules.ParseGesture(line, ruleset); ok {
			return g, nil
		}
		fmt.Fprintln(in.out, in.pal.Failure("Invalid input. "+rules.Hint(ruleset)))
	}
}
