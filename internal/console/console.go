// Package console is the terminal front end: line input with re-prompt
// loops, ANSI colour, screen clearing and the game's views.
package console

import (
	"io"

	"github.com/vytor/rpsarena/internal/models"
)

// Console bundles input, output and screen control over one terminal.
type Console struct {
	*Input
	*Renderer
	Screen *Screen
}

func New(r io.Reader, w io.Writer, support ColorSupport) *Console {
	pal := Palette{Support: support}
	return &Console{
		Input:    NewInput(r, w, pal),
		Renderer: NewRenderer(w, pal),
		Screen:   NewScreen(w, support),
	}
}

// PressEnter waits for a line, whatever it holds.
func (c *Console) PressEnter() error {
	c.Subtle("Press ENTER to continue...")
	_, err := c.ReadLine("")
	return err
}

func (c *Console) ChooseRuleset() (models.Ruleset, error) {
	c.Section("RULESET")
	c.Options("Classic  (Rock, Paper, Scissors)", "Extended (Rock, Paper, Scissors, Lizard, Spock)")
	n, err := c.ReadChoice("\nSelect ruleset (1-2): ", 1, 2)
	if err != nil {
		return models.Classic, err
	}
	if n == 2 {
		return models.Extended, nil
	}
	return models.Classic, nil
}

func (c *Console) ChooseFormat() (models.MatchFormat, error) {
	c.Section("MATCH FORMAT")
	c.Options("Single round", "Best of N (N odd, e.g. 3, 5, 7)", "First to K wins")
	n, err := c.ReadChoice("\nSelect format (1-3): ", 1, 3)
	if err != nil {
		return models.MatchFormat{}, err
	}
	switch n {
	case 2:
		for {
			v, err := c.ReadNumber("Enter odd N (3,5,7,...): ")
			if err != nil {
				return models.MatchFormat{}, err
			}
			if v >= 1 && v%2 == 1 {
				return models.BestOf(v), nil
			}
			c.Subtle("N must be an odd positive number.")
		}
	case 3:
		for {
			v, err := c.ReadNumber("Enter K (1+): ")
			if err != nil {
				return models.MatchFormat{}, err
			}
			if v >= 1 {
				return models.FirstTo(v), nil
			}
			c.Subtle("K must be at least 1.")
		}
	}
	return models.SingleRound(), nil
}

func (c *Console) ChooseDifficulty() (models.AiDifficulty, error) {
	c.Section("AI DIFFICULTY")
	c.Options("Easy   - random choices", "Normal - counters your favourite move", "Hard   - tracks your recent moves")
	n, err := c.ReadChoice("\nSelect difficulty (1-3): ", 1, 3)
	if err != nil {
		return models.Easy, err
	}
	return models.AiDifficulty(n - 1), nil
}
