// Package menu is the interactive shell around matches: the main menu,
// new-match setup, the scoreboard and the match history views.
package menu

import (
	"context"
	"fmt"

	"github.com/vytor/rpsarena/internal/console"
	"github.com/vytor/rpsarena/internal/errors"
	"github.com/vytor/rpsarena/internal/game"
	"github.com/vytor/rpsarena/internal/logger"
	"github.com/vytor/rpsarena/internal/models"
	"github.com/vytor/rpsarena/internal/services"
)

// ComputerName is the display name of every computer opponent.
const ComputerName = "Computer"

type Menu struct {
	con          *console.Console
	driver       *game.Driver
	scoreboard   services.ScoreboardService
	saves        services.SaveService
	history      services.HistoryService
	historyLimit int
	board        *models.Scoreboard
}

func New(con *console.Console, driver *game.Driver, scoreboard services.ScoreboardService, saves services.SaveService, history services.HistoryService, historyLimit int) *Menu {
	return &Menu{
		con:          con,
		driver:       driver,
		scoreboard:   scoreboard,
		saves:        saves,
		history:      history,
		historyLimit: historyLimit,
	}
}

// Run shows the main menu until the player exits. It returns nil on Exit
// and console.ErrInputClosed when stdin ends.
func (m *Menu) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).WithPrefix("menu")
	m.board = m.scoreboard.Load(ctx)

	for {
		m.con.MainMenu()
		choice, err := m.con.ReadNumber("\nEnter choice: ")
		if err != nil {
			return err
		}
		log.Debug("main menu choice: %d", choice)

		switch choice {
		case 1:
			state, err := m.NewMatch()
			if err != nil {
				return err
			}
			if err := m.play(ctx, state, m.board, false); err != nil {
				return err
			}
		case 2:
			state, board, err := m.saves.Resume(ctx)
			if err != nil {
				m.con.Failure("Could not load saved game: " + errors.UserMessage(err))
				continue
			}
			if err := m.play(ctx, state, board, true); err != nil {
				return err
			}
		case 3:
			if err := m.showScoreboard(); err != nil {
				return err
			}
		case 4:
			if err := m.showHistory(ctx); err != nil {
				return err
			}
		case 5:
			m.con.Success("Goodbye!")
			return nil
		default:
			m.con.Failure("Invalid option. Try again.")
		}
	}
}

func (m *Menu) play(ctx context.Context, state *models.MatchState, board *models.Scoreboard, resumed bool) error {
	// the driver owns its copy; the menu adopts whatever comes back
	res, err := m.driver.Run(ctx, state, board.Clone(), resumed)
	if res.Scoreboard != nil {
		m.board = res.Scoreboard
	}
	return err
}

// NewMatch walks the players through match setup.
func (m *Menu) NewMatch() (*models.MatchState, error) {
	c := m.con
	c.Section("CREATE NEW MATCH")
	c.Info("Player 1, enter your name:")
	name1, err := c.ReadNonEmpty(">> ")
	if err != nil {
		return nil, err
	}

	c.Section("GAME MODE")
	c.Options("Single Player  (vs Computer)", "Multiplayer    (local PvP)")
	mode, err := c.ReadChoice("\nSelect game mode (1-2): ", 1, 2)
	if err != nil {
		return nil, err
	}

	player1 := models.NewHuman(name1)
	var player2 models.Player
	if mode == 1 {
		d, err := c.ChooseDifficulty()
		if err != nil {
			return nil, err
		}
		player2 = models.NewComputer(ComputerName, d)
	} else {
		c.Println()
		c.Info("Player 2, enter your name:")
		name2, err := c.ReadNonEmpty(">> ")
		if err != nil {
			return nil, err
		}
		player2 = models.NewHuman(name2)
	}

	ruleset, err := c.ChooseRuleset()
	if err != nil {
		return nil, err
	}
	format, err := c.ChooseFormat()
	if err != nil {
		return nil, err
	}

	c.Section("MATCH READY")
	c.Println(c.Palette().Accent("Players:"), player1.Name, "vs", player2.Name)
	c.Println(c.Palette().Accent("Ruleset:"), ruleset)
	c.Println(c.Palette().Accent("Format:"), format)
	if player2.IsComputer() {
		c.Println(c.Palette().Accent("AI Difficulty:"), player2.Type.Difficulty)
	}
	c.Println()
	if err := c.PressEnter(); err != nil {
		return nil, err
	}
	return models.NewMatchState(player1, player2, ruleset, format), nil
}

func (m *Menu) showScoreboard() error {
	m.con.Section("SORT SCOREBOARD")
	m.con.Options("Matches won", "Win rate")
	choice, err := m.con.ReadNumber("Enter choice: ")
	if err != nil {
		return err
	}
	switch choice {
	case 1:
		m.con.Scoreboard("SCOREBOARD", m.board.SortedByWins())
	case 2:
		m.con.Scoreboard("SCOREBOARD BY WIN RATE", m.board.SortedByWinRate())
	default:
		m.con.Failure("Invalid choice.")
	}
	return nil
}

func (m *Menu) showHistory(ctx context.Context) error {
	if !m.history.Enabled() {
		m.con.Subtle("Match history is disabled.")
		return nil
	}
	for {
		m.con.Section("MATCH HISTORY")
		m.con.Options("Recent matches", "Gesture breakdown", "Head to head", "Back")
		choice, err := m.con.ReadChoice("Enter choice: ", 1, 4)
		if err != nil {
			return err
		}
		switch choice {
		case 1:
			err = m.recentMatches(ctx)
		case 2:
			err = m.gestureBreakdown(ctx)
		case 3:
			err = m.headToHead(ctx)
		default:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (m *Menu) recentMatches(ctx context.Context) error {
	player, err := m.con.ReadLine("Player name (empty for everyone): ")
	if err != nil {
		return err
	}
	records, err := m.history.Recent(ctx, player, m.historyLimit)
	if err != nil {
		m.con.Failure("Could not load match history: " + errors.UserMessage(err))
		return nil
	}
	m.con.MatchList(records)
	if len(records) == 0 {
		return nil
	}

	n, err := m.con.ReadChoice(fmt.Sprintf("Match number for details (0 to go back, up to %d): ", len(records)), 0, uint32(len(records)))
	if err != nil || n == 0 {
		return err
	}
	rec, err := m.history.Match(ctx, records[n-1].ID)
	if err != nil {
		m.con.Failure("Could not load match: " + errors.UserMessage(err))
		return nil
	}
	m.con.MatchDetail(rec)
	return nil
}

func (m *Menu) gestureBreakdown(ctx context.Context) error {
	player, err := m.con.ReadNonEmpty("Player name: ")
	if err != nil {
		return err
	}
	stats, err := m.history.GestureBreakdown(ctx, player)
	if err != nil {
		m.con.Failure("Could not load gesture stats: " + errors.UserMessage(err))
		return nil
	}
	m.con.GestureBreakdown(player, stats)
	return nil
}

func (m *Menu) headToHead(ctx context.Context) error {
	a, err := m.con.ReadNonEmpty("First player: ")
	if err != nil {
		return err
	}
	b, err := m.con.ReadNonEmpty("Second player: ")
	if err != nil {
		return err
	}
	h, err := m.history.HeadToHead(ctx, a, b)
	if err != nil {
		m.con.Failure("Could not compare players: " + errors.UserMessage(err))
		return nil
	}
	m.con.HeadToHead(h)
	return nil
}
