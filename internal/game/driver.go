// Package game runs matches: it collects moves from humans and computer
// players, resolves rounds, and settles the scoreboard, history and save
// file when a match finishes or is paused.
package game

import (
	"context"
	"fmt"
	"time"

	"github.com/vytor/rpsarena/internal/ai"
	"github.com/vytor/rpsarena/internal/console"
	"github.com/vytor/rpsarena/internal/errors"
	"github.com/vytor/rpsarena/internal/logger"
	"github.com/vytor/rpsarena/internal/match"
	"github.com/vytor/rpsarena/internal/models"
	"github.com/vytor/rpsarena/internal/services"
)

// End-of-match menu choices.
const (
	choiceRematch uint32 = iota + 1
	choiceChangeSettings
	choiceMainMenu
)

// Result is what a match hands back to the menu.
type Result struct {
	Scoreboard *models.Scoreboard
	// Saved is the paused match when the players chose to save and leave.
	Saved *models.MatchState
}

type Driver struct {
	con        *console.Console
	scoreboard services.ScoreboardService
	saves      services.SaveService
	history    services.HistoryService
	aiOpts     []ai.Option
	now        func() time.Time
}

type Option func(*Driver)

// WithAIOptions is passed to every strategy the driver builds.
func WithAIOptions(opts ...ai.Option) Option {
	return func(d *Driver) { d.aiOpts = append(d.aiOpts, opts...) }
}

func WithClock(now func() time.Time) Option {
	return func(d *Driver) { d.now = now }
}

func NewDriver(con *console.Console, scoreboard services.ScoreboardService, saves services.SaveService, history services.HistoryService, opts ...Option) *Driver {
	d := &Driver{
		con:        con,
		scoreboard: scoreboard,
		saves:      saves,
		history:    history,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run plays state until the players leave. resumed marks a match loaded
// from the save file; that file is removed once the match completes. The
// only error returned is console.ErrInputClosed or a strategy that cannot
// be built.
func (d *Driver) Run(ctx context.Context, state *models.MatchState, board *models.Scoreboard, resumed bool) (Result, error) {
	strategies, err := d.strategies(state)
	if err != nil {
		return Result{Scoreboard: board}, err
	}

	for {
		log := logger.FromContext(ctx).WithPrefix("driver").WithField("match", state.ID)

		d.con.Screen.Clear()
		d.con.RoundHeader(state)

		g1, g2, err := d.collectMoves(state, strategies)
		if err != nil {
			return Result{Scoreboard: board}, err
		}
		result := match.ResolveRound(state, g1, g2)
		log.Debug("round %d: %s vs %s -> %s", state.CurrentRound, g1, g2, result)
		d.con.RoundSummary(state, result)

		if outcome := match.CheckOutcome(state); outcome.Complete {
			d.con.MatchVictory(state, outcome)
			d.settle(ctx, state, board, outcome, resumed)
			resumed = false

			choice, err := d.endOfMatch()
			if err != nil {
				return Result{Scoreboard: board}, err
			}
			switch choice {
			case choiceRematch:
				state.ResetForRematch()
				log.Info("rematch started: new match %s", state.ID)
				continue
			case choiceChangeSettings:
				if state.Ruleset, err = d.con.ChooseRuleset(); err != nil {
					return Result{Scoreboard: board}, err
				}
				if state.Format, err = d.con.ChooseFormat(); err != nil {
					return Result{Scoreboard: board}, err
				}
				state.ResetForRematch()
				log.Info("rematch with new settings: %s, %s", state.Ruleset, state.Format)
				continue
			default:
				return Result{Scoreboard: board}, nil
			}
		}

		state.CurrentRound++

		leave, err := d.con.ReadYesNo("\nSave and return to main menu? (y/n): ")
		if err != nil {
			return Result{Scoreboard: board}, err
		}
		if !leave {
			continue
		}
		if err := d.saves.Pause(ctx, state, board); err != nil {
			d.con.Failure("Could not save the game: " + errors.UserMessage(err))
			continue
		}
		d.con.Success("Game saved. Returning to menu...")
		return Result{Scoreboard: board, Saved: state}, nil
	}
}

func (d *Driver) strategies(state *models.MatchState) ([2]ai.Strategy, error) {
	var out [2]ai.Strategy
	for i, p := range []models.Player{state.Player1, state.Player2} {
		if !p.IsComputer() {
			continue
		}
		s, err := ai.New(p.Type.Difficulty, d.aiOpts...)
		if err != nil {
			return out, fmt.Errorf("player %s: %w", p.Name, err)
		}
		out[i] = s
	}
	return out, nil
}

// collectMoves asks each player for a gesture. A computer reads its
// opponent's history. Two humans sharing the terminal get a cleared screen
// between prompts.
func (d *Driver) collectMoves(state *models.MatchState, strategies [2]ai.Strategy) (models.Gesture, models.Gesture, error) {
	g1, err := d.move(state, 1, strategies[0])
	if err != nil {
		return 0, 0, err
	}
	if !state.Player1.IsComputer() && !state.Player2.IsComputer() {
		d.con.Screen.Clear()
	}
	g2, err := d.move(state, 2, strategies[1])
	if err != nil {
		return 0, 0, err
	}
	return g1, g2, nil
}

func (d *Driver) move(state *models.MatchState, slot int, strategy ai.Strategy) (models.Gesture, error) {
	if strategy != nil {
		return strategy.NextMove(state.Ruleset, state.OpponentHistory(slot)), nil
	}
	player := state.Player1
	if slot == 2 {
		player = state.Player2
	}
	d.con.MovePrompt(player.Name, state.Ruleset)
	return d.con.ReadGesture(">> ", state.Ruleset)
}

// settle records a completed match. Every step is best-effort: failures are
// shown and the game goes on.
func (d *Driver) settle(ctx context.Context, state *models.MatchState, board *models.Scoreboard, outcome models.MatchOutcome, resumed bool) {
	log := logger.FromContext(ctx).WithPrefix("driver").WithField("match", state.ID)
	log.Info("match complete: %s %d-%d %s", state.Player1.Name, state.ScorePlayer1, state.ScorePlayer2, state.Player2.Name)

	if err := d.scoreboard.RecordMatch(ctx, board, state, outcome); err != nil {
		d.con.Failure("Could not save the scoreboard: " + errors.UserMessage(err))
	}
	if err := d.history.Record(ctx, match.Record(state, outcome, d.now().UTC())); err != nil {
		d.con.Subtle("Match history not recorded: " + errors.UserMessage(err))
	}
	if resumed {
		if err := d.saves.Discard(ctx); err != nil {
			d.con.Failure("Could not remove the save file: " + errors.UserMessage(err))
		}
	}
}

func (d *Driver) endOfMatch() (uint32, error) {
	d.con.Section("MATCH COMPLETE")
	d.con.Options("Rematch with same settings", "Change ruleset/format", "Return to main menu")
	return d.con.ReadChoice("Enter choice: ", choiceRematch, choiceMainMenu)
}
