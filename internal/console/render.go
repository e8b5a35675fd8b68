package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/vytor/rpsarena/internal/ai"
	"github.com/vytor/rpsarena/internal/match"
	"github.com/vytor/rpsarena/internal/models"
	"github.com/vytor/rpsarena/internal/rules"
)

const divider = "============================================"

// Renderer prints the game's views.
type Renderer struct {
	out io.Writer
	pal Palette
}

func NewRenderer(out io.Writer, pal Palette) *Renderer {
	return &Renderer{out: out, pal: pal}
}

func (r *Renderer) Palette() Palette { return r.pal }

func (r *Renderer) Println(a ...any) {
	fmt.Fprintln(r.out, a...)
}

func (r *Renderer) Printf(format string, a ...any) {
	fmt.Fprintf(r.out, format, a...)
}

// Section prints a titled block header.
func (r *Renderer) Section(title string) {
	r.Println()
	r.Println(divider)
	r.Println(r.pal.Header(" " + title + " "))
	r.Println(divider)
}

// Options prints a numbered list starting at 1.
func (r *Renderer) Options(options ...string) {
	for i, opt := range options {
		r.Println(r.pal.Accent(fmt.Sprintf("%d)", i+1)), opt)
	}
}

func (r *Renderer) Success(msg string) { r.Println(r.pal.Success(msg)) }
func (r *Renderer) Info(msg string)    { r.Println(r.pal.Info(msg)) }
func (r *Renderer) Failure(msg string) { r.Println(r.pal.Failure(msg)) }
func (r *Renderer) Subtle(msg string)  { r.Println(r.pal.Subtle(msg)) }

func (r *Renderer) MainMenu() {
	r.Section("MAIN MENU")
	r.Options("Start New Game", "Continue Saved Game", "View Scoreboard", "Match History", "Exit")
}

func (r *Renderer) RoundHeader(state *models.MatchState) {
	r.Println()
	r.Println(divider)
	r.Printf("     ROUND %d - %s vs %s\n", state.CurrentRound, state.Player1.Name, state.Player2.Name)
	r.Println(divider)
	r.Println()
	r.Printf("Score:  %s %d  -  %d %s\n", state.Player1.Name, state.ScorePlayer1, state.ScorePlayer2, state.Player2.Name)
	r.Printf("%s (%d wins needed)\n\n", state.Format, state.Format.RequiredWins())
}

// MovePrompt lists the gestures legal under ruleset for player.
func (r *Renderer) MovePrompt(player string, ruleset models.Ruleset) {
	r.Println()
	r.Println(r.pal.Accent("PLAYER:"), player)
	r.Println()
	for i, g := range rules.LegalSet(ruleset) {
		r.Printf("   %d. %s\n", i+1, strings.ToUpper(g.String()))
	}
	r.Println()
}

func (r *Renderer) RoundSummary(state *models.MatchState, result models.RoundResult) {
	r.Section("ROUND SUMMARY")
	r.Println()
	if state.LastMovePlayer1 != nil && state.LastMovePlayer2 != nil {
		r.Println(r.pal.Accent(state.Player1.Name+":"), state.LastMovePlayer1.String())
		r.Println(r.pal.Accent(state.Player2.Name+":"), state.LastMovePlayer2.String())
		r.Println()
	}

	switch result {
	case models.Player1Win:
		r.Success(fmt.Sprintf(">> %s wins the round!", state.Player1.Name))
	case models.Player2Win:
		r.Success(fmt.Sprintf(">> %s wins the round!", state.Player2.Name))
	default:
		r.Info(">> The round is a tie.")
	}

	r.Println()
	r.Printf("%s  %s %d  -  %s %d\n", r.pal.Accent("Score:"),
		state.Player1.Name, state.ScorePlayer1, state.Player2.Name, state.ScorePlayer2)
	toGo1, toGo2 := match.WinsToGo(state)
	r.Printf("%s %s needs %d, %s needs %d\n\n", r.pal.Subtle("Wins to go:"),
		state.Player1.Name, toGo1, state.Player2.Name, toGo2)
}

func (r *Renderer) MatchVictory(state *models.MatchState, outcome models.MatchOutcome) {
	r.Println()
	r.Println(divider)
	if outcome.Winner != nil {
		r.Println(r.pal.Header(" VICTORY "))
		r.Success(fmt.Sprintf("%s wins the match!", outcome.Winner.Name))
	} else {
		r.Println(r.pal.Header(" DRAW "))
		r.Info("The match ended in a tie.")
	}
	r.Printf("%s %s %d  -  %s %d\n", r.pal.Accent("Final Score:"),
		state.Player1.Name, state.ScorePlayer1, state.Player2.Name, state.ScorePlayer2)

	if rounds := state.RoundsPlayed(); rounds > 0 {
		r.Printf("%s total rounds = %d, %s won %d, %s won %d, ties %d\n", r.pal.Subtle("Summary:"),
			rounds, state.Player1.Name, state.ScorePlayer1, state.Player2.Name, state.ScorePlayer2, state.Ties())
		if g, ok := ai.MostFrequent(state.HistoryPlayer1); ok {
			r.Printf("%s %s most played: %s\n", r.pal.Subtle("-"), state.Player1.Name, g)
		}
		if g, ok := ai.MostFrequent(state.HistoryPlayer2); ok {
			r.Printf("%s %s most played: %s\n", r.pal.Subtle("-"), state.Player2.Name, g)
		}
	}
	r.Println(divider)
}

func (r *Renderer) Scoreboard(title string, entries []models.ScoreboardEntry) {
	r.Section(title)
	if len(entries) == 0 {
		r.Subtle("No player statistics yet.")
		return
	}
	r.Printf("%-20s %10s %10s %10s\n", "Player", "Matches", "Wins", "Win %")
	r.Println(divider)
	for _, e := range entries {
		r.Printf("%-20s %10d %10d %9.2f%%\n", e.Name, e.Stats.MatchesPlayed, e.Stats.MatchesWon, e.Stats.WinRate()*100)
	}
}

func (r *Renderer) MatchList(records []models.MatchRecord) {
	if len(records) == 0 {
		r.Subtle("No matches recorded yet.")
		return
	}
	for i, rec := range records {
		winner := rec.Winner
		if winner == "" {
			winner = "tie"
		}
		r.Printf("%s %s  %s %d - %d %s  [%s, %s]  winner: %s\n",
			r.pal.Accent(fmt.Sprintf("%2d)", i+1)),
			rec.FinishedAt.Local().Format("2006-01-02 15:04"),
			rec.Player1.Name, rec.ScorePlayer1, rec.ScorePlayer2, rec.Player2.Name,
			rec.Ruleset, rec.Format, winner)
	}
}

func (r *Renderer) MatchDetail(rec *models.MatchRecord) {
	r.Section(fmt.Sprintf("%s vs %s", rec.Player1.Name, rec.Player2.Name))
	r.Printf("%s %s, %s\n", r.pal.Accent("Settings:"), rec.Ruleset, rec.Format)
	r.Printf("%s %d - %d\n", r.pal.Accent("Score:"), rec.ScorePlayer1, rec.ScorePlayer2)
	for _, rd := range rec.Rounds {
		outcome := "tie"
		switch rd.Result {
		case models.Player1Win:
			outcome = rec.Player1.Name
		case models.Player2Win:
			outcome = rec.Player2.Name
		}
		r.Printf("  round %-3d %-9s vs %-9s -> %s\n", rd.Number, rd.Player1Move, rd.Player2Move, outcome)
	}
}

func (r *Renderer) GestureBreakdown(player string, stats []models.GestureStat) {
	r.Section("GESTURES: " + player)
	if len(stats) == 0 {
		r.Subtle("No rounds recorded for this player.")
		return
	}
	for _, st := range stats {
		r.Printf("%-10s %6d %7.1f%%\n", st.Gesture, st.Count, st.Share*100)
	}
}

func (r *Renderer) HeadToHead(h *models.HeadToHead) {
	r.Section(fmt.Sprintf("%s vs %s", h.PlayerA, h.PlayerB))
	if h.Matches == 0 {
		r.Subtle("These players have not met yet.")
		return
	}
	r.Printf("Matches: %d  %s: %d  %s: %d  ties: %d\n", h.Matches, h.PlayerA, h.WinsA, h.PlayerB, h.WinsB, h.Ties)
}
