package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	FormatSingleRound = "single_round"
	FormatBestOf      = "best_of"
	FormatFirstTo     = "first_to"
)

// MatchFormat decides how many round wins end a match. N is the round count
// for BestOf and the win target for FirstTo; it is ignored for SingleRound.
type MatchFormat struct {
	Kind string `json:"kind"`
	N    uint32 `json:"n,omitempty"`
}

func SingleRound() MatchFormat { return MatchFormat{Kind: FormatSingleRound} }

// BestOf expects an odd n; even values are accepted and round down.
func BestOf(n uint32) MatchFormat { return MatchFormat{Kind: FormatBestOf, N: n} }

func FirstTo(k uint32) MatchFormat { return MatchFormat{Kind: FormatFirstTo, N: k} }

// RequiredWins is the number of round wins that ends the match.
func (f MatchFormat) RequiredWins() uint32 {
	switch f.Kind {
	case FormatBestOf:
		return f.N/2 + 1
	case FormatFirstTo:
		return f.N
	default:
		return 1
	}
}

func (f MatchFormat) String() string {
	switch f.Kind {
	case FormatBestOf:
		return fmt.Sprintf("Best of %d", f.N)
	case FormatFirstTo:
		return fmt.Sprintf("First to %d", f.N)
	default:
		return "Single round"
	}
}

func (f *MatchFormat) UnmarshalJSON(data []byte) error {
	type plain MatchFormat
	var raw plain
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch raw.Kind {
	case FormatSingleRound:
		raw.N = 0
	case FormatBestOf, FormatFirstTo:
	default:
		return fmt.Errorf("unknown match format %q", raw.Kind)
	}
	*f = MatchFormat(raw)
	return nil
}

// MatchState is everything needed to continue a match, and is what gets
// written to the save file. HistoryPlayer1 and HistoryPlayer2 always have
// one entry per resolved round.
type MatchState struct {
	ID              string      `json:"id"`
	Player1         Player      `json:"player1"`
	Player2         Player      `json:"player2"`
	Ruleset         Ruleset     `json:"ruleset"`
	Format          MatchFormat `json:"match_format"`
	ScorePlayer1    uint32      `json:"score_player1"`
	ScorePlayer2    uint32      `json:"score_player2"`
	CurrentRound    uint32      `json:"current_round"`
	LastMovePlayer1 *Gesture    `json:"last_move_p1"`
	LastMovePlayer2 *Gesture    `json:"last_move_p2"`
	HistoryPlayer1  []Gesture   `json:"history_p1"`
	HistoryPlayer2  []Gesture   `json:"history_p2"`
	StartedAt       time.Time   `json:"started_at"`
}

// NewMatchState starts a fresh match at round 1 with zero scores.
func NewMatchState(p1, p2 Player, ruleset Ruleset, format MatchFormat) *MatchState {
	return &MatchState{
		ID:             uuid.NewString(),
		Player1:        p1,
		Player2:        p2,
		Ruleset:        ruleset,
		Format:         format,
		CurrentRound:   1,
		HistoryPlayer1: []Gesture{},
		HistoryPlayer2: []Gesture{},
		StartedAt:      time.Now().UTC(),
	}
}

// ResetForRematch clears scores, round counter, last moves and histories.
// Players, ruleset and format are kept. The rematch is a new match for
// history purposes, so it gets a new ID.
func (s *MatchState) ResetForRematch() {
	s.ID = uuid.NewString()
	s.ScorePlayer1 = 0
	s.ScorePlayer2 = 0
	s.CurrentRound = 1
	s.LastMovePlayer1 = nil
	s.LastMovePlayer2 = nil
	s.HistoryPlayer1 = []Gesture{}
	s.HistoryPlayer2 = []Gesture{}
	s.StartedAt = time.Now().UTC()
}

// RoundsPlayed counts resolved rounds.
func (s *MatchState) RoundsPlayed() int {
	return len(s.HistoryPlayer1)
}

// Ties counts resolved rounds that neither player won.
func (s *MatchState) Ties() int {
	ties := s.RoundsPlayed() - int(s.ScorePlayer1) - int(s.ScorePlayer2)
	if ties < 0 {
		return 0
	}
	return ties
}

// OpponentHistory returns the move history of the player facing slot
// (1 or 2). A computer in slot 1 reads player 2's moves and vice versa.
func (s *MatchState) OpponentHistory(slot int) []Gesture {
	if slot == 1 {
		return s.HistoryPlayer2
	}
	return s.HistoryPlayer1
}

// MatchOutcome describes whether a match has ended and who took it.
// Result is Tie when the match ended level or is still running.
type MatchOutcome struct {
	Complete bool
	Result   RoundResult
	Winner   *Player
}
