package match

import (
	"time"

	"github.com/vytor/rpsarena/internal/models"
	"github.com/vytor/rpsarena/internal/rules"
)

// ResolveRound applies one round to state: both moves become the last moves,
// both are appended to the histories, and the winner's score goes up by one.
// Legality is the caller's job. The round counter is left alone; the driver
// advances it once it knows the match continues.
func ResolveRound(state *models.MatchState, g1, g2 models.Gesture) models.RoundResult {
	m1, m2 := g1, g2
	state.LastMovePlayer1 = &m1
	state.LastMovePlayer2 = &m2
	state.HistoryPlayer1 = append(state.HistoryPlayer1, g1)
	state.HistoryPlayer2 = append(state.HistoryPlayer2, g2)

	result := rules.Compare(g1, g2)
	switch result {
	case models.Player1Win:
		state.ScorePlayer1++
	case models.Player2Win:
		state.ScorePlayer2++
	}
	return result
}

// CheckOutcome reports whether either player has reached the format's win
// target. A level score at that point is a drawn match with no winner.
func CheckOutcome(state *models.MatchState) models.MatchOutcome {
	required := state.Format.RequiredWins()
	if state.ScorePlayer1 < required && state.ScorePlayer2 < required {
		return models.MatchOutcome{}
	}

	out := models.MatchOutcome{Complete: true, Result: models.Tie}
	switch {
	case state.ScorePlayer1 > state.ScorePlayer2:
		out.Result = models.Player1Win
		out.Winner = &state.Player1
	case state.ScorePlayer2 > state.ScorePlayer1:
		out.Result = models.Player2Win
		out.Winner = &state.Player2
	}
	return out
}

// WinsToGo returns how many more round wins each player needs.
func WinsToGo(state *models.MatchState) (uint32, uint32) {
	required := state.Format.RequiredWins()
	return saturatingSub(required, state.ScorePlayer1), saturatingSub(required, state.ScorePlayer2)
}

func saturatingSub(a, b uint32) uint32 {
	if b >= a {
		return 0
	}
	return a - b
}

// Record builds the history entry for a finished match.
func Record(state *models.MatchState, outcome models.MatchOutcome, finishedAt time.Time) models.MatchRecord {
	rec := models.MatchRecord{
		ID:           state.ID,
		Player1:      state.Player1,
		Player2:      state.Player2,
		Ruleset:      state.Ruleset,
		Format:       state.Format,
		ScorePlayer1: state.ScorePlayer1,
		ScorePlayer2: state.ScorePlayer2,
		StartedAt:    state.StartedAt,
		FinishedAt:   finishedAt,
	}
	if outcome.Winner != nil {
		rec.Winner = outcome.Winner.Name
	}

	n := len(state.HistoryPlayer1)
	if len(state.HistoryPlayer2) < n {
		n = len(state.HistoryPlayer2)
	}
	rec.Rounds = make([]models.RoundRecord, 0, n)
	for i := 0; i < n; i++ {
		g1, g2 := state.HistoryPlayer1[i], state.HistoryPlayer2[i]
		rec.Rounds = append(rec.Rounds, models.RoundRecord{
			Number:      i + 1,
			Player1Move: g1,
			Player2Move: g2,
			Result:      rules.Compare(g1, g2),
		})
	}
	return rec
}
