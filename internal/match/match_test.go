package match_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/rpsarena/internal/match"
	"github.com/vytor/rpsarena/internal/models"
)

func newState(format models.MatchFormat) *models.MatchState {
	return models.NewMatchState(
		models.NewHuman("alice"),
		models.NewComputer("Computer", models.Hard),
		models.Extended,
		format,
	)
}

func TestResolveRound_Player1Win(t *testing.T) {
	state := newState(models.BestOf(3))

	result := match.ResolveRound(state, models.Rock, models.Scissors)

	assert.Equal(t, models.Player1Win, result)
	assert.Equal(t, uint32(1), state.ScorePlayer1)
	assert.Equal(t, uint32(0), state.ScorePlayer2)
	require.NotNil(t, state.LastMovePlayer1)
	require.NotNil(t, state.LastMovePlayer2)
	assert.Equal(t, models.Rock, *state.LastMovePlayer1)
	assert.Equal(t, models.Scissors, *state.LastMovePlayer2)
	assert.Equal(t, uint32(1), state.CurrentRound, "resolver must not advance the round")
}

func TestResolveRound_Player2Win(t *testing.T) {
	state := newState(models.BestOf(3))

	result := match.ResolveRound(state, models.Lizard, models.Rock)

	assert.Equal(t, models.Player2Win, result)
	assert.Equal(t, uint32(0), state.ScorePlayer1)
	assert.Equal(t, uint32(1), state.ScorePlayer2)
}

func TestResolveRound_TieLeavesScores(t *testing.T) {
	state := newState(models.BestOf(3))

	result := match.ResolveRound(state, models.Spock, models.Spock)

	assert.Equal(t, models.Tie, result)
	assert.Equal(t, uint32(0), state.ScorePlayer1)
	assert.Equal(t, uint32(0), state.ScorePlayer2)
	assert.Len(t, state.HistoryPlayer1, 1)
}

func TestResolveRound_OutOfDomainIsTie(t *testing.T) {
	state := newState(models.BestOf(3))

	result := match.ResolveRound(state, models.Gesture(7), models.Gesture(8))

	assert.Equal(t, models.Tie, result)
	assert.Equal(t, uint32(0), state.ScorePlayer1+state.ScorePlayer2)
}

func TestResolveRound_HistoryAppendOnly(t *testing.T) {
	state := newState(models.FirstTo(100))
	p1 := []models.Gesture{models.Rock, models.Paper, models.Lizard, models.Rock, models.Spock}
	p2 := []models.Gesture{models.Paper, models.Paper, models.Scissors, models.Spock, models.Rock}

	for i := range p1 {
		match.ResolveRound(state, p1[i], p2[i])
		assert.Len(t, state.HistoryPlayer1, i+1)
		assert.Len(t, state.HistoryPlayer2, i+1)
	}

	assert.Equal(t, p1, state.HistoryPlayer1)
	assert.Equal(t, p2, state.HistoryPlayer2)
	assert.Equal(t, models.Spock, *state.LastMovePlayer1)
	assert.Equal(t, models.Rock, *state.LastMovePlayer2)
}

func TestResolveRound_LastMoveNotAliased(t *testing.T) {
	state := newState(models.FirstTo(5))
	match.ResolveRound(state, models.Rock, models.Paper)
	first := state.LastMovePlayer1

	match.ResolveRound(state, models.Scissors, models.Paper)

	assert.Equal(t, models.Rock, *first)
	assert.Equal(t, models.Scissors, *state.LastMovePlayer1)
}

func TestRequiredWins(t *testing.T) {
	tests := []struct {
		format models.MatchFormat
		want   uint32
	}{
		{models.SingleRound(), 1},
		{models.BestOf(5), 3},
		{models.BestOf(3), 2},
		{models.BestOf(1), 1},
		{models.BestOf(4), 3},
		{models.FirstTo(4), 4},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.format.RequiredWins())
		})
	}
}

func TestCheckOutcome(t *testing.T) {
	state := newState(models.BestOf(3))

	assert.False(t, match.CheckOutcome(state).Complete)

	match.ResolveRound(state, models.Rock, models.Scissors)
	assert.False(t, match.CheckOutcome(state).Complete)

	match.ResolveRound(state, models.Rock, models.Paper)
	assert.False(t, match.CheckOutcome(state).Complete)

	match.ResolveRound(state, models.Spock, models.Rock)
	out := match.CheckOutcome(state)
	require.True(t, out.Complete)
	assert.Equal(t, models.Player1Win, out.Result)
	require.NotNil(t, out.Winner)
	assert.Equal(t, "alice", out.Winner.Name)
}

func TestCheckOutcome_Player2(t *testing.T) {
	state := newState(models.SingleRound())
	match.ResolveRound(state, models.Paper, models.Scissors)

	out := match.CheckOutcome(state)

	require.True(t, out.Complete)
	assert.Equal(t, models.Player2Win, out.Result)
	assert.Equal(t, "Computer", out.Winner.Name)
}

func TestCheckOutcome_LevelScoresAtTarget(t *testing.T) {
	// FirstTo(0) is already met at 0-0.
	state := newState(models.FirstTo(0))

	out := match.CheckOutcome(state)

	assert.True(t, out.Complete)
	assert.Equal(t, models.Tie, out.Result)
	assert.Nil(t, out.Winner)
}

func TestResetForRematch(t *testing.T) {
	state := newState(models.BestOf(5))
	oldID := state.ID
	match.ResolveRound(state, models.Rock, models.Scissors)
	match.ResolveRound(state, models.Rock, models.Paper)
	state.CurrentRound = 3

	state.ResetForRematch()

	assert.Equal(t, uint32(0), state.ScorePlayer1)
	assert.Equal(t, uint32(0), state.ScorePlayer2)
	assert.Equal(t, uint32(1), state.CurrentRound)
	assert.Nil(t, state.LastMovePlayer1)
	assert.Nil(t, state.LastMovePlayer2)
	assert.Empty(t, state.HistoryPlayer1)
	assert.Empty(t, state.HistoryPlayer2)
	assert.Equal(t, "alice", state.Player1.Name)
	assert.Equal(t, models.Human(), state.Player1.Type)
	assert.Equal(t, models.Computer(models.Hard), state.Player2.Type)
	assert.Equal(t, models.Extended, state.Ruleset)
	assert.Equal(t, models.BestOf(5), state.Format)
	assert.NotEqual(t, oldID, state.ID)
}

func TestWinsToGo(t *testing.T) {
	state := newState(models.BestOf(5))
	match.ResolveRound(state, models.Rock, models.Scissors)

	p1, p2 := match.WinsToGo(state)

	assert.Equal(t, uint32(2), p1)
	assert.Equal(t, uint32(3), p2)
}

func TestRecord(t *testing.T) {
	state := newState(models.BestOf(3))
	match.ResolveRound(state, models.Rock, models.Rock)
	match.ResolveRound(state, models.Paper, models.Rock)
	match.ResolveRound(state, models.Lizard, models.Spock)
	out := match.CheckOutcome(state)
	finished := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	rec := match.Record(state, out, finished)

	assert.Equal(t, state.ID, rec.ID)
	assert.Equal(t, "alice", rec.Winner)
	assert.Equal(t, finished, rec.FinishedAt)
	require.Len(t, rec.Rounds, 3)
	assert.Equal(t, models.Tie, rec.Rounds[0].Result)
	assert.Equal(t, models.Player1Win, rec.Rounds[1].Result)
	assert.Equal(t, 3, rec.Rounds[2].Number)
	assert.Equal(t, models.Spock, rec.Rounds[2].Player2Move)
}
