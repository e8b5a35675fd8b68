package ai_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/rpsarena/internal/ai"
	"github.com/vytor/rpsarena/internal/models"
	"github.com/vytor/rpsarena/internal/rules"
)

func seeded(seed uint64) ai.Option {
	return ai.WithRand(rand.New(rand.NewPCG(seed, seed+1)))
}

func newStrategy(t *testing.T, d models.AiDifficulty) ai.Strategy {
	t.Helper()
	s, err := ai.New(d, seeded(42))
	require.NoError(t, err)
	require.Equal(t, d, s.Difficulty())
	return s
}

func TestNew_UnknownDifficulty(t *testing.T) {
	s, err := ai.New(models.AiDifficulty(9))
	assert.Error(t, err)
	assert.Nil(t, s)
}

func TestEasy_ClassicNeverLeavesLegalSet(t *testing.T) {
	s := newStrategy(t, models.Easy)
	seen := map[models.Gesture]int{}

	for i := 0; i < 10000; i++ {
		g := s.NextMove(models.Classic, nil)
		require.True(t, rules.IsLegal(g, models.Classic), "got %s under Classic", g)
		seen[g]++
	}

	assert.Len(t, seen, 3, "every classic gesture should show up")
	assert.Zero(t, seen[models.Lizard])
	assert.Zero(t, seen[models.Spock])
}

func TestEasy_ExtendedUsesAllFive(t *testing.T) {
	s := newStrategy(t, models.Easy)
	seen := map[models.Gesture]int{}

	for i := 0; i < 2000; i++ {
		seen[s.NextMove(models.Extended, nil)]++
	}

	assert.Len(t, seen, 5)
}

func TestNormal_CountersMostFrequent(t *testing.T) {
	s := newStrategy(t, models.Normal)
	history := []models.Gesture{models.Rock, models.Rock, models.Rock}

	for i := 0; i < 100; i++ {
		assert.Equal(t, models.Paper, s.NextMove(models.Classic, history))
	}
}

func TestNormal_ExtendedPicksAnyCounter(t *testing.T) {
	s := newStrategy(t, models.Normal)
	history := []models.Gesture{models.Rock, models.Rock, models.Rock}
	seen := map[models.Gesture]bool{}

	for i := 0; i < 200; i++ {
		g := s.NextMove(models.Extended, history)
		require.True(t, rules.Beats(g, models.Rock), "%s does not beat Rock", g)
		seen[g] = true
	}

	assert.True(t, seen[models.Paper])
	assert.True(t, seen[models.Spock])
}

func TestNormal_EmptyHistoryStaysLegal(t *testing.T) {
	s := newStrategy(t, models.Normal)

	for i := 0; i < 500; i++ {
		g := s.NextMove(models.Classic, nil)
		assert.True(t, rules.IsLegal(g, models.Classic))
	}
}

func TestNormal_PredictionOutsideRulesetStaysLegal(t *testing.T) {
	// History from a hand-edited save can hold gestures the ruleset forbids;
	// only legal counters may come back.
	s := newStrategy(t, models.Normal)
	history := []models.Gesture{models.Lizard, models.Lizard}

	for i := 0; i < 200; i++ {
		g := s.NextMove(models.Classic, history)
		assert.Contains(t, []models.Gesture{models.Rock, models.Scissors}, g)
	}
}

func TestMostFrequent(t *testing.T) {
	_, ok := ai.MostFrequent(nil)
	assert.False(t, ok)

	g, ok := ai.MostFrequent([]models.Gesture{models.Spock, models.Paper, models.Spock, models.Rock})
	require.True(t, ok)
	assert.Equal(t, models.Spock, g)

	g, ok = ai.MostFrequent([]models.Gesture{models.Scissors, models.Paper, models.Scissors, models.Paper})
	require.True(t, ok)
	assert.Equal(t, models.Paper, g, "exact ties go to the lowest gesture")
}

func TestRecencyWeighted_RecencyBeatsFrequency(t *testing.T) {
	// Unweighted mode is Scissors (3 vs 2). Weighted: Scissors 1+2+3=6,
	// Rock 4+5=9.
	history := []models.Gesture{models.Scissors, models.Scissors, models.Scissors, models.Rock, models.Rock}

	mode, ok := ai.MostFrequent(history)
	require.True(t, ok)
	require.Equal(t, models.Scissors, mode)

	predicted, ok := ai.RecencyWeighted(history, ai.HardWindow)
	require.True(t, ok)
	assert.Equal(t, models.Rock, predicted)
}

func TestRecencyWeighted_OnlyWindowCounts(t *testing.T) {
	history := []models.Gesture{
		models.Lizard, models.Lizard, models.Lizard, models.Lizard, models.Lizard, models.Lizard,
		models.Paper, models.Rock, models.Paper, models.Rock, models.Paper,
	}

	predicted, ok := ai.RecencyWeighted(history, ai.HardWindow)

	require.True(t, ok)
	assert.Equal(t, models.Paper, predicted, "Paper 1+3+5 beats Rock 2+4, old Lizards are outside the window")
}

func TestRecencyWeighted_MostRecentWinsPairwise(t *testing.T) {
	for _, older := range models.AllGestures {
		for _, newer := range models.AllGestures {
			predicted, ok := ai.RecencyWeighted([]models.Gesture{older, newer}, ai.HardWindow)
			require.True(t, ok)
			assert.Equal(t, newer, predicted)
		}
	}
}

func TestRecencyWeighted_ShortHistoryAndBadWindow(t *testing.T) {
	g, ok := ai.RecencyWeighted([]models.Gesture{models.Spock}, ai.HardWindow)
	require.True(t, ok)
	assert.Equal(t, models.Spock, g)

	_, ok = ai.RecencyWeighted([]models.Gesture{models.Spock}, -3)
	assert.False(t, ok)

	_, ok = ai.RecencyWeighted(nil, ai.HardWindow)
	assert.False(t, ok)
}

func TestHard_MostlyCountersRecentMoves(t *testing.T) {
	s := newStrategy(t, models.Hard)
	history := []models.Gesture{models.Scissors, models.Scissors, models.Scissors, models.Rock, models.Rock}
	counts := map[models.Gesture]int{}
	const n = 2000

	for i := 0; i < n; i++ {
		g := s.NextMove(models.Classic, history)
		require.True(t, rules.IsLegal(g, models.Classic))
		counts[g]++
	}

	// 80% counter (Paper) plus a third of the 20% random throws.
	assert.Greater(t, counts[models.Paper], n*3/4)
	assert.Less(t, counts[models.Rock], n/6, "Rock counters the unweighted prediction and should be rare")
	assert.Positive(t, counts[models.Scissors], "random fallback should still produce other moves")
}

func TestHard_EmptyHistoryStaysLegal(t *testing.T) {
	s := newStrategy(t, models.Hard)

	for i := 0; i < 500; i++ {
		assert.True(t, rules.IsLegal(s.NextMove(models.Classic, nil), models.Classic))
	}
}
