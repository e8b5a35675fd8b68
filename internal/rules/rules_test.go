package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/rpsarena/internal/models"
	"github.com/vytor/rpsarena/internal/rules"
)

func TestBeats_Irreflexive(t *testing.T) {
	for _, g := range models.AllGestures {
		assert.False(t, rules.Beats(g, g), "%s should not beat itself", g)
	}
}

func TestBeats_ExactlyOneDirectionForEveryPair(t *testing.T) {
	pairs := 0
	for _, a := range models.AllGestures {
		for _, b := range models.AllGestures {
			if a == b {
				continue
			}
			pairs++
			ab := rules.Beats(a, b)
			ba := rules.Beats(b, a)
			assert.True(t, ab != ba, "exactly one of %s>%s and %s>%s must hold", a, b, b, a)
		}
	}
	assert.Equal(t, 20, pairs)
}

func TestBeats_Table(t *testing.T) {
	wins := []struct {
		a, b models.Gesture
	}{
		{models.Rock, models.Scissors},
		{models.Rock, models.Lizard},
		{models.Paper, models.Rock},
		{models.Paper, models.Spock},
		{models.Scissors, models.Paper},
		{models.Scissors, models.Lizard},
		{models.Lizard, models.Spock},
		{models.Lizard, models.Paper},
		{models.Spock, models.Scissors},
		{models.Spock, models.Rock},
	}

	for _, w := range wins {
		t.Run(w.a.String()+">"+w.b.String(), func(t *testing.T) {
			assert.True(t, rules.Beats(w.a, w.b))
			assert.False(t, rules.Beats(w.b, w.a))
		})
	}
}

func TestBeats_OutOfDomain(t *testing.T) {
	assert.False(t, rules.Beats(models.Gesture(42), models.Rock))
	assert.False(t, rules.Beats(models.Rock, models.Gesture(42)))
}

func TestLegalSet(t *testing.T) {
	assert.Equal(t, []models.Gesture{models.Rock, models.Paper, models.Scissors}, rules.LegalSet(models.Classic))
	assert.Equal(t, models.AllGestures, rules.LegalSet(models.Extended))

	set := rules.LegalSet(models.Classic)
	set[0] = models.Spock
	assert.Equal(t, models.Rock, rules.LegalSet(models.Classic)[0], "caller must not be able to mutate the set")
}

func TestCounters(t *testing.T) {
	assert.Equal(t, []models.Gesture{models.Paper}, rules.Counters(models.Rock, models.Classic))
	assert.Equal(t, []models.Gesture{models.Paper, models.Spock}, rules.Counters(models.Rock, models.Extended))
	assert.Equal(t, []models.Gesture{models.Rock, models.Scissors}, rules.Counters(models.Lizard, models.Extended))
}

func TestCompare(t *testing.T) {
	assert.Equal(t, models.Tie, rules.Compare(models.Rock, models.Rock))
	assert.Equal(t, models.Player1Win, rules.Compare(models.Rock, models.Scissors))
	assert.Equal(t, models.Player2Win, rules.Compare(models.Rock, models.Paper))
	assert.Equal(t, models.Tie, rules.Compare(models.Gesture(9), models.Gesture(10)), "unrelated pair falls back to tie")
}

func TestParseGesture(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		ruleset models.Ruleset
		want    models.Gesture
		ok      bool
	}{
		{name: "full word", token: "rock", ruleset: models.Classic, want: models.Rock, ok: true},
		{name: "letter", token: "p", ruleset: models.Classic, want: models.Paper, ok: true},
		{name: "upper case", token: "SCISSORS", ruleset: models.Classic, want: models.Scissors, ok: true},
		{name: "padded", token: "  s ", ruleset: models.Classic, want: models.Scissors, ok: true},
		{name: "number", token: "2", ruleset: models.Classic, want: models.Paper, ok: true},
		{name: "lizard extended", token: "Lizard", ruleset: models.Extended, want: models.Lizard, ok: true},
		{name: "spock letter extended", token: "k", ruleset: models.Extended, want: models.Spock, ok: true},
		{name: "lizard classic", token: "lizard", ruleset: models.Classic},
		{name: "lizard letter classic", token: "l", ruleset: models.Classic},
		{name: "spock classic", token: "spock", ruleset: models.Classic},
		{name: "spock letter classic", token: "k", ruleset: models.Classic},
		{name: "number 5 classic", token: "5", ruleset: models.Classic},
		{name: "garbage", token: "banana", ruleset: models.Extended},
		{name: "empty", token: "", ruleset: models.Extended},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := rules.ParseGesture(tt.token, tt.ruleset)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
