// Package rules holds the gesture win relation and the legal move sets.
// Everything here is pure.
package rules

import (
	"strings"

	"github.com/vytor/rpsarena/internal/models"
)

// defeats maps each gesture to the two gestures it beats.
var defeats = map[models.Gesture][2]models.Gesture{
	models.Rock:     {models.Scissors, models.Lizard},
	models.Paper:    {models.Rock, models.Spock},
	models.Scissors: {models.Paper, models.Lizard},
	models.Lizard:   {models.Spock, models.Paper},
	models.Spock:    {models.Scissors, models.Rock},
}

var classicSet = []models.Gesture{models.Rock, models.Paper, models.Scissors}

// Beats reports whether a beats b. The relation is defined over all five
// gestures regardless of ruleset; Classic play only ever reaches the
// Rock/Paper/Scissors triangle.
func Beats(a, b models.Gesture) bool {
	losers, ok := defeats[a]
	if !ok {
		return false
	}
	return losers[0] == b || losers[1] == b
}

// LegalSet returns the gestures allowed under ruleset, in enum order.
// The returned slice is a fresh copy.
func LegalSet(ruleset models.Ruleset) []models.Gesture {
	if ruleset == models.Extended {
		return append([]models.Gesture(nil), models.AllGestures...)
	}
	return append([]models.Gesture(nil), classicSet...)
}

// IsLegal reports whether g may be played under ruleset.
func IsLegal(g models.Gesture, ruleset models.Ruleset) bool {
	for _, allowed := range LegalSet(ruleset) {
		if allowed == g {
			return true
		}
	}
	return false
}

// Counters returns the legal gestures that beat target, in enum order.
func Counters(target models.Gesture, ruleset models.Ruleset) []models.Gesture {
	var out []models.Gesture
	for _, g := range LegalSet(ruleset) {
		if Beats(g, target) {
			out = append(out, g)
		}
	}
	return out
}

// Compare decides a round between g1 and g2. An unrelated pair, which a
// total relation never produces, counts as a tie.
func Compare(g1, g2 models.Gesture) models.RoundResult {
	switch {
	case g1 == g2:
		return models.Tie
	case Beats(g1, g2):
		return models.Player1Win
	case Beats(g2, g1):
		return models.Player2Win
	default:
		return models.Tie
	}
}

var tokens = map[string]models.Gesture{
	"r": models.Rock, "rock": models.Rock, "1": models.Rock,
	"p": models.Paper, "paper": models.Paper, "2": models.Paper,
	"s": models.Scissors, "scissors": models.Scissors, "3": models.Scissors,
	"l": models.Lizard, "lizard": models.Lizard, "4": models.Lizard,
	"k": models.Spock, "spock": models.Spock, "5": models.Spock,
}

// ParseGesture reads a player's token (full name, single letter or menu
// number, any case). Lizard and Spock are rejected under Classic.
func ParseGesture(token string, ruleset models.Ruleset) (models.Gesture, bool) {
	g, ok := tokens[strings.ToLower(strings.TrimSpace(token))]
	if !ok || !IsLegal(g, ruleset) {
		return 0, false
	}
	return g, true
}

// Hint lists the accepted tokens for ruleset, for re-prompt messages.
func Hint(ruleset models.Ruleset) string {
	if ruleset == models.Extended {
		return "Use 1-5 or r/p/s/l/k (rock, paper, scissors, lizard, spock)."
	}
	return "Use 1-3 or r/p/s (rock, paper, scissors)."
}
