// Package ai picks moves for computer players.
//
// Three tiers exist. Easy throws uniformly at random. Normal predicts the
// opponent's most frequent gesture and counters it. Hard predicts from a
// recency-weighted window of the opponent's last moves and throws at random
// one round in five.
//
// Frequency and weight ties resolve to the lowest gesture in enum order
// (Rock, Paper, Scissors, Lizard, Spock), which keeps predictions
// reproducible for a given history.
package ai

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/vytor/rpsarena/internal/models"
	"github.com/vytor/rpsarena/internal/rules"
)

const (
	// HardWindow is how many of the opponent's latest moves Hard considers.
	HardWindow = 5
	// HardRandomChance is the probability Hard ignores history for a round.
	HardRandomChance = 0.2
)

// Strategy produces a computer player's next move from the opponent's
// move history. The returned gesture is always legal under ruleset.
type Strategy interface {
	NextMove(ruleset models.Ruleset, history []models.Gesture) models.Gesture
	Difficulty() models.AiDifficulty
}

// Option configures a Strategy.
type Option func(*base)

// WithRand sets the random source. Tests pass a seeded generator.
func WithRand(r *rand.Rand) Option {
	return func(b *base) {
		b.rng = r
	}
}

type base struct {
	rng *rand.Rand
}

func newBase(opts []Option) base {
	b := base{}
	for _, opt := range opts {
		opt(&b)
	}
	if b.rng == nil {
		seed := uint64(time.Now().UnixNano())
		b.rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	return b
}

func (b base) pick(candidates []models.Gesture) models.Gesture {
	return candidates[b.rng.IntN(len(candidates))]
}

func (b base) random(ruleset models.Ruleset) models.Gesture {
	return b.pick(rules.LegalSet(ruleset))
}

// counter throws something that beats predicted, or a random legal move if
// nothing does.
func (b base) counter(ruleset models.Ruleset, predicted models.Gesture) models.Gesture {
	counters := rules.Counters(predicted, ruleset)
	if len(counters) == 0 {
		return b.random(ruleset)
	}
	return b.pick(counters)
}

// New returns the strategy for difficulty d.
func New(d models.AiDifficulty, opts ...Option) (Strategy, error) {
	b := newBase(opts)
	switch d {
	case models.Easy:
		return &EasyStrategy{base: b}, nil
	case models.Normal:
		return &NormalStrategy{base: b}, nil
	case models.Hard:
		return &HardStrategy{base: b}, nil
	default:
		return nil, fmt.Errorf("unknown ai difficulty: %d", d)
	}
}

type EasyStrategy struct {
	base
}

func (s *EasyStrategy) Difficulty() models.AiDifficulty { return models.Easy }

func (s *EasyStrategy) NextMove(ruleset models.Ruleset, _ []models.Gesture) models.Gesture {
	return s.random(ruleset)
}

type NormalStrategy struct {
	base
}

func (s *NormalStrategy) Difficulty() models.AiDifficulty { return models.Normal }

func (s *NormalStrategy) NextMove(ruleset models.Ruleset, history []models.Gesture) models.Gesture {
	predicted, ok := MostFrequent(history)
	if !ok {
		return s.random(ruleset)
	}
	return s.counter(ruleset, predicted)
}

type HardStrategy struct {
	base
}

func (s *HardStrategy) Difficulty() models.AiDifficulty { return models.Hard }

func (s *HardStrategy) NextMove(ruleset models.Ruleset, history []models.Gesture) models.Gesture {
	if len(history) == 0 {
		return s.random(ruleset)
	}
	if s.rng.Float64() < HardRandomChance {
		return s.random(ruleset)
	}
	predicted, ok := RecencyWeighted(history, HardWindow)
	if !ok {
		return s.random(ruleset)
	}
	return s.counter(ruleset, predicted)
}

// MostFrequent returns the gesture that appears most often in history.
func MostFrequent(history []models.Gesture) (models.Gesture, bool) {
	var counts [5]int
	for _, g := range history {
		if g.Valid() {
			counts[g]++
		}
	}
	return argmax(counts)
}

// RecencyWeighted predicts from the last min(window, len(history)) moves.
// With n moves in the window the newest weighs n, the one before n-1, down
// to 1 for the oldest.
func RecencyWeighted(history []models.Gesture, window int) (models.Gesture, bool) {
	n := len(history)
	if window < n {
		n = window
	}
	if n < 0 {
		n = 0
	}
	recent := history[len(history)-n:]

	var weights [5]int
	for i, g := range recent {
		if g.Valid() {
			weights[g] += i + 1
		}
	}
	return argmax(weights)
}

// argmax returns the index with the highest positive score; the first one
// wins on a tie.
func argmax(scores [5]int) (models.Gesture, bool) {
	best := -1
	for i, v := range scores {
		if v > 0 && (best < 0 || v > scores[best]) {
			best = i
		}
	}
	if best < 0 {
		return 0, false
	}
	return models.Gesture(best), true
}
