package models

import "sort"

// PlayerStats are lifetime totals for one player name.
type PlayerStats struct {
	MatchesPlayed uint32 `json:"matches_played"`
	MatchesWon    uint32 `json:"matches_won"`
	RoundsWon     uint32 `json:"rounds_won"`
}

// RegisterMatch folds one finished match into the totals.
func (s *PlayerStats) RegisterMatch(roundsWon uint32, won bool) {
	s.MatchesPlayed++
	s.RoundsWon += roundsWon
	if won {
		s.MatchesWon++
	}
}

// WinRate is matches won over matches played, or 0 with no matches.
func (s PlayerStats) WinRate() float64 {
	if s.MatchesPlayed == 0 {
		return 0
	}
	return float64(s.MatchesWon) / float64(s.MatchesPlayed)
}

// Scoreboard maps player names to lifetime statistics. Entries are created on
// first appearance and never removed.
type Scoreboard struct {
	Players map[string]*PlayerStats `json:"players"`
}

func NewScoreboard() *Scoreboard {
	return &Scoreboard{Players: make(map[string]*PlayerStats)}
}

// ScoreboardEntry is one row of a sorted scoreboard view.
type ScoreboardEntry struct {
	Name  string
	Stats PlayerStats
}

func (b *Scoreboard) ensure(name string) *PlayerStats {
	if b.Players == nil {
		b.Players = make(map[string]*PlayerStats)
	}
	st, ok := b.Players[name]
	if !ok {
		st = &PlayerStats{}
		b.Players[name] = st
	}
	return st
}

// Get returns a copy of the stats for name and whether it exists.
func (b *Scoreboard) Get(name string) (PlayerStats, bool) {
	st, ok := b.Players[name]
	if !ok {
		return PlayerStats{}, false
	}
	return *st, true
}

// RegisterMatch records a finished match for both players. result says who
// took the match; Tie credits nobody with a win.
func (b *Scoreboard) RegisterMatch(player1, player2 string, roundsPlayer1, roundsPlayer2 uint32, result RoundResult) {
	s1 := b.ensure(player1)
	s1.RegisterMatch(roundsPlayer1, result == Player1Win)
	s2 := b.ensure(player2)
	s2.RegisterMatch(roundsPlayer2, result == Player2Win)
}

func (b *Scoreboard) entries() []ScoreboardEntry {
	out := make([]ScoreboardEntry, 0, len(b.Players))
	for name, st := range b.Players {
		out = append(out, ScoreboardEntry{Name: name, Stats: *st})
	}
	return out
}

// SortedByWins orders by matches won, highest first, then by name.
func (b *Scoreboard) SortedByWins() []ScoreboardEntry {
	out := b.entries()
	sort.Slice(out, func(i, j int) bool {
		if out[i].Stats.MatchesWon != out[j].Stats.MatchesWon {
			return out[i].Stats.MatchesWon > out[j].Stats.MatchesWon
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// SortedByWinRate orders by win rate, highest first, then by name.
func (b *Scoreboard) SortedByWinRate() []ScoreboardEntry {
	out := b.entries()
	sort.Slice(out, func(i, j int) bool {
		ri, rj := out[i].Stats.WinRate(), out[j].Stats.WinRate()
		if ri != rj {
			return ri > rj
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Clone returns a deep copy so a caller can hand the scoreboard off without
// sharing the underlying stats.
func (b *Scoreboard) Clone() *Scoreboard {
	c := NewScoreboard()
	for name, st := range b.Players {
		cp := *st
		c.Players[name] = &cp
	}
	return c
}
