package models

import "time"

// MatchRecord is a finished match as stored in the history database.
type MatchRecord struct {
	ID           string        `json:"id"`
	Player1      Player        `json:"player1"`
	Player2      Player        `json:"player2"`
	Ruleset      Ruleset       `json:"ruleset"`
	Format       MatchFormat   `json:"match_format"`
	ScorePlayer1 uint32        `json:"score_player1"`
	ScorePlayer2 uint32        `json:"score_player2"`
	Winner       string        `json:"winner"`
	Rounds       []RoundRecord `json:"rounds,omitempty"`
	StartedAt    time.Time     `json:"started_at"`
	FinishedAt   time.Time     `json:"finished_at"`
}

type RoundRecord struct {
	Number      int         `json:"number"`
	Player1Move Gesture     `json:"player1_move"`
	Player2Move Gesture     `json:"player2_move"`
	Result      RoundResult `json:"result"`
}

type HistoryFilter struct {
	Player   string
	Opponent string
	Ruleset  *Ruleset
	Limit    int
	Offset   int
}

// GestureStat is how often a player threw one gesture across all recorded rounds.
type GestureStat struct {
	Gesture Gesture `json:"gesture"`
	Count   int     `json:"count"`
	Share   float64 `json:"share"`
}

type HeadToHead struct {
	PlayerA string `json:"player_a"`
	PlayerB string `json:"player_b"`
	Matches int    `json:"matches"`
	WinsA   int    `json:"wins_a"`
	WinsB   int    `json:"wins_b"`
	Ties    int    `json:"ties"`
}
