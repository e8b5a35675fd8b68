package repository

import (
	"context"
	"errors"

	"github.com/vytor/rpsarena/internal/models"
)

// ScoreboardRepository persists the lifetime scoreboard as a whole.
type ScoreboardRepository interface {
	Load(ctx context.Context) (*models.Scoreboard, error)
	Save(ctx context.Context, board *models.Scoreboard) error
}

// SaveRepository persists a single paused match. Load returns an error
// wrapping fs.ErrNotExist when nothing has been saved.
type SaveRepository interface {
	Save(ctx context.Context, state *models.MatchState) error
	Load(ctx context.Context) (*models.MatchState, error)
	Exists(ctx context.Context) (bool, error)
	Delete(ctx context.Context) error
}

// HistoryRepository stores finished matches round by round.
type HistoryRepository interface {
	Insert(ctx context.Context, record models.MatchRecord) error
	Get(ctx context.Context, id string) (*models.MatchRecord, error)
	List(ctx context.Context, filter models.HistoryFilter) ([]models.MatchRecord, error)
	GestureStats(ctx context.Context, player string) ([]models.GestureStat, error)
	HeadToHead(ctx context.Context, playerA, playerB string) (*models.HeadToHead, error)
}

// ErrCorrupt marks stored data that exists but cannot be decoded.
var ErrCorrupt = errors.New("stored data is corrupt")
