// Package jsonfile stores the scoreboard and the paused match as
// pretty-printed JSON files in a single directory.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vytor/rpsarena/internal/logger"
	"github.com/vytor/rpsarena/internal/models"
	"github.com/vytor/rpsarena/internal/repository"
)

const (
	SaveStateFile  = "save_state.json"
	ScoreboardFile = "scoreboard.json"
)

// EnsureDir creates the save directory. main calls it once at startup; the
// writers below also call it so a directory removed mid-session comes back.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create save directory %s: %w", dir, err)
	}
	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w: %v", path, repository.ErrCorrupt, err)
	}
	return nil
}

type scoreboardRepository struct {
	path string
}

// NewScoreboardRepository stores the scoreboard in dir/scoreboard.json.
func NewScoreboardRepository(dir string) repository.ScoreboardRepository {
	return &scoreboardRepository{path: filepath.Join(dir, ScoreboardFile)}
}

func (r *scoreboardRepository) Load(ctx context.Context) (*models.Scoreboard, error) {
	log := logger.FromContext(ctx).WithPrefix("scoreboard_repo")
	log.Debug("loading scoreboard: %s", r.path)

	board := models.NewScoreboard()
	if err := readJSON(r.path, board); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug("scoreboard file not found")
		} else {
			log.Error("failed to load scoreboard: %v", err)
		}
		return nil, err
	}
	if board.Players == nil {
		board.Players = make(map[string]*models.PlayerStats)
	}
	for name, st := range board.Players {
		if st == nil {
			board.Players[name] = &models.PlayerStats{}
		}
	}
	log.Debug("scoreboard loaded: %d players", len(board.Players))
	return board, nil
}

func (r *scoreboardRepository) Save(ctx context.Context, board *models.Scoreboard) error {
	log := logger.FromContext(ctx).WithPrefix("scoreboard_repo")
	log.Debug("saving scoreboard: %d players", len(board.Players))

	if err := writeJSON(r.path, board); err != nil {
		log.Error("failed to save scoreboard: %v", err)
		return err
	}
	return nil
}

type saveRepository struct {
	path string
}

// NewSaveRepository stores the paused match in dir/save_state.json.
func NewSaveRepository(dir string) repository.SaveRepository {
	return &saveRepository{path: filepath.Join(dir, SaveStateFile)}
}

func (r *saveRepository) Save(ctx context.Context, state *models.MatchState) error {
	log := logger.FromContext(ctx).WithPrefix("save_repo")
	log.Debug("saving match: id=%s round=%d", state.ID, state.CurrentRound)

	if err := writeJSON(r.path, state); err != nil {
		log.Error("failed to save match: %v", err)
		return err
	}
	return nil
}

func (r *saveRepository) Load(ctx context.Context) (*models.MatchState, error) {
	log := logger.FromContext(ctx).WithPrefix("save_repo")
	log.Debug("loading saved match: %s", r.path)

	var state models.MatchState
	if err := readJSON(r.path, &state); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug("no saved match")
		} else {
			log.Error("failed to load saved match: %v", err)
		}
		return nil, err
	}
	if err := checkState(&state); err != nil {
		log.Error("saved match is inconsistent: %v", err)
		return nil, fmt.Errorf("decode %s: %w: %v", r.path, repository.ErrCorrupt, err)
	}
	log.Debug("saved match loaded: id=%s round=%d", state.ID, state.CurrentRound)
	return &state, nil
}

// checkState rejects saves that decode but break the match invariants.
func checkState(s *models.MatchState) error {
	if s.Player1.Name == "" || s.Player2.Name == "" {
		return errors.New("player name missing")
	}
	if len(s.HistoryPlayer1) != len(s.HistoryPlayer2) {
		return fmt.Errorf("history lengths differ: %d vs %d", len(s.HistoryPlayer1), len(s.HistoryPlayer2))
	}
	if s.CurrentRound == 0 {
		return errors.New("round counter is zero")
	}
	if s.HistoryPlayer1 == nil {
		s.HistoryPlayer1 = []models.Gesture{}
	}
	if s.HistoryPlayer2 == nil {
		s.HistoryPlayer2 = []models.Gesture{}
	}
	return nil
}

func (r *saveRepository) Exists(ctx context.Context) (bool, error) {
	_, err := os.Stat(r.path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	logger.FromContext(ctx).WithPrefix("save_repo").Error("failed to stat save file: %v", err)
	return false, err
}

func (r *saveRepository) Delete(ctx context.Context) error {
	log := logger.FromContext(ctx).WithPrefix("save_repo")
	log.Debug("deleting saved match: %s", r.path)

	if err := os.Remove(r.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Error("failed to delete saved match: %v", err)
		return fmt.Errorf("delete %s: %w", r.path, err)
	}
	return nil
}
