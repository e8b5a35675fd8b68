package services

import (
	"context"
	stderrors "errors"
	"io/fs"

	"github.com/vytor/rpsarena/internal/errors"
	"github.com/vytor/rpsarena/internal/logger"
	"github.com/vytor/rpsarena/internal/models"
	"github.com/vytor/rpsarena/internal/repository"
)

// SaveService pauses and resumes a single match.
type SaveService interface {
	// Pause writes the match and the scoreboard.
	Pause(ctx context.Context, state *models.MatchState, board *models.Scoreboard) error
	// Resume loads the paused match together with the scoreboard file.
	Resume(ctx context.Context) (*models.MatchState, *models.Scoreboard, error)
	Discard(ctx context.Context) error
	HasSave(ctx context.Context) bool
}

type saveService struct {
	saves      repository.SaveRepository
	scoreboard ScoreboardService
}

// NewSaveService creates a new SaveService
func NewSaveService(saves repository.SaveRepository, scoreboard ScoreboardService) SaveService {
	return &saveService{saves: saves, scoreboard: scoreboard}
}

func (s *saveService) Pause(ctx context.Context, state *models.MatchState, board *models.Scoreboard) error {
	log := logger.FromContext(ctx).WithField("match", state.ID)
	log.Info("pausing match at round %d", state.CurrentRound)

	if err := s.saves.Save(ctx, state); err != nil {
		log.Error("failed to save match: %v", err)
		return errors.NewInternalError(err)
	}
	return s.scoreboard.Save(ctx, board)
}

func (s *saveService) Resume(ctx context.Context) (*models.MatchState, *models.Scoreboard, error) {
	log := logger.FromContext(ctx)
	log.Debug("resuming saved match")

	state, err := s.saves.Load(ctx)
	if err != nil {
		switch {
		case stderrors.Is(err, fs.ErrNotExist):
			return nil, nil, errors.NewNotFoundError("saved game", "save_state.json")
		case stderrors.Is(err, repository.ErrCorrupt):
			log.Error("saved match is corrupt: %v", err)
			return nil, nil, errors.NewCorruptDataError("saved game", err)
		default:
			log.Error("failed to load saved match: %v", err)
			return nil, nil, errors.NewInternalError(err)
		}
	}

	board := s.scoreboard.Load(ctx)
	log.WithField("match", state.ID).Info("resumed match at round %d", state.CurrentRound)
	return state, board, nil
}

func (s *saveService) Discard(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Debug("discarding saved match")

	if err := s.saves.Delete(ctx); err != nil {
		log.Error("failed to delete saved match: %v", err)
		return errors.NewInternalError(err)
	}
	return nil
}

func (s *saveService) HasSave(ctx context.Context) bool {
	ok, err := s.saves.Exists(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn("cannot check for a saved match: %v", err)
		return false
	}
	return ok
}
