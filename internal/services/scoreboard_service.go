package services

import (
	"context"

	"github.com/vytor/rpsarena/internal/errors"
	"github.com/vytor/rpsarena/internal/logger"
	"github.com/vytor/rpsarena/internal/models"
	"github.com/vytor/rpsarena/internal/repository"
)

// ScoreboardService owns loading and updating the lifetime scoreboard.
type ScoreboardService interface {
	// Load never fails: a missing or unreadable file yields an empty scoreboard.
	Load(ctx context.Context) *models.Scoreboard
	Save(ctx context.Context, board *models.Scoreboard) error
	// RecordMatch folds a completed match into board and persists it.
	RecordMatch(ctx context.Context, board *models.Scoreboard, state *models.MatchState, outcome models.MatchOutcome) error
}

type scoreboardService struct {
	repo repository.ScoreboardRepository
}

// NewScoreboardService creates a new ScoreboardService
func NewScoreboardService(repo repository.ScoreboardRepository) ScoreboardService {
	return &scoreboardService{repo: repo}
}

func (s *scoreboardService) Load(ctx context.Context) *models.Scoreboard {
	log := logger.FromContext(ctx)
	log.Debug("loading scoreboard")

	board, err := s.repo.Load(ctx)
	if err != nil {
		log.Warn("starting with an empty scoreboard: %v", err)
		return models.NewScoreboard()
	}
	return board
}

func (s *scoreboardService) Save(ctx context.Context, board *models.Scoreboard) error {
	log := logger.FromContext(ctx)
	log.Debug("saving scoreboard: players=%d", len(board.Players))

	if err := s.repo.Save(ctx, board); err != nil {
		log.Error("failed to save scoreboard: %v", err)
		return errors.NewInternalError(err)
	}
	return nil
}

func (s *scoreboardService) RecordMatch(ctx context.Context, board *models.Scoreboard, state *models.MatchState, outcome models.MatchOutcome) error {
	log := logger.FromContext(ctx).WithField("match", state.ID)
	if !outcome.Complete {
		return errors.NewValidationError("match", "not finished")
	}
	log.Debug("recording match: %s %d-%d %s", state.Player1.Name, state.ScorePlayer1, state.ScorePlayer2, state.Player2.Name)

	board.RegisterMatch(state.Player1.Name, state.Player2.Name, state.ScorePlayer1, state.ScorePlayer2, outcome.Result)
	return s.Save(ctx, board)
}
