package services

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/vytor/rpsarena/internal/errors"
	"github.com/vytor/rpsarena/internal/logger"
	"github.com/vytor/rpsarena/internal/models"
	"github.com/vytor/rpsarena/internal/repository"
)

// HistoryService records finished matches and answers questions about them.
// A service built without a repository is disabled: Record is a no-op and
// the queries return nothing.
type HistoryService interface {
	Enabled() bool
	Record(ctx context.Context, record models.MatchRecord) error
	Recent(ctx context.Context, player string, limit int) ([]models.MatchRecord, error)
	Match(ctx context.Context, id string) (*models.MatchRecord, error)
	GestureBreakdown(ctx context.Context, player string) ([]models.GestureStat, error)
	HeadToHead(ctx context.Context, playerA, playerB string) (*models.HeadToHead, error)
}

type historyService struct {
	repo repository.HistoryRepository
}

// NewHistoryService creates a new HistoryService. repo may be nil.
func NewHistoryService(repo repository.HistoryRepository) HistoryService {
	return &historyService{repo: repo}
}

func (s *historyService) Enabled() bool {
	return s.repo != nil
}

func (s *historyService) Record(ctx context.Context, record models.MatchRecord) error {
	if s.repo == nil {
		return nil
	}
	log := logger.FromContext(ctx).WithField("match", record.ID)
	log.Debug("recording match history: rounds=%d", len(record.Rounds))

	if err := s.repo.Insert(ctx, record); err != nil {
		log.Error("failed to record match history: %v", err)
		return errors.NewInternalError(err)
	}
	return nil
}

func (s *historyService) Recent(ctx context.Context, player string, limit int) ([]models.MatchRecord, error) {
	if s.repo == nil {
		return nil, nil
	}
	log := logger.FromContext(ctx)
	log.Debug("listing recent matches: player=%s limit=%d", player, limit)

	if limit < 1 {
		return nil, errors.NewValidationError("limit", "must be at least 1")
	}
	records, err := s.repo.List(ctx, models.HistoryFilter{Player: player, Limit: limit})
	if err != nil {
		log.Error("failed to list matches: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return records, nil
}

func (s *historyService) Match(ctx context.Context, id string) (*models.MatchRecord, error) {
	if s.repo == nil {
		return nil, errors.NewNotFoundError("match", id)
	}
	log := logger.FromContext(ctx)
	log.Debug("getting match: id=%s", id)

	rec, err := s.repo.Get(ctx, id)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NewNotFoundError("match", id)
		}
		log.Error("failed to get match: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return rec, nil
}

func (s *historyService) GestureBreakdown(ctx context.Context, player string) ([]models.GestureStat, error) {
	if s.repo == nil {
		return nil, nil
	}
	log := logger.FromContext(ctx)
	log.Debug("gesture breakdown: player=%s", player)

	if player == "" {
		return nil, errors.NewValidationError("player", "cannot be empty")
	}
	stats, err := s.repo.GestureStats(ctx, player)
	if err != nil {
		log.Error("failed to get gesture stats: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return stats, nil
}

func (s *historyService) HeadToHead(ctx context.Context, playerA, playerB string) (*models.HeadToHead, error) {
	if s.repo == nil {
		return &models.HeadToHead{PlayerA: playerA, PlayerB: playerB}, nil
	}
	log := logger.FromContext(ctx)
	log.Debug("head to head: %s vs %s", playerA, playerB)

	if playerA == "" || playerB == "" {
		return nil, errors.NewValidationError("player", "cannot be empty")
	}
	h, err := s.repo.HeadToHead(ctx, playerA, playerB)
	if err != nil {
		log.Error("failed to get head to head: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return h, nil
}
