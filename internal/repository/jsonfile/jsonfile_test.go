package jsonfile_test

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/vytor/rpsarena/internal/match"
	"github.com/vytor/rpsarena/internal/models"
	"github.com/vytor/rpsarena/internal/repository"
	"github.com/vytor/rpsarena/internal/repository/jsonfile"
)

type JSONFileSuite struct {
	suite.Suite
	dir        string
	scoreboard repository.ScoreboardRepository
	saves      repository.SaveRepository
}

func (s *JSONFileSuite) SetupTest() {
	s.dir = filepath.Join(s.T().TempDir(), "saves")
	s.scoreboard = jsonfile.NewScoreboardRepository(s.dir)
	s.saves = jsonfile.NewSaveRepository(s.dir)
}

func (s *JSONFileSuite) TestEnsureDir() {
	s.Require().NoError(jsonfile.EnsureDir(s.dir))
	info, err := os.Stat(s.dir)
	s.Require().NoError(err)
	s.Assert().True(info.IsDir())
}

func (s *JSONFileSuite) TestScoreboard_SaveAndLoad() {
	ctx := context.Background()
	board := models.NewScoreboard()
	board.RegisterMatch("alice", "Computer", 3, 1, models.Player1Win)
	board.RegisterMatch("alice", "bob", 0, 2, models.Player2Win)

	s.Require().NoError(s.scoreboard.Save(ctx, board))

	loaded, err := s.scoreboard.Load(ctx)
	s.Require().NoError(err)
	s.Assert().Equal(board.Players, loaded.Players)

	data, err := os.ReadFile(filepath.Join(s.dir, jsonfile.ScoreboardFile))
	s.Require().NoError(err)
	s.Assert().Contains(string(data), "\n  \"players\": {", "file should be pretty-printed")
}

func (s *JSONFileSuite) TestScoreboard_LoadMissing() {
	_, err := s.scoreboard.Load(context.Background())
	s.Assert().True(errors.Is(err, fs.ErrNotExist))
}

func (s *JSONFileSuite) TestScoreboard_LoadCorrupt() {
	s.Require().NoError(jsonfile.EnsureDir(s.dir))
	s.Require().NoError(os.WriteFile(filepath.Join(s.dir, jsonfile.ScoreboardFile), []byte("{not json"), 0o644))

	_, err := s.scoreboard.Load(context.Background())
	s.Assert().True(errors.Is(err, repository.ErrCorrupt))
}

func (s *JSONFileSuite) TestScoreboard_LoadNullPlayers() {
	s.Require().NoError(jsonfile.EnsureDir(s.dir))
	s.Require().NoError(os.WriteFile(filepath.Join(s.dir, jsonfile.ScoreboardFile), []byte(`{"players":null}`), 0o644))

	loaded, err := s.scoreboard.Load(context.Background())
	s.Require().NoError(err)
	s.Assert().NotNil(loaded.Players)
	s.Assert().Empty(loaded.Players)
}

func (s *JSONFileSuite) TestSave_RoundTrip() {
	ctx := context.Background()
	state := models.NewMatchState(models.NewHuman("alice"), models.NewComputer("Computer", models.Hard), models.Extended, models.BestOf(5))
	match.ResolveRound(state, models.Spock, models.Rock)
	match.ResolveRound(state, models.Lizard, models.Lizard)
	state.CurrentRound = 3

	exists, err := s.saves.Exists(ctx)
	s.Require().NoError(err)
	s.Assert().False(exists)

	s.Require().NoError(s.saves.Save(ctx, state))

	exists, err = s.saves.Exists(ctx)
	s.Require().NoError(err)
	s.Assert().True(exists)

	loaded, err := s.saves.Load(ctx)
	s.Require().NoError(err)
	s.Assert().Equal(state.ID, loaded.ID)
	s.Assert().Equal(state.Player2, loaded.Player2)
	s.Assert().Equal(state.HistoryPlayer1, loaded.HistoryPlayer1)
	s.Assert().Equal(state.HistoryPlayer2, loaded.HistoryPlayer2)
	s.Assert().Equal(uint32(1), loaded.ScorePlayer1)
	s.Assert().Equal(uint32(3), loaded.CurrentRound)
	s.Assert().Equal(models.Lizard, *loaded.LastMovePlayer2)
}

func (s *JSONFileSuite) TestSave_LoadMissing() {
	_, err := s.saves.Load(context.Background())
	s.Assert().True(errors.Is(err, fs.ErrNotExist))
}

func (s *JSONFileSuite) TestSave_LoadCorrupt() {
	s.Require().NoError(jsonfile.EnsureDir(s.dir))
	s.Require().NoError(os.WriteFile(filepath.Join(s.dir, jsonfile.SaveStateFile), []byte(`{"player1": 7}`), 0o644))

	_, err := s.saves.Load(context.Background())
	s.Assert().True(errors.Is(err, repository.ErrCorrupt))
}

func (s *JSONFileSuite) TestSave_LoadInconsistentHistory() {
	s.Require().NoError(jsonfile.EnsureDir(s.dir))
	body := `{
  "id": "x",
  "player1": {"name": "a", "player_type": {"kind": "human"}},
  "player2": {"name": "b", "player_type": {"kind": "human"}},
  "ruleset": "Classic",
  "match_format": {"kind": "single_round"},
  "current_round": 2,
  "history_p1": ["Rock"],
  "history_p2": []
}`
	s.Require().NoError(os.WriteFile(filepath.Join(s.dir, jsonfile.SaveStateFile), []byte(body), 0o644))

	_, err := s.saves.Load(context.Background())
	s.Assert().True(errors.Is(err, repository.ErrCorrupt))
}

func (s *JSONFileSuite) TestSave_Delete() {
	ctx := context.Background()
	state := models.NewMatchState(models.NewHuman("a"), models.NewHuman("b"), models.Classic, models.SingleRound())
	s.Require().NoError(s.saves.Save(ctx, state))

	s.Require().NoError(s.saves.Delete(ctx))
	exists, err := s.saves.Exists(ctx)
	s.Require().NoError(err)
	s.Assert().False(exists)

	s.Assert().NoError(s.saves.Delete(ctx), "deleting a missing save is not an error")
}

func TestJSONFileSuite(t *testing.T) {
	suite.Run(t, new(JSONFileSuite))
}
