package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/rpsarena/internal/logger"
	"github.com/vytor/rpsarena/internal/models"
	"github.com/vytor/rpsarena/internal/repository"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

var matchColumns = []string{
	"id", "player1", "player2", "player1_kind", "player2_kind", "ruleset",
	"format_kind", "format_n", "score_player1", "score_player2", "winner",
	"started_at", "finished_at",
}

type historyRepository struct {
	db *sql.DB
}

// NewHistoryRepository creates a new HistoryRepository implementation
func NewHistoryRepository(db *sql.DB) repository.HistoryRepository {
	return &historyRepository{db: db}
}

func playerKind(p models.Player) string {
	if p.IsComputer() {
		return models.PlayerKindComputer + ":" + p.Type.Difficulty.String()
	}
	return models.PlayerKindHuman
}

func parsePlayerKind(name, kind string) (models.Player, error) {
	if kind == models.PlayerKindHuman {
		return models.NewHuman(name), nil
	}
	const prefix = models.PlayerKindComputer + ":"
	if len(kind) > len(prefix) && kind[:len(prefix)] == prefix {
		d, err := models.DifficultyFromName(kind[len(prefix):])
		if err != nil {
			return models.Player{}, err
		}
		return models.NewComputer(name, d), nil
	}
	return models.Player{}, fmt.Errorf("unknown player kind %q", kind)
}

func (r *historyRepository) Insert(ctx context.Context, record models.MatchRecord) error {
	log := logger.FromContext(ctx).WithPrefix("history_repo")
	log.Debug("inserting match: id=%s rounds=%d", record.ID, len(record.Rounds))

	return tx(ctx, r.db, func(tx *sql.Tx) error {
		query, args, err := sqlBuilder.Insert("matches").Columns(matchColumns...).Values(
			record.ID, record.Player1.Name, record.Player2.Name,
			playerKind(record.Player1), playerKind(record.Player2),
			record.Ruleset.String(), record.Format.Kind, record.Format.N,
			record.ScorePlayer1, record.ScorePlayer2, record.Winner,
			record.StartedAt.UTC(), record.FinishedAt.UTC(),
		).ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			log.Error("failed to insert match %s: %v", record.ID, err)
			return err
		}

		if len(record.Rounds) == 0 {
			return nil
		}
		rounds := sqlBuilder.Insert("rounds").Columns("match_id", "number", "player1_move", "player2_move", "result")
		for _, rd := range record.Rounds {
			rounds = rounds.Values(record.ID, rd.Number, rd.Player1Move.String(), rd.Player2Move.String(), rd.Result.String())
		}
		query, args, err = rounds.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			log.Error("failed to insert rounds for match %s: %v", record.ID, err)
			return err
		}
		return nil
	})
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMatch(row rowScanner) (models.MatchRecord, error) {
	var (
		rec                   models.MatchRecord
		p1, p2, k1, k2, rs    string
		formatKind            string
		formatN, s1, s2       int64
		startedAt, finishedAt time.Time
	)
	if err := row.Scan(&rec.ID, &p1, &p2, &k1, &k2, &rs, &formatKind, &formatN, &s1, &s2, &rec.Winner, &startedAt, &finishedAt); err != nil {
		return rec, err
	}

	var err error
	if rec.Player1, err = parsePlayerKind(p1, k1); err != nil {
		return rec, err
	}
	if rec.Player2, err = parsePlayerKind(p2, k2); err != nil {
		return rec, err
	}
	if rec.Ruleset, err = models.RulesetFromName(rs); err != nil {
		return rec, err
	}
	rec.Format = models.MatchFormat{Kind: formatKind, N: uint32(formatN)}
	rec.ScorePlayer1 = uint32(s1)
	rec.ScorePlayer2 = uint32(s2)
	rec.StartedAt = startedAt
	rec.FinishedAt = finishedAt
	return rec, nil
}

func (r *historyRepository) Get(ctx context.Context, id string) (*models.MatchRecord, error) {
	log := logger.FromContext(ctx).WithPrefix("history_repo")
	log.Debug("getting match: id=%s", id)

	query, args, err := sqlBuilder.Select(matchColumns...).From("matches").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	rec, err := scanMatch(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("match not found: id=%s", id)
		} else {
			log.Error("failed to get match: %v", err)
		}
		return nil, err
	}

	rounds, err := r.rounds(ctx, id)
	if err != nil {
		log.Error("failed to load rounds for match %s: %v", id, err)
		return nil, err
	}
	rec.Rounds = rounds
	return &rec, nil
}

func (r *historyRepository) rounds(ctx context.Context, matchID string) ([]models.RoundRecord, error) {
	query, args, err := sqlBuilder.Select("number", "player1_move", "player2_move", "result").
		From("rounds").
		Where(squirrel.Eq{"match_id": matchID}).
		OrderBy("number ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.RoundRecord
	for rows.Next() {
		var (
			rd             models.RoundRecord
			m1, m2, result string
		)
		if err := rows.Scan(&rd.Number, &m1, &m2, &result); err != nil {
			return nil, err
		}
		if rd.Player1Move, err = models.GestureFromName(m1); err != nil {
			return nil, err
		}
		if rd.Player2Move, err = models.GestureFromName(m2); err != nil {
			return nil, err
		}
		if rd.Result, err = models.RoundResultFromString(result); err != nil {
			return nil, err
		}
		out = append(out, rd)
	}
	return out, rows.Err()
}

// List returns matches newest first. Rounds are not loaded; use Get.
func (r *historyRepository) List(ctx context.Context, filter models.HistoryFilter) ([]models.MatchRecord, error) {
	log := logger.FromContext(ctx).WithPrefix("history_repo")
	log.Debug("listing matches: player=%s opponent=%s limit=%d offset=%d",
		filter.Player, filter.Opponent, filter.Limit, filter.Offset)

	query := sqlBuilder.Select(matchColumns...).From("matches")

	if filter.Player != "" {
		query = query.Where(squirrel.Or{
			squirrel.Eq{"player1": filter.Player},
			squirrel.Eq{"player2": filter.Player},
		})
	}
	if filter.Opponent != "" {
		if filter.Player != "" {
			query = query.Where(squirrel.Or{
				squirrel.And{squirrel.Eq{"player1": filter.Player}, squirrel.Eq{"player2": filter.Opponent}},
				squirrel.And{squirrel.Eq{"player2": filter.Player}, squirrel.Eq{"player1": filter.Opponent}},
			})
		} else {
			query = query.Where(squirrel.Or{
				squirrel.Eq{"player1": filter.Opponent},
				squirrel.Eq{"player2": filter.Opponent},
			})
		}
	}
	if filter.Ruleset != nil {
		query = query.Where(squirrel.Eq{"ruleset": filter.Ruleset.String()})
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	query = query.OrderBy("finished_at DESC", "id ASC").Limit(uint64(limit)).Offset(uint64(offset))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list matches: %v", err)
		return nil, err
	}
	defer rows.Close()

	var out []models.MatchRecord
	for rows.Next() {
		rec, err := scanMatch(rows)
		if err != nil {
			log.Error("failed to scan match row: %v", err)
			return nil, err
		}
		out = append(out, rec)
	}
	log.Debug("found %d matches", len(out))
	return out, rows.Err()
}

// GestureStats counts every gesture player has thrown across all recorded
// rounds, in enum order. Gestures never thrown are omitted. In a match
// where both sides share the name, only the player 1 moves are counted.
func (r *historyRepository) GestureStats(ctx context.Context, player string) ([]models.GestureStat, error) {
	log := logger.FromContext(ctx).WithPrefix("history_repo")
	log.Debug("gesture stats: player=%s", player)

	moveCol := squirrel.Expr("CASE WHEN m.player1 = ? THEN r.player1_move ELSE r.player2_move END", player)
	query, args, err := sqlBuilder.
		Select().
		Column(squirrel.Alias(moveCol, "move")).
		Column("COUNT(*)").
		From("rounds r").
		Join("matches m ON m.id = r.match_id").
		Where(squirrel.Or{squirrel.Eq{"m.player1": player}, squirrel.Eq{"m.player2": player}}).
		GroupBy("move").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query gesture stats: %v", err)
		return nil, err
	}
	defer rows.Close()

	var counts [5]int
	total := 0
	for rows.Next() {
		var (
			move string
			n    int
		)
		if err := rows.Scan(&move, &n); err != nil {
			return nil, err
		}
		g, err := models.GestureFromName(move)
		if err != nil {
			return nil, err
		}
		counts[g] += n
		total += n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var out []models.GestureStat
	for _, g := range models.AllGestures {
		if counts[g] == 0 {
			continue
		}
		out = append(out, models.GestureStat{
			Gesture: g,
			Count:   counts[g],
			Share:   float64(counts[g]) / float64(total),
		})
	}
	return out, nil
}

// HeadToHead tallies finished matches between playerA and playerB. Names
// are the only identity, so HeadToHead(a, a) counts a's same-name matches
// and credits every decisive one to both sides.
func (r *historyRepository) HeadToHead(ctx context.Context, playerA, playerB string) (*models.HeadToHead, error) {
	log := logger.FromContext(ctx).WithPrefix("history_repo")
	log.Debug("head to head: %s vs %s", playerA, playerB)

	query, args, err := sqlBuilder.
		Select("COUNT(*)").
		Column(squirrel.Expr("COALESCE(SUM(CASE WHEN winner = ? THEN 1 ELSE 0 END), 0)", playerA)).
		Column(squirrel.Expr("COALESCE(SUM(CASE WHEN winner = ? THEN 1 ELSE 0 END), 0)", playerB)).
		Column("COALESCE(SUM(CASE WHEN winner = '' THEN 1 ELSE 0 END), 0)").
		From("matches").
		Where(squirrel.Or{
			squirrel.And{squirrel.Eq{"player1": playerA}, squirrel.Eq{"player2": playerB}},
			squirrel.And{squirrel.Eq{"player1": playerB}, squirrel.Eq{"player2": playerA}},
		}).
		ToSql()
	if err != nil {
		return nil, err
	}

	h := &models.HeadToHead{PlayerA: playerA, PlayerB: playerB}
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&h.Matches, &h.WinsA, &h.WinsB, &h.Ties); err != nil {
		log.Error("failed to query head to head: %v", err)
		return nil, err
	}
	return h, nil
}
