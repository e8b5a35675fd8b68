package testutil

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
	"github.com/vytor/rpsarena/internal/db"
	"github.com/vytor/rpsarena/internal/match"
	"github.com/vytor/rpsarena/internal/models"
)

// NewTestDB creates an in-memory SQLite database with the history schema
// applied. It is closed when the test ends.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := sql.Open("sqlite3", ":memory:?_foreign_keys=on")
	require.NoError(t, err)
	// every pooled connection would otherwise get its own empty database
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = conn.Close() })

	names, scripts, err := db.Migrations()
	require.NoError(t, err)
	for _, name := range names {
		_, err := conn.Exec(scripts[name])
		require.NoError(t, err, "failed to apply migration %s", name)
	}
	return conn
}

// MustClose closes a resource and fails the test on error.
func MustClose(t *testing.T, closer interface{ Close() error }) {
	t.Helper()
	require.NoError(t, closer.Close())
}

// PlayedMatch plays the given move pairs through a fresh match and returns
// the finished record, stamped at finishedAt.
func PlayedMatch(p1, p2 models.Player, ruleset models.Ruleset, format models.MatchFormat, finishedAt time.Time, moves ...[2]models.Gesture) models.MatchRecord {
	state := models.NewMatchState(p1, p2, ruleset, format)
	state.StartedAt = finishedAt.Add(-time.Minute)
	for i, m := range moves {
		match.ResolveRound(state, m[0], m[1])
		if i < len(moves)-1 {
			state.CurrentRound++
		}
	}
	return match.Record(state, match.CheckOutcome(state), finishedAt)
}
