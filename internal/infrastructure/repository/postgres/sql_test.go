package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/mlb-daily-stats/internal/domain/homerun"
	"github.com/riskibarqy/mlb-daily-stats/internal/domain/pitcher"
	"github.com/stretchr/testify/require"
)

func TestFormatReportDate(t *testing.T) {
	t.Run("formats date column", func(t *testing.T) {
		got := formatReportDate(time.Date(2025, 5, 23, 0, 0, 0, 0, time.UTC))
		if got != "2025-05-23" {
			t.Fatalf("unexpected date: %s", got)
		}
	})

	t.Run("zero time is empty", func(t *testing.T) {
		if got := formatReportDate(time.Time{}); got != "" {
			t.Fatalf("expected empty, got %s", got)
		}
	})
}

func TestNullableConversions(t *testing.T) {
	speed := 108.7
	if got := nullFloat64ToPtr(nullFloat64FromPtr(&speed)); got == nil || *got != speed {
		t.Fatalf("unexpected speed round trip: %v", got)
	}
	if got := nullFloat64FromPtr(nil); got.Valid {
		t.Fatalf("nil speed must be NULL")
	}

	distance := 415
	if got := nullInt64ToIntPtr(nullInt64FromIntPtr(&distance)); got == nil || *got != distance {
		t.Fatalf("unexpected distance round trip: %v", got)
	}
	if got := nullInt64ToIntPtr(sql.NullInt64{}); got != nil {
		t.Fatalf("NULL distance must be nil, got %v", *got)
	}
}

func TestReplaceStatements_ClearsEvenWhenEmpty(t *testing.T) {
	t.Parallel()

	stmts, err := replaceStatements(tablePitchers, "2025-05-23", nil)
	require.NoError(t, err)
	require.Len(t, stmts, 1)
	require.Equal(t, "DELETE FROM pitchers WHERE report_date = $1", stmts[0].query)
	require.Equal(t, []any{"2025-05-23"}, stmts[0].args)
}

func TestReplaceStatements_InsertColumns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		table string
		model any
		want  string
	}{
		{
			table: tableDailyHomeRuns,
			model: homeRunInsertModel{ReportDate: "2025-05-23", PlayerID: 592450},
			want:  "INSERT INTO daily_homeruns (report_date, player_id, name, description, image_url, launch_speed, total_distance) VALUES ($1, $2, $3, $4, $5, $6, $7)",
		},
		{
			table: tableLeaderboard,
			model: leaderboardInsertModel{ReportDate: "2025-05-23", PlayerID: 592450},
			want:  "INSERT INTO leaderboard (report_date, player_id, name, team, position, home_runs, rbi, avg, ops, stolen_bases, ab_per_hr, rank_position, rank_tied) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)",
		},
		{
			table: tablePitchers,
			model: pitcherInsertModel{ReportDate: "2025-05-23", GamePK: 777001},
			want:  "INSERT INTO pitchers (report_date, game_pk, team, team_side, player_id, name, era, hr9, whip, wins, losses, strikeouts) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.table, func(t *testing.T) {
			t.Parallel()

			stmts, err := replaceStatements(tt.table, "2025-05-23", []any{tt.model})
			require.NoError(t, err)
			require.Len(t, stmts, 2)
			require.Equal(t, tt.want, stmts[1].query)
			require.Equal(t, "2025-05-23", stmts[1].args[0])
		})
	}
}

func TestReplaceStatements_ChunksInserts(t *testing.T) {
	t.Parallel()

	const columns = 13
	tests := []struct {
		rows      int
		wantStmts int
		lastRows  int
	}{
		{rows: 1, wantStmts: 2, lastRows: 1},
		{rows: insertChunkSize, wantStmts: 2, lastRows: insertChunkSize},
		{rows: insertChunkSize + 1, wantStmts: 3, lastRows: 1},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("rows=%d", tt.rows), func(t *testing.T) {
			t.Parallel()

			models := make([]any, 0, tt.rows)
			for i := 0; i < tt.rows; i++ {
				models = append(models, leaderboardInsertModel{ReportDate: "2025-05-23", PlayerID: int64(i + 1)})
			}

			stmts, err := replaceStatements(tableLeaderboard, "2025-05-23", models)
			require.NoError(t, err)
			require.Len(t, stmts, tt.wantStmts)
			for _, stmt := range stmts[1 : len(stmts)-1] {
				require.Len(t, stmt.args, insertChunkSize*columns)
			}

			last := stmts[len(stmts)-1]
			require.Len(t, last.args, tt.lastRows*columns)
			require.True(t, strings.HasSuffix(last.query, fmt.Sprintf("$%d)", tt.lastRows*columns)), last.query[len(last.query)-20:])
			require.Equal(t, int64(tt.rows), last.args[len(last.args)-columns+1])
		})
	}
}

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return sqlx.NewDb(db, "postgres"), mock
}

func TestHomeRunRepository_ReplaceByDate_CommitsClearAndInsert(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	distance := 452
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM daily_homeruns WHERE report_date = $1").
		WithArgs("2025-05-23").
		WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec("INSERT INTO daily_homeruns (report_date, player_id, name, description, image_url, launch_speed, total_distance) VALUES ($1, $2, $3, $4, $5, $6, $7)").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := NewHomeRunRepository(db).ReplaceByDate(context.Background(), "2025-05-23", []homerun.Event{
		{PlayerID: 592450, Name: "Aaron Judge", TotalDistance: &distance},
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLeaderboardRepository_ReplaceByDate_EmptyStillClears(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM leaderboard WHERE report_date = $1").
		WithArgs("2025-05-23").
		WillReturnResult(sqlmock.NewResult(0, 10))
	mock.ExpectCommit()

	require.NoError(t, NewLeaderboardRepository(db).ReplaceByDate(context.Background(), "2025-05-23", nil))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPitcherRepository_ReplaceByDate_RollsBackOnInsertFailure(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM pitchers WHERE report_date = $1").
		WithArgs("2025-05-23").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO pitchers (report_date, game_pk, team, team_side, player_id, name, era, hr9, whip, wins, losses, strikeouts) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := NewPitcherRepository(db).ReplaceByDate(context.Background(), "2025-05-23", []pitcher.StartingPitcher{
		{GamePK: 777001, PlayerID: 669373, Name: "Tarik Skubal", TeamSide: "home"},
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "insert pitchers date=2025-05-23")
	require.NoError(t, mock.ExpectationsWereMet())
}
