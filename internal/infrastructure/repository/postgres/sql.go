package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	qb "github.com/riskibarqy/mlb-daily-stats/internal/platform/querybuilder"
)

const reportDateLayout = "2006-01-02"

// insertChunkSize keeps multi-row inserts well under the 65535 bind parameter limit.
const insertChunkSize = 500

type statement struct {
	query string
	args  []any
}

// replaceStatements plans the clear of date followed by chunked inserts.
// The clear is always the first statement, even when models is empty.
func replaceStatements(table, date string, models []any) ([]statement, error) {
	clearQuery, clearArgs, err := qb.DeleteFrom(table).Where(qb.Eq("report_date", date)).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build clear %s query: %w", table, err)
	}

	out := make([]statement, 0, 1+(len(models)+insertChunkSize-1)/insertChunkSize)
	out = append(out, statement{query: clearQuery, args: clearArgs})
	for start := 0; start < len(models); start += insertChunkSize {
		end := min(start+insertChunkSize, len(models))
		query, args, err := qb.InsertModels(table, models[start:end], "")
		if err != nil {
			return nil, fmt.Errorf("build insert %s query: %w", table, err)
		}
		out = append(out, statement{query: query, args: args})
	}
	return out, nil
}

// replaceByDate deletes the date's rows and inserts models in one transaction,
// so readers see either the old set or the new one.
func replaceByDate(ctx context.Context, db *sqlx.DB, table, date string, models []any) error {
	statements, err := replaceStatements(table, date, models)
	if err != nil {
		return err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace %s: %w", table, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt.query, stmt.args...); err != nil {
			if i == 0 {
				return fmt.Errorf("clear %s date=%s: %w", table, date, err)
			}
			return fmt.Errorf("insert %s date=%s chunk=%d: %w", table, date, i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace %s tx: %w", table, err)
	}
	return nil
}

func formatReportDate(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.Format(reportDateLayout)
}

func nullFloat64FromPtr(value *float64) sql.NullFloat64 {
	if value == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *value, Valid: true}
}

func nullFloat64ToPtr(value sql.NullFloat64) *float64 {
	if !value.Valid {
		return nil
	}
	v := value.Float64
	return &v
}

func nullInt64FromIntPtr(value *int) sql.NullInt64 {
	if value == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*value), Valid: true}
}

func nullInt64ToIntPtr(value sql.NullInt64) *int {
	if !value.Valid {
		return nil
	}
	v := int(value.Int64)
	return &v
}
