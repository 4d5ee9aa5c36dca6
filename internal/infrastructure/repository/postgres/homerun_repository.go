package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/mlb-daily-stats/internal/domain/homerun"
	qb "github.com/riskibarqy/mlb-daily-stats/internal/platform/querybuilder"
)

type HomeRunRepository struct {
	db *sqlx.DB
}

func NewHomeRunRepository(db *sqlx.DB) *HomeRunRepository {
	return &HomeRunRepository{db: db}
}

func (r *HomeRunRepository) ListByDate(ctx context.Context, date string) ([]homerun.Event, error) {
	query, args, err := qb.Select("*").From(tableDailyHomeRuns).
		Where(qb.Eq("report_date", date)).
		OrderBy("total_distance DESC NULLS LAST", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list home runs query: %w", err)
	}

	var rows []homeRunTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list home runs: %w", err)
	}

	out := make([]homerun.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, homerun.Event{
			PlayerID:      row.PlayerID,
			Name:          row.Name,
			Description:   row.Description,
			ImageURL:      row.ImageURL,
			LaunchSpeed:   nullFloat64ToPtr(row.LaunchSpeed),
			TotalDistance: nullInt64ToIntPtr(row.TotalDistance),
			Date:          formatReportDate(row.ReportDate),
		})
	}
	return out, nil
}

func (r *HomeRunRepository) ReplaceByDate(ctx context.Context, date string, items []homerun.Event) error {
	models := make([]any, 0, len(items))
	for _, item := range items {
		models = append(models, homeRunInsertModel{
			ReportDate:    date,
			PlayerID:      item.PlayerID,
			Name:          item.Name,
			Description:   item.Description,
			ImageURL:      item.ImageURL,
			LaunchSpeed:   nullFloat64FromPtr(item.LaunchSpeed),
			TotalDistance: nullInt64FromIntPtr(item.TotalDistance),
		})
	}
	return replaceByDate(ctx, r.db, tableDailyHomeRuns, date, models)
}
