package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/mlb-daily-stats/internal/domain/pitcher"
	qb "github.com/riskibarqy/mlb-daily-stats/internal/platform/querybuilder"
)

type PitcherRepository struct {
	db *sqlx.DB
}

func NewPitcherRepository(db *sqlx.DB) *PitcherRepository {
	return &PitcherRepository{db: db}
}

func (r *PitcherRepository) ListByDate(ctx context.Context, date string) ([]pitcher.StartingPitcher, error) {
	query, args, err := qb.Select("*").From(tablePitchers).
		Where(qb.Eq("report_date", date)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list pitchers query: %w", err)
	}

	var rows []pitcherTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list pitchers: %w", err)
	}

	out := make([]pitcher.StartingPitcher, 0, len(rows))
	for _, row := range rows {
		out = append(out, pitcher.StartingPitcher{
			GamePK:     row.GamePK,
			Team:       row.Team,
			TeamSide:   row.TeamSide,
			PlayerID:   row.PlayerID,
			Name:       row.Name,
			ERA:        row.ERA,
			HR9:        row.HR9,
			WHIP:       row.WHIP,
			Wins:       row.Wins,
			Losses:     row.Losses,
			Strikeouts: row.Strikeouts,
			Date:       formatReportDate(row.ReportDate),
		})
	}
	return out, nil
}

func (r *PitcherRepository) ReplaceByDate(ctx context.Context, date string, items []pitcher.StartingPitcher) error {
	models := make([]any, 0, len(items))
	for _, item := range items {
		models = append(models, pitcherInsertModel{
			ReportDate: date,
			GamePK:     item.GamePK,
			Team:       item.Team,
			TeamSide:   item.TeamSide,
			PlayerID:   item.PlayerID,
			Name:       item.Name,
			ERA:        item.ERA,
			HR9:        item.HR9,
			WHIP:       item.WHIP,
			Wins:       item.Wins,
			Losses:     item.Losses,
			Strikeouts: item.Strikeouts,
		})
	}
	return replaceByDate(ctx, r.db, tablePitchers, date, models)
}
