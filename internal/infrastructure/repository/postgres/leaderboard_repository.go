package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/mlb-daily-stats/internal/domain/leaderboard"
	qb "github.com/riskibarqy/mlb-daily-stats/internal/platform/querybuilder"
)

type LeaderboardRepository struct {
	db *sqlx.DB
}

func NewLeaderboardRepository(db *sqlx.DB) *LeaderboardRepository {
	return &LeaderboardRepository{db: db}
}

func (r *LeaderboardRepository) ListByDate(ctx context.Context, date string) ([]leaderboard.Entry, error) {
	query, args, err := qb.Select("*").From(tableLeaderboard).
		Where(qb.Eq("report_date", date)).
		OrderBy("home_runs DESC", "rank_position", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list leaderboard query: %w", err)
	}

	var rows []leaderboardTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list leaderboard: %w", err)
	}

	out := make([]leaderboard.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, leaderboard.Entry{
			PlayerID:    row.PlayerID,
			Name:        row.Name,
			Team:        row.Team,
			Position:    row.Position,
			HomeRuns:    row.HomeRuns,
			RBI:         row.RBI,
			AVG:         row.AVG,
			OPS:         row.OPS,
			StolenBases: row.StolenBases,
			ABPerHR:     row.ABPerHR,
			Date:        formatReportDate(row.ReportDate),
			Rank:        leaderboard.Rank{Position: row.RankPosition, Tied: row.RankTied},
		})
	}
	return out, nil
}

func (r *LeaderboardRepository) ReplaceByDate(ctx context.Context, date string, items []leaderboard.Entry) error {
	models := make([]any, 0, len(items))
	for _, item := range items {
		models = append(models, leaderboardInsertModel{
			ReportDate:   date,
			PlayerID:     item.PlayerID,
			Name:         item.Name,
			Team:         item.Team,
			Position:     item.Position,
			HomeRuns:     item.HomeRuns,
			RBI:          item.RBI,
			AVG:          item.AVG,
			OPS:          item.OPS,
			StolenBases:  item.StolenBases,
			ABPerHR:      item.ABPerHR,
			RankPosition: item.Rank.Position,
			RankTied:     item.Rank.Tied,
		})
	}
	return replaceByDate(ctx, r.db, tableLeaderboard, date, models)
}
