package memory

import (
	"context"

	"github.com/riskibarqy/mlb-daily-stats/internal/domain/homerun"
	"github.com/riskibarqy/mlb-daily-stats/internal/domain/leaderboard"
	"github.com/riskibarqy/mlb-daily-stats/internal/domain/pitcher"
)

type HomeRunRepository struct {
	rows *datedCollection[homerun.Event]
}

func NewHomeRunRepository() *HomeRunRepository {
	return &HomeRunRepository{rows: newDatedCollection[homerun.Event]()}
}

func (r *HomeRunRepository) ListByDate(_ context.Context, date string) ([]homerun.Event, error) {
	return r.rows.list(date), nil
}

func (r *HomeRunRepository) ReplaceByDate(_ context.Context, date string, items []homerun.Event) error {
	r.rows.replace(date, items)
	return nil
}

type LeaderboardRepository struct {
	rows *datedCollection[leaderboard.Entry]
}

func NewLeaderboardRepository() *LeaderboardRepository {
	return &LeaderboardRepository{rows: newDatedCollection[leaderboard.Entry]()}
}

func (r *LeaderboardRepository) ListByDate(_ context.Context, date string) ([]leaderboard.Entry, error) {
	return r.rows.list(date), nil
}

func (r *LeaderboardRepository) ReplaceByDate(_ context.Context, date string, items []leaderboard.Entry) error {
	r.rows.replace(date, items)
	return nil
}

type PitcherRepository struct {
	rows *datedCollection[pitcher.StartingPitcher]
}

func NewPitcherRepository() *PitcherRepository {
	return &PitcherRepository{rows: newDatedCollection[pitcher.StartingPitcher]()}
}

func (r *PitcherRepository) ListByDate(_ context.Context, date string) ([]pitcher.StartingPitcher, error) {
	return r.rows.list(date), nil
}

func (r *PitcherRepository) ReplaceByDate(_ context.Context, date string, items []pitcher.StartingPitcher) error {
	r.rows.replace(date, items)
	return nil
}

// StoreRepository reports on the in-memory collections. Ping always succeeds.
type StoreRepository struct {
	homeRuns *HomeRunRepository
	leaders  *LeaderboardRepository
	pitchers *PitcherRepository
}

func NewStoreRepository(homeRuns *HomeRunRepository, leaders *LeaderboardRepository, pitchers *PitcherRepository) *StoreRepository {
	return &StoreRepository{homeRuns: homeRuns, leaders: leaders, pitchers: pitchers}
}

func (r *StoreRepository) Ping(context.Context) error {
	return nil
}

func (r *StoreRepository) CountByCollection(context.Context) (map[string]int, error) {
	return map[string]int{
		"daily_homeruns": r.homeRuns.rows.count(),
		"leaderboard":    r.leaders.rows.count(),
		"pitchers":       r.pitchers.rows.count(),
	}, nil
}
