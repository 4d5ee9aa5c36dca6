package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/riskibarqy/mlb-daily-stats/internal/domain/homerun"
	"github.com/riskibarqy/mlb-daily-stats/internal/domain/leaderboard"
	"github.com/riskibarqy/mlb-daily-stats/internal/domain/pitcher"
	"github.com/riskibarqy/mlb-daily-stats/internal/platform/logging"
	"github.com/riskibarqy/mlb-daily-stats/internal/platform/reportdate"
)

const (
	CollectionDailyHomeRuns = "daily_homeruns"
	CollectionLeaderboard   = "leaderboard"
	CollectionPitchers      = "pitchers"
)

// StoreInspector reports connectivity and row counts of the backing store.
type StoreInspector interface {
	Ping(ctx context.Context) error
	CountByCollection(ctx context.Context) (map[string]int, error)
}

type HealthStatus struct {
	Healthy   bool
	Database  string
	CheckedAt time.Time
}

type QueryService struct {
	homeRunRepo homerun.Repository
	leaderRepo  leaderboard.Repository
	pitcherRepo pitcher.Repository
	store       StoreInspector
	dates       DateSource
	logger      *logging.Logger
}

func NewQueryService(
	homeRunRepo homerun.Repository,
	leaderRepo leaderboard.Repository,
	pitcherRepo pitcher.Repository,
	store StoreInspector,
	dates DateSource,
	logger *logging.Logger,
) *QueryService {
	if logger == nil {
		logger = logging.Default()
	}
	return &QueryService{
		homeRunRepo: homeRunRepo,
		leaderRepo:  leaderRepo,
		pitcherRepo: pitcherRepo,
		store:       store,
		dates:       dates,
		logger:      logger.Named("query"),
	}
}

// ListHomeRuns returns the home runs stored for date, longest first. An empty
// date means the current reporting date.
func (s *QueryService) ListHomeRuns(ctx context.Context, date string) ([]homerun.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryService.ListHomeRuns")
	defer span.End()

	date = strings.TrimSpace(date)
	if date == "" {
		date = s.dates.Today()
	}
	if !reportdate.Valid(date) {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}

	items, err := s.homeRunRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("list home runs date=%s: %w", date, err)
	}
	homerun.SortByDistance(items)
	return items, nil
}

func (s *QueryService) ListLeaderboard(ctx context.Context) ([]leaderboard.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryService.ListLeaderboard")
	defer span.End()

	date := s.dates.Today()
	items, err := s.leaderRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("list leaderboard date=%s: %w", date, err)
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].HomeRuns != items[j].HomeRuns {
			return items[i].HomeRuns > items[j].HomeRuns
		}
		return items[i].Rank.Position < items[j].Rank.Position
	})
	return items, nil
}

func (s *QueryService) ListPitchers(ctx context.Context) ([]pitcher.StartingPitcher, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryService.ListPitchers")
	defer span.End()

	date := s.dates.Today()
	items, err := s.pitcherRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("list pitchers date=%s: %w", date, err)
	}
	return items, nil
}

// Health never returns an error; a failed ping is reported as unhealthy.
func (s *QueryService) Health(ctx context.Context) HealthStatus {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryService.Health")
	defer span.End()

	status := HealthStatus{Healthy: true, Database: "connected", CheckedAt: time.Now().UTC()}
	if err := s.store.Ping(ctx); err != nil {
		s.logger.WarnContext(ctx, "database ping failed", "error", err)
		status.Healthy = false
		status.Database = "disconnected"
	}
	return status
}

func (s *QueryService) CollectionCounts(ctx context.Context) (map[string]int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryService.CollectionCounts")
	defer span.End()

	counts, err := s.store.CountByCollection(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: count collections: %v", ErrDependencyUnavailable, err)
	}
	return counts, nil
}
