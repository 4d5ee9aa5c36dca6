package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/mlb-daily-stats/internal/domain/homerun"
	"github.com/riskibarqy/mlb-daily-stats/internal/domain/leaderboard"
	"github.com/riskibarqy/mlb-daily-stats/internal/domain/pitcher"
	"github.com/riskibarqy/mlb-daily-stats/internal/platform/id"
	"github.com/riskibarqy/mlb-daily-stats/internal/platform/logging"
	"github.com/riskibarqy/mlb-daily-stats/internal/platform/metrics"
	"github.com/riskibarqy/mlb-daily-stats/internal/platform/resilience"
)

type Category string

const (
	CategoryHomeRuns    Category = "homeruns"
	CategoryLeaderboard Category = "leaderboard"
	CategoryPitchers    Category = "pitchers"

	runStatusSuccess = "success"
	runStatusFailed  = "failed"

	runAllFlightKey = "all"

	DefaultHeadshotURLTemplate = "https://content.mlb.com/images/mlb/{season}/players/headshots/{id}.jpg"
)

// Categories lists every pipeline in the order a full run executes them.
var Categories = []Category{CategoryHomeRuns, CategoryLeaderboard, CategoryPitchers}

func ParseCategory(raw string) (Category, error) {
	switch Category(strings.ToLower(strings.TrimSpace(raw))) {
	case CategoryHomeRuns:
		return CategoryHomeRuns, nil
	case CategoryLeaderboard:
		return CategoryLeaderboard, nil
	case CategoryPitchers:
		return CategoryPitchers, nil
	default:
		return "", fmt.Errorf("%w: unknown pipeline category %q", ErrInvalidInput, raw)
	}
}

// DateSource yields the reporting date used to partition stored rows.
type DateSource interface {
	Today() string
}

type PipelineConfig struct {
	// Season overrides the season derived from the reporting date when > 0.
	Season              int
	LeaderLimit         int
	MaxWorkers          int
	HeadshotURLTemplate string
}

type RunResult struct {
	Category   Category `json:"category"`
	Date       string   `json:"date"`
	Records    int      `json:"records"`
	Status     string   `json:"status"`
	DurationMs int64    `json:"duration_ms"`
	Message    string   `json:"message,omitempty"`
}

type RunSummary struct {
	RunID     string      `json:"run_id"`
	Date      string      `json:"date"`
	StartedAt time.Time   `json:"started_at"`
	Results   []RunResult `json:"results"`
}

// PipelineService fetches upstream stats, reshapes them and replaces the
// reporting date's rows. Overlapping triggers for the same category, or for a
// full run, share the in-flight execution.
type PipelineService struct {
	provider     StatsProvider
	homeRunRepo  homerun.Repository
	leaderRepo   leaderboard.Repository
	pitcherRepo  pitcher.Repository
	dates        DateSource
	idGen        id.Generator
	metrics      *metrics.Recorder
	logger       *logging.Logger
	cfg          PipelineConfig
	categoryRuns resilience.SingleFlight[RunResult]
	fullRuns     resilience.SingleFlight[RunSummary]
}

func NewPipelineService(
	provider StatsProvider,
	homeRunRepo homerun.Repository,
	leaderRepo leaderboard.Repository,
	pitcherRepo pitcher.Repository,
	dates DateSource,
	idGen id.Generator,
	recorder *metrics.Recorder,
	logger *logging.Logger,
	cfg PipelineConfig,
) *PipelineService {
	if logger == nil {
		logger = logging.Default()
	}
	if idGen == nil {
		idGen = id.NewUUIDGenerator()
	}
	if cfg.LeaderLimit <= 0 {
		cfg.LeaderLimit = leaderboard.DefaultLimit
	}
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = 1
	}
	if strings.TrimSpace(cfg.HeadshotURLTemplate) == "" {
		cfg.HeadshotURLTemplate = DefaultHeadshotURLTemplate
	}

	return &PipelineService{
		provider:    provider,
		homeRunRepo: homeRunRepo,
		leaderRepo:  leaderRepo,
		pitcherRepo: pitcherRepo,
		dates:       dates,
		idGen:       idGen,
		metrics:     recorder,
		logger:      logger.Named("pipeline"),
		cfg:         cfg,
	}
}

// RunAll executes every category sequentially. A failing category does not
// stop the others; their errors are combined.
func (s *PipelineService) RunAll(ctx context.Context) (RunSummary, error) {
	summary, err, shared := s.fullRuns.Do(runAllFlightKey, func() (RunSummary, error) {
		return s.runAll(ctx)
	})
	if shared {
		s.logger.InfoContext(ctx, "joined in-flight pipeline run", "run_id", summary.RunID)
	}
	return summary, err
}

func (s *PipelineService) runAll(ctx context.Context) (RunSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PipelineService.RunAll")
	defer span.End()

	runID, err := s.idGen.NewID()
	if err != nil {
		return RunSummary{}, fmt.Errorf("generate run id: %w", err)
	}

	summary := RunSummary{
		RunID:     runID,
		Date:      s.dates.Today(),
		StartedAt: time.Now().UTC(),
		Results:   make([]RunResult, 0, len(Categories)),
	}
	s.logger.InfoContext(ctx, "pipeline run started", "run_id", runID, "date", summary.Date)

	var combined error
	for _, category := range Categories {
		result, runErr := s.Run(ctx, category)
		summary.Results = append(summary.Results, result)
		combined = crerr.CombineErrors(combined, runErr)
	}

	if combined != nil {
		s.logger.ErrorContext(ctx, "pipeline run finished with errors", "run_id", runID, "error", combined)
		return summary, combined
	}
	s.logger.InfoContext(ctx, "pipeline run finished", "run_id", runID)
	return summary, nil
}

// Run executes one category for the current reporting date.
func (s *PipelineService) Run(ctx context.Context, category Category) (RunResult, error) {
	if _, err := ParseCategory(string(category)); err != nil {
		return RunResult{}, err
	}

	result, err, _ := s.categoryRuns.Do(string(category), func() (RunResult, error) {
		return s.runCategory(ctx, category)
	})
	return result, err
}

// Running reports whether a full run is in progress.
func (s *PipelineService) Running() bool {
	return s.fullRuns.InFlight(runAllFlightKey)
}

func (s *PipelineService) runCategory(ctx context.Context, category Category) (RunResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PipelineService.Run."+string(category))
	defer span.End()

	start := time.Now()
	date := s.dates.Today()
	result := RunResult{Category: category, Date: date}

	var (
		records int
		err     error
	)
	switch category {
	case CategoryHomeRuns:
		records, err = s.updateHomeRuns(ctx, date)
	case CategoryLeaderboard:
		records, err = s.updateLeaderboard(ctx, date)
	case CategoryPitchers:
		records, err = s.updatePitchers(ctx, date)
	}

	took := time.Since(start)
	result.DurationMs = took.Milliseconds()
	result.Records = records
	s.metrics.ObservePipelineRun(string(category), records, took, err)

	if err != nil {
		result.Status = runStatusFailed
		result.Message = err.Error()
		s.logger.ErrorContext(ctx, "pipeline category failed", "category", category, "date", date, "error", err)
		return result, fmt.Errorf("update %s: %w", category, err)
	}

	result.Status = runStatusSuccess
	s.logger.InfoContext(ctx, "pipeline category stored", "category", category, "date", date, "records", records, "duration_ms", result.DurationMs)
	return result, nil
}

// extractGamePKs never fails; an unreachable schedule yields no games.
func (s *PipelineService) extractGamePKs(ctx context.Context, date string) []int64 {
	gamePKs, err := s.provider.FetchGamePKs(ctx, date)
	if err != nil {
		s.logger.WarnContext(ctx, "extract game pks failed, continuing with no games", "date", date, "error", err)
		return []int64{}
	}
	return gamePKs
}

func (s *PipelineService) season(date string) int {
	if s.cfg.Season > 0 {
		return s.cfg.Season
	}
	if len(date) >= 4 {
		if year, err := strconv.Atoi(date[:4]); err == nil {
			return year
		}
	}
	return time.Now().Year()
}

func (s *PipelineService) headshotURL(season int) func(int64) string {
	return func(playerID int64) string {
		return strings.NewReplacer(
			"{season}", strconv.Itoa(season),
			"{id}", strconv.FormatInt(playerID, 10),
		).Replace(s.cfg.HeadshotURLTemplate)
	}
}
