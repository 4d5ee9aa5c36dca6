package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/mlb-daily-stats/external/mlbstats"
	"github.com/riskibarqy/mlb-daily-stats/internal/config"
	"github.com/riskibarqy/mlb-daily-stats/internal/domain/homerun"
	"github.com/riskibarqy/mlb-daily-stats/internal/domain/leaderboard"
	"github.com/riskibarqy/mlb-daily-stats/internal/domain/pitcher"
	"github.com/riskibarqy/mlb-daily-stats/internal/domain/roster"
	"github.com/riskibarqy/mlb-daily-stats/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/mlb-daily-stats/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/mlb-daily-stats/internal/interfaces/httpapi"
	"github.com/riskibarqy/mlb-daily-stats/internal/platform/cache"
	"github.com/riskibarqy/mlb-daily-stats/internal/platform/id"
	"github.com/riskibarqy/mlb-daily-stats/internal/platform/logging"
	"github.com/riskibarqy/mlb-daily-stats/internal/platform/metrics"
	"github.com/riskibarqy/mlb-daily-stats/internal/platform/reportdate"
	"github.com/riskibarqy/mlb-daily-stats/internal/platform/resilience"
	"github.com/riskibarqy/mlb-daily-stats/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"
)

const dbPingTimeout = 5 * time.Second

// App is the wired service: the HTTP server, the pipeline and, when enabled,
// the scheduler that drives it.
type App struct {
	Server    *http.Server
	Pipeline  *usecase.PipelineService
	Scheduler *usecase.Scheduler
	db        *sqlx.DB
}

type repositories struct {
	homeRuns homerun.Repository
	leaders  leaderboard.Repository
	pitchers pitcher.Repository
	store    usecase.StoreInspector
	db       *sqlx.DB
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	dates, err := newDateSource(cfg)
	if err != nil {
		return nil, err
	}

	repos, err := openRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	var recorder *metrics.Recorder
	var metricsHandler http.Handler
	if cfg.MetricsEnabled {
		recorder = metrics.NewRecorder()
		metricsHandler = recorder.Handler()
	}

	provider := mlbstats.NewClient(mlbstats.ClientConfig{
		BaseURL:    cfg.MLBBaseURL,
		UserAgent:  cfg.ServiceName + "/" + cfg.ServiceVersion,
		Timeout:    cfg.MLBTimeout,
		MaxRetries: cfg.MLBMaxRetries,
		Logger:     logger,
		Metrics:    recorder,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.MLBCircuitEnabled,
			FailureThreshold: cfg.MLBCircuitFailureCount,
			OpenTimeout:      cfg.MLBCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.MLBCircuitHalfOpenMaxReq,
		},
	})

	pipeline := usecase.NewPipelineService(
		provider,
		repos.homeRuns,
		repos.leaders,
		repos.pitchers,
		dates,
		id.NewUUIDGenerator(),
		recorder,
		logger,
		usecase.PipelineConfig{
			Season:              cfg.MLBSeason,
			LeaderLimit:         cfg.MLBLeaderLimit,
			MaxWorkers:          cfg.PipelineMaxWorkers,
			HeadshotURLTemplate: cfg.MLBHeadshotURLTemplate,
		},
	)
	query := usecase.NewQueryService(repos.homeRuns, repos.leaders, repos.pitchers, repos.store, dates, logger)
	rosterSvc := usecase.NewRosterService(provider, cache.NewStore[[]roster.Player](cfg.RosterCacheTTL), cfg.PipelineMaxWorkers, logger)

	handler := httpapi.NewHandler(pipeline, query, rosterSvc, logger)
	router := httpapi.NewRouter(handler, logger, httpapi.RouterConfig{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		AdminKey:           cfg.AdminKey,
		MetricsHandler:     metricsHandler,
	})

	app := &App{
		Server: &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           router,
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
		},
		Pipeline: pipeline,
		db:       repos.db,
	}
	if cfg.PipelineEnabled {
		app.Scheduler = usecase.NewScheduler(pipeline, cfg.PipelineInterval, cfg.PipelineInitialDelay, logger)
	}

	if cfg.AdminKey == "" {
		logger.Warn("ADMIN_KEY is empty, admin update endpoints are disabled")
	}
	return app, nil
}

// Close releases the database pool, if any.
func (a *App) Close() error {
	if a == nil || a.db == nil {
		return nil
	}
	return a.db.Close()
}

func newDateSource(cfg config.Config) (usecase.DateSource, error) {
	if cfg.TestMode {
		return reportdate.Pinned(cfg.TestModeDate), nil
	}
	clock, err := reportdate.NewClock(cfg.ReportTimezone)
	if err != nil {
		return nil, err
	}
	return clock, nil
}

// openRepositories selects Postgres when DB_URL is set and the in-memory
// store otherwise.
func openRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, error) {
	if cfg.DBURL == "" {
		logger.Warn("DB_URL is empty, using in-memory store")
		homeRuns := memory.NewHomeRunRepository()
		leaders := memory.NewLeaderboardRepository()
		pitchers := memory.NewPitcherRepository()
		return repositories{
			homeRuns: homeRuns,
			leaders:  leaders,
			pitchers: pitchers,
			store:    memory.NewStoreRepository(homeRuns, leaders, pitchers),
		}, nil
	}

	db, err := openDB(ctx, cfg)
	if err != nil {
		return repositories{}, err
	}
	logger.Info("postgres connected", "database", dbNameFromURL(cfg.DBURL))

	return repositories{
		homeRuns: postgres.NewHomeRunRepository(db),
		leaders:  postgres.NewLeaderboardRepository(db),
		pitchers: postgres.NewPitcherRepository(db),
		store:    postgres.NewStoreRepository(db),
		db:       db,
	}, nil
}

func openDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dsn := NormalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithDBName(dbNameFromURL(dsn)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}
