package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/riskibarqy/mlb-daily-stats/internal/platform/logging"
	"github.com/riskibarqy/mlb-daily-stats/internal/platform/reportdate"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                  string
	ServiceName             string
	ServiceVersion          string
	HTTPAddr                string
	ReadTimeout             time.Duration
	WriteTimeout            time.Duration
	LogLevel                logging.Level
	DBURL                   string
	DBDisablePreparedBinary bool
	CORSAllowedOrigins      []string

	MLBBaseURL               string
	MLBTimeout               time.Duration
	MLBMaxRetries            int
	MLBCircuitEnabled        bool
	MLBCircuitFailureCount   int
	MLBCircuitOpenTimeout    time.Duration
	MLBCircuitHalfOpenMaxReq int
	MLBSeason                int
	MLBLeaderLimit           int
	MLBHeadshotURLTemplate   string

	ReportTimezone       string
	PipelineEnabled      bool
	PipelineInterval     time.Duration
	PipelineInitialDelay time.Duration
	PipelineMaxWorkers   int
	AdminKey             string
	TestMode             bool
	TestModeDate         string
	RosterCacheTTL       time.Duration
	MetricsEnabled       bool

	PprofEnabled               bool
	PprofAddr                  string
	UptraceEnabled             bool
	UptraceDSN                 string
	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
}

// LoadDotEnv populates the environment from the given files. Missing files are
// skipped and variables already set in the environment win.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", path, err)
		}
	}
	return nil
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:                 appEnv,
		ServiceName:            getEnv("APP_SERVICE_NAME", "mlb-daily-stats"),
		ServiceVersion:         getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:               getEnv("APP_HTTP_ADDR", ":8080"),
		LogLevel:               parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
		DBURL:                  strings.TrimSpace(os.Getenv("DB_URL")),
		CORSAllowedOrigins:     splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		MLBBaseURL:             strings.TrimSpace(getEnv("MLB_BASE_URL", "https://statsapi.mlb.com")),
		MLBHeadshotURLTemplate: strings.TrimSpace(getEnv("MLB_HEADSHOT_URL_TEMPLATE", "")),
		ReportTimezone:         strings.TrimSpace(getEnv("REPORT_TIMEZONE", reportdate.DefaultTimezone)),
		AdminKey:               strings.TrimSpace(getEnv("ADMIN_KEY", "")),
		TestModeDate:           strings.TrimSpace(getEnv("TEST_MODE_DATE", "")),
		PprofAddr:              strings.TrimSpace(getEnv("PPROF_ADDR", ":6060")),
		UptraceDSN:             strings.TrimSpace(getEnv("UPTRACE_DSN", "")),
		PyroscopeServerAddress: strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", "")),
		PyroscopeAuthToken:     strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
	}
	cfg.PyroscopeBasicAuthPassword = strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", ""))
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.UptraceDSN == "" {
		cfg.UptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}

	bools := []struct {
		key      string
		fallback bool
		dst      *bool
	}{
		{"DB_DISABLE_PREPARED_BINARY_RESULT", false, &cfg.DBDisablePreparedBinary},
		{"MLB_CIRCUIT_ENABLED", true, &cfg.MLBCircuitEnabled},
		{"PIPELINE_ENABLED", true, &cfg.PipelineEnabled},
		{"TEST_MODE", false, &cfg.TestMode},
		{"METRICS_ENABLED", true, &cfg.MetricsEnabled},
		{"PPROF_ENABLED", false, &cfg.PprofEnabled},
		{"UPTRACE_ENABLED", false, &cfg.UptraceEnabled},
		{"PYROSCOPE_ENABLED", false, &cfg.PyroscopeEnabled},
	}
	for _, b := range bools {
		if *b.dst, err = getEnvAsBool(b.key, b.fallback); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", b.key, err)
		}
	}

	durations := []struct {
		key      string
		fallback time.Duration
		dst      *time.Duration
		min      time.Duration
	}{
		{"APP_READ_TIMEOUT", 10 * time.Second, &cfg.ReadTimeout, 1},
		// Manual runs are synchronous, so writes get a generous timeout.
		{"APP_WRITE_TIMEOUT", 5 * time.Minute, &cfg.WriteTimeout, 1},
		{"MLB_TIMEOUT", 20 * time.Second, &cfg.MLBTimeout, 1},
		{"MLB_CIRCUIT_OPEN_TIMEOUT", 15 * time.Second, &cfg.MLBCircuitOpenTimeout, 1},
		{"PIPELINE_INTERVAL", 30 * time.Minute, &cfg.PipelineInterval, 1},
		{"PIPELINE_INITIAL_DELAY", 10 * time.Second, &cfg.PipelineInitialDelay, 0},
		{"ROSTER_CACHE_TTL", time.Hour, &cfg.RosterCacheTTL, 1},
		{"PYROSCOPE_UPLOAD_RATE", 15 * time.Second, &cfg.PyroscopeUploadRate, 1},
	}
	for _, d := range durations {
		if *d.dst, err = getEnvAsDuration(d.key, d.fallback); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", d.key, err)
		}
		if *d.dst < d.min {
			if d.min == 0 {
				return Config{}, fmt.Errorf("%s must be >= 0", d.key)
			}
			return Config{}, fmt.Errorf("%s must be > 0", d.key)
		}
	}

	ints := []struct {
		key      string
		fallback int
		dst      *int
		min      int
	}{
		{"MLB_MAX_RETRIES", 0, &cfg.MLBMaxRetries, 0},
		{"MLB_CIRCUIT_FAILURE_COUNT", 5, &cfg.MLBCircuitFailureCount, 1},
		{"MLB_CIRCUIT_HALF_OPEN_MAX_REQ", 2, &cfg.MLBCircuitHalfOpenMaxReq, 1},
		{"MLB_SEASON", 0, &cfg.MLBSeason, 0},
		{"MLB_LEADER_LIMIT", 10, &cfg.MLBLeaderLimit, 1},
		{"PIPELINE_MAX_WORKERS", 1, &cfg.PipelineMaxWorkers, 1},
	}
	for _, n := range ints {
		if *n.dst, err = getEnvAsInt(n.key, n.fallback); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", n.key, err)
		}
		if *n.dst < n.min {
			return Config{}, fmt.Errorf("%s must be >= %d", n.key, n.min)
		}
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if len(c.CORSAllowedOrigins) == 0 {
		return fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}
	if c.ReportTimezone == "" {
		return fmt.Errorf("REPORT_TIMEZONE cannot be empty")
	}
	if _, err := time.LoadLocation(c.ReportTimezone); err != nil {
		return fmt.Errorf("invalid REPORT_TIMEZONE %q: %w", c.ReportTimezone, err)
	}
	if c.TestMode {
		if c.TestModeDate == "" {
			return fmt.Errorf("TEST_MODE_DATE is required when TEST_MODE=true")
		}
		if !reportdate.Valid(c.TestModeDate) {
			return fmt.Errorf("TEST_MODE_DATE must be YYYY-MM-DD, got %q", c.TestModeDate)
		}
	}
	if c.MLBHeadshotURLTemplate != "" && !strings.Contains(c.MLBHeadshotURLTemplate, "{id}") {
		return fmt.Errorf("MLB_HEADSHOT_URL_TEMPLATE must contain {id}")
	}
	if c.UptraceEnabled && c.UptraceDSN == "" {
		return fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	if c.PyroscopeEnabled {
		if c.PyroscopeServerAddress == "" {
			return fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
		}
		if c.PyroscopeAppName == "" {
			return fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
		}
	}
	if c.AppEnv == EnvProd && c.DBURL == "" {
		return fmt.Errorf("DB_URL is required when APP_ENV=%s", EnvProd)
	}
	return nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	return strconv.Atoi(value)
}

func getEnvAsBool(key string, fallback bool) (bool, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	return strconv.ParseBool(value)
}

func getEnvAsDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	return time.ParseDuration(value)
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	for _, item := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			return strings.Trim(strings.TrimSpace(parts[1]), "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
