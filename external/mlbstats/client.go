package mlbstats

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/mlb-daily-stats/internal/platform/logging"
	"github.com/riskibarqy/mlb-daily-stats/internal/platform/metrics"
	"github.com/riskibarqy/mlb-daily-stats/internal/platform/resilience"
	"github.com/riskibarqy/mlb-daily-stats/internal/usecase"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	defaultBaseURL   = "https://statsapi.mlb.com"
	defaultUserAgent = "mlb-daily-stats/1.0"
	sportIDMLB       = "1"
	maxResponseBytes = 16 << 20
)

var errMLBTransient = crerr.New("mlb stats api transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	UserAgent      string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	Metrics        *metrics.Recorder
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	maxRetries int
	logger     *logging.Logger
	metrics    *metrics.Recorder
	breaker    *resilience.CircuitBreaker
	flight     resilience.SingleFlight[[]byte]
}

var _ usecase.StatsProvider = (*Client)(nil)

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		userAgent:  userAgent,
		maxRetries: max(cfg.MaxRetries, 0),
		logger:     logger.Named("mlbstats"),
		metrics:    cfg.Metrics,
		breaker:    resilience.NewCircuitBreaker(cfg.CircuitBreaker),
	}
}

func (c *Client) FetchGamePKs(ctx context.Context, date string) ([]int64, error) {
	var schedule scheduleEnvelope
	query := map[string]string{"date": date, "sportId": sportIDMLB}
	if err := c.doJSON(ctx, "schedule", "/api/v1/schedule", query, &schedule); err != nil {
		return nil, fmt.Errorf("fetch schedule date=%s: %w", date, err)
	}

	out := make([]int64, 0)
	if len(schedule.Dates) == 0 {
		return out, nil
	}
	for _, game := range schedule.Dates[0].Games {
		if game.GamePK > 0 {
			out = append(out, game.GamePK)
		}
	}
	return out, nil
}

func (c *Client) FetchGameFeed(ctx context.Context, gamePK int64) (usecase.ExternalGameFeed, error) {
	if gamePK <= 0 {
		return usecase.ExternalGameFeed{}, fmt.Errorf("%w: game pk must be greater than zero", usecase.ErrInvalidInput)
	}

	var feed feedEnvelope
	path := fmt.Sprintf("/api/v1.1/game/%d/feed/live", gamePK)
	if err := c.doJSON(ctx, "game_feed", path, nil, &feed); err != nil {
		return usecase.ExternalGameFeed{}, fmt.Errorf("fetch live feed game_pk=%d: %w", gamePK, err)
	}

	plays := make([]usecase.ExternalPlay, 0, len(feed.LiveData.Plays.AllPlays))
	for _, play := range feed.LiveData.Plays.AllPlays {
		item := usecase.ExternalPlay{
			EventType:   play.Result.EventType,
			Description: strings.TrimSpace(play.Result.Description),
			BatterID:    play.Matchup.Batter.ID,
			BatterName:  strings.TrimSpace(play.Matchup.Batter.FullName),
		}
		if hit := firstHitData(play); hit != nil {
			item.LaunchSpeed = hit.LaunchSpeed.FloatPtr()
			item.TotalDistance = hit.TotalDistance.IntPtr()
		}
		plays = append(plays, item)
	}

	return usecase.ExternalGameFeed{
		GamePK: gamePK,
		Home: usecase.ExternalFeedSide{
			TeamName: strings.TrimSpace(feed.GameData.Teams.Home.Name),
			Players:  mapBoxscorePlayers(feed.LiveData.Boxscore.Teams.Home.Players),
		},
		Away: usecase.ExternalFeedSide{
			TeamName: strings.TrimSpace(feed.GameData.Teams.Away.Name),
			Players:  mapBoxscorePlayers(feed.LiveData.Boxscore.Teams.Away.Players),
		},
		Plays: plays,
	}, nil
}

func (c *Client) FetchHomeRunLeaders(ctx context.Context, season, limit int) ([]usecase.ExternalLeader, error) {
	var leaders leadersEnvelope
	query := map[string]string{
		"leaderCategories": "homeRuns",
		"season":           strconv.Itoa(season),
		"limit":            strconv.Itoa(limit),
		"playerPool":       "ALL",
	}
	if err := c.doJSON(ctx, "stat_leaders", "/api/v1/stats/leaders", query, &leaders); err != nil {
		return nil, fmt.Errorf("fetch home run leaders season=%d: %w", season, err)
	}

	out := make([]usecase.ExternalLeader, 0, limit)
	for _, category := range leaders.LeagueLeaders {
		if category.LeaderCategory != "homeRuns" {
			continue
		}
		for _, leader := range category.Leaders {
			if leader.Person.ID <= 0 {
				continue
			}
			out = append(out, usecase.ExternalLeader{
				PlayerID: leader.Person.ID,
				Name:     strings.TrimSpace(leader.Person.FullName),
				Team:     strings.TrimSpace(leader.Team.Name),
				Position: strings.TrimSpace(leader.Position.Abbreviation),
			})
		}
		break
	}
	return out, nil
}

func (c *Client) FetchHittingLine(ctx context.Context, playerID int64, season int) (usecase.ExternalHittingLine, error) {
	var stats statsEnvelope[hittingStat]
	if err := c.doJSON(ctx, "player_stats", playerStatsPath(playerID), seasonStatsQuery("hitting", season), &stats); err != nil {
		return usecase.ExternalHittingLine{}, fmt.Errorf("fetch hitting stats player_id=%d: %w", playerID, err)
	}

	stat := stats.firstStat()
	return usecase.ExternalHittingLine{
		HomeRuns:    stat.HomeRuns.Int(),
		RBI:         stat.RBI.Int(),
		StolenBases: stat.StolenBases.Int(),
		AVG:         stat.AVG.Float(),
		OPS:         stat.OPS.Float(),
		ABPerHR:     stat.AtBatsPerHomeRun.Float(),
	}, nil
}

func (c *Client) FetchPitchingLine(ctx context.Context, playerID int64, season int) (usecase.ExternalPitchingLine, error) {
	var stats statsEnvelope[pitchingStat]
	if err := c.doJSON(ctx, "player_stats", playerStatsPath(playerID), seasonStatsQuery("pitching", season), &stats); err != nil {
		return usecase.ExternalPitchingLine{}, fmt.Errorf("fetch pitching stats player_id=%d: %w", playerID, err)
	}

	stat := stats.firstStat()
	return usecase.ExternalPitchingLine{
		ERA:        stat.ERA.String(),
		HR9:        stat.HomeRunsPer9.String(),
		WHIP:       stat.WHIP.String(),
		Wins:       stat.Wins.Int(),
		Losses:     stat.Losses.Int(),
		Strikeouts: stat.StrikeOuts.Int(),
	}, nil
}

func (c *Client) FetchTeams(ctx context.Context) ([]usecase.ExternalTeam, error) {
	var teams teamsEnvelope
	if err := c.doJSON(ctx, "teams", "/api/v1/teams", map[string]string{"sportId": sportIDMLB}, &teams); err != nil {
		return nil, fmt.Errorf("fetch teams: %w", err)
	}

	out := make([]usecase.ExternalTeam, 0, len(teams.Teams))
	for _, team := range teams.Teams {
		if team.ID <= 0 {
			continue
		}
		out = append(out, usecase.ExternalTeam{ID: team.ID, Name: strings.TrimSpace(team.Name)})
	}
	return out, nil
}

func (c *Client) FetchRoster(ctx context.Context, teamID int64) ([]usecase.ExternalRosterPlayer, error) {
	var roster rosterEnvelope
	path := fmt.Sprintf("/api/v1/teams/%d/roster", teamID)
	if err := c.doJSON(ctx, "roster", path, nil, &roster); err != nil {
		return nil, fmt.Errorf("fetch roster team_id=%d: %w", teamID, err)
	}

	out := make([]usecase.ExternalRosterPlayer, 0, len(roster.Roster))
	for _, item := range roster.Roster {
		if item.Person.ID <= 0 {
			continue
		}
		out = append(out, usecase.ExternalRosterPlayer{ID: item.Person.ID, Name: strings.TrimSpace(item.Person.FullName)})
	}
	return out, nil
}

func (c *Client) doJSON(ctx context.Context, endpoint, path string, query map[string]string, target any) error {
	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}
	fullURL := c.baseURL + path
	if encoded := values.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	started := time.Now()
	raw, err, _ := c.flight.Do(fullURL, func() ([]byte, error) {
		var body []byte
		execErr := c.breaker.Execute(func() error {
			var reqErr error
			body, reqErr = c.executeRequest(ctx, fullURL)
			return reqErr
		}, isTransient)
		return body, execErr
	})
	c.metrics.ObserveUpstream(endpoint, time.Since(started), err)

	if stderrors.Is(err, resilience.ErrCircuitOpen) {
		c.logger.WarnContext(ctx, "mlb stats circuit breaker rejected request", "endpoint", endpoint, "state", c.breaker.State())
		return fmt.Errorf("%w: mlb stats api is temporarily unavailable", usecase.ErrDependencyUnavailable)
	}
	if err != nil {
		return err
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode mlb stats payload: %w", err)
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", c.userAgent)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = crerr.Mark(crerr.Wrap(err, "send request"), errMLBTransient)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = crerr.Mark(crerr.Wrap(readErr, "read response body"), errMLBTransient)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case isRetryableStatus(resp.StatusCode):
				lastErr = crerr.Mark(crerr.Newf("mlb stats status=%d body=%s", resp.StatusCode, abbreviateBody(raw)), errMLBTransient)
			default:
				lastErr = crerr.Newf("mlb stats status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
				c.logger.WarnContext(ctx, "mlb stats request rejected", "url", fullURL, "status", resp.StatusCode)
				return nil, lastErr
			}
		}

		if attempt == c.maxRetries {
			break
		}
		c.logger.DebugContext(ctx, "mlb stats request retrying", "url", fullURL, "attempt", attempt+1, "error", lastErr)
		timer := time.NewTimer(time.Duration(attempt+1) * time.Second)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	c.logger.WarnContext(ctx, "mlb stats request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func firstHitData(play feedPlay) *hitData {
	for _, event := range play.PlayEvents {
		if event.HitData != nil {
			return event.HitData
		}
	}
	return nil
}

func mapBoxscorePlayers(players map[string]boxscorePlayer) []usecase.ExternalBoxscorePlayer {
	keys := make([]string, 0, len(players))
	for key := range players {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]usecase.ExternalBoxscorePlayer, 0, len(keys))
	for _, key := range keys {
		item := players[key]
		if item.Person.ID <= 0 {
			continue
		}
		out = append(out, usecase.ExternalBoxscorePlayer{
			PlayerID:     item.Person.ID,
			Name:         strings.TrimSpace(item.Person.FullName),
			PositionCode: strings.TrimSpace(item.Position.Code),
			GamesStarted: item.Stats.Pitching.GamesStarted.Int(),
		})
	}
	return out
}

func playerStatsPath(playerID int64) string {
	return fmt.Sprintf("/api/v1/people/%d/stats", playerID)
}

func seasonStatsQuery(group string, season int) map[string]string {
	return map[string]string{
		"stats":  "season",
		"group":  group,
		"season": strconv.Itoa(season),
	}
}

func isTransient(err error) bool {
	return crerr.Is(err, errMLBTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
