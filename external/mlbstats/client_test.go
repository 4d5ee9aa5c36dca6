package mlbstats

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/mlb-daily-stats/internal/platform/logging"
	"github.com/riskibarqy/mlb-daily-stats/internal/platform/resilience"
	"github.com/riskibarqy/mlb-daily-stats/internal/usecase"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(ClientConfig{
		BaseURL: server.URL,
		Timeout: 2 * time.Second,
		Logger:  logging.NewNop(),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 2,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		},
	})
}

func TestFetchGamePKs(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/schedule" || r.URL.Query().Get("date") != "2025-05-23" || r.URL.Query().Get("sportId") != "1" {
			t.Errorf("unexpected request: %s", r.URL.String())
		}
		_, _ = w.Write([]byte(`{"dates":[{"games":[{"gamePk":777001},{"gamePk":777002}]},{"games":[{"gamePk":999}]}]}`))
	})

	got, err := client.FetchGamePKs(context.Background(), "2025-05-23")
	if err != nil {
		t.Fatalf("fetch game pks: %v", err)
	}
	if len(got) != 2 || got[0] != 777001 || got[1] != 777002 {
		t.Fatalf("unexpected game pks: %v", got)
	}
}

func TestFetchGamePKs_NoGames(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"totalGames":0}`))
	})

	got, err := client.FetchGamePKs(context.Background(), "2025-12-25")
	if err != nil {
		t.Fatalf("fetch game pks: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", got)
	}
}

func TestFetchGameFeed_MapsPlaysAndBoxscore(t *testing.T) {
	t.Parallel()

	payload := `{
		"gameData": {"teams": {"home": {"name": "New York Yankees"}, "away": {"name": "Boston Red Sox"}}},
		"liveData": {
			"plays": {"allPlays": [
				{"result": {"eventType": "home_run", "description": "Judge homers (20)."},
				 "matchup": {"batter": {"id": 592450, "fullName": "Aaron Judge"}},
				 "playEvents": [{"details": {}}, {"hitData": {"launchSpeed": 112.34, "totalDistance": "441"}}]},
				{"result": {"eventType": "strikeout"}, "matchup": {"batter": {"id": 646240, "fullName": "Rafael Devers"}}}
			]},
			"boxscore": {"teams": {
				"home": {"players": {
					"ID543037": {"person": {"id": 543037, "fullName": "Gerrit Cole"}, "position": {"code": "1"}, "stats": {"pitching": {"gamesStarted": 1}}},
					"ID000001": {"person": {"id": 1, "fullName": "Reliever"}, "position": {"code": "1"}, "stats": {"pitching": {}}}
				}},
				"away": {"players": {}}
			}}
		}
	}`
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1.1/game/777001/feed/live" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(payload))
	})

	feed, err := client.FetchGameFeed(context.Background(), 777001)
	if err != nil {
		t.Fatalf("fetch feed: %v", err)
	}
	if feed.Home.TeamName != "New York Yankees" || feed.Away.TeamName != "Boston Red Sox" {
		t.Fatalf("unexpected team names: %+v %+v", feed.Home, feed.Away)
	}
	if len(feed.Plays) != 2 {
		t.Fatalf("expected 2 plays, got %d", len(feed.Plays))
	}
	hr := feed.Plays[0]
	if hr.LaunchSpeed == nil || *hr.LaunchSpeed != 112.34 || hr.TotalDistance == nil || *hr.TotalDistance != 441 {
		t.Fatalf("unexpected hit data: %+v", hr)
	}
	if feed.Plays[1].LaunchSpeed != nil {
		t.Fatalf("play without hit data must have nil launch speed")
	}
	if len(feed.Home.Players) != 2 || feed.Home.Players[0].PlayerID != 1 || feed.Home.Players[1].GamesStarted != 1 {
		t.Fatalf("expected players ordered by box-score key: %+v", feed.Home.Players)
	}
}

func TestFetchHittingLine_ToleratesStringsAndGarbage(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("group") != "hitting" || r.URL.Query().Get("season") != "2025" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`{"stats":[{"splits":[{"stat":{"homeRuns":21,"rbi":"48","avg":".285","ops":"1.012","stolenBases":"","atBatsPerHomeRun":"-.--"}}]}]}`))
	})

	line, err := client.FetchHittingLine(context.Background(), 592450, 2025)
	if err != nil {
		t.Fatalf("fetch hitting: %v", err)
	}
	want := usecase.ExternalHittingLine{HomeRuns: 21, RBI: 48, AVG: 0.285, OPS: 1.012}
	if line != want {
		t.Fatalf("unexpected line: got=%+v want=%+v", line, want)
	}
}

func TestFetchPitchingLine_MissingSplits(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"stats":[{"splits":[]}]}`))
	})

	line, err := client.FetchPitchingLine(context.Background(), 543037, 2025)
	if err != nil {
		t.Fatalf("fetch pitching: %v", err)
	}
	if line != (usecase.ExternalPitchingLine{}) {
		t.Fatalf("expected empty line, got %+v", line)
	}
}

func TestFetchHomeRunLeaders_PicksHomeRunCategory(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("limit") != "10" || r.URL.Query().Get("playerPool") != "ALL" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`{"leagueLeaders":[
			{"leaderCategory":"rbi","leaders":[{"person":{"id":9,"fullName":"Wrong"}}]},
			{"leaderCategory":"homeRuns","leaders":[
				{"rank":1,"person":{"id":663728,"fullName":"Cal Raleigh"},"team":{"name":"Seattle Mariners"},"position":{"abbreviation":"C"}},
				{"rank":2,"person":{"id":592450,"fullName":"Aaron Judge"}}
			]}
		]}`))
	})

	got, err := client.FetchHomeRunLeaders(context.Background(), 2025, 10)
	if err != nil {
		t.Fatalf("fetch leaders: %v", err)
	}
	if len(got) != 2 || got[0].Team != "Seattle Mariners" || got[1].Team != "" {
		t.Fatalf("unexpected leaders: %+v", got)
	}
}

func TestFetchTeamsAndRoster(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/teams":
			_, _ = w.Write([]byte(`{"teams":[{"id":147,"name":"New York Yankees"},{"id":0}]}`))
		case "/api/v1/teams/147/roster":
			_, _ = w.Write([]byte(`{"roster":[{"person":{"id":592450,"fullName":"Aaron Judge"}}]}`))
		default:
			http.NotFound(w, r)
		}
	})

	teams, err := client.FetchTeams(context.Background())
	if err != nil || len(teams) != 1 || teams[0].ID != 147 {
		t.Fatalf("unexpected teams: %+v err=%v", teams, err)
	}
	players, err := client.FetchRoster(context.Background(), 147)
	if err != nil || len(players) != 1 || players[0].Name != "Aaron Judge" {
		t.Fatalf("unexpected roster: %+v err=%v", players, err)
	}
}

func TestClient_CircuitOpensOnTransientFailures(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	for i := 0; i < 2; i++ {
		if _, err := client.FetchTeams(context.Background()); err == nil {
			t.Fatalf("expected upstream error on attempt %d", i)
		}
	}

	_, err := client.FetchTeams(context.Background())
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected dependency unavailable once circuit opens, got %v", err)
	}
	if calls.Load() != 2 {
		t.Fatalf("open circuit must not reach upstream, calls=%d", calls.Load())
	}
}

func TestClient_NotFoundDoesNotTripCircuit(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.NotFound(w, r)
	})

	for i := 0; i < 4; i++ {
		_, err := client.FetchRoster(context.Background(), 1)
		if err == nil || errors.Is(err, usecase.ErrDependencyUnavailable) {
			t.Fatalf("expected plain upstream error, got %v", err)
		}
	}
	if calls.Load() != 4 {
		t.Fatalf("expected every request to reach upstream, calls=%d", calls.Load())
	}
}
