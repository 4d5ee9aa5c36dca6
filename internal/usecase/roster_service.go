package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/mlb-daily-stats/internal/domain/roster"
	"github.com/riskibarqy/mlb-daily-stats/internal/platform/cache"
	"github.com/riskibarqy/mlb-daily-stats/internal/platform/logging"
)

const rosterCacheKey = "players"

// RosterService serves the league-wide roster directory. It is never
// persisted; results are cached in process.
type RosterService struct {
	provider   StatsProvider
	cache      *cache.Store[[]roster.Player]
	maxWorkers int
	logger     *logging.Logger
}

func NewRosterService(provider StatsProvider, store *cache.Store[[]roster.Player], maxWorkers int, logger *logging.Logger) *RosterService {
	if logger == nil {
		logger = logging.Default()
	}
	return &RosterService{
		provider:   provider,
		cache:      store,
		maxWorkers: maxWorkers,
		logger:     logger.Named("roster"),
	}
}

func (s *RosterService) ListPlayers(ctx context.Context) ([]roster.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.ListPlayers")
	defer span.End()

	if s.cache == nil {
		players, _, err := s.loadPlayers(ctx)
		return players, err
	}
	return s.cache.GetOrLoad(ctx, rosterCacheKey, s.loadPlayers)
}

// loadPlayers reports complete=false when the team list or any team roster
// could not be fetched; such a directory is served but not cached.
func (s *RosterService) loadPlayers(ctx context.Context) ([]roster.Player, bool, error) {
	teamIDs, complete := s.extractTeamIDs(ctx)
	rosters, err := fanOut(ctx, s.maxWorkers, teamIDs, func(ctx context.Context, teamID int64) ([]ExternalRosterPlayer, error) {
		return s.provider.FetchRoster(ctx, teamID)
	})
	if err != nil {
		return nil, false, fmt.Errorf("load rosters: %w", err)
	}

	out := make([]roster.Player, 0, len(teamIDs)*26)
	seen := make(map[int64]struct{}, len(teamIDs)*26)
	for i, item := range rosters {
		if item.err != nil {
			s.logger.WarnContext(ctx, "fetch roster failed, skipping team", "team_id", teamIDs[i], "error", item.err)
			complete = false
			continue
		}
		for _, player := range item.value {
			if _, ok := seen[player.ID]; ok {
				continue
			}
			seen[player.ID] = struct{}{}
			out = append(out, roster.Player{ID: player.ID, Name: player.Name, TeamID: teamIDs[i]})
		}
	}

	s.logger.InfoContext(ctx, "roster directory loaded", "teams", len(teamIDs), "players", len(out), "complete", complete)
	return out, complete, nil
}

// extractTeamIDs never fails; an unreachable team list yields no teams and
// ok=false.
func (s *RosterService) extractTeamIDs(ctx context.Context) (ids []int64, ok bool) {
	teams, err := s.provider.FetchTeams(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "extract team ids failed, continuing with no teams", "error", err)
		return []int64{}, false
	}

	out := make([]int64, 0, len(teams))
	for _, team := range teams {
		out = append(out, team.ID)
	}
	return out, true
}
