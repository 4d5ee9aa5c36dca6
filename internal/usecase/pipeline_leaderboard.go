package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/mlb-daily-stats/internal/domain/leaderboard"
)

func (s *PipelineService) updateLeaderboard(ctx context.Context, date string) (int, error) {
	entries, err := s.collectLeaderboard(ctx, date)
	if err != nil {
		return 0, err
	}
	if err := s.leaderRepo.ReplaceByDate(ctx, date, entries); err != nil {
		return 0, fmt.Errorf("replace leaderboard date=%s: %w", date, err)
	}
	return len(entries), nil
}

func (s *PipelineService) collectLeaderboard(ctx context.Context, date string) ([]leaderboard.Entry, error) {
	season := s.season(date)
	leaders, err := s.provider.FetchHomeRunLeaders(ctx, season, s.cfg.LeaderLimit)
	if err != nil {
		s.logger.WarnContext(ctx, "fetch home run leaders failed, continuing with no leaders", "season", season, "error", err)
		leaders = nil
	}
	if len(leaders) == 0 {
		s.logger.WarnContext(ctx, "no home run leaders found", "season", season)
		return []leaderboard.Entry{}, nil
	}

	lines, err := fanOut(ctx, s.cfg.MaxWorkers, leaders, func(ctx context.Context, leader ExternalLeader) (ExternalHittingLine, error) {
		return s.provider.FetchHittingLine(ctx, leader.PlayerID, season)
	})
	if err != nil {
		return nil, err
	}

	entries := make([]leaderboard.Entry, 0, len(leaders))
	for i, leader := range leaders {
		if lines[i].err != nil {
			s.logger.WarnContext(ctx, "fetch hitting stats failed, skipping leader", "player_id", leader.PlayerID, "name", leader.Name, "error", lines[i].err)
			continue
		}
		entries = append(entries, toLeaderboardEntry(leader, lines[i].value, date))
	}

	return leaderboard.AssignRanks(leaderboard.Dedupe(entries)), nil
}

func toLeaderboardEntry(leader ExternalLeader, line ExternalHittingLine, date string) leaderboard.Entry {
	team := strings.TrimSpace(leader.Team)
	if team == "" {
		team = leaderboard.DefaultTeam
	}
	position := strings.TrimSpace(leader.Position)
	if position == "" {
		position = leaderboard.DefaultPosition
	}

	return leaderboard.Entry{
		PlayerID:    leader.PlayerID,
		Name:        leader.Name,
		Team:        team,
		Position:    position,
		HomeRuns:    line.HomeRuns,
		RBI:         line.RBI,
		AVG:         fmt.Sprintf("%.3f", line.AVG),
		OPS:         fmt.Sprintf("%.3f", line.OPS),
		StolenBases: line.StolenBases,
		ABPerHR:     fmt.Sprintf("%.2f", line.ABPerHR),
		Date:        date,
	}
}
