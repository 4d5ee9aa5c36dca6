package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/mlb-daily-stats/internal/domain/pitcher"
)

func (s *PipelineService) updatePitchers(ctx context.Context, date string) (int, error) {
	starters, err := s.collectPitchers(ctx, date)
	if err != nil {
		return 0, err
	}
	if err := s.pitcherRepo.ReplaceByDate(ctx, date, starters); err != nil {
		return 0, fmt.Errorf("replace pitchers date=%s: %w", date, err)
	}
	return len(starters), nil
}

func (s *PipelineService) collectPitchers(ctx context.Context, date string) ([]pitcher.StartingPitcher, error) {
	gamePKs := s.extractGamePKs(ctx, date)
	season := s.season(date)

	perGame, err := fanOut(ctx, s.cfg.MaxWorkers, gamePKs, func(ctx context.Context, gamePK int64) ([]pitcher.StartingPitcher, error) {
		return s.startingPitchersForGame(ctx, gamePK, season, date)
	})
	if err != nil {
		return nil, err
	}

	out := make([]pitcher.StartingPitcher, 0, len(gamePKs)*2)
	for i, game := range perGame {
		if game.err != nil {
			s.logger.WarnContext(ctx, "fetch game feed failed, skipping game", "game_pk", gamePKs[i], "error", game.err)
			continue
		}
		out = append(out, game.value...)
	}
	return out, nil
}

func (s *PipelineService) startingPitchersForGame(ctx context.Context, gamePK int64, season int, date string) ([]pitcher.StartingPitcher, error) {
	feed, err := s.provider.FetchGameFeed(ctx, gamePK)
	if err != nil {
		return nil, err
	}

	sides := []struct {
		name string
		side ExternalFeedSide
	}{
		{name: pitcher.SideHome, side: feed.Home},
		{name: pitcher.SideAway, side: feed.Away},
	}

	out := make([]pitcher.StartingPitcher, 0, 2)
	for _, side := range sides {
		team := side.side.TeamName
		if team == "" {
			team = pitcher.DefaultTeam
		}
		for _, player := range side.side.Players {
			if !pitcher.IsStarter(player.PositionCode, player.GamesStarted) {
				continue
			}
			out = append(out, pitcher.New(gamePK, team, side.name, player.PlayerID, player.Name, date, s.pitchingLine(ctx, player.PlayerID, season)))
		}
	}
	return out, nil
}

func (s *PipelineService) pitchingLine(ctx context.Context, playerID int64, season int) pitcher.SeasonLine {
	line, err := s.provider.FetchPitchingLine(ctx, playerID, season)
	if err != nil {
		s.logger.WarnContext(ctx, "fetch pitching stats failed", "player_id", playerID, "error", err)
		return pitcher.ErrorLine()
	}
	return pitcher.SeasonLine{
		ERA:        line.ERA,
		HR9:        line.HR9,
		WHIP:       line.WHIP,
		Wins:       line.Wins,
		Losses:     line.Losses,
		Strikeouts: line.Strikeouts,
	}.Normalized()
}
