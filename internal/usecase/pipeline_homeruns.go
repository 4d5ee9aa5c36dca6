package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/mlb-daily-stats/internal/domain/homerun"
)

func (s *PipelineService) updateHomeRuns(ctx context.Context, date string) (int, error) {
	events, err := s.collectHomeRuns(ctx, date)
	if err != nil {
		return 0, err
	}
	if err := s.homeRunRepo.ReplaceByDate(ctx, date, events); err != nil {
		return 0, fmt.Errorf("replace home runs date=%s: %w", date, err)
	}
	return len(events), nil
}

func (s *PipelineService) collectHomeRuns(ctx context.Context, date string) ([]homerun.Event, error) {
	gamePKs := s.extractGamePKs(ctx, date)
	feeds, err := fanOut(ctx, s.cfg.MaxWorkers, gamePKs, func(ctx context.Context, gamePK int64) ([]homerun.Play, error) {
		feed, err := s.provider.FetchGameFeed(ctx, gamePK)
		if err != nil {
			return nil, err
		}
		return toHomeRunPlays(feed.Plays), nil
	})
	if err != nil {
		return nil, err
	}

	imageURL := s.headshotURL(s.season(date))
	seen := make(map[int64]struct{})
	events := make([]homerun.Event, 0)
	for i, feed := range feeds {
		if feed.err != nil {
			s.logger.WarnContext(ctx, "fetch game feed failed, skipping game", "game_pk", gamePKs[i], "error", feed.err)
			continue
		}
		events = append(events, homerun.ExtractFirstHomeRuns(feed.value, date, imageURL, seen)...)
	}
	return events, nil
}

func toHomeRunPlays(plays []ExternalPlay) []homerun.Play {
	out := make([]homerun.Play, 0, len(plays))
	for _, play := range plays {
		out = append(out, homerun.Play{
			EventType:     play.EventType,
			Description:   play.Description,
			BatterID:      play.BatterID,
			BatterName:    play.BatterName,
			LaunchSpeed:   play.LaunchSpeed,
			TotalDistance: play.TotalDistance,
		})
	}
	return out
}
