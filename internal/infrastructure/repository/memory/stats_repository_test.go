package memory

import (
	"context"
	"testing"

	"github.com/riskibarqy/mlb-daily-stats/internal/domain/leaderboard"
	"github.com/riskibarqy/mlb-daily-stats/internal/domain/pitcher"
)

func TestLeaderboardRepository_ReplaceSupersedesPreviousRun(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewLeaderboardRepository()

	first := []leaderboard.Entry{{PlayerID: 1, HomeRuns: 30}, {PlayerID: 2, HomeRuns: 29}}
	second := []leaderboard.Entry{{PlayerID: 3, HomeRuns: 31}}
	if err := repo.ReplaceByDate(ctx, "2025-05-23", first); err != nil {
		t.Fatalf("replace first: %v", err)
	}
	if err := repo.ReplaceByDate(ctx, "2025-05-23", second); err != nil {
		t.Fatalf("replace second: %v", err)
	}

	got, _ := repo.ListByDate(ctx, "2025-05-23")
	if len(got) != 1 || got[0].PlayerID != 3 {
		t.Fatalf("expected second run only, got %+v", got)
	}

	other, _ := repo.ListByDate(ctx, "2025-05-22")
	if other == nil || len(other) != 0 {
		t.Fatalf("expected empty non-nil slice for unknown date, got %v", other)
	}
}

func TestPitcherRepository_EmptyReplaceClearsDate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewPitcherRepository()
	_ = repo.ReplaceByDate(ctx, "2025-05-23", []pitcher.StartingPitcher{{PlayerID: 1}})
	_ = repo.ReplaceByDate(ctx, "2025-05-23", nil)

	got, _ := repo.ListByDate(ctx, "2025-05-23")
	if len(got) != 0 {
		t.Fatalf("expected cleared date, got %+v", got)
	}
}

func TestStoreRepository_CountByCollection(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	homeRuns := NewHomeRunRepository()
	leaders := NewLeaderboardRepository()
	pitchers := NewPitcherRepository()
	_ = leaders.ReplaceByDate(ctx, "2025-05-22", []leaderboard.Entry{{PlayerID: 1}})
	_ = leaders.ReplaceByDate(ctx, "2025-05-23", []leaderboard.Entry{{PlayerID: 1}, {PlayerID: 2}})

	counts, err := NewStoreRepository(homeRuns, leaders, pitchers).CountByCollection(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if counts["leaderboard"] != 3 || counts["daily_homeruns"] != 0 || counts["pitchers"] != 0 {
		t.Fatalf("unexpected counts: %v", counts)
	}
}

func TestLeaderboardRepository_ListReturnsCopy(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewLeaderboardRepository()
	_ = repo.ReplaceByDate(ctx, "2025-05-23", []leaderboard.Entry{{PlayerID: 1, Name: "stored"}})

	got, _ := repo.ListByDate(ctx, "2025-05-23")
	got[0].Name = "mutated"

	again, _ := repo.ListByDate(ctx, "2025-05-23")
	if again[0].Name != "stored" {
		t.Fatalf("stored rows must not alias returned slices")
	}
}
