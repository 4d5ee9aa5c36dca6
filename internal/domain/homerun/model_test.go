package homerun

import (
	"fmt"
	"testing"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func headshot(id int64) string { return fmt.Sprintf("https://img.test/%d.jpg", id) }

func TestExtractFirstHomeRuns_KeepsFirstPerBatter(t *testing.T) {
	t.Parallel()

	plays := []Play{
		{EventType: "single", BatterID: 1, BatterName: "Aaron Judge"},
		{EventType: "home_run", BatterID: 1, BatterName: "Aaron Judge", Description: "first", LaunchSpeed: floatPtr(110.46), TotalDistance: intPtr(431)},
		{EventType: "home_run", BatterID: 2, BatterName: "Cal Raleigh"},
		{EventType: "home_run", BatterID: 1, BatterName: "Aaron Judge", Description: "second"},
		{EventType: "home_run", BatterID: 0, BatterName: "Nobody"},
		{EventType: "home_run", BatterID: 3, BatterName: ""},
	}

	got := ExtractFirstHomeRuns(plays, "2025-05-23", headshot, nil)
	if len(got) != 2 {
		t.Fatalf("expected 2 events, got %d: %+v", len(got), got)
	}

	judge := got[0]
	if judge.Description != "first" || judge.Date != "2025-05-23" || judge.ImageURL != "https://img.test/1.jpg" {
		t.Fatalf("unexpected first event: %+v", judge)
	}
	if judge.LaunchSpeed == nil || *judge.LaunchSpeed != 110.5 {
		t.Fatalf("expected launch speed rounded to 110.5, got %v", judge.LaunchSpeed)
	}
	if judge.TotalDistance == nil || *judge.TotalDistance != 431 {
		t.Fatalf("unexpected distance: %v", judge.TotalDistance)
	}

	raleigh := got[1]
	if raleigh.Description != DefaultDescription {
		t.Fatalf("expected default description, got %q", raleigh.Description)
	}
	if raleigh.LaunchSpeed != nil || raleigh.TotalDistance != nil {
		t.Fatalf("missing hit data must stay null: %+v", raleigh)
	}
}

func TestExtractFirstHomeRuns_SeenSpansGames(t *testing.T) {
	t.Parallel()

	seen := map[int64]struct{}{}
	game1 := ExtractFirstHomeRuns([]Play{{EventType: "home_run", BatterID: 7, BatterName: "Shohei Ohtani"}}, "2025-05-23", headshot, seen)
	game2 := ExtractFirstHomeRuns([]Play{{EventType: "home_run", BatterID: 7, BatterName: "Shohei Ohtani"}}, "2025-05-23", headshot, seen)

	if len(game1) != 1 || len(game2) != 0 {
		t.Fatalf("expected doubleheader repeat to be dropped, got game1=%d game2=%d", len(game1), len(game2))
	}
}

func TestSortByDistance(t *testing.T) {
	t.Parallel()

	items := []Event{
		{PlayerID: 1, TotalDistance: intPtr(400)},
		{PlayerID: 2},
		{PlayerID: 3, TotalDistance: intPtr(450)},
		{PlayerID: 4, TotalDistance: intPtr(400)},
	}
	SortByDistance(items)

	want := []int64{3, 1, 4, 2}
	for i, id := range want {
		if items[i].PlayerID != id {
			t.Fatalf("position %d: want player %d, got %d", i, id, items[i].PlayerID)
		}
	}
}
