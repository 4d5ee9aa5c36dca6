package homerun

import (
	"math"
	"sort"
)

const DefaultDescription = "Hit a home run"

// Event is the first home run a batter hit on a reporting date.
type Event struct {
	PlayerID      int64
	Name          string
	Description   string
	ImageURL      string
	LaunchSpeed   *float64
	TotalDistance *int
	Date          string
}

// Play is the subset of a live-feed play used to detect home runs.
type Play struct {
	EventType     string
	Description   string
	BatterID      int64
	BatterName    string
	LaunchSpeed   *float64
	TotalDistance *int
}

const eventTypeHomeRun = "home_run"

// ExtractFirstHomeRuns keeps the first home run per batter in play order.
// seen carries batters across games of the same day; pass nil for a single game.
func ExtractFirstHomeRuns(plays []Play, date string, imageURL func(playerID int64) string, seen map[int64]struct{}) []Event {
	if seen == nil {
		seen = make(map[int64]struct{})
	}

	out := make([]Event, 0)
	for _, play := range plays {
		if play.BatterID == 0 || play.BatterName == "" {
			continue
		}
		if _, ok := seen[play.BatterID]; ok {
			continue
		}
		if play.EventType != eventTypeHomeRun {
			continue
		}

		description := play.Description
		if description == "" {
			description = DefaultDescription
		}
		image := ""
		if imageURL != nil {
			image = imageURL(play.BatterID)
		}

		out = append(out, Event{
			PlayerID:      play.BatterID,
			Name:          play.BatterName,
			Description:   description,
			ImageURL:      image,
			LaunchSpeed:   roundSpeed(play.LaunchSpeed),
			TotalDistance: positiveDistance(play.TotalDistance),
			Date:          date,
		})
		seen[play.BatterID] = struct{}{}
	}
	return out
}

// SortByDistance orders events by total distance descending; unknown distance sorts last.
func SortByDistance(items []Event) {
	distance := func(e Event) int {
		if e.TotalDistance == nil {
			return 0
		}
		return *e.TotalDistance
	}
	sort.SliceStable(items, func(i, j int) bool { return distance(items[i]) > distance(items[j]) })
}

func roundSpeed(v *float64) *float64 {
	if v == nil || *v == 0 || math.IsNaN(*v) {
		return nil
	}
	rounded := math.Round(*v*10) / 10
	return &rounded
}

func positiveDistance(v *int) *int {
	if v == nil || *v <= 0 {
		return nil
	}
	d := *v
	return &d
}
