package httpapi

import (
	"time"

	"github.com/riskibarqy/mlb-daily-stats/internal/domain/homerun"
	"github.com/riskibarqy/mlb-daily-stats/internal/domain/leaderboard"
	"github.com/riskibarqy/mlb-daily-stats/internal/domain/pitcher"
	"github.com/riskibarqy/mlb-daily-stats/internal/domain/roster"
	"github.com/riskibarqy/mlb-daily-stats/internal/usecase"
)

type homeRunDTO struct {
	Name          string   `json:"name"`
	PlayerID      int64    `json:"playerId"`
	Description   string   `json:"description"`
	ImageURL      string   `json:"imageUrl"`
	LaunchSpeed   *float64 `json:"launchSpeed"`
	TotalDistance *int     `json:"totalDistance"`
	Date          string   `json:"date"`
}

type leaderboardDTO struct {
	Name     string           `json:"name"`
	PlayerID int64            `json:"playerId"`
	Team     string           `json:"team"`
	Position string           `json:"position"`
	HR       int              `json:"HR"`
	RBI      int              `json:"RBI"`
	AVG      string           `json:"AVG"`
	OPS      string           `json:"OPS"`
	SB       int              `json:"SB"`
	ABPerHR  string           `json:"abPerHr"`
	Date     string           `json:"date"`
	Rank     leaderboard.Rank `json:"rank"`
}

type pitcherDTO struct {
	GamePK     int64  `json:"gamePk"`
	Team       string `json:"team"`
	TeamSide   string `json:"teamSide"`
	PlayerID   int64  `json:"playerId"`
	Name       string `json:"name"`
	ERA        string `json:"ERA"`
	HR9        string `json:"HR9"`
	WHIP       string `json:"whip"`
	Wins       int    `json:"wins"`
	Losses     int    `json:"losses"`
	Strikeouts int    `json:"strikeouts"`
	Date       string `json:"date"`
}

type playerDTO struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	TeamID int64  `json:"teamId"`
}

type updateResponseDTO struct {
	Success   bool                `json:"success"`
	Message   string              `json:"message"`
	Timestamp string              `json:"timestamp"`
	RunID     string              `json:"run_id,omitempty"`
	Results   []usecase.RunResult `json:"results"`
}

type updateFailureDTO struct {
	Success bool                `json:"success"`
	Error   string              `json:"error"`
	Results []usecase.RunResult `json:"results,omitempty"`
}

type healthDTO struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

type collectionsDTO struct {
	Collections map[string]int `json:"collections"`
	Timestamp   string         `json:"timestamp"`
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func homeRunsToDTO(items []homerun.Event) []homeRunDTO {
	out := make([]homeRunDTO, 0, len(items))
	for _, item := range items {
		out = append(out, homeRunDTO{
			Name:          item.Name,
			PlayerID:      item.PlayerID,
			Description:   item.Description,
			ImageURL:      item.ImageURL,
			LaunchSpeed:   item.LaunchSpeed,
			TotalDistance: item.TotalDistance,
			Date:          item.Date,
		})
	}
	return out
}

func leaderboardToDTO(items []leaderboard.Entry) []leaderboardDTO {
	out := make([]leaderboardDTO, 0, len(items))
	for _, item := range items {
		out = append(out, leaderboardDTO{
			Name:     item.Name,
			PlayerID: item.PlayerID,
			Team:     item.Team,
			Position: item.Position,
			HR:       item.HomeRuns,
			RBI:      item.RBI,
			AVG:      item.AVG,
			OPS:      item.OPS,
			SB:       item.StolenBases,
			ABPerHR:  item.ABPerHR,
			Date:     item.Date,
			Rank:     item.Rank,
		})
	}
	return out
}

func pitchersToDTO(items []pitcher.StartingPitcher) []pitcherDTO {
	out := make([]pitcherDTO, 0, len(items))
	for _, item := range items {
		out = append(out, pitcherDTO{
			GamePK:     item.GamePK,
			Team:       item.Team,
			TeamSide:   item.TeamSide,
			PlayerID:   item.PlayerID,
			Name:       item.Name,
			ERA:        item.ERA,
			HR9:        item.HR9,
			WHIP:       item.WHIP,
			Wins:       item.Wins,
			Losses:     item.Losses,
			Strikeouts: item.Strikeouts,
			Date:       item.Date,
		})
	}
	return out
}

func playersToDTO(items []roster.Player) []playerDTO {
	out := make([]playerDTO, 0, len(items))
	for _, item := range items {
		out = append(out, playerDTO{ID: item.ID, Name: item.Name, TeamID: item.TeamID})
	}
	return out
}
