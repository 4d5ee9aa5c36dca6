package postgres

import (
	"database/sql"
	"time"
)

const (
	tableDailyHomeRuns = "daily_homeruns"
	tableLeaderboard   = "leaderboard"
	tablePitchers      = "pitchers"
)

type homeRunTableModel struct {
	ID            int64           `db:"id"`
	ReportDate    time.Time       `db:"report_date"`
	PlayerID      int64           `db:"player_id"`
	Name          string          `db:"name"`
	Description   string          `db:"description"`
	ImageURL      string          `db:"image_url"`
	LaunchSpeed   sql.NullFloat64 `db:"launch_speed"`
	TotalDistance sql.NullInt64   `db:"total_distance"`
	CreatedAt     time.Time       `db:"created_at"`
}

type homeRunInsertModel struct {
	ReportDate    string          `db:"report_date"`
	PlayerID      int64           `db:"player_id"`
	Name          string          `db:"name"`
	Description   string          `db:"description"`
	ImageURL      string          `db:"image_url"`
	LaunchSpeed   sql.NullFloat64 `db:"launch_speed"`
	TotalDistance sql.NullInt64   `db:"total_distance"`
}

type leaderboardTableModel struct {
	ID           int64     `db:"id"`
	ReportDate   time.Time `db:"report_date"`
	PlayerID     int64     `db:"player_id"`
	Name         string    `db:"name"`
	Team         string    `db:"team"`
	Position     string    `db:"position"`
	HomeRuns     int       `db:"home_runs"`
	RBI          int       `db:"rbi"`
	AVG          string    `db:"avg"`
	OPS          string    `db:"ops"`
	StolenBases  int       `db:"stolen_bases"`
	ABPerHR      string    `db:"ab_per_hr"`
	RankPosition int       `db:"rank_position"`
	RankTied     bool      `db:"rank_tied"`
	CreatedAt    time.Time `db:"created_at"`
}

type leaderboardInsertModel struct {
	ReportDate   string `db:"report_date"`
	PlayerID     int64  `db:"player_id"`
	Name         string `db:"name"`
	Team         string `db:"team"`
	Position     string `db:"position"`
	HomeRuns     int    `db:"home_runs"`
	RBI          int    `db:"rbi"`
	AVG          string `db:"avg"`
	OPS          string `db:"ops"`
	StolenBases  int    `db:"stolen_bases"`
	ABPerHR      string `db:"ab_per_hr"`
	RankPosition int    `db:"rank_position"`
	RankTied     bool   `db:"rank_tied"`
}

type pitcherTableModel struct {
	ID         int64     `db:"id"`
	ReportDate time.Time `db:"report_date"`
	GamePK     int64     `db:"game_pk"`
	Team       string    `db:"team"`
	TeamSide   string    `db:"team_side"`
	PlayerID   int64     `db:"player_id"`
	Name       string    `db:"name"`
	ERA        string    `db:"era"`
	HR9        string    `db:"hr9"`
	WHIP       string    `db:"whip"`
	Wins       int       `db:"wins"`
	Losses     int       `db:"losses"`
	Strikeouts int       `db:"strikeouts"`
	CreatedAt  time.Time `db:"created_at"`
}

type pitcherInsertModel struct {
	ReportDate string `db:"report_date"`
	GamePK     int64  `db:"game_pk"`
	Team       string `db:"team"`
	TeamSide   string `db:"team_side"`
	PlayerID   int64  `db:"player_id"`
	Name       string `db:"name"`
	ERA        string `db:"era"`
	HR9        string `db:"hr9"`
	WHIP       string `db:"whip"`
	Wins       int    `db:"wins"`
	Losses     int    `db:"losses"`
	Strikeouts int    `db:"strikeouts"`
}
