package usecase

import "context"

// StatsProvider reads the upstream MLB Stats API.
type StatsProvider interface {
	FetchGamePKs(ctx context.Context, date string) ([]int64, error)
	FetchGameFeed(ctx context.Context, gamePK int64) (ExternalGameFeed, error)
	FetchHomeRunLeaders(ctx context.Context, season, limit int) ([]ExternalLeader, error)
	FetchHittingLine(ctx context.Context, playerID int64, season int) (ExternalHittingLine, error)
	FetchPitchingLine(ctx context.Context, playerID int64, season int) (ExternalPitchingLine, error)
	FetchTeams(ctx context.Context) ([]ExternalTeam, error)
	FetchRoster(ctx context.Context, teamID int64) ([]ExternalRosterPlayer, error)
}

type ExternalGameFeed struct {
	GamePK int64
	Home   ExternalFeedSide
	Away   ExternalFeedSide
	Plays  []ExternalPlay
}

type ExternalFeedSide struct {
	TeamName string
	// Players is ordered by box-score key.
	Players []ExternalBoxscorePlayer
}

type ExternalBoxscorePlayer struct {
	PlayerID     int64
	Name         string
	PositionCode string
	GamesStarted int
}

type ExternalPlay struct {
	EventType     string
	Description   string
	BatterID      int64
	BatterName    string
	LaunchSpeed   *float64
	TotalDistance *int
}

type ExternalLeader struct {
	PlayerID int64
	Name     string
	Team     string
	Position string
}

type ExternalHittingLine struct {
	HomeRuns    int
	RBI         int
	StolenBases int
	AVG         float64
	OPS         float64
	ABPerHR     float64
}

type ExternalPitchingLine struct {
	ERA        string
	HR9        string
	WHIP       string
	Wins       int
	Losses     int
	Strikeouts int
}

type ExternalTeam struct {
	ID   int64
	Name string
}

type ExternalRosterPlayer struct {
	ID   int64
	Name string
}
