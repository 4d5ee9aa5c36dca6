package pitcher

const (
	SideHome = "home"
	SideAway = "away"

	DefaultTeam = "Unknown Team"

	// StatMissing marks a rate stat the upstream season line did not carry.
	StatMissing = "N/A"
	// StatError marks a rate stat whose season line could not be fetched.
	StatError = "Error"

	positionCodePitcher = "1"
)

// StartingPitcher is a probable or confirmed starter for one side of a game.
type StartingPitcher struct {
	GamePK     int64
	Team       string
	TeamSide   string
	PlayerID   int64
	Name       string
	ERA        string
	HR9        string
	WHIP       string
	Wins       int
	Losses     int
	Strikeouts int
	Date       string
}

// SeasonLine is a pitcher's season pitching stats.
type SeasonLine struct {
	ERA        string
	HR9        string
	WHIP       string
	Wins       int
	Losses     int
	Strikeouts int
}

// Normalized replaces blank rate stats with StatMissing.
func (s SeasonLine) Normalized() SeasonLine {
	if s.ERA == "" {
		s.ERA = StatMissing
	}
	if s.HR9 == "" {
		s.HR9 = StatMissing
	}
	if s.WHIP == "" {
		s.WHIP = StatMissing
	}
	return s
}

// ErrorLine is recorded when the season line could not be fetched.
func ErrorLine() SeasonLine {
	return SeasonLine{ERA: StatError, HR9: StatError, WHIP: StatError}
}

// IsStarter reports whether a box-score player started the game on the mound.
func IsStarter(positionCode string, gamesStarted int) bool {
	return positionCode == positionCodePitcher && gamesStarted > 0
}

// New builds an entry from a starter and their season line.
func New(gamePK int64, team, side string, playerID int64, name, date string, line SeasonLine) StartingPitcher {
	return StartingPitcher{
		GamePK:     gamePK,
		Team:       team,
		TeamSide:   side,
		PlayerID:   playerID,
		Name:       name,
		ERA:        line.ERA,
		HR9:        line.HR9,
		WHIP:       line.WHIP,
		Wins:       line.Wins,
		Losses:     line.Losses,
		Strikeouts: line.Strikeouts,
		Date:       date,
	}
}
