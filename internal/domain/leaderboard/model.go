package leaderboard

const (
	DefaultTeam     = "Unknown Team"
	DefaultPosition = "N/A"
	DefaultLimit    = 10
)

// Entry is one home-run leader with season hitting stats on a reporting date.
type Entry struct {
	PlayerID    int64
	Name        string
	Team        string
	Position    string
	HomeRuns    int
	RBI         int
	AVG         string
	OPS         string
	StolenBases int
	ABPerHR     string
	Date        string
	Rank        Rank
}
