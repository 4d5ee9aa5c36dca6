package roster

// Player is one active-roster member of a league team.
type Player struct {
	ID     int64
	Name   string
	TeamID int64
}
