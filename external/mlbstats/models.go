package mlbstats

type person struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
}

type scheduleEnvelope struct {
	Dates []struct {
		Games []struct {
			GamePK int64 `json:"gamePk"`
		} `json:"games"`
	} `json:"dates"`
}

type feedEnvelope struct {
	GamePK   int64 `json:"gamePk"`
	GameData struct {
		Teams struct {
			Home feedTeam `json:"home"`
			Away feedTeam `json:"away"`
		} `json:"teams"`
	} `json:"gameData"`
	LiveData struct {
		Plays struct {
			AllPlays []feedPlay `json:"allPlays"`
		} `json:"plays"`
		Boxscore struct {
			Teams struct {
				Home boxscoreTeam `json:"home"`
				Away boxscoreTeam `json:"away"`
			} `json:"teams"`
		} `json:"boxscore"`
	} `json:"liveData"`
}

type feedTeam struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type feedPlay struct {
	Result struct {
		EventType   string `json:"eventType"`
		Description string `json:"description"`
	} `json:"result"`
	Matchup struct {
		Batter person `json:"batter"`
	} `json:"matchup"`
	PlayEvents []struct {
		HitData *hitData `json:"hitData"`
	} `json:"playEvents"`
}

type hitData struct {
	LaunchSpeed   number `json:"launchSpeed"`
	TotalDistance number `json:"totalDistance"`
}

type boxscoreTeam struct {
	Players map[string]boxscorePlayer `json:"players"`
}

type boxscorePlayer struct {
	Person   person `json:"person"`
	Position struct {
		Code         string `json:"code"`
		Abbreviation string `json:"abbreviation"`
	} `json:"position"`
	Stats struct {
		Pitching struct {
			GamesStarted number `json:"gamesStarted"`
		} `json:"pitching"`
	} `json:"stats"`
}

type leadersEnvelope struct {
	LeagueLeaders []struct {
		LeaderCategory string `json:"leaderCategory"`
		Leaders        []struct {
			Rank   int    `json:"rank"`
			Person person `json:"person"`
			Team   struct {
				Name string `json:"name"`
			} `json:"team"`
			Position struct {
				Abbreviation string `json:"abbreviation"`
			} `json:"position"`
		} `json:"leaders"`
	} `json:"leagueLeaders"`
}

type statsEnvelope[T any] struct {
	Stats []struct {
		Splits []struct {
			Stat T `json:"stat"`
		} `json:"splits"`
	} `json:"stats"`
}

// firstStat returns the first split's stat line, or the zero value when absent.
func (s statsEnvelope[T]) firstStat() T {
	var zero T
	if len(s.Stats) == 0 || len(s.Stats[0].Splits) == 0 {
		return zero
	}
	return s.Stats[0].Splits[0].Stat
}

type hittingStat struct {
	HomeRuns         number `json:"homeRuns"`
	RBI              number `json:"rbi"`
	AVG              number `json:"avg"`
	OPS              number `json:"ops"`
	StolenBases      number `json:"stolenBases"`
	AtBatsPerHomeRun number `json:"atBatsPerHomeRun"`
}

type pitchingStat struct {
	ERA          number `json:"era"`
	HomeRunsPer9 number `json:"homeRunsPer9"`
	WHIP         number `json:"whip"`
	Wins         number `json:"wins"`
	Losses       number `json:"losses"`
	StrikeOuts   number `json:"strikeOuts"`
}

type teamsEnvelope struct {
	Teams []feedTeam `json:"teams"`
}

type rosterEnvelope struct {
	Roster []struct {
		Person person `json:"person"`
	} `json:"roster"`
}
