package match

import (
	"fmt"
	"time"
)

// Match is one fixture between side A and side B.
type Match struct {
	ID          int64
	Date        time.Time // date component only
	KickoffTime string    // optional, "HH:MM:SS"
	TeamAName   string
	TeamBName   string
	TeamAGoals  int
	TeamBGoals  int
	Venue       string
	Referee     string
	Notes       string
	SquadSize   *int
}

func (m Match) Validate() error {
	if m.Date.IsZero() {
		return fmt.Errorf("match date is required")
	}
	if m.TeamAGoals < 0 || m.TeamBGoals < 0 {
		return fmt.Errorf("goal tallies cannot be negative")
	}
	if m.SquadSize != nil && *m.SquadSize <= 0 {
		return fmt.Errorf("squad size must be greater than zero")
	}

	return nil
}

// Update carries a partial mutation; nil fields keep their prior value.
type Update struct {
	Date        *time.Time
	KickoffTime *string
	TeamAName   *string
	TeamBName   *string
	TeamAGoals  *int
	TeamBGoals  *int
	Venue       *string
	Referee     *string
	Notes       *string
	SquadSize   *int
}

// Apply folds the update into m.
func (u Update) Apply(m Match) Match {
	if u.Date != nil {
		m.Date = *u.Date
	}
	if u.KickoffTime != nil {
		m.KickoffTime = *u.KickoffTime
	}
	if u.TeamAName != nil {
		m.TeamAName = *u.TeamAName
	}
	if u.TeamBName != nil {
		m.TeamBName = *u.TeamBName
	}
	if u.TeamAGoals != nil {
		m.TeamAGoals = *u.TeamAGoals
	}
	if u.TeamBGoals != nil {
		m.TeamBGoals = *u.TeamBGoals
	}
	if u.Venue != nil {
		m.Venue = *u.Venue
	}
	if u.Referee != nil {
		m.Referee = *u.Referee
	}
	if u.Notes != nil {
		m.Notes = *u.Notes
	}
	if u.SquadSize != nil {
		size := *u.SquadSize
		m.SquadSize = &size
	}

	return m
}
