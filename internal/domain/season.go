package domain

import (
	"slices"
	"time"
)

// Season groups matches and the teams eligible for the champion prediction
type Season struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	TeamIDs   []int64   `json:"team_ids"`
}

// IsClosed reports whether champion predictions are no longer accepted
func (s *Season) IsClosed(now time.Time) bool {
	return now.After(s.EndDate)
}

// IsCurrent reports whether now falls inside the season
func (s *Season) IsCurrent(now time.Time) bool {
	return !now.Before(s.StartDate) && !now.After(s.EndDate)
}

// HasTeam reports whether teamID competes in the season
func (s *Season) HasTeam(teamID int64) bool {
	return slices.Contains(s.TeamIDs, teamID)
}

// Round is a week/matchday inside a season
type Round struct {
	ID        int64     `json:"id"`
	SeasonID  int64     `json:"season_id"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// IsCurrent is computed from the round's dates; there is no stored flag
func (r *Round) IsCurrent(now time.Time) bool {
	return !now.Before(r.StartDate) && !now.After(r.EndDate)
}
