package league

import (
	"fmt"
	"strconv"
)

// Team is an immutable reference record. The table includes three pseudo-team
// entries (PSH, UND, OVR) so push and over/under outcomes can be represented
// uniformly as "team won" in pick records; those carry Active=false.
type Team struct {
	ID      int    `json:"id"`
	City    string `json:"city"`
	Name    string `json:"name"`
	Abbr    string `json:"abbr"`
	IconURL string `json:"iconURL"`
	Active  bool   `json:"active"`
}

// IsPush reports whether this is the push pseudo-team.
func (t Team) IsPush() bool {
	return t.Name == "PUSH"
}

// IsOverUnder reports whether this is the over or under pseudo-team.
func (t Team) IsOverUnder() bool {
	return t.Name == "OVER" || t.Name == "UNDER"
}

func (t Team) String() string {
	return fmt.Sprintf("%d: %s %s [%s]", t.ID, t.City, t.Name, t.Abbr)
}

// TeamDB is the read-only team reference table, indexed by id and by
// abbreviation. Abbreviations are globally unique across physical and
// pseudo teams.
type TeamDB struct {
	teams  []Team
	byID   map[int]Team
	byAbbr map[string]Team
}

// NewTeamDB builds the reference table from the static season roster.
func NewTeamDB() *TeamDB {
	return newTeamDB(nflTeams)
}

func newTeamDB(teams []Team) *TeamDB {
	db := &TeamDB{
		teams:  teams,
		byID:   make(map[int]Team, len(teams)),
		byAbbr: make(map[string]Team, len(teams)),
	}
	for _, t := range teams {
		db.byID[t.ID] = t
		db.byAbbr[t.Abbr] = t
	}
	return db
}

// FromID looks up a team by its stable id.
func (db *TeamDB) FromID(id int) (Team, error) {
	if t, ok := db.byID[id]; ok {
		return t, nil
	}
	return Team{}, &NotFoundError{Kind: "team", Key: strconv.Itoa(id)}
}

// FromAbbr looks up a team by abbreviation.
func (db *TeamDB) FromAbbr(abbr string) (Team, error) {
	if t, ok := db.byAbbr[abbr]; ok {
		return t, nil
	}
	return Team{}, &NotFoundError{Kind: "team", Key: abbr}
}

// AllTeams returns every team, pseudo-teams included.
func (db *TeamDB) AllTeams() []Team {
	out := make([]Team, len(db.teams))
	copy(out, db.teams)
	return out
}

// ActiveTeams returns the physical teams only.
func (db *TeamDB) ActiveTeams() []Team {
	var out []Team
	for _, t := range db.teams {
		if t.Active {
			out = append(out, t)
		}
	}
	return out
}
