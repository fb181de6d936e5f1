package league

import (
	"fmt"
	"strconv"
	"sync"
)

// Pick is a user's selection for one game: a flat id triple resolved against
// the reference tables at read time, never cached. The team may be a
// pseudo-team (PSH, OVR, UND) so over/under and push outcomes read uniformly
// as "team won".
type Pick struct {
	User int `json:"user"`
	Game int `json:"game"`
	Team int `json:"team"`
}

// PickSet is a full replacement of one user's picks for one week. A user
// resubmits their entire week together, so pick updates are atomic per
// (user, week): replace-on-write, not field merge.
type PickSet struct {
	UserID int    `json:"userID"`
	Week   int    `json:"week"`
	Picks  []Pick `json:"picks"`
}

// PickDB stores picks keyed implicitly by (user, week). It resolves game and
// team references through the injected repositories.
type PickDB struct {
	mu    sync.RWMutex
	games *GameDB
	teams *TeamDB
	users *UserDB
	picks []Pick
}

// NewPickDB creates an empty pick repository over the given lookups.
func NewPickDB(games *GameDB, teams *TeamDB, users *UserDB) *PickDB {
	return &PickDB{games: games, teams: teams, users: users}
}

// Load replaces the whole collection, used when restoring a snapshot at
// startup.
func (db *PickDB) Load(picks []Pick) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.picks = make([]Pick, len(picks))
	copy(db.picks, picks)
}

// Validate checks a pick set against the reference tables without applying
// it, so callers can vet a submission before doing anything durable with it.
func (db *PickDB) Validate(set PickSet) error {
	if _, err := db.users.FromID(set.UserID); err != nil {
		return err
	}
	if set.Week < FirstWeek || set.Week > LastWeek {
		return &NotFoundError{Kind: "week", Key: strconv.Itoa(set.Week)}
	}
	for _, p := range set.Picks {
		if p.User != set.UserID {
			return fmt.Errorf("pick user %d does not match set user %d", p.User, set.UserID)
		}
		g := db.games.FromID(p.Game)
		if g == nil {
			return &NotFoundError{Kind: "game", Key: strconv.Itoa(p.Game)}
		}
		if g.Week() != set.Week {
			return fmt.Errorf("game %d is in week %d, not week %d", p.Game, g.Week(), set.Week)
		}
		if _, err := db.teams.FromID(p.Team); err != nil {
			return err
		}
	}
	return nil
}

// Ingest validates a pick set and applies it replace-on-write: every
// existing pick for the set's (user, week) is removed, then the replacement
// set is inserted. A validation failure rejects the whole set.
func (db *PickDB) Ingest(set PickSet) error {
	if err := db.Validate(set); err != nil {
		return err
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	kept := db.picks[:0]
	for _, p := range db.picks {
		if p.User == set.UserID && db.weekOf(p) == set.Week {
			continue
		}
		kept = append(kept, p)
	}
	db.picks = append(kept, set.Picks...)
	return nil
}

// weekOf resolves the week a pick belongs to through its game. A pick whose
// game is unknown resolves to 0 and never matches a replacement.
func (db *PickDB) weekOf(p Pick) int {
	if g := db.games.FromID(p.Game); g != nil {
		return g.Week()
	}
	return 0
}

// AllPicks returns every stored pick.
func (db *PickDB) AllPicks() []Pick {
	db.mu.RLock()
	defer db.mu.RUnlock()
	out := make([]Pick, len(db.picks))
	copy(out, db.picks)
	return out
}

// ForWeek returns all picks whose game falls in the given week.
func (db *PickDB) ForWeek(week int) []Pick {
	db.mu.RLock()
	defer db.mu.RUnlock()
	var out []Pick
	for _, p := range db.picks {
		if db.weekOf(p) == week {
			out = append(out, p)
		}
	}
	return out
}

// ForUserWeek returns one user's picks for one week.
func (db *PickDB) ForUserWeek(user, week int) []Pick {
	db.mu.RLock()
	defer db.mu.RUnlock()
	var out []Pick
	for _, p := range db.picks {
		if p.User == user && db.weekOf(p) == week {
			out = append(out, p)
		}
	}
	return out
}

// Describe renders a pick for logs and display, resolving its references.
func (db *PickDB) Describe(p Pick) (string, error) {
	u, err := db.users.FromID(p.User)
	if err != nil {
		return "", err
	}
	t, err := db.teams.FromID(p.Team)
	if err != nil {
		return "", err
	}
	g := db.games.FromID(p.Game)
	if g == nil {
		return "", &NotFoundError{Kind: "game", Key: strconv.Itoa(p.Game)}
	}
	return fmt.Sprintf("WEEK %d %s: %s | %s", g.Week(), u.Name, g.Format(false), t.Abbr), nil
}
