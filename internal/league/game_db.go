package league

import (
	"errors"
	"sort"
	"strconv"
	"sync"
	"time"
)

// Regular season week bounds.
const (
	FirstWeek = 1
	LastWeek  = 18
)

// GameDB owns the season's Game collection. It is the sole mutator of its
// games: all writes funnel through Ingest under one mutex, so two concurrent
// merges can never interleave field writes on the same record.
type GameDB struct {
	mu  sync.RWMutex
	now func() time.Time

	games      []*Game
	byID       map[int]*Game
	byWeek     map[int][]*Game
	byWeekTeam map[int]map[string]*Game

	// currentWeek is memoized; zero means not yet computed.
	currentWeek int
}

// NewGameDB creates an empty repository.
func NewGameDB() *GameDB {
	db := &GameDB{
		now:        time.Now,
		byID:       make(map[int]*Game),
		byWeek:     make(map[int][]*Game),
		byWeekTeam: make(map[int]map[string]*Game),
	}
	for week := FirstWeek; week <= LastWeek; week++ {
		db.byWeek[week] = nil
		db.byWeekTeam[week] = make(map[string]*Game)
	}
	return db
}

func (db *GameDB) addGameLocked(rec GameData, now time.Time) *Game {
	g := NewGame(rec, now)
	week := g.Week()
	db.games = append(db.games, g)
	db.byID[g.ID()] = g
	db.byWeek[week] = append(db.byWeek[week], g)
	db.byWeekTeam[week][g.Away()] = g
	db.byWeekTeam[week][g.Home()] = g
	return g
}

// Ingest merges a batch of update records, creating games for unknown ids.
// It returns exactly the games that are new or mutated by this call; the
// persistence and broadcast layers depend on that delta contract.
//
// Two records for the same id within one batch are applied in order,
// last-applied-wins. Identity violations are collected into the returned
// error but do not stop the rest of the batch: each record is an independent
// failure domain.
func (db *GameDB) Ingest(recs []GameData) ([]*Game, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	now := db.now()
	var updated []*Game
	var errs []error
	invalidate := false

	for _, rec := range recs {
		if rec.Week < FirstWeek || rec.Week > LastWeek {
			errs = append(errs, &NotFoundError{Kind: "week", Key: strconv.Itoa(rec.Week)})
			continue
		}

		g, ok := db.byID[rec.ID]
		if !ok {
			g = db.addGameLocked(rec, now)
			if g.State() == StateComplete {
				invalidate = true
			}
			updated = append(updated, g)
			continue
		}

		res, err := g.Update(rec, now)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if res.WeekInvalidated {
			invalidate = true
		}
		if res.Changed {
			updated = append(updated, g)
		}
	}

	if invalidate {
		db.recomputeCurrentWeekLocked()
	}

	return updated, errors.Join(errs...)
}

// FromID returns the game with the given id, or nil.
func (db *GameDB) FromID(id int) *Game {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.byID[id]
}

// FromWeek returns the games scheduled in a week.
func (db *GameDB) FromWeek(week int) []*Game {
	db.mu.RLock()
	defer db.mu.RUnlock()
	games := db.byWeek[week]
	out := make([]*Game, len(games))
	copy(out, games)
	return out
}

// FromWeekTeam returns the game a team plays in a week. Weeks outside the
// season partition are an error; an in-range week with no entry for the
// team is a silent miss and returns nil.
func (db *GameDB) FromWeekTeam(week int, abbr string) (*Game, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	teams, ok := db.byWeekTeam[week]
	if !ok {
		return nil, &NotFoundError{Kind: "week", Key: strconv.Itoa(week)}
	}
	return teams[abbr], nil
}

// AllGames returns every game in the collection.
func (db *GameDB) AllGames() []*Game {
	db.mu.RLock()
	defer db.mu.RUnlock()
	out := make([]*Game, len(db.games))
	copy(out, db.games)
	return out
}

// RefreshStates advances the time-driven odds-lock transition on every game
// and returns the games whose state changed.
func (db *GameDB) RefreshStates() []*Game {
	db.mu.Lock()
	defer db.mu.Unlock()
	now := db.now()
	var changed []*Game
	for _, g := range db.games {
		if g.RefreshState(now) {
			changed = append(changed, g)
		}
	}
	return changed
}

// CurrentWeek returns the memoized league-wide current week: the week of the
// earliest game, by kickoff order, not yet COMPLETE. Defaults to week 1 when
// the collection is empty or fully complete. Pass force after any event that
// can close out a week; Ingest does this itself when a game completes or has
// stale status dropped.
func (db *GameDB) CurrentWeek(force bool) int {
	db.mu.Lock()
	defer db.mu.Unlock()
	if db.currentWeek == 0 || force {
		db.recomputeCurrentWeekLocked()
	}
	return db.currentWeek
}

func (db *GameDB) recomputeCurrentWeekLocked() {
	db.currentWeek = FirstWeek

	ordered := make([]*Game, len(db.games))
	copy(ordered, db.games)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Date().Before(ordered[j].Date())
	})

	for _, g := range ordered {
		if g.State() != StateComplete {
			db.currentWeek = g.Week()
			break
		}
	}
}
