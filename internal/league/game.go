package league

import (
	"fmt"
	"log"
	"math"
	"strconv"
	"time"
)

// GameState dictates how often a game is polled for updates.
//
//	PRE      - state & odds polled on the slow cycle
//	CURRENT  - game happening this week, odds polled aggressively
//	LOCKED   - odds are frozen for this game
//	ACTIVE   - game is in progress
//	COMPLETE - game is over
type GameState int

const (
	StatePre GameState = iota
	StateCurrent
	StateLocked
	StateActive
	StateComplete
)

var stateNames = [...]string{"PRE", "CURRENT", "LOCKED", "ACTIVE", "COMPLETE"}

func (s GameState) String() string {
	if s < StatePre || s > StateComplete {
		return "UNKNOWN"
	}
	return stateNames[s]
}

// Odds holds the betting line for a game. A negative spread favors the home
// team. Values are normalized to the nearest half point before storage.
type Odds struct {
	Spread    float64 `json:"spread"`
	OverUnder float64 `json:"ou"`
}

// LiveStatus is in-progress play detail. It exists only while a game is
// ACTIVE; every mutation path drops it otherwise.
type LiveStatus struct {
	DisplayClock      string `json:"displayClock"`
	Possession        string `json:"possession"`
	PossessionText    string `json:"possessionText"`
	ShortDownDistance string `json:"shortDownDistanceText"`
}

// GameData is the wire and persistence form of a game. ID, Week, Away and
// Home are write-once identity fields.
type GameData struct {
	ID        int         `json:"id"`
	Date      time.Time   `json:"date"`
	Week      int         `json:"week"`
	Away      string      `json:"away"`
	Home      string      `json:"home"`
	State     GameState   `json:"state"`
	AwayScore int         `json:"awayScore"`
	HomeScore int         `json:"homeScore"`
	Quarter   int         `json:"quarter"`
	Odds      *Odds       `json:"odds,omitempty"`
	Status    *LiveStatus `json:"status,omitempty"`
}

// Game holds one game's mutable state plus the scheduling windows derived
// from its kickoff date. Mutation happens only through Update, which GameDB
// serializes.
type Game struct {
	data       GameData
	oddsCutoff time.Time
	reveal     time.Time
}

// UpdateResult reports what an Update call did.
type UpdateResult struct {
	// Changed is true iff at least one stored field actually differed.
	Changed bool
	// WeekInvalidated is true when the game entered COMPLETE or had stale
	// live status dropped; either event can close out the current week, so
	// the repository must recompute it.
	WeekInvalidated bool
}

// NewGame constructs a game from an update record, normalizing odds and
// deriving the scheduling windows.
func NewGame(data GameData, now time.Time) *Game {
	g := &Game{data: cloneData(data)}
	if g.data.Odds != nil {
		g.data.Odds.Spread = roundHalf(g.data.Odds.Spread)
		g.data.Odds.OverUnder = roundHalf(g.data.Odds.OverUnder)
	}
	// Live status only accompanies a game in progress; a snapshot or
	// provider record for any other state sheds it here just as a merge
	// would.
	if g.data.State != StateActive {
		g.data.Status = nil
	}
	g.recomputeWindows()
	g.refreshState(now)
	return g
}

func cloneData(data GameData) GameData {
	if data.Odds != nil {
		odds := *data.Odds
		data.Odds = &odds
	}
	if data.Status != nil {
		status := *data.Status
		data.Status = &status
	}
	return data
}

// roundHalf normalizes an odds value to the nearest half point. Invalid
// numbers from malformed provider data are coerced to zero.
func roundHalf(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Round(v*2) / 2
}

// pacific is the league's home timezone, used only to decide whether kickoff
// falls inside daylight saving when deriving the reveal window.
var pacific = loadPacific()

func loadPacific() *time.Location {
	loc, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		return time.UTC
	}
	return loc
}

// recomputeWindows derives oddsCutoff and reveal from the kickoff date. Must
// be re-run whenever the date changes, since a date correction shifts both.
//
// The cutoff is the Thursday 07:00 UTC the game's betting week opens on:
// working in a UTC-7 shifted frame, days before Thursday are treated as
// belonging to the following Thursday.
func (g *Game) recomputeWindows() {
	shifted := g.data.Date.UTC().Add(-7 * time.Hour)

	wd := int(shifted.Weekday())
	if wd < int(time.Thursday) {
		wd += 7
	}
	cutoffDay := shifted.AddDate(0, 0, -(wd - int(time.Thursday)))
	g.oddsCutoff = time.Date(cutoffDay.Year(), cutoffDay.Month(), cutoffDay.Day(), 7, 0, 0, 0, time.UTC)

	// Reveal depends on the shifted weekday: Saturday night games, Sunday
	// slates and Monday night (pinned to the previous calendar day) each
	// have a fixed reveal hour, offset by one outside daylight saving.
	dstOffset := 1
	if g.data.Date.In(pacific).IsDST() {
		dstOffset = 0
	}

	reveal := shifted
	switch shifted.Weekday() {
	case time.Saturday:
		reveal = time.Date(reveal.Year(), reveal.Month(), reveal.Day(), 20+dstOffset, 30, 0, 0, time.UTC)
	case time.Monday:
		reveal = reveal.AddDate(0, 0, -1)
	}
	if wkd := shifted.Weekday(); wkd == time.Sunday || wkd == time.Monday {
		reveal = time.Date(reveal.Year(), reveal.Month(), reveal.Day(), 17+dstOffset, 0, 0, 0, time.UTC)
	}
	// Thursday games reveal at kickoff; never reveal later than kickoff.
	if shifted.Weekday() == time.Thursday || reveal.After(g.data.Date) {
		reveal = g.data.Date
	}
	g.reveal = reveal
}

// refreshState applies the time-driven transition: once the cutoff passes,
// a PRE or CURRENT game is LOCKED.
func (g *Game) refreshState(now time.Time) bool {
	if g.data.State <= StateCurrent && !now.Before(g.oddsCutoff) {
		g.data.State = StateLocked
		return true
	}
	return false
}

// RefreshState advances the time-driven lock transition, returning true if
// the state changed.
func (g *Game) RefreshState(now time.Time) bool {
	return g.refreshState(now)
}

// Data returns a copy of the game's wire form.
func (g *Game) Data() GameData { return cloneData(g.data) }

func (g *Game) ID() int          { return g.data.ID }
func (g *Game) Week() int        { return g.data.Week }
func (g *Game) Away() string     { return g.data.Away }
func (g *Game) Home() string     { return g.data.Home }
func (g *Game) Date() time.Time  { return g.data.Date }
func (g *Game) State() GameState { return g.data.State }
func (g *Game) AwayScore() int   { return g.data.AwayScore }
func (g *Game) HomeScore() int   { return g.data.HomeScore }
func (g *Game) Quarter() int     { return g.data.Quarter }

// OddsCutoffDate is the instant after which the betting line is frozen.
func (g *Game) OddsCutoffDate() time.Time { return g.oddsCutoff }

// RevealDate is the instant picks for this game become visible to others.
func (g *Game) RevealDate() time.Time { return g.reveal }

// Revealed reports whether picks for this game are visible at now.
func (g *Game) Revealed(now time.Time) bool { return !now.Before(g.reveal) }

// Odds returns the stored line, if one has been obtained.
func (g *Game) Odds() (Odds, bool) {
	if g.data.Odds == nil {
		return Odds{}, false
	}
	return *g.data.Odds, true
}

// Status returns live play detail. It reports ok only while the game is
// ACTIVE, so a stale block can never be observed.
func (g *Game) Status() (LiveStatus, bool) {
	if g.data.State != StateActive || g.data.Status == nil {
		return LiveStatus{}, false
	}
	return *g.data.Status, true
}

// Favorite returns the favored team's abbreviation. A non-positive spread
// favors home; with no odds the away team is reported.
func (g *Game) Favorite() string {
	fav := g.data.Away
	if g.data.Odds != nil && g.data.Odds.Spread <= 0 {
		fav = g.data.Home
	}
	return fav
}

// SpreadLine formats the favorite's handicap for display, e.g. "-3.5".
func (g *Game) SpreadLine() string {
	spread := "-0"
	if g.data.Odds != nil {
		spread = "-" + strconv.FormatFloat(math.Abs(g.data.Odds.Spread), 'f', -1, 64)
	}
	return rpad(spread, 5)
}

// OverUnderLine formats the posted total for display, e.g. "+47.5".
func (g *Game) OverUnderLine() string {
	ou := "+0"
	if g.data.Odds != nil {
		ou = "+" + strconv.FormatFloat(g.data.Odds.OverUnder, 'f', -1, 64)
	}
	return rpad(ou, 5)
}

// WinnerATS returns the against-the-spread winner's abbreviation once the
// game has odds and has reached ACTIVE, else the push sentinel.
func (g *Game) WinnerATS() string {
	if g.data.Odds != nil && g.data.State >= StateActive {
		if float64(g.data.HomeScore)+g.data.Odds.Spread > float64(g.data.AwayScore) {
			return g.data.Home
		}
		return g.data.Away
	}
	return "PSH"
}

// OverUnderResult returns OVR or UND once the game has odds and has reached
// ACTIVE; an exact tie with the line is a push.
func (g *Game) OverUnderResult() string {
	if g.data.Odds != nil && g.data.State >= StateActive {
		total := float64(g.data.HomeScore + g.data.AwayScore)
		if total > g.data.Odds.OverUnder {
			return "OVR"
		}
		if total < g.data.Odds.OverUnder {
			return "UND"
		}
	}
	return "PSH"
}

// Format renders the game as a one-line summary, optionally prefixed with
// its week number.
func (g *Game) Format(showWeek bool) string {
	homeInit := lpad(g.data.Home, 3)
	awayInit := lpad(g.data.Away, 3)
	favInit := lpad(g.Favorite(), 3)
	weekStr := ""
	if showWeek {
		weekStr = fmt.Sprintf("WEEK %s ", lpad(strconv.Itoa(g.data.Week), 2))
	}

	out := fmt.Sprintf("%s%s @ %s: %s %s %s", weekStr, awayInit, homeInit, favInit, g.SpreadLine(), g.OverUnderLine())
	tail := ""
	if g.data.State >= StateActive {
		awayResult := fmt.Sprintf("%s %s", awayInit, lpad(strconv.Itoa(g.data.AwayScore), 2))
		homeResult := fmt.Sprintf("%s %s", homeInit, lpad(strconv.Itoa(g.data.HomeScore), 2))
		if g.WinnerATS() == g.data.Home {
			awayResult = " " + awayResult + " "
			homeResult = "[" + homeResult + "]"
		} else {
			awayResult = "[" + awayResult + "]"
			homeResult = " " + homeResult + " "
		}
		total := lpad(strconv.Itoa(g.data.HomeScore+g.data.AwayScore), 2)
		tail = fmt.Sprintf(" | %s %s %s (%s)", awayResult, homeResult, g.OverUnderResult()[:1], total)
	}

	return fmt.Sprintf("%s%s %s", out, tail, g.data.State)
}

func (g *Game) String() string { return g.Format(false) }

// Update merges an incoming record into the stored game under the
// field-level mutation rules and reports whether anything changed. Identity
// fields must match exactly; a mismatch returns ErrIdentityMismatch with the
// game untouched.
func (g *Game) Update(rec GameData, now time.Time) (UpdateResult, error) {
	var res UpdateResult

	if g.data.ID != rec.ID {
		return res, fmt.Errorf("%w: id %d != %d", ErrIdentityMismatch, g.data.ID, rec.ID)
	}
	if g.data.Week != rec.Week {
		return res, fmt.Errorf("%w: game %d week %d != %d", ErrIdentityMismatch, g.data.ID, g.data.Week, rec.Week)
	}
	if g.data.Away != rec.Away {
		return res, fmt.Errorf("%w: game %d away %s != %s", ErrIdentityMismatch, g.data.ID, g.data.Away, rec.Away)
	}
	if g.data.Home != rec.Home {
		return res, fmt.Errorf("%w: game %d home %s != %s", ErrIdentityMismatch, g.data.ID, g.data.Home, rec.Home)
	}

	var updates []string

	if !g.data.Date.Equal(rec.Date) {
		updates = append(updates, fmt.Sprintf("date: %s => %s",
			g.data.Date.Format(time.RFC3339), rec.Date.Format(time.RFC3339)))
		g.data.Date = rec.Date
		g.recomputeWindows()
		g.refreshState(now)
		res.Changed = true
	}

	if g.data.State != rec.State {
		if g.data.State == StateLocked && rec.State == StateCurrent {
			// A provider's in-progress detector can't see LOCKED; never let
			// it downgrade a game once odds have locked.
		} else {
			updates = append(updates, fmt.Sprintf("state: %s => %s", g.data.State, rec.State))
			g.data.State = rec.State
			res.Changed = true

			if g.data.State == StateComplete {
				updates = append(updates, "state updated to COMPLETE - deleting status")
				g.data.Status = nil
				res.WeekInvalidated = true
			}
		}
	}

	if g.data.AwayScore != rec.AwayScore {
		updates = append(updates, fmt.Sprintf("awayScore: %d => %d", g.data.AwayScore, rec.AwayScore))
		g.data.AwayScore = rec.AwayScore
		res.Changed = true
	}
	if g.data.HomeScore != rec.HomeScore {
		updates = append(updates, fmt.Sprintf("homeScore: %d => %d", g.data.HomeScore, rec.HomeScore))
		g.data.HomeScore = rec.HomeScore
		res.Changed = true
	}
	if g.data.Quarter != rec.Quarter {
		updates = append(updates, fmt.Sprintf("quarter: %d => %d", g.data.Quarter, rec.Quarter))
		g.data.Quarter = rec.Quarter
		res.Changed = true
	}

	// Odds are only considered while the line is still open.
	if rec.Odds != nil && now.Before(g.oddsCutoff) {
		spread := roundHalf(rec.Odds.Spread)
		ou := roundHalf(rec.Odds.OverUnder)
		if g.data.Odds == nil {
			updates = append(updates,
				fmt.Sprintf("odds.spread: 0 => %g", spread),
				fmt.Sprintf("odds.ou: 0 => %g", ou))
			g.data.Odds = &Odds{Spread: spread, OverUnder: ou}
			res.Changed = true
		} else {
			if g.data.Odds.Spread != spread {
				updates = append(updates, fmt.Sprintf("odds.spread: %g => %g", g.data.Odds.Spread, spread))
				g.data.Odds.Spread = spread
				res.Changed = true
			}
			if g.data.Odds.OverUnder != ou {
				updates = append(updates, fmt.Sprintf("odds.ou: %g => %g", g.data.Odds.OverUnder, ou))
				g.data.Odds.OverUnder = ou
				res.Changed = true
			}
		}
	}

	// Live status is only considered while the game is in progress.
	if rec.Status != nil && g.data.State == StateActive {
		if g.data.Status == nil {
			updates = append(updates,
				fmt.Sprintf("status.displayClock: -- => %s", rec.Status.DisplayClock),
				fmt.Sprintf("status.possession: -- => %s", rec.Status.Possession),
				fmt.Sprintf("status.possessionText: -- => %s", rec.Status.PossessionText),
				fmt.Sprintf("status.shortDownDistanceText: -- => %s", rec.Status.ShortDownDistance))
			status := *rec.Status
			g.data.Status = &status
			res.Changed = true
		} else {
			if g.data.Status.DisplayClock != rec.Status.DisplayClock {
				updates = append(updates, fmt.Sprintf("status.displayClock: %s => %s", g.data.Status.DisplayClock, rec.Status.DisplayClock))
				g.data.Status.DisplayClock = rec.Status.DisplayClock
				res.Changed = true
			}
			if g.data.Status.Possession != rec.Status.Possession {
				updates = append(updates, fmt.Sprintf("status.possession: %s => %s", g.data.Status.Possession, rec.Status.Possession))
				g.data.Status.Possession = rec.Status.Possession
				res.Changed = true
			}
			if g.data.Status.PossessionText != rec.Status.PossessionText {
				updates = append(updates, fmt.Sprintf("status.possessionText: %s => %s", g.data.Status.PossessionText, rec.Status.PossessionText))
				g.data.Status.PossessionText = rec.Status.PossessionText
				res.Changed = true
			}
			if g.data.Status.ShortDownDistance != rec.Status.ShortDownDistance {
				updates = append(updates, fmt.Sprintf("status.shortDownDistanceText: %s => %s", g.data.Status.ShortDownDistance, rec.Status.ShortDownDistance))
				g.data.Status.ShortDownDistance = rec.Status.ShortDownDistance
				res.Changed = true
			}
		}
	}

	// Cleanup for out-of-order updates: live status must not survive a
	// state that is no longer in progress.
	if g.data.Status != nil && g.data.State != StateActive {
		updates = append(updates, fmt.Sprintf("state detected as %s - deleting status", g.data.State))
		g.data.Status = nil
		res.WeekInvalidated = true
	}

	if len(updates) > 0 {
		log.Printf("%s UPDATES:", g.Format(true))
		for _, u := range updates {
			log.Printf("  %s", u)
		}
	}

	return res, nil
}
