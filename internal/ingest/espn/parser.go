package espn

import (
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/GhostCrab/parlay-club-server/internal/league"
)

// ESPN status type names that matter for state mapping. Anything else leaves
// the game in its week-derived PRE/CURRENT state.
const (
	statusInProgress = "STATUS_IN_PROGRESS"
	statusEndPeriod  = "STATUS_END_PERIOD"
	statusHalftime   = "STATUS_HALFTIME"
	statusFinal      = "STATUS_FINAL"
)

// ParseScoreboard extracts update records from one week's scoreboard
// response. Events from other season years (ESPN bleeds the preceding
// postseason into week 1 responses) are dropped; events that fail to parse
// are logged and skipped so one malformed entry never poisons a poll cycle.
func ParseScoreboard(scoreboard map[string]interface{}, seasonYear, currentWeek int, teams *league.TeamDB) ([]league.GameData, error) {
	events := extractArray(scoreboard, "events")
	if len(events) == 0 {
		// Bye-heavy weeks can legitimately be empty
		return []league.GameData{}, nil
	}

	var recs []league.GameData
	for _, eventInterface := range events {
		event, ok := eventInterface.(map[string]interface{})
		if !ok {
			continue
		}

		season := extractMap(event, "season")
		if extractInt(season, "year") != seasonYear {
			continue
		}

		rec, err := parseGameFromEvent(event, currentWeek, teams)
		if err != nil {
			log.Printf("[espn-parser] Warning: Skipping event %s: %v", extractString(event, "id"), err)
			continue
		}
		recs = append(recs, rec)
	}

	return recs, nil
}

func parseGameFromEvent(event map[string]interface{}, currentWeek int, teams *league.TeamDB) (league.GameData, error) {
	competitions := extractArray(event, "competitions")
	if len(competitions) == 0 {
		return league.GameData{}, fmt.Errorf("no competitions")
	}
	comp, ok := competitions[0].(map[string]interface{})
	if !ok {
		return league.GameData{}, fmt.Errorf("malformed competition")
	}

	week := extractInt(extractMap(event, "week"), "number")

	rec := league.GameData{
		ID:   extractInt(comp, "id"),
		Week: week,
	}
	if rec.ID == 0 {
		return league.GameData{}, fmt.Errorf("no competition id")
	}

	dateStr := extractString(comp, "date")
	if dateStr == "" {
		dateStr = extractString(event, "date")
	}
	date, err := parseEventDate(dateStr)
	if err != nil {
		return league.GameData{}, fmt.Errorf("parsing date %q: %w", dateStr, err)
	}
	rec.Date = date

	status := extractMap(comp, "status")
	statusName := extractString(extractMap(status, "type"), "name")

	rec.State = league.StatePre
	if week == currentWeek {
		rec.State = league.StateCurrent
	}
	switch statusName {
	case statusInProgress, statusEndPeriod, statusHalftime:
		rec.State = league.StateActive
	case statusFinal:
		rec.State = league.StateComplete
	}
	rec.Quarter = extractInt(status, "period")

	for _, compInterface := range extractArray(comp, "competitors") {
		competitor, ok := compInterface.(map[string]interface{})
		if !ok {
			continue
		}
		team := extractMap(competitor, "team")
		abbr := strings.ToUpper(extractString(team, "abbreviation"))
		score := extractInt(competitor, "score")

		switch extractString(competitor, "homeAway") {
		case "home":
			rec.Home = abbr
			rec.HomeScore = score
		case "away":
			rec.Away = abbr
			rec.AwayScore = score
		}
	}
	if rec.Home == "" || rec.Away == "" {
		return league.GameData{}, fmt.Errorf("insufficient competitors")
	}

	if oddsArr := extractArray(comp, "odds"); len(oddsArr) > 0 {
		if oddsObj, ok := oddsArr[0].(map[string]interface{}); ok {
			rec.Odds = parseOdds(oddsObj, rec.Away)
		}
	}

	// Live situation detail. ESPN keeps a stale situation block on finished
	// games, so COMPLETE never carries one.
	situation := extractMap(comp, "situation")
	if len(situation) > 0 && rec.State != league.StateComplete {
		rec.Status = parseSituation(situation, status, teams)
	}

	return rec, nil
}

func parseEventDate(dateStr string) (time.Time, error) {
	// Try RFC3339 first, then ESPN's shortened format (no seconds)
	t, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		t, err = time.Parse("2006-01-02T15:04Z", dateStr)
	}
	return t, err
}

// parseOdds converts ESPN's "details" line, e.g. "KC -3.5" or "EVEN", into
// the home-relative spread convention: negative favors home, an away
// favorite flips positive.
func parseOdds(oddsObj map[string]interface{}, awayAbbr string) *league.Odds {
	details := extractString(oddsObj, "details")
	if details == "" {
		return nil
	}

	var spread float64
	fav, spreadStr, _ := strings.Cut(details, " ")
	if details != "EVEN" {
		v, err := strconv.ParseFloat(spreadStr, 64)
		if err != nil {
			return nil
		}
		spread = v
		if fav == awayAbbr {
			spread = math.Abs(spread)
		}
	}

	return &league.Odds{
		Spread:    spread,
		OverUnder: extractFloat(oddsObj, "overUnder"),
	}
}

func parseSituation(situation, status map[string]interface{}, teams *league.TeamDB) *league.LiveStatus {
	possessionID := extractInt(situation, "possession")
	if possessionID == 0 {
		lastPlay := extractMap(situation, "lastPlay")
		possessionID = extractInt(extractMap(extractMap(lastPlay, "end"), "team"), "id")
	}

	possession := ""
	if team, err := teams.FromID(possessionID); err == nil {
		possession = team.Abbr
	}

	return &league.LiveStatus{
		DisplayClock:      extractString(status, "displayClock"),
		Possession:        possession,
		PossessionText:    extractString(situation, "possessionText"),
		ShortDownDistance: extractString(situation, "shortDownDistanceText"),
	}
}

func extractString(m map[string]interface{}, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func extractInt(m map[string]interface{}, key string) int {
	if v, ok := m[key]; ok {
		return parseInt(v)
	}
	return 0
}

func extractFloat(m map[string]interface{}, key string) float64 {
	if v, ok := m[key]; ok {
		switch val := v.(type) {
		case float64:
			return val
		case string:
			f, _ := strconv.ParseFloat(val, 64)
			return f
		}
	}
	return 0
}

func extractMap(m map[string]interface{}, key string) map[string]interface{} {
	if v, ok := m[key]; ok {
		if mapVal, ok := v.(map[string]interface{}); ok {
			return mapVal
		}
	}
	return map[string]interface{}{}
}

func extractArray(m map[string]interface{}, key string) []interface{} {
	if v, ok := m[key]; ok {
		if arrVal, ok := v.([]interface{}); ok {
			return arrVal
		}
	}
	return []interface{}{}
}

func parseInt(v interface{}) int {
	switch val := v.(type) {
	case float64:
		return int(val)
	case string:
		i, _ := strconv.Atoi(val)
		return i
	case int:
		return val
	default:
		return 0
	}
}
