package google

import (
	"log"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/GhostCrab/parlay-club-server/internal/league"
)

// LiveGame is a score line scraped from Google. It is a partial view: no
// event id, no odds, teams named in prose. The ingester resolves it against
// the game collection before it can update anything.
type LiveGame struct {
	HomeTeam      string
	AwayTeam      string
	HomeScore     int
	AwayScore     int
	GameStatus    string
	Quarter       int
	TimeRemaining string
	IsLive        bool
	IsFinal       bool
}

// ParseLiveGames extracts live NFL games from Google search results
func ParseLiveGames(doc *goquery.Document) ([]LiveGame, error) {
	var games []LiveGame

	// Google Sports uses various selectors depending on the page structure
	// We'll try multiple strategies to extract game data

	// Strategy 1: Look for sports card widgets
	doc.Find("div.imso_mh__lv-m-stl-cont").Each(func(i int, s *goquery.Selection) {
		game := parseSportsCard(s)
		if game != nil {
			games = append(games, *game)
		}
	})

	// Strategy 2: Look for game result divs
	if len(games) == 0 {
		doc.Find("div[class*='sports']").Each(func(i int, s *goquery.Selection) {
			game := parseSportsDiv(s)
			if game != nil {
				games = append(games, *game)
			}
		})
	}

	log.Printf("Parsed %d live games from Google", len(games))
	return games, nil
}

// parseSportsCard extracts game info from a Google sports card widget
func parseSportsCard(s *goquery.Selection) *LiveGame {
	game := &LiveGame{}

	// Extract team names
	s.Find("div.imso_mh__first-tn-ed").Each(func(i int, team *goquery.Selection) {
		teamName := strings.TrimSpace(team.Text())
		if i == 0 {
			game.HomeTeam = teamName
		} else if i == 1 {
			game.AwayTeam = teamName
		}
	})

	// Extract scores
	s.Find("div.imso_mh__l-tm-sc").Each(func(i int, score *goquery.Selection) {
		scoreText := strings.TrimSpace(score.Text())
		scoreVal, err := strconv.Atoi(scoreText)
		if err == nil {
			if i == 0 {
				game.HomeScore = scoreVal
			} else if i == 1 {
				game.AwayScore = scoreVal
			}
		}
	})

	// Extract game status (Live, Final, etc.)
	statusText := s.Find("span.imso_mh__ft-mtch").Text()
	game.GameStatus = strings.TrimSpace(statusText)

	statusLower := strings.ToLower(game.GameStatus)
	game.IsFinal = strings.Contains(statusLower, "final")
	game.Quarter, game.TimeRemaining = parseGameClock(game.GameStatus)
	game.IsLive = !game.IsFinal &&
		(strings.Contains(statusLower, "live") || game.Quarter > 0)

	// Only return if we have valid team names
	if game.HomeTeam != "" && game.AwayTeam != "" {
		return game
	}

	return nil
}

// parseSportsDiv is a fallback parser for alternate Google structures
func parseSportsDiv(s *goquery.Selection) *LiveGame {
	// Google's HTML structure can vary, so keep this loose

	text := s.Text()
	if !strings.Contains(strings.ToLower(text), "nfl") {
		return nil
	}

	// Look for score patterns like "Lions 24 - 20 Chiefs"
	scorePattern := regexp.MustCompile(`(\w+)\s+(\d+)\s*-\s*(\d+)\s+(\w+)`)
	matches := scorePattern.FindStringSubmatch(text)

	if len(matches) == 5 {
		awayScore, _ := strconv.Atoi(matches[2])
		homeScore, _ := strconv.Atoi(matches[3])

		return &LiveGame{
			AwayTeam:   matches[1],
			HomeTeam:   matches[4],
			AwayScore:  awayScore,
			HomeScore:  homeScore,
			GameStatus: "Unknown",
		}
	}

	return nil
}

// parseGameClock extracts quarter and time remaining from status text
func parseGameClock(statusText string) (int, string) {
	statusLower := strings.ToLower(statusText)

	quarterMap := map[string]int{
		"q1": 1, "1st": 1, "first": 1,
		"q2": 2, "2nd": 2, "second": 2,
		"q3": 3, "3rd": 3, "third": 3,
		"q4": 4, "4th": 4, "fourth": 4,
		"ot": 5, "overtime": 5,
	}

	for key, quarter := range quarterMap {
		if strings.Contains(statusLower, key) {
			// Try to extract time
			timePattern := regexp.MustCompile(`(\d{1,2}:\d{2})`)
			if matches := timePattern.FindStringSubmatch(statusText); len(matches) > 0 {
				return quarter, matches[1]
			}
			return quarter, ""
		}
	}

	// Check for halftime
	if strings.Contains(statusLower, "half") {
		return 2, "Halftime"
	}

	return 0, ""
}

// GetTeamAbbreviation resolves a scraped team name ("Chiefs", "Kansas City")
// against the reference table. Returns "" when nothing matches.
func GetTeamAbbreviation(teams *league.TeamDB, teamName string) string {
	nameUpper := strings.ToUpper(strings.TrimSpace(teamName))
	if nameUpper == "" {
		return ""
	}

	if team, err := teams.FromAbbr(nameUpper); err == nil {
		return team.Abbr
	}

	for _, team := range teams.ActiveTeams() {
		if nameUpper == team.Name || nameUpper == team.City ||
			strings.Contains(nameUpper, team.Name) {
			return team.Abbr
		}
	}

	return ""
}
