package google

import (
	"context"
	"fmt"
	"log"

	"github.com/GhostCrab/parlay-club-server/internal/league"
)

// Ingester is the backup score source. Google's sports widget has no event
// ids, so every scraped line must resolve to a known game through the
// (current week, team) index before it can produce an update record.
type Ingester struct {
	client *Client
	games  *league.GameDB
	teams  *league.TeamDB
}

// NewIngester creates a new Google Sports ingester
func NewIngester(games *league.GameDB, teams *league.TeamDB) (*Ingester, error) {
	client, err := NewClient()
	if err != nil {
		return nil, fmt.Errorf("failed to create Google client: %w", err)
	}

	return &Ingester{
		client: client,
		games:  games,
		teams:  teams,
	}, nil
}

// Close releases resources
func (i *Ingester) Close() {
	if i.client != nil {
		i.client.Close()
	}
}

// LiveUpdates scrapes today's scores and converts the lines that resolve to
// current week games into update records. Unresolvable lines are logged and
// dropped; odds never come from this source.
func (i *Ingester) LiveUpdates(ctx context.Context) ([]league.GameData, error) {
	htmlContent, err := i.client.FetchLiveGames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch live games: %w", err)
	}

	doc, err := ParseHTML(htmlContent)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	scraped, err := ParseLiveGames(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse games: %w", err)
	}

	week := i.games.CurrentWeek(false)

	var recs []league.GameData
	for _, lg := range scraped {
		rec, ok := i.resolve(lg, week)
		if !ok {
			log.Printf("[google-ingester] Unresolvable line: %s vs %s (%s)",
				lg.AwayTeam, lg.HomeTeam, lg.GameStatus)
			continue
		}
		recs = append(recs, rec)
	}

	return recs, nil
}

// resolve matches a scraped line to a stored game and overlays the scraped
// score onto the game's own identity, producing a full update record.
func (i *Ingester) resolve(lg LiveGame, week int) (league.GameData, bool) {
	homeAbbr := GetTeamAbbreviation(i.teams, lg.HomeTeam)
	if homeAbbr == "" {
		return league.GameData{}, false
	}

	g, err := i.games.FromWeekTeam(week, homeAbbr)
	if err != nil || g == nil {
		return league.GameData{}, false
	}
	if g.Home() != homeAbbr {
		// The scraped card had the sides flipped; trust the stored matchup
		lg.HomeScore, lg.AwayScore = lg.AwayScore, lg.HomeScore
	}

	rec := g.Data()
	rec.HomeScore = lg.HomeScore
	rec.AwayScore = lg.AwayScore
	rec.Quarter = lg.Quarter
	if lg.IsLive {
		rec.State = league.StateActive
	}
	if lg.IsFinal {
		rec.State = league.StateComplete
	}
	// Scores only from this source: drop fields a scrape can't refresh
	rec.Odds = nil
	rec.Status = nil

	return rec, true
}
