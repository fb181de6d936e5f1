package ingest

import (
	"context"
	"log"

	"github.com/GhostCrab/parlay-club-server/internal/ingest/espn"
	"github.com/GhostCrab/parlay-club-server/internal/ingest/google"
	"github.com/GhostCrab/parlay-club-server/internal/league"
)

// LiveIngester combines the two update sources.
// ESPN is authoritative: full records, odds, live detail. Google is a lower
// latency score supplement for the current week, and the fallback when ESPN
// is unreachable.
type LiveIngester struct {
	espnIngester   *espn.Ingester
	googleIngester *google.Ingester
}

// NewLiveIngester creates a combined ingester. A Google startup failure is
// not fatal; ESPN carries the season alone.
func NewLiveIngester(games *league.GameDB, teams *league.TeamDB, seasonYear int, espnBaseURL string) *LiveIngester {
	googleIngester, err := google.NewIngester(games, teams)
	if err != nil {
		log.Printf("Warning: Failed to initialize Google ingester: %v", err)
		googleIngester = nil
	}

	return &LiveIngester{
		espnIngester:   espn.NewIngesterWithBaseURL(teams, seasonYear, espnBaseURL),
		googleIngester: googleIngester,
	}
}

// Close releases resources
func (li *LiveIngester) Close() {
	if li.googleIngester != nil {
		li.googleIngester.Close()
	}
}

// GamesForWeek returns one week's update records. For the current week with
// games in progress, Google's scraped scores are appended after ESPN's
// records; the collection applies a batch in order, so the fresher scores
// win field by field.
func (li *LiveIngester) GamesForWeek(ctx context.Context, week, currentWeek int) ([]league.GameData, error) {
	recs, espnErr := li.espnIngester.GamesForWeek(ctx, week, currentWeek)
	if espnErr != nil {
		log.Printf("ESPN ingestion failed for week %d: %v", week, espnErr)
		if week == currentWeek && li.googleIngester != nil {
			return li.googleFallback(ctx, espnErr)
		}
		return nil, espnErr
	}

	if week == currentWeek && li.googleIngester != nil && anyActive(recs) {
		liveRecs, err := li.googleIngester.LiveUpdates(ctx)
		if err != nil {
			log.Printf("Google score supplement failed: %v", err)
		} else {
			recs = append(recs, liveRecs...)
		}
	}

	return recs, nil
}

func (li *LiveIngester) googleFallback(ctx context.Context, espnErr error) ([]league.GameData, error) {
	log.Println("Falling back to Google for current week scores")
	recs, err := li.googleIngester.LiveUpdates(ctx)
	if err != nil {
		log.Printf("Google fallback failed: %v", err)
		return nil, espnErr
	}
	return recs, nil
}

func anyActive(recs []league.GameData) bool {
	for _, rec := range recs {
		if rec.State == league.StateActive {
			return true
		}
	}
	return false
}
