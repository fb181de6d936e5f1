package espn

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/GhostCrab/parlay-club-server/internal/league"
)

// Ingester is the primary update source: it fetches a week's scoreboard and
// converts it into update records for the game collection.
type Ingester struct {
	client     *Client
	teams      *league.TeamDB
	seasonYear int
}

// NewIngester creates an ESPN ingester using the default API base.
func NewIngester(teams *league.TeamDB, seasonYear int) *Ingester {
	return NewIngesterWithBaseURL(teams, seasonYear, "")
}

// NewIngesterWithBaseURL creates an ingester overriding the ESPN base URL.
func NewIngesterWithBaseURL(teams *league.TeamDB, seasonYear int, baseURL string) *Ingester {
	var client *Client
	if strings.TrimSpace(baseURL) != "" {
		log.Printf("[espn-ingester] Creating ESPN client with baseURL: %s", baseURL)
		client = New(baseURL, seasonYear)
	} else {
		client = NewClient(seasonYear)
	}

	return &Ingester{
		client:     client,
		teams:      teams,
		seasonYear: seasonYear,
	}
}

// GamesForWeek fetches and parses one week's scoreboard. currentWeek drives
// the PRE/CURRENT split on games that have not started.
func (i *Ingester) GamesForWeek(ctx context.Context, week, currentWeek int) ([]league.GameData, error) {
	scoreboard, err := i.client.FetchWeek(ctx, week)
	if err != nil {
		return nil, fmt.Errorf("fetch week %d scoreboard: %w", week, err)
	}

	recs, err := ParseScoreboard(scoreboard, i.seasonYear, currentWeek, i.teams)
	if err != nil {
		return nil, fmt.Errorf("parse week %d scoreboard: %w", week, err)
	}

	return recs, nil
}
