package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/GhostCrab/parlay-club-server/internal/league"
)

// GameRow is the persistence form of a game snapshot. Odds columns are NULL
// until a line has been obtained; status is a JSONB blob that exists only
// while the game is in progress.
type GameRow struct {
	GameID    int             `db:"game_id"`
	GameDate  time.Time       `db:"game_date"`
	Week      int             `db:"week"`
	AwayTeam  string          `db:"away_team"`
	HomeTeam  string          `db:"home_team"`
	State     int             `db:"state"`
	AwayScore int             `db:"away_score"`
	HomeScore int             `db:"home_score"`
	Quarter   int             `db:"quarter"`
	Spread    sql.NullFloat64 `db:"spread"`
	OverUnder sql.NullFloat64 `db:"over_under"`
	Status    []byte          `db:"status"`
	UpdatedAt time.Time       `db:"updated_at"`
}

// NewGameRow converts a game's wire form to its persistence form.
func NewGameRow(data league.GameData) (GameRow, error) {
	row := GameRow{
		GameID:    data.ID,
		GameDate:  data.Date,
		Week:      data.Week,
		AwayTeam:  data.Away,
		HomeTeam:  data.Home,
		State:     int(data.State),
		AwayScore: data.AwayScore,
		HomeScore: data.HomeScore,
		Quarter:   data.Quarter,
	}
	if data.Odds != nil {
		row.Spread = sql.NullFloat64{Float64: data.Odds.Spread, Valid: true}
		row.OverUnder = sql.NullFloat64{Float64: data.Odds.OverUnder, Valid: true}
	}
	if data.Status != nil {
		blob, err := json.Marshal(data.Status)
		if err != nil {
			return GameRow{}, fmt.Errorf("marshaling game %d status: %w", data.ID, err)
		}
		row.Status = blob
	}
	return row, nil
}

// GameData converts the row back to the wire form.
func (r GameRow) GameData() (league.GameData, error) {
	data := league.GameData{
		ID:        r.GameID,
		Date:      r.GameDate,
		Week:      r.Week,
		Away:      r.AwayTeam,
		Home:      r.HomeTeam,
		State:     league.GameState(r.State),
		AwayScore: r.AwayScore,
		HomeScore: r.HomeScore,
		Quarter:   r.Quarter,
	}
	if r.Spread.Valid || r.OverUnder.Valid {
		data.Odds = &league.Odds{Spread: r.Spread.Float64, OverUnder: r.OverUnder.Float64}
	}
	if len(r.Status) > 0 {
		status := &league.LiveStatus{}
		if err := json.Unmarshal(r.Status, status); err != nil {
			return league.GameData{}, fmt.Errorf("unmarshaling game %d status: %w", r.GameID, err)
		}
		data.Status = status
	}
	return data, nil
}

// PickRow is the persistence form of one pick.
type PickRow struct {
	UserID    int       `db:"user_id"`
	GameID    int       `db:"game_id"`
	TeamID    int       `db:"team_id"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Pick converts the row to the domain form.
func (r PickRow) Pick() league.Pick {
	return league.Pick{User: r.UserID, Game: r.GameID, Team: r.TeamID}
}
