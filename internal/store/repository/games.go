package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/GhostCrab/parlay-club-server/internal/league"
	"github.com/GhostCrab/parlay-club-server/internal/store"
)

// GameRepository persists game snapshots
type GameRepository struct {
	db *store.Database
}

// NewGameRepository creates a new game repository
func NewGameRepository(db *store.Database) *GameRepository {
	return &GameRepository{db: db}
}

// GetByID finds a game snapshot by its id
func (r *GameRepository) GetByID(ctx context.Context, gameID int) (league.GameData, error) {
	query := `
		SELECT game_id, game_date, week, away_team, home_team, state,
			away_score, home_score, quarter, spread, over_under, status, updated_at
		FROM games
		WHERE game_id = $1
	`

	row := store.GameRow{}
	err := r.db.DB().QueryRowContext(ctx, query, gameID).Scan(
		&row.GameID, &row.GameDate, &row.Week, &row.AwayTeam, &row.HomeTeam, &row.State,
		&row.AwayScore, &row.HomeScore, &row.Quarter, &row.Spread, &row.OverUnder,
		&row.Status, &row.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return league.GameData{}, fmt.Errorf("game not found: %d", gameID)
	}
	if err != nil {
		return league.GameData{}, fmt.Errorf("querying game: %w", err)
	}

	return row.GameData()
}

// LoadAll returns every stored game snapshot in kickoff order. It feeds the
// in-memory collection at startup.
func (r *GameRepository) LoadAll(ctx context.Context) ([]league.GameData, error) {
	query := `
		SELECT game_id, game_date, week, away_team, home_team, state,
			away_score, home_score, quarter, spread, over_under, status, updated_at
		FROM games
		ORDER BY game_date, game_id
	`

	rows, err := r.db.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying games: %w", err)
	}
	defer rows.Close()

	return r.scanGames(rows)
}

// LoadWeek returns the stored snapshots for one week
func (r *GameRepository) LoadWeek(ctx context.Context, week int) ([]league.GameData, error) {
	query := `
		SELECT game_id, game_date, week, away_team, home_team, state,
			away_score, home_score, quarter, spread, over_under, status, updated_at
		FROM games
		WHERE week = $1
		ORDER BY game_date, game_id
	`

	rows, err := r.db.DB().QueryContext(ctx, query, week)
	if err != nil {
		return nil, fmt.Errorf("querying week %d games: %w", week, err)
	}
	defer rows.Close()

	return r.scanGames(rows)
}

// Upsert inserts or updates one game snapshot
func (r *GameRepository) Upsert(ctx context.Context, data league.GameData) error {
	return r.upsert(ctx, r.db.DB(), data)
}

// UpsertBatch writes an update delta in a single transaction so a crash
// mid-batch never leaves a half-applied poll cycle on disk.
func (r *GameRepository) UpsertBatch(ctx context.Context, batch []league.GameData) error {
	if len(batch) == 0 {
		return nil
	}

	tx, err := r.db.DB().BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning upsert batch: %w", err)
	}
	defer tx.Rollback()

	for _, data := range batch {
		if err := r.upsert(ctx, tx, data); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing upsert batch: %w", err)
	}
	return nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (r *GameRepository) upsert(ctx context.Context, ex execer, data league.GameData) error {
	row, err := store.NewGameRow(data)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO games (game_id, game_date, week, away_team, home_team, state,
			away_score, home_score, quarter, spread, over_under, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (game_id) DO UPDATE SET
			game_date = EXCLUDED.game_date,
			state = EXCLUDED.state,
			away_score = EXCLUDED.away_score,
			home_score = EXCLUDED.home_score,
			quarter = EXCLUDED.quarter,
			spread = EXCLUDED.spread,
			over_under = EXCLUDED.over_under,
			status = EXCLUDED.status,
			updated_at = NOW()
	`

	var status any
	if len(row.Status) > 0 {
		status = row.Status
	}
	_, err = ex.ExecContext(ctx, query,
		row.GameID, row.GameDate, row.Week, row.AwayTeam, row.HomeTeam, row.State,
		row.AwayScore, row.HomeScore, row.Quarter, row.Spread, row.OverUnder, status,
	)
	if err != nil {
		return fmt.Errorf("upserting game %d: %w", row.GameID, err)
	}

	return nil
}

// scanGames scans multiple game rows
func (r *GameRepository) scanGames(rows *sql.Rows) ([]league.GameData, error) {
	var games []league.GameData
	for rows.Next() {
		row := store.GameRow{}
		err := rows.Scan(
			&row.GameID, &row.GameDate, &row.Week, &row.AwayTeam, &row.HomeTeam, &row.State,
			&row.AwayScore, &row.HomeScore, &row.Quarter, &row.Spread, &row.OverUnder,
			&row.Status, &row.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning game: %w", err)
		}
		data, err := row.GameData()
		if err != nil {
			return nil, err
		}
		games = append(games, data)
	}

	return games, rows.Err()
}
