package repository

import (
	"context"
	"fmt"

	"github.com/GhostCrab/parlay-club-server/internal/league"
	"github.com/GhostCrab/parlay-club-server/internal/store"
)

// PickRepository persists pick snapshots
type PickRepository struct {
	db *store.Database
}

// NewPickRepository creates a new pick repository
func NewPickRepository(db *store.Database) *PickRepository {
	return &PickRepository{db: db}
}

// LoadAll returns every stored pick. It feeds the in-memory collection at
// startup.
func (r *PickRepository) LoadAll(ctx context.Context) ([]league.Pick, error) {
	query := `
		SELECT user_id, game_id, team_id, updated_at
		FROM picks
		ORDER BY user_id, game_id
	`

	rows, err := r.db.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying picks: %w", err)
	}
	defer rows.Close()

	var picks []league.Pick
	for rows.Next() {
		row := store.PickRow{}
		if err := rows.Scan(&row.UserID, &row.GameID, &row.TeamID, &row.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning pick: %w", err)
		}
		picks = append(picks, row.Pick())
	}

	return picks, rows.Err()
}

// ReplaceWeek applies a pick set the same way the in-memory collection does:
// delete everything the user had for the week, insert the replacement set,
// one transaction.
func (r *PickRepository) ReplaceWeek(ctx context.Context, set league.PickSet) error {
	tx, err := r.db.DB().BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning pick replacement: %w", err)
	}
	defer tx.Rollback()

	deleteStmt := `
		DELETE FROM picks
		WHERE user_id = $1
			AND game_id IN (SELECT game_id FROM games WHERE week = $2)
	`
	if _, err := tx.ExecContext(ctx, deleteStmt, set.UserID, set.Week); err != nil {
		return fmt.Errorf("clearing user %d week %d picks: %w", set.UserID, set.Week, err)
	}

	insertStmt := `
		INSERT INTO picks (user_id, game_id, team_id)
		VALUES ($1, $2, $3)
	`
	for _, p := range set.Picks {
		if _, err := tx.ExecContext(ctx, insertStmt, p.User, p.Game, p.Team); err != nil {
			return fmt.Errorf("inserting pick (user %d, game %d): %w", p.User, p.Game, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing pick replacement: %w", err)
	}
	return nil
}
