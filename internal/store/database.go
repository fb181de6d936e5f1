package store

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// Database represents the PostgreSQL snapshot store connection
type Database struct {
	conn *sql.DB
	dsn  string
}

// NewDatabase creates a new database connection
func NewDatabase(dsn string) (*Database, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)
	db.SetConnMaxIdleTime(10 * time.Minute)

	// Test connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Database{
		conn: db,
		dsn:  dsn,
	}, nil
}

// Close closes the database connection
func (db *Database) Close() error {
	if db.conn != nil {
		return db.conn.Close()
	}
	return nil
}

// DB returns the underlying *sql.DB for queries
func (db *Database) DB() *sql.DB {
	return db.conn
}

// migrations are applied in order and tracked in schema_migrations so a
// restart never re-runs one.
var migrations = []struct {
	version string
	sql     string
}{
	{
		version: "001_create_games",
		sql: `
			CREATE TABLE IF NOT EXISTS games (
				game_id INTEGER PRIMARY KEY,
				game_date TIMESTAMPTZ NOT NULL,
				week SMALLINT NOT NULL,
				away_team VARCHAR(4) NOT NULL,
				home_team VARCHAR(4) NOT NULL,
				state SMALLINT NOT NULL DEFAULT 0,
				away_score SMALLINT NOT NULL DEFAULT 0,
				home_score SMALLINT NOT NULL DEFAULT 0,
				quarter SMALLINT NOT NULL DEFAULT 0,
				spread DOUBLE PRECISION,
				over_under DOUBLE PRECISION,
				status JSONB,
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)
		`,
	},
	{
		version: "002_create_games_week_index",
		sql:     `CREATE INDEX IF NOT EXISTS idx_games_week ON games (week)`,
	},
	{
		version: "003_create_picks",
		sql: `
			CREATE TABLE IF NOT EXISTS picks (
				user_id INTEGER NOT NULL,
				game_id INTEGER NOT NULL REFERENCES games (game_id),
				team_id INTEGER NOT NULL,
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				-- (user_id, game_id) alone is not unique: a user may hold a
				-- team pick and an over/under pseudo-team pick on one game.
				PRIMARY KEY (user_id, game_id, team_id)
			)
		`,
	},
}

// RunMigrations executes all migrations in order
func (db *Database) RunMigrations() error {
	log.Println("Running database migrations...")

	if err := db.createMigrationsTable(); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	for _, m := range migrations {
		if err := db.runMigration(m.version, m.sql); err != nil {
			return fmt.Errorf("failed to run migration %s: %w", m.version, err)
		}
	}

	log.Println("✓ All migrations completed successfully")

	return nil
}

// createMigrationsTable creates a table to track which migrations have been run
func (db *Database) createMigrationsTable() error {
	query := `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version VARCHAR(255) PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	_, err := db.conn.Exec(query)
	return err
}

// runMigration runs a single migration if it hasn't been applied yet
func (db *Database) runMigration(version, query string) error {
	var exists bool
	err := db.conn.QueryRow("SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)", version).Scan(&exists)
	if err != nil {
		return err
	}

	if exists {
		log.Printf("  ⊘ Skipping %s (already applied)", version)
		return nil
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(query); err != nil {
		return fmt.Errorf("failed to execute migration: %w", err)
	}

	if _, err := tx.Exec("INSERT INTO schema_migrations (version) VALUES ($1)", version); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	log.Printf("  ✓ Applied %s", version)
	return nil
}

// HealthCheck performs a health check on the database
func (db *Database) HealthCheck() error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	return db.conn.PingContext(ctx)
}
