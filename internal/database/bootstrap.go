package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Bootstrap creates the five tables if they do not exist yet. There is no
// migration versioning on this path; cmd/migrate covers managed environments.
func Bootstrap(ctx context.Context, db *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			username TEXT UNIQUE,
			email TEXT,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'player',
			full_name TEXT,
			phone TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS sessions (
			id BIGSERIAL PRIMARY KEY,
			title TEXT NOT NULL DEFAULT 'Untitled Session',
			description TEXT,
			coach_id BIGINT REFERENCES users(id) ON DELETE SET NULL,
			start_time TEXT,
			end_time TEXT,
			session_type TEXT,
			location TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS performance (
			id BIGSERIAL PRIMARY KEY,
			player_id BIGINT REFERENCES users(id) ON DELETE SET NULL,
			session_id BIGINT REFERENCES sessions(id) ON DELETE SET NULL,
			distance_meters DOUBLE PRECISION,
			speed DOUBLE PRECISION,
			acceleration DOUBLE PRECISION,
			deceleration DOUBLE PRECISION,
			cadence_spm DOUBLE PRECISION,
			heart_rate DOUBLE PRECISION,
			recorded_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS feedback (
			id BIGSERIAL PRIMARY KEY,
			coach_id BIGINT REFERENCES users(id) ON DELETE SET NULL,
			player_id BIGINT REFERENCES users(id) ON DELETE SET NULL,
			session_id BIGINT REFERENCES sessions(id) ON DELETE SET NULL,
			notes TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS survey (
			id BIGSERIAL PRIMARY KEY,
			player_id BIGINT REFERENCES users(id) ON DELETE SET NULL,
			session_id BIGINT REFERENCES sessions(id) ON DELETE SET NULL,
			response JSONB,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema bootstrap failed: %w", err)
		}
	}
	return nil
}
