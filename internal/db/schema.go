package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// Schema holds the idempotent table definitions used by the service.
// The unique constraints on admin.username and subscriber.email are the
// authoritative duplicate guards.
var Schema = []string{
	`CREATE TABLE IF NOT EXISTS admin (
		id            SERIAL PRIMARY KEY,
		username      VARCHAR(100) NOT NULL UNIQUE,
		password_hash VARCHAR(100) NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	);`,
	`CREATE TABLE IF NOT EXISTS subscriber (
		id         SERIAL PRIMARY KEY,
		email      VARCHAR(320) NOT NULL UNIQUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);`,
	`CREATE TABLE IF NOT EXISTS project (
		id          SERIAL PRIMARY KEY,
		title       TEXT NOT NULL,
		description TEXT NOT NULL,
		github_url  TEXT NOT NULL,
		category    VARCHAR(20) NOT NULL CHECK (category IN ('application', 'opensource')),
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	);`,
	`CREATE TABLE IF NOT EXISTS blog_post (
		id          SERIAL PRIMARY KEY,
		title       TEXT NOT NULL,
		description TEXT NOT NULL,
		date        TIMESTAMPTZ NOT NULL,
		image_url   TEXT NOT NULL,
		video_url   TEXT NOT NULL DEFAULT '',
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	);`,
	`CREATE TABLE IF NOT EXISTS blog_visit (
		id          SERIAL PRIMARY KEY,
		username    TEXT NOT NULL,
		email       VARCHAR(320) NOT NULL,
		designation VARCHAR(20) NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	);`,
	`CREATE INDEX IF NOT EXISTS blog_visit_created_at_idx ON blog_visit (created_at DESC);`,
}

// Bootstrap creates all missing tables. Safe to run on every start.
func Bootstrap(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range Schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("bootstrap schema: %w", err)
		}
	}
	log.Debugf("db schema bootstrapped, %d statements", len(Schema))
	return nil
}
