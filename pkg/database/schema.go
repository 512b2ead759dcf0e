package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Schema creates the tables behind the record store, audit trail and export jobs.
var Schema = []string{
	`CREATE TABLE IF NOT EXISTS records (
	id TEXT NOT NULL,
	resource TEXT NOT NULL,
	position INTEGER NOT NULL DEFAULT 0,
	status TEXT NOT NULL,
	payload JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	PRIMARY KEY (resource, id)
)`,
	`CREATE INDEX IF NOT EXISTS idx_records_resource_position ON records (resource, position)`,
	`CREATE TABLE IF NOT EXISTS audit_logs (
	id UUID PRIMARY KEY,
	action TEXT NOT NULL,
	resource TEXT NOT NULL,
	resource_id TEXT NOT NULL,
	from_status TEXT NOT NULL,
	to_status TEXT NOT NULL,
	note TEXT,
	actor_id TEXT,
	actor_role TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`,
	`CREATE INDEX IF NOT EXISTS idx_audit_logs_record ON audit_logs (resource, resource_id, created_at)`,
	`CREATE TABLE IF NOT EXISTS export_jobs (
	id UUID PRIMARY KEY,
	resource TEXT NOT NULL,
	params JSONB NOT NULL DEFAULT '{}'::jsonb,
	status TEXT NOT NULL,
	progress INTEGER NOT NULL DEFAULT 0,
	result_url TEXT,
	created_by TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	finished_at TIMESTAMPTZ,
	error_message TEXT
)`,
	`CREATE INDEX IF NOT EXISTS idx_export_jobs_status ON export_jobs (status, created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_export_jobs_creator ON export_jobs (created_by, created_at DESC)`,
}

// Migrate applies Schema inside one transaction. Statements are idempotent.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin migration: %w", err)
	}
	for i, stmt := range Schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration step %d: %w", i+1, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migration: %w", err)
	}
	return nil
}
