package database

import (
	"context"
	"database/sql"
	"fmt"
)

// Schema statements are idempotent so the server can bootstrap an empty
// database on startup. The composite unique index on (job_id, applicant_id)
// enforces the one-application-per-job rule at the storage layer.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS users_email_key ON users (email)`,
	`CREATE TABLE IF NOT EXISTS jobs (
		id UUID PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		company TEXT NOT NULL,
		location TEXT NOT NULL,
		salary TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'Active',
		posted_by UUID NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS jobs_posted_by_idx ON jobs (posted_by)`,
	`CREATE TABLE IF NOT EXISTS applications (
		id UUID PRIMARY KEY,
		job_id UUID NOT NULL REFERENCES jobs (id) ON DELETE CASCADE,
		applicant_id UUID NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		resume_url TEXT NOT NULL,
		resume_name TEXT NOT NULL DEFAULT '',
		cover_letter TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL,
		phone TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'Applied',
		interview_date TIMESTAMPTZ,
		interview_time TEXT NOT NULL DEFAULT '',
		interview_location TEXT NOT NULL DEFAULT '',
		applied_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS applications_job_applicant_key ON applications (job_id, applicant_id)`,
	`CREATE INDEX IF NOT EXISTS applications_applicant_idx ON applications (applicant_id)`,
}

func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
