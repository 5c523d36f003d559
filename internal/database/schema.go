package database

import (
	"context"
	"fmt"
)

var jobsColumns = []string{
	"id", "title", "company", "description", "skills", "category",
	"location", "salary", "experience_required", "job_type", "status", "external_url", "created_at",
}

var usersColumns = []string{
	"id", "skills", "location", "experience",
	"pref_category", "pref_location", "pref_job_type", "pref_min_salary", "created_at",
}

// EnsureSchema verifies at startup that the tables the repositories query
// actually carry the columns they scan. Fails fast instead of surfacing
// scan errors per request.
func EnsureSchema(ctx context.Context, db DB) error {
	if err := ensureTableColumns(ctx, db, "jobs", jobsColumns...); err != nil {
		return err
	}
	return ensureTableColumns(ctx, db, "users", usersColumns...)
}

func ensureTableColumns(ctx context.Context, db DB, table string, columns ...string) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}

	rows, err := db.Query(
		ctx,
		`SELECT column_name FROM information_schema.columns WHERE table_schema='public' AND table_name=$1`,
		table,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	existing := map[string]struct{}{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return err
		}
		existing[c] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, col := range columns {
		if _, ok := existing[col]; !ok {
			return fmt.Errorf("schema mismatch: missing column %s.%s", table, col)
		}
	}
	return nil
}
