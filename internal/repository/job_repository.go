package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"rozgarhub/internal/database"
	"rozgarhub/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrJobNotFound = errors.New("job not found")

// SearchFilter drives the internal fallback search. Both texts are optional;
// with neither set only the open-status filter applies.
type SearchFilter struct {
	Role     string
	Location string
	Limit    int
}

// ListFilter mirrors the public listing endpoint's query parameters.
type ListFilter struct {
	Category string
	Location string
	JobType  string
	Status   string
	Search   string
	Limit    int
	Offset   int
}

type JobRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (job.Posting, error)
	SearchOpen(ctx context.Context, f SearchFilter) ([]job.Posting, error)
	ListJobs(ctx context.Context, f ListFilter) ([]job.Posting, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `id, COALESCE(title,''), COALESCE(company,''), COALESCE(description,''),
	COALESCE(skills,'{}'), COALESCE(category,''), COALESCE(location,''), COALESCE(salary,''),
	COALESCE(experience_required,''), COALESCE(job_type,''), COALESCE(status,''), created_at`

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Posting, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	p, err := scanPosting(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return job.Posting{}, ErrJobNotFound
		}
		return job.Posting{}, err
	}
	return p, nil
}

// SearchOpen reads open postings only. The role text matches title,
// description, company or category as a case-insensitive substring; the
// location text additionally constrains the location field. Results come back
// newest-first.
func (r *PostgresJobRepository) SearchOpen(ctx context.Context, f SearchFilter) ([]job.Posting, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = 5
	}

	where := []string{"status = 'open'"}
	args := []any{}

	if role := strings.TrimSpace(f.Role); role != "" {
		args = append(args, "%"+role+"%")
		n := len(args)
		where = append(where, fmt.Sprintf(
			"(title ILIKE $%d OR description ILIKE $%d OR company ILIKE $%d OR category ILIKE $%d)",
			n, n, n, n,
		))
	}
	if loc := strings.TrimSpace(f.Location); loc != "" {
		args = append(args, "%"+loc+"%")
		where = append(where, fmt.Sprintf("location ILIKE $%d", len(args)))
	}

	args = append(args, limit)
	query := fmt.Sprintf(
		`SELECT %s FROM jobs WHERE %s ORDER BY created_at DESC LIMIT $%d`,
		jobColumns, strings.Join(where, " AND "), len(args),
	)

	return r.queryPostings(ctx, query, args...)
}

func (r *PostgresJobRepository) ListJobs(ctx context.Context, f ListFilter) ([]job.Posting, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 50 {
		limit = 50
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	where := []string{"TRUE"}
	args := []any{}
	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}

	if c := strings.TrimSpace(f.Category); c != "" {
		add("category ILIKE $%d", "%"+c+"%")
	}
	if l := strings.TrimSpace(f.Location); l != "" {
		add("location ILIKE $%d", "%"+l+"%")
	}
	if t := strings.TrimSpace(f.JobType); t != "" {
		add("job_type = $%d", t)
	}
	if s := strings.TrimSpace(f.Status); s != "" {
		add("status = $%d", s)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		args = append(args, "%"+s+"%")
		n := len(args)
		where = append(where, fmt.Sprintf(
			"(title ILIKE $%d OR company ILIKE $%d OR description ILIKE $%d)", n, n, n,
		))
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(
		`SELECT %s FROM jobs WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		jobColumns, strings.Join(where, " AND "), len(args)-1, len(args),
	)

	return r.queryPostings(ctx, query, args...)
}

func (r *PostgresJobRepository) queryPostings(ctx context.Context, query string, args ...any) ([]job.Posting, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Posting, 0)
	for rows.Next() {
		p, err := scanPosting(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPosting(s scanner) (job.Posting, error) {
	var p job.Posting
	err := s.Scan(
		&p.ID, &p.Title, &p.Company, &p.Description,
		&p.Skills, &p.Category, &p.Location, &p.Salary,
		&p.ExperienceRequired, &p.JobType, &p.Status, &p.CreatedAt,
	)
	return p, err
}
