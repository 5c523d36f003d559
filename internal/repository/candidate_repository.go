package repository

import (
	"context"
	"database/sql"
	"errors"

	"rozgarhub/internal/database"
	"rozgarhub/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrCandidateNotFound = errors.New("candidate not found")

type CandidateRepository interface {
	GetProfile(ctx context.Context, id uuid.UUID) (user.CandidateProfile, error)
	GetPreferences(ctx context.Context, id uuid.UUID) (user.Preferences, error)
}

type PostgresCandidateRepository struct {
	db database.DB
}

func NewPostgresCandidateRepository(db database.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db}
}

func (r *PostgresCandidateRepository) GetProfile(ctx context.Context, id uuid.UUID) (user.CandidateProfile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, COALESCE(skills,'{}'), COALESCE(location,''), COALESCE(experience,''),
			COALESCE(pref_category,''), COALESCE(pref_location,''), COALESCE(pref_job_type,''),
			COALESCE(pref_min_salary,''), created_at
		 FROM users WHERE id = $1`,
		id,
	)

	var p user.CandidateProfile
	err := row.Scan(
		&p.ID, &p.Skills, &p.Location, &p.Experience,
		&p.Preferences.Category, &p.Preferences.Location, &p.Preferences.JobType,
		&p.Preferences.MinSalary, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return user.CandidateProfile{}, ErrCandidateNotFound
		}
		return user.CandidateProfile{}, err
	}
	return p, nil
}

func (r *PostgresCandidateRepository) GetPreferences(ctx context.Context, id uuid.UUID) (user.Preferences, error) {
	row := r.db.QueryRow(ctx,
		`SELECT COALESCE(pref_category,''), COALESCE(pref_location,''),
			COALESCE(pref_job_type,''), COALESCE(pref_min_salary,'')
		 FROM users WHERE id = $1`,
		id,
	)

	var p user.Preferences
	if err := row.Scan(&p.Category, &p.Location, &p.JobType, &p.MinSalary); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return user.Preferences{}, ErrCandidateNotFound
		}
		return user.Preferences{}, err
	}
	return p, nil
}
