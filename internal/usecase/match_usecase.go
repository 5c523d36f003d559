package usecase

import (
	"context"
	"errors"
	"sort"

	"rozgarhub/internal/domain/job"
	"rozgarhub/internal/domain/matching"
	"rozgarhub/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInternal          = errors.New("internal error")
	ErrJobNotFound       = errors.New("job not found")
	ErrCandidateNotFound = errors.New("candidate not found")
)

const recommendationPoolSize = 100

type JobRecommendation struct {
	Posting job.Posting
	Score   int
}

// MatchUsecase is the admin-tooling entry point around the match scorer.
type MatchUsecase interface {
	CalculateMatch(ctx context.Context, jobID, userID uuid.UUID) (matching.Result, error)
	RecommendJobs(ctx context.Context, userID uuid.UUID, limit int) ([]JobRecommendation, error)
}

type Match struct {
	jobs       repository.JobRepository
	candidates repository.CandidateRepository
}

func NewMatchUsecase(jobs repository.JobRepository, candidates repository.CandidateRepository) *Match {
	return &Match{jobs: jobs, candidates: candidates}
}

func (u *Match) CalculateMatch(ctx context.Context, jobID, userID uuid.UUID) (matching.Result, error) {
	if jobID == uuid.Nil || userID == uuid.Nil {
		return matching.Result{}, ErrInvalidInput
	}

	posting, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return matching.Result{}, ErrJobNotFound
		}
		return matching.Result{}, ErrInternal
	}

	profile, err := u.candidates.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return matching.Result{}, ErrCandidateNotFound
		}
		return matching.Result{}, ErrInternal
	}

	return matching.Calculate(posting, profile), nil
}

// RecommendJobs ranks open postings for one candidate by match score,
// highest first. Ties keep the newest-first ordering of the underlying query.
func (u *Match) RecommendJobs(ctx context.Context, userID uuid.UUID, limit int) ([]JobRecommendation, error) {
	if userID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	if limit <= 0 {
		limit = 10
	}
	if limit > 50 {
		return nil, ErrInvalidInput
	}

	profile, err := u.candidates.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return nil, ErrCandidateNotFound
		}
		return nil, ErrInternal
	}

	postings, err := u.jobs.SearchOpen(ctx, repository.SearchFilter{Limit: recommendationPoolSize})
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]JobRecommendation, 0, len(postings))
	for _, p := range postings {
		res := matching.Calculate(p, profile)
		out = append(out, JobRecommendation{Posting: p, Score: res.Score})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
