package cache

import (
	"context"
	"time"

	"rozgarhub/internal/domain/job"
	"rozgarhub/internal/pgrkam"
)

// PgrkamStore backs the external-search cache with Redis so cached pages
// survive restarts and are shared across instances. A bypassed Redis makes
// every lookup a miss, which the cached client treats as a fetch.
type PgrkamStore struct {
	redis *Redis
	ttl   time.Duration
}

func NewPgrkamStore(r *Redis, ttl time.Duration) *PgrkamStore {
	if ttl <= 0 {
		ttl = pgrkam.CacheTTL
	}
	return &PgrkamStore{redis: r, ttl: ttl}
}

func (s *PgrkamStore) Get(ctx context.Context, key string) ([]job.ExternalJob, bool) {
	if s == nil || s.redis == nil {
		return nil, false
	}
	var jobs []job.ExternalJob
	ok, err := s.redis.GetJSON(ctx, key, &jobs)
	if err != nil || !ok {
		return nil, false
	}
	return jobs, true
}

func (s *PgrkamStore) Set(ctx context.Context, key string, jobs []job.ExternalJob) {
	if s == nil || s.redis == nil {
		return
	}
	if jobs == nil {
		jobs = []job.ExternalJob{}
	}
	_ = s.redis.SetJSON(ctx, key, jobs, s.ttl)
}
