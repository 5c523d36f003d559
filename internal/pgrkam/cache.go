package pgrkam

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"rozgarhub/internal/domain/job"
)

// CacheTTL bounds how long an upstream result set is reused.
const CacheTTL = 5 * time.Minute

// Store is the memoization boundary. The in-memory store serves a single
// process; the Redis-backed one (internal/infrastructure/cache) serves
// multi-process deployments behind the same interface.
type Store interface {
	Get(ctx context.Context, key string) ([]job.ExternalJob, bool)
	Set(ctx context.Context, key string, jobs []job.ExternalJob)
}

// CacheKey joins the exact search tuple. Deliberately no normalization:
// callers canonicalize inputs themselves if hit rate matters.
func CacheKey(query, location string, page, limit int) string {
	return fmt.Sprintf("pgrkam:%s:%s:%d:%d", query, location, page, limit)
}

type memoryEntry struct {
	jobs      []job.ExternalJob
	expiresAt time.Time
}

type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return NewMemoryStoreWithClock(ttl, time.Now)
}

// NewMemoryStoreWithClock lets tests drive expiry with a fake clock.
func NewMemoryStoreWithClock(ttl time.Duration, now func() time.Time) *MemoryStore {
	if ttl <= 0 {
		ttl = CacheTTL
	}
	if now == nil {
		now = time.Now
	}
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     now,
	}
}

// Get treats expired entries as absent (lazy expiry, no background sweep).
func (s *MemoryStore) Get(_ context.Context, key string) ([]job.ExternalJob, bool) {
	if s == nil {
		return nil, false
	}
	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if s.now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return nil, false
	}
	return entry.jobs, true
}

func (s *MemoryStore) Set(_ context.Context, key string, jobs []job.ExternalJob) {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.entries[key] = memoryEntry{jobs: jobs, expiresAt: s.now().Add(s.ttl)}
	s.mu.Unlock()
}

// CachedClient wraps a Searcher with time-boxed memoization. Successful
// fetches (including empty result sets) are cached; failed fetches are not,
// so the next identical call retries immediately.
type CachedClient struct {
	client Searcher
	store  Store
	logger *log.Logger
}

func NewCachedClient(client Searcher, store Store, logger *log.Logger) *CachedClient {
	if store == nil {
		store = NewMemoryStore(CacheTTL)
	}
	return &CachedClient{client: client, store: store, logger: logger}
}

func (c *CachedClient) Search(ctx context.Context, query, location string, page, limit int) ([]job.ExternalJob, error) {
	if c == nil || c.client == nil {
		return nil, &FetchError{Err: fmt.Errorf("nil cached client")}
	}
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	key := CacheKey(query, location, page, limit)
	if jobs, ok := c.store.Get(ctx, key); ok {
		if c.logger != nil {
			c.logger.Printf("[Pgrkam] Cache HIT: %s", key)
		}
		return jobs, nil
	}
	if c.logger != nil {
		c.logger.Printf("[Pgrkam] Cache MISS: %s", key)
	}

	jobs, err := c.client.Search(ctx, query, location, page)
	if err != nil {
		return nil, err
	}
	if len(jobs) > limit {
		jobs = jobs[:limit]
	}

	c.store.Set(ctx, key, jobs)
	return jobs, nil
}
