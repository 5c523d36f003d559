package pgrkam

import (
	"context"
	"testing"
	"time"

	"rozgarhub/internal/domain/job"
)

type fakeSearcher struct {
	calls int
	jobs  []job.ExternalJob
	err   error
}

func (f *fakeSearcher) Search(context.Context, string, string, int) ([]job.ExternalJob, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.jobs, nil
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func TestCachedClient_HitWithinTTL(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	store := NewMemoryStoreWithClock(CacheTTL, clock.Now)
	upstream := &fakeSearcher{jobs: []job.ExternalJob{
		{Title: "Node Developer", ExternalURL: "https://www.pgrkam.com/job/1"},
		{Title: "Node Engineer", ExternalURL: "https://www.pgrkam.com/job/2"},
	}}
	cc := NewCachedClient(upstream, store, nil)

	first, err := cc.Search(context.Background(), "node", "", 1, 5)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(first) != 2 || upstream.calls != 1 {
		t.Fatalf("expected 2 records from 1 call, got %d records calls=%d", len(first), upstream.calls)
	}

	clock.Advance(299 * time.Second)
	second, err := cc.Search(context.Background(), "node", "", 1, 5)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if upstream.calls != 1 {
		t.Fatalf("expected cache hit, upstream called %d times", upstream.calls)
	}
	if len(second) != 2 {
		t.Fatalf("expected cached records, got %d", len(second))
	}
}

func TestCachedClient_ExpiredEntryRefetches(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	store := NewMemoryStoreWithClock(CacheTTL, clock.Now)
	upstream := &fakeSearcher{jobs: []job.ExternalJob{{Title: "Clerk", ExternalURL: "https://www.pgrkam.com/job/3"}}}
	cc := NewCachedClient(upstream, store, nil)

	if _, err := cc.Search(context.Background(), "node", "", 1, 5); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	clock.Advance(301 * time.Second)
	if _, err := cc.Search(context.Background(), "node", "", 1, 5); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if upstream.calls != 2 {
		t.Fatalf("expected refetch after expiry, calls=%d", upstream.calls)
	}
}

func TestCachedClient_EmptyResultIsCached(t *testing.T) {
	upstream := &fakeSearcher{jobs: []job.ExternalJob{}}
	cc := NewCachedClient(upstream, NewMemoryStore(CacheTTL), nil)

	for i := 0; i < 3; i++ {
		if _, err := cc.Search(context.Background(), "niche role", "remote", 1, 5); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	}
	if upstream.calls != 1 {
		t.Fatalf("empty results must be cached, calls=%d", upstream.calls)
	}
}

func TestCachedClient_ErrorsAreNotCached(t *testing.T) {
	upstream := &fakeSearcher{err: &FetchError{StatusCode: 503}}
	cc := NewCachedClient(upstream, NewMemoryStore(CacheTTL), nil)

	for i := 0; i < 3; i++ {
		if _, err := cc.Search(context.Background(), "node", "", 1, 5); err == nil {
			t.Fatalf("expected error")
		}
	}
	if upstream.calls != 3 {
		t.Fatalf("failed fetches must retry immediately, calls=%d", upstream.calls)
	}
}

func TestCachedClient_TruncatesToLimit(t *testing.T) {
	upstream := &fakeSearcher{jobs: []job.ExternalJob{
		{Title: "A", ExternalURL: "u1"}, {Title: "B", ExternalURL: "u2"}, {Title: "C", ExternalURL: "u3"},
	}}
	cc := NewCachedClient(upstream, NewMemoryStore(CacheTTL), nil)

	jobs, err := cc.Search(context.Background(), "any", "", 1, 2)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("expected truncation to 2, got %d", len(jobs))
	}
}

func TestCacheKey_ExactTuple(t *testing.T) {
	if CacheKey("node", "", 1, 5) == CacheKey("Node", "", 1, 5) {
		t.Fatalf("cache key must be case-sensitive")
	}
	if CacheKey("node", "", 1, 5) != "pgrkam:node::1:5" {
		t.Fatalf("unexpected key %q", CacheKey("node", "", 1, 5))
	}
}
