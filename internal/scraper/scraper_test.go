package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"rozgarhub/internal/database"
)

type fakeRow struct {
	err error
}

func (r fakeRow) Scan(_ ...any) error {
	if r.err != nil {
		return r.err
	}
	return fmt.Errorf("unsupported scan")
}

type fakeDB struct {
	mu        sync.Mutex
	jobsByURL map[string]scrapedJob
	upserts   int
	lastQuery string
}

func newFakeDB() *fakeDB {
	return &fakeDB{jobsByURL: map[string]scrapedJob{}}
}

func (db *fakeDB) Ping(ctx context.Context) error { return nil }
func (db *fakeDB) Close() error                   { return nil }

func (db *fakeDB) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	q := strings.ToLower(strings.TrimSpace(query))
	if !strings.HasPrefix(q, "insert into jobs") {
		return 0, nil
	}
	db.lastQuery = q

	// args: id, title, company, description, category, location, job_type, external_url
	in := scrapedJob{
		Title:       args[1].(string),
		Company:     args[2].(string),
		Description: args[3].(string),
		Category:    args[4].(string),
		Location:    args[5].(string),
		JobType:     args[6].(string),
		ExternalURL: args[7].(string),
	}
	db.jobsByURL[in.ExternalURL] = in
	db.upserts++
	return 1, nil
}

func (db *fakeDB) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	return nil, fmt.Errorf("not implemented")
}

func (db *fakeDB) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	return fakeRow{err: fmt.Errorf("not implemented")}
}

const listingFixture = `<html><body>
<div class="job-card">
	<h3 class="job-title"><a href="/job-detail/101">Data Entry Operator</a></h3>
	<span class="company">Punjab Infotech</span>
	<span class="job-location">Mohali</span>
</div>
<div class="job-card">
	<h3 class="job-title"><a href="/job-detail/102">Field Officer</a></h3>
	<span class="company">AgriCorp</span>
	<span class="job-location">Ludhiana</span>
</div>
<div class="job-card">
	<span class="company">No Title Ltd</span>
</div>
</body></html>`

func TestPgrkamSyncScraper_StoresListings(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/job-seeker/job-search", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("job_title") != "developer" {
			t.Errorf("expected job_title=developer, got %q", r.URL.Query().Get("job_title"))
		}
		_, _ = w.Write([]byte(listingFixture))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	db := newFakeDB()
	s := NewPgrkamSyncScraperWithOrigin(db, server.URL, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.Scrape(ctx, "developer", "", 1, 2); err != nil {
		t.Fatalf("scrape error: %v", err)
	}

	db.mu.Lock()
	defer db.mu.Unlock()
	if got := len(db.jobsByURL); got != 2 {
		t.Fatalf("expected 2 jobs stored, got %d", got)
	}
	for url, j := range db.jobsByURL {
		if !strings.Contains(url, "/job-detail/") {
			t.Fatalf("unexpected url %q", url)
		}
		if j.Category != "developer" {
			t.Fatalf("expected category from query, got %q", j.Category)
		}
		if strings.TrimSpace(j.Title) == "" {
			t.Fatalf("expected non-empty title")
		}
	}
}

func TestPgrkamSyncScraper_UpsertIsIdempotent(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/job-seeker/job-search", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(listingFixture))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	db := newFakeDB()
	s := NewPgrkamSyncScraperWithOrigin(db, server.URL, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.Scrape(ctx, "clerk", "", 1, 1); err != nil {
		t.Fatalf("scrape error: %v", err)
	}
	if err := s.Scrape(ctx, "clerk", "", 1, 1); err != nil {
		t.Fatalf("scrape error (2nd): %v", err)
	}

	db.mu.Lock()
	defer db.mu.Unlock()
	if got := len(db.jobsByURL); got != 2 {
		t.Fatalf("expected 2 distinct jobs after rerun, got %d", got)
	}
	if db.upserts != 4 {
		t.Fatalf("expected 4 upserts across both runs, got %d", db.upserts)
	}
}

func TestUpsertScrapedJob_DoesNotReopenClosedJobs(t *testing.T) {
	db := newFakeDB()
	ctx := context.Background()

	err := upsertScrapedJob(ctx, db, scrapedJob{
		Title:       "Data Entry Operator",
		ExternalURL: "https://www.pgrkam.com/job-detail/101",
	})
	if err != nil {
		t.Fatalf("upsert error: %v", err)
	}

	_, updateClause, found := strings.Cut(db.lastQuery, "do update set")
	if !found {
		t.Fatalf("expected conflict-update clause in %q", db.lastQuery)
	}
	if strings.Contains(updateClause, "status") {
		t.Fatalf("re-scrape must leave status to operators, got %q", updateClause)
	}
}

func TestUpsertScrapedJob_RejectsIncompleteRecords(t *testing.T) {
	db := newFakeDB()
	ctx := context.Background()

	if err := upsertScrapedJob(ctx, db, scrapedJob{Title: "No Link"}); err == nil {
		t.Fatalf("expected error for missing url")
	}
	if err := upsertScrapedJob(ctx, db, scrapedJob{ExternalURL: "https://www.pgrkam.com/job/1"}); err == nil {
		t.Fatalf("expected error for missing title")
	}
	if len(db.jobsByURL) != 0 {
		t.Fatalf("expected nothing stored")
	}
}
