package scraper

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strings"

	"rozgarhub/internal/database"

	"github.com/google/uuid"
)

// scrapedJob is one record pulled off an external listing, keyed by its
// source URL for idempotent upserts.
type scrapedJob struct {
	Title       string
	Company     string
	Location    string
	Description string
	Category    string
	JobType     string
	ExternalURL string
}

func upsertScrapedJob(ctx context.Context, db database.DB, in scrapedJob) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	title := strings.TrimSpace(in.Title)
	externalURL := normalizeURL(in.ExternalURL)
	if title == "" || externalURL == "" {
		return fmt.Errorf("incomplete job title=%q url=%q", title, externalURL)
	}

	// New rows start open; re-scrapes refresh fields but leave status to
	// operators.
	_, err := db.Exec(ctx,
		`INSERT INTO jobs (
			id, title, company, description, category, location, job_type, status, external_url, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,'open',$8,NOW())
		ON CONFLICT (external_url) DO UPDATE SET
			title = EXCLUDED.title,
			company = COALESCE(NULLIF(EXCLUDED.company,''), jobs.company),
			description = COALESCE(NULLIF(EXCLUDED.description,''), jobs.description),
			category = COALESCE(NULLIF(EXCLUDED.category,''), jobs.category),
			location = COALESCE(NULLIF(EXCLUDED.location,''), jobs.location),
			job_type = COALESCE(NULLIF(EXCLUDED.job_type,''), jobs.job_type)`,
		uuid.New(),
		title,
		strings.TrimSpace(in.Company),
		strings.TrimSpace(in.Description),
		strings.TrimSpace(in.Category),
		strings.TrimSpace(in.Location),
		strings.TrimSpace(in.JobType),
		externalURL,
	)
	return err
}

func normalizeURL(u string) string {
	return strings.TrimSpace(u)
}

func hostFromBaseURL(base, fallback string) string {
	u, err := url.Parse(strings.TrimSpace(base))
	if err != nil || u.Host == "" {
		return fallback
	}
	if h, _, err := net.SplitHostPort(u.Host); err == nil {
		return h
	}
	return u.Host
}
