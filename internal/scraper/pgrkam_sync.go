package scraper

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"rozgarhub/internal/database"
	"rozgarhub/internal/domain/job"
	"rozgarhub/internal/pgrkam"

	"github.com/gocolly/colly/v2"
)

const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

// PgrkamSyncScraper pulls PGRKAM listing pages into the local jobs table so
// internal search keeps working when the portal is down.
type PgrkamSyncScraper struct {
	db          database.DB
	origin      string
	allowedHost string
	logger      *log.Logger
}

func NewPgrkamSyncScraper(db database.DB, logger *log.Logger) *PgrkamSyncScraper {
	return NewPgrkamSyncScraperWithOrigin(db, pgrkam.DefaultOrigin, logger)
}

func NewPgrkamSyncScraperWithOrigin(db database.DB, origin string, logger *log.Logger) *PgrkamSyncScraper {
	origin = strings.TrimRight(strings.TrimSpace(origin), "/")
	if origin == "" {
		origin = pgrkam.DefaultOrigin
	}
	return &PgrkamSyncScraper{
		db:          db,
		origin:      origin,
		allowedHost: hostFromBaseURL(origin, "www.pgrkam.com"),
		logger:      logger,
	}
}

// Scrape fetches up to pages listing pages and upserts every complete record.
// Pages are fetched by the worker pool under a shared rate cap. When the
// static crawl yields nothing the first page is retried headless.
func (s *PgrkamSyncScraper) Scrape(ctx context.Context, query, location string, pages, workers int) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("nil scraper/db")
	}
	if pages <= 0 {
		pages = 1
	}

	pool := NewWorkerPool(workers, pages, 2)
	results := pool.Run(ctx)

	var stored atomic.Int64
	for page := 1; page <= pages; page++ {
		page := page
		pool.Submit(func(ctx context.Context) error {
			records, err := s.fetchListing(ctx, query, location, page)
			if err != nil {
				return fmt.Errorf("pgrkam page %d: %w", page, err)
			}
			return s.storeRecords(ctx, query, records, &stored)
		})
	}
	pool.Close()

	var firstErr error
	for res := range results {
		if res.Err != nil {
			if s.logger != nil {
				s.logger.Printf("[Scraper] %v", res.Err)
			}
			if firstErr == nil {
				firstErr = res.Err
			}
		}
	}

	if stored.Load() == 0 {
		records, err := s.fetchListingHeadless(ctx, query, location, 1)
		if err != nil {
			if s.logger != nil {
				s.logger.Printf("[Scraper] Headless fallback failed: %v", err)
			}
			return firstErr
		}
		if err := s.storeRecords(ctx, query, records, &stored); err != nil {
			return err
		}
	}

	if s.logger != nil {
		s.logger.Printf("[Scraper] PGRKAM sync done query=%q location=%q stored=%d", query, location, stored.Load())
	}
	return nil
}

func (s *PgrkamSyncScraper) storeRecords(ctx context.Context, query string, records []job.ExternalJob, stored *atomic.Int64) error {
	var firstErr error
	for _, rec := range records {
		err := upsertScrapedJob(ctx, s.db, scrapedJob{
			Title:       rec.Title,
			Company:     rec.Company,
			Location:    rec.Location,
			Category:    strings.TrimSpace(query),
			ExternalURL: rec.ExternalURL,
		})
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		stored.Add(1)
	}
	return firstErr
}

func (s *PgrkamSyncScraper) fetchListing(ctx context.Context, query, location string, page int) ([]job.ExternalJob, error) {
	c := colly.NewCollector(
		colly.AllowedDomains(s.allowedHost),
	)
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*", Parallelism: 2, Delay: 400 * time.Millisecond, RandomDelay: 600 * time.Millisecond})

	var records []job.ExternalJob
	var reqErr error

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", browserUserAgent)
		r.Headers.Set("Referer", s.origin+"/")
	})

	c.OnResponse(func(r *colly.Response) {
		records = pgrkam.ParseJobs(bytes.NewReader(r.Body), s.origin)
	})

	c.OnError(func(r *colly.Response, err error) {
		reqErr = err
	})

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err := c.Visit(pgrkam.SearchURL(s.origin, query, location, page)); err != nil {
		return nil, err
	}
	c.Wait()
	if reqErr != nil {
		return nil, reqErr
	}
	return records, nil
}
