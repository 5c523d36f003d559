package main

import (
	"context"
	"flag"
	"log"
	"strings"
	"time"

	"rozgarhub/internal/app"
	"rozgarhub/internal/config"
	"rozgarhub/internal/scraper"

	"github.com/joho/godotenv"
)

func main() {
	query := flag.String("query", "", "job search query")
	location := flag.String("location", "", "job location")
	pages := flag.Int("pages", 0, "listing pages to fetch (default from SCRAPER_PAGES)")
	workers := flag.Int("workers", 0, "concurrent workers (default from SCRAPER_WORKERS)")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	q := strings.TrimSpace(*query)
	loc := strings.TrimSpace(*location)
	if q == "" && loc == "" {
		log.Fatalf("provide -query and/or -location")
	}

	p := *pages
	if p <= 0 {
		p = cfg.Scraper.Pages
	}
	if p <= 0 {
		p = 2
	}
	w := *workers
	if w <= 0 {
		w = cfg.Scraper.Workers
	}
	if w <= 0 {
		w = 4
	}

	c, err := app.NewContainer(cfg, log.Default())
	if err != nil {
		log.Fatalf("failed to init container: %v", err)
	}
	defer func() {
		_ = c.Close()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	s := scraper.NewPgrkamSyncScraperWithOrigin(c.DB, cfg.Pgrkam.BaseURL, c.Logger)
	if err := s.Scrape(ctx, q, loc, p, w); err != nil {
		log.Fatalf("scrape failed: %v", err)
	}
}
