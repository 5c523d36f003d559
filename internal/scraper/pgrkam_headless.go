package scraper

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rozgarhub/internal/domain/job"
	"rozgarhub/internal/pgrkam"

	"github.com/chromedp/chromedp"
)

type headlessLink struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// fetchListingHeadless renders the listing in headless Chrome for the case
// where the static page body carries no job markup.
func (s *PgrkamSyncScraper) fetchListingHeadless(ctx context.Context, query, location string, page int) ([]job.ExternalJob, error) {
	if s == nil {
		return nil, fmt.Errorf("nil scraper")
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.UserAgent(browserUserAgent),
		)...,
	)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	reqCtx, reqCancel := context.WithTimeout(browserCtx, 25*time.Second)
	defer reqCancel()

	var links []headlessLink
	err := chromedp.Run(reqCtx,
		chromedp.Navigate(pgrkam.SearchURL(s.origin, query, location, page)),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(1500*time.Millisecond),
		chromedp.EvaluateAsDevTools(`Array.from(document.querySelectorAll('a[href*="job"]'))
			.map(a => ({text: a.textContent.trim(), href: a.getAttribute('href')}))
			.filter(l => l.text && l.href)`, &links),
	)
	if err != nil {
		return nil, err
	}

	seen := map[string]struct{}{}
	out := make([]job.ExternalJob, 0, len(links))
	for _, l := range links {
		href := strings.TrimSpace(l.Href)
		title := strings.TrimSpace(l.Text)
		if href == "" || title == "" {
			continue
		}
		switch {
		case strings.HasPrefix(href, "http://"), strings.HasPrefix(href, "https://"):
		case strings.HasPrefix(href, "/"):
			href = s.origin + href
		default:
			href = s.origin + "/" + href
		}
		if _, ok := seen[href]; ok {
			continue
		}
		seen[href] = struct{}{}
		out = append(out, job.ExternalJob{Title: title, ExternalURL: href})
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("no job links found (headless)")
	}
	return out, nil
}
