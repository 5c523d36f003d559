package pgrkam

import (
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"rozgarhub/internal/domain/job"
)

// Selector lists are best-effort: the upstream markup is not a contract and
// changes without notice. A record survives only with a non-empty title and a
// resolvable link; anything else is dropped silently.
const (
	cardSelectors     = ".job-card, .job-list-item, .views-row, .job-item, .result-item"
	titleSelectors    = ".job-title a, .job-title, h3 a, h3, a"
	linkSelectors     = `.job-title a, h3 a, a[href*="job"]`
	companySelectors  = ".company, .employer, .job-company"
	locationSelectors = ".location, .job-location, .address"
	postedAtSelectors = ".posted-date, .date, time"
)

// ParseJobs extracts job records from upstream HTML. Unrecognized or broken
// markup yields an empty slice, never an error.
func ParseJobs(r io.Reader, origin string) []job.ExternalJob {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil
	}

	cards := doc.Find(cardSelectors)
	if cards.Length() == 0 {
		return parseTableRows(doc, origin)
	}

	jobs := make([]job.ExternalJob, 0, cards.Length())
	cards.Each(func(_ int, card *goquery.Selection) {
		title := strings.TrimSpace(card.Find(titleSelectors).First().Text())
		if title == "" {
			title = strings.TrimSpace(card.Find("a").First().Text())
		}

		link := strings.TrimSpace(card.Find(linkSelectors).First().AttrOr("href", ""))
		if link == "" {
			link = strings.TrimSpace(card.Find("a").First().AttrOr("href", ""))
		}

		if title == "" || link == "" {
			return
		}
		abs := resolveLink(origin, link)
		if abs == "" {
			return
		}

		jobs = append(jobs, job.ExternalJob{
			Title:       title,
			Company:     strings.TrimSpace(card.Find(companySelectors).First().Text()),
			Location:    strings.TrimSpace(card.Find(locationSelectors).First().Text()),
			PostedAt:    strings.TrimSpace(card.Find(postedAtSelectors).First().Text()),
			ExternalURL: abs,
		})
	})

	return jobs
}

// parseTableRows is the fallback for result pages rendered as a plain table.
func parseTableRows(doc *goquery.Document, origin string) []job.ExternalJob {
	jobs := make([]job.ExternalJob, 0)
	doc.Find("table tr").Each(func(_ int, tr *goquery.Selection) {
		tds := tr.Find("td")
		title := strings.TrimSpace(tds.Eq(0).Text())
		link := strings.TrimSpace(tds.Eq(0).Find("a").First().AttrOr("href", ""))
		if title == "" || link == "" {
			return
		}
		abs := resolveLink(origin, link)
		if abs == "" {
			return
		}

		jobs = append(jobs, job.ExternalJob{
			Title:       title,
			Company:     strings.TrimSpace(tds.Eq(1).Text()),
			Location:    strings.TrimSpace(tds.Eq(2).Text()),
			ExternalURL: abs,
		})
	})
	return jobs
}

func resolveLink(origin, link string) string {
	if strings.HasPrefix(link, "http://") || strings.HasPrefix(link, "https://") {
		return link
	}
	base, err := url.Parse(origin)
	if err != nil {
		return ""
	}
	rel, err := url.Parse(link)
	if err != nil {
		return ""
	}
	return base.ResolveReference(rel).String()
}
