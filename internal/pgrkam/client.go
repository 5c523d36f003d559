package pgrkam

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"rozgarhub/internal/domain/job"
)

const (
	DefaultOrigin  = "https://www.pgrkam.com"
	searchPath     = "/job-seeker/job-search"
	defaultTimeout = 15 * time.Second

	// The upstream site rejects bot-like agents, so the client presents a
	// realistic browser one.
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123 Safari/537.36"

	maxResponseBytes = 4 << 20
)

// FetchError covers network failures, timeouts and non-2xx responses from the
// external source. Callers on the chat path absorb it; the direct search
// endpoint surfaces it as an upstream failure.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("pgrkam fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("pgrkam fetch %s: status=%d", e.URL, e.StatusCode)
}

func (e *FetchError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Searcher is the narrow boundary the orchestrator and cache wrap, so the
// fetching/parsing strategy can be swapped without touching either.
type Searcher interface {
	Search(ctx context.Context, query, location string, page int) ([]job.ExternalJob, error)
}

type Client struct {
	origin    string
	userAgent string
	client    *http.Client
	logger    *log.Logger
}

func NewClient(origin string, timeout time.Duration, logger *log.Logger) *Client {
	origin = strings.TrimRight(strings.TrimSpace(origin), "/")
	if origin == "" {
		origin = DefaultOrigin
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		origin:    origin,
		userAgent: defaultUserAgent,
		client:    &http.Client{Timeout: timeout},
		logger:    logger,
	}
}

// SearchURL builds the upstream search URL. Empty query/location parameters
// are omitted; the page parameter is always present.
func SearchURL(origin, query, location string, page int) string {
	origin = strings.TrimRight(strings.TrimSpace(origin), "/")
	if origin == "" {
		origin = DefaultOrigin
	}
	if page < 1 {
		page = 1
	}

	params := url.Values{}
	if q := strings.TrimSpace(query); q != "" {
		params.Set("job_title", q)
	}
	if l := strings.TrimSpace(location); l != "" {
		params.Set("district", l)
	}
	params.Set("page", strconv.Itoa(page))

	return origin + searchPath + "?" + params.Encode()
}

func (c *Client) Search(ctx context.Context, query, location string, page int) ([]job.ExternalJob, error) {
	if c == nil || c.client == nil {
		return nil, &FetchError{Err: fmt.Errorf("nil client")}
	}

	searchURL := SearchURL(c.origin, query, location, page)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, &FetchError{URL: searchURL, Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Referer", c.origin)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: searchURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &FetchError{URL: searchURL, StatusCode: resp.StatusCode}
	}

	jobs := ParseJobs(io.LimitReader(resp.Body, maxResponseBytes), c.origin)
	if c.logger != nil {
		c.logger.Printf("[Pgrkam] Fetched url=%s records=%d", searchURL, len(jobs))
	}
	return jobs, nil
}
