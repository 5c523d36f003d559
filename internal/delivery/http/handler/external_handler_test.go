package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"rozgarhub/internal/delivery/http/middleware"
	"rozgarhub/internal/domain/job"

	"github.com/gofiber/fiber/v3"
)

type stubSearcher struct {
	lastQuery    string
	lastLocation string
	lastPage     int
	lastLimit    int
	jobs         []job.ExternalJob
	err          error
}

func (s *stubSearcher) Search(_ context.Context, query, location string, page, limit int) ([]job.ExternalJob, error) {
	s.lastQuery = query
	s.lastLocation = location
	s.lastPage = page
	s.lastLimit = limit
	if s.err != nil {
		return nil, s.err
	}
	return s.jobs, nil
}

func newExternalTestApp(s *stubSearcher) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())
	NewExternalHandler(s).RegisterRoutes(app)
	return app
}

func TestExternalSearch_ForwardsDocumentedParams(t *testing.T) {
	s := &stubSearcher{jobs: []job.ExternalJob{
		{Title: "React Developer", ExternalURL: "https://www.pgrkam.com/job/1"},
	}}
	app := newExternalTestApp(s)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/external/search?query=react&location=mohali&page=2&limit=3", nil))
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	if s.lastQuery != "react" || s.lastLocation != "mohali" {
		t.Fatalf("params not forwarded: query=%q location=%q", s.lastQuery, s.lastLocation)
	}
	if s.lastPage != 2 || s.lastLimit != 3 {
		t.Fatalf("paging not forwarded: page=%d limit=%d", s.lastPage, s.lastLimit)
	}

	var body struct {
		Status int `json:"status"`
		Data   struct {
			Count int `json:"count"`
			Jobs  []struct {
				Title string `json:"title"`
			} `json:"jobs"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if body.Data.Count != 1 || len(body.Data.Jobs) != 1 {
		t.Fatalf("unexpected payload: %+v", body.Data)
	}
	if body.Data.Jobs[0].Title != "React Developer" {
		t.Fatalf("unexpected job title %q", body.Data.Jobs[0].Title)
	}
}

func TestExternalSearch_UpstreamFailureIsBadGateway(t *testing.T) {
	s := &stubSearcher{err: errors.New("upstream timeout")}
	app := newExternalTestApp(s)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/external/search?query=clerk", nil))
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusBadGateway {
		t.Fatalf("expected 502, got %d", resp.StatusCode)
	}
}

func TestExternalSearch_RejectsBadPaging(t *testing.T) {
	app := newExternalTestApp(&stubSearcher{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/external/search?page=abc", nil))
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}
