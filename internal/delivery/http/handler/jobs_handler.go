package handler

import (
	"strconv"
	"time"

	"rozgarhub/internal/delivery/http/dto"
	"rozgarhub/internal/delivery/http/middleware"
	"rozgarhub/internal/pkg/response"
	"rozgarhub/internal/repository"

	"github.com/gofiber/fiber/v3"
)

type JobsHandler struct {
	repo repository.JobRepository
}

func NewJobsHandler(repo repository.JobRepository) *JobsHandler {
	return &JobsHandler{repo: repo}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/jobs", h.HandleListJobs)
}

func (h *JobsHandler) HandleListJobs(c fiber.Ctx) error {
	limit, err := parseQueryIntStrict(c, "limit", 20)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	offset, err := parseQueryIntStrict(c, "offset", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if limit < 0 || offset < 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, nil)
	}

	items, err := h.repo.ListJobs(c.Context(), repository.ListFilter{
		Category: c.Query("category"),
		Location: c.Query("location"),
		JobType:  c.Query("job_type"),
		Status:   c.Query("status"),
		Search:   c.Query("search"),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	out := make([]dto.JobListResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.JobListResponse{
			JobID:      it.ID,
			Title:      it.Title,
			Company:    it.Company,
			Location:   it.Location,
			Category:   it.Category,
			JobType:    it.JobType,
			Salary:     it.Salary,
			Skills:     it.Skills,
			Status:     it.Status,
			PostedDate: formatPostedDate(it.CreatedAt),
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return v, nil
}

func formatPostedDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
