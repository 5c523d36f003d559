package handler

import (
	"rozgarhub/internal/delivery/http/dto"
	"rozgarhub/internal/delivery/http/middleware"
	"rozgarhub/internal/pkg/response"
	"rozgarhub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ExternalHandler struct {
	searcher usecase.ExternalSearcher
}

func NewExternalHandler(searcher usecase.ExternalSearcher) *ExternalHandler {
	return &ExternalHandler{searcher: searcher}
}

func (h *ExternalHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/external/search", h.HandleSearch)
}

func (h *ExternalHandler) HandleSearch(c fiber.Ctx) error {
	query := c.Query("query")
	location := c.Query("location")

	page, err := parseQueryIntStrict(c, "page", 1)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	limit, err := parseQueryIntStrict(c, "limit", 10)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	jobs, err := h.searcher.Search(c.Context(), query, location, page, limit)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadGateway, "External source unavailable", nil, err)
	}

	out := dto.ExternalSearchResponse{
		Count: len(jobs),
		Jobs:  make([]dto.ExternalJobResponse, 0, len(jobs)),
	}
	for _, j := range jobs {
		out.Jobs = append(out.Jobs, dto.ExternalJobResponse{
			Title:       j.Title,
			Company:     j.Company,
			Location:    j.Location,
			PostedAt:    j.PostedAt,
			ExternalURL: j.ExternalURL,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
