package handler

import (
	"rozgarhub/internal/delivery/http/dto"
	"rozgarhub/internal/delivery/http/middleware"
	"rozgarhub/internal/pkg/response"
	"rozgarhub/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type JobRecommendationHandler struct {
	uc usecase.MatchUsecase
}

func NewJobRecommendationHandler(uc usecase.MatchUsecase) *JobRecommendationHandler {
	return &JobRecommendationHandler{uc: uc}
}

func (h *JobRecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/users/:user_id/recommendations", h.HandleRecommendations)
}

func (h *JobRecommendationHandler) HandleRecommendations(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	limit, err := parseQueryIntStrict(c, "limit", 10)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	items, err := h.uc.RecommendJobs(c.Context(), userID, limit)
	if err != nil {
		return mapMatchUsecaseError(err)
	}

	out := make([]dto.JobRecommendationResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.JobRecommendationResponse{
			JobID:      it.Posting.ID,
			Title:      it.Posting.Title,
			Company:    it.Posting.Company,
			Location:   it.Posting.Location,
			JobType:    it.Posting.JobType,
			Salary:     it.Posting.Salary,
			Score:      it.Score,
			PostedDate: formatPostedDate(it.Posting.CreatedAt),
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
