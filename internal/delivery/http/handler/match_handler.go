package handler

import (
	"errors"

	"rozgarhub/internal/delivery/http/dto"
	"rozgarhub/internal/delivery/http/middleware"
	"rozgarhub/internal/pkg/response"
	"rozgarhub/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type MatchHandler struct {
	uc usecase.MatchUsecase
}

func NewMatchHandler(uc usecase.MatchUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/jobs/:job_id/match/:user_id", h.HandleMatch)
}

func (h *MatchHandler) HandleMatch(c fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	res, err := h.uc.CalculateMatch(c.Context(), jobID, userID)
	if err != nil {
		return mapMatchUsecaseError(err)
	}

	out := dto.MatchResponse{
		Score:   res.Score,
		Factors: make([]dto.MatchFactorResponse, 0, len(res.Factors)),
	}
	for _, f := range res.Factors {
		out.Factors = append(out.Factors, dto.MatchFactorResponse{
			Name:         f.Name,
			Weight:       f.Weight,
			Contribution: f.Contribution,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func mapMatchUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrCandidateNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Candidate not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
