package handler

import (
	"rozgarhub/internal/delivery/http/dto"
	"rozgarhub/internal/delivery/http/middleware"
	"rozgarhub/internal/pkg/response"
	"rozgarhub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ChatHandler struct {
	uc usecase.ChatUsecase
}

func NewChatHandler(uc usecase.ChatUsecase) *ChatHandler {
	return &ChatHandler{uc: uc}
}

func (h *ChatHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/chat", h.HandleChat)
}

// HandleChat always answers 200: the orchestrator folds every failure into
// a localized reply instead of an HTTP error.
func (h *ChatHandler) HandleChat(c fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	reply := h.uc.Respond(c.Context(), usecase.ChatRequest{
		Message:  req.Message,
		Language: req.Language,
		UserID:   req.UserID,
	})

	out := dto.ChatResponse{
		Message: reply.Message,
		Jobs:    make([]dto.JobCardResponse, 0, len(reply.Jobs)),
	}
	for _, j := range reply.Jobs {
		out.Jobs = append(out.Jobs, dto.JobCardResponse{
			ID:          j.ID,
			Title:       j.Title,
			Company:     j.Company,
			Location:    j.Location,
			PostedAt:    j.PostedAt,
			Salary:      j.Salary,
			JobType:     j.JobType,
			ExternalURL: j.ExternalURL,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
