package routes

import (
	"log"

	"rozgarhub/internal/database"
	"rozgarhub/internal/delivery/http/handler"
	"rozgarhub/internal/repository"
	"rozgarhub/internal/usecase"
	"rozgarhub/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Registry owns the wiring from persistence up to HTTP handlers.
type Registry struct {
	health          *handler.HealthHandler
	chat            *handler.ChatHandler
	external        *handler.ExternalHandler
	match           *handler.MatchHandler
	recommendations *handler.JobRecommendationHandler
	jobs            *handler.JobsHandler
	chatWS          *ws.Handler
}

func NewRegistry(db database.DB, external usecase.ExternalSearcher, logger *log.Logger) *Registry {
	jobRepo := repository.NewPostgresJobRepository(db)
	candidateRepo := repository.NewPostgresCandidateRepository(db)

	chatUC := usecase.NewChatUsecase(external, jobRepo, candidateRepo, logger)
	matchUC := usecase.NewMatchUsecase(jobRepo, candidateRepo)

	return &Registry{
		health:          handler.NewHealthHandler(),
		chat:            handler.NewChatHandler(chatUC),
		external:        handler.NewExternalHandler(external),
		match:           handler.NewMatchHandler(matchUC),
		recommendations: handler.NewJobRecommendationHandler(matchUC),
		jobs:            handler.NewJobsHandler(jobRepo),
		chatWS:          ws.NewHandler(chatUC, logger),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if r == nil || app == nil {
		return
	}

	r.health.RegisterRoutes(app)
	r.registerV1(app.Group("/api").Group("/v1"))
	app.Get("/ws/chat", r.chatWS.HandleChatWS)
}
