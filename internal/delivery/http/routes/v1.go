package routes

import "github.com/gofiber/fiber/v3"

func (r *Registry) registerV1(grp fiber.Router) {
	if grp == nil {
		return
	}

	r.chat.RegisterRoutes(grp)
	r.external.RegisterRoutes(grp)
	r.match.RegisterRoutes(grp)
	r.recommendations.RegisterRoutes(grp)
	r.jobs.RegisterRoutes(grp)
}
