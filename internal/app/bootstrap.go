package app

import (
	"fmt"
	"strings"

	"rozgarhub/internal/delivery/http/middleware"
	"rozgarhub/internal/delivery/http/routes"
	"rozgarhub/internal/infrastructure/cache"
	"rozgarhub/internal/pgrkam"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	registerGlobalMiddleware(f, c)

	var store pgrkam.Store = cache.NewPgrkamStore(c.Redis, c.Config.Pgrkam.CacheTTL)
	if c.Redis == nil || !c.Redis.Available() {
		store = pgrkam.NewMemoryStore(c.Config.Pgrkam.CacheTTL)
	}

	external := pgrkam.NewCachedClient(
		pgrkam.NewClient(c.Config.Pgrkam.BaseURL, c.Config.Pgrkam.Timeout, c.Logger),
		store,
		c.Logger,
	)

	routes.NewRegistry(c.DB, external, c.Logger).Register(f)

	return &App{Fiber: f}
}

func Bootstrap(c *Container) (*App, func() error, error) {
	if c == nil {
		return nil, nil, fmt.Errorf("nil container")
	}
	app := New(c)
	return app, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
