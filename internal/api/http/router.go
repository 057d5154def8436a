package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yumyum-spot/menu-service/internal/api/http/handlers"
	"github.com/yumyum-spot/menu-service/internal/auth"
	"github.com/yumyum-spot/menu-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	AuthTest       *handlers.AuthTestHandler
	Menu           *handlers.MenuHandler
	AuthMiddleware *auth.AuthMiddleware
	PublicDir      string
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	// Uploaded menu images are served straight from the public directory.
	app.Static("/", cfg.PublicDir)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)

	menu := api.Group("/menuitems")
	menu.Get("/", cfg.Menu.List)
	menu.Get("/:id", cfg.Menu.Get)

	menuAdmin := menu.Group("", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleAdmin))
	menuAdmin.Post("/", cfg.Menu.Create)
	menuAdmin.Put("/:id", cfg.Menu.Update)
	menuAdmin.Delete("/:id", cfg.Menu.Delete)

	authTest := api.Group("/authtest", cfg.AuthMiddleware.Handle)
	authTest.Get("/", auth.RequireAuthenticated(), cfg.AuthTest.Authenticated)
	authTest.Get("/:value", auth.RequireRole(domain.RoleAdmin), cfg.AuthTest.AdminOnly)
}
