package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/blkboxlogictc/AtlanteRealty/internal/api/handler"
	"github.com/blkboxlogictc/AtlanteRealty/internal/api/middleware"
	"github.com/blkboxlogictc/AtlanteRealty/internal/config"
	"github.com/blkboxlogictc/AtlanteRealty/internal/core/ports"
	"github.com/blkboxlogictc/AtlanteRealty/internal/core/service"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The same instance backs the long-running server and the function-platform
// handler; both deployment targets share one set of route handlers.
func NewRouter(cfg *config.Config, store ports.LeadStore, users ports.UserStore, catalog ports.CatalogSource, forwarder ports.WebhookForwarder, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(middleware.CORS())
	e.Use(echoprometheus.NewMiddleware("atlante"))

	// --- Dependencies ---
	catalogService := service.NewCatalogService(catalog)
	intakeService := service.NewIntakeService(store, forwarder, cfg.Webhooks.CRMURL, cfg.Webhooks.EmailURL, log)
	authService := service.NewAuthService(users, cfg.JWTSecret, 24*time.Hour)

	catalogHandler := handler.NewCatalogHandler(catalogService)
	intakeHandler := handler.NewIntakeHandler(intakeService)
	adminHandler := handler.NewAdminHandler(intakeService)
	authHandler := handler.NewAuthHandler(authService)
	healthHandler := handler.NewHealthHandler()

	// --- Public intake routes ---
	e.POST("/api/lead", intakeHandler.CreateLead)
	e.POST("/api/subscribe", intakeHandler.Subscribe)

	// --- Public catalog routes ---
	// /featured must register before /:id so the literal segment wins.
	e.GET("/api/agents", catalogHandler.ListAgents)
	e.GET("/api/agents/:id", catalogHandler.GetAgent)
	e.GET("/api/properties", catalogHandler.ListProperties)
	e.GET("/api/properties/featured", catalogHandler.ListFeaturedProperties)
	e.GET("/api/properties/:id", catalogHandler.GetProperty)
	e.GET("/api/projects", catalogHandler.ListProjects)
	e.GET("/api/projects/:id", catalogHandler.GetProject)
	e.GET("/api/testimonials", catalogHandler.ListTestimonials)
	e.GET("/api/blog", catalogHandler.ListBlogPosts)
	e.GET("/api/blog/:slug", catalogHandler.GetBlogPost)

	// --- Internal surface ---
	e.POST("/auth/login", authHandler.Login)
	internal := e.Group("/internal", middleware.Auth(cfg.JWTSecret))
	internal.GET("/leads", adminHandler.ListLeads)
	internal.GET("/subscriptions", adminHandler.ListSubscriptions)
	internal.DELETE("/subscriptions/:email", adminHandler.DeactivateSubscription)

	// --- Probes & metrics ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
