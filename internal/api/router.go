package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/feedbackhub/feedback-portal/internal/api/handler"
	"github.com/feedbackhub/feedback-portal/internal/api/middleware"
	"github.com/feedbackhub/feedback-portal/internal/core/ports"
	"github.com/feedbackhub/feedback-portal/internal/infrastructure/session"
)

// Dependencies carries everything the router wires into handlers.
type Dependencies struct {
	Auth         ports.AuthService
	Feedback     ports.FeedbackService
	Roles        ports.RoleService
	Codec        *session.Codec
	Backend      handler.Pinger
	Redis        *redis.Client // nil when the role cache is disabled
	PublicRoleID string
	Log          zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Renderer = handler.NewRenderer()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("portal"))

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(deps.Auth, deps.Roles, deps.Codec)
	boardHandler := handler.NewBoardHandler(deps.Feedback, deps.Codec)

	anonymous := middleware.Anonymous(deps.Codec)
	authenticated := middleware.Session(middleware.Config{
		Auth:         deps.Auth,
		Codec:        deps.Codec,
		PublicRoleID: deps.PublicRoleID,
		Log:          deps.Log,
	})

	// --- Auth pages ---
	e.GET("/login", authHandler.LoginPage, anonymous)
	e.POST("/login", authHandler.Login, anonymous)
	e.GET("/register", authHandler.RegisterPage, anonymous)
	e.POST("/register", authHandler.Register, anonymous)

	// --- Feedback board ---
	e.GET("/", boardHandler.Board, authenticated)
	e.POST("/", boardHandler.Action, authenticated)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Backend, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
