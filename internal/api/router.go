package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/theater-demo/theater-api/docs"
	"github.com/theater-demo/theater-api/internal/api/handler"
	"github.com/theater-demo/theater-api/internal/api/middleware"
	"github.com/theater-demo/theater-api/internal/core/ports"
)

// Dependencies is everything the HTTP layer needs; main builds it.
type Dependencies struct {
	Productions ports.ProductionService
	Actors      ports.ActorService
	Roles       ports.RoleService
	Auth        ports.AuthService
	Health      []handler.DependencyCheck

	JWTSecret string
	Logger    zerolog.Logger

	// Registerer and Gatherer default to the global Prometheus registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	if deps.Registerer == nil {
		deps.Registerer = prometheus.DefaultRegisterer
	}
	if deps.Gatherer == nil {
		deps.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(deps.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "theater",
		Subsystem:  "http",
		Registerer: deps.Registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))
	e.Use(middleware.CurrentUser(deps.JWTSecret, deps.Logger))

	auth := middleware.Auth(deps.JWTSecret)
	admin := []echo.MiddlewareFunc{auth, middleware.RequireAdmin()}

	// --- Demo and operational routes ---
	healthHandler := handler.NewHealthHandler(deps.Health...)
	e.GET("/", handler.Index)
	e.GET("/context", handler.RequestContext)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: deps.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Accounts ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	e.POST("/signup", authHandler.Signup)
	e.POST("/login", authHandler.Login)
	e.GET("/me", authHandler.Me, auth)

	// --- Catalog: public reads, admin writes ---
	productions := handler.NewProductionHandler(deps.Productions)
	e.GET("/productions", productions.List)
	e.GET("/productions/:id", productions.Get)
	e.GET("/productions/title/:title", productions.GetByTitle)
	e.GET("/longest-movies", productions.Longest)
	e.POST("/productions", productions.Create, admin...)
	e.PATCH("/productions/:id", productions.Update, admin...)
	e.DELETE("/productions/:id", productions.Delete, admin...)

	actors := handler.NewActorHandler(deps.Actors)
	e.GET("/actors", actors.List)
	e.GET("/actors/:id", actors.Get)
	e.POST("/actors", actors.Create, admin...)
	e.PATCH("/actors/:id", actors.Update, admin...)
	e.DELETE("/actors/:id", actors.Delete, admin...)

	roles := handler.NewRoleHandler(deps.Roles)
	e.GET("/roles/:id", roles.Get)
	e.POST("/roles", roles.Create, admin...)
	e.DELETE("/roles/:id", roles.Delete, admin...)

	return e
}
