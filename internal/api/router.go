package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nzwalks/walks-api/internal/api/handler"
	"github.com/nzwalks/walks-api/internal/api/middleware"
	"github.com/nzwalks/walks-api/internal/core/domain"
	"github.com/nzwalks/walks-api/internal/core/ports"
)

// Dependencies carries everything the router needs. Mongo and Redis are only
// used by the readiness probe and may be nil.
type Dependencies struct {
	Logger       zerolog.Logger
	Auth         middleware.Config
	AuthService  ports.AuthService
	Regions      ports.RegionService
	Walks        ports.WalkService
	Difficulties ports.DifficultyService
	Mongo        *mongo.Database
	Redis        *redis.Client
}

// NewRouter builds and returns the Echo instance with all routes registered.
// Role requirements are declared here, per route, so the full access policy
// is readable in one place.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("walks"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.AuthService)
	regionHandler := handler.NewRegionHandler(deps.Regions)
	walkHandler := handler.NewWalkHandler(deps.Walks)
	difficultyHandler := handler.NewDifficultyHandler(deps.Difficulties)

	authn := middleware.Auth(deps.Auth)
	reader := middleware.RequireRoles(domain.RoleReader)
	writer := middleware.RequireRoles(domain.RoleWriter)

	// --- Auth (bypasses the access guard) ---
	e.POST("/auth/login", authHandler.Login)

	// --- Regions: reads open, mutations writer-gated ---
	e.GET("/v1/regions", regionHandler.List)
	e.GET("/v1/regions/:id", regionHandler.Get)
	e.POST("/v1/regions", regionHandler.Create, authn, writer)
	e.PUT("/v1/regions/:id", regionHandler.Update, authn, writer)
	e.DELETE("/v1/regions/:id", regionHandler.Delete, authn, writer)

	// --- Walks: reads reader-gated, mutations writer-gated ---
	e.GET("/v1/walks", walkHandler.List, authn, reader)
	e.GET("/v1/walks/:id", walkHandler.Get, authn, reader)
	e.POST("/v1/walks", walkHandler.Create, authn, writer)
	e.PUT("/v1/walks/:id", walkHandler.Update, authn, writer)
	e.DELETE("/v1/walks/:id", walkHandler.Delete, authn, writer)

	// --- Difficulties: reads open, mutations writer-gated ---
	e.GET("/v1/difficulties", difficultyHandler.List)
	e.GET("/v1/difficulties/:id", difficultyHandler.Get)
	e.POST("/v1/difficulties", difficultyHandler.Create, authn, writer)
	e.PUT("/v1/difficulties/:id", difficultyHandler.Update, authn, writer)
	e.DELETE("/v1/difficulties/:id", difficultyHandler.Delete, authn, writer)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
