package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/clubsuite/backoffice/internal/api/handler"
	"github.com/clubsuite/backoffice/internal/api/middleware"
	"github.com/clubsuite/backoffice/internal/core/domain"
	"github.com/clubsuite/backoffice/internal/core/service"
	redisdb "github.com/clubsuite/backoffice/internal/infrastructure/db/redis"
	"github.com/clubsuite/backoffice/internal/infrastructure/db/sqlite"
	"github.com/clubsuite/backoffice/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *sql.DB, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("backoffice"))
	e.Use(middleware.CORS(cfg.AllowedOrigins()))

	// --- Dependencies ---
	userRepo := sqlite.NewUserRepository(db)
	sessions := redisdb.NewSessionStore(rdb)
	perms := domain.NewPermissionTable()
	authService := service.NewAuthService(userRepo, sessions, cfg.JWTSecret, cfg.TokenTTL)
	userService := service.NewUserService(userRepo)
	authHandler := handler.NewAuthHandler(authService, userService, log)
	userHandler := handler.NewUserHandler(userService)
	authMiddleware := middleware.Auth(cfg.JWTSecret, sessions)

	// --- API surface (everything under /api passes the origin gate) ---
	apiGroup := e.Group("/api")

	apiGroup.POST("/auth/login", authHandler.Login)
	apiGroup.POST("/auth/logout", authHandler.Logout)
	apiGroup.GET("/auth/me", authHandler.Me, authMiddleware)

	users := apiGroup.Group("/users", authMiddleware)
	users.GET("", userHandler.List, middleware.RequirePermission(perms, domain.PermUserRead))
	users.POST("", userHandler.Create, middleware.RequirePermission(perms, domain.PermUserCreate))
	users.GET("/:id", userHandler.Get, middleware.RequirePermission(perms, domain.PermUserRead))
	users.PUT("/:id", userHandler.Update, middleware.RequirePermission(perms, domain.PermUserUpdate))
	users.DELETE("/:id", userHandler.Delete, middleware.RequirePermission(perms, domain.PermUserDelete))

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
