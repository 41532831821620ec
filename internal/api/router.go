package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fitclub/club-api/internal/api/handler"
	"github.com/fitclub/club-api/internal/api/middleware"
	"github.com/fitclub/club-api/internal/core/domain"
	"github.com/fitclub/club-api/internal/core/service"
	clubmongo "github.com/fitclub/club-api/internal/infrastructure/db/mongo"
	clubredis "github.com/fitclub/club-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("fitclub"))

	// --- Dependencies ---
	userRepo := clubmongo.NewUserRepository(db)
	sessionRepo := clubmongo.NewSessionRepository(db)
	rosterCache := clubredis.NewRosterCache(rdb)

	rosterEngine := service.NewRosterEngine(userRepo, log)
	authService := service.NewAuthService(userRepo, jwtSecret, 24*time.Hour)
	userService := service.NewUserService(userRepo, log)
	sessionService := service.NewSessionService(sessionRepo, userRepo, rosterEngine, rosterCache, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	sessionHandler := handler.NewSessionHandler(sessionService, userService)

	authMiddleware := middleware.Auth(jwtSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Authenticated API ---
	v1 := e.Group("/v1", authMiddleware)

	v1.GET("/me", userHandler.Me)
	v1.PUT("/me/password", authHandler.UpdatePassword)

	v1.GET("/sessions", sessionHandler.List)
	v1.GET("/sessions/:id", sessionHandler.Get, middleware.RBAC(domain.RoleAdmin, domain.RoleTrainer))
	v1.POST("/sessions", sessionHandler.Create, middleware.RBAC(domain.RoleAdmin))
	v1.PUT("/sessions/:id", sessionHandler.Update, middleware.RBAC(domain.RoleAdmin))
	v1.DELETE("/sessions/:id", sessionHandler.Delete, middleware.RBAC(domain.RoleAdmin))
	v1.POST("/sessions/:id/attendance", sessionHandler.MarkAttendance, middleware.RBAC(domain.RoleAdmin, domain.RoleTrainer))

	admin := v1.Group("", middleware.RBAC(domain.RoleAdmin))
	admin.GET("/users", userHandler.List)
	admin.GET("/users/:id", userHandler.Get)
	admin.PUT("/users/:id", userHandler.Update)
	admin.DELETE("/users/:id", userHandler.Delete)
	admin.GET("/trainers", userHandler.ListTrainers)

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
