package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/codeleap/learning-platform/internal/api/handler"
	"github.com/codeleap/learning-platform/internal/api/middleware"
	"github.com/codeleap/learning-platform/internal/core/domain"
	"github.com/codeleap/learning-platform/internal/core/service"
	"github.com/codeleap/learning-platform/internal/infrastructure/config"
	mongostore "github.com/codeleap/learning-platform/internal/infrastructure/db/mongo"
	redisstore "github.com/codeleap/learning-platform/internal/infrastructure/db/redis"
	"github.com/codeleap/learning-platform/internal/infrastructure/queue"
	"github.com/codeleap/learning-platform/internal/security"
)

// NewRouter builds the Echo instance with all routes registered and returns
// it together with the progress dispatcher, which the caller must Start.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, *queue.Dispatcher) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	// --- Dependencies ---
	userRepo := mongostore.NewUserRepository(db)
	lessonRepo := mongostore.NewLessonRepository(db)
	limiter := redisstore.NewLoginLimiter(rdb, cfg.Login.MaxAttempts, cfg.Login.Window)

	hasher := security.NewPasswordHasher()
	codec := security.NewTokenCodec(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	authService := service.NewAuthService(userRepo, hasher, codec, limiter, log)
	lessonService := service.NewLessonService(lessonRepo, log)
	progressService := service.NewProgressService(userRepo, lessonRepo, log)
	dispatcher := queue.NewDispatcher(cfg.ProgressWorkers, progressService, log)

	authHandler := handler.NewAuthHandler(authService)
	lessonHandler := handler.NewLessonHandler(lessonService, dispatcher)

	authRequired := middleware.Auth(codec, userRepo)
	authOptional := middleware.OptionalAuth(codec, userRepo)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/refresh", authHandler.Refresh)
	e.POST("/auth/logout", authHandler.Logout, authRequired)
	e.POST("/auth/change-password", authHandler.ChangePassword, authRequired)
	e.PATCH("/auth/profile", authHandler.UpdateProfile, authRequired)
	e.GET("/auth/me", authHandler.Me, authRequired)

	// --- Lesson routes ---
	e.GET("/lessons", lessonHandler.List, authOptional)
	e.GET("/lessons/:id", lessonHandler.Get, authRequired)
	e.POST("/lessons", lessonHandler.Create, authRequired, adminOnly)
	e.POST("/lessons/:id/complete", lessonHandler.Complete, authRequired)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e, dispatcher
}
