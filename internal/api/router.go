package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fitlog/exercise-tracker/internal/api/handler"
	"github.com/fitlog/exercise-tracker/internal/core/service"
	mongodb "github.com/fitlog/exercise-tracker/internal/infrastructure/db/mongo"
	redisdb "github.com/fitlog/exercise-tracker/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("exercise_tracker"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	exerciseRepo := mongodb.NewExerciseRepository(db)
	userCache := redisdb.NewUserCache(rdb)

	userService := service.NewUserService(userRepo, log)
	exerciseService := service.NewExerciseService(userRepo, exerciseRepo, userCache, log)

	userHandler := handler.NewUserHandler(userService)
	exerciseHandler := handler.NewExerciseHandler(exerciseService)

	// --- Exercise tracker routes ---
	e.POST("/api/exercise/new-user", userHandler.Create)
	e.GET("/api/exercise/users", userHandler.List)
	e.POST("/api/exercise/add", exerciseHandler.Add)
	e.GET("/api/exercise/log", exerciseHandler.Log)

	// --- Health probes ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability / docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
