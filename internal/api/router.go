package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskvault/taskvault-api/internal/api/handler"
	"github.com/taskvault/taskvault-api/internal/api/middleware"
	"github.com/taskvault/taskvault-api/internal/auth/token"
	"github.com/taskvault/taskvault-api/internal/core/domain"
	"github.com/taskvault/taskvault-api/internal/core/ports"
	"github.com/taskvault/taskvault-api/internal/core/service"
	mongodb "github.com/taskvault/taskvault-api/internal/infrastructure/db/mongo"
	redisdb "github.com/taskvault/taskvault-api/internal/infrastructure/db/redis"
	"github.com/taskvault/taskvault-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The audit recorder is constructed by the caller because its worker
// lifecycle is tied to the process, not the router.
func NewRouter(db *mongo.Database, rdb *redis.Client, codec *token.Codec, audit ports.AuditRecorder, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("taskvault"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	todoRepo := mongodb.NewTodoRepository(db)
	throttle := redisdb.NewLoginThrottle(rdb)

	authService := service.NewAuthService(userRepo, codec, throttle, audit, log)
	todoService := service.NewTodoService(todoRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	todoHandler := handler.NewTodoHandler(todoService)
	contentHandler := handler.NewContentHandler()

	// Runs on every request; attaches a principal when a valid token is
	// presented and never rejects by itself.
	e.Use(middleware.Authenticate(codec, userRepo, log))

	anyUser := middleware.RequireRoles(domain.RoleUser, domain.RoleModerator, domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/signin", authHandler.Signin)

	// --- Role-tiered content ---
	e.GET("/content/all", contentHandler.All)
	e.GET("/content/user", contentHandler.User, anyUser)
	e.GET("/content/mod", contentHandler.Moderator, middleware.RequireRoles(domain.RoleModerator, domain.RoleAdmin))
	e.GET("/content/admin", contentHandler.Admin, middleware.RequireRoles(domain.RoleAdmin))

	// --- Todos (any authenticated user) ---
	todos := e.Group("/todos", anyUser)
	todos.GET("", todoHandler.List)
	todos.POST("", todoHandler.Create)
	todos.GET("/:id", todoHandler.Get)
	todos.PUT("/:id", todoHandler.Update)
	todos.PATCH("/:id/toggle", todoHandler.Toggle)
	todos.DELETE("/:id", todoHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
