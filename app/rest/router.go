package rest

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"account-service/app/port"
	"account-service/app/rest/handlers"
	custommw "account-service/app/rest/middleware"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger          *slog.Logger
	AccountUsecase  port.AccountUsecase
	ProfileUsecase  port.ProfileUsecase
	IdentityGateway port.IdentityGateway
	HealthChecks    map[string]handlers.HealthChecker
	AllowedOrigins  []string
}

// NewRouter creates and configures the Echo router
func NewRouter(config RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	authHandler := handlers.NewAuthHandler(config.AccountUsecase, config.Logger)
	profileHandler := handlers.NewProfileHandler(config.ProfileUsecase, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.Logger, config.HealthChecks)

	accessGuard := custommw.NewAccessGuard(config.IdentityGateway, config.Logger)
	rateLimiter := custommw.NewRateLimiter()

	// Global middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "method=${method}, uri=${uri}, status=${status}, latency=${latency_human}, error=${error}\n",
	}))
	e.Use(custommw.NewCORSMiddleware(custommw.DefaultCORSConfig(config.AllowedOrigins)))
	e.Use(custommw.SecurityHeaders())
	e.Use(rateLimiter.RateLimit())

	// Health endpoints (no auth required)
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/health/ready", healthHandler.ReadinessCheck)
	e.GET("/health/live", healthHandler.LivenessCheck)

	// Public account endpoints
	e.POST("/login", authHandler.Login)
	e.POST("/signup", authHandler.Signup)

	// Profile endpoints (require authentication)
	profile := e.Group("/profile")
	profile.Use(accessGuard.RequireAuth())
	profile.GET("", profileHandler.GetProfile)
	profile.POST("/update", profileHandler.UpdateProfile)

	return e
}
