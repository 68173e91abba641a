package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HealthChecker probes a single downstream dependency.
type HealthChecker func(ctx context.Context) error

// HealthHandler handles health check HTTP requests
type HealthHandler struct {
	logger *slog.Logger
	checks map[string]HealthChecker
}

// NewHealthHandler creates a new health handler. The checks map names each
// dependency probed by the readiness endpoint.
func NewHealthHandler(logger *slog.Logger, checks map[string]HealthChecker) *HealthHandler {
	return &HealthHandler{
		logger: logger,
		checks: checks,
	}
}

// HealthCheck performs a basic health check
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Service:   "account-service",
		Version:   "1.0.0",
		Uptime:    time.Since(startTime).String(),
	}

	return c.JSON(http.StatusOK, response)
}

// ReadinessCheck probes every registered dependency and reports 503 when
// any of them is down
func (h *HealthHandler) ReadinessCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]HealthStatus, len(h.checks))
	allHealthy := true

	for name, check := range h.checks {
		start := time.Now()
		if err := check(ctx); err != nil {
			h.logger.Warn("readiness check failed", "dependency", name, "error", err)
			checks[name] = HealthStatus{
				Status:  "unhealthy",
				Message: err.Error(),
				Latency: time.Since(start).String(),
			}
			allHealthy = false
			continue
		}
		checks[name] = HealthStatus{
			Status:  "healthy",
			Message: "connected",
			Latency: time.Since(start).String(),
		}
	}

	response := ReadinessResponse{
		Status:    getOverallStatus(allHealthy),
		Timestamp: time.Now(),
		Service:   "account-service",
		Checks:    checks,
	}

	statusCode := http.StatusOK
	if !allHealthy {
		statusCode = http.StatusServiceUnavailable
	}

	return c.JSON(statusCode, response)
}

// LivenessCheck performs a liveness check
func (h *HealthHandler) LivenessCheck(c echo.Context) error {
	response := HealthResponse{
		Status:    "alive",
		Timestamp: time.Now(),
		Service:   "account-service",
		Version:   "1.0.0",
		Uptime:    time.Since(startTime).String(),
	}

	return c.JSON(http.StatusOK, response)
}

func getOverallStatus(allHealthy bool) string {
	if allHealthy {
		return "ready"
	}
	return "not_ready"
}

// Response types
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Uptime    string    `json:"uptime"`
}

type ReadinessResponse struct {
	Status    string                  `json:"status"`
	Timestamp time.Time               `json:"timestamp"`
	Service   string                  `json:"service"`
	Checks    map[string]HealthStatus `json:"checks"`
}

type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Latency string `json:"latency,omitempty"`
}

// startTime is set when the service starts
var startTime = time.Now()
