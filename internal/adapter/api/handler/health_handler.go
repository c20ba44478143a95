package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"nanocart/pkg/response"
)

// HealthCheck probes one dependency; a nil check is skipped.
type HealthCheck func(ctx context.Context) error

type HealthHandler struct {
	checks map[string]HealthCheck
	now    func() time.Time
}

var healthHandler *HealthHandler

func NewHealthHandler(checks map[string]HealthCheck) *HealthHandler {
	return &HealthHandler{
		checks: checks,
		now:    time.Now,
	}
}

func SetupHealthHandler(checks map[string]HealthCheck) {
	healthHandler = NewHealthHandler(checks)
}

func GetHealthHandler() *HealthHandler {
	if healthHandler == nil {
		healthHandler = NewHealthHandler(nil)
	}
	return healthHandler
}

func (h *HealthHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Your server is up and running....",
	})
}

func (h *HealthHandler) CheckHealth(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	status := http.StatusOK
	components := make(map[string]string, len(h.checks))
	for name, check := range h.checks {
		if check == nil {
			continue
		}
		if err := check(ctx); err != nil {
			components[name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		components[name] = "ok"
	}

	message := "Server is running"
	if status != http.StatusOK {
		message = "Server is degraded"
	}
	return c.JSON(status, response.New(status, status == http.StatusOK, message, map[string]interface{}{
		"time":       h.now().Format(time.RFC3339),
		"components": components,
	}))
}
