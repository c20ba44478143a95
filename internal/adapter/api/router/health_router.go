package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"nanocart/internal/adapter/api/handler"
)

func SetupHealthRouter(e *echo.Echo, metrics http.Handler) {
	healthHandler := handler.GetHealthHandler()
	e.GET("/", healthHandler.Root)
	e.GET("/health", healthHandler.CheckHealth)
	if metrics != nil {
		e.GET("/metrics", echo.WrapHandler(metrics))
	}
}
