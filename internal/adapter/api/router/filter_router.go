package router

import (
	"github.com/labstack/echo/v4"

	"nanocart/internal/adapter/api/handler"
	"nanocart/internal/adapter/api/middleware"
)

func SetupFilterRouter(api *echo.Group, authMiddleware *middleware.AuthMiddleware) {
	filterHandler := handler.GetFilterHandler()
	adminOnly := []echo.MiddlewareFunc{authMiddleware.Authenticate, authMiddleware.AdminOnly}

	filters := api.Group("/filter/filters")
	filters.POST("", filterHandler.Create, adminOnly...)
	filters.PUT("/:id", filterHandler.Update, adminOnly...)
	filters.DELETE("/:id", filterHandler.Delete, adminOnly...)
	filters.GET("", filterHandler.List)
	filters.GET("/:id", filterHandler.Get)
}
