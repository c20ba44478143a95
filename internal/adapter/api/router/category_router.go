package router

import (
	"github.com/labstack/echo/v4"

	"nanocart/internal/adapter/api/handler"
	"nanocart/internal/adapter/api/middleware"
)

func SetupCategoryRouter(api *echo.Group, authMiddleware *middleware.AuthMiddleware) {
	categoryHandler := handler.GetCategoryHandler()
	adminOnly := []echo.MiddlewareFunc{authMiddleware.Authenticate, authMiddleware.AdminOnly}

	categories := api.Group("/category")
	categories.POST("/create", categoryHandler.Create, adminOnly...)
	categories.PUT("/:categoryId", categoryHandler.Update, adminOnly...)
	categories.DELETE("/:categoryId", categoryHandler.Delete, adminOnly...)
	categories.GET("", categoryHandler.List)
	categories.GET("/", categoryHandler.List)
	categories.GET("/:categoryId", categoryHandler.Get)
}
