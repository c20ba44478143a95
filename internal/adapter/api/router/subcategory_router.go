package router

import (
	"github.com/labstack/echo/v4"

	"nanocart/internal/adapter/api/handler"
	"nanocart/internal/adapter/api/middleware"
)

func SetupSubCategoryRouter(api *echo.Group, authMiddleware *middleware.AuthMiddleware) {
	subCategoryHandler := handler.GetSubCategoryHandler()
	adminOnly := []echo.MiddlewareFunc{authMiddleware.Authenticate, authMiddleware.AdminOnly}

	subs := api.Group("/subcategory")
	subs.POST("/create", subCategoryHandler.Create, adminOnly...)
	subs.PUT("/:subcategoryId", subCategoryHandler.Update, adminOnly...)
	subs.DELETE("/:subcategoryId", subCategoryHandler.Delete, adminOnly...)
	subs.GET("", subCategoryHandler.List)
	subs.GET("/", subCategoryHandler.List)
	subs.GET("/categories/:categoryId", subCategoryHandler.ListByCategory)
	subs.GET("/:subcategoryId", subCategoryHandler.Get)
}
