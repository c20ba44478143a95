package router

import (
	"github.com/labstack/echo/v4"

	"nanocart/internal/adapter/api/handler"
	"nanocart/internal/adapter/api/middleware"
)

func SetupItemRouter(api *echo.Group, authMiddleware *middleware.AuthMiddleware) {
	itemHandler := handler.GetItemHandler()
	adminOnly := []echo.MiddlewareFunc{authMiddleware.Authenticate, authMiddleware.AdminOnly}

	items := api.Group("/items")
	items.POST("/create", itemHandler.Create, adminOnly...)
	items.PUT("/:itemId", itemHandler.Update, adminOnly...)
	items.DELETE("/:itemId", itemHandler.Delete, adminOnly...)
	items.GET("", itemHandler.List)
	items.GET("/", itemHandler.List)
	items.GET("/filtersitems", itemHandler.Filter)
	items.GET("/category/:categoryId", itemHandler.ListByCategory)
	items.GET("/subcategory/:subcategoryId", itemHandler.ListBySubCategory)
	items.GET("/:itemId", itemHandler.Get)
}
