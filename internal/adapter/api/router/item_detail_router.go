package router

import (
	"github.com/labstack/echo/v4"

	"nanocart/internal/adapter/api/handler"
	"nanocart/internal/adapter/api/middleware"
)

func SetupItemDetailRouter(api *echo.Group, authMiddleware *middleware.AuthMiddleware) {
	itemDetailHandler := handler.GetItemDetailHandler()
	adminOnly := []echo.MiddlewareFunc{authMiddleware.Authenticate, authMiddleware.AdminOnly}

	details := api.Group("/itemDetails")
	details.POST("/create", itemDetailHandler.Create, adminOnly...)
	details.PUT("/:itemDetailsId", itemDetailHandler.Update, adminOnly...)
	details.DELETE("/:itemDetailsId", itemDetailHandler.Delete, adminOnly...)
	details.GET("/id/:itemDetailsId", itemDetailHandler.GetByID)
	details.GET("/:itemId", itemDetailHandler.GetByItemID)
}
