package router

import (
	"github.com/labstack/echo/v4"

	"nanocart/internal/adapter/api/handler"
	"nanocart/internal/adapter/api/middleware"
)

func SetupOrderRouter(api *echo.Group, authMiddleware *middleware.AuthMiddleware) {
	orderHandler := handler.GetOrderHandler()

	orders := api.Group("/order", authMiddleware.Authenticate, authMiddleware.UserOnly)
	orders.POST("", orderHandler.Create)
	orders.POST("/", orderHandler.Create)
	orders.GET("", orderHandler.List)
	orders.GET("/", orderHandler.List)
	orders.GET("/:id", orderHandler.Get)
	orders.PUT("/:id", orderHandler.Update)
	orders.DELETE("/:id", orderHandler.Delete)
}
