package router

import (
	"github.com/labstack/echo/v4"

	"nanocart/internal/adapter/api/handler"
	"nanocart/internal/adapter/api/middleware"
)

func SetupAddressRouter(api *echo.Group, authMiddleware *middleware.AuthMiddleware) {
	addressHandler := handler.GetAddressHandler()

	address := api.Group("/user/address", authMiddleware.Authenticate, authMiddleware.UserOnly)
	address.POST("/create", addressHandler.Create)
	address.PUT("/:addressId", addressHandler.Update)
	address.DELETE("/:addressId", addressHandler.Delete)
	address.GET("", addressHandler.Get)
	address.GET("/", addressHandler.Get)
}
