package router

import (
	"github.com/labstack/echo/v4"

	"nanocart/internal/adapter/api/handler"
	"nanocart/internal/adapter/api/middleware"
)

func SetupTBYBRouter(api *echo.Group, authMiddleware *middleware.AuthMiddleware) {
	tbybHandler := handler.GetTBYBHandler()

	tbyb := api.Group("/user/tbyb", authMiddleware.Authenticate, authMiddleware.UserOnly)
	tbyb.POST("/upload", tbybHandler.Upload)
	tbyb.GET("", tbybHandler.List)
	tbyb.GET("/", tbybHandler.List)
}
