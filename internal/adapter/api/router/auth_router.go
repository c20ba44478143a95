package router

import (
	"github.com/labstack/echo/v4"

	"nanocart/internal/adapter/api/handler"
)

func SetupAuthRouter(api *echo.Group) {
	authHandler := handler.GetAuthHandler()

	authGroup := api.Group("/auth")
	authGroup.POST("/otp", authHandler.SendOTP)
	authGroup.POST("/otp/verify", authHandler.VerifyOTP)
	authGroup.POST("/signup", authHandler.Signup)
	authGroup.POST("/login", authHandler.Login)
}
