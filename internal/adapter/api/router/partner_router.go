package router

import (
	"github.com/labstack/echo/v4"

	"nanocart/internal/adapter/api/handler"
	"nanocart/internal/adapter/api/middleware"
)

func SetupPartnerRouter(api *echo.Group, authMiddleware *middleware.AuthMiddleware) {
	partnerHandler := handler.GetPartnerHandler()

	partnerAuth := api.Group("/partner/auth")
	partnerAuth.POST("/signup", partnerHandler.Signup)
	partnerAuth.POST("/verify/:partnerId", partnerHandler.Verify, authMiddleware.Authenticate, authMiddleware.AdminOnly)

	profile := api.Group("/partner/profile", authMiddleware.Authenticate, authMiddleware.PartnerOnly)
	profile.GET("", partnerHandler.GetProfile)
	profile.PUT("", partnerHandler.UpdateProfile)
}
