package router

import (
	"github.com/labstack/echo/v4"

	"nanocart/internal/adapter/api/handler"
	"nanocart/internal/adapter/api/middleware"
)

func SetupCartRouter(api *echo.Group, authMiddleware *middleware.AuthMiddleware) {
	cartHandler := handler.GetCartHandler()

	userCart := api.Group("/usercart", authMiddleware.Authenticate, authMiddleware.UserOnly)
	userCart.POST("/create", cartHandler.AddToUserCart)
	userCart.DELETE("/removeitem", cartHandler.RemoveFromUserCart)
	userCart.PUT("/update-quantity", cartHandler.UpdateUserCartQuantity)
	userCart.GET("", cartHandler.GetUserCart)
	userCart.GET("/", cartHandler.GetUserCart)

	partnerCart := api.Group("/partner/cart", authMiddleware.Authenticate, authMiddleware.PartnerOnly)
	partnerCart.POST("/create", cartHandler.AddToPartnerCart)
	partnerCart.DELETE("/removeitem", cartHandler.RemoveFromPartnerCart)
	partnerCart.PUT("/update-quantity", cartHandler.UpdatePartnerCartQuantity)
	partnerCart.GET("", cartHandler.GetPartnerCart)
	partnerCart.GET("/", cartHandler.GetPartnerCart)
}
