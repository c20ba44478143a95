package router

import (
	"github.com/labstack/echo/v4"

	"nanocart/internal/adapter/api/handler"
	"nanocart/internal/adapter/api/middleware"
)

func SetupWishlistRouter(api *echo.Group, authMiddleware *middleware.AuthMiddleware) {
	wishlistHandler := handler.GetWishlistHandler()

	userWishlist := api.Group("/userwishlist", authMiddleware.Authenticate, authMiddleware.UserOnly)
	userWishlist.POST("/create", wishlistHandler.AddToUserWishlist)
	userWishlist.PUT("/remove", wishlistHandler.RemoveFromUserWishlist)
	userWishlist.GET("", wishlistHandler.GetUserWishlist)
	userWishlist.GET("/", wishlistHandler.GetUserWishlist)

	partnerWishlist := api.Group("/partner/wishlist", authMiddleware.Authenticate, authMiddleware.PartnerOnly)
	partnerWishlist.POST("/create", wishlistHandler.AddToPartnerWishlist)
	partnerWishlist.PUT("/removeitem", wishlistHandler.RemoveFromPartnerWishlist)
	partnerWishlist.GET("", wishlistHandler.GetPartnerWishlist)
	partnerWishlist.GET("/", wishlistHandler.GetPartnerWishlist)
}
