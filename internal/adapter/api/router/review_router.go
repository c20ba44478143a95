package router

import (
	"github.com/labstack/echo/v4"

	"nanocart/internal/adapter/api/handler"
	"nanocart/internal/adapter/api/middleware"
)

func SetupReviewRouter(api *echo.Group, authMiddleware *middleware.AuthMiddleware) {
	reviewHandler := handler.GetReviewHandler()
	userOnly := []echo.MiddlewareFunc{authMiddleware.Authenticate, authMiddleware.UserOnly}
	partnerOnly := []echo.MiddlewareFunc{authMiddleware.Authenticate, authMiddleware.PartnerOnly}

	userReviews := api.Group("/user/ratingreview")
	userReviews.POST("/create", reviewHandler.CreateUserReview, userOnly...)
	userReviews.DELETE("/:reviewId", reviewHandler.DeleteUserReview, userOnly...)
	userReviews.GET("/:itemDetailId", reviewHandler.ListUserReviews)

	partnerReviews := api.Group("/partner/ratingreview")
	partnerReviews.POST("/create", reviewHandler.CreatePartnerReview, partnerOnly...)
	partnerReviews.PUT("/:reviewId", reviewHandler.UpdatePartnerReview, partnerOnly...)
	partnerReviews.DELETE("/:reviewId", reviewHandler.DeletePartnerReview, partnerOnly...)
	partnerReviews.GET("/partner", reviewHandler.GetOwnPartnerReviews, partnerOnly...)
	partnerReviews.GET("", reviewHandler.ListPartnerReviews)
	partnerReviews.GET("/", reviewHandler.ListPartnerReviews)
}
