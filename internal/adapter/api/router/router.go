package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"nanocart/internal/adapter/api/middleware"
)

type Options struct {
	// Metrics serves /metrics when set.
	Metrics http.Handler
}

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, opts Options) {
	SetupHealthRouter(e, opts.Metrics)

	api := e.Group("/api")
	SetupAuthRouter(api)
	SetupPartnerRouter(api, authMiddleware)
	SetupCategoryRouter(api, authMiddleware)
	SetupSubCategoryRouter(api, authMiddleware)
	SetupItemRouter(api, authMiddleware)
	SetupItemDetailRouter(api, authMiddleware)
	SetupFilterRouter(api, authMiddleware)
	SetupCartRouter(api, authMiddleware)
	SetupWishlistRouter(api, authMiddleware)
	SetupReviewRouter(api, authMiddleware)
	SetupWalletRouter(api, authMiddleware)
	SetupAddressRouter(api, authMiddleware)
	SetupOrderRouter(api, authMiddleware)
	SetupTBYBRouter(api, authMiddleware)
}
