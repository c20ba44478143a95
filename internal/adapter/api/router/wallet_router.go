package router

import (
	"github.com/labstack/echo/v4"

	"nanocart/internal/adapter/api/handler"
	"nanocart/internal/adapter/api/middleware"
)

func SetupWalletRouter(api *echo.Group, authMiddleware *middleware.AuthMiddleware) {
	walletHandler := handler.GetWalletHandler()

	wallet := api.Group("/wallet", authMiddleware.Authenticate, authMiddleware.PartnerOnly)
	wallet.POST("/create", walletHandler.Create)
	wallet.POST("/add-funds", walletHandler.AddFunds)
	wallet.POST("/deduct-funds", walletHandler.DeductFunds)
	wallet.GET("", walletHandler.Get)
	wallet.GET("/", walletHandler.Get)
	wallet.POST("/toggle-status", walletHandler.ToggleStatus)
	wallet.GET("/:partnerId/transaction-history", walletHandler.TransactionHistory)
}
