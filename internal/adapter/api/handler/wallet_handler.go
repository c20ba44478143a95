package handler

import (
	"github.com/labstack/echo/v4"

	"nanocart/internal/usecase"
	"nanocart/pkg/response"
)

type WalletHandler struct {
	walletUseCase *usecase.WalletUseCase
}

func NewWalletHandler(walletUseCase *usecase.WalletUseCase) *WalletHandler {
	return &WalletHandler{
		walletUseCase: walletUseCase,
	}
}

func (h *WalletHandler) Create(c echo.Context) error {
	wallet, err := h.walletUseCase.Create(c.Request().Context(), getUserIDFromContext(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, "Wallet created successfully", wallet)
}

func (h *WalletHandler) AddFunds(c echo.Context) error {
	var input usecase.FundsInput
	if err := bind(c, &input); err != nil {
		return response.Error(c, err)
	}

	wallet, err := h.walletUseCase.AddFunds(c.Request().Context(), getUserIDFromContext(c), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Funds added successfully", wallet)
}

func (h *WalletHandler) DeductFunds(c echo.Context) error {
	var input usecase.FundsInput
	if err := bind(c, &input); err != nil {
		return response.Error(c, err)
	}

	wallet, err := h.walletUseCase.DeductFunds(c.Request().Context(), getUserIDFromContext(c), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Funds deducted successfully", wallet)
}

func (h *WalletHandler) Get(c echo.Context) error {
	wallet, err := h.walletUseCase.Get(c.Request().Context(), getUserIDFromContext(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Wallet fetched successfully", wallet)
}

func (h *WalletHandler) ToggleStatus(c echo.Context) error {
	wallet, err := h.walletUseCase.ToggleStatus(c.Request().Context(), getUserIDFromContext(c))
	if err != nil {
		return response.Error(c, err)
	}

	message := "Wallet deactivated successfully"
	if wallet.IsActive {
		message = "Wallet activated successfully"
	}
	return response.Success(c, message, wallet)
}

func (h *WalletHandler) TransactionHistory(c echo.Context) error {
	history, err := h.walletUseCase.TransactionHistory(c.Request().Context(), getUserIDFromContext(c), c.Param("partnerId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Transaction history fetched successfully", history)
}
