package handler

import (
	"github.com/labstack/echo/v4"

	"nanocart/internal/usecase"
	"nanocart/pkg/errors"
	"nanocart/pkg/response"
)

type CartHandler struct {
	userCartUseCase    *usecase.UserCartUseCase
	partnerCartUseCase *usecase.PartnerCartUseCase
}

func NewCartHandler(userCartUseCase *usecase.UserCartUseCase, partnerCartUseCase *usecase.PartnerCartUseCase) *CartHandler {
	return &CartHandler{
		userCartUseCase:    userCartUseCase,
		partnerCartUseCase: partnerCartUseCase,
	}
}

func bindUserLine(c echo.Context, dst *usecase.CartLineInput) error {
	if err := bind(c, dst); err != nil {
		return err
	}
	if dst.ItemID == "" {
		return errors.BadRequest("itemId is required", nil)
	}
	return nil
}

func bindPartnerLine(c echo.Context, dst *usecase.CartLineInput) error {
	if err := bind(c, dst); err != nil {
		return err
	}
	if dst.ItemDetailID == "" {
		return errors.BadRequest("itemDetailId is required", nil)
	}
	return nil
}

func (h *CartHandler) AddToUserCart(c echo.Context) error {
	var input usecase.CartLineInput
	if err := bindUserLine(c, &input); err != nil {
		return response.Error(c, err)
	}

	cart, err := h.userCartUseCase.AddItem(c.Request().Context(), getUserIDFromContext(c), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Item added to cart successfully", cart)
}

func (h *CartHandler) RemoveFromUserCart(c echo.Context) error {
	var input usecase.CartLineInput
	if err := bindUserLine(c, &input); err != nil {
		return response.Error(c, err)
	}

	cart, err := h.userCartUseCase.RemoveItem(c.Request().Context(), getUserIDFromContext(c), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Item removed from cart successfully", cart)
}

func (h *CartHandler) UpdateUserCartQuantity(c echo.Context) error {
	var input usecase.UpdateQuantityInput
	if err := bind(c, &input); err != nil {
		return response.Error(c, err)
	}
	if input.ItemID == "" {
		return response.Error(c, errors.BadRequest("itemId is required", nil))
	}

	cart, err := h.userCartUseCase.UpdateQuantity(c.Request().Context(), getUserIDFromContext(c), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Cart quantity updated successfully", cart)
}

func (h *CartHandler) GetUserCart(c echo.Context) error {
	cart, err := h.userCartUseCase.Get(c.Request().Context(), getUserIDFromContext(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Cart fetched successfully", cart)
}

func (h *CartHandler) AddToPartnerCart(c echo.Context) error {
	var input usecase.CartLineInput
	if err := bindPartnerLine(c, &input); err != nil {
		return response.Error(c, err)
	}

	cart, err := h.partnerCartUseCase.AddItem(c.Request().Context(), getUserIDFromContext(c), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Item added to cart successfully", cart)
}

func (h *CartHandler) RemoveFromPartnerCart(c echo.Context) error {
	var input usecase.CartLineInput
	if err := bindPartnerLine(c, &input); err != nil {
		return response.Error(c, err)
	}

	cart, err := h.partnerCartUseCase.RemoveItem(c.Request().Context(), getUserIDFromContext(c), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Item removed from cart successfully", cart)
}

func (h *CartHandler) UpdatePartnerCartQuantity(c echo.Context) error {
	var input usecase.UpdateQuantityInput
	if err := bind(c, &input); err != nil {
		return response.Error(c, err)
	}
	if input.ItemDetailID == "" {
		return response.Error(c, errors.BadRequest("itemDetailId is required", nil))
	}

	cart, err := h.partnerCartUseCase.UpdateQuantity(c.Request().Context(), getUserIDFromContext(c), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Cart quantity updated successfully", cart)
}

func (h *CartHandler) GetPartnerCart(c echo.Context) error {
	cart, err := h.partnerCartUseCase.Get(c.Request().Context(), getUserIDFromContext(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Cart fetched successfully", cart)
}
