package handler

import (
	"github.com/labstack/echo/v4"

	"nanocart/internal/usecase"
	"nanocart/pkg/errors"
	"nanocart/pkg/response"
)

type WishlistHandler struct {
	userWishlistUseCase    *usecase.UserWishlistUseCase
	partnerWishlistUseCase *usecase.PartnerWishlistUseCase
}

func NewWishlistHandler(userWishlistUseCase *usecase.UserWishlistUseCase, partnerWishlistUseCase *usecase.PartnerWishlistUseCase) *WishlistHandler {
	return &WishlistHandler{
		userWishlistUseCase:    userWishlistUseCase,
		partnerWishlistUseCase: partnerWishlistUseCase,
	}
}

func (h *WishlistHandler) AddToUserWishlist(c echo.Context) error {
	var input usecase.WishlistInput
	if err := bind(c, &input); err != nil {
		return response.Error(c, err)
	}
	if input.ItemID == "" {
		return response.Error(c, errors.BadRequest("itemId is required", nil))
	}

	wishlist, err := h.userWishlistUseCase.Add(c.Request().Context(), getUserIDFromContext(c), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Item added to wishlist successfully", wishlist)
}

func (h *WishlistHandler) RemoveFromUserWishlist(c echo.Context) error {
	var input usecase.WishlistInput
	if err := bind(c, &input); err != nil {
		return response.Error(c, err)
	}
	if input.ItemID == "" {
		return response.Error(c, errors.BadRequest("itemId is required", nil))
	}

	wishlist, err := h.userWishlistUseCase.Remove(c.Request().Context(), getUserIDFromContext(c), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Item removed from wishlist successfully", wishlist)
}

func (h *WishlistHandler) GetUserWishlist(c echo.Context) error {
	wishlist, err := h.userWishlistUseCase.Get(c.Request().Context(), getUserIDFromContext(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Wishlist fetched successfully", wishlist)
}

func (h *WishlistHandler) AddToPartnerWishlist(c echo.Context) error {
	var input usecase.WishlistInput
	if err := bind(c, &input); err != nil {
		return response.Error(c, err)
	}
	if input.ItemDetailID == "" {
		return response.Error(c, errors.BadRequest("itemDetailId is required", nil))
	}

	wishlist, err := h.partnerWishlistUseCase.Add(c.Request().Context(), getUserIDFromContext(c), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Item added to wishlist successfully", wishlist)
}

func (h *WishlistHandler) RemoveFromPartnerWishlist(c echo.Context) error {
	var input usecase.WishlistInput
	if err := bind(c, &input); err != nil {
		return response.Error(c, err)
	}
	if input.ItemDetailID == "" {
		return response.Error(c, errors.BadRequest("itemDetailId is required", nil))
	}

	wishlist, err := h.partnerWishlistUseCase.Remove(c.Request().Context(), getUserIDFromContext(c), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Item removed from wishlist successfully", wishlist)
}

func (h *WishlistHandler) GetPartnerWishlist(c echo.Context) error {
	wishlist, err := h.partnerWishlistUseCase.Get(c.Request().Context(), getUserIDFromContext(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Wishlist fetched successfully", wishlist)
}
