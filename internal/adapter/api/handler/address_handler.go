package handler

import (
	"github.com/labstack/echo/v4"

	"nanocart/internal/usecase"
	"nanocart/pkg/response"
)

type AddressHandler struct {
	addressUseCase *usecase.AddressUseCase
}

func NewAddressHandler(addressUseCase *usecase.AddressUseCase) *AddressHandler {
	return &AddressHandler{
		addressUseCase: addressUseCase,
	}
}

func (h *AddressHandler) Create(c echo.Context) error {
	var input usecase.AddressInput
	if err := bind(c, &input); err != nil {
		return response.Error(c, err)
	}

	addresses, err := h.addressUseCase.Create(c.Request().Context(), getUserIDFromContext(c), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, "Address created successfully", addresses)
}

func (h *AddressHandler) Update(c echo.Context) error {
	var input usecase.UpdateAddressInput
	if err := bind(c, &input); err != nil {
		return response.Error(c, err)
	}

	addresses, err := h.addressUseCase.Update(c.Request().Context(), getUserIDFromContext(c), c.Param("addressId"), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Address updated successfully", addresses)
}

func (h *AddressHandler) Delete(c echo.Context) error {
	addresses, err := h.addressUseCase.Delete(c.Request().Context(), getUserIDFromContext(c), c.Param("addressId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Address deleted successfully", addresses)
}

func (h *AddressHandler) Get(c echo.Context) error {
	addresses, err := h.addressUseCase.Get(c.Request().Context(), getUserIDFromContext(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Addresses fetched successfully", addresses)
}
