package handler

import (
	"github.com/labstack/echo/v4"

	"nanocart/internal/usecase"
	"nanocart/pkg/response"
)

type FilterHandler struct {
	filterUseCase *usecase.FilterUseCase
}

func NewFilterHandler(filterUseCase *usecase.FilterUseCase) *FilterHandler {
	return &FilterHandler{
		filterUseCase: filterUseCase,
	}
}

func (h *FilterHandler) Create(c echo.Context) error {
	var input usecase.FilterInput
	if err := bind(c, &input); err != nil {
		return response.Error(c, err)
	}

	filter, err := h.filterUseCase.Create(c.Request().Context(), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, "Filter created successfully", filter)
}

func (h *FilterHandler) Update(c echo.Context) error {
	var input usecase.FilterInput
	if err := bind(c, &input); err != nil {
		return response.Error(c, err)
	}

	filter, err := h.filterUseCase.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Filter updated successfully", filter)
}

func (h *FilterHandler) Delete(c echo.Context) error {
	if err := h.filterUseCase.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Filter deleted successfully", nil)
}

func (h *FilterHandler) Get(c echo.Context) error {
	filter, err := h.filterUseCase.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Filter fetched successfully", filter)
}

func (h *FilterHandler) List(c echo.Context) error {
	filters, err := h.filterUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Filters fetched successfully", filters)
}
