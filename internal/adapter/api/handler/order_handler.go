package handler

import (
	"github.com/labstack/echo/v4"

	"nanocart/internal/usecase"
	"nanocart/pkg/response"
)

type OrderHandler struct {
	orderUseCase *usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
	}
}

func (h *OrderHandler) Create(c echo.Context) error {
	var input usecase.CreateOrderInput
	if err := bind(c, &input); err != nil {
		return response.Error(c, err)
	}

	order, err := h.orderUseCase.Create(c.Request().Context(), getUserIDFromContext(c), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, "Order created successfully", order)
}

func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.orderUseCase.List(c.Request().Context(), getUserIDFromContext(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Orders fetched successfully", orders)
}

func (h *OrderHandler) Get(c echo.Context) error {
	order, err := h.orderUseCase.Get(c.Request().Context(), getUserIDFromContext(c), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Order fetched successfully", order)
}

func (h *OrderHandler) Update(c echo.Context) error {
	var input usecase.UpdateOrderInput
	if err := bind(c, &input); err != nil {
		return response.Error(c, err)
	}

	order, err := h.orderUseCase.Update(c.Request().Context(), getUserIDFromContext(c), c.Param("id"), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Order updated successfully", order)
}

func (h *OrderHandler) Delete(c echo.Context) error {
	order, err := h.orderUseCase.Delete(c.Request().Context(), getUserIDFromContext(c), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Order deleted successfully", order)
}
