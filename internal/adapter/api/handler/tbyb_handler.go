package handler

import (
	"github.com/labstack/echo/v4"

	"nanocart/internal/usecase"
	"nanocart/pkg/response"
)

type TBYBHandler struct {
	tbybUseCase *usecase.TBYBUseCase
}

func NewTBYBHandler(tbybUseCase *usecase.TBYBUseCase) *TBYBHandler {
	return &TBYBHandler{
		tbybUseCase: tbybUseCase,
	}
}

func (h *TBYBHandler) Upload(c echo.Context) error {
	image, err := imageFile(c, "image")
	if err != nil {
		return response.Error(c, err)
	}

	uploaded, err := h.tbybUseCase.Upload(c.Request().Context(), getUserIDFromContext(c), image)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, "Image uploaded successfully", uploaded)
}

func (h *TBYBHandler) List(c echo.Context) error {
	images, err := h.tbybUseCase.List(c.Request().Context(), getUserIDFromContext(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Images fetched successfully", images)
}
