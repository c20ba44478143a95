package handler

import (
	"github.com/labstack/echo/v4"

	"nanocart/internal/usecase"
	"nanocart/pkg/response"
)

type CategoryHandler struct {
	categoryUseCase *usecase.CategoryUseCase
}

func NewCategoryHandler(categoryUseCase *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{
		categoryUseCase: categoryUseCase,
	}
}

func (h *CategoryHandler) Create(c echo.Context) error {
	var input usecase.CreateCategoryInput
	if isMultipart(c) {
		input.Name = formValue(c, "name")
		input.Description = formValue(c, "description")
		if err := c.Validate(&input); err != nil {
			return response.Error(c, err)
		}
	} else if err := bind(c, &input); err != nil {
		return response.Error(c, err)
	}

	image, err := imageFile(c, "image")
	if err != nil {
		return response.Error(c, err)
	}

	category, err := h.categoryUseCase.Create(c.Request().Context(), input, image)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, "Category created successfully", category)
}

func (h *CategoryHandler) Update(c echo.Context) error {
	var input usecase.UpdateCategoryInput
	if isMultipart(c) {
		input.Name = optionalFormValue(c, "name")
		input.Description = optionalFormValue(c, "description")
	} else if err := bind(c, &input); err != nil {
		return response.Error(c, err)
	}

	image, err := imageFile(c, "image")
	if err != nil {
		return response.Error(c, err)
	}

	category, err := h.categoryUseCase.Update(c.Request().Context(), c.Param("categoryId"), input, image)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Category updated successfully", category)
}

func (h *CategoryHandler) Delete(c echo.Context) error {
	if err := h.categoryUseCase.Delete(c.Request().Context(), c.Param("categoryId")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Category deleted successfully", nil)
}

func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.categoryUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Categories fetched successfully", categories)
}

func (h *CategoryHandler) Get(c echo.Context) error {
	category, err := h.categoryUseCase.Get(c.Request().Context(), c.Param("categoryId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Category fetched successfully", category)
}
