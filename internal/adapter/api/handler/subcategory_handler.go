package handler

import (
	"github.com/labstack/echo/v4"

	"nanocart/internal/usecase"
	"nanocart/pkg/response"
	"nanocart/pkg/utils"
)

type SubCategoryHandler struct {
	subCategoryUseCase *usecase.SubCategoryUseCase
}

func NewSubCategoryHandler(subCategoryUseCase *usecase.SubCategoryUseCase) *SubCategoryHandler {
	return &SubCategoryHandler{
		subCategoryUseCase: subCategoryUseCase,
	}
}

func (h *SubCategoryHandler) Create(c echo.Context) error {
	input := usecase.CreateSubCategoryInput{
		Name:        formValue(c, "name"),
		Description: formValue(c, "description"),
		CategoryID:  formValue(c, "categoryId"),
	}
	if err := c.Validate(&input); err != nil {
		return response.Error(c, err)
	}

	image, err := imageFile(c, "image")
	if err != nil {
		return response.Error(c, err)
	}

	sub, err := h.subCategoryUseCase.Create(c.Request().Context(), input, image)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, "SubCategory created successfully", sub)
}

func (h *SubCategoryHandler) Update(c echo.Context) error {
	var input usecase.UpdateSubCategoryInput
	if isMultipart(c) {
		input.Name = optionalFormValue(c, "name")
		input.Description = optionalFormValue(c, "description")
		input.CategoryID = optionalFormValue(c, "categoryId")
	} else if err := bind(c, &input); err != nil {
		return response.Error(c, err)
	}

	image, err := imageFile(c, "image")
	if err != nil {
		return response.Error(c, err)
	}

	sub, err := h.subCategoryUseCase.Update(c.Request().Context(), c.Param("subcategoryId"), input, image)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "SubCategory updated successfully", sub)
}

func (h *SubCategoryHandler) Delete(c echo.Context) error {
	if err := h.subCategoryUseCase.Delete(c.Request().Context(), c.Param("subcategoryId")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "SubCategory deleted successfully", nil)
}

func (h *SubCategoryHandler) List(c echo.Context) error {
	return h.list(c, "")
}

func (h *SubCategoryHandler) ListByCategory(c echo.Context) error {
	return h.list(c, c.Param("categoryId"))
}

func (h *SubCategoryHandler) list(c echo.Context, categoryID string) error {
	pagination := utils.GetPaginationParams(c)

	subs, total, err := h.subCategoryUseCase.List(c.Request().Context(), categoryID, pagination)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, "SubCategories fetched successfully", subs, total, pagination.Page, pagination.Limit)
}

func (h *SubCategoryHandler) Get(c echo.Context) error {
	sub, err := h.subCategoryUseCase.Get(c.Request().Context(), c.Param("subcategoryId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "SubCategory fetched successfully", sub)
}
