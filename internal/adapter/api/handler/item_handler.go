package handler

import (
	"sort"

	"github.com/labstack/echo/v4"

	"nanocart/internal/domain/entity"
	"nanocart/internal/domain/repository"
	"nanocart/internal/usecase"
	"nanocart/pkg/errors"
	"nanocart/pkg/response"
	"nanocart/pkg/utils"
)

type ItemHandler struct {
	itemUseCase *usecase.ItemUseCase
}

func NewItemHandler(itemUseCase *usecase.ItemUseCase) *ItemHandler {
	return &ItemHandler{
		itemUseCase: itemUseCase,
	}
}

func (h *ItemHandler) Create(c echo.Context) error {
	input := usecase.CreateItemInput{
		Name:          formValue(c, "name"),
		Description:   formValue(c, "description"),
		CategoryID:    formValue(c, "categoryId"),
		SubCategoryID: formValue(c, "subCategoryId"),
	}

	mrp, err := optionalFormFloat(c, "MRP")
	if err != nil {
		return response.Error(c, err)
	}
	if mrp != nil {
		input.MRP = *mrp
	}
	stock, err := optionalFormInt(c, "totalStock")
	if err != nil {
		return response.Error(c, err)
	}
	if stock != nil {
		input.TotalStock = *stock
	}
	if input.DiscountedPrice, err = optionalFormFloat(c, "discountedPrice"); err != nil {
		return response.Error(c, err)
	}
	if _, err := formJSON(c, "filters", &input.Filters); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&input); err != nil {
		return response.Error(c, err)
	}

	image, err := imageFile(c, "image")
	if err != nil {
		return response.Error(c, err)
	}

	item, err := h.itemUseCase.Create(c.Request().Context(), input, image)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, "Item created successfully", item)
}

func (h *ItemHandler) Update(c echo.Context) error {
	var input usecase.UpdateItemInput
	if isMultipart(c) {
		var err error
		input.Name = optionalFormValue(c, "name")
		input.Description = optionalFormValue(c, "description")
		input.CategoryID = optionalFormValue(c, "categoryId")
		input.SubCategoryID = optionalFormValue(c, "subCategoryId")
		if input.MRP, err = optionalFormFloat(c, "MRP"); err != nil {
			return response.Error(c, err)
		}
		if input.TotalStock, err = optionalFormInt(c, "totalStock"); err != nil {
			return response.Error(c, err)
		}
		if input.DiscountedPrice, err = optionalFormFloat(c, "discountedPrice"); err != nil {
			return response.Error(c, err)
		}
		var filters []entity.ItemFilter
		present, err := formJSON(c, "filters", &filters)
		if err != nil {
			return response.Error(c, err)
		}
		if present {
			input.Filters = &filters
		}
	} else if err := bind(c, &input); err != nil {
		return response.Error(c, err)
	}

	image, err := imageFile(c, "image")
	if err != nil {
		return response.Error(c, err)
	}

	item, err := h.itemUseCase.Update(c.Request().Context(), c.Param("itemId"), input, image)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Item updated successfully", item)
}

func (h *ItemHandler) Delete(c echo.Context) error {
	if err := h.itemUseCase.Delete(c.Request().Context(), c.Param("itemId")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Item deleted successfully", nil)
}

func (h *ItemHandler) Get(c echo.Context) error {
	item, err := h.itemUseCase.Get(c.Request().Context(), c.Param("itemId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Item fetched successfully", item)
}

func (h *ItemHandler) List(c echo.Context) error {
	return h.list(c, repository.ItemQuery{})
}

func (h *ItemHandler) ListByCategory(c echo.Context) error {
	return h.list(c, repository.ItemQuery{CategoryID: c.Param("categoryId")})
}

func (h *ItemHandler) ListBySubCategory(c echo.Context) error {
	return h.list(c, repository.ItemQuery{SubCategoryID: c.Param("subcategoryId")})
}

func (h *ItemHandler) list(c echo.Context, query repository.ItemQuery) error {
	pagination := utils.GetPaginationParams(c)

	items, total, err := h.itemUseCase.List(c.Request().Context(), query, pagination)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, "Items fetched successfully", items, total, pagination.Page, pagination.Limit)
}

// Filter treats every query parameter other than page and limit as a
// key=value filter pair; all pairs must match.
func (h *ItemHandler) Filter(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	params := c.QueryParams()
	keys := make([]string, 0, len(params))
	for key := range params {
		if key == "page" || key == "limit" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var filters []entity.ItemFilter
	for _, key := range keys {
		for _, value := range params[key] {
			if value == "" {
				continue
			}
			filters = append(filters, entity.ItemFilter{Key: key, Value: value})
		}
	}
	if len(filters) == 0 {
		return response.Error(c, errors.BadRequest("At least one filter is required", nil))
	}

	items, total, err := h.itemUseCase.Filter(c.Request().Context(), filters, pagination)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, "Filtered items fetched successfully", items, total, pagination.Page, pagination.Limit)
}
