package handler

import (
	"github.com/labstack/echo/v4"

	"nanocart/internal/domain/entity"
	"nanocart/internal/domain/service"
	"nanocart/internal/usecase"
	"nanocart/pkg/response"
)

type ItemDetailHandler struct {
	itemDetailUseCase *usecase.ItemDetailUseCase
}

func NewItemDetailHandler(itemDetailUseCase *usecase.ItemDetailUseCase) *ItemDetailHandler {
	return &ItemDetailHandler{
		itemDetailUseCase: itemDetailUseCase,
	}
}

// detailForm collects the fields shared by create and update. Only fields
// present in the form are set.
type detailForm struct {
	imagesByColor       []usecase.ColorBlockInput
	sizeChart           *[]entity.SizeChartRow
	howToMeasure        *[]map[string]string
	ppq                 *[]entity.PriceTier
	deliveryPincode     *[]int
	isSize              *bool
	isMultipleColor     *bool
	deliveryDescription *string
	about               *string
	returnPolicy        *string
}

func readDetailForm(c echo.Context) (*detailForm, error) {
	f := &detailForm{
		deliveryDescription: optionalFormValue(c, "deliveryDescription"),
		about:               optionalFormValue(c, "About"),
		returnPolicy:        optionalFormValue(c, "returnPolicy"),
	}
	var err error
	if _, err = formJSON(c, "imagesByColor", &f.imagesByColor); err != nil {
		return nil, err
	}
	if f.sizeChart, err = optionalJSON[[]entity.SizeChartRow](c, "sizeChart"); err != nil {
		return nil, err
	}
	if f.howToMeasure, err = optionalJSON[[]map[string]string](c, "howToMeasure"); err != nil {
		return nil, err
	}
	if f.ppq, err = optionalJSON[[]entity.PriceTier](c, "PPQ"); err != nil {
		return nil, err
	}
	if f.deliveryPincode, err = optionalJSON[[]int](c, "deliveryPincode"); err != nil {
		return nil, err
	}
	if f.isSize, err = optionalFormBool(c, "isSize"); err != nil {
		return nil, err
	}
	if f.isMultipleColor, err = optionalFormBool(c, "isMultipleColor"); err != nil {
		return nil, err
	}
	return f, nil
}

func optionalJSON[T any](c echo.Context, key string) (*T, error) {
	var v T
	present, err := formJSON(c, key, &v)
	if err != nil || !present {
		return nil, err
	}
	return &v, nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func (h *ItemDetailHandler) Create(c echo.Context) error {
	form, err := readDetailForm(c)
	if err != nil {
		return response.Error(c, err)
	}

	input := usecase.CreateItemDetailInput{
		ItemID:              formValue(c, "itemId"),
		ImagesByColor:       form.imagesByColor,
		SizeChart:           deref(form.sizeChart),
		HowToMeasure:        deref(form.howToMeasure),
		IsSize:              deref(form.isSize),
		IsMultipleColor:     deref(form.isMultipleColor),
		DeliveryDescription: deref(form.deliveryDescription),
		About:               deref(form.about),
		PPQ:                 deref(form.ppq),
		DeliveryPincode:     deref(form.deliveryPincode),
		ReturnPolicy:        deref(form.returnPolicy),
	}

	files, err := allImageFiles(c)
	if err != nil {
		return response.Error(c, err)
	}

	detail, err := h.itemDetailUseCase.Create(c.Request().Context(), input, files)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, "Item details created successfully", detail)
}

func (h *ItemDetailHandler) Update(c echo.Context) error {
	var input usecase.UpdateItemDetailInput
	var files []service.File

	if isMultipart(c) {
		form, err := readDetailForm(c)
		if err != nil {
			return response.Error(c, err)
		}
		input = usecase.UpdateItemDetailInput{
			ImagesByColor:       form.imagesByColor,
			SizeChart:           form.sizeChart,
			HowToMeasure:        form.howToMeasure,
			IsSize:              form.isSize,
			IsMultipleColor:     form.isMultipleColor,
			DeliveryDescription: form.deliveryDescription,
			About:               form.about,
			PPQ:                 form.ppq,
			DeliveryPincode:     form.deliveryPincode,
			ReturnPolicy:        form.returnPolicy,
		}
		if files, err = allImageFiles(c); err != nil {
			return response.Error(c, err)
		}
	} else if err := bind(c, &input); err != nil {
		return response.Error(c, err)
	}

	detail, err := h.itemDetailUseCase.Update(c.Request().Context(), c.Param("itemDetailsId"), input, files)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Item details updated successfully", detail)
}

func (h *ItemDetailHandler) Delete(c echo.Context) error {
	if err := h.itemDetailUseCase.Delete(c.Request().Context(), c.Param("itemDetailsId")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Item details deleted successfully", nil)
}

func (h *ItemDetailHandler) GetByItemID(c echo.Context) error {
	detail, err := h.itemDetailUseCase.GetByItemID(c.Request().Context(), c.Param("itemId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Item details fetched successfully", detail)
}

func (h *ItemDetailHandler) GetByID(c echo.Context) error {
	detail, err := h.itemDetailUseCase.GetByID(c.Request().Context(), c.Param("itemDetailsId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Item details fetched successfully", detail)
}
