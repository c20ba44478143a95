package handler

import (
	"github.com/labstack/echo/v4"

	"nanocart/internal/usecase"
	"nanocart/pkg/response"
)

type PartnerHandler struct {
	partnerUseCase *usecase.PartnerUseCase
}

func NewPartnerHandler(partnerUseCase *usecase.PartnerUseCase) *PartnerHandler {
	return &PartnerHandler{
		partnerUseCase: partnerUseCase,
	}
}

func (h *PartnerHandler) Signup(c echo.Context) error {
	input := usecase.PartnerSignupInput{
		Name:        formValue(c, "name"),
		PhoneNumber: formValue(c, "phoneNumber"),
		Email:       formValue(c, "email"),
		ShopName:    formValue(c, "shopName"),
		GSTNumber:   formValue(c, "gstNumber"),
		PANNumber:   formValue(c, "panNumber"),
		ShopAddress: formValue(c, "shopAddress"),
		Pincode:     formValue(c, "pincode"),
		TownCity:    formValue(c, "townCity"),
		State:       formValue(c, "state"),
	}
	if err := c.Validate(&input); err != nil {
		return response.Error(c, err)
	}

	image, err := imageFile(c, "imageShop")
	if err != nil {
		return response.Error(c, err)
	}

	account, err := h.partnerUseCase.Signup(c.Request().Context(), input, image)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, "Partner registered successfully, awaiting admin verification", account)
}

func (h *PartnerHandler) Verify(c echo.Context) error {
	result, err := h.partnerUseCase.Verify(c.Request().Context(), c.Param("partnerId"))
	if err != nil {
		return response.Error(c, err)
	}

	setBearer(c, result.Token)
	return response.Success(c, "Partner verified successfully", result)
}

func (h *PartnerHandler) GetProfile(c echo.Context) error {
	account, err := h.partnerUseCase.GetProfile(c.Request().Context(), getUserIDFromContext(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Partner profile fetched successfully", account)
}

func (h *PartnerHandler) UpdateProfile(c echo.Context) error {
	var input usecase.UpdatePartnerProfileInput
	if isMultipart(c) {
		input = usecase.UpdatePartnerProfileInput{
			Name:        optionalFormValue(c, "name"),
			Email:       optionalFormValue(c, "email"),
			ShopName:    optionalFormValue(c, "shopName"),
			GSTNumber:   optionalFormValue(c, "gstNumber"),
			PANNumber:   optionalFormValue(c, "panNumber"),
			ShopAddress: optionalFormValue(c, "shopAddress"),
			Pincode:     optionalFormValue(c, "pincode"),
			TownCity:    optionalFormValue(c, "townCity"),
			State:       optionalFormValue(c, "state"),
		}
	} else if err := bind(c, &input); err != nil {
		return response.Error(c, err)
	}

	image, err := imageFile(c, "imageShop")
	if err != nil {
		return response.Error(c, err)
	}

	account, err := h.partnerUseCase.UpdateProfile(c.Request().Context(), getUserIDFromContext(c), input, image)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Partner profile updated successfully", account)
}
