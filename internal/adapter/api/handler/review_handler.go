package handler

import (
	"github.com/labstack/echo/v4"

	"nanocart/internal/usecase"
	"nanocart/pkg/response"
)

type ReviewHandler struct {
	userReviewUseCase    *usecase.UserReviewUseCase
	partnerReviewUseCase *usecase.PartnerReviewUseCase
}

func NewReviewHandler(userReviewUseCase *usecase.UserReviewUseCase, partnerReviewUseCase *usecase.PartnerReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		userReviewUseCase:    userReviewUseCase,
		partnerReviewUseCase: partnerReviewUseCase,
	}
}

func (h *ReviewHandler) CreateUserReview(c echo.Context) error {
	var input usecase.CreateUserReviewInput
	if isMultipart(c) {
		rating, err := optionalFormFloat(c, "rating")
		if err != nil {
			return response.Error(c, err)
		}
		input = usecase.CreateUserReviewInput{
			ItemDetailID: formValue(c, "itemDetailId"),
			Rating:       rating,
			Review:       formValue(c, "review"),
			SizeBought:   formValue(c, "sizeBought"),
		}
		if err := c.Validate(&input); err != nil {
			return response.Error(c, err)
		}
	} else if err := bind(c, &input); err != nil {
		return response.Error(c, err)
	}

	files, err := imageFiles(c, "customerProductImage")
	if err != nil {
		return response.Error(c, err)
	}

	result, err := h.userReviewUseCase.Create(c.Request().Context(), getUserIDFromContext(c), input, files)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, "Rating and review added successfully", result)
}

func (h *ReviewHandler) DeleteUserReview(c echo.Context) error {
	result, err := h.userReviewUseCase.Delete(c.Request().Context(), getUserIDFromContext(c), c.Param("reviewId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Rating and review deleted successfully", result)
}

func (h *ReviewHandler) ListUserReviews(c echo.Context) error {
	summary, err := h.userReviewUseCase.ListByItemDetail(c.Request().Context(), c.Param("itemDetailId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Ratings and reviews fetched successfully", summary)
}

func (h *ReviewHandler) CreatePartnerReview(c echo.Context) error {
	var input usecase.CreatePartnerReviewInput
	if isMultipart(c) {
		rating, err := optionalFormFloat(c, "rating")
		if err != nil {
			return response.Error(c, err)
		}
		input = usecase.CreatePartnerReviewInput{
			ItemDetailID: formValue(c, "itemDetailId"),
			Rating:       rating,
			Comment:      formValue(c, "comment"),
		}
	} else if err := bind(c, &input); err != nil {
		return response.Error(c, err)
	}

	image, err := imageFile(c, "customerImage")
	if err != nil {
		return response.Error(c, err)
	}

	book, err := h.partnerReviewUseCase.Create(c.Request().Context(), getUserIDFromContext(c), input, image)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, "Review created successfully", book)
}

func (h *ReviewHandler) UpdatePartnerReview(c echo.Context) error {
	var input usecase.UpdatePartnerReviewInput
	if isMultipart(c) {
		rating, err := optionalFormFloat(c, "rating")
		if err != nil {
			return response.Error(c, err)
		}
		input = usecase.UpdatePartnerReviewInput{
			Rating:  rating,
			Comment: optionalFormValue(c, "comment"),
		}
	} else if err := bind(c, &input); err != nil {
		return response.Error(c, err)
	}

	image, err := imageFile(c, "customerImage")
	if err != nil {
		return response.Error(c, err)
	}

	book, err := h.partnerReviewUseCase.Update(c.Request().Context(), getUserIDFromContext(c), c.Param("reviewId"), input, image)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Review updated successfully", book)
}

func (h *ReviewHandler) DeletePartnerReview(c echo.Context) error {
	book, err := h.partnerReviewUseCase.Delete(c.Request().Context(), getUserIDFromContext(c), c.Param("reviewId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Review deleted successfully", book)
}

func (h *ReviewHandler) GetOwnPartnerReviews(c echo.Context) error {
	book, err := h.partnerReviewUseCase.GetOwn(c.Request().Context(), getUserIDFromContext(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Reviews fetched successfully", book)
}

func (h *ReviewHandler) ListPartnerReviews(c echo.Context) error {
	stats, err := h.partnerReviewUseCase.ListAll(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Reviews fetched successfully", stats)
}
