package response

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apperrors "nanocart/pkg/errors"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	StatusCode int         `json:"statusCode"`
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
}

type PaginatedResponse struct {
	CurrentPage int         `json:"currentPage"`
	TotalPages  int         `json:"totalPages"`
	TotalItems  int64       `json:"totalItems"`
	Items       interface{} `json:"items"`
}

func New(status int, success bool, message string, data interface{}) Response {
	return Response{
		StatusCode: status,
		Success:    success,
		Message:    message,
		Data:       data,
	}
}

func Success(c echo.Context, message string, data interface{}) error {
	return c.JSON(http.StatusOK, New(http.StatusOK, true, message, data))
}

func Created(c echo.Context, message string, data interface{}) error {
	return c.JSON(http.StatusCreated, New(http.StatusCreated, true, message, data))
}

// TotalPages rounds up; a zero limit yields zero pages.
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := int(total) / limit
	if int(total)%limit > 0 {
		pages++
	}
	return pages
}

func Paginated(c echo.Context, message string, items interface{}, total int64, page, limit int) error {
	return Success(c, message, PaginatedResponse{
		CurrentPage: page,
		TotalPages:  TotalPages(total, limit),
		TotalItems:  total,
		Items:       items,
	})
}

func Error(c echo.Context, err error) error {
	var validationErr validator.ValidationErrors
	if errors.As(err, &validationErr) {
		return handleValidationError(c, validationErr)
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return c.JSON(appErr.Status, New(appErr.Status, false, appErr.Message, nil))
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if m, ok := httpErr.Message.(string); ok {
			message = m
		}
		return c.JSON(httpErr.Code, New(httpErr.Code, false, message, nil))
	}

	return c.JSON(http.StatusInternalServerError, New(http.StatusInternalServerError, false, err.Error(), nil))
}

func handleValidationError(c echo.Context, validationErr validator.ValidationErrors) error {
	message := "Invalid input data"
	if len(validationErr) > 0 {
		message = fieldMessage(validationErr[0])
	}
	return c.JSON(http.StatusBadRequest, New(http.StatusBadRequest, false, message, nil))
}

func fieldMessage(err validator.FieldError) string {
	field := err.Field()
	if field != "" {
		field = strings.ToLower(field[:1]) + field[1:]
	}
	param := err.Param()

	switch err.Tag() {
	case "required":
		return field + " is required"
	case "min", "gte":
		return field + " must be at least " + param
	case "max", "lte":
		return field + " must be at most " + param
	case "len":
		return field + " must be " + param + " characters long"
	case "numeric":
		return field + " must contain digits only"
	case "oneof":
		return field + " must be one of: " + param
	case "email":
		return field + " must be a valid email address"
	default:
		return field + " is invalid"
	}
}
