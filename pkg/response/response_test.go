package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "nanocart/pkg/errors"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSuccessEnvelope(t *testing.T) {
	c, rec := newContext()
	require.NoError(t, Success(c, "ok", map[string]string{"id": "1"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, float64(200), body["statusCode"])
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "ok", body["message"])
	assert.NotNil(t, body["data"])
}

func TestCreatedEnvelope(t *testing.T) {
	c, rec := newContext()
	require.NoError(t, Created(c, "made", nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, float64(201), body["statusCode"])
	_, hasData := body["data"]
	assert.False(t, hasData)
}

func TestPaginated(t *testing.T) {
	c, rec := newContext()
	require.NoError(t, Paginated(c, "page", []int{1, 2}, 12, 2, 5))

	body := decode(t, rec)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["currentPage"])
	assert.Equal(t, float64(3), data["totalPages"])
	assert.Equal(t, float64(12), data["totalItems"])
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 5))
	assert.Equal(t, 1, TotalPages(5, 5))
	assert.Equal(t, 2, TotalPages(6, 5))
	assert.Equal(t, 0, TotalPages(6, 0))
}

func TestErrorMapsAppError(t *testing.T) {
	c, rec := newContext()
	require.NoError(t, Error(c, apperrors.Gone("OTP has expired")))

	assert.Equal(t, http.StatusGone, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, float64(410), body["statusCode"])
	assert.Equal(t, "OTP has expired", body["message"])
}

func TestErrorMapsValidation(t *testing.T) {
	type payload struct {
		PhoneNumber string `validate:"required"`
	}
	err := validator.New().Struct(payload{})
	require.Error(t, err)

	c, rec := newContext()
	require.NoError(t, Error(c, err))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "phoneNumber is required", decode(t, rec)["message"])
}

func TestErrorUnknownIs500(t *testing.T) {
	c, rec := newContext()
	require.NoError(t, Error(c, errors.New("boom")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "boom", decode(t, rec)["message"])
}
