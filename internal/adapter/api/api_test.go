package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nanocart/pkg/response"
)

type signupBody struct {
	PhoneNumber string `json:"phoneNumber" validate:"required,len=10,numeric"`
	Email       string `json:"email" validate:"required,email"`
}

func TestValidatorUsesJSONFieldNames(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	e.POST("/signup", func(c echo.Context) error {
		var body signupBody
		if err := c.Bind(&body); err != nil {
			return response.Error(c, err)
		}
		if err := c.Validate(&body); err != nil {
			return response.Error(c, err)
		}
		return response.Success(c, "ok", nil)
	})

	tests := []struct {
		body    string
		code    int
		message string
	}{
		{`{"phoneNumber":"123","email":"a@b.co"}`, http.StatusBadRequest, "phoneNumber must be 10 characters long"},
		{`{"phoneNumber":"9876543210"}`, http.StatusBadRequest, "email is required"},
		{`{"phoneNumber":"9876543210","email":"a@b.co"}`, http.StatusOK, "ok"},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(tt.body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		var got response.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, tt.code, rec.Code, tt.body)
		assert.Equal(t, tt.message, got.Message, tt.body)
	}
}

func TestHTTPErrorHandlerWrapsUnknownRoutes(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = HTTPErrorHandler

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	var got response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, http.StatusNotFound, got.StatusCode)
	assert.False(t, got.Success)
	assert.Equal(t, "Not Found", got.Message)
}
