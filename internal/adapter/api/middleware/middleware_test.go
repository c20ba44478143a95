package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nanocart/internal/domain/entity"
	"nanocart/internal/domain/service"
	"nanocart/internal/infrastructure/metrics"
	"nanocart/pkg/response"
)

type stubTokens map[string]*service.Claims

func (s stubTokens) Issue(service.Claims) (string, error) { return "", nil }

func (s stubTokens) Verify(token string) (*service.Claims, error) {
	switch token {
	case "expired":
		return nil, service.ErrTokenExpired
	}
	if claims, ok := s[token]; ok {
		return claims, nil
	}
	return nil, service.ErrTokenInvalid
}

var tokens = stubTokens{
	"user":     {UserID: "u1", Role: entity.RoleUser},
	"promoted": {UserID: "u2", Role: entity.RoleUser, IsPartner: true},
	"partner":  {PartnerID: "p1", Role: entity.RolePartner},
	"admin":    {AdminID: "a1", Role: entity.RoleAdmin},
}

func serve(t *testing.T, e *echo.Echo, token string) (int, response.Response) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func okHandler(c echo.Context) error {
	return response.Success(c, "ok", map[string]string{"uid": c.Get(ContextKeyUID).(string)})
}

func TestAuthenticateRejections(t *testing.T) {
	e := echo.New()
	e.GET("/secure", okHandler, NewAuthMiddleware(tokens).Authenticate)

	tests := []struct {
		header  string
		message string
	}{
		{"", "Token is Missing"},
		{"Basic abc", "Token is Missing"},
		{"Bearer ", "Token is Missing"},
		{"Bearer garbage", "Token is Invalid"},
		{"Bearer expired", "Token has Expired"},
	}
	for _, tt := range tests {
		code, body := serve(t, e, tt.header)
		assert.Equal(t, http.StatusUnauthorized, code, tt.header)
		assert.Equal(t, http.StatusUnauthorized, body.StatusCode)
		assert.False(t, body.Success)
		assert.Equal(t, tt.message, body.Message, tt.header)
	}

	code, body := serve(t, e, "Bearer partner")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]interface{}{"uid": "p1"}, body.Data)
}

func TestRoleGates(t *testing.T) {
	m := NewAuthMiddleware(tokens)

	tests := []struct {
		gate    echo.MiddlewareFunc
		token   string
		code    int
		message string
	}{
		{m.AdminOnly, "admin", http.StatusOK, "ok"},
		{m.AdminOnly, "user", http.StatusForbidden, "Admin access required"},
		{m.PartnerOnly, "partner", http.StatusOK, "ok"},
		{m.PartnerOnly, "admin", http.StatusForbidden, "Partner access required"},
		{m.UserOnly, "user", http.StatusOK, "ok"},
		{m.UserOnly, "promoted", http.StatusForbidden, "User access required"},
		{m.UserOnly, "partner", http.StatusForbidden, "User access required"},
	}
	for _, tt := range tests {
		e := echo.New()
		e.GET("/secure", okHandler, m.Authenticate, tt.gate)
		code, body := serve(t, e, "Bearer "+tt.token)
		assert.Equal(t, tt.code, code, tt.token)
		assert.Equal(t, tt.message, body.Message, tt.token)
	}
}

func TestMetricsUsesRouteTemplate(t *testing.T) {
	reg := prometheus.NewRegistry()
	e := echo.New()
	e.Use(Metrics(metrics.NewHTTPMetrics(reg)))
	e.GET("/items/:id", func(c echo.Context) error { return response.Success(c, "ok", nil) })

	for _, id := range []string{"a", "b", "c"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/"+id, nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	assert.Equal(t, 1, testutil.CollectAndCount(reg, "http_requests_total"))
}
