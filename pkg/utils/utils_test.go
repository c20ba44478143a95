package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	cases := map[string]string{
		"shoes":        "Shoes",
		"  SHOES  ":    "Shoes",
		"running SHOE": "Running shoe",
		"éclair":       "Éclair",
		"":             "",
		"   ":          "",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeName(in), "input %q", in)
	}
}

func TestNormalizeNameIsIdempotent(t *testing.T) {
	for _, in := range []string{"shoes", "T-SHIRTS", " kids wear", "a", "Ωmega"} {
		once := NormalizeName(in)
		assert.Equal(t, once, NormalizeName(once), "input %q", in)
	}
}

func TestColorKey(t *testing.T) {
	assert.Equal(t, "red", ColorKey(" Red "))
	assert.Equal(t, ColorKey("RED"), ColorKey("red"))
}

func TestGetPaginationParams(t *testing.T) {
	e := echo.New()

	tests := []struct {
		query  string
		page   int
		limit  int
		offset int
	}{
		{"", 1, 5, 0},
		{"?page=3&limit=10", 3, 10, 20},
		{"?page=-1&limit=abc", 1, 5, 0},
		{"?page=2&limit=1000", 2, 100, 100},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/items"+tt.query, nil)
		c := e.NewContext(req, httptest.NewRecorder())
		p := GetPaginationParams(c)
		assert.Equal(t, tt.page, p.Page, tt.query)
		assert.Equal(t, tt.limit, p.Limit, tt.query)
		assert.Equal(t, tt.offset, p.Offset, tt.query)
	}
}
