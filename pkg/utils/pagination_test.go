package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func paginationContext(query string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/products?"+query, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestGetPaginationParamsDefaults(t *testing.T) {
	params := GetPaginationParams(paginationContext(""))

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 9, params.PageSize)
	assert.Equal(t, 0, params.Offset)
}

func TestGetPaginationParamsExplicit(t *testing.T) {
	params := GetPaginationParams(paginationContext("page=3&limit=20"))

	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 20, params.PageSize)
	assert.Equal(t, 40, params.Offset)
}

func TestGetPaginationParamsRejectsGarbage(t *testing.T) {
	params := GetPaginationParams(paginationContext("page=abc&limit=-5"))

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 9, params.PageSize)
}

func TestGetPaginationParamsCapsLimit(t *testing.T) {
	params := GetPaginationParams(paginationContext("limit=500"))

	assert.Equal(t, 9, params.PageSize)
}
