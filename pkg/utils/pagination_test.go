package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func paramsFor(target string) PaginationParams {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return GetPaginationParams(e.NewContext(req, rec))
}

func TestGetPaginationParamsDefaults(t *testing.T) {
	params := paramsFor("/v1/admin/contact")

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, defaultPageSize, params.PageSize)
	assert.Equal(t, 0, params.Offset)
}

func TestGetPaginationParamsOffset(t *testing.T) {
	params := paramsFor("/v1/admin/bookings?page=3&limit=50")

	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 50, params.PageSize)
	assert.Equal(t, 100, params.Offset)
}

func TestGetPaginationParamsClampsBadValues(t *testing.T) {
	params := paramsFor("/v1/admin/bookings?page=-2&limit=9999")

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, defaultPageSize, params.PageSize)
	assert.Equal(t, 0, params.Offset)
}
