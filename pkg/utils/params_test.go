package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIDParam(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/customers/42", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("42")

	id, err := ParseIDParam(c, "id")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	c.SetParamValues("forty-two")
	_, err = ParseIDParam(c, "id")
	assert.Error(t, err)
}

func TestAtoiDefault(t *testing.T) {
	assert.Equal(t, 1, AtoiDefault("", 1))
	assert.Equal(t, 10, AtoiDefault("abc", 10))
	assert.Equal(t, 3, AtoiDefault("3", 1))
	// Explicit non-positive values pass through untouched.
	assert.Equal(t, -2, AtoiDefault("-2", 1))
	assert.Equal(t, 0, AtoiDefault("0", 1))
}
