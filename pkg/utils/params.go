package utils

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"
)

// ParseIDParam reads a numeric path parameter from the request. Route ids are
// system-generated integers; anything else is a malformed request.
func ParseIDParam(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s parameter: %q", name, c.Param(name))
	}
	return id, nil
}

// AtoiDefault parses s, falling back to def when s is absent or not a number.
// The parsed value is returned as-is even when non-positive.
func AtoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
