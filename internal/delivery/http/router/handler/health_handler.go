// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthCheck is the public liveness probe.
func HealthCheck(c echo.Context) error {
	return c.String(http.StatusOK, "foodcourt marketplace server is running")
}
