package handler

import (
	"net/http"

	"alertstream/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck handles GET /health
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// Root handles GET /
func Root(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"message": "Live Alerts API is running"})
}
