package handler

import (
	"net/http"

	"school-service/pkg/logger"

	"github.com/labstack/echo/v4"
)

// Hello is the public liveness endpoint.
func Hello(c echo.Context) error {
	log := logger.FromEcho(c)
	log.Debug("Hello from school-service")
	return c.JSON(http.StatusOK, echo.Map{"message": "hello from school-service"})
}
