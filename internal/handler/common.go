package handler

import (
	"errors"
	"net/http"
	"strconv"

	"school-service/internal/service"
	"school-service/pkg/jwtutil"
	"school-service/pkg/logger"
	"school-service/pkg/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// tenantClaims pulls the authenticated claims out of the Echo context.
// The tenant ID used for every repository call comes from here; request
// bodies and query strings are never consulted for it.
func tenantClaims(c echo.Context) (*jwtutil.UserClaims, error) {
	claims, ok := c.Get("user").(*jwtutil.UserClaims)
	if !ok {
		logger.FromEcho(c).Error("Failed to get user claims from context")
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	if claims.TenantID == 0 {
		logger.FromEcho(c).Error("Tenant ID is missing from user claims")
		metrics.TenantContextMissingCounter.Inc()
		return nil, echo.NewHTTPError(http.StatusBadRequest, "tenant context required")
	}
	return claims, nil
}

// pathID parses the :id route parameter.
func pathID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

// writeServiceError maps service failures onto the API's status codes:
// 422 with a field map for validation, 404 for missing or cross-tenant
// rows, 409 for duplicate enrollments and restricted deletes.
func writeServiceError(c echo.Context, log *zap.Logger, err error) error {
	var validationErr *service.ValidationError
	var duplicateErr *service.DuplicateEnrollmentError
	var dependentsErr *service.DependentRowsError

	switch {
	case errors.As(err, &validationErr):
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"errors": validationErr.Fields})
	case errors.As(err, &duplicateErr):
		metrics.DuplicateEnrollmentCounter.Inc()
		return c.JSON(http.StatusConflict, echo.Map{
			"errors": map[string]string{duplicateErr.Field(): duplicateErr.Message()},
		})
	case errors.As(err, &dependentsErr):
		return c.JSON(http.StatusConflict, echo.Map{"error": dependentsErr.Error()})
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	default:
		log.Error("Request failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}
}
