package handler

import (
	"net/http"

	"school-service/internal/service"
	"school-service/pkg/logger"
	"school-service/pkg/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// TeacherHandler serves the /teachers routes.
type TeacherHandler struct {
	teachers *service.TeacherService
}

func NewTeacherHandler(teachers *service.TeacherService) *TeacherHandler {
	return &TeacherHandler{teachers: teachers}
}

// List returns the current tenant's teachers.
func (h *TeacherHandler) List(c echo.Context) error {
	log := logger.FromEcho(c)
	metrics.RecordEntityOperation("teacher", "list")

	claims, err := tenantClaims(c)
	if err != nil {
		return err
	}

	teachers, err := h.teachers.List(claims.TenantID)
	if err != nil {
		log.Error("Failed to list teachers", zap.Uint("tenant_id", claims.TenantID), zap.Error(err))
		return writeServiceError(c, log, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"teachers": teachers})
}

// Create creates a teacher for the current tenant.
func (h *TeacherHandler) Create(c echo.Context) error {
	log := logger.FromEcho(c)
	metrics.RecordEntityOperation("teacher", "create")

	claims, err := tenantClaims(c)
	if err != nil {
		return err
	}

	var in service.TeacherInput
	if err := c.Bind(&in); err != nil {
		log.Error("Failed to parse teacher request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	teacher, err := h.teachers.Create(claims.TenantID, in)
	if err != nil {
		return writeServiceError(c, log, err)
	}

	log.Info("Teacher created",
		zap.Uint("id", teacher.ID),
		zap.Uint("tenant_id", teacher.TenantID))
	return c.JSON(http.StatusCreated, teacher)
}

// Update updates the current tenant's teacher.
func (h *TeacherHandler) Update(c echo.Context) error {
	log := logger.FromEcho(c)
	metrics.RecordEntityOperation("teacher", "update")

	claims, err := tenantClaims(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var in service.TeacherInput
	if err := c.Bind(&in); err != nil {
		log.Error("Failed to parse teacher request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	teacher, err := h.teachers.Update(claims.TenantID, id, in)
	if err != nil {
		return writeServiceError(c, log, err)
	}

	log.Info("Teacher updated", zap.Uint("id", id), zap.Uint("tenant_id", claims.TenantID))
	return c.JSON(http.StatusOK, teacher)
}

// Delete removes the current tenant's teacher.
func (h *TeacherHandler) Delete(c echo.Context) error {
	log := logger.FromEcho(c)
	metrics.RecordEntityOperation("teacher", "delete")

	claims, err := tenantClaims(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.teachers.Delete(claims.TenantID, id); err != nil {
		return writeServiceError(c, log, err)
	}

	log.Info("Teacher deleted", zap.Uint("id", id), zap.Uint("tenant_id", claims.TenantID))
	return c.JSON(http.StatusOK, echo.Map{"message": "teacher deleted"})
}
