package handler

import (
	"net/http"

	"school-service/internal/service"
	"school-service/pkg/logger"
	"school-service/pkg/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// StudentHandler serves the /students routes.
type StudentHandler struct {
	students *service.StudentService
}

func NewStudentHandler(students *service.StudentService) *StudentHandler {
	return &StudentHandler{students: students}
}

// List returns the current tenant's students.
func (h *StudentHandler) List(c echo.Context) error {
	log := logger.FromEcho(c)
	metrics.RecordEntityOperation("student", "list")

	claims, err := tenantClaims(c)
	if err != nil {
		return err
	}

	students, err := h.students.List(claims.TenantID)
	if err != nil {
		log.Error("Failed to list students", zap.Uint("tenant_id", claims.TenantID), zap.Error(err))
		return writeServiceError(c, log, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"students": students})
}

// Create creates a student for the current tenant.
func (h *StudentHandler) Create(c echo.Context) error {
	log := logger.FromEcho(c)
	metrics.RecordEntityOperation("student", "create")

	claims, err := tenantClaims(c)
	if err != nil {
		return err
	}

	var in service.StudentInput
	if err := c.Bind(&in); err != nil {
		log.Error("Failed to parse student request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	student, err := h.students.Create(claims.TenantID, in)
	if err != nil {
		return writeServiceError(c, log, err)
	}

	log.Info("Student created",
		zap.Uint("id", student.ID),
		zap.Uint("tenant_id", student.TenantID))
	return c.JSON(http.StatusCreated, student)
}

// Update updates the current tenant's student.
func (h *StudentHandler) Update(c echo.Context) error {
	log := logger.FromEcho(c)
	metrics.RecordEntityOperation("student", "update")

	claims, err := tenantClaims(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var in service.StudentInput
	if err := c.Bind(&in); err != nil {
		log.Error("Failed to parse student request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	student, err := h.students.Update(claims.TenantID, id, in)
	if err != nil {
		return writeServiceError(c, log, err)
	}

	log.Info("Student updated", zap.Uint("id", id), zap.Uint("tenant_id", claims.TenantID))
	return c.JSON(http.StatusOK, student)
}

// Delete removes the current tenant's student.
func (h *StudentHandler) Delete(c echo.Context) error {
	log := logger.FromEcho(c)
	metrics.RecordEntityOperation("student", "delete")

	claims, err := tenantClaims(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.students.Delete(claims.TenantID, id); err != nil {
		return writeServiceError(c, log, err)
	}

	log.Info("Student deleted", zap.Uint("id", id), zap.Uint("tenant_id", claims.TenantID))
	return c.JSON(http.StatusOK, echo.Map{"message": "student deleted"})
}
