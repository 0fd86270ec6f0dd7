package handler

import (
	"net/http"

	"school-service/internal/service"
	"school-service/internal/view"
	"school-service/pkg/logger"
	"school-service/pkg/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// CourseHandler serves the /courses routes. Listing also loads the
// tenant's teachers so the payload carries the id-keyed directory used
// to print each course's teacher name.
type CourseHandler struct {
	courses  *service.CourseService
	teachers *service.TeacherService
}

func NewCourseHandler(courses *service.CourseService, teachers *service.TeacherService) *CourseHandler {
	return &CourseHandler{courses: courses, teachers: teachers}
}

// List returns the current tenant's courses with the teacher directory.
func (h *CourseHandler) List(c echo.Context) error {
	log := logger.FromEcho(c)
	metrics.RecordEntityOperation("course", "list")

	claims, err := tenantClaims(c)
	if err != nil {
		return err
	}

	courses, err := h.courses.List(claims.TenantID)
	if err != nil {
		log.Error("Failed to list courses", zap.Uint("tenant_id", claims.TenantID), zap.Error(err))
		return writeServiceError(c, log, err)
	}
	teachers, err := h.teachers.List(claims.TenantID)
	if err != nil {
		log.Error("Failed to list teachers", zap.Uint("tenant_id", claims.TenantID), zap.Error(err))
		return writeServiceError(c, log, err)
	}

	return c.JSON(http.StatusOK, view.NewCourseList(courses, teachers))
}

// Create creates a course for the current tenant.
func (h *CourseHandler) Create(c echo.Context) error {
	log := logger.FromEcho(c)
	metrics.RecordEntityOperation("course", "create")

	claims, err := tenantClaims(c)
	if err != nil {
		return err
	}

	var in service.CourseInput
	if err := c.Bind(&in); err != nil {
		log.Error("Failed to parse course request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	course, err := h.courses.Create(claims.TenantID, in)
	if err != nil {
		return writeServiceError(c, log, err)
	}

	log.Info("Course created",
		zap.Uint("id", course.ID),
		zap.Uint("teacher_id", course.TeacherID),
		zap.Uint("tenant_id", course.TenantID))
	return c.JSON(http.StatusCreated, course)
}

// Update updates the current tenant's course.
func (h *CourseHandler) Update(c echo.Context) error {
	log := logger.FromEcho(c)
	metrics.RecordEntityOperation("course", "update")

	claims, err := tenantClaims(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var in service.CourseInput
	if err := c.Bind(&in); err != nil {
		log.Error("Failed to parse course request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	course, err := h.courses.Update(claims.TenantID, id, in)
	if err != nil {
		return writeServiceError(c, log, err)
	}

	log.Info("Course updated", zap.Uint("id", id), zap.Uint("tenant_id", claims.TenantID))
	return c.JSON(http.StatusOK, course)
}

// Delete removes the current tenant's course. What happens to dependent
// enrollments is decided by the configured referential policy.
func (h *CourseHandler) Delete(c echo.Context) error {
	log := logger.FromEcho(c)
	metrics.RecordEntityOperation("course", "delete")

	claims, err := tenantClaims(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.courses.Delete(claims.TenantID, id); err != nil {
		return writeServiceError(c, log, err)
	}

	log.Info("Course deleted", zap.Uint("id", id), zap.Uint("tenant_id", claims.TenantID))
	return c.JSON(http.StatusOK, echo.Map{"message": "course deleted"})
}
