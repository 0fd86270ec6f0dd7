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

// EnrollmentHandler serves the /enrollments routes. Listing bundles the
// student, course and teacher directories so an enrollment row can be
// rendered without further lookups.
type EnrollmentHandler struct {
	enrollments *service.EnrollmentService
	students    *service.StudentService
	courses     *service.CourseService
	teachers    *service.TeacherService
}

func NewEnrollmentHandler(
	enrollments *service.EnrollmentService,
	students *service.StudentService,
	courses *service.CourseService,
	teachers *service.TeacherService,
) *EnrollmentHandler {
	return &EnrollmentHandler{
		enrollments: enrollments,
		students:    students,
		courses:     courses,
		teachers:    teachers,
	}
}

// List returns the current tenant's enrollments with lookup directories.
func (h *EnrollmentHandler) List(c echo.Context) error {
	log := logger.FromEcho(c)
	metrics.RecordEntityOperation("enrollment", "list")

	claims, err := tenantClaims(c)
	if err != nil {
		return err
	}
	tenantID := claims.TenantID

	enrollments, err := h.enrollments.List(tenantID)
	if err != nil {
		log.Error("Failed to list enrollments", zap.Uint("tenant_id", tenantID), zap.Error(err))
		return writeServiceError(c, log, err)
	}
	students, err := h.students.List(tenantID)
	if err != nil {
		return writeServiceError(c, log, err)
	}
	courses, err := h.courses.List(tenantID)
	if err != nil {
		return writeServiceError(c, log, err)
	}
	teachers, err := h.teachers.List(tenantID)
	if err != nil {
		return writeServiceError(c, log, err)
	}

	return c.JSON(http.StatusOK, view.NewEnrollmentList(enrollments, students, courses, teachers))
}

// Create enrolls a student in a course for the current tenant.
func (h *EnrollmentHandler) Create(c echo.Context) error {
	log := logger.FromEcho(c)
	metrics.RecordEntityOperation("enrollment", "create")

	claims, err := tenantClaims(c)
	if err != nil {
		return err
	}

	var in service.EnrollmentInput
	if err := c.Bind(&in); err != nil {
		log.Error("Failed to parse enrollment request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	enrollment, err := h.enrollments.Create(claims.TenantID, in)
	if err != nil {
		return writeServiceError(c, log, err)
	}

	log.Info("Enrollment created",
		zap.Uint("id", enrollment.ID),
		zap.Uint("student_id", enrollment.StudentID),
		zap.Uint("course_id", enrollment.CourseID),
		zap.Uint("tenant_id", enrollment.TenantID))
	return c.JSON(http.StatusCreated, enrollment)
}

// Update updates the current tenant's enrollment.
func (h *EnrollmentHandler) Update(c echo.Context) error {
	log := logger.FromEcho(c)
	metrics.RecordEntityOperation("enrollment", "update")

	claims, err := tenantClaims(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var in service.EnrollmentInput
	if err := c.Bind(&in); err != nil {
		log.Error("Failed to parse enrollment request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	enrollment, err := h.enrollments.Update(claims.TenantID, id, in)
	if err != nil {
		return writeServiceError(c, log, err)
	}

	log.Info("Enrollment updated", zap.Uint("id", id), zap.Uint("tenant_id", claims.TenantID))
	return c.JSON(http.StatusOK, enrollment)
}

// Delete removes the current tenant's enrollment.
func (h *EnrollmentHandler) Delete(c echo.Context) error {
	log := logger.FromEcho(c)
	metrics.RecordEntityOperation("enrollment", "delete")

	claims, err := tenantClaims(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.enrollments.Delete(claims.TenantID, id); err != nil {
		return writeServiceError(c, log, err)
	}

	log.Info("Enrollment deleted", zap.Uint("id", id), zap.Uint("tenant_id", claims.TenantID))
	return c.JSON(http.StatusOK, echo.Map{"message": "enrollment deleted"})
}
