package repository

import (
	"school-service/internal/model"

	"gorm.io/gorm"
)

// EnrollmentExists reports whether the tenant already has an enrollment
// for the (student, course) pair. excludeID skips the row being edited so
// that saving an enrollment back unchanged is not flagged as a duplicate;
// pass 0 on create.
func EnrollmentExists(db *gorm.DB, tenantID, studentID, courseID, excludeID uint) (bool, error) {
	var count int64
	result := db.Model(&model.Enrollment{}).
		Where("tenant_id = ? AND student_id = ? AND course_id = ?", tenantID, studentID, courseID).
		Where("id <> ?", excludeID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
