package model

import "time"

// Enrollment links a student to a course within one tenant. TeacherID is
// denormalized from the course at enrollment time so rows can be listed
// without joins. A student may be enrolled in a course at most once per
// tenant; the composite unique index is the authority for that rule, the
// service-level pre-check only exists to give a friendly error first.
type Enrollment struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	TenantID       uint      `json:"tenant_id" gorm:"not null;uniqueIndex:idx_tenant_student_course"`
	StudentID      uint      `json:"student_id" gorm:"not null;uniqueIndex:idx_tenant_student_course"`
	CourseID       uint      `json:"course_id" gorm:"not null;uniqueIndex:idx_tenant_student_course"`
	TeacherID      uint      `json:"teacher_id" gorm:"index;not null"`
	EnrollmentDate string    `json:"enrollment_date" gorm:"type:varchar(10);not null"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
