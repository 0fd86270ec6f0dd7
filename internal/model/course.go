package model

import "time"

// Course represents a course offered by one school (tenant) and taught
// by one of that school's teachers.
type Course struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	TenantID    uint      `json:"tenant_id" gorm:"index;not null"`
	CourseName  string    `json:"course_name" gorm:"type:varchar(100);not null"`
	Description string    `json:"description" gorm:"type:text"`
	TeacherID   uint      `json:"teacher_id" gorm:"index;not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
