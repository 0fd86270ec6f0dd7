package model

import "time"

// Tenant represents a school. It is the ownership root for every other
// record in the system: teachers, students, courses and enrollments all
// carry the tenant's ID and are only visible within it.
type Tenant struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	SchoolName string    `json:"school_name" gorm:"type:varchar(100);not null"`
	Address    string    `json:"address" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
