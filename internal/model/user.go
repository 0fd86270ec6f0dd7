package model

import "time"

// User is an account belonging to exactly one tenant. The tenant ID is
// fixed at registration and carried into the JWT claims at login; it is
// never taken from request input after that.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	TenantID     uint      `json:"tenant_id" gorm:"index;not null"`
	Email        string    `json:"email" gorm:"type:varchar(100);uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"type:varchar(100);not null"`
	Role         string    `json:"role" gorm:"type:varchar(50);not null;default:'admin'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
