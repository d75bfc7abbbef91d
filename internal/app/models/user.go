package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Email     string    `json:"email" db:"email" example:"member@classbook.app"`
	Name      string    `json:"name" db:"name" example:"Jane Doe"`
	PhotoURL  string    `json:"photoUrl" db:"photo_url" example:"https://i.pravatar.cc/150"`
	Role      RoleType  `json:"role" db:"role_type" example:"none"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`
}

// IsInstructor reports whether the user holds the instructor role
func (u *User) IsInstructor() bool {
	return u != nil && u.Role == RoleInstructor
}
