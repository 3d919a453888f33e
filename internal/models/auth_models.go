package models

import "time"

// User represents an account in the system. Platform admins have no cafe
// binding; owners and staff belong to exactly one cafe.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"` // never serialized
	Email        *string   `json:"email,omitempty" db:"email"`
	FullName     *string   `json:"full_name,omitempty" db:"full_name"`
	Role         string    `json:"role" db:"role"`
	CafeID       *int64    `json:"cafe_id,omitempty" db:"cafe_id"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// User roles used for route authorization.
const (
	RoleAdmin = "Admin" // platform operator
	RoleOwner = "Owner" // cafe owner
	RoleStaff = "Staff" // cafe staff
)

// IsValidRole checks whether the provided role name is recognized.
func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleOwner, RoleStaff:
		return true
	default:
		return false
	}
}

// Credentials for login requests.
type Credentials struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
