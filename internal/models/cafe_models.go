package models

import "time"

// CafePlan defines the subscription tier of a cafe tenant.
type CafePlan string

const (
	PlanBasic CafePlan = "basic"
	PlanPro   CafePlan = "pro"
)

// IsValidCafePlan checks if the provided plan string is a valid CafePlan.
func IsValidCafePlan(plan string) bool {
	switch CafePlan(plan) {
	case PlanBasic, PlanPro:
		return true
	default:
		return false
	}
}

// Cafe represents one tenant account in the platform.
type Cafe struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name" db:"name" binding:"required"`
	Address   *string   `json:"address,omitempty" db:"address"`
	Phone     *string   `json:"phone,omitempty" db:"phone"`
	Plan      CafePlan  `json:"plan" db:"plan"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CafeFilters defines the available filters for querying cafes.
type CafeFilters struct {
	Plan     *string `form:"plan"`
	IsActive *bool   `form:"is_active"`
	Page     int     `form:"page"`
	PageSize int     `form:"page_size"`
}
