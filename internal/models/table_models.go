package models

import "time"

// CafeTable represents a physical table in a cafe. Orders reference tables
// by number, which keys the per-table performance ranking.
type CafeTable struct {
	ID        int64     `json:"id"`
	CafeID    int64     `json:"cafe_id" db:"cafe_id"`
	Number    int       `json:"number" db:"number" binding:"required"`
	Seats     *int      `json:"seats,omitempty" db:"seats"`
	Status    string    `json:"status" db:"status"` // e.g. available, occupied, reserved
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Table statuses.
const (
	TableStatusAvailable = "available"
	TableStatusOccupied  = "occupied"
	TableStatusReserved  = "reserved"
)

// IsValidTableStatus checks if the provided status is a valid table status.
func IsValidTableStatus(status string) bool {
	switch status {
	case TableStatusAvailable, TableStatusOccupied, TableStatusReserved:
		return true
	default:
		return false
	}
}
