package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuCategory groups menu items within a cafe.
type MenuCategory struct {
	ID          int64     `json:"id"`
	CafeID      int64     `json:"cafe_id" db:"cafe_id"`
	Name        string    `json:"name" db:"name" binding:"required"`
	Description *string   `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// MenuItem represents a sellable item on a cafe's menu. Price is the sale
// price, CostPrice the ingredient cost; the spread between the two drives
// the menu engineering matrix.
type MenuItem struct {
	ID          int64           `json:"id"`
	CafeID      int64           `json:"cafe_id" db:"cafe_id"`
	CategoryID  *int64          `json:"category_id,omitempty" db:"category_id"`
	Name        string          `json:"name" db:"name" binding:"required"`
	Description *string         `json:"description,omitempty" db:"description"`
	Price       decimal.Decimal `json:"price" db:"price"`
	CostPrice   decimal.Decimal `json:"cost_price" db:"cost_price"`
	ImageURL    *string         `json:"image_url,omitempty" db:"image_url"`
	IsAvailable bool            `json:"is_available" db:"is_available"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" db:"updated_at"`
	Category    *MenuCategory   `json:"category,omitempty"` // for joined reads
}

// MenuItemFilters defines the available filters for querying menu items.
type MenuItemFilters struct {
	CategoryID  *int64 `form:"category_id"`
	IsAvailable *bool  `form:"is_available"`
	Search      string `form:"search"`
	Page        int    `form:"page"`
	PageSize    int    `form:"page_size"`
}
