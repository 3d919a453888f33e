package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus defines the type for order statuses.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// IsValidOrderStatus checks if the provided status string is a valid OrderStatus.
func IsValidOrderStatus(status string) bool {
	switch OrderStatus(status) {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// Order represents a customer order placed at a cafe table.
type Order struct {
	ID            int64           `json:"id"`
	CafeID        int64           `json:"cafe_id" db:"cafe_id"`
	TableNumber   int             `json:"table_number" db:"table_number"`
	Status        OrderStatus     `json:"status" db:"status"`
	TotalAmount   decimal.Decimal `json:"total_amount" db:"total_amount"`
	CustomerName  *string         `json:"customer_name,omitempty" db:"customer_name"`
	Notes         *string         `json:"notes,omitempty" db:"notes"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
	OrderItems    []OrderItem     `json:"order_items,omitempty"`
}

// OrderItem represents a single line item within an order.
type OrderItem struct {
	ID         int64           `json:"id"`
	OrderID    int64           `json:"order_id" db:"order_id"`
	MenuItemID int64           `json:"menu_item_id" db:"menu_item_id"`
	ItemName   string          `json:"item_name" db:"item_name"`
	Quantity   int             `json:"quantity" db:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price" db:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price" db:"total_price"`
	Notes      *string         `json:"notes,omitempty" db:"notes"`
	CreatedAt  time.Time       `json:"created_at" db:"created_at"`
}

// OrderFilters defines the available filters for querying orders.
type OrderFilters struct {
	TableNumber *int    `form:"table_number"`
	Status      *string `form:"status"`
	Date        *string `form:"date"` // expected format YYYY-MM-DD
	Page        int     `form:"page"`
	PageSize    int     `form:"page_size"`
}
