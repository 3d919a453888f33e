package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportPeriod selects the time resolution of a sales report.
type ReportPeriod string

const (
	// PeriodDay buckets one calendar day by hour (24 buckets).
	PeriodDay ReportPeriod = "day"
	// PeriodMonth buckets one calendar month by day (28-31 buckets).
	PeriodMonth ReportPeriod = "month"
	// PeriodYear buckets one calendar year by month (12 buckets).
	PeriodYear ReportPeriod = "year"
)

// Bucket is one time-unit slot of a report series. Buckets are created in
// chronological order covering the whole window, including slots with no
// activity.
type Bucket struct {
	Label      string          `json:"label"`
	OrderIndex int             `json:"order_index"`
	Revenue    decimal.Decimal `json:"revenue"`
	OrderCount int             `json:"order_count"`
}

// ItemSales accumulates per-item sales over a report window. Quantity counts
// every non-cancelled order; revenue only completed ones.
type ItemSales struct {
	MenuItemID   int64           `json:"menu_item_id"`
	Name         string          `json:"name"`
	QuantitySold int             `json:"quantity_sold"`
	Revenue      decimal.Decimal `json:"revenue"`
}

// StatusCount is one entry of the order status distribution.
type StatusCount struct {
	Status OrderStatus `json:"status"`
	Count  int         `json:"count"`
}

// TableSales accumulates per-table order counts and completed revenue.
type TableSales struct {
	TableNumber int             `json:"table_number"`
	OrderCount  int             `json:"order_count"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// SalesReport is the full read model of a period sales report.
type SalesReport struct {
	CafeID             int64           `json:"cafe_id"`
	Period             ReportPeriod    `json:"period"`
	WindowStart        time.Time       `json:"window_start"`
	WindowEnd          time.Time       `json:"window_end"`
	Buckets            []Bucket        `json:"buckets"`
	TotalRevenue       decimal.Decimal `json:"total_revenue"`
	TotalOrders        int             `json:"total_orders"`
	TopItems           []ItemSales     `json:"top_items"`
	StatusDistribution []StatusCount   `json:"status_distribution"`
	TablePerformance   []TableSales    `json:"table_performance"`
}

// MenuQuadrant names one cell of the menu engineering matrix.
type MenuQuadrant string

const (
	QuadrantStar      MenuQuadrant = "Star"      // high popularity, high margin
	QuadrantPlowhorse MenuQuadrant = "Plowhorse" // high popularity, low margin
	QuadrantPuzzle    MenuQuadrant = "Puzzle"    // low popularity, high margin
	QuadrantDog       MenuQuadrant = "Dog"       // low popularity, low margin
)

// ProfitabilityPoint is one sold menu item plotted on the matrix. Derived
// once per report request and never mutated afterward.
type ProfitabilityPoint struct {
	MenuItemID    int64           `json:"menu_item_id"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	QuantitySold  int             `json:"quantity_sold"`
	Revenue       decimal.Decimal `json:"revenue"`
	Profit        decimal.Decimal `json:"profit"`
	MarginPerItem decimal.Decimal `json:"margin_per_item"`
	Quadrant      MenuQuadrant    `json:"quadrant"`
}

// MenuEngineeringReport carries the classified points plus the two threshold
// means, so the dashboard can draw the reference lines.
type MenuEngineeringReport struct {
	CafeID        int64                `json:"cafe_id"`
	Period        ReportPeriod         `json:"period"`
	WindowStart   time.Time            `json:"window_start"`
	WindowEnd     time.Time            `json:"window_end"`
	Points        []ProfitabilityPoint `json:"points"`
	AvgPopularity float64              `json:"avg_popularity"`
	AvgMargin     decimal.Decimal      `json:"avg_margin"`
}

// PlanRevenue is the per-tier breakdown of platform subscription revenue.
type PlanRevenue struct {
	Plan      CafePlan        `json:"plan"`
	CafeCount int             `json:"cafe_count"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// PlatformRevenueReport totals subscription revenue across tenants. This
// figure is independent of transactional revenue and is never summed into it.
type PlatformRevenueReport struct {
	Plans        []PlanRevenue   `json:"plans"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// DashboardSummary holds the key metrics shown on the cafe dashboard.
type DashboardSummary struct {
	CafeID          int64           `json:"cafe_id"`
	TotalSalesToday decimal.Decimal `json:"total_sales_today"`
	OrdersToday     int             `json:"orders_today"`
	PendingOrders   int             `json:"pending_orders"`
	PreparingOrders int             `json:"preparing_orders"`
	TotalSalesMonth decimal.Decimal `json:"total_sales_month"`
	OrdersMonth     int             `json:"orders_month"`
	TopItemToday    *ItemSales      `json:"top_item_today,omitempty"`
}
