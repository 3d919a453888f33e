package services

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/thenitintundwal/table-tap-sub000/internal/models"
)

// topItemsLimit is how many entries the top-item ranking keeps.
const topItemsLimit = 5

// statusDisplayOrder is the fixed order of the status distribution.
var statusDisplayOrder = []models.OrderStatus{
	models.OrderStatusCompleted,
	models.OrderStatusPreparing,
	models.OrderStatusPending,
	models.OrderStatusCancelled,
}

// salesAccumulator collects everything a single pass over the order snapshot
// produces: the populated bucket series, global totals, and the per-item,
// per-table and per-status maps the derived views are computed from.
// Accumulators are map-keyed so no view ever re-scans the raw records.
type salesAccumulator struct {
	window  ReportWindow
	buckets []models.Bucket

	totalRevenue decimal.Decimal
	totalOrders  int

	items     map[int64]*models.ItemSales
	itemOrder []int64 // first-seen order, breaks ranking ties

	tables     map[int]*models.TableSales
	tableOrder []int

	statusCounts map[models.OrderStatus]int
}

// aggregateOrders runs the single pass. Revenue follows the completed-only
// rule: every non-cancelled order counts toward order counts, but only
// completed orders contribute revenue at the bucket, global, item and table
// level. Orders whose timestamp falls outside the window (clock skew,
// pagination leakage) are dropped entirely rather than clamped; a bad record
// degrades precision, never the whole report.
func aggregateOrders(window ReportWindow, orders []models.Order) *salesAccumulator {
	acc := &salesAccumulator{
		window:       window,
		buckets:      NewBucketSeries(window),
		totalRevenue: decimal.Zero,
		items:        make(map[int64]*models.ItemSales),
		tables:       make(map[int]*models.TableSales),
		statusCounts: make(map[models.OrderStatus]int),
	}

	for i := range orders {
		order := &orders[i]

		idx := window.BucketIndex(order.CreatedAt)
		if idx < 0 || idx >= len(acc.buckets) {
			continue
		}

		acc.statusCounts[order.Status]++
		if order.Status == models.OrderStatusCancelled {
			continue
		}

		completed := order.Status == models.OrderStatusCompleted
		bucket := &acc.buckets[idx]
		bucket.OrderCount++
		acc.totalOrders++
		if completed {
			bucket.Revenue = bucket.Revenue.Add(order.TotalAmount)
			acc.totalRevenue = acc.totalRevenue.Add(order.TotalAmount)
		}

		table, ok := acc.tables[order.TableNumber]
		if !ok {
			table = &models.TableSales{TableNumber: order.TableNumber, Revenue: decimal.Zero}
			acc.tables[order.TableNumber] = table
			acc.tableOrder = append(acc.tableOrder, order.TableNumber)
		}
		table.OrderCount++
		if completed {
			table.Revenue = table.Revenue.Add(order.TotalAmount)
		}

		for j := range order.OrderItems {
			line := &order.OrderItems[j]
			item, ok := acc.items[line.MenuItemID]
			if !ok {
				item = &models.ItemSales{MenuItemID: line.MenuItemID, Name: line.ItemName, Revenue: decimal.Zero}
				acc.items[line.MenuItemID] = item
				acc.itemOrder = append(acc.itemOrder, line.MenuItemID)
			}
			item.QuantitySold += line.Quantity
			if completed {
				item.Revenue = item.Revenue.Add(line.TotalPrice)
			}
		}
	}

	return acc
}

// topItems ranks items descending by quantity sold, ties broken by first-seen
// order, truncated to the limit.
func (acc *salesAccumulator) topItems(limit int) []models.ItemSales {
	ranked := make([]models.ItemSales, 0, len(acc.itemOrder))
	for _, id := range acc.itemOrder {
		ranked = append(ranked, *acc.items[id])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].QuantitySold > ranked[j].QuantitySold
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// statusDistribution emits one entry per status with at least one order, in
// the fixed display order.
func (acc *salesAccumulator) statusDistribution() []models.StatusCount {
	distribution := []models.StatusCount{}
	for _, status := range statusDisplayOrder {
		if count := acc.statusCounts[status]; count > 0 {
			distribution = append(distribution, models.StatusCount{Status: status, Count: count})
		}
	}
	return distribution
}

// tablePerformance ranks tables descending by completed revenue. Tables with
// zero revenue still appear when they had any non-cancelled order; equal
// revenues fall back to ascending table number so the output is stable.
func (acc *salesAccumulator) tablePerformance() []models.TableSales {
	ranked := make([]models.TableSales, 0, len(acc.tableOrder))
	numbers := append([]int(nil), acc.tableOrder...)
	sort.Ints(numbers)
	for _, n := range numbers {
		ranked = append(ranked, *acc.tables[n])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Revenue.GreaterThan(ranked[j].Revenue)
	})
	return ranked
}
