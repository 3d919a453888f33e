package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenitintundwal/table-tap-sub000/internal/models"
)

func dayWindow(t *testing.T) ReportWindow {
	t.Helper()
	window, err := ResolveWindow(models.PeriodDay, time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return window
}

func testOrder(id int64, status models.OrderStatus, table int, amount int64, at time.Time, items ...models.OrderItem) models.Order {
	return models.Order{
		ID:          id,
		CafeID:      1,
		TableNumber: table,
		Status:      status,
		TotalAmount: decimal.NewFromInt(amount),
		CreatedAt:   at,
		OrderItems:  items,
	}
}

func lineItem(menuItemID int64, name string, qty int, total int64) models.OrderItem {
	return models.OrderItem{
		MenuItemID: menuItemID,
		ItemName:   name,
		Quantity:   qty,
		TotalPrice: decimal.NewFromInt(total),
	}
}

func TestAggregateOrdersDayScenario(t *testing.T) {
	window := dayWindow(t)
	at := func(hour, min int) time.Time {
		return time.Date(2025, time.March, 5, hour, min, 0, 0, time.UTC)
	}

	orders := []models.Order{
		testOrder(1, models.OrderStatusCompleted, 1, 10, at(9, 15)),
		testOrder(2, models.OrderStatusCompleted, 2, 15, at(9, 40)),
		testOrder(3, models.OrderStatusCompleted, 1, 20, at(14, 0)),
	}

	acc := aggregateOrders(window, orders)
	require.Len(t, acc.buckets, 24)

	nine := acc.buckets[9]
	assert.Equal(t, "09:00", nine.Label)
	assert.True(t, nine.Revenue.Equal(decimal.NewFromInt(25)), "bucket 09:00 revenue = %s", nine.Revenue)
	assert.Equal(t, 2, nine.OrderCount)

	fourteen := acc.buckets[14]
	assert.True(t, fourteen.Revenue.Equal(decimal.NewFromInt(20)))
	assert.Equal(t, 1, fourteen.OrderCount)

	for i, bucket := range acc.buckets {
		if i == 9 || i == 14 {
			continue
		}
		assert.True(t, bucket.Revenue.IsZero(), "bucket %d should be zero", i)
		assert.Zero(t, bucket.OrderCount, "bucket %d should be empty", i)
	}

	assert.True(t, acc.totalRevenue.Equal(decimal.NewFromInt(45)))
	assert.Equal(t, 3, acc.totalOrders)
}

func TestAggregateOrdersRevenueConservation(t *testing.T) {
	window := dayWindow(t)
	orders := []models.Order{
		testOrder(1, models.OrderStatusCompleted, 1, 100, time.Date(2025, time.March, 5, 8, 0, 0, 0, time.UTC)),
		testOrder(2, models.OrderStatusCompleted, 2, 250, time.Date(2025, time.March, 5, 8, 30, 0, 0, time.UTC)),
		testOrder(3, models.OrderStatusCompleted, 1, 75, time.Date(2025, time.March, 5, 19, 0, 0, 0, time.UTC)),
		testOrder(4, models.OrderStatusPending, 3, 999, time.Date(2025, time.March, 5, 20, 0, 0, 0, time.UTC)),
	}

	acc := aggregateOrders(window, orders)

	bucketSum := decimal.Zero
	for _, bucket := range acc.buckets {
		assert.False(t, bucket.Revenue.IsNegative())
		bucketSum = bucketSum.Add(bucket.Revenue)
	}
	assert.True(t, bucketSum.Equal(acc.totalRevenue), "bucket sum %s != total %s", bucketSum, acc.totalRevenue)
	assert.True(t, acc.totalRevenue.Equal(decimal.NewFromInt(425)))
}

func TestAggregateOrdersCompletedOnlyRevenue(t *testing.T) {
	window := dayWindow(t)
	at := time.Date(2025, time.March, 5, 12, 0, 0, 0, time.UTC)

	orders := []models.Order{
		testOrder(1, models.OrderStatusCompleted, 1, 50, at),
		testOrder(2, models.OrderStatusPending, 1, 30, at),
		testOrder(3, models.OrderStatusPreparing, 2, 40, at),
	}

	acc := aggregateOrders(window, orders)

	// Pending and preparing orders count but contribute no revenue yet.
	assert.Equal(t, 3, acc.totalOrders)
	assert.True(t, acc.totalRevenue.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, 3, acc.buckets[12].OrderCount)
	assert.True(t, acc.buckets[12].Revenue.Equal(decimal.NewFromInt(50)))
}

func TestAggregateOrdersCancelledOnlyInDistribution(t *testing.T) {
	window := dayWindow(t)
	at := time.Date(2025, time.March, 5, 12, 0, 0, 0, time.UTC)

	orders := []models.Order{
		testOrder(1, models.OrderStatusCompleted, 1, 50, at, lineItem(10, "Latte", 1, 50)),
		testOrder(2, models.OrderStatusCancelled, 1, 500, at, lineItem(10, "Latte", 10, 500)),
	}

	acc := aggregateOrders(window, orders)

	assert.Equal(t, 1, acc.totalOrders)
	assert.True(t, acc.totalRevenue.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, 1, acc.buckets[12].OrderCount)

	// The cancelled order is visible in the status distribution and nowhere else.
	distribution := acc.statusDistribution()
	require.Len(t, distribution, 2)
	assert.Equal(t, models.OrderStatusCompleted, distribution[0].Status)
	assert.Equal(t, models.OrderStatusCancelled, distribution[1].Status)
	assert.Equal(t, 1, distribution[1].Count)

	// Its line items never reach the item accumulators.
	require.Contains(t, acc.items, int64(10))
	assert.Equal(t, 1, acc.items[10].QuantitySold)

	// Nor its table.
	assert.Equal(t, 1, acc.tables[1].OrderCount)
}

func TestAggregateOrdersDropsOutOfWindowRecords(t *testing.T) {
	window := dayWindow(t)

	orders := []models.Order{
		testOrder(1, models.OrderStatusCompleted, 1, 10, time.Date(2025, time.March, 4, 23, 59, 0, 0, time.UTC)),
		testOrder(2, models.OrderStatusCompleted, 1, 20, time.Date(2025, time.March, 6, 0, 0, 0, 0, time.UTC)),
		testOrder(3, models.OrderStatusCancelled, 1, 30, time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC)),
	}

	acc := aggregateOrders(window, orders)

	assert.Zero(t, acc.totalOrders)
	assert.True(t, acc.totalRevenue.IsZero())
	assert.Empty(t, acc.statusDistribution())
	assert.Empty(t, acc.tableOrder)
}

func TestAggregateOrdersEmptyInput(t *testing.T) {
	window := dayWindow(t)
	acc := aggregateOrders(window, nil)

	require.Len(t, acc.buckets, 24)
	assert.Zero(t, acc.totalOrders)
	assert.True(t, acc.totalRevenue.IsZero())
	assert.Empty(t, acc.topItems(topItemsLimit))
	assert.Empty(t, acc.statusDistribution())
	assert.Empty(t, acc.tablePerformance())
}

func TestAggregateOrdersIdempotent(t *testing.T) {
	window := dayWindow(t)
	orders := []models.Order{
		testOrder(1, models.OrderStatusCompleted, 3, 120, time.Date(2025, time.March, 5, 10, 0, 0, 0, time.UTC),
			lineItem(1, "Espresso", 2, 40), lineItem(2, "Croissant", 1, 80)),
		testOrder(2, models.OrderStatusPreparing, 1, 60, time.Date(2025, time.March, 5, 11, 0, 0, 0, time.UTC),
			lineItem(1, "Espresso", 3, 60)),
	}

	first := aggregateOrders(window, orders)
	second := aggregateOrders(window, orders)

	assert.Equal(t, first.buckets, second.buckets)
	assert.Equal(t, first.topItems(topItemsLimit), second.topItems(topItemsLimit))
	assert.Equal(t, first.statusDistribution(), second.statusDistribution())
	assert.Equal(t, first.tablePerformance(), second.tablePerformance())
	assert.True(t, first.totalRevenue.Equal(second.totalRevenue))
}

func TestTopItemsRankingAndTieBreak(t *testing.T) {
	window := dayWindow(t)
	at := time.Date(2025, time.March, 5, 13, 0, 0, 0, time.UTC)

	orders := []models.Order{
		testOrder(1, models.OrderStatusCompleted, 1, 100, at,
			lineItem(1, "Espresso", 5, 25),
			lineItem(2, "Latte", 3, 30),
			lineItem(3, "Mocha", 3, 45)),
		testOrder(2, models.OrderStatusCompleted, 2, 80, at,
			lineItem(4, "Tea", 8, 40),
			lineItem(5, "Cake", 1, 20),
			lineItem(6, "Scone", 1, 20)),
	}

	acc := aggregateOrders(window, orders)
	top := acc.topItems(topItemsLimit)
	require.Len(t, top, 5)

	assert.Equal(t, "Tea", top[0].Name)
	assert.Equal(t, "Espresso", top[1].Name)
	// Latte and Mocha tie at 3; first-seen order wins.
	assert.Equal(t, "Latte", top[2].Name)
	assert.Equal(t, "Mocha", top[3].Name)
	// Cake and Scone tie at 1; only Cake fits within the limit.
	assert.Equal(t, "Cake", top[4].Name)
}

func TestStatusDistributionOrderAndOmission(t *testing.T) {
	window := dayWindow(t)
	at := time.Date(2025, time.March, 5, 15, 0, 0, 0, time.UTC)

	orders := []models.Order{
		testOrder(1, models.OrderStatusPending, 1, 10, at),
		testOrder(2, models.OrderStatusCompleted, 1, 20, at),
		testOrder(3, models.OrderStatusCompleted, 2, 30, at),
	}

	acc := aggregateOrders(window, orders)
	distribution := acc.statusDistribution()

	// Fixed display order, zero-count statuses omitted.
	require.Len(t, distribution, 2)
	assert.Equal(t, models.OrderStatusCompleted, distribution[0].Status)
	assert.Equal(t, 2, distribution[0].Count)
	assert.Equal(t, models.OrderStatusPending, distribution[1].Status)
	assert.Equal(t, 1, distribution[1].Count)
}

func TestTablePerformanceRanking(t *testing.T) {
	window := dayWindow(t)
	at := time.Date(2025, time.March, 5, 18, 0, 0, 0, time.UTC)

	orders := []models.Order{
		testOrder(1, models.OrderStatusCompleted, 7, 50, at),
		testOrder(2, models.OrderStatusCompleted, 2, 80, at),
		testOrder(3, models.OrderStatusCompleted, 5, 50, at),
		testOrder(4, models.OrderStatusPending, 9, 40, at),
	}

	acc := aggregateOrders(window, orders)
	ranked := acc.tablePerformance()
	require.Len(t, ranked, 4)

	assert.Equal(t, 2, ranked[0].TableNumber)
	// Tables 5 and 7 tie at 50; ascending table number breaks the tie.
	assert.Equal(t, 5, ranked[1].TableNumber)
	assert.Equal(t, 7, ranked[2].TableNumber)
	// Table 9 had only a pending order: present, zero revenue, last.
	assert.Equal(t, 9, ranked[3].TableNumber)
	assert.True(t, ranked[3].Revenue.IsZero())
	assert.Equal(t, 1, ranked[3].OrderCount)
}
