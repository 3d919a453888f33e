package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenitintundwal/table-tap-sub000/internal/models"
)

func point(id int64, qty int, margin int64) models.ProfitabilityPoint {
	return models.ProfitabilityPoint{
		MenuItemID:    id,
		QuantitySold:  qty,
		MarginPerItem: decimal.NewFromInt(margin),
	}
}

func TestClassifyQuadrantsAllFour(t *testing.T) {
	// Means: popularity (10+10+2+2)/4 = 6, margin (8+2+8+2)/4 = 5.
	points, avgPopularity, avgMargin := classifyQuadrants([]models.ProfitabilityPoint{
		point(1, 10, 8), // high/high
		point(2, 10, 2), // high/low
		point(3, 2, 8),  // low/high
		point(4, 2, 2),  // low/low
	})
	require.Len(t, points, 4)

	assert.Equal(t, 6.0, avgPopularity)
	assert.True(t, avgMargin.Equal(decimal.NewFromInt(5)))

	assert.Equal(t, models.QuadrantStar, points[0].Quadrant)
	assert.Equal(t, models.QuadrantPlowhorse, points[1].Quadrant)
	assert.Equal(t, models.QuadrantPuzzle, points[2].Quadrant)
	assert.Equal(t, models.QuadrantDog, points[3].Quadrant)
}

func TestClassifyQuadrantsBoundaryIsHigh(t *testing.T) {
	// Two identical items sit exactly at both means and both classify as Star.
	points, avgPopularity, avgMargin := classifyQuadrants([]models.ProfitabilityPoint{
		point(1, 4, 7),
		point(2, 4, 7),
	})
	require.Len(t, points, 2)

	assert.Equal(t, 4.0, avgPopularity)
	assert.True(t, avgMargin.Equal(decimal.NewFromInt(7)))
	assert.Equal(t, models.QuadrantStar, points[0].Quadrant)
	assert.Equal(t, models.QuadrantStar, points[1].Quadrant)
}

func TestClassifyQuadrantsExhaustive(t *testing.T) {
	points, _, _ := classifyQuadrants([]models.ProfitabilityPoint{
		point(1, 1, 1), point(2, 9, 3), point(3, 4, 12), point(4, 6, 6), point(5, 2, 2),
	})
	for _, p := range points {
		switch p.Quadrant {
		case models.QuadrantStar, models.QuadrantPlowhorse, models.QuadrantPuzzle, models.QuadrantDog:
		default:
			t.Fatalf("item %d has no quadrant: %q", p.MenuItemID, p.Quadrant)
		}
	}
}

func TestClassifyQuadrantsEmpty(t *testing.T) {
	points, avgPopularity, avgMargin := classifyQuadrants(nil)
	assert.Empty(t, points)
	assert.Zero(t, avgPopularity)
	assert.True(t, avgMargin.IsZero())
}

func TestBuildProfitabilityPoints(t *testing.T) {
	sales := map[int64]*models.ItemSales{
		1: {MenuItemID: 1, Name: "Latte", QuantitySold: 4, Revenue: decimal.NewFromInt(40)},
		2: {MenuItemID: 2, Name: "Ghost", QuantitySold: 2, Revenue: decimal.NewFromInt(10)},
		3: {MenuItemID: 3, Name: "Unsold", QuantitySold: 0, Revenue: decimal.Zero},
	}
	order := []int64{1, 2, 3}
	catalog := map[int64]models.MenuItem{
		1: {ID: 1, Price: decimal.NewFromInt(10), CostPrice: decimal.NewFromInt(4)},
		3: {ID: 3, Price: decimal.NewFromInt(5), CostPrice: decimal.NewFromInt(1)},
	}

	points := buildProfitabilityPoints(sales, order, catalog)

	// Item 2 was deleted from the catalog and item 3 never sold; only item 1 plots.
	require.Len(t, points, 1)
	p := points[0]
	assert.Equal(t, int64(1), p.MenuItemID)
	assert.Equal(t, 4, p.QuantitySold)
	assert.True(t, p.MarginPerItem.Equal(decimal.NewFromInt(6)))
	assert.True(t, p.Profit.Equal(decimal.NewFromInt(24)), "40 revenue - 4*4 cost")
}

func TestPlanPrice(t *testing.T) {
	assert.True(t, planPrice(models.PlanBasic).Equal(decimal.NewFromInt(2000)))
	assert.True(t, planPrice(models.PlanPro).Equal(decimal.NewFromInt(5000)))
	assert.True(t, planPrice(models.CafePlan("enterprise")).IsZero())
}

func TestCalculatePlatformRevenue(t *testing.T) {
	cafes := []models.Cafe{
		{ID: 1, Plan: models.PlanBasic},
		{ID: 2, Plan: models.PlanBasic},
		{ID: 3, Plan: models.PlanBasic},
		{ID: 4, Plan: models.PlanPro},
		{ID: 5, Plan: models.PlanPro},
	}

	report := calculatePlatformRevenue(cafes)
	require.Len(t, report.Plans, 2)

	basic := report.Plans[0]
	assert.Equal(t, models.PlanBasic, basic.Plan)
	assert.Equal(t, 3, basic.CafeCount)
	assert.True(t, basic.Revenue.Equal(decimal.NewFromInt(6000)))

	pro := report.Plans[1]
	assert.Equal(t, models.PlanPro, pro.Plan)
	assert.Equal(t, 2, pro.CafeCount)
	assert.True(t, pro.Revenue.Equal(decimal.NewFromInt(10000)))

	assert.True(t, report.TotalRevenue.Equal(decimal.NewFromInt(16000)))
}

func TestCalculatePlatformRevenueEmpty(t *testing.T) {
	report := calculatePlatformRevenue(nil)
	require.Len(t, report.Plans, 2)
	assert.True(t, report.TotalRevenue.IsZero())
	for _, plan := range report.Plans {
		assert.Zero(t, plan.CafeCount)
		assert.True(t, plan.Revenue.IsZero())
	}
}
