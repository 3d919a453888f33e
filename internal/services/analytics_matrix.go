package services

import (
	"github.com/shopspring/decimal"

	"github.com/thenitintundwal/table-tap-sub000/internal/models"
)

// Fixed monthly subscription prices per tenant plan.
var (
	planPriceBasic = decimal.NewFromInt(2000)
	planPricePro   = decimal.NewFromInt(5000)
)

// planPrice returns the subscription price of a plan. Unknown plans price at
// zero rather than failing; the plan column is constrained in the database.
func planPrice(plan models.CafePlan) decimal.Decimal {
	switch plan {
	case models.PlanBasic:
		return planPriceBasic
	case models.PlanPro:
		return planPricePro
	default:
		return decimal.Zero
	}
}

// buildProfitabilityPoints joins per-item sales accumulators with catalog
// price/cost metadata. Items never sold in the window are excluded from the
// matrix entirely.
func buildProfitabilityPoints(sales map[int64]*models.ItemSales, order []int64, catalog map[int64]models.MenuItem) []models.ProfitabilityPoint {
	points := make([]models.ProfitabilityPoint, 0, len(order))
	for _, id := range order {
		s := sales[id]
		if s.QuantitySold <= 0 {
			continue
		}
		item, ok := catalog[id]
		if !ok {
			// Item was deleted from the menu after the orders were placed;
			// without cost metadata it cannot be plotted.
			continue
		}
		qty := decimal.NewFromInt(int64(s.QuantitySold))
		margin := item.Price.Sub(item.CostPrice)
		points = append(points, models.ProfitabilityPoint{
			MenuItemID:    id,
			Name:          s.Name,
			Price:         item.Price,
			CostPrice:     item.CostPrice,
			QuantitySold:  s.QuantitySold,
			Revenue:       s.Revenue,
			Profit:        s.Revenue.Sub(item.CostPrice.Mul(qty)),
			MarginPerItem: margin,
		})
	}
	return points
}

// classifyQuadrants tags every point with its menu engineering quadrant and
// returns the two threshold means. Boundary policy: a point exactly at the
// mean counts as high on that axis (>= on both popularity and margin), so
// two identical items at the mean both classify as Star. An empty input
// yields zero means and no points; there is no division by zero.
func classifyQuadrants(points []models.ProfitabilityPoint) ([]models.ProfitabilityPoint, float64, decimal.Decimal) {
	if len(points) == 0 {
		return []models.ProfitabilityPoint{}, 0, decimal.Zero
	}

	totalQty := 0
	totalMargin := decimal.Zero
	for i := range points {
		totalQty += points[i].QuantitySold
		totalMargin = totalMargin.Add(points[i].MarginPerItem)
	}
	n := int64(len(points))
	avgPopularity := float64(totalQty) / float64(n)
	avgMargin := totalMargin.Div(decimal.NewFromInt(n))

	for i := range points {
		highPopularity := float64(points[i].QuantitySold) >= avgPopularity
		highMargin := points[i].MarginPerItem.GreaterThanOrEqual(avgMargin)
		switch {
		case highPopularity && highMargin:
			points[i].Quadrant = models.QuadrantStar
		case highPopularity && !highMargin:
			points[i].Quadrant = models.QuadrantPlowhorse
		case !highPopularity && highMargin:
			points[i].Quadrant = models.QuadrantPuzzle
		default:
			points[i].Quadrant = models.QuadrantDog
		}
	}
	return points, avgPopularity, avgMargin
}

// calculatePlatformRevenue totals subscription revenue over the tenant list
// using fixed per-tier pricing. This figure is independent of transactional
// revenue and must never be summed into it.
func calculatePlatformRevenue(cafes []models.Cafe) models.PlatformRevenueReport {
	counts := map[models.CafePlan]int{}
	for i := range cafes {
		counts[cafes[i].Plan]++
	}

	report := models.PlatformRevenueReport{TotalRevenue: decimal.Zero}
	for _, plan := range []models.CafePlan{models.PlanBasic, models.PlanPro} {
		count := counts[plan]
		price := planPrice(plan)
		revenue := price.Mul(decimal.NewFromInt(int64(count)))
		report.Plans = append(report.Plans, models.PlanRevenue{
			Plan:      plan,
			CafeCount: count,
			UnitPrice: price,
			Revenue:   revenue,
		})
		report.TotalRevenue = report.TotalRevenue.Add(revenue)
	}
	return report
}
