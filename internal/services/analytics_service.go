package services

import (
	"errors"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/thenitintundwal/table-tap-sub000/internal/models"
	"github.com/thenitintundwal/table-tap-sub000/internal/repositories"
)

// ErrCafeNotFound is returned when the requested tenant does not exist.
var ErrCafeNotFound = errors.New("cafe not found")

// AnalyticsService computes period-bucketed sales reports, the menu
// engineering matrix and platform subscription revenue. Every report is
// recomputed from the raw record snapshot on each request; results are
// served from a short-lived TTL cache and concurrent identical requests are
// collapsed through a singleflight group.
type AnalyticsService interface {
	GetSalesReport(cafeID int64, period models.ReportPeriod, ref time.Time) (*models.SalesReport, error)
	GetMenuEngineeringReport(cafeID int64, period models.ReportPeriod, ref time.Time) (*models.MenuEngineeringReport, error)
	GetDashboardSummary(cafeID int64) (*models.DashboardSummary, error)
	GetPlatformRevenue() (*models.PlatformRevenueReport, error)
	GetCafeSubscription(cafeID int64) (*models.PlanRevenue, error)
}

type analyticsService struct {
	orderRepo repositories.OrderRepository
	menuRepo  repositories.MenuRepository
	cafeRepo  repositories.CafeRepository
	cache     *reportCache
	group     singleflight.Group
}

// NewAnalyticsService creates a new instance of AnalyticsService.
func NewAnalyticsService(
	orderRepo repositories.OrderRepository,
	menuRepo repositories.MenuRepository,
	cafeRepo repositories.CafeRepository,
) AnalyticsService {
	return &analyticsService{
		orderRepo: orderRepo,
		menuRepo:  menuRepo,
		cafeRepo:  cafeRepo,
		cache:     newReportCache(defaultReportTTL),
	}
}

// GetSalesReport builds the bucketed sales report for one cafe:
// resolver -> bucket series -> single-pass aggregation -> derived views.
func (s *analyticsService) GetSalesReport(cafeID int64, period models.ReportPeriod, ref time.Time) (*models.SalesReport, error) {
	key := reportCacheKey("sales", cafeID, period, ref)
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*models.SalesReport), nil
	}

	result, err, _ := s.group.Do(key, func() (interface{}, error) {
		report, err := s.buildSalesReport(cafeID, period, ref)
		if err != nil {
			return nil, err
		}
		s.cache.Set(key, report)
		return report, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*models.SalesReport), nil
}

func (s *analyticsService) buildSalesReport(cafeID int64, period models.ReportPeriod, ref time.Time) (*models.SalesReport, error) {
	window, err := ResolveWindow(period, ref)
	if err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.GetOrdersInWindow(cafeID, window.Start, window.End)
	if err != nil {
		return nil, err
	}

	acc := aggregateOrders(window, orders)

	return &models.SalesReport{
		CafeID:             cafeID,
		Period:             period,
		WindowStart:        window.Start,
		WindowEnd:          window.End,
		Buckets:            acc.buckets,
		TotalRevenue:       acc.totalRevenue,
		TotalOrders:        acc.totalOrders,
		TopItems:           acc.topItems(topItemsLimit),
		StatusDistribution: acc.statusDistribution(),
		TablePerformance:   acc.tablePerformance(),
	}, nil
}

// GetMenuEngineeringReport classifies every item sold in the window into the
// four-quadrant matrix using the window's sales accumulators joined with the
// menu catalog's price/cost metadata.
func (s *analyticsService) GetMenuEngineeringReport(cafeID int64, period models.ReportPeriod, ref time.Time) (*models.MenuEngineeringReport, error) {
	key := reportCacheKey("menu-engineering", cafeID, period, ref)
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*models.MenuEngineeringReport), nil
	}

	result, err, _ := s.group.Do(key, func() (interface{}, error) {
		report, err := s.buildMenuEngineeringReport(cafeID, period, ref)
		if err != nil {
			return nil, err
		}
		s.cache.Set(key, report)
		return report, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*models.MenuEngineeringReport), nil
}

func (s *analyticsService) buildMenuEngineeringReport(cafeID int64, period models.ReportPeriod, ref time.Time) (*models.MenuEngineeringReport, error) {
	window, err := ResolveWindow(period, ref)
	if err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.GetOrdersInWindow(cafeID, window.Start, window.End)
	if err != nil {
		return nil, err
	}

	items, _, err := s.menuRepo.GetItems(cafeID, models.MenuItemFilters{})
	if err != nil {
		return nil, err
	}
	catalog := make(map[int64]models.MenuItem, len(items))
	for i := range items {
		catalog[items[i].ID] = items[i]
	}

	acc := aggregateOrders(window, orders)
	points := buildProfitabilityPoints(acc.items, acc.itemOrder, catalog)
	points, avgPopularity, avgMargin := classifyQuadrants(points)

	return &models.MenuEngineeringReport{
		CafeID:        cafeID,
		Period:        period,
		WindowStart:   window.Start,
		WindowEnd:     window.End,
		Points:        points,
		AvgPopularity: avgPopularity,
		AvgMargin:     avgMargin,
	}, nil
}

// GetDashboardSummary derives today's key metrics from the day and month
// sales reports; no extra pass over the raw records.
func (s *analyticsService) GetDashboardSummary(cafeID int64) (*models.DashboardSummary, error) {
	now := time.Now()

	dayReport, err := s.GetSalesReport(cafeID, models.PeriodDay, now)
	if err != nil {
		return nil, err
	}
	monthReport, err := s.GetSalesReport(cafeID, models.PeriodMonth, now)
	if err != nil {
		return nil, err
	}

	summary := &models.DashboardSummary{
		CafeID:          cafeID,
		TotalSalesToday: dayReport.TotalRevenue,
		OrdersToday:     dayReport.TotalOrders,
		TotalSalesMonth: monthReport.TotalRevenue,
		OrdersMonth:     monthReport.TotalOrders,
	}
	for _, sc := range dayReport.StatusDistribution {
		switch sc.Status {
		case models.OrderStatusPending:
			summary.PendingOrders = sc.Count
		case models.OrderStatusPreparing:
			summary.PreparingOrders = sc.Count
		}
	}
	if len(dayReport.TopItems) > 0 {
		top := dayReport.TopItems[0]
		summary.TopItemToday = &top
	}
	return summary, nil
}

// GetPlatformRevenue totals subscription revenue across all active tenants.
func (s *analyticsService) GetPlatformRevenue() (*models.PlatformRevenueReport, error) {
	active := true
	cafes, _, err := s.cafeRepo.GetCafes(models.CafeFilters{IsActive: &active})
	if err != nil {
		return nil, err
	}
	report := calculatePlatformRevenue(cafes)
	return &report, nil
}

// GetCafeSubscription returns the single-tier subscription figure for one tenant.
func (s *analyticsService) GetCafeSubscription(cafeID int64) (*models.PlanRevenue, error) {
	cafe, err := s.cafeRepo.GetCafeByID(cafeID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCafeNotFound
		}
		return nil, err
	}
	price := planPrice(cafe.Plan)
	return &models.PlanRevenue{
		Plan:      cafe.Plan,
		CafeCount: 1,
		UnitPrice: price,
		Revenue:   price,
	}, nil
}
