package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenitintundwal/table-tap-sub000/internal/models"
	"github.com/thenitintundwal/table-tap-sub000/internal/repositories"
)

// ============================================================================
// MOCK REPOSITORIES
// ============================================================================

type mockOrderRepo struct {
	orders      []models.Order
	windowCalls int
	err         error
}

func (m *mockOrderRepo) CreateOrder(executor repositories.SQLExecutor, order *models.Order) (int64, error) {
	return 0, nil
}

func (m *mockOrderRepo) GetOrderByID(cafeID, orderID int64) (*models.Order, error) {
	for i := range m.orders {
		if m.orders[i].CafeID == cafeID && m.orders[i].ID == orderID {
			order := m.orders[i]
			return &order, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *mockOrderRepo) GetOrders(cafeID int64, filters models.OrderFilters) ([]models.Order, int, error) {
	var orders []models.Order
	for _, order := range m.orders {
		if order.CafeID == cafeID {
			orders = append(orders, order)
		}
	}
	return orders, len(orders), nil
}

func (m *mockOrderRepo) UpdateOrderStatus(executor repositories.SQLExecutor, cafeID, orderID int64, newStatus models.OrderStatus, updatedAt time.Time) error {
	return nil
}

func (m *mockOrderRepo) DeleteOrder(executor repositories.SQLExecutor, cafeID, orderID int64) (int64, error) {
	return 0, nil
}

func (m *mockOrderRepo) CreateOrderItem(executor repositories.SQLExecutor, item *models.OrderItem) (int64, error) {
	return 0, nil
}

func (m *mockOrderRepo) GetOrderItemsByOrderID(orderID int64) ([]models.OrderItem, error) {
	for i := range m.orders {
		if m.orders[i].ID == orderID {
			return m.orders[i].OrderItems, nil
		}
	}
	return nil, nil
}

func (m *mockOrderRepo) DeleteOrderItemsByOrderID(executor repositories.SQLExecutor, orderID int64) (int64, error) {
	return 0, nil
}

func (m *mockOrderRepo) GetOrdersInWindow(cafeID int64, start, end time.Time) ([]models.Order, error) {
	m.windowCalls++
	if m.err != nil {
		return nil, m.err
	}
	var inWindow []models.Order
	for _, order := range m.orders {
		if order.CafeID != cafeID {
			continue
		}
		if order.CreatedAt.Before(start) || !order.CreatedAt.Before(end) {
			continue
		}
		inWindow = append(inWindow, order)
	}
	return inWindow, nil
}

type mockMenuRepo struct {
	items []models.MenuItem
}

func (m *mockMenuRepo) CreateCategory(executor repositories.SQLExecutor, category *models.MenuCategory) (int64, error) {
	return 0, nil
}

func (m *mockMenuRepo) GetCategories(cafeID int64) ([]models.MenuCategory, error) {
	return nil, nil
}

func (m *mockMenuRepo) DeleteCategory(executor repositories.SQLExecutor, cafeID, categoryID int64) (int64, error) {
	return 0, nil
}

func (m *mockMenuRepo) CreateItem(executor repositories.SQLExecutor, item *models.MenuItem) (int64, error) {
	return 0, nil
}

func (m *mockMenuRepo) GetItemByID(cafeID, itemID int64) (*models.MenuItem, error) {
	for i := range m.items {
		if m.items[i].ID == itemID {
			return &m.items[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *mockMenuRepo) GetItems(cafeID int64, filters models.MenuItemFilters) ([]models.MenuItem, int, error) {
	return m.items, len(m.items), nil
}

func (m *mockMenuRepo) UpdateItem(executor repositories.SQLExecutor, item *models.MenuItem) error {
	return nil
}

func (m *mockMenuRepo) DeleteItem(executor repositories.SQLExecutor, cafeID, itemID int64) (int64, error) {
	return 0, nil
}

type mockCafeRepo struct {
	cafes map[int64]*models.Cafe
}

func (m *mockCafeRepo) CreateCafe(executor repositories.SQLExecutor, cafe *models.Cafe) (int64, error) {
	return 0, nil
}

func (m *mockCafeRepo) GetCafeByID(cafeID int64) (*models.Cafe, error) {
	cafe, ok := m.cafes[cafeID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return cafe, nil
}

func (m *mockCafeRepo) GetCafes(filters models.CafeFilters) ([]models.Cafe, int, error) {
	var cafes []models.Cafe
	for _, cafe := range m.cafes {
		if filters.IsActive != nil && cafe.IsActive != *filters.IsActive {
			continue
		}
		cafes = append(cafes, *cafe)
	}
	return cafes, len(cafes), nil
}

func (m *mockCafeRepo) UpdateCafe(executor repositories.SQLExecutor, cafe *models.Cafe) error {
	return nil
}

func (m *mockCafeRepo) DeleteCafe(executor repositories.SQLExecutor, cafeID int64) (int64, error) {
	return 0, nil
}

// ============================================================================
// TESTS
// ============================================================================

func newTestAnalyticsService(orderRepo *mockOrderRepo, menuRepo *mockMenuRepo, cafeRepo *mockCafeRepo) AnalyticsService {
	if orderRepo == nil {
		orderRepo = &mockOrderRepo{}
	}
	if menuRepo == nil {
		menuRepo = &mockMenuRepo{}
	}
	if cafeRepo == nil {
		cafeRepo = &mockCafeRepo{cafes: map[int64]*models.Cafe{}}
	}
	return NewAnalyticsService(orderRepo, menuRepo, cafeRepo)
}

func TestGetSalesReportBuildsFullSeries(t *testing.T) {
	ref := time.Date(2025, time.March, 5, 12, 0, 0, 0, time.UTC)
	orderRepo := &mockOrderRepo{orders: []models.Order{
		{ID: 1, CafeID: 1, TableNumber: 2, Status: models.OrderStatusCompleted,
			TotalAmount: decimal.NewFromInt(300), CreatedAt: ref},
	}}
	svc := newTestAnalyticsService(orderRepo, nil, nil)

	report, err := svc.GetSalesReport(1, models.PeriodDay, ref)
	require.NoError(t, err)

	assert.Equal(t, int64(1), report.CafeID)
	assert.Equal(t, models.PeriodDay, report.Period)
	require.Len(t, report.Buckets, 24)
	assert.True(t, report.Buckets[12].Revenue.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, 1, report.TotalOrders)
	require.Len(t, report.TablePerformance, 1)
	assert.Equal(t, 2, report.TablePerformance[0].TableNumber)
}

func TestGetSalesReportCachesByDay(t *testing.T) {
	ref := time.Date(2025, time.March, 5, 9, 0, 0, 0, time.UTC)
	orderRepo := &mockOrderRepo{}
	svc := newTestAnalyticsService(orderRepo, nil, nil)

	_, err := svc.GetSalesReport(1, models.PeriodDay, ref)
	require.NoError(t, err)
	assert.Equal(t, 1, orderRepo.windowCalls)

	// Same cafe, period and calendar day: served from cache.
	_, err = svc.GetSalesReport(1, models.PeriodDay, ref.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, orderRepo.windowCalls)

	// A different period misses.
	_, err = svc.GetSalesReport(1, models.PeriodMonth, ref)
	require.NoError(t, err)
	assert.Equal(t, 2, orderRepo.windowCalls)

	// A different cafe misses.
	_, err = svc.GetSalesReport(2, models.PeriodDay, ref)
	require.NoError(t, err)
	assert.Equal(t, 3, orderRepo.windowCalls)
}

func TestGetSalesReportInvalidPeriod(t *testing.T) {
	svc := newTestAnalyticsService(nil, nil, nil)

	_, err := svc.GetSalesReport(1, models.ReportPeriod("quarter"), time.Now())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestGetMenuEngineeringReport(t *testing.T) {
	ref := time.Date(2025, time.March, 5, 13, 0, 0, 0, time.UTC)
	orderRepo := &mockOrderRepo{orders: []models.Order{
		{ID: 1, CafeID: 1, TableNumber: 1, Status: models.OrderStatusCompleted,
			TotalAmount: decimal.NewFromInt(100), CreatedAt: ref,
			OrderItems: []models.OrderItem{
				{MenuItemID: 1, ItemName: "Latte", Quantity: 8, TotalPrice: decimal.NewFromInt(80)},
				{MenuItemID: 2, ItemName: "Cake", Quantity: 1, TotalPrice: decimal.NewFromInt(20)},
			}},
	}}
	menuRepo := &mockMenuRepo{items: []models.MenuItem{
		{ID: 1, CafeID: 1, Name: "Latte", Price: decimal.NewFromInt(10), CostPrice: decimal.NewFromInt(3)},
		{ID: 2, CafeID: 1, Name: "Cake", Price: decimal.NewFromInt(20), CostPrice: decimal.NewFromInt(5)},
	}}
	svc := newTestAnalyticsService(orderRepo, menuRepo, nil)

	report, err := svc.GetMenuEngineeringReport(1, models.PeriodDay, ref)
	require.NoError(t, err)
	require.Len(t, report.Points, 2)

	// Means: popularity (8+1)/2 = 4.5, margin (7+15)/2 = 11.
	assert.Equal(t, 4.5, report.AvgPopularity)
	assert.True(t, report.AvgMargin.Equal(decimal.NewFromInt(11)))

	assert.Equal(t, models.QuadrantPlowhorse, report.Points[0].Quadrant)
	assert.Equal(t, models.QuadrantPuzzle, report.Points[1].Quadrant)
}

func TestGetDashboardSummary(t *testing.T) {
	now := time.Now()
	orderRepo := &mockOrderRepo{orders: []models.Order{
		{ID: 1, CafeID: 1, TableNumber: 1, Status: models.OrderStatusCompleted,
			TotalAmount: decimal.NewFromInt(120), CreatedAt: now,
			OrderItems: []models.OrderItem{{MenuItemID: 1, ItemName: "Latte", Quantity: 2, TotalPrice: decimal.NewFromInt(120)}}},
		{ID: 2, CafeID: 1, TableNumber: 2, Status: models.OrderStatusPending,
			TotalAmount: decimal.NewFromInt(60), CreatedAt: now},
	}}
	svc := newTestAnalyticsService(orderRepo, nil, nil)

	summary, err := svc.GetDashboardSummary(1)
	require.NoError(t, err)

	assert.True(t, summary.TotalSalesToday.Equal(decimal.NewFromInt(120)))
	assert.Equal(t, 2, summary.OrdersToday)
	assert.Equal(t, 1, summary.PendingOrders)
	assert.Zero(t, summary.PreparingOrders)
	assert.Equal(t, 2, summary.OrdersMonth)
	require.NotNil(t, summary.TopItemToday)
	assert.Equal(t, "Latte", summary.TopItemToday.Name)
}

func TestGetPlatformRevenueCountsActiveCafes(t *testing.T) {
	cafeRepo := &mockCafeRepo{cafes: map[int64]*models.Cafe{
		1: {ID: 1, Plan: models.PlanBasic, IsActive: true},
		2: {ID: 2, Plan: models.PlanPro, IsActive: true},
		3: {ID: 3, Plan: models.PlanPro, IsActive: false},
	}}
	svc := newTestAnalyticsService(nil, nil, cafeRepo)

	report, err := svc.GetPlatformRevenue()
	require.NoError(t, err)

	// The deactivated pro cafe does not bill.
	assert.True(t, report.TotalRevenue.Equal(decimal.NewFromInt(7000)))
}

func TestGetCafeSubscription(t *testing.T) {
	cafeRepo := &mockCafeRepo{cafes: map[int64]*models.Cafe{
		7: {ID: 7, Plan: models.PlanPro, IsActive: true},
	}}
	svc := newTestAnalyticsService(nil, nil, cafeRepo)

	sub, err := svc.GetCafeSubscription(7)
	require.NoError(t, err)
	assert.Equal(t, models.PlanPro, sub.Plan)
	assert.True(t, sub.UnitPrice.Equal(decimal.NewFromInt(5000)))

	_, err = svc.GetCafeSubscription(99)
	assert.ErrorIs(t, err, ErrCafeNotFound)
}
