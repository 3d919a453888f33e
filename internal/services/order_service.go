package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/thenitintundwal/table-tap-sub000/internal/models"
	"github.com/thenitintundwal/table-tap-sub000/internal/repositories"
	"github.com/thenitintundwal/table-tap-sub000/pkg/utils"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidOrderStatus = errors.New("invalid order status")
	ErrEmptyOrder         = errors.New("order must contain at least one item")
	ErrItemUnavailable    = errors.New("menu item not found or not available")
)

// CreateOrderItemRequest is used for creating individual order items.
type CreateOrderItemRequest struct {
	MenuItemID int64  `json:"menu_item_id" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required,gt=0"`
	Notes      string `json:"notes"`
}

// CreateOrderRequest is used for creating a new order. Line and order totals
// are computed server-side from current menu prices.
type CreateOrderRequest struct {
	TableNumber  int                      `json:"table_number" binding:"required"`
	CustomerName *string                  `json:"customer_name"`
	Notes        *string                  `json:"notes"`
	OrderItems   []CreateOrderItemRequest `json:"order_items" binding:"required,dive"`
}

// UpdateOrderStatusRequest is used for updating the status of an order.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderService manages orders within one cafe.
type OrderService interface {
	CreateOrder(cafeID int64, req CreateOrderRequest) (*models.Order, error)
	GetOrders(cafeID int64, filters models.OrderFilters) ([]models.Order, int, error)
	GetOrderByID(cafeID, orderID int64) (*models.Order, error)
	UpdateOrderStatus(cafeID, orderID int64, req UpdateOrderStatusRequest) (*models.Order, error)
	DeleteOrder(cafeID, orderID int64) error
}

type orderService struct {
	orderRepo repositories.OrderRepository
	menuRepo  repositories.MenuRepository
	db        *sql.DB // for managing transactions
}

// NewOrderService creates a new instance of OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, menuRepo repositories.MenuRepository, db *sql.DB) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		menuRepo:  menuRepo,
		db:        db,
	}
}

func (s *orderService) CreateOrder(cafeID int64, req CreateOrderRequest) (*models.Order, error) {
	if len(req.OrderItems) == 0 {
		return nil, ErrEmptyOrder
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to start database transaction: %w", err)
	}
	defer tx.Rollback()

	totalAmount := decimal.Zero
	orderItemsToCreate := make([]models.OrderItem, 0, len(req.OrderItems))

	for _, itemReq := range req.OrderItems {
		menuItem, repoErr := s.menuRepo.GetItemByID(cafeID, itemReq.MenuItemID)
		if repoErr != nil {
			if errors.Is(repoErr, repositories.ErrNotFound) {
				return nil, fmt.Errorf("%w: item ID %d", ErrItemUnavailable, itemReq.MenuItemID)
			}
			return nil, fmt.Errorf("failed to fetch menu item %d: %w", itemReq.MenuItemID, repoErr)
		}
		if !menuItem.IsAvailable {
			return nil, fmt.Errorf("%w: item ID %d", ErrItemUnavailable, itemReq.MenuItemID)
		}

		lineTotal := menuItem.Price.Mul(decimal.NewFromInt(int64(itemReq.Quantity)))
		totalAmount = totalAmount.Add(lineTotal)

		orderItemsToCreate = append(orderItemsToCreate, models.OrderItem{
			MenuItemID: menuItem.ID,
			ItemName:   menuItem.Name,
			Quantity:   itemReq.Quantity,
			UnitPrice:  menuItem.Price,
			TotalPrice: lineTotal,
			Notes:      utils.NewNullString(itemReq.Notes),
		})
	}

	order := models.Order{
		CafeID:       cafeID,
		TableNumber:  req.TableNumber,
		Status:       models.OrderStatusPending,
		TotalAmount:  totalAmount,
		CustomerName: req.CustomerName,
		Notes:        req.Notes,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	orderID, repoErr := s.orderRepo.CreateOrder(tx, &order)
	if repoErr != nil {
		return nil, fmt.Errorf("failed to create order record: %w", repoErr)
	}

	for i := range orderItemsToCreate {
		orderItemsToCreate[i].OrderID = orderID
		if _, repoErr = s.orderRepo.CreateOrderItem(tx, &orderItemsToCreate[i]); repoErr != nil {
			return nil, fmt.Errorf("failed to create order item (menu_item_id: %d): %w", orderItemsToCreate[i].MenuItemID, repoErr)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit order transaction: %w", err)
	}

	return s.GetOrderByID(cafeID, orderID)
}

func (s *orderService) GetOrders(cafeID int64, filters models.OrderFilters) ([]models.Order, int, error) {
	orders, totalCount, err := s.orderRepo.GetOrders(cafeID, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get orders: %w", err)
	}
	return orders, totalCount, nil
}

func (s *orderService) GetOrderByID(cafeID, orderID int64) (*models.Order, error) {
	order, err := s.orderRepo.GetOrderByID(cafeID, orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order by ID: %w", err)
	}

	items, err := s.orderRepo.GetOrderItemsByOrderID(orderID)
	if err != nil {
		utils.LogWarn("Failed to load order items", map[string]interface{}{"order_id": orderID, "error": err.Error()})
	}
	order.OrderItems = items

	return order, nil
}

func (s *orderService) UpdateOrderStatus(cafeID, orderID int64, req UpdateOrderStatusRequest) (*models.Order, error) {
	if !models.IsValidOrderStatus(req.Status) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidOrderStatus, req.Status)
	}

	err := s.orderRepo.UpdateOrderStatus(s.db, cafeID, orderID, models.OrderStatus(req.Status), time.Now())
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	return s.GetOrderByID(cafeID, orderID)
}

func (s *orderService) DeleteOrder(cafeID, orderID int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := s.orderRepo.GetOrderByID(cafeID, orderID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrOrderNotFound
		}
		return fmt.Errorf("failed to fetch order for deletion: %w", err)
	}

	if _, err = s.orderRepo.DeleteOrderItemsByOrderID(tx, orderID); err != nil {
		return fmt.Errorf("failed to delete order items: %w", err)
	}

	if _, err = s.orderRepo.DeleteOrder(tx, cafeID, orderID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrOrderNotFound
		}
		return fmt.Errorf("failed to delete order: %w", err)
	}

	return tx.Commit()
}
