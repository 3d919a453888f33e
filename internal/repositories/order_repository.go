package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/thenitintundwal/table-tap-sub000/internal/models"
)

// OrderRepository defines the interface for order-related database operations.
type OrderRepository interface {
	// Order methods
	CreateOrder(executor SQLExecutor, order *models.Order) (int64, error)
	GetOrderByID(cafeID, orderID int64) (*models.Order, error)
	GetOrders(cafeID int64, filters models.OrderFilters) ([]models.Order, int, error)
	UpdateOrderStatus(executor SQLExecutor, cafeID, orderID int64, newStatus models.OrderStatus, updatedAt time.Time) error
	DeleteOrder(executor SQLExecutor, cafeID, orderID int64) (int64, error)

	// OrderItem methods
	CreateOrderItem(executor SQLExecutor, item *models.OrderItem) (int64, error)
	GetOrderItemsByOrderID(orderID int64) ([]models.OrderItem, error)
	DeleteOrderItemsByOrderID(executor SQLExecutor, orderID int64) (int64, error)

	// GetOrdersInWindow fetches every order of a cafe created inside
	// [start, end), with line items attached. This is the analytics
	// engine's record snapshot.
	GetOrdersInWindow(cafeID int64, start, end time.Time) ([]models.Order, error)
}

type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates a new instance of OrderRepository.
func NewOrderRepository(db *sql.DB) OrderRepository {
	return &orderRepository{db: db}
}

// --- Order Methods ---

func (r *orderRepository) CreateOrder(executor SQLExecutor, order *models.Order) (int64, error) {
	query := `INSERT INTO orders
	            (cafe_id, table_number, status, total_amount, customer_name, notes, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	          RETURNING id`

	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	if order.UpdatedAt.IsZero() {
		order.UpdatedAt = time.Now()
	}

	err := executor.QueryRow(query,
		order.CafeID, order.TableNumber, order.Status, order.TotalAmount,
		order.CustomerName, order.Notes, order.CreatedAt, order.UpdatedAt,
	).Scan(&order.ID)

	if err != nil {
		return 0, fmt.Errorf("%w: creating order: %v", ErrDatabaseError, err)
	}
	return order.ID, nil
}

func (r *orderRepository) GetOrderByID(cafeID, orderID int64) (*models.Order, error) {
	order := &models.Order{}
	query := `SELECT id, cafe_id, table_number, status, total_amount, customer_name, notes, created_at, updated_at
	          FROM orders
	          WHERE id = $1 AND cafe_id = $2`
	err := r.db.QueryRow(query, orderID, cafeID).Scan(
		&order.ID, &order.CafeID, &order.TableNumber, &order.Status, &order.TotalAmount,
		&order.CustomerName, &order.Notes, &order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting order by ID %d: %v", ErrDatabaseError, orderID, err)
	}
	return order, nil
}

func (r *orderRepository) GetOrders(cafeID int64, filters models.OrderFilters) ([]models.Order, int, error) {
	orders := []models.Order{}
	totalCount := 0

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
        SELECT id, cafe_id, table_number, status, total_amount, customer_name, notes,
               created_at, updated_at,
               COUNT(*) OVER() as total_count
        FROM orders
    `)

	conditions := []string{"cafe_id = $1"}
	args := []interface{}{cafeID}
	argCounter := 2

	if filters.TableNumber != nil {
		conditions = append(conditions, fmt.Sprintf("table_number = $%d", argCounter))
		args = append(args, *filters.TableNumber)
		argCounter++
	}
	if filters.Status != nil && *filters.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argCounter))
		args = append(args, *filters.Status)
		argCounter++
	}
	if filters.Date != nil && *filters.Date != "" {
		parsedDate, err := time.Parse("2006-01-02", *filters.Date)
		if err == nil {
			startOfDay := time.Date(parsedDate.Year(), parsedDate.Month(), parsedDate.Day(), 0, 0, 0, 0, parsedDate.Location())
			endOfDay := startOfDay.AddDate(0, 0, 1)
			conditions = append(conditions, fmt.Sprintf("created_at >= $%d AND created_at < $%d", argCounter, argCounter+1))
			args = append(args, startOfDay, endOfDay)
			argCounter += 2
		}
	}

	queryBuilder.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	queryBuilder.WriteString(" ORDER BY created_at DESC")

	if filters.PageSize > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d", argCounter))
		args = append(args, filters.PageSize)
		argCounter++
		if filters.Page > 0 {
			offset := (filters.Page - 1) * filters.PageSize
			queryBuilder.WriteString(fmt.Sprintf(" OFFSET $%d", argCounter))
			args = append(args, offset)
		}
	}

	rows, err := r.db.Query(queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: querying orders: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var o models.Order
		err := rows.Scan(
			&o.ID, &o.CafeID, &o.TableNumber, &o.Status, &o.TotalAmount,
			&o.CustomerName, &o.Notes, &o.CreatedAt, &o.UpdatedAt,
			&totalCount,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: scanning order: %v", ErrDatabaseError, err)
		}
		orders = append(orders, o)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: iterating order rows: %v", ErrDatabaseError, err)
	}
	return orders, totalCount, nil
}

func (r *orderRepository) UpdateOrderStatus(executor SQLExecutor, cafeID, orderID int64, newStatus models.OrderStatus, updatedAt time.Time) error {
	query := `UPDATE orders SET status = $1, updated_at = $2 WHERE id = $3 AND cafe_id = $4`
	result, err := executor.Exec(query, newStatus, updatedAt, orderID, cafeID)
	if err != nil {
		return fmt.Errorf("%w: updating order status for ID %d: %v", ErrDatabaseError, orderID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for order status update ID %d: %v", ErrDatabaseError, orderID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *orderRepository) DeleteOrder(executor SQLExecutor, cafeID, orderID int64) (int64, error) {
	query := `DELETE FROM orders WHERE id = $1 AND cafe_id = $2`
	result, err := executor.Exec(query, orderID, cafeID)
	if err != nil {
		return 0, fmt.Errorf("%w: deleting order ID %d: %v", ErrDatabaseError, orderID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: getting rows affected for deleting order ID %d: %v", ErrDatabaseError, orderID, err)
	}
	if rowsAffected == 0 {
		return 0, ErrNotFound
	}
	return rowsAffected, nil
}

// --- OrderItem Methods ---

func (r *orderRepository) CreateOrderItem(executor SQLExecutor, item *models.OrderItem) (int64, error) {
	query := `INSERT INTO order_items
	            (order_id, menu_item_id, item_name, quantity, unit_price, total_price, notes, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	          RETURNING id`
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}

	err := executor.QueryRow(query,
		item.OrderID, item.MenuItemID, item.ItemName, item.Quantity,
		item.UnitPrice, item.TotalPrice, item.Notes, item.CreatedAt,
	).Scan(&item.ID)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return 0, fmt.Errorf("%w: creating order item (constraint: %s): %v", ErrDatabaseError, pqErr.Constraint, err)
		}
		return 0, fmt.Errorf("%w: creating order item: %v", ErrDatabaseError, err)
	}
	return item.ID, nil
}

func (r *orderRepository) GetOrderItemsByOrderID(orderID int64) ([]models.OrderItem, error) {
	items := []models.OrderItem{}
	query := `SELECT id, order_id, menu_item_id, item_name, quantity, unit_price, total_price, notes, created_at
	          FROM order_items
	          WHERE order_id = $1
	          ORDER BY id`

	rows, err := r.db.Query(query, orderID)
	if err != nil {
		return nil, fmt.Errorf("%w: querying order items for order ID %d: %v", ErrDatabaseError, orderID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.OrderItem
		err := rows.Scan(
			&item.ID, &item.OrderID, &item.MenuItemID, &item.ItemName, &item.Quantity,
			&item.UnitPrice, &item.TotalPrice, &item.Notes, &item.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning order item for order ID %d: %v", ErrDatabaseError, orderID, err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating order item rows for order ID %d: %v", ErrDatabaseError, orderID, err)
	}
	return items, nil
}

func (r *orderRepository) DeleteOrderItemsByOrderID(executor SQLExecutor, orderID int64) (int64, error) {
	query := `DELETE FROM order_items WHERE order_id = $1`
	result, err := executor.Exec(query, orderID)
	if err != nil {
		return 0, fmt.Errorf("%w: deleting order items for order ID %d: %v", ErrDatabaseError, orderID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: getting rows affected for deleting order items for order ID %d: %v", ErrDatabaseError, orderID, err)
	}
	return rowsAffected, nil
}

// --- Analytics snapshot ---

// GetOrdersInWindow returns the cafe's orders created inside [start, end)
// with their line items, in one joined pass ordered by order ID. The result
// is the immutable snapshot the aggregation engine consumes.
func (r *orderRepository) GetOrdersInWindow(cafeID int64, start, end time.Time) ([]models.Order, error) {
	query := `
		SELECT
		    o.id, o.cafe_id, o.table_number, o.status, o.total_amount,
		    o.customer_name, o.notes, o.created_at, o.updated_at,
		    oi.id, oi.menu_item_id, oi.item_name, oi.quantity, oi.unit_price, oi.total_price
		FROM orders o
		LEFT JOIN order_items oi ON oi.order_id = o.id
		WHERE o.cafe_id = $1 AND o.created_at >= $2 AND o.created_at < $3
		ORDER BY o.id, oi.id`

	rows, err := r.db.Query(query, cafeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: querying orders in window: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	orders := []models.Order{}
	var current *models.Order

	for rows.Next() {
		var o models.Order
		var itemID, menuItemID sql.NullInt64
		var itemName sql.NullString
		var quantity sql.NullInt64
		var unitPrice, totalPrice decimal.NullDecimal

		err := rows.Scan(
			&o.ID, &o.CafeID, &o.TableNumber, &o.Status, &o.TotalAmount,
			&o.CustomerName, &o.Notes, &o.CreatedAt, &o.UpdatedAt,
			&itemID, &menuItemID, &itemName, &quantity, &unitPrice, &totalPrice,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning order row in window: %v", ErrDatabaseError, err)
		}

		if current == nil || current.ID != o.ID {
			orders = append(orders, o)
			current = &orders[len(orders)-1]
		}

		if itemID.Valid {
			current.OrderItems = append(current.OrderItems, models.OrderItem{
				ID:         itemID.Int64,
				OrderID:    current.ID,
				MenuItemID: menuItemID.Int64,
				ItemName:   itemName.String,
				Quantity:   int(quantity.Int64),
				UnitPrice:  unitPrice.Decimal,
				TotalPrice: totalPrice.Decimal,
			})
		}
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating order rows in window: %v", ErrDatabaseError, err)
	}
	return orders, nil
}
