package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/thenitintundwal/table-tap-sub000/internal/models"
)

// MenuRepository defines the interface for menu catalog database operations.
type MenuRepository interface {
	// Category methods
	CreateCategory(executor SQLExecutor, category *models.MenuCategory) (int64, error)
	GetCategories(cafeID int64) ([]models.MenuCategory, error)
	DeleteCategory(executor SQLExecutor, cafeID, categoryID int64) (int64, error)

	// Item methods
	CreateItem(executor SQLExecutor, item *models.MenuItem) (int64, error)
	GetItemByID(cafeID, itemID int64) (*models.MenuItem, error)
	GetItems(cafeID int64, filters models.MenuItemFilters) ([]models.MenuItem, int, error)
	UpdateItem(executor SQLExecutor, item *models.MenuItem) error
	DeleteItem(executor SQLExecutor, cafeID, itemID int64) (int64, error)
}

type menuRepository struct {
	db *sql.DB
}

// NewMenuRepository creates a new instance of MenuRepository.
func NewMenuRepository(db *sql.DB) MenuRepository {
	return &menuRepository{db: db}
}

// --- Category Methods ---

func (r *menuRepository) CreateCategory(executor SQLExecutor, category *models.MenuCategory) (int64, error) {
	query := `INSERT INTO menu_categories (cafe_id, name, description, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id`

	now := time.Now()
	err := executor.QueryRow(query,
		category.CafeID, category.Name, category.Description, now, now,
	).Scan(&category.ID)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return 0, fmt.Errorf("%w: %s (constraint: %s)", ErrDuplicateKey, pqErr.Message, pqErr.Constraint)
		}
		return 0, fmt.Errorf("%w: creating menu category: %v", ErrDatabaseError, err)
	}
	return category.ID, nil
}

func (r *menuRepository) GetCategories(cafeID int64) ([]models.MenuCategory, error) {
	categories := []models.MenuCategory{}
	query := `SELECT id, cafe_id, name, description, created_at, updated_at
	          FROM menu_categories
	          WHERE cafe_id = $1
	          ORDER BY name ASC`

	rows, err := r.db.Query(query, cafeID)
	if err != nil {
		return nil, fmt.Errorf("%w: querying menu categories: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var c models.MenuCategory
		if err := rows.Scan(&c.ID, &c.CafeID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: scanning menu category: %v", ErrDatabaseError, err)
		}
		categories = append(categories, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating menu category rows: %v", ErrDatabaseError, err)
	}
	return categories, nil
}

func (r *menuRepository) DeleteCategory(executor SQLExecutor, cafeID, categoryID int64) (int64, error) {
	query := `DELETE FROM menu_categories WHERE id = $1 AND cafe_id = $2`
	result, err := executor.Exec(query, categoryID, cafeID)
	if err != nil {
		return 0, fmt.Errorf("%w: deleting menu category ID %d: %v", ErrDatabaseError, categoryID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: getting rows affected for deleting menu category ID %d: %v", ErrDatabaseError, categoryID, err)
	}
	if rowsAffected == 0 {
		return 0, ErrNotFound
	}
	return rowsAffected, nil
}

// --- Item Methods ---

func (r *menuRepository) CreateItem(executor SQLExecutor, item *models.MenuItem) (int64, error) {
	query := `INSERT INTO menu_items
	            (cafe_id, category_id, name, description, price, cost_price, image_url, is_available, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	          RETURNING id`

	now := time.Now()
	err := executor.QueryRow(query,
		item.CafeID, item.CategoryID, item.Name, item.Description,
		item.Price, item.CostPrice, item.ImageURL, item.IsAvailable,
		now, now,
	).Scan(&item.ID)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return 0, fmt.Errorf("%w: creating menu item (constraint: %s): %v", ErrDatabaseError, pqErr.Constraint, err)
		}
		return 0, fmt.Errorf("%w: creating menu item: %v", ErrDatabaseError, err)
	}
	return item.ID, nil
}

func (r *menuRepository) GetItemByID(cafeID, itemID int64) (*models.MenuItem, error) {
	item := &models.MenuItem{}
	query := `SELECT id, cafe_id, category_id, name, description, price, cost_price, image_url, is_available, created_at, updated_at
	          FROM menu_items
	          WHERE id = $1 AND cafe_id = $2`
	err := r.db.QueryRow(query, itemID, cafeID).Scan(
		&item.ID, &item.CafeID, &item.CategoryID, &item.Name, &item.Description,
		&item.Price, &item.CostPrice, &item.ImageURL, &item.IsAvailable,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting menu item by ID %d: %v", ErrDatabaseError, itemID, err)
	}
	return item, nil
}

func (r *menuRepository) GetItems(cafeID int64, filters models.MenuItemFilters) ([]models.MenuItem, int, error) {
	items := []models.MenuItem{}
	totalCount := 0

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
        SELECT
            mi.id, mi.cafe_id, mi.category_id, mi.name, mi.description,
            mi.price, mi.cost_price, mi.image_url, mi.is_available,
            mi.created_at, mi.updated_at,
            mc.name as category_name,
            COUNT(*) OVER() as total_count
        FROM menu_items mi
        LEFT JOIN menu_categories mc ON mi.category_id = mc.id
    `)

	conditions := []string{fmt.Sprintf("mi.cafe_id = $%d", 1)}
	args := []interface{}{cafeID}
	argCounter := 2

	if filters.CategoryID != nil {
		conditions = append(conditions, fmt.Sprintf("mi.category_id = $%d", argCounter))
		args = append(args, *filters.CategoryID)
		argCounter++
	}
	if filters.IsAvailable != nil {
		conditions = append(conditions, fmt.Sprintf("mi.is_available = $%d", argCounter))
		args = append(args, *filters.IsAvailable)
		argCounter++
	}
	if filters.Search != "" {
		conditions = append(conditions, fmt.Sprintf("mi.name ILIKE $%d", argCounter))
		args = append(args, "%"+filters.Search+"%")
		argCounter++
	}

	queryBuilder.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	queryBuilder.WriteString(" ORDER BY mi.name ASC")

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
		return nil, 0, fmt.Errorf("%w: querying menu items: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.MenuItem
		var categoryName sql.NullString

		err := rows.Scan(
			&item.ID, &item.CafeID, &item.CategoryID, &item.Name, &item.Description,
			&item.Price, &item.CostPrice, &item.ImageURL, &item.IsAvailable,
			&item.CreatedAt, &item.UpdatedAt,
			&categoryName,
			&totalCount,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: scanning menu item: %v", ErrDatabaseError, err)
		}

		if item.CategoryID != nil && categoryName.Valid {
			item.Category = &models.MenuCategory{
				ID:     *item.CategoryID,
				CafeID: item.CafeID,
				Name:   categoryName.String,
			}
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: iterating menu item rows: %v", ErrDatabaseError, err)
	}
	return items, totalCount, nil
}

func (r *menuRepository) UpdateItem(executor SQLExecutor, item *models.MenuItem) error {
	query := `UPDATE menu_items
	          SET category_id = $1, name = $2, description = $3, price = $4, cost_price = $5,
	              image_url = $6, is_available = $7, updated_at = $8
	          WHERE id = $9 AND cafe_id = $10`
	result, err := executor.Exec(query,
		item.CategoryID, item.Name, item.Description, item.Price, item.CostPrice,
		item.ImageURL, item.IsAvailable, time.Now(), item.ID, item.CafeID,
	)
	if err != nil {
		return fmt.Errorf("%w: updating menu item ID %d: %v", ErrDatabaseError, item.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for menu item update ID %d: %v", ErrDatabaseError, item.ID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *menuRepository) DeleteItem(executor SQLExecutor, cafeID, itemID int64) (int64, error) {
	query := `DELETE FROM menu_items WHERE id = $1 AND cafe_id = $2`
	result, err := executor.Exec(query, itemID, cafeID)
	if err != nil {
		return 0, fmt.Errorf("%w: deleting menu item ID %d: %v", ErrDatabaseError, itemID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: getting rows affected for deleting menu item ID %d: %v", ErrDatabaseError, itemID, err)
	}
	if rowsAffected == 0 {
		return 0, ErrNotFound
	}
	return rowsAffected, nil
}
