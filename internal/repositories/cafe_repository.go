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

// CafeRepository defines the interface for tenant directory operations.
type CafeRepository interface {
	CreateCafe(executor SQLExecutor, cafe *models.Cafe) (int64, error)
	GetCafeByID(cafeID int64) (*models.Cafe, error)
	GetCafes(filters models.CafeFilters) ([]models.Cafe, int, error)
	UpdateCafe(executor SQLExecutor, cafe *models.Cafe) error
	DeleteCafe(executor SQLExecutor, cafeID int64) (int64, error)
}

type cafeRepository struct {
	db *sql.DB
}

// NewCafeRepository creates a new instance of CafeRepository.
func NewCafeRepository(db *sql.DB) CafeRepository {
	return &cafeRepository{db: db}
}

func (r *cafeRepository) CreateCafe(executor SQLExecutor, cafe *models.Cafe) (int64, error) {
	query := `INSERT INTO cafes (name, address, phone, plan, is_active, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          RETURNING id`

	if cafe.CreatedAt.IsZero() {
		cafe.CreatedAt = time.Now()
	}
	if cafe.UpdatedAt.IsZero() {
		cafe.UpdatedAt = time.Now()
	}

	err := executor.QueryRow(query,
		cafe.Name, cafe.Address, cafe.Phone, cafe.Plan, cafe.IsActive,
		cafe.CreatedAt, cafe.UpdatedAt,
	).Scan(&cafe.ID)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return 0, fmt.Errorf("%w: %s (constraint: %s)", ErrDuplicateKey, pqErr.Message, pqErr.Constraint)
		}
		return 0, fmt.Errorf("%w: creating cafe: %v", ErrDatabaseError, err)
	}
	return cafe.ID, nil
}

func (r *cafeRepository) GetCafeByID(cafeID int64) (*models.Cafe, error) {
	cafe := &models.Cafe{}
	query := `SELECT id, name, address, phone, plan, is_active, created_at, updated_at
	          FROM cafes
	          WHERE id = $1`
	err := r.db.QueryRow(query, cafeID).Scan(
		&cafe.ID, &cafe.Name, &cafe.Address, &cafe.Phone, &cafe.Plan,
		&cafe.IsActive, &cafe.CreatedAt, &cafe.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting cafe by ID %d: %v", ErrDatabaseError, cafeID, err)
	}
	return cafe, nil
}

func (r *cafeRepository) GetCafes(filters models.CafeFilters) ([]models.Cafe, int, error) {
	cafes := []models.Cafe{}
	totalCount := 0

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
        SELECT id, name, address, phone, plan, is_active, created_at, updated_at,
               COUNT(*) OVER() as total_count
        FROM cafes
    `)

	var conditions []string
	var args []interface{}
	argCounter := 1

	if filters.Plan != nil && *filters.Plan != "" {
		conditions = append(conditions, fmt.Sprintf("plan = $%d", argCounter))
		args = append(args, *filters.Plan)
		argCounter++
	}
	if filters.IsActive != nil {
		conditions = append(conditions, fmt.Sprintf("is_active = $%d", argCounter))
		args = append(args, *filters.IsActive)
		argCounter++
	}

	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}
	queryBuilder.WriteString(" ORDER BY name ASC")

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
		return nil, 0, fmt.Errorf("%w: querying cafes: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var c models.Cafe
		err := rows.Scan(
			&c.ID, &c.Name, &c.Address, &c.Phone, &c.Plan,
			&c.IsActive, &c.CreatedAt, &c.UpdatedAt,
			&totalCount,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: scanning cafe: %v", ErrDatabaseError, err)
		}
		cafes = append(cafes, c)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: iterating cafe rows: %v", ErrDatabaseError, err)
	}
	return cafes, totalCount, nil
}

func (r *cafeRepository) UpdateCafe(executor SQLExecutor, cafe *models.Cafe) error {
	query := `UPDATE cafes
	          SET name = $1, address = $2, phone = $3, plan = $4, is_active = $5, updated_at = $6
	          WHERE id = $7`
	result, err := executor.Exec(query,
		cafe.Name, cafe.Address, cafe.Phone, cafe.Plan, cafe.IsActive, time.Now(), cafe.ID,
	)
	if err != nil {
		return fmt.Errorf("%w: updating cafe ID %d: %v", ErrDatabaseError, cafe.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for cafe update ID %d: %v", ErrDatabaseError, cafe.ID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *cafeRepository) DeleteCafe(executor SQLExecutor, cafeID int64) (int64, error) {
	query := `DELETE FROM cafes WHERE id = $1`
	result, err := executor.Exec(query, cafeID)
	if err != nil {
		return 0, fmt.Errorf("%w: deleting cafe ID %d: %v", ErrDatabaseError, cafeID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: getting rows affected for deleting cafe ID %d: %v", ErrDatabaseError, cafeID, err)
	}
	if rowsAffected == 0 {
		return 0, ErrNotFound
	}
	return rowsAffected, nil
}
