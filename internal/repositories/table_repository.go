package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/thenitintundwal/table-tap-sub000/internal/models"
)

// TableRepository defines the interface for cafe table database operations.
type TableRepository interface {
	CreateTable(executor SQLExecutor, table *models.CafeTable) (int64, error)
	GetTableByID(cafeID, tableID int64) (*models.CafeTable, error)
	GetTables(cafeID int64) ([]models.CafeTable, error)
	UpdateTable(executor SQLExecutor, table *models.CafeTable) error
	DeleteTable(executor SQLExecutor, cafeID, tableID int64) (int64, error)
}

type tableRepository struct {
	db *sql.DB
}

// NewTableRepository creates a new instance of TableRepository.
func NewTableRepository(db *sql.DB) TableRepository {
	return &tableRepository{db: db}
}

func (r *tableRepository) CreateTable(executor SQLExecutor, table *models.CafeTable) (int64, error) {
	query := `INSERT INTO cafe_tables (cafe_id, number, seats, status, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id`

	now := time.Now()
	err := executor.QueryRow(query,
		table.CafeID, table.Number, table.Seats, table.Status, now, now,
	).Scan(&table.ID)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return 0, fmt.Errorf("%w: %s (constraint: %s)", ErrDuplicateKey, pqErr.Message, pqErr.Constraint)
		}
		return 0, fmt.Errorf("%w: creating cafe table: %v", ErrDatabaseError, err)
	}
	return table.ID, nil
}

func (r *tableRepository) GetTableByID(cafeID, tableID int64) (*models.CafeTable, error) {
	table := &models.CafeTable{}
	query := `SELECT id, cafe_id, number, seats, status, created_at, updated_at
	          FROM cafe_tables
	          WHERE id = $1 AND cafe_id = $2`
	err := r.db.QueryRow(query, tableID, cafeID).Scan(
		&table.ID, &table.CafeID, &table.Number, &table.Seats, &table.Status,
		&table.CreatedAt, &table.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting cafe table by ID %d: %v", ErrDatabaseError, tableID, err)
	}
	return table, nil
}

func (r *tableRepository) GetTables(cafeID int64) ([]models.CafeTable, error) {
	tables := []models.CafeTable{}
	query := `SELECT id, cafe_id, number, seats, status, created_at, updated_at
	          FROM cafe_tables
	          WHERE cafe_id = $1
	          ORDER BY number ASC`

	rows, err := r.db.Query(query, cafeID)
	if err != nil {
		return nil, fmt.Errorf("%w: querying cafe tables: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var t models.CafeTable
		err := rows.Scan(&t.ID, &t.CafeID, &t.Number, &t.Seats, &t.Status, &t.CreatedAt, &t.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning cafe table: %v", ErrDatabaseError, err)
		}
		tables = append(tables, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating cafe table rows: %v", ErrDatabaseError, err)
	}
	return tables, nil
}

func (r *tableRepository) UpdateTable(executor SQLExecutor, table *models.CafeTable) error {
	query := `UPDATE cafe_tables
	          SET number = $1, seats = $2, status = $3, updated_at = $4
	          WHERE id = $5 AND cafe_id = $6`
	result, err := executor.Exec(query,
		table.Number, table.Seats, table.Status, time.Now(), table.ID, table.CafeID,
	)
	if err != nil {
		return fmt.Errorf("%w: updating cafe table ID %d: %v", ErrDatabaseError, table.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for cafe table update ID %d: %v", ErrDatabaseError, table.ID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *tableRepository) DeleteTable(executor SQLExecutor, cafeID, tableID int64) (int64, error) {
	query := `DELETE FROM cafe_tables WHERE id = $1 AND cafe_id = $2`
	result, err := executor.Exec(query, tableID, cafeID)
	if err != nil {
		return 0, fmt.Errorf("%w: deleting cafe table ID %d: %v", ErrDatabaseError, tableID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: getting rows affected for deleting cafe table ID %d: %v", ErrDatabaseError, tableID, err)
	}
	if rowsAffected == 0 {
		return 0, ErrNotFound
	}
	return rowsAffected, nil
}
