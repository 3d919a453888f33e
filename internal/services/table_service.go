package services

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenitintundwal/table-tap-sub000/internal/models"
	"github.com/thenitintundwal/table-tap-sub000/internal/repositories"
)

var (
	ErrTableNotFound      = errors.New("table not found")
	ErrInvalidTableStatus = errors.New("invalid table status")
	ErrTableNumberTaken   = errors.New("table number already in use")
)

// SaveTableRequest DTO, used for both create and update.
type SaveTableRequest struct {
	Number int    `json:"number" binding:"required,gt=0"`
	Seats  *int   `json:"seats"`
	Status string `json:"status"`
}

// TableService manages a cafe's physical tables.
type TableService interface {
	CreateTable(cafeID int64, req SaveTableRequest) (*models.CafeTable, error)
	GetTables(cafeID int64) ([]models.CafeTable, error)
	GetTableByID(cafeID, tableID int64) (*models.CafeTable, error)
	UpdateTable(cafeID, tableID int64, req SaveTableRequest) (*models.CafeTable, error)
	DeleteTable(cafeID, tableID int64) error
}

type tableService struct {
	tableRepo repositories.TableRepository
	db        *sql.DB
}

// NewTableService creates a new instance of TableService.
func NewTableService(tableRepo repositories.TableRepository, db *sql.DB) TableService {
	return &tableService{tableRepo: tableRepo, db: db}
}

func (s *tableService) CreateTable(cafeID int64, req SaveTableRequest) (*models.CafeTable, error) {
	status := req.Status
	if status == "" {
		status = models.TableStatusAvailable
	}
	if !models.IsValidTableStatus(status) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTableStatus, status)
	}

	table := &models.CafeTable{
		CafeID: cafeID,
		Number: req.Number,
		Seats:  req.Seats,
		Status: status,
	}
	if _, err := s.tableRepo.CreateTable(s.db, table); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrTableNumberTaken
		}
		return nil, fmt.Errorf("failed to create table: %w", err)
	}
	return table, nil
}

func (s *tableService) GetTables(cafeID int64) ([]models.CafeTable, error) {
	tables, err := s.tableRepo.GetTables(cafeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tables: %w", err)
	}
	return tables, nil
}

func (s *tableService) GetTableByID(cafeID, tableID int64) (*models.CafeTable, error) {
	table, err := s.tableRepo.GetTableByID(cafeID, tableID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTableNotFound
		}
		return nil, fmt.Errorf("failed to get table: %w", err)
	}
	return table, nil
}

func (s *tableService) UpdateTable(cafeID, tableID int64, req SaveTableRequest) (*models.CafeTable, error) {
	status := req.Status
	if status == "" {
		status = models.TableStatusAvailable
	}
	if !models.IsValidTableStatus(status) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTableStatus, status)
	}

	table, err := s.tableRepo.GetTableByID(cafeID, tableID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTableNotFound
		}
		return nil, fmt.Errorf("failed to fetch table for update: %w", err)
	}

	table.Number = req.Number
	table.Seats = req.Seats
	table.Status = status

	if err := s.tableRepo.UpdateTable(s.db, table); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTableNotFound
		}
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrTableNumberTaken
		}
		return nil, fmt.Errorf("failed to update table: %w", err)
	}
	return table, nil
}

func (s *tableService) DeleteTable(cafeID, tableID int64) error {
	_, err := s.tableRepo.DeleteTable(s.db, cafeID, tableID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrTableNotFound
		}
		return fmt.Errorf("failed to delete table: %w", err)
	}
	return nil
}
