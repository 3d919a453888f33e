package services

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenitintundwal/table-tap-sub000/internal/models"
	"github.com/thenitintundwal/table-tap-sub000/internal/repositories"
)

var ErrInvalidCafePlan = errors.New("invalid cafe plan")

// CreateCafeRequest DTO.
type CreateCafeRequest struct {
	Name    string  `json:"name" binding:"required"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Plan    string  `json:"plan" binding:"required"`
}

// UpdateCafeRequest DTO.
type UpdateCafeRequest struct {
	Name     string  `json:"name" binding:"required"`
	Address  *string `json:"address"`
	Phone    *string `json:"phone"`
	Plan     string  `json:"plan" binding:"required"`
	IsActive *bool   `json:"is_active"`
}

// CafeService manages the tenant directory.
type CafeService interface {
	CreateCafe(req CreateCafeRequest) (*models.Cafe, error)
	GetCafes(filters models.CafeFilters) ([]models.Cafe, int, error)
	GetCafeByID(cafeID int64) (*models.Cafe, error)
	UpdateCafe(cafeID int64, req UpdateCafeRequest) (*models.Cafe, error)
	DeleteCafe(cafeID int64) error
}

type cafeService struct {
	cafeRepo repositories.CafeRepository
	db       *sql.DB
}

// NewCafeService creates a new instance of CafeService.
func NewCafeService(cafeRepo repositories.CafeRepository, db *sql.DB) CafeService {
	return &cafeService{cafeRepo: cafeRepo, db: db}
}

func (s *cafeService) CreateCafe(req CreateCafeRequest) (*models.Cafe, error) {
	if !models.IsValidCafePlan(req.Plan) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCafePlan, req.Plan)
	}

	cafe := &models.Cafe{
		Name:     req.Name,
		Address:  req.Address,
		Phone:    req.Phone,
		Plan:     models.CafePlan(req.Plan),
		IsActive: true,
	}

	cafeID, err := s.cafeRepo.CreateCafe(s.db, cafe)
	if err != nil {
		return nil, fmt.Errorf("failed to create cafe: %w", err)
	}
	return s.cafeRepo.GetCafeByID(cafeID)
}

func (s *cafeService) GetCafes(filters models.CafeFilters) ([]models.Cafe, int, error) {
	cafes, totalCount, err := s.cafeRepo.GetCafes(filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get cafes: %w", err)
	}
	return cafes, totalCount, nil
}

func (s *cafeService) GetCafeByID(cafeID int64) (*models.Cafe, error) {
	cafe, err := s.cafeRepo.GetCafeByID(cafeID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCafeNotFound
		}
		return nil, fmt.Errorf("failed to get cafe by ID: %w", err)
	}
	return cafe, nil
}

func (s *cafeService) UpdateCafe(cafeID int64, req UpdateCafeRequest) (*models.Cafe, error) {
	if !models.IsValidCafePlan(req.Plan) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCafePlan, req.Plan)
	}

	cafe, err := s.cafeRepo.GetCafeByID(cafeID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCafeNotFound
		}
		return nil, fmt.Errorf("failed to fetch cafe for update: %w", err)
	}

	cafe.Name = req.Name
	cafe.Address = req.Address
	cafe.Phone = req.Phone
	cafe.Plan = models.CafePlan(req.Plan)
	if req.IsActive != nil {
		cafe.IsActive = *req.IsActive
	}

	if err := s.cafeRepo.UpdateCafe(s.db, cafe); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCafeNotFound
		}
		return nil, fmt.Errorf("failed to update cafe: %w", err)
	}
	return s.cafeRepo.GetCafeByID(cafeID)
}

func (s *cafeService) DeleteCafe(cafeID int64) error {
	_, err := s.cafeRepo.DeleteCafe(s.db, cafeID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrCafeNotFound
		}
		return fmt.Errorf("failed to delete cafe: %w", err)
	}
	return nil
}
