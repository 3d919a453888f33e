package services

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/thenitintundwal/table-tap-sub000/internal/models"
	"github.com/thenitintundwal/table-tap-sub000/internal/repositories"
)

var (
	ErrMenuItemNotFound     = errors.New("menu item not found")
	ErrMenuCategoryNotFound = errors.New("menu category not found")
	ErrInvalidPrice         = errors.New("price and cost price must be non-negative")
)

// CreateMenuCategoryRequest DTO.
type CreateMenuCategoryRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

// SaveMenuItemRequest DTO, used for both create and update.
type SaveMenuItemRequest struct {
	CategoryID  *int64          `json:"category_id"`
	Name        string          `json:"name" binding:"required"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	ImageURL    *string         `json:"image_url"`
	IsAvailable *bool           `json:"is_available"`
}

// MenuService manages a cafe's menu catalog.
type MenuService interface {
	CreateCategory(cafeID int64, req CreateMenuCategoryRequest) (*models.MenuCategory, error)
	GetCategories(cafeID int64) ([]models.MenuCategory, error)
	DeleteCategory(cafeID, categoryID int64) error

	CreateItem(cafeID int64, req SaveMenuItemRequest) (*models.MenuItem, error)
	GetItems(cafeID int64, filters models.MenuItemFilters) ([]models.MenuItem, int, error)
	GetItemByID(cafeID, itemID int64) (*models.MenuItem, error)
	UpdateItem(cafeID, itemID int64, req SaveMenuItemRequest) (*models.MenuItem, error)
	DeleteItem(cafeID, itemID int64) error
}

type menuService struct {
	menuRepo repositories.MenuRepository
	db       *sql.DB
}

// NewMenuService creates a new instance of MenuService.
func NewMenuService(menuRepo repositories.MenuRepository, db *sql.DB) MenuService {
	return &menuService{menuRepo: menuRepo, db: db}
}

func (s *menuService) CreateCategory(cafeID int64, req CreateMenuCategoryRequest) (*models.MenuCategory, error) {
	category := &models.MenuCategory{
		CafeID:      cafeID,
		Name:        req.Name,
		Description: req.Description,
	}
	if _, err := s.menuRepo.CreateCategory(s.db, category); err != nil {
		return nil, fmt.Errorf("failed to create menu category: %w", err)
	}
	return category, nil
}

func (s *menuService) GetCategories(cafeID int64) ([]models.MenuCategory, error) {
	categories, err := s.menuRepo.GetCategories(cafeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get menu categories: %w", err)
	}
	return categories, nil
}

func (s *menuService) DeleteCategory(cafeID, categoryID int64) error {
	_, err := s.menuRepo.DeleteCategory(s.db, cafeID, categoryID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrMenuCategoryNotFound
		}
		return fmt.Errorf("failed to delete menu category: %w", err)
	}
	return nil
}

func (s *menuService) CreateItem(cafeID int64, req SaveMenuItemRequest) (*models.MenuItem, error) {
	if err := validateItemPrices(req); err != nil {
		return nil, err
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	item := &models.MenuItem{
		CafeID:      cafeID,
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CostPrice:   req.CostPrice,
		ImageURL:    req.ImageURL,
		IsAvailable: isAvailable,
	}
	if _, err := s.menuRepo.CreateItem(s.db, item); err != nil {
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}
	return s.menuRepo.GetItemByID(cafeID, item.ID)
}

func (s *menuService) GetItems(cafeID int64, filters models.MenuItemFilters) ([]models.MenuItem, int, error) {
	items, totalCount, err := s.menuRepo.GetItems(cafeID, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get menu items: %w", err)
	}
	return items, totalCount, nil
}

func (s *menuService) GetItemByID(cafeID, itemID int64) (*models.MenuItem, error) {
	item, err := s.menuRepo.GetItemByID(cafeID, itemID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}
	return item, nil
}

func (s *menuService) UpdateItem(cafeID, itemID int64, req SaveMenuItemRequest) (*models.MenuItem, error) {
	if err := validateItemPrices(req); err != nil {
		return nil, err
	}

	item, err := s.menuRepo.GetItemByID(cafeID, itemID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, fmt.Errorf("failed to fetch menu item for update: %w", err)
	}

	item.CategoryID = req.CategoryID
	item.Name = req.Name
	item.Description = req.Description
	item.Price = req.Price
	item.CostPrice = req.CostPrice
	item.ImageURL = req.ImageURL
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}

	if err := s.menuRepo.UpdateItem(s.db, item); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, fmt.Errorf("failed to update menu item: %w", err)
	}
	return s.menuRepo.GetItemByID(cafeID, itemID)
}

func (s *menuService) DeleteItem(cafeID, itemID int64) error {
	_, err := s.menuRepo.DeleteItem(s.db, cafeID, itemID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrMenuItemNotFound
		}
		return fmt.Errorf("failed to delete menu item: %w", err)
	}
	return nil
}

func validateItemPrices(req SaveMenuItemRequest) error {
	if req.Price.IsNegative() || req.CostPrice.IsNegative() {
		return ErrInvalidPrice
	}
	return nil
}
