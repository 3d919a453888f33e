package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thenitintundwal/table-tap-sub000/internal/models"
	"github.com/thenitintundwal/table-tap-sub000/internal/services"
	"github.com/thenitintundwal/table-tap-sub000/pkg/utils"
)

// MenuHandler holds the menu service.
type MenuHandler struct {
	menuService services.MenuService
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(ms services.MenuService) *MenuHandler {
	return &MenuHandler{menuService: ms}
}

// CreateCategory creates a menu category for the cafe.
func (h *MenuHandler) CreateCategory(c *gin.Context) {
	cafeID, ok := resolveCafeID(c)
	if !ok {
		return
	}

	var req services.CreateMenuCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload.", err.Error()))
		return
	}

	category, err := h.menuService.CreateCategory(cafeID, req)
	if err != nil {
		utils.LogError(err, "CreateCategory: Error from menuService.CreateCategory")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create category.", "Internal error"))
		return
	}
	c.JSON(http.StatusCreated, category)
}

// GetCategories lists the cafe's menu categories.
func (h *MenuHandler) GetCategories(c *gin.Context) {
	cafeID, ok := resolveCafeID(c)
	if !ok {
		return
	}

	categories, err := h.menuService.GetCategories(cafeID)
	if err != nil {
		utils.LogError(err, "GetCategories: Error from menuService.GetCategories")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch categories.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": categories})
}

// DeleteCategory removes a menu category.
func (h *MenuHandler) DeleteCategory(c *gin.Context) {
	cafeID, ok := resolveCafeID(c)
	if !ok {
		return
	}
	categoryID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.menuService.DeleteCategory(cafeID, categoryID); err != nil {
		if errors.Is(err, services.ErrMenuCategoryNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Category not found.", ""))
		} else {
			utils.LogError(err, "DeleteCategory: Error from menuService.DeleteCategory")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete category.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}

// CreateItem adds a menu item to the cafe's catalog.
func (h *MenuHandler) CreateItem(c *gin.Context) {
	cafeID, ok := resolveCafeID(c)
	if !ok {
		return
	}

	var req services.SaveMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload.", err.Error()))
		return
	}

	item, err := h.menuService.CreateItem(cafeID, req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPrice) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid price.", err.Error()))
		} else if errors.Is(err, services.ErrMenuCategoryNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Category not found.", err.Error()))
		} else {
			utils.LogError(err, "CreateItem: Error from menuService.CreateItem")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create menu item.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, item)
}

// GetItems lists menu items with optional category/availability/search filters.
func (h *MenuHandler) GetItems(c *gin.Context) {
	cafeID, ok := resolveCafeID(c)
	if !ok {
		return
	}

	var filters models.MenuItemFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid query parameters.", err.Error()))
		return
	}
	filters.Page, filters.PageSize = parsePagination(c)

	items, total, err := h.menuService.GetItems(cafeID, filters)
	if err != nil {
		utils.LogError(err, "GetItems: Error from menuService.GetItems")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch menu items.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":      items,
		"total":     total,
		"page":      filters.Page,
		"page_size": filters.PageSize,
	})
}

// GetItemByID returns a single menu item.
func (h *MenuHandler) GetItemByID(c *gin.Context) {
	cafeID, ok := resolveCafeID(c)
	if !ok {
		return
	}
	itemID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	item, err := h.menuService.GetItemByID(cafeID, itemID)
	if err != nil {
		if errors.Is(err, services.ErrMenuItemNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Menu item not found.", ""))
		} else {
			utils.LogError(err, "GetItemByID: Error from menuService.GetItemByID")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch menu item.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, item)
}

// UpdateItem updates a menu item.
func (h *MenuHandler) UpdateItem(c *gin.Context) {
	cafeID, ok := resolveCafeID(c)
	if !ok {
		return
	}
	itemID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.SaveMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload.", err.Error()))
		return
	}

	item, err := h.menuService.UpdateItem(cafeID, itemID, req)
	if err != nil {
		if errors.Is(err, services.ErrMenuItemNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Menu item not found.", ""))
		} else if errors.Is(err, services.ErrInvalidPrice) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid price.", err.Error()))
		} else {
			utils.LogError(err, "UpdateItem: Error from menuService.UpdateItem")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update menu item.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteItem removes a menu item.
func (h *MenuHandler) DeleteItem(c *gin.Context) {
	cafeID, ok := resolveCafeID(c)
	if !ok {
		return
	}
	itemID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.menuService.DeleteItem(cafeID, itemID); err != nil {
		if errors.Is(err, services.ErrMenuItemNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Menu item not found.", ""))
		} else {
			utils.LogError(err, "DeleteItem: Error from menuService.DeleteItem")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete menu item.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted successfully"})
}
