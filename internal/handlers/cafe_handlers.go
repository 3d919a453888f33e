package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thenitintundwal/table-tap-sub000/internal/models"
	"github.com/thenitintundwal/table-tap-sub000/internal/services"
	"github.com/thenitintundwal/table-tap-sub000/pkg/utils"
)

// CafeHandler holds the cafe service.
type CafeHandler struct {
	cafeService services.CafeService
}

// NewCafeHandler creates a new CafeHandler.
func NewCafeHandler(cs services.CafeService) *CafeHandler {
	return &CafeHandler{cafeService: cs}
}

// CreateCafe registers a new cafe on the platform. Admin only.
func (h *CafeHandler) CreateCafe(c *gin.Context) {
	var req services.CreateCafeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload.", err.Error()))
		return
	}

	cafe, err := h.cafeService.CreateCafe(req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCafePlan) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid subscription plan.", err.Error()))
		} else {
			utils.LogError(err, "CreateCafe: Error from cafeService.CreateCafe")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create cafe.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, cafe)
}

// GetCafes lists cafes with optional plan/active filters. Admin only.
func (h *CafeHandler) GetCafes(c *gin.Context) {
	var filters models.CafeFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid query parameters.", err.Error()))
		return
	}
	filters.Page, filters.PageSize = parsePagination(c)

	cafes, total, err := h.cafeService.GetCafes(filters)
	if err != nil {
		utils.LogError(err, "GetCafes: Error from cafeService.GetCafes")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch cafes.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":      cafes,
		"total":     total,
		"page":      filters.Page,
		"page_size": filters.PageSize,
	})
}

// GetCafeByID returns a single cafe.
func (h *CafeHandler) GetCafeByID(c *gin.Context) {
	cafeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	cafe, err := h.cafeService.GetCafeByID(cafeID)
	if err != nil {
		if errors.Is(err, services.ErrCafeNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Cafe not found.", ""))
		} else {
			utils.LogError(err, "GetCafeByID: Error from cafeService.GetCafeByID")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch cafe.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, cafe)
}

// UpdateCafe updates a cafe's details or plan. Admin only.
func (h *CafeHandler) UpdateCafe(c *gin.Context) {
	cafeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.UpdateCafeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload.", err.Error()))
		return
	}

	cafe, err := h.cafeService.UpdateCafe(cafeID, req)
	if err != nil {
		if errors.Is(err, services.ErrCafeNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Cafe not found.", ""))
		} else if errors.Is(err, services.ErrInvalidCafePlan) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid subscription plan.", err.Error()))
		} else {
			utils.LogError(err, "UpdateCafe: Error from cafeService.UpdateCafe")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update cafe.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, cafe)
}

// DeleteCafe removes a cafe. Admin only.
func (h *CafeHandler) DeleteCafe(c *gin.Context) {
	cafeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.cafeService.DeleteCafe(cafeID); err != nil {
		if errors.Is(err, services.ErrCafeNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Cafe not found.", ""))
		} else {
			utils.LogError(err, "DeleteCafe: Error from cafeService.DeleteCafe")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete cafe.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cafe deleted successfully"})
}
