package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thenitintundwal/table-tap-sub000/internal/services"
	"github.com/thenitintundwal/table-tap-sub000/pkg/utils"
)

// TableHandler holds the table service.
type TableHandler struct {
	tableService services.TableService
}

// NewTableHandler creates a new TableHandler.
func NewTableHandler(ts services.TableService) *TableHandler {
	return &TableHandler{tableService: ts}
}

// CreateTable adds a table to the cafe floor.
func (h *TableHandler) CreateTable(c *gin.Context) {
	cafeID, ok := resolveCafeID(c)
	if !ok {
		return
	}

	var req services.SaveTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload.", err.Error()))
		return
	}

	table, err := h.tableService.CreateTable(cafeID, req)
	if err != nil {
		if errors.Is(err, services.ErrTableNumberTaken) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Table number already in use.", err.Error()))
		} else if errors.Is(err, services.ErrInvalidTableStatus) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid table status.", err.Error()))
		} else {
			utils.LogError(err, "CreateTable: Error from tableService.CreateTable")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create table.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, table)
}

// GetTables lists the cafe's tables.
func (h *TableHandler) GetTables(c *gin.Context) {
	cafeID, ok := resolveCafeID(c)
	if !ok {
		return
	}

	tables, err := h.tableService.GetTables(cafeID)
	if err != nil {
		utils.LogError(err, "GetTables: Error from tableService.GetTables")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch tables.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": tables})
}

// GetTableByID returns a single table.
func (h *TableHandler) GetTableByID(c *gin.Context) {
	cafeID, ok := resolveCafeID(c)
	if !ok {
		return
	}
	tableID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	table, err := h.tableService.GetTableByID(cafeID, tableID)
	if err != nil {
		if errors.Is(err, services.ErrTableNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Table not found.", ""))
		} else {
			utils.LogError(err, "GetTableByID: Error from tableService.GetTableByID")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch table.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, table)
}

// UpdateTable updates a table's number, seats or status.
func (h *TableHandler) UpdateTable(c *gin.Context) {
	cafeID, ok := resolveCafeID(c)
	if !ok {
		return
	}
	tableID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.SaveTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload.", err.Error()))
		return
	}

	table, err := h.tableService.UpdateTable(cafeID, tableID, req)
	if err != nil {
		if errors.Is(err, services.ErrTableNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Table not found.", ""))
		} else if errors.Is(err, services.ErrTableNumberTaken) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Table number already in use.", err.Error()))
		} else if errors.Is(err, services.ErrInvalidTableStatus) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid table status.", err.Error()))
		} else {
			utils.LogError(err, "UpdateTable: Error from tableService.UpdateTable")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update table.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, table)
}

// DeleteTable removes a table.
func (h *TableHandler) DeleteTable(c *gin.Context) {
	cafeID, ok := resolveCafeID(c)
	if !ok {
		return
	}
	tableID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.tableService.DeleteTable(cafeID, tableID); err != nil {
		if errors.Is(err, services.ErrTableNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Table not found.", ""))
		} else {
			utils.LogError(err, "DeleteTable: Error from tableService.DeleteTable")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete table.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Table deleted successfully"})
}
