package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/thenitintundwal/table-tap-sub000/internal/models"
	"github.com/thenitintundwal/table-tap-sub000/pkg/utils"
)

// resolveCafeID determines which tenant a request is scoped to. Owners and
// staff are bound to the cafe in their token; platform admins select one via
// the cafe_id query parameter.
func resolveCafeID(c *gin.Context) (int64, bool) {
	if cafeID, exists := c.Get("cafeID"); exists {
		if id, ok := cafeID.(int64); ok {
			return id, true
		}
	}

	role, _ := c.Get("userRole")
	if roleStr, ok := role.(string); ok && roleStr == models.RoleAdmin {
		if cafeIDStr := c.Query("cafe_id"); cafeIDStr != "" {
			if id, err := strconv.ParseInt(cafeIDStr, 10, 64); err == nil {
				return id, true
			}
		}
	}

	utils.RespondWithError(c, utils.NewAPIError(http.StatusForbidden, utils.ErrCodeForbidden,
		"No cafe scope for this request.", "token carries no cafe binding and no valid cafe_id parameter given"))
	return 0, false
}

// parseIDParam parses a path parameter as an int64 ID.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed,
			"Invalid "+name+" format.", err.Error()))
		return 0, false
	}
	return id, true
}

// parsePagination reads page/page_size query parameters with defaults.
func parsePagination(c *gin.Context) (int, int) {
	page := 1
	pageSize := 10
	if pageStr := c.Query("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}
	if pageSizeStr := c.Query("page_size"); pageSizeStr != "" {
		if ps, err := strconv.Atoi(pageSizeStr); err == nil && ps > 0 {
			pageSize = ps
		}
	}
	return page, pageSize
}
