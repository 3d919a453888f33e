package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thenitintundwal/table-tap-sub000/internal/models"
	"github.com/thenitintundwal/table-tap-sub000/internal/services"
	"github.com/thenitintundwal/table-tap-sub000/pkg/utils"
)

// AnalyticsHandler holds the analytics service.
type AnalyticsHandler struct {
	analyticsService services.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(as services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: as}
}

// parseReportParams reads the period (day|month|year, default day) and date
// (YYYY-MM-DD, default today) query parameters shared by the report endpoints.
func parseReportParams(c *gin.Context) (models.ReportPeriod, time.Time, bool) {
	period := models.ReportPeriod(c.DefaultQuery("period", string(models.PeriodDay)))

	ref := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateStr, ref.Location())
		if err != nil {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed,
				"Invalid date format, expected YYYY-MM-DD.", err.Error()))
			return period, ref, false
		}
		ref = parsed
	}
	return period, ref, true
}

// GetSalesReport returns the period-bucketed sales report for a cafe.
func (h *AnalyticsHandler) GetSalesReport(c *gin.Context) {
	cafeID, ok := resolveCafeID(c)
	if !ok {
		return
	}
	period, ref, ok := parseReportParams(c)
	if !ok {
		return
	}

	report, err := h.analyticsService.GetSalesReport(cafeID, period, ref)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPeriod) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid report period, expected day, month or year.", err.Error()))
		} else if errors.Is(err, services.ErrCafeNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Cafe not found.", ""))
		} else {
			utils.LogError(err, "GetSalesReport: Error from analyticsService.GetSalesReport")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to build sales report.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetMenuEngineering returns the profitability quadrant matrix for a cafe's
// menu over the requested period.
func (h *AnalyticsHandler) GetMenuEngineering(c *gin.Context) {
	cafeID, ok := resolveCafeID(c)
	if !ok {
		return
	}
	period, ref, ok := parseReportParams(c)
	if !ok {
		return
	}

	report, err := h.analyticsService.GetMenuEngineeringReport(cafeID, period, ref)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPeriod) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid report period, expected day, month or year.", err.Error()))
		} else if errors.Is(err, services.ErrCafeNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Cafe not found.", ""))
		} else {
			utils.LogError(err, "GetMenuEngineering: Error from analyticsService.GetMenuEngineeringReport")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to build menu engineering report.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetDashboard returns the combined today/this-month summary for a cafe.
func (h *AnalyticsHandler) GetDashboard(c *gin.Context) {
	cafeID, ok := resolveCafeID(c)
	if !ok {
		return
	}

	summary, err := h.analyticsService.GetDashboardSummary(cafeID)
	if err != nil {
		if errors.Is(err, services.ErrCafeNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Cafe not found.", ""))
		} else {
			utils.LogError(err, "GetDashboard: Error from analyticsService.GetDashboardSummary")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to build dashboard summary.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetPlatformRevenue returns subscription revenue across all active cafes,
// broken down by plan. Admin only.
func (h *AnalyticsHandler) GetPlatformRevenue(c *gin.Context) {
	report, err := h.analyticsService.GetPlatformRevenue()
	if err != nil {
		utils.LogError(err, "GetPlatformRevenue: Error from analyticsService.GetPlatformRevenue")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to build platform revenue report.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetCafeSubscription returns the subscription plan and monthly price for one
// cafe.
func (h *AnalyticsHandler) GetCafeSubscription(c *gin.Context) {
	cafeID, ok := resolveCafeID(c)
	if !ok {
		return
	}

	sub, err := h.analyticsService.GetCafeSubscription(cafeID)
	if err != nil {
		if errors.Is(err, services.ErrCafeNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Cafe not found.", ""))
		} else {
			utils.LogError(err, "GetCafeSubscription: Error from analyticsService.GetCafeSubscription")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch subscription.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, sub)
}
