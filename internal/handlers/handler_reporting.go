package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/acctoffice/backoffice_app/internal/apperrors"
	portssvc "github.com/acctoffice/backoffice_app/internal/core/ports/services"
	"github.com/acctoffice/backoffice_app/internal/dto"
	"github.com/acctoffice/backoffice_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// defaultReportMonths is the trailing window used when ?months= is absent.
const defaultReportMonths = 6

// reportingHandler handles HTTP requests for expense summary reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvc
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvc) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to reports.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvc) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/monthly-expenses", h.monthlyExpenses)
		reports.GET("/category-breakdown", h.categoryBreakdown)
	}
}

// monthlyExpenses godoc
// @Summary Monthly expense trend
// @Description Buckets completed vouchers into a trailing window of calendar months. Quiet months report a zero total.
// @Tags reports
// @Produce  json
// @Param   months query int false "Window size in months" default(6)
// @Success 200 {object} dto.MonthlyExpenseReportResponse
// @Failure 400 {object} map[string]string "Invalid window"
// @Failure 500 {object} map[string]string "Failed to build report"
// @Security BearerAuth
// @Router /reports/monthly-expenses [get]
func (h *reportingHandler) monthlyExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	months := defaultReportMonths
	if raw := c.Query("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "months must be an integer"})
			return
		}
		months = parsed
	}

	buckets, err := h.reportingService.MonthlyTotals(c.Request.Context(), months)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to build monthly expense report", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.MonthlyExpenseReportResponse{Months: dto.ToMonthlyExpenseResponses(buckets)})
}

// categoryBreakdown godoc
// @Summary Expense category breakdown
// @Description Buckets completed vouchers by description prefix and returns the top categories by total
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.CategoryBreakdownResponse
// @Failure 500 {object} map[string]string "Failed to build report"
// @Security BearerAuth
// @Router /reports/category-breakdown [get]
func (h *reportingHandler) categoryBreakdown(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	buckets, err := h.reportingService.CategoryBreakdown(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build category breakdown report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	c.JSON(http.StatusOK, dto.CategoryBreakdownResponse{Categories: dto.ToCategoryExpenseResponses(buckets)})
}
