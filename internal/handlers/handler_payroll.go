package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/acctoffice/backoffice_app/internal/apperrors"
	portssvc "github.com/acctoffice/backoffice_app/internal/core/ports/services"
	"github.com/acctoffice/backoffice_app/internal/dto"
	"github.com/acctoffice/backoffice_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// payrollHandler handles HTTP requests related to payroll reconciliation.
type payrollHandler struct {
	payrollService portssvc.PayrollSvcFacade
}

// newPayrollHandler creates a new payrollHandler.
func newPayrollHandler(ps portssvc.PayrollSvcFacade) *payrollHandler {
	return &payrollHandler{
		payrollService: ps,
	}
}

// registerPayrollRoutes registers routes related to payroll.
func registerPayrollRoutes(rg *gin.RouterGroup, payrollService portssvc.PayrollSvcFacade) {
	h := newPayrollHandler(payrollService)

	payroll := rg.Group("/payroll")
	{
		payroll.POST("", h.createPayrollRecord)
		payroll.GET("", h.listPayrollRecords)
		payroll.POST("/batch", h.saveBatch)
		payroll.GET("/periods/:period", h.getOrInitPeriod)
		payroll.POST("/periods/:period/finalize", h.finalizePeriod)
		payroll.GET("/:id", h.getPayrollRecordByID)
		payroll.PUT("/:id", h.updatePayrollRecord)
		payroll.DELETE("/:id", h.deletePayrollRecord)
	}
}

// getOrInitPeriod godoc
// @Summary Get or initialize a payroll period
// @Description Returns stored pay lines for the period, or synthesized drafts for every active employee when none exist yet
// @Tags payroll
// @Produce  json
// @Param   period path string true "Period (YYYY-MM)"
// @Success 200 {object} dto.PayrollPeriodResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 500 {object} map[string]string "Failed to load period"
// @Security BearerAuth
// @Router /payroll/periods/{period} [get]
func (h *payrollHandler) getOrInitPeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	period := c.Param("period")

	resp, err := h.payrollService.GetOrInitPeriod(c.Request.Context(), period)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to load payroll period", slog.String("error", err.Error()), slog.String("period", period))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payroll period"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// saveBatch godoc
// @Summary Save a batch of payroll records
// @Description Upserts each record by its (employee, period) pair. Replaying the same batch updates rows instead of duplicating them.
// @Tags payroll
// @Accept  json
// @Produce  json
// @Param   batch body dto.SavePayrollBatchRequest true "Pay lines to save"
// @Success 200 {object} dto.ListPayrollRecordsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to save batch"
// @Security BearerAuth
// @Router /payroll/batch [post]
func (h *payrollHandler) saveBatch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SavePayrollBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SaveBatch", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	saved, err := h.payrollService.SaveBatch(c.Request.Context(), req.Records, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to save payroll batch", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save payroll batch"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ListPayrollRecordsResponse{Records: dto.ToListPayrollRecordResponse(saved)})
}

// finalizePeriod godoc
// @Summary Finalize a payroll period
// @Description Flips every record of the period to finalized and reports the affected count
// @Tags payroll
// @Produce  json
// @Param   period path string true "Period (YYYY-MM)"
// @Success 200 {object} dto.FinalizePeriodResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to finalize period"
// @Security BearerAuth
// @Router /payroll/periods/{period}/finalize [post]
func (h *payrollHandler) finalizePeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	period := c.Param("period")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	count, err := h.payrollService.FinalizePeriod(c.Request.Context(), period, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to finalize payroll period", slog.String("error", err.Error()), slog.String("period", period))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to finalize payroll period"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.FinalizePeriodResponse{Success: true, UpdatedCount: count})
}

// createPayrollRecord godoc
// @Summary Create a payroll record
// @Description Adds a single pay line for an employee and period
// @Tags payroll
// @Accept  json
// @Produce  json
// @Param   record body dto.PayrollRecordInput true "Pay line details"
// @Success 201 {object} dto.PayrollRecordResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Record already exists for this employee and period"
// @Failure 500 {object} map[string]string "Failed to create record"
// @Security BearerAuth
// @Router /payroll [post]
func (h *payrollHandler) createPayrollRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PayrollRecordInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	record, err := h.payrollService.CreatePayrollRecord(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "A record for this employee and period already exists"})
		} else {
			logger.Error("Failed to create payroll record", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payroll record"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToPayrollRecordResponse(record))
}

// getPayrollRecordByID godoc
// @Summary Get a payroll record by ID
// @Description Retrieves a single pay line
// @Tags payroll
// @Produce  json
// @Param   id path string true "Payroll Record ID"
// @Success 200 {object} dto.PayrollRecordResponse
// @Failure 404 {object} map[string]string "Record not found"
// @Failure 500 {object} map[string]string "Failed to retrieve record"
// @Security BearerAuth
// @Router /payroll/{id} [get]
func (h *payrollHandler) getPayrollRecordByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	payrollID := c.Param("id")

	record, err := h.payrollService.GetPayrollRecordByID(c.Request.Context(), payrollID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payroll record not found"})
		} else {
			logger.Error("Failed to get payroll record", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve payroll record"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPayrollRecordResponse(record))
}

// listPayrollRecords godoc
// @Summary List payroll records
// @Description Retrieves payroll records, newest period first
// @Tags payroll
// @Produce  json
// @Param   limit query int false "Max results" default(50)
// @Param   offset query int false "Results offset" default(0)
// @Success 200 {object} dto.ListPayrollRecordsResponse
// @Failure 500 {object} map[string]string "Failed to list records"
// @Security BearerAuth
// @Router /payroll [get]
func (h *payrollHandler) listPayrollRecords(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	records, err := h.payrollService.ListPayrollRecords(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list payroll records", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payroll records"})
		return
	}

	c.JSON(http.StatusOK, dto.ListPayrollRecordsResponse{Records: dto.ToListPayrollRecordResponse(records)})
}

// updatePayrollRecord godoc
// @Summary Update a payroll record
// @Description Merges the supplied fields into a draft pay line. Finalized records are frozen.
// @Tags payroll
// @Accept  json
// @Produce  json
// @Param   id path string true "Payroll Record ID"
// @Param   record body dto.UpdatePayrollRecordRequest true "Fields to update"
// @Success 200 {object} dto.PayrollRecordResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Record not found"
// @Failure 409 {object} map[string]string "Record is finalized"
// @Failure 500 {object} map[string]string "Failed to update record"
// @Security BearerAuth
// @Router /payroll/{id} [put]
func (h *payrollHandler) updatePayrollRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	payrollID := c.Param("id")

	var req dto.UpdatePayrollRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	record, err := h.payrollService.UpdatePayrollRecord(c.Request.Context(), payrollID, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payroll record not found"})
		} else if errors.Is(err, apperrors.ErrImmutable) {
			logger.Warn("Attempted to edit finalized payroll record", slog.String("payroll_id", payrollID))
			c.JSON(http.StatusConflict, gin.H{"error": "Payroll record is finalized and can no longer change"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update payroll record", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payroll record"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPayrollRecordResponse(record))
}

// deletePayrollRecord godoc
// @Summary Delete a payroll record
// @Description Removes a single pay line
// @Tags payroll
// @Produce  json
// @Param   id path string true "Payroll Record ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Record not found"
// @Failure 500 {object} map[string]string "Failed to delete record"
// @Security BearerAuth
// @Router /payroll/{id} [delete]
func (h *payrollHandler) deletePayrollRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	payrollID := c.Param("id")

	deleterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	err := h.payrollService.DeletePayrollRecord(c.Request.Context(), payrollID, deleterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payroll record not found"})
		} else {
			logger.Error("Failed to delete payroll record", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete payroll record"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
