package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aqarerp/backend/internal/apperrors"
	portssvc "github.com/aqarerp/backend/internal/core/ports/services"
	"github.com/aqarerp/backend/internal/dto"
	"github.com/aqarerp/backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// settlementHandler handles HTTP requests related to partner settlements.
type settlementHandler struct {
	settlementService portssvc.SettlementSvcFacade
}

// newSettlementHandler creates a new settlementHandler.
func newSettlementHandler(ss portssvc.SettlementSvcFacade) *settlementHandler {
	return &settlementHandler{
		settlementService: ss,
	}
}

// registerSettlementRoutes registers routes related to settlements. Update and
// delete address the settlement through the id query parameter.
func registerSettlementRoutes(r *gin.Engine, settlementService portssvc.SettlementSvcFacade) {
	h := newSettlementHandler(settlementService)

	settlements := r.Group("/settlements")
	{
		settlements.GET("", middleware.NoCache(), h.listSettlements)
		settlements.POST("", h.createSettlement)
		settlements.PUT("", h.updateSettlement)
		settlements.DELETE("", h.deleteSettlement)
	}
}

// createSettlement godoc
// @Summary Create a new settlement
// @Description Creates a settlement with its lines atomically; required fields are checked before the duplicate number check
// @Tags settlements
// @Accept  json
// @Produce  json
// @Param   settlement body dto.CreateSettlementRequest true "Settlement details with at least one line"
// @Success 200 {object} dto.SettlementResponse
// @Failure 400 {object} map[string]string "Missing required fields, duplicate number or unparseable date"
// @Failure 500 {object} map[string]string "Failed to create settlement"
// @Router /settlements [post]
func (h *settlementHandler) createSettlement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSettlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSettlement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "جميع الحقول المطلوبة يجب ملؤها"})
		return
	}

	newSettlement, err := h.settlementService.CreateSettlement(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrMissingFields):
			logger.Warn("Missing required settlement fields", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "جميع الحقول المطلوبة يجب ملؤها"})
		case errors.Is(err, apperrors.ErrDuplicate):
			logger.Warn("Duplicate settlement number", slog.String("settlement_no", req.SettlementNo))
			c.JSON(http.StatusBadRequest, gin.H{"error": "رقم المخالصة موجود مسبقاً"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error creating settlement", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "بيانات غير صحيحة", "message": err.Error()})
		default:
			logger.Error("Failed to create settlement in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "خطأ في إنشاء المخالصة"})
		}
		return
	}

	logger.Info("Settlement created successfully", slog.String("settlement_id", newSettlement.SettlementID))
	c.JSON(http.StatusOK, dto.ToSettlementResponse(newSettlement))
}

// listSettlements godoc
// @Summary List settlements
// @Description Retrieves settlements newest first with their lines and partner summaries
// @Tags settlements
// @Produce  json
// @Success 200 {array} dto.SettlementResponse
// @Failure 500 {object} map[string]string "Failed to list settlements"
// @Router /settlements [get]
func (h *settlementHandler) listSettlements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	settlements, err := h.settlementService.ListSettlements(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list settlements from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "خطأ في جلب المخالصات"})
		return
	}

	logger.Info("Settlements listed successfully", slog.Int("count", len(settlements)))
	c.JSON(http.StatusOK, dto.ToSettlementResponseList(settlements))
}

// updateSettlement godoc
// @Summary Update a settlement
// @Description Applies a partial update to settlement header fields; lines are untouched
// @Tags settlements
// @Accept  json
// @Produce  json
// @Param   id query string true "Settlement ID"
// @Param   settlement body dto.UpdateSettlementRequest true "Fields to update"
// @Success 200 {object} dto.SettlementResponse
// @Failure 400 {object} map[string]string "Missing id or unparseable date"
// @Failure 404 {object} map[string]string "Settlement not found"
// @Failure 500 {object} map[string]string "Failed to update settlement"
// @Router /settlements [put]
func (h *settlementHandler) updateSettlement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	settlementID := c.Query("id")
	if settlementID == "" {
		logger.Warn("Missing settlement id for update")
		c.JSON(http.StatusBadRequest, gin.H{"error": "معرف المخالصة مطلوب"})
		return
	}

	var req dto.UpdateSettlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateSettlement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "بيانات غير صحيحة"})
		return
	}

	updated, err := h.settlementService.UpdateSettlement(c.Request.Context(), settlementID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Settlement not found for update", slog.String("settlement_id", settlementID))
			c.JSON(http.StatusNotFound, gin.H{"error": "المخالصة غير موجودة"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error updating settlement", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "بيانات غير صحيحة", "message": err.Error()})
		default:
			logger.Error("Failed to update settlement in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "خطأ في تحديث المخالصة"})
		}
		return
	}

	logger.Info("Settlement updated successfully", slog.String("settlement_id", settlementID))
	c.JSON(http.StatusOK, dto.ToSettlementResponse(updated))
}

// deleteSettlement godoc
// @Summary Delete a settlement
// @Description Deletes a settlement; its lines are removed with it
// @Tags settlements
// @Produce  json
// @Param   id query string true "Settlement ID"
// @Success 200 {object} dto.DeleteResponse
// @Failure 400 {object} map[string]string "Missing id"
// @Failure 404 {object} map[string]string "Settlement not found"
// @Failure 500 {object} map[string]string "Failed to delete settlement"
// @Router /settlements [delete]
func (h *settlementHandler) deleteSettlement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	settlementID := c.Query("id")
	if settlementID == "" {
		logger.Warn("Missing settlement id for delete")
		c.JSON(http.StatusBadRequest, gin.H{"error": "معرف المخالصة مطلوب"})
		return
	}

	if err := h.settlementService.DeleteSettlement(c.Request.Context(), settlementID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Settlement not found for delete", slog.String("settlement_id", settlementID))
			c.JSON(http.StatusNotFound, gin.H{"error": "المخالصة غير موجودة"})
		} else {
			logger.Error("Failed to delete settlement in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "خطأ في حذف المخالصة"})
		}
		return
	}

	logger.Info("Settlement deleted successfully", slog.String("settlement_id", settlementID))
	c.JSON(http.StatusOK, dto.DeleteResponse{Success: true})
}
