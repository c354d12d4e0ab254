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

// partnerHandler handles HTTP requests related to settlement partners.
type partnerHandler struct {
	partnerService portssvc.PartnerSvcFacade
}

// newPartnerHandler creates a new partnerHandler.
func newPartnerHandler(ps portssvc.PartnerSvcFacade) *partnerHandler {
	return &partnerHandler{
		partnerService: ps,
	}
}

// registerPartnerRoutes registers routes related to partners.
func registerPartnerRoutes(r *gin.Engine, partnerService portssvc.PartnerSvcFacade) {
	h := newPartnerHandler(partnerService)

	partners := r.Group("/partners")
	{
		partners.GET("", middleware.NoCache(), h.listPartners)
		partners.POST("", h.createPartner)
	}
}

// createPartner godoc
// @Summary Create a new partner
// @Description Creates a settlement partner; the code must be unique
// @Tags partners
// @Accept  json
// @Produce  json
// @Param   partner body dto.CreatePartnerRequest true "Partner details"
// @Success 201 {object} dto.PartnerResponse
// @Failure 400 {object} map[string]string "Validation error or duplicate code"
// @Failure 500 {object} map[string]string "Failed to create partner"
// @Router /partners [post]
func (h *partnerHandler) createPartner(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePartner", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, validationErrorBody("بيانات غير صحيحة", err))
		return
	}

	newPartner, err := h.partnerService.CreatePartner(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Duplicate partner code", slog.String("code", req.Code))
			c.JSON(http.StatusBadRequest, gin.H{"error": "كود الشريك موجود بالفعل"})
		} else {
			logger.Error("Failed to create partner in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "حدث خطأ في إنشاء الشريك"})
		}
		return
	}

	logger.Info("Partner created successfully", slog.String("partner_id", newPartner.PartnerID))
	c.JSON(http.StatusCreated, dto.ToPartnerResponse(newPartner))
}

// listPartners godoc
// @Summary List partners
// @Description Retrieves all partners ordered by name
// @Tags partners
// @Produce  json
// @Success 200 {array} dto.PartnerResponse
// @Failure 500 {object} map[string]string "Failed to list partners"
// @Router /partners [get]
func (h *partnerHandler) listPartners(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	partners, err := h.partnerService.ListPartners(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list partners from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "حدث خطأ في جلب الشركاء"})
		return
	}

	logger.Info("Partners listed successfully", slog.Int("count", len(partners)))
	c.JSON(http.StatusOK, dto.ToPartnerResponseList(partners))
}
