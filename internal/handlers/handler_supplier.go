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

// supplierHandler handles HTTP requests related to suppliers.
type supplierHandler struct {
	supplierService portssvc.SupplierSvcFacade
}

// newSupplierHandler creates a new supplierHandler.
func newSupplierHandler(ss portssvc.SupplierSvcFacade) *supplierHandler {
	return &supplierHandler{
		supplierService: ss,
	}
}

// registerSupplierRoutes registers routes related to suppliers.
func registerSupplierRoutes(r *gin.Engine, supplierService portssvc.SupplierSvcFacade) {
	h := newSupplierHandler(supplierService)

	suppliers := r.Group("/suppliers")
	{
		suppliers.GET("", middleware.NoCache(), h.listSuppliers)
		suppliers.POST("", h.createSupplier)
	}
}

// createSupplier godoc
// @Summary Create a new supplier
// @Description Creates a supplier; the code must be unique
// @Tags suppliers
// @Accept  json
// @Produce  json
// @Param   supplier body dto.CreateSupplierRequest true "Supplier details"
// @Success 201 {object} dto.SupplierResponse
// @Failure 400 {object} map[string]string "Validation error or duplicate code"
// @Failure 500 {object} map[string]string "Failed to create supplier"
// @Router /suppliers [post]
func (h *supplierHandler) createSupplier(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSupplier", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, validationErrorBody("بيانات غير صحيحة", err))
		return
	}

	newSupplier, err := h.supplierService.CreateSupplier(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Duplicate supplier code", slog.String("code", req.Code))
			c.JSON(http.StatusBadRequest, gin.H{"error": "كود المورد موجود بالفعل"})
		} else {
			logger.Error("Failed to create supplier in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "حدث خطأ في إنشاء المورد"})
		}
		return
	}

	logger.Info("Supplier created successfully", slog.String("supplier_id", newSupplier.SupplierID))
	c.JSON(http.StatusCreated, dto.ToSupplierResponse(newSupplier))
}

// listSuppliers godoc
// @Summary List suppliers
// @Description Retrieves suppliers newest first with invoice counts; search filters by name, code or phone
// @Tags suppliers
// @Produce  json
// @Param   search query string false "Filter by name, code or phone"
// @Success 200 {array} dto.SupplierResponse
// @Failure 500 {object} map[string]string "Failed to list suppliers"
// @Router /suppliers [get]
func (h *supplierHandler) listSuppliers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListSuppliersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListSuppliers", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "بيانات غير صحيحة"})
		return
	}

	suppliers, err := h.supplierService.ListSuppliers(c.Request.Context(), params.Search)
	if err != nil {
		logger.Error("Failed to list suppliers from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "حدث خطأ في جلب الموردين"})
		return
	}

	logger.Info("Suppliers listed successfully", slog.Int("count", len(suppliers)))
	c.JSON(http.StatusOK, dto.ToSupplierResponseList(suppliers))
}
