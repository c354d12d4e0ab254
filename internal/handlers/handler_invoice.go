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

// invoiceHandler handles HTTP requests related to invoices.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
}

// newInvoiceHandler creates a new invoiceHandler.
func newInvoiceHandler(is portssvc.InvoiceSvcFacade) *invoiceHandler {
	return &invoiceHandler{
		invoiceService: is,
	}
}

// registerInvoiceRoutes registers routes related to invoices.
func registerInvoiceRoutes(r *gin.Engine, invoiceService portssvc.InvoiceSvcFacade) {
	h := newInvoiceHandler(invoiceService)

	invoices := r.Group("/invoices")
	{
		invoices.GET("", middleware.NoCache(), h.listInvoices)
		invoices.POST("", h.createInvoice)
	}
}

// createInvoice godoc
// @Summary Create a new invoice
// @Description Creates a sales or purchase invoice; required fields are checked before the duplicate number check
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   invoice body dto.CreateInvoiceRequest true "Invoice details"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} map[string]string "Missing required fields, duplicate number or unparseable date"
// @Failure 500 {object} map[string]string "Failed to create invoice"
// @Router /invoices [post]
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateInvoice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "جميع الحقول المطلوبة يجب ملؤها"})
		return
	}

	newInvoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrMissingFields):
			logger.Warn("Missing required invoice fields", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "جميع الحقول المطلوبة يجب ملؤها"})
		case errors.Is(err, apperrors.ErrDuplicate):
			logger.Warn("Duplicate invoice number", slog.String("invoice_no", req.InvoiceNo))
			c.JSON(http.StatusBadRequest, gin.H{"error": "رقم الفاتورة موجود مسبقاً"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error creating invoice", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "بيانات غير صحيحة", "message": err.Error()})
		default:
			logger.Error("Failed to create invoice in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "خطأ في إنشاء الفاتورة"})
		}
		return
	}

	logger.Info("Invoice created successfully", slog.String("invoice_id", newInvoice.InvoiceID))
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(newInvoice))
}

// listInvoices godoc
// @Summary List invoices
// @Description Retrieves invoices newest first with counterparty summaries
// @Tags invoices
// @Produce  json
// @Success 200 {array} dto.InvoiceResponse
// @Failure 500 {object} map[string]string "Failed to list invoices"
// @Router /invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	invoices, err := h.invoiceService.ListInvoices(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list invoices from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "خطأ في جلب الفواتير"})
		return
	}

	logger.Info("Invoices listed successfully", slog.Int("count", len(invoices)))
	c.JSON(http.StatusOK, dto.ToInvoiceResponseList(invoices))
}
