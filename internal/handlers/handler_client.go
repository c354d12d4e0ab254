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

// clientHandler handles HTTP requests related to clients.
type clientHandler struct {
	clientService portssvc.ClientSvcFacade
}

// newClientHandler creates a new clientHandler.
func newClientHandler(cs portssvc.ClientSvcFacade) *clientHandler {
	return &clientHandler{
		clientService: cs,
	}
}

// registerClientRoutes registers routes related to clients.
func registerClientRoutes(r *gin.Engine, clientService portssvc.ClientSvcFacade) {
	h := newClientHandler(clientService)

	clients := r.Group("/clients")
	{
		clients.GET("", middleware.NoCache(), h.listClients)
		clients.POST("", h.createClient)
	}
}

// createClient godoc
// @Summary Create a new client
// @Description Creates a client; the code must be unique and a non-empty email must be unused
// @Tags clients
// @Accept  json
// @Produce  json
// @Param   client body dto.CreateClientRequest true "Client details"
// @Success 201 {object} dto.ClientResponse
// @Failure 400 {object} map[string]string "Validation error, duplicate code or duplicate email"
// @Failure 500 {object} map[string]string "Failed to create client"
// @Router /clients [post]
func (h *clientHandler) createClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateClient", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, validationErrorBody("بيانات غير صحيحة", err))
		return
	}

	newClient, err := h.clientService.CreateClient(c.Request.Context(), req)
	if err != nil {
		// The email case is checked first: it narrows the general duplicate,
		// and both cover raced storage-level violations, not just the
		// service pre-checks.
		switch {
		case errors.Is(err, apperrors.ErrDuplicateEmail):
			logger.Warn("Duplicate client email", slog.String("email", req.Email))
			c.JSON(http.StatusBadRequest, gin.H{"error": "البريد الإلكتروني مستخدم بالفعل"})
		case errors.Is(err, apperrors.ErrDuplicate):
			logger.Warn("Duplicate client code", slog.String("code", req.Code))
			c.JSON(http.StatusBadRequest, gin.H{"error": "كود العميل موجود بالفعل"})
		default:
			logger.Error("Failed to create client in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "حدث خطأ في إنشاء العميل"})
		}
		return
	}

	logger.Info("Client created successfully", slog.String("client_id", newClient.ClientID))
	c.JSON(http.StatusCreated, dto.ToClientResponse(newClient))
}

// listClients godoc
// @Summary List clients
// @Description Retrieves clients newest first with usage counts; search filters by name, code or phone
// @Tags clients
// @Produce  json
// @Param   search query string false "Filter by name, code or phone"
// @Success 200 {array} dto.ClientResponse
// @Failure 500 {object} map[string]string "Failed to list clients"
// @Router /clients [get]
func (h *clientHandler) listClients(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListClientsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListClients", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "بيانات غير صحيحة"})
		return
	}

	clients, err := h.clientService.ListClients(c.Request.Context(), params.Search)
	if err != nil {
		logger.Error("Failed to list clients from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "حدث خطأ في جلب البيانات"})
		return
	}

	logger.Info("Clients listed successfully", slog.Int("count", len(clients)))
	c.JSON(http.StatusOK, dto.ToClientResponseList(clients))
}
