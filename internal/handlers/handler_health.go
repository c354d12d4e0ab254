package handlers

import (
	"context"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/aqarerp/backend/internal/dto"
	"github.com/aqarerp/backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// Pinger checks store connectivity. Satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// healthHandler reports liveness of the process and its database.
type healthHandler struct {
	db          Pinger
	environment string
	startedAt   time.Time
}

func newHealthHandler(db Pinger, environment string) *healthHandler {
	return &healthHandler{
		db:          db,
		environment: environment,
		startedAt:   time.Now(),
	}
}

// registerHealthRoutes registers the health probe.
func registerHealthRoutes(r *gin.Engine, db Pinger, environment string) {
	h := newHealthHandler(db, environment)
	r.GET("/health", middleware.NoCache(), h.getHealth)
}

// getHealth godoc
// @Summary Health check
// @Description Reports database connectivity plus process runtime information
// @Tags health
// @Produce  json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse "Database unreachable"
// @Router /health [get]
func (h *healthHandler) getHealth(c *gin.Context) {
	start := time.Now()

	database := dto.DatabaseHealth{
		Status:     "disconnected",
		Configured: h.db != nil,
	}
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			database.Status = "error"
			database.Error = err.Error()
		} else {
			database.Status = "connected"
		}
	}

	connected := database.Status == "connected"
	resp := dto.HealthResponse{
		OK:           connected,
		Status:       "unhealthy",
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		ResponseTime: fmt.Sprintf("%dms", time.Since(start).Milliseconds()),
		Environment:  h.environment,
		Database:     database,
		System: dto.SystemHealth{
			GoVersion: runtime.Version(),
			Platform:  runtime.GOOS,
			Arch:      runtime.GOARCH,
			Uptime:    int64(time.Since(h.startedAt).Seconds()),
		},
	}

	status := http.StatusServiceUnavailable
	if connected {
		resp.Status = "healthy"
		status = http.StatusOK
	}
	c.JSON(status, resp)
}
