package handlers

import (
	"github.com/aqarerp/backend/cmd/docs"
	portssvc "github.com/aqarerp/backend/internal/core/ports/services"
	"github.com/aqarerp/backend/pkg/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	db Pinger,
) {
	registerHealthRoutes(r, db, cfg.Environment)

	registerAccountRoutes(r, services.Account)
	registerClientRoutes(r, services.Client)
	registerSupplierRoutes(r, services.Supplier)
	registerEmployeeRoutes(r, services.Employee)
	registerPartnerRoutes(r, services.Partner)
	registerInvoiceRoutes(r, services.Invoice)
	registerSettlementRoutes(r, services.Settlement)

	// Swagger routes (conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
