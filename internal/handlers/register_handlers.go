package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/Leonzuka/Projeto-Valex/cmd/docs"
	portssvc "github.com/Leonzuka/Projeto-Valex/internal/core/ports/services"
	"github.com/Leonzuka/Projeto-Valex/internal/middleware"
	"github.com/Leonzuka/Projeto-Valex/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {

	// Add health check route
	r.GET("/health", getHealth)

	// Register public authentication routes
	registerAuthRoutes(r, services.Auth)

	// Setup API routes, passing service interfaces
	setupAPIRoutes(r, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIRoutes configures the /api group and delegates to specific entity
// route registrations.
func setupAPIRoutes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
) {
	api := r.Group("/api")

	// Field operations stay open: the harvest terminals authenticate at the
	// application level, not per request.
	registerProducerRoutes(api, services.Producer)
	registerFarmRoutes(api, services.Farm)
	registerCatalogRoutes(api, services.Catalog)
	registerActivityRoutes(api, services.Activity)

	// Manager dashboard and the whole accounting surface require the gestor
	// role.
	gestorOnly := middleware.RequireRole(services.Auth, "gestor")
	registerReportingRoutes(api, gestorOnly, services.Reporting)
	registerImportRoutes(api, gestorOnly, importRateLimiter(), services.Import)
	registerAccountingRoutes(api, gestorOnly, services.Accounting)
}

// importRateLimiter builds the in-memory limiter shared by the file import
// endpoints: 10 uploads per minute per client IP.
func importRateLimiter() *limiter.Limiter {
	rate, _ := limiter.NewRateFromFormatted("10-M")
	return limiter.New(memory.NewStore(), rate)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
