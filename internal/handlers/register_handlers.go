package handlers

import (
	"github.com/bs23/ems_backend/cmd/docs"
	portssvc "github.com/bs23/ems_backend/internal/core/ports/services"
	"github.com/bs23/ems_backend/internal/middleware"
	"github.com/bs23/ems_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.GET("/", getHome)
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIRoutes(r, services)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIRoutes configures the /api group behind the authentication gate
// and delegates to the per-entity route registrations. The gate itself lets
// the /api/auth endpoints and unauthenticated requests through; the role
// guards on each group do the denying.
func setupAPIRoutes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
) {
	api := r.Group("/api", middleware.AuthenticationGate(services.Token, services.Identity))

	registerAuthRoutes(api, services)
	registerAttendanceRoutes(api, services)
	registerLeaveRoutes(api, services)

	admin := api.Group("", middleware.RequireRoles("ADMIN", "HR"))
	registerEmployeeRoutes(admin, services)
	registerDepartmentRoutes(admin, services)
	registerUserRoutes(admin, services)
	registerNotificationRoutes(admin, services)
	registerAnalyticsRoutes(admin, services)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
