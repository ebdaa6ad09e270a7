package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/lumen-edu/lumen/internal/interfaces/http/handlers"
	"github.com/lumen-edu/lumen/internal/interfaces/http/middleware"
)

// CatalogRouteConfig holds dependencies for the public catalog routes.
type CatalogRouteConfig struct {
	CatalogHandler *handlers.CatalogHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupCatalogRoutes configures catalog browsing routes. They are public; a valid token
// is picked up but never required.
func SetupCatalogRoutes(api *gin.RouterGroup, cfg *CatalogRouteConfig) {
	public := api.Group("")
	public.Use(cfg.AuthMiddleware.OptionalAuth())
	{
		public.GET("/subjects", cfg.CatalogHandler.ListSubjects)
		public.GET("/subjects/:slug", cfg.CatalogHandler.GetSubject)
		public.GET("/content-types", cfg.CatalogHandler.ListContentTypes)
	}
}
