package routes

import (
	"github.com/gin-gonic/gin"

	adminHandlers "github.com/lumen-edu/lumen/internal/interfaces/http/handlers/admin"
	"github.com/lumen-edu/lumen/internal/interfaces/http/middleware"
	"github.com/lumen-edu/lumen/internal/shared/authorization"
)

// AdminRouteConfig holds dependencies for admin-only routes.
type AdminRouteConfig struct {
	CatalogAdminHandler  *adminHandlers.CatalogAdminHandler
	OfferHandler         *adminHandlers.OfferHandler
	AccessHandler        *adminHandlers.AccessHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupAdminRoutes configures admin-only routes.
func SetupAdminRoutes(api *gin.RouterGroup, cfg *AdminRouteConfig) {
	perm := cfg.PermissionMiddleware.RequirePermission

	admin := api.Group("/admin")
	admin.Use(cfg.AuthMiddleware.RequireAuth())

	// Catalog management
	subjects := admin.Group("/subjects")
	{
		subjects.GET("", perm(authorization.ResourceCatalog, authorization.ActionRead), cfg.CatalogAdminHandler.ListSubjects)
		subjects.POST("", perm(authorization.ResourceCatalog, authorization.ActionWrite), cfg.CatalogAdminHandler.CreateSubject)
		subjects.PATCH("/:id", perm(authorization.ResourceCatalog, authorization.ActionWrite), cfg.CatalogAdminHandler.UpdateSubject)
		subjects.PUT("/:id/pricing/:content_type_id", perm(authorization.ResourceCatalog, authorization.ActionWrite), cfg.CatalogAdminHandler.SetPricing)
		subjects.POST("/:id/contents", perm(authorization.ResourceCatalog, authorization.ActionWrite), cfg.CatalogAdminHandler.AddContent)
	}

	contentTypes := admin.Group("/content-types")
	{
		contentTypes.GET("", perm(authorization.ResourceCatalog, authorization.ActionRead), cfg.CatalogAdminHandler.ListContentTypes)
		contentTypes.POST("", perm(authorization.ResourceCatalog, authorization.ActionWrite), cfg.CatalogAdminHandler.CreateContentType)
	}

	// Offer management
	offers := admin.Group("/offers")
	{
		offers.GET("", perm(authorization.ResourceOffer, authorization.ActionRead), cfg.OfferHandler.ListOffers)
		offers.POST("", perm(authorization.ResourceOffer, authorization.ActionWrite), cfg.OfferHandler.CreateOffer)
		offers.GET("/:id", perm(authorization.ResourceOffer, authorization.ActionRead), cfg.OfferHandler.GetOffer)
		offers.PUT("/:id", perm(authorization.ResourceOffer, authorization.ActionWrite), cfg.OfferHandler.UpdateOffer)
		offers.PATCH("/:id/status", perm(authorization.ResourceOffer, authorization.ActionWrite), cfg.OfferHandler.UpdateOfferStatus)
		offers.DELETE("/:id", perm(authorization.ResourceOffer, authorization.ActionWrite), cfg.OfferHandler.DeleteOffer)
	}

	admin.POST("/access", perm(authorization.ResourceAccess, authorization.ActionWrite), cfg.AccessHandler.GrantAccess)
}
