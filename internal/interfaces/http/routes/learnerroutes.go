package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/lumen-edu/lumen/internal/interfaces/http/handlers"
	"github.com/lumen-edu/lumen/internal/interfaces/http/middleware"
	"github.com/lumen-edu/lumen/internal/shared/authorization"
)

// LearnerRouteConfig holds dependencies for the signed-in learner routes.
type LearnerRouteConfig struct {
	CartHandler          *handlers.CartHandler
	LibraryHandler       *handlers.LibraryHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupLearnerRoutes configures cart, library and purchase history routes.
func SetupLearnerRoutes(api *gin.RouterGroup, cfg *LearnerRouteConfig) {
	read := cfg.PermissionMiddleware.RequirePermission(authorization.ResourceCart, authorization.ActionRead)
	write := cfg.PermissionMiddleware.RequirePermission(authorization.ResourceCart, authorization.ActionWrite)

	cart := api.Group("/cart")
	cart.Use(cfg.AuthMiddleware.RequireAuth())
	{
		cart.GET("", read, cfg.CartHandler.GetCart)
		cart.DELETE("", write, cfg.CartHandler.ClearCart)

		cart.POST("/items", write, cfg.CartHandler.AddItem)
		cart.POST("/items/remove", write, cfg.CartHandler.RemoveLine)
		cart.DELETE("/items/:id", write, cfg.CartHandler.RemoveItem)

		cart.GET("/bundle-opportunities", read, cfg.CartHandler.GetBundleOpportunities)
		cart.POST("/bundle-swap", write, cfg.CartHandler.SwapWithBundle)

		cart.POST("/offer", write, cfg.CartHandler.ApplyOfferCode)
		cart.POST("/checkout",
			write,
			cfg.PermissionMiddleware.RequirePermission(authorization.ResourcePurchase, authorization.ActionWrite),
			cfg.CartHandler.Checkout)
	}

	me := api.Group("")
	me.Use(cfg.AuthMiddleware.RequireAuth())
	{
		me.GET("/library",
			cfg.PermissionMiddleware.RequirePermission(authorization.ResourceLibrary, authorization.ActionRead),
			cfg.LibraryHandler.GetLibrary)
		me.GET("/purchases",
			cfg.PermissionMiddleware.RequirePermission(authorization.ResourcePurchase, authorization.ActionRead),
			cfg.LibraryHandler.ListPurchases)
	}
}
