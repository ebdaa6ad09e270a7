package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumen-edu/lumen/internal/interfaces/http/middleware"
	"github.com/lumen-edu/lumen/internal/interfaces/http/routes"
)

// Router represents the HTTP router configuration
type Router struct {
	engine    *gin.Engine
	container *Container
}

// NewRouter creates a router on top of a wired container
func NewRouter(container *Container) *Router {
	return &Router{
		engine:    gin.New(),
		container: container,
	}
}

// GetEngine returns the gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	c := r.container

	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(c.log))
	r.engine.Use(middleware.Recovery(c.log))
	r.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", healthCheck)

	api := r.engine.Group("/api/v1")

	routes.SetupCatalogRoutes(api, &routes.CatalogRouteConfig{
		CatalogHandler: c.catalogHandler,
		AuthMiddleware: c.authMiddleware,
	})

	routes.SetupLearnerRoutes(api, &routes.LearnerRouteConfig{
		CartHandler:          c.cartHandler,
		LibraryHandler:       c.libraryHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupAdminRoutes(api, &routes.AdminRouteConfig{
		CatalogAdminHandler:  c.catalogAdminHandler,
		OfferHandler:         c.offerHandler,
		AccessHandler:        c.accessHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})
}

// Shutdown releases router resources
func (r *Router) Shutdown() {
	r.container.Shutdown()
}

// healthCheck handles GET /health
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "lumen",
	})
}
