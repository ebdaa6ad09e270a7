package http

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	accessUsecases "github.com/lumen-edu/lumen/internal/application/access/usecases"
	cartUsecases "github.com/lumen-edu/lumen/internal/application/cart/usecases"
	catalogUsecases "github.com/lumen-edu/lumen/internal/application/catalog/usecases"
	offerUsecases "github.com/lumen-edu/lumen/internal/application/offer/usecases"
	"github.com/lumen-edu/lumen/internal/domain/access"
	"github.com/lumen-edu/lumen/internal/domain/cart"
	"github.com/lumen-edu/lumen/internal/domain/catalog"
	"github.com/lumen-edu/lumen/internal/domain/offer"
	"github.com/lumen-edu/lumen/internal/domain/purchase"
	"github.com/lumen-edu/lumen/internal/infrastructure/auth"
	"github.com/lumen-edu/lumen/internal/infrastructure/cache"
	"github.com/lumen-edu/lumen/internal/infrastructure/config"
	"github.com/lumen-edu/lumen/internal/infrastructure/email"
	"github.com/lumen-edu/lumen/internal/infrastructure/markdown"
	"github.com/lumen-edu/lumen/internal/infrastructure/payment"
	"github.com/lumen-edu/lumen/internal/infrastructure/permission"
	"github.com/lumen-edu/lumen/internal/infrastructure/repository"
	"github.com/lumen-edu/lumen/internal/interfaces/http/handlers"
	adminHandlers "github.com/lumen-edu/lumen/internal/interfaces/http/handlers/admin"
	"github.com/lumen-edu/lumen/internal/interfaces/http/middleware"
	"github.com/lumen-edu/lumen/internal/shared/db"
	"github.com/lumen-edu/lumen/internal/shared/logger"
)

const defaultSubjectCacheTTL = 10 * time.Minute

// repositories groups every repository built from the shared gorm handle.
type repositories struct {
	subjects     catalog.SubjectRepository
	contentTypes catalog.ContentTypeRepository
	contents     catalog.SubjectContentRepository
	pricing      catalog.PricingRepository
	offers       offer.Repository
	cart         cart.Repository
	access       access.Repository
	purchases    purchase.Repository
}

func newRepositories(gdb *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		subjects:     repository.NewSubjectRepository(gdb, log),
		contentTypes: repository.NewContentTypeRepository(gdb, log),
		contents:     repository.NewSubjectContentRepository(gdb, log),
		pricing:      repository.NewPricingRepository(gdb, log),
		offers:       repository.NewOfferRepository(gdb, log),
		cart:         repository.NewCartItemRepository(gdb, log),
		access:       repository.NewUserAccessRepository(gdb, log),
		purchases:    repository.NewPurchaseRepository(gdb, log),
	}
}

// Container owns the infrastructure clients, handlers and middlewares of the HTTP server.
type Container struct {
	cfg *config.Config
	log logger.Interface

	redisClient *redis.Client
	enforcer    *permission.Enforcer

	catalogHandler      *handlers.CatalogHandler
	cartHandler         *handlers.CartHandler
	libraryHandler      *handlers.LibraryHandler
	catalogAdminHandler *adminHandlers.CatalogAdminHandler
	offerHandler        *adminHandlers.OfferHandler
	accessHandler       *adminHandlers.AccessHandler

	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
}

// NewContainer wires repositories, use cases and handlers on top of gdb.
func NewContainer(ctx context.Context, gdb *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{cfg: cfg, log: log}

	enforcer, err := permission.NewEnforcer(gdb, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create permission enforcer: %w", err)
	}
	if err := enforcer.InitDefaultPolicies(); err != nil {
		return nil, fmt.Errorf("failed to initialize default policies: %w", err)
	}
	c.enforcer = enforcer

	repos := newRepositories(gdb, log)
	txManager := db.NewTransactionManager(gdb)
	subjectCache := c.initSubjectCache(ctx)
	currency := cfg.Catalog.Currency

	var receipts cartUsecases.ReceiptSender
	if cfg.Email.Enabled {
		receipts = email.NewSMTPEmailService(&cfg.Email, log)
	}

	// Catalog
	listSubjectsUC := catalogUsecases.NewListSubjectsUseCase(repos.subjects, log)
	getSubjectUC := catalogUsecases.NewGetSubjectUseCase(
		repos.subjects, repos.contentTypes, repos.contents, repos.pricing,
		markdown.NewRenderer(), subjectCache, log,
	)
	listContentTypesUC := catalogUsecases.NewListContentTypesUseCase(repos.contentTypes, log)
	c.catalogHandler = handlers.NewCatalogHandler(listSubjectsUC, getSubjectUC, listContentTypesUC, log)
	c.catalogAdminHandler = adminHandlers.NewCatalogAdminHandler(
		listSubjectsUC,
		catalogUsecases.NewCreateSubjectUseCase(repos.subjects, log),
		catalogUsecases.NewUpdateSubjectUseCase(repos.subjects, subjectCache, log),
		catalogUsecases.NewSetContentTypePricingUseCase(repos.subjects, repos.contentTypes, repos.pricing, subjectCache, log),
		catalogUsecases.NewAddSubjectContentUseCase(repos.subjects, repos.contentTypes, repos.contents, subjectCache, log),
		listContentTypesUC,
		catalogUsecases.NewCreateContentTypeUseCase(repos.contentTypes, log),
		log,
	)

	// Cart and checkout
	checkoutUC := cartUsecases.NewCheckoutUseCase(cartUsecases.CheckoutDeps{
		CartRepo:        repos.cart,
		OfferRepo:       repos.offers,
		SubjectRepo:     repos.subjects,
		ContentTypeRepo: repos.contentTypes,
		ContentRepo:     repos.contents,
		AccessRepo:      repos.access,
		PurchaseRepo:    repos.purchases,
		TxManager:       txManager,
		Payments:        payment.NewConfirmationVerifier(cfg.Payment.ConfirmationSecret, cfg.Payment.Issuer),
		Receipts:        receipts,
		Currency:        currency,
	}, log)
	c.cartHandler = handlers.NewCartHandler(
		cartUsecases.NewAddToCartUseCase(repos.cart, repos.subjects, repos.contentTypes, repos.pricing, repos.contents, repos.access, log),
		cartUsecases.NewRemoveFromCartUseCase(repos.cart, log),
		cartUsecases.NewRemoveFromCartByItemUseCase(repos.cart, log),
		cartUsecases.NewClearCartUseCase(repos.cart, log),
		cartUsecases.NewGetCartUseCase(repos.cart, repos.subjects, repos.contentTypes, currency, log),
		cartUsecases.NewDetectBundleOpportunitiesUseCase(repos.cart, repos.subjects, repos.contents, log),
		cartUsecases.NewSwapWithBundleUseCase(repos.cart, repos.subjects, txManager, log),
		cartUsecases.NewApplyOfferCodeUseCase(repos.cart, repos.offers, log),
		checkoutUC,
		log,
	)

	// Library
	c.libraryHandler = handlers.NewLibraryHandler(
		accessUsecases.NewListLibraryUseCase(repos.access, repos.subjects, repos.contentTypes, log),
		cartUsecases.NewListPurchasesUseCase(repos.purchases, log),
		log,
	)
	c.accessHandler = adminHandlers.NewAccessHandler(
		accessUsecases.NewGrantAccessUseCase(repos.access, repos.subjects, repos.contentTypes, log),
		log,
	)

	// Offers
	c.offerHandler = adminHandlers.NewOfferHandler(
		offerUsecases.NewCreateOfferUseCase(repos.offers, repos.subjects, repos.contentTypes, log),
		offerUsecases.NewUpdateOfferUseCase(repos.offers, repos.subjects, repos.contentTypes, log),
		offerUsecases.NewSetOfferActiveUseCase(repos.offers, log),
		offerUsecases.NewGetOfferUseCase(repos.offers, log),
		offerUsecases.NewListOffersUseCase(repos.offers, log),
		offerUsecases.NewDeleteOfferUseCase(repos.offers, log),
		log,
	)

	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.Issuer)
	c.authMiddleware = middleware.NewAuthMiddleware(jwtService, log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(enforcer, log)

	return c, nil
}

// initSubjectCache connects to Redis when enabled. A connection failure is logged and the
// service runs without the cache.
func (c *Container) initSubjectCache(ctx context.Context) catalogUsecases.SubjectDetailCache {
	if !c.cfg.Redis.Enabled {
		c.log.Infow("redis disabled, subject detail cache off")
		return cache.NoopSubjectDetailCache{}
	}

	client, err := cache.NewRedisClient(ctx, &c.cfg.Redis)
	if err != nil {
		c.log.Warnw("redis unavailable, subject detail cache off",
			"addr", c.cfg.Redis.GetAddr(),
			"error", err)
		return cache.NoopSubjectDetailCache{}
	}
	c.redisClient = client

	ttl := defaultSubjectCacheTTL
	if c.cfg.Catalog.SubjectCacheTTLMinutes > 0 {
		ttl = time.Duration(c.cfg.Catalog.SubjectCacheTTLMinutes) * time.Minute
	}
	c.log.Infow("subject detail cache enabled", "addr", c.cfg.Redis.GetAddr(), "ttl", ttl)
	return cache.NewRedisSubjectDetailCache(client, ttl, c.log)
}

// Shutdown releases the clients owned by the container.
func (c *Container) Shutdown() {
	if c.redisClient != nil {
		if err := c.redisClient.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}
