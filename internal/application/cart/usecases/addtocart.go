package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lumen-edu/lumen/internal/application/cart/dto"
	"github.com/lumen-edu/lumen/internal/application/common"
	"github.com/lumen-edu/lumen/internal/domain/access"
	"github.com/lumen-edu/lumen/internal/domain/cart"
	"github.com/lumen-edu/lumen/internal/domain/catalog"
	apperrors "github.com/lumen-edu/lumen/internal/shared/errors"
	"github.com/lumen-edu/lumen/internal/shared/logger"
)

type AddToCartCommand struct {
	User      common.UserContext
	SubjectID string
	Line      cart.Line
	// ExpectedPrice is the price the caller displayed. When set it must match the catalog.
	ExpectedPrice *decimal.Decimal
}

type AddToCartUseCase struct {
	cartRepo        cart.Repository
	subjectRepo     catalog.SubjectRepository
	contentTypeRepo catalog.ContentTypeRepository
	pricingRepo     catalog.PricingRepository
	contentRepo     catalog.SubjectContentRepository
	accessRepo      access.Repository
	logger          logger.Interface
}

func NewAddToCartUseCase(
	cartRepo cart.Repository,
	subjectRepo catalog.SubjectRepository,
	contentTypeRepo catalog.ContentTypeRepository,
	pricingRepo catalog.PricingRepository,
	contentRepo catalog.SubjectContentRepository,
	accessRepo access.Repository,
	logger logger.Interface,
) *AddToCartUseCase {
	return &AddToCartUseCase{
		cartRepo:        cartRepo,
		subjectRepo:     subjectRepo,
		contentTypeRepo: contentTypeRepo,
		pricingRepo:     pricingRepo,
		contentRepo:     contentRepo,
		accessRepo:      accessRepo,
		logger:          logger,
	}
}

func (uc *AddToCartUseCase) Execute(ctx context.Context, cmd AddToCartCommand) (*dto.CartItemDTO, error) {
	if err := cmd.User.Require(); err != nil {
		return nil, err
	}
	if cmd.Line == nil {
		return nil, apperrors.NewValidationError(msgInvalidLine)
	}

	subject, err := uc.subjectRepo.GetByID(ctx, cmd.SubjectID)
	if err != nil {
		if errors.Is(err, catalog.ErrSubjectNotFound) {
			return nil, apperrors.NewNotFoundError(msgSubjectNotFound)
		}
		uc.logger.Errorw("failed to get subject", "error", err, "subject_id", cmd.SubjectID)
		return nil, fmt.Errorf("failed to get subject: %w", err)
	}
	if !subject.IsActive() {
		return nil, apperrors.NewNotFoundError(msgSubjectNotFound)
	}

	labels := dto.ItemLabels{SubjectTitle: subject.Title(), SubjectSlug: subject.Slug()}

	var price decimal.Decimal
	switch line := cmd.Line.(type) {
	case cart.IndividualLine:
		price, labels.ContentTypeName, err = uc.priceIndividual(ctx, cmd.User.UserID, subject, line.ContentTypeID)
	case cart.BundleLine:
		price, err = uc.priceBundle(ctx, cmd.User.UserID, subject)
	default:
		return nil, apperrors.NewValidationError(msgInvalidLine)
	}
	if err != nil {
		return nil, err
	}

	if cmd.ExpectedPrice != nil && !cmd.ExpectedPrice.Equal(price) {
		uc.logger.Warnw("cart price mismatch",
			"user_id", cmd.User.UserID,
			"subject_id", subject.ID(),
			"expected", cmd.ExpectedPrice.String(),
			"actual", price.String())
		return nil, apperrors.NewValidationError(msgPriceChanged)
	}

	existing, err := uc.cartRepo.FindLine(ctx, cmd.User.UserID, subject.ID(), cmd.Line)
	if err != nil {
		uc.logger.Errorw("failed to check cart line", "error", err, "user_id", cmd.User.UserID)
		return nil, fmt.Errorf("failed to check cart line: %w", err)
	}
	if existing != nil {
		return nil, apperrors.NewConflictError(msgItemInCart)
	}

	item, err := cart.NewItem(cmd.User.UserID, subject.ID(), cmd.Line, price)
	if err != nil {
		return nil, apperrors.NewValidationError(msgInvalidLine, err.Error())
	}

	if err := uc.cartRepo.Create(ctx, item); err != nil {
		if errors.Is(err, cart.ErrItemAlreadyInCart) {
			return nil, apperrors.NewConflictError(msgItemInCart)
		}
		uc.logger.Errorw("failed to add cart item", "error", err, "user_id", cmd.User.UserID)
		return nil, fmt.Errorf("failed to add cart item: %w", err)
	}

	uc.logger.Infow("item added to cart",
		"user_id", cmd.User.UserID,
		"subject_id", subject.ID(),
		"line", cmd.Line.Kind(),
		"price", price.String())

	return dto.ToCartItemDTO(item, labels), nil
}

func (uc *AddToCartUseCase) priceIndividual(ctx context.Context, userID string, subject *catalog.Subject, contentTypeID string) (decimal.Decimal, string, error) {
	ct, err := uc.contentTypeRepo.GetByID(ctx, contentTypeID)
	if err != nil {
		if errors.Is(err, catalog.ErrContentTypeNotFound) {
			return decimal.Zero, "", apperrors.NewNotFoundError(msgContentTypeNotFound)
		}
		return decimal.Zero, "", fmt.Errorf("failed to get content type: %w", err)
	}
	if !ct.IsActive() {
		return decimal.Zero, "", apperrors.NewNotFoundError(msgContentTypeNotFound)
	}

	pricing, err := uc.pricingRepo.Get(ctx, subject.ID(), contentTypeID)
	if err != nil {
		if errors.Is(err, catalog.ErrPricingNotFound) {
			return decimal.Zero, "", apperrors.NewValidationError(msgNotForSale)
		}
		return decimal.Zero, "", fmt.Errorf("failed to get pricing: %w", err)
	}

	owned, err := uc.accessRepo.Has(ctx, userID, subject.ID(), contentTypeID)
	if err != nil {
		return decimal.Zero, "", fmt.Errorf("failed to check access: %w", err)
	}
	if owned {
		return decimal.Zero, "", apperrors.NewValidationError(msgAlreadyOwned)
	}

	return pricing.Price(), ct.Name(), nil
}

func (uc *AddToCartUseCase) priceBundle(ctx context.Context, userID string, subject *catalog.Subject) (decimal.Decimal, error) {
	if !subject.OffersBundle() {
		return decimal.Zero, apperrors.NewValidationError(msgBundleUnavailable)
	}

	available, err := uc.contentRepo.AvailableContentTypes(ctx, []string{subject.ID()})
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load available content types: %w", err)
	}
	owned, err := uc.accessRepo.OwnedContentTypes(ctx, userID, subject.ID())
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to check access: %w", err)
	}
	if access.OwnsAll(owned, available[subject.ID()]) {
		return decimal.Zero, apperrors.NewValidationError(msgAlreadyOwned)
	}

	price, _ := subject.BundlePrice()
	return price, nil
}
