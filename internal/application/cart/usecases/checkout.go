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
	"github.com/lumen-edu/lumen/internal/domain/offer"
	"github.com/lumen-edu/lumen/internal/domain/purchase"
	"github.com/lumen-edu/lumen/internal/shared/biztime"
	apperrors "github.com/lumen-edu/lumen/internal/shared/errors"
	"github.com/lumen-edu/lumen/internal/shared/logger"
)

const (
	msgPaymentReferenceRequired    = "Payment reference is required"
	msgPaymentConfirmationRequired = "Payment confirmation is required"
	msgPaymentUnverified           = "Payment could not be verified"
)

// ReceiptSender delivers the purchase receipt once a checkout has committed.
type ReceiptSender interface {
	SendPurchaseReceipt(ctx context.Context, to string, p *purchase.Purchase) error
}

// PaymentConfirmation is what the payment provider attests to once the learner has paid.
type PaymentConfirmation struct {
	Reference string
	UserID    string
	Total     decimal.Decimal
	Currency  string
	// Token is the provider-signed proof the client received after paying.
	Token string
}

// PaymentVerifier rejects confirmations the provider did not issue for exactly this payment.
type PaymentVerifier interface {
	VerifyPayment(ctx context.Context, c PaymentConfirmation) error
}

type CheckoutCommand struct {
	User common.UserContext
	// OfferCode is optional.
	OfferCode string
	// PaymentReference identifies the confirmed payment at the provider. It is unique per purchase.
	PaymentReference string
	// PaymentConfirmation is the provider-signed token covering the reference, the user and the total.
	PaymentConfirmation string
}

type CheckoutUseCase struct {
	cartRepo     cart.Repository
	offerRepo    offer.Repository
	contentRepo  catalog.SubjectContentRepository
	accessRepo   access.Repository
	purchaseRepo purchase.Repository
	labels       labelResolver
	txManager    common.TransactionRunner
	payments     PaymentVerifier
	receipts     ReceiptSender
	currency     string
	logger       logger.Interface
}

type CheckoutDeps struct {
	CartRepo        cart.Repository
	OfferRepo       offer.Repository
	SubjectRepo     catalog.SubjectRepository
	ContentTypeRepo catalog.ContentTypeRepository
	ContentRepo     catalog.SubjectContentRepository
	AccessRepo      access.Repository
	PurchaseRepo    purchase.Repository
	TxManager       common.TransactionRunner
	Payments        PaymentVerifier
	// Receipts may be nil, in which case no receipt is sent.
	Receipts ReceiptSender
	Currency string
}

func NewCheckoutUseCase(deps CheckoutDeps, logger logger.Interface) *CheckoutUseCase {
	return &CheckoutUseCase{
		cartRepo:     deps.CartRepo,
		offerRepo:    deps.OfferRepo,
		contentRepo:  deps.ContentRepo,
		accessRepo:   deps.AccessRepo,
		purchaseRepo: deps.PurchaseRepo,
		labels:       labelResolver{subjectRepo: deps.SubjectRepo, contentTypeRepo: deps.ContentTypeRepo},
		txManager:    deps.TxManager,
		payments:     deps.Payments,
		receipts:     deps.Receipts,
		currency:     deps.Currency,
		logger:       logger,
	}
}

// Execute records a confirmed payment: it verifies the provider confirmation against the cart
// total, then redeems the offer, grants access for every line, stores the purchase and empties
// the cart in one transaction.
func (uc *CheckoutUseCase) Execute(ctx context.Context, cmd CheckoutCommand) (*dto.PurchaseDTO, error) {
	if err := cmd.User.Require(); err != nil {
		return nil, err
	}
	if cmd.PaymentReference == "" {
		return nil, apperrors.NewValidationError(msgPaymentReferenceRequired)
	}
	if cmd.PaymentConfirmation == "" {
		return nil, apperrors.NewValidationError(msgPaymentConfirmationRequired)
	}

	var completed *purchase.Purchase
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		p, err := uc.checkout(txCtx, cmd)
		if err != nil {
			return err
		}
		completed = p
		return nil
	})
	if err != nil {
		if !apperrors.IsAppError(err) {
			uc.logger.Errorw("checkout failed", "error", err, "user_id", cmd.User.UserID)
			return nil, fmt.Errorf("checkout failed: %w", err)
		}
		return nil, err
	}

	uc.logger.Infow("checkout completed",
		"user_id", cmd.User.UserID,
		"purchase_id", completed.ID(),
		"total", completed.Total().String(),
		"lines", len(completed.Lines()))

	uc.sendReceipt(ctx, cmd.User, completed)

	return dto.ToPurchaseDTO(completed), nil
}

func (uc *CheckoutUseCase) checkout(ctx context.Context, cmd CheckoutCommand) (*purchase.Purchase, error) {
	items, err := uc.cartRepo.ListByUser(ctx, cmd.User.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}
	if len(items) == 0 {
		return nil, apperrors.NewValidationError(msgCartEmpty)
	}

	subtotal := cart.Subtotal(items)
	totals := purchase.Totals{Subtotal: subtotal, Discount: decimal.Zero, Total: subtotal}

	var redeemed *offer.Offer
	if cmd.OfferCode != "" {
		o, err := loadRedeemableOffer(ctx, uc.offerRepo, cmd.OfferCode, biztime.NowUTC())
		if err != nil {
			return nil, err
		}
		ev, err := o.Evaluate(toOfferLines(items))
		if err != nil {
			return nil, offerRuleError(err)
		}
		totals = purchase.Totals{Subtotal: ev.Subtotal, Discount: ev.Discount, Total: ev.Total}
		redeemed = o
	}

	// Nothing is written before the provider has confirmed this exact amount.
	if err := uc.verifyPayment(ctx, cmd, totals.Total); err != nil {
		return nil, err
	}

	var offerCode *string
	if redeemed != nil {
		if err := uc.offerRepo.IncrementUsage(ctx, redeemed.ID()); err != nil {
			if errors.Is(err, offer.ErrUsageExhausted) {
				return nil, offerRuleError(err)
			}
			return nil, fmt.Errorf("failed to redeem offer: %w", err)
		}
		code := redeemed.Code()
		offerCode = &code
	}

	lines, err := uc.purchaseLines(ctx, items)
	if err != nil {
		return nil, err
	}

	p, err := purchase.NewPurchase(cmd.User.UserID, offerCode, totals, uc.currency, cmd.PaymentReference, lines)
	if err != nil {
		return nil, fmt.Errorf("failed to build purchase: %w", err)
	}
	if err := uc.purchaseRepo.Create(ctx, p); err != nil {
		if errors.Is(err, purchase.ErrPaymentAlreadyRecorded) {
			return nil, apperrors.NewConflictError(msgPaymentRecorded)
		}
		return nil, fmt.Errorf("failed to save purchase: %w", err)
	}

	purchaseID := p.ID()
	var grants []*access.UserAccess
	for _, l := range lines {
		for _, ctID := range l.GrantedTypeIDs {
			g, err := access.NewUserAccess(cmd.User.UserID, l.SubjectID, ctID, access.SourcePurchase, &purchaseID)
			if err != nil {
				return nil, fmt.Errorf("failed to build access grant: %w", err)
			}
			grants = append(grants, g)
		}
	}
	if err := uc.accessRepo.Grant(ctx, grants); err != nil {
		return nil, fmt.Errorf("failed to grant access: %w", err)
	}

	if _, err := uc.cartRepo.DeleteByUser(ctx, cmd.User.UserID); err != nil {
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}
	return p, nil
}

func (uc *CheckoutUseCase) verifyPayment(ctx context.Context, cmd CheckoutCommand, total decimal.Decimal) error {
	if uc.payments == nil {
		return apperrors.NewInternalError("payment verification is not configured")
	}
	err := uc.payments.VerifyPayment(ctx, PaymentConfirmation{
		Reference: cmd.PaymentReference,
		UserID:    cmd.User.UserID,
		Total:     total,
		Currency:  uc.currency,
		Token:     cmd.PaymentConfirmation,
	})
	if err != nil {
		uc.logger.Warnw("payment confirmation rejected",
			"error", err,
			"user_id", cmd.User.UserID,
			"payment_reference", cmd.PaymentReference)
		return apperrors.NewValidationError(msgPaymentUnverified)
	}
	return nil
}

// purchaseLines snapshots the cart. A bundle line grants every content type the subject
// currently offers.
func (uc *CheckoutUseCase) purchaseLines(ctx context.Context, items []*cart.Item) ([]purchase.Line, error) {
	labels, err := uc.labels.resolve(ctx, items)
	if err != nil {
		return nil, err
	}

	var bundleSubjects []string
	for _, it := range items {
		if it.IsBundle() {
			bundleSubjects = append(bundleSubjects, it.SubjectID())
		}
	}
	available := map[string][]string{}
	if len(bundleSubjects) > 0 {
		available, err = uc.contentRepo.AvailableContentTypes(ctx, bundleSubjects)
		if err != nil {
			return nil, fmt.Errorf("failed to load available content types: %w", err)
		}
	}

	lines := make([]purchase.Line, 0, len(items))
	for _, it := range items {
		l := labels[it.ID()]
		line := purchase.Line{
			SubjectID:    it.SubjectID(),
			SubjectTitle: l.SubjectTitle,
			IsBundle:     it.IsBundle(),
			Price:        it.Price(),
		}
		if ctID, ok := it.ContentTypeID(); ok {
			line.ContentTypeID = ctID
			line.ContentTypeName = l.ContentTypeName
			line.GrantedTypeIDs = []string{ctID}
		} else {
			line.GrantedTypeIDs = append([]string{}, available[it.SubjectID()]...)
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func (uc *CheckoutUseCase) sendReceipt(ctx context.Context, user common.UserContext, p *purchase.Purchase) {
	if uc.receipts == nil || user.Email == "" {
		return
	}
	if err := uc.receipts.SendPurchaseReceipt(ctx, user.Email, p); err != nil {
		uc.logger.Warnw("failed to send purchase receipt",
			"error", err,
			"user_id", user.UserID,
			"purchase_id", p.ID())
	}
}
