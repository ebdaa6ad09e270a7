package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/lumen-edu/lumen/internal/application/cart/usecases"
	"github.com/lumen-edu/lumen/internal/domain/cart"
	"github.com/lumen-edu/lumen/internal/interfaces/http/handlers/common"
	"github.com/lumen-edu/lumen/internal/shared/errors"
	"github.com/lumen-edu/lumen/internal/shared/logger"
	"github.com/lumen-edu/lumen/internal/shared/utils"
)

// CartHandler serves the signed-in learner's cart.
type CartHandler struct {
	addToCartUC      addToCartUseCase
	removeFromCartUC removeFromCartUseCase
	removeByItemUC   removeFromCartByItemUseCase
	clearCartUC      clearCartUseCase
	getCartUC        getCartUseCase
	bundleOppsUC     detectBundleOpportunitiesUseCase
	swapWithBundleUC swapWithBundleUseCase
	applyOfferCodeUC applyOfferCodeUseCase
	checkoutUC       checkoutUseCase
	logger           logger.Interface
}

func NewCartHandler(
	addToCartUC addToCartUseCase,
	removeFromCartUC removeFromCartUseCase,
	removeByItemUC removeFromCartByItemUseCase,
	clearCartUC clearCartUseCase,
	getCartUC getCartUseCase,
	bundleOppsUC detectBundleOpportunitiesUseCase,
	swapWithBundleUC swapWithBundleUseCase,
	applyOfferCodeUC applyOfferCodeUseCase,
	checkoutUC checkoutUseCase,
	logger logger.Interface,
) *CartHandler {
	return &CartHandler{
		addToCartUC:      addToCartUC,
		removeFromCartUC: removeFromCartUC,
		removeByItemUC:   removeByItemUC,
		clearCartUC:      clearCartUC,
		getCartUC:        getCartUC,
		bundleOppsUC:     bundleOppsUC,
		swapWithBundleUC: swapWithBundleUC,
		applyOfferCodeUC: applyOfferCodeUC,
		checkoutUC:       checkoutUC,
		logger:           logger,
	}
}

// CartLineRequest identifies a cart line: the whole-subject bundle or one content type.
type CartLineRequest struct {
	SubjectID     string  `json:"subject_id" binding:"required,uuid"`
	IsBundle      bool    `json:"is_bundle"`
	ContentTypeID *string `json:"content_type_id" binding:"omitempty,uuid"`
}

type AddToCartRequest struct {
	CartLineRequest
	// ExpectedPrice is the price the client displayed to the learner.
	ExpectedPrice *string `json:"expected_price" binding:"omitempty,decimal"`
}

type SwapWithBundleRequest struct {
	SubjectID string `json:"subject_id" binding:"required,uuid"`
}

type ApplyOfferCodeRequest struct {
	Code string `json:"code" binding:"required,max=50"`
}

type CheckoutRequest struct {
	OfferCode        string `json:"offer_code" binding:"omitempty,max=50"`
	PaymentReference string `json:"payment_reference" binding:"required,max=191"`
	// PaymentConfirmation is the signed token the payment provider returned for this payment.
	PaymentConfirmation string `json:"payment_confirmation" binding:"required,max=4096"`
}

func (r CartLineRequest) line() (cart.Line, error) {
	contentTypeID := ""
	if r.ContentTypeID != nil {
		contentTypeID = *r.ContentTypeID
	}
	line, err := cart.NewLine(r.IsBundle, contentTypeID)
	if err != nil {
		if r.IsBundle {
			return nil, errors.NewValidationError("A bundle line cannot name a content type")
		}
		return nil, errors.NewValidationError("content_type_id is required for an individual item")
	}
	return line, nil
}

// GetCart returns the cart with its lines and subtotal
// GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	user, err := common.CurrentUser(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getCartUC.Execute(c.Request.Context(), user)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// AddItem adds a bundle or individual line
// POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	user, err := common.CurrentUser(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add to cart", "user_id", user.UserID, "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateBindError(err))
		return
	}

	line, err := req.line()
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.AddToCartCommand{
		User:      user,
		SubjectID: req.SubjectID,
		Line:      line,
	}
	if req.ExpectedPrice != nil {
		expected, err := decimal.NewFromString(*req.ExpectedPrice)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("invalid expected_price"))
			return
		}
		cmd.ExpectedPrice = &expected
	}

	result, err := h.addToCartUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Added to cart")
}

// RemoveLine removes the line matching subject and line kind
// POST /cart/items/remove
func (h *CartHandler) RemoveLine(c *gin.Context) {
	user, err := common.CurrentUser(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CartLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for remove from cart", "user_id", user.UserID, "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateBindError(err))
		return
	}

	line, err := req.line()
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.RemoveFromCartCommand{User: user, SubjectID: req.SubjectID, Line: line}
	if err := h.removeFromCartUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, nil, "Removed from cart")
}

// RemoveItem removes a single line by its id
// DELETE /cart/items/:id
func (h *CartHandler) RemoveItem(c *gin.Context) {
	user, err := common.CurrentUser(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	itemID, err := utils.ParseUUIDParam(c, "id", "cart item")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.RemoveFromCartByItemCommand{User: user, ItemID: itemID}
	if err := h.removeByItemUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, nil, "Removed from cart")
}

// ClearCart empties the cart
// DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	user, err := common.CurrentUser(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.clearCartUC.Execute(c.Request.Context(), user); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, nil, "Cart cleared")
}

// GetBundleOpportunities lists subjects where swapping to the bundle saves money
// GET /cart/bundle-opportunities
func (h *CartHandler) GetBundleOpportunities(c *gin.Context) {
	user, err := common.CurrentUser(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.bundleOppsUC.Execute(c.Request.Context(), user)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// SwapWithBundle replaces the individual lines of a subject with its bundle
// POST /cart/bundle-swap
func (h *CartHandler) SwapWithBundle(c *gin.Context) {
	user, err := common.CurrentUser(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SwapWithBundleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for bundle swap", "user_id", user.UserID, "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateBindError(err))
		return
	}

	result, err := h.swapWithBundleUC.Execute(c.Request.Context(), usecases.SwapWithBundleCommand{
		User:      user,
		SubjectID: req.SubjectID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{
		"bundle":        result.Bundle,
		"removed_items": result.RemovedItems,
	}, "Swapped to bundle")
}

// ApplyOfferCode previews the discount an offer code gives on the current cart
// POST /cart/offer
func (h *CartHandler) ApplyOfferCode(c *gin.Context) {
	user, err := common.CurrentUser(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ApplyOfferCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.TranslateBindError(err))
		return
	}

	result, err := h.applyOfferCodeUC.Execute(c.Request.Context(), usecases.ApplyOfferCodeCommand{
		User: user,
		Code: req.Code,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result, result.Message)
}

// Checkout records a provider-confirmed payment and turns the cart into owned content
// POST /cart/checkout
func (h *CartHandler) Checkout(c *gin.Context) {
	user, err := common.CurrentUser(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for checkout", "user_id", user.UserID, "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateBindError(err))
		return
	}

	result, err := h.checkoutUC.Execute(c.Request.Context(), usecases.CheckoutCommand{
		User:                user,
		OfferCode:           req.OfferCode,
		PaymentReference:    req.PaymentReference,
		PaymentConfirmation: req.PaymentConfirmation,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Purchase completed")
}
