package admin

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/lumen-edu/lumen/internal/application/offer/usecases"
	"github.com/lumen-edu/lumen/internal/shared/errors"
	"github.com/lumen-edu/lumen/internal/shared/logger"
	"github.com/lumen-edu/lumen/internal/shared/utils"
)

// OfferHandler handles offer code administration
type OfferHandler struct {
	createOfferUC    createOfferUseCase
	updateOfferUC    updateOfferUseCase
	setOfferActiveUC setOfferActiveUseCase
	getOfferUC       getOfferUseCase
	listOffersUC     listOffersUseCase
	deleteOfferUC    deleteOfferUseCase
	logger           logger.Interface
}

func NewOfferHandler(
	createOfferUC createOfferUseCase,
	updateOfferUC updateOfferUseCase,
	setOfferActiveUC setOfferActiveUseCase,
	getOfferUC getOfferUseCase,
	listOffersUC listOffersUseCase,
	deleteOfferUC deleteOfferUseCase,
	logger logger.Interface,
) *OfferHandler {
	return &OfferHandler{
		createOfferUC:    createOfferUC,
		updateOfferUC:    updateOfferUC,
		setOfferActiveUC: setOfferActiveUC,
		getOfferUC:       getOfferUC,
		listOffersUC:     listOffersUC,
		deleteOfferUC:    deleteOfferUC,
		logger:           logger,
	}
}

// OfferTermsRequest carries the editable terms of an offer
type OfferTermsRequest struct {
	Description   string    `json:"description" binding:"max=500"`
	DiscountType  string    `json:"discount_type" binding:"required,oneof=percentage fixed"`
	Value         string    `json:"value" binding:"required,decimal"`
	SubjectID     *string   `json:"subject_id" binding:"omitempty,uuid"`
	ContentTypeID *string   `json:"content_type_id" binding:"omitempty,uuid"`
	ValidFrom     time.Time `json:"valid_from" binding:"required"`
	ValidUntil    time.Time `json:"valid_until" binding:"required"`
	MaxUsage      *int      `json:"max_usage" binding:"omitempty,min=1"`
}

type CreateOfferRequest struct {
	Code string `json:"code" binding:"required,max=50"`
	OfferTermsRequest
}

type UpdateOfferStatusRequest struct {
	Active *bool `json:"is_active" binding:"required"`
}

func (r OfferTermsRequest) toInput() (usecases.TermsInput, error) {
	value, err := decimal.NewFromString(r.Value)
	if err != nil {
		return usecases.TermsInput{}, errors.NewValidationError("invalid value")
	}
	return usecases.TermsInput{
		Description:   r.Description,
		DiscountType:  r.DiscountType,
		Value:         value,
		SubjectID:     r.SubjectID,
		ContentTypeID: r.ContentTypeID,
		ValidFrom:     r.ValidFrom.UTC(),
		ValidUntil:    r.ValidUntil.UTC(),
		MaxUsage:      r.MaxUsage,
	}, nil
}

// CreateOffer creates an offer code
// POST /admin/offers
func (h *OfferHandler) CreateOffer(c *gin.Context) {
	var req CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create offer", "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateBindError(err))
		return
	}

	terms, err := req.toInput()
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createOfferUC.Execute(c.Request.Context(), usecases.CreateOfferCommand{
		Code:       req.Code,
		TermsInput: terms,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Offer created successfully")
}

// UpdateOffer replaces the terms of an offer. The code itself never changes.
// PUT /admin/offers/:id
func (h *OfferHandler) UpdateOffer(c *gin.Context) {
	offerID, err := utils.ParseUUIDParam(c, "id", "offer")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req OfferTermsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update offer",
			"offer_id", offerID,
			"error", err)
		utils.ErrorResponseWithError(c, utils.TranslateBindError(err))
		return
	}

	terms, err := req.toInput()
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateOfferUC.Execute(c.Request.Context(), usecases.UpdateOfferCommand{
		ID:         offerID,
		TermsInput: terms,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result, "Offer updated successfully")
}

// UpdateOfferStatus activates or deactivates an offer
// PATCH /admin/offers/:id/status
func (h *OfferHandler) UpdateOfferStatus(c *gin.Context) {
	offerID, err := utils.ParseUUIDParam(c, "id", "offer")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateOfferStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.TranslateBindError(err))
		return
	}

	result, err := h.setOfferActiveUC.Execute(c.Request.Context(), usecases.SetOfferActiveCommand{
		ID:     offerID,
		Active: *req.Active,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	msg := "Offer deactivated successfully"
	if *req.Active {
		msg = "Offer activated successfully"
	}
	utils.OKResponse(c, result, msg)
}

// GetOffer returns a single offer
// GET /admin/offers/:id
func (h *OfferHandler) GetOffer(c *gin.Context) {
	offerID, err := utils.ParseUUIDParam(c, "id", "offer")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getOfferUC.Execute(c.Request.Context(), offerID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// ListOffers lists offers, optionally filtered by ?active=true|false
// GET /admin/offers
func (h *OfferHandler) ListOffers(c *gin.Context) {
	p := utils.ParsePagination(c)

	query := usecases.ListOffersQuery{Page: p.Page, PageSize: p.PageSize}
	if raw := c.Query("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("active must be true or false"))
			return
		}
		query.Active = &active
	}

	result, err := h.listOffersUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Offers, result.Total, result.Page, result.PageSize)
}

// DeleteOffer deletes an offer
// DELETE /admin/offers/:id
func (h *OfferHandler) DeleteOffer(c *gin.Context) {
	offerID, err := utils.ParseUUIDParam(c, "id", "offer")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteOfferUC.Execute(c.Request.Context(), offerID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, nil, "Offer deleted successfully")
}
