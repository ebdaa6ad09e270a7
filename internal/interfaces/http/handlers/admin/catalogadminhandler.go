package admin

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/lumen-edu/lumen/internal/application/catalog/usecases"
	"github.com/lumen-edu/lumen/internal/shared/errors"
	"github.com/lumen-edu/lumen/internal/shared/logger"
	"github.com/lumen-edu/lumen/internal/shared/utils"
)

// CatalogAdminHandler handles catalog management requests
type CatalogAdminHandler struct {
	listSubjectsUC      listSubjectsUseCase
	createSubjectUC     createSubjectUseCase
	updateSubjectUC     updateSubjectUseCase
	setPricingUC        setContentTypePricingUseCase
	addContentUC        addSubjectContentUseCase
	listContentTypesUC  listContentTypesUseCase
	createContentTypeUC createContentTypeUseCase
	logger              logger.Interface
}

func NewCatalogAdminHandler(
	listSubjectsUC listSubjectsUseCase,
	createSubjectUC createSubjectUseCase,
	updateSubjectUC updateSubjectUseCase,
	setPricingUC setContentTypePricingUseCase,
	addContentUC addSubjectContentUseCase,
	listContentTypesUC listContentTypesUseCase,
	createContentTypeUC createContentTypeUseCase,
	logger logger.Interface,
) *CatalogAdminHandler {
	return &CatalogAdminHandler{
		listSubjectsUC:      listSubjectsUC,
		createSubjectUC:     createSubjectUC,
		updateSubjectUC:     updateSubjectUC,
		setPricingUC:        setPricingUC,
		addContentUC:        addContentUC,
		listContentTypesUC:  listContentTypesUC,
		createContentTypeUC: createContentTypeUC,
		logger:              logger,
	}
}

type CreateSubjectRequest struct {
	Title         string  `json:"title" binding:"required,max=200"`
	Slug          string  `json:"slug" binding:"required,max=100"`
	Description   string  `json:"description"`
	BundlePrice   *string `json:"bundle_price" binding:"omitempty,decimal"`
	BundleEnabled bool    `json:"is_bundle_enabled"`
}

// UpdateSubjectRequest is a partial update. ClearBundlePrice wins over BundlePrice.
type UpdateSubjectRequest struct {
	Title            *string `json:"title" binding:"omitempty,max=200"`
	Description      *string `json:"description"`
	BundlePrice      *string `json:"bundle_price" binding:"omitempty,decimal"`
	ClearBundlePrice bool    `json:"clear_bundle_price"`
	BundleEnabled    *bool   `json:"is_bundle_enabled"`
	Active           *bool   `json:"is_active"`
}

type SetPricingRequest struct {
	Price string `json:"price" binding:"required,decimal"`
}

type AddContentRequest struct {
	ContentTypeID string `json:"content_type_id" binding:"required,uuid"`
	Title         string `json:"title" binding:"required,max=200"`
	ResourceURL   string `json:"resource_url" binding:"omitempty,url,max=500"`
	SortOrder     int    `json:"sort_order"`
}

type CreateContentTypeRequest struct {
	Name      string `json:"name" binding:"required,max=100"`
	Slug      string `json:"slug" binding:"required,max=50"`
	SortOrder int    `json:"sort_order"`
}

func parseOptionalPrice(raw *string, field string) (*decimal.Decimal, error) {
	if raw == nil {
		return nil, nil
	}
	d, err := decimal.NewFromString(*raw)
	if err != nil {
		return nil, errors.NewValidationError("invalid " + field)
	}
	return &d, nil
}

// ListSubjects lists every subject including inactive ones
// GET /admin/subjects
func (h *CatalogAdminHandler) ListSubjects(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listSubjectsUC.Execute(c.Request.Context(), usecases.ListSubjectsQuery{
		IncludeInactive: true,
		Page:            p.Page,
		PageSize:        p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Subjects, result.Total, result.Page, result.PageSize)
}

// CreateSubject creates a subject
// POST /admin/subjects
func (h *CatalogAdminHandler) CreateSubject(c *gin.Context) {
	var req CreateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create subject", "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateBindError(err))
		return
	}

	bundlePrice, err := parseOptionalPrice(req.BundlePrice, "bundle_price")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createSubjectUC.Execute(c.Request.Context(), usecases.CreateSubjectCommand{
		Title:         req.Title,
		Slug:          req.Slug,
		Description:   req.Description,
		BundlePrice:   bundlePrice,
		BundleEnabled: req.BundleEnabled,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Subject created successfully")
}

// UpdateSubject applies a partial update to a subject
// PATCH /admin/subjects/:id
func (h *CatalogAdminHandler) UpdateSubject(c *gin.Context) {
	subjectID, err := utils.ParseUUIDParam(c, "id", "subject")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update subject",
			"subject_id", subjectID,
			"error", err)
		utils.ErrorResponseWithError(c, utils.TranslateBindError(err))
		return
	}

	bundlePrice, err := parseOptionalPrice(req.BundlePrice, "bundle_price")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateSubjectUC.Execute(c.Request.Context(), usecases.UpdateSubjectCommand{
		ID:               subjectID,
		Title:            req.Title,
		Description:      req.Description,
		BundlePrice:      bundlePrice,
		ClearBundlePrice: req.ClearBundlePrice,
		BundleEnabled:    req.BundleEnabled,
		Active:           req.Active,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result, "Subject updated successfully")
}

// SetPricing sets the price of one content type of a subject
// PUT /admin/subjects/:id/pricing/:content_type_id
func (h *CatalogAdminHandler) SetPricing(c *gin.Context) {
	subjectID, err := utils.ParseUUIDParam(c, "id", "subject")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	contentTypeID, err := utils.ParseUUIDParam(c, "content_type_id", "content type")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SetPricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.TranslateBindError(err))
		return
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid price"))
		return
	}

	result, err := h.setPricingUC.Execute(c.Request.Context(), usecases.SetContentTypePricingCommand{
		SubjectID:     subjectID,
		ContentTypeID: contentTypeID,
		Price:         price,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result, "Price updated successfully")
}

// AddContent attaches a content item to a subject
// POST /admin/subjects/:id/contents
func (h *CatalogAdminHandler) AddContent(c *gin.Context) {
	subjectID, err := utils.ParseUUIDParam(c, "id", "subject")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add subject content",
			"subject_id", subjectID,
			"error", err)
		utils.ErrorResponseWithError(c, utils.TranslateBindError(err))
		return
	}

	result, err := h.addContentUC.Execute(c.Request.Context(), usecases.AddSubjectContentCommand{
		SubjectID:     subjectID,
		ContentTypeID: req.ContentTypeID,
		Title:         req.Title,
		ResourceURL:   req.ResourceURL,
		SortOrder:     req.SortOrder,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Content added successfully")
}

// ListContentTypes lists every content type including inactive ones
// GET /admin/content-types
func (h *CatalogAdminHandler) ListContentTypes(c *gin.Context) {
	result, err := h.listContentTypesUC.Execute(c.Request.Context(), true)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// CreateContentType creates a content type
// POST /admin/content-types
func (h *CatalogAdminHandler) CreateContentType(c *gin.Context) {
	var req CreateContentTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create content type", "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateBindError(err))
		return
	}

	result, err := h.createContentTypeUC.Execute(c.Request.Context(), usecases.CreateContentTypeCommand{
		Name:      req.Name,
		Slug:      req.Slug,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Content type created successfully")
}
