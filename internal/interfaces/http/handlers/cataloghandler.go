package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lumen-edu/lumen/internal/application/catalog/usecases"
	"github.com/lumen-edu/lumen/internal/shared/errors"
	"github.com/lumen-edu/lumen/internal/shared/logger"
	"github.com/lumen-edu/lumen/internal/shared/utils"
)

// CatalogHandler serves the public catalog. It never exposes inactive subjects or content types.
type CatalogHandler struct {
	listSubjectsUC     listSubjectsUseCase
	getSubjectUC       getSubjectUseCase
	listContentTypesUC listContentTypesUseCase
	logger             logger.Interface
}

func NewCatalogHandler(
	listSubjectsUC listSubjectsUseCase,
	getSubjectUC getSubjectUseCase,
	listContentTypesUC listContentTypesUseCase,
	logger logger.Interface,
) *CatalogHandler {
	return &CatalogHandler{
		listSubjectsUC:     listSubjectsUC,
		getSubjectUC:       getSubjectUC,
		listContentTypesUC: listContentTypesUC,
		logger:             logger,
	}
}

// ListSubjects lists active subjects
// GET /subjects
func (h *CatalogHandler) ListSubjects(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listSubjectsUC.Execute(c.Request.Context(), usecases.ListSubjectsQuery{
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Subjects, result.Total, result.Page, result.PageSize)
}

// GetSubject returns the subject detail with contents and prices
// GET /subjects/:slug
func (h *CatalogHandler) GetSubject(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("subject slug is required"))
		return
	}

	result, err := h.getSubjectUC.Execute(c.Request.Context(), slug)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// ListContentTypes lists active content types in display order
// GET /content-types
func (h *CatalogHandler) ListContentTypes(c *gin.Context) {
	result, err := h.listContentTypesUC.Execute(c.Request.Context(), false)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}
