package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/lumen-edu/lumen/internal/application/cart/usecases"
	"github.com/lumen-edu/lumen/internal/interfaces/http/handlers/common"
	"github.com/lumen-edu/lumen/internal/shared/logger"
	"github.com/lumen-edu/lumen/internal/shared/utils"
)

// LibraryHandler serves what a learner owns and what they paid for it.
type LibraryHandler struct {
	listLibraryUC   listLibraryUseCase
	listPurchasesUC listPurchasesUseCase
	logger          logger.Interface
}

func NewLibraryHandler(listLibraryUC listLibraryUseCase, listPurchasesUC listPurchasesUseCase, logger logger.Interface) *LibraryHandler {
	return &LibraryHandler{
		listLibraryUC:   listLibraryUC,
		listPurchasesUC: listPurchasesUC,
		logger:          logger,
	}
}

// GetLibrary lists owned content types grouped by subject
// GET /library
func (h *LibraryHandler) GetLibrary(c *gin.Context) {
	user, err := common.CurrentUser(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listLibraryUC.Execute(c.Request.Context(), user)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// ListPurchases lists the learner's purchases, newest first
// GET /purchases
func (h *LibraryHandler) ListPurchases(c *gin.Context) {
	user, err := common.CurrentUser(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	p := utils.ParsePagination(c)
	result, err := h.listPurchasesUC.Execute(c.Request.Context(), usecases.ListPurchasesQuery{
		User:     user,
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Purchases, result.Total, result.Page, result.PageSize)
}
