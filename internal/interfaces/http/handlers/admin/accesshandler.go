package admin

import (
	"context"

	"github.com/gin-gonic/gin"

	accessdto "github.com/lumen-edu/lumen/internal/application/access/dto"
	"github.com/lumen-edu/lumen/internal/application/access/usecases"
	"github.com/lumen-edu/lumen/internal/shared/logger"
	"github.com/lumen-edu/lumen/internal/shared/utils"
)

type grantAccessUseCase interface {
	Execute(ctx context.Context, cmd usecases.GrantAccessCommand) (*accessdto.AccessGrantDTO, error)
}

// AccessHandler lets admins grant content access outside of checkout
type AccessHandler struct {
	grantAccessUC grantAccessUseCase
	logger        logger.Interface
}

func NewAccessHandler(grantAccessUC grantAccessUseCase, logger logger.Interface) *AccessHandler {
	return &AccessHandler{grantAccessUC: grantAccessUC, logger: logger}
}

type GrantAccessRequest struct {
	UserID        string `json:"user_id" binding:"required,max=191"`
	SubjectID     string `json:"subject_id" binding:"required,uuid"`
	ContentTypeID string `json:"content_type_id" binding:"required,uuid"`
}

// GrantAccess grants a user one content type of a subject. Granting twice is a no-op.
// POST /admin/access
func (h *AccessHandler) GrantAccess(c *gin.Context) {
	var req GrantAccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for grant access", "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateBindError(err))
		return
	}

	result, err := h.grantAccessUC.Execute(c.Request.Context(), usecases.GrantAccessCommand{
		UserID:        req.UserID,
		SubjectID:     req.SubjectID,
		ContentTypeID: req.ContentTypeID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("access granted by admin",
		"user_id", req.UserID,
		"subject_id", req.SubjectID,
		"content_type_id", req.ContentTypeID)

	utils.OKResponse(c, result, "Access granted")
}
