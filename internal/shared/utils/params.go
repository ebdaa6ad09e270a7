package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lumen-edu/lumen/internal/shared/errors"
)

// ParseUUIDParam reads a UUID path parameter. entityName is used in error messages
// (e.g., "subject", "cart item").
func ParseUUIDParam(c *gin.Context, paramName, entityName string) (string, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return "", errors.NewValidationError(entityName + " ID is required")
	}
	parsed, err := uuid.Parse(raw)
	if err != nil {
		return "", errors.NewValidationError("invalid " + entityName + " ID")
	}
	return parsed.String(), nil
}
