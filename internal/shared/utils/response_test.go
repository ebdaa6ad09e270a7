package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-edu/lumen/internal/shared/errors"
)

func decode(t *testing.T, w *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestSuccessResponses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	CreatedResponse(c, gin.H{"id": "s-1"})
	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decode(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "Resource created successfully", resp.Message)
	assert.Nil(t, resp.Error)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	OKResponse(c, nil, "Cart cleared")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Cart cleared", decode(t, w).Message)
}

func TestErrorResponseWithError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	ErrorResponseWithError(c, errors.NewConflictError("Item already in cart"))
	assert.Equal(t, http.StatusConflict, w.Code)
	resp := decode(t, w)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "conflict", resp.Error.Type)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	ErrorResponseWithError(c, assert.AnError)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}
