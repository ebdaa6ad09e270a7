package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-edu/lumen/internal/infrastructure/auth"
	"github.com/lumen-edu/lumen/internal/shared/authorization"
	"github.com/lumen-edu/lumen/internal/shared/constants"
	"github.com/lumen-edu/lumen/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubEnforcer struct {
	allowed map[string]bool
	err     error
}

func (s *stubEnforcer) Enforce(role, resource, action string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.allowed[role+":"+resource+":"+action], nil
}

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetString(constants.ContextKeyUserID),
			"role":    c.GetString(constants.ContextKeyUserRole),
		})
	})
	r.GET("/ping", handlers...)
	return r
}

func do(r http.Handler, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	if header != "" {
		req.Header.Set(constants.HeaderAuthorization, header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_RequireAuth(t *testing.T) {
	jwtSvc := auth.NewJWTService("secret", "")
	m := NewAuthMiddleware(jwtSvc, logger.NewNop())
	r := newEngine(m.RequireAuth())

	token, err := jwtSvc.Sign("user-1", "ada@example.com", authorization.RoleLearner, time.Hour)
	require.NoError(t, err)

	w := do(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":"user-1"`)

	assert.Equal(t, http.StatusUnauthorized, do(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, "Basic abc").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, "Bearer not-a-jwt").Code)
}

func TestAuthMiddleware_OptionalAuth(t *testing.T) {
	jwtSvc := auth.NewJWTService("secret", "")
	m := NewAuthMiddleware(jwtSvc, logger.NewNop())
	r := newEngine(m.OptionalAuth())

	w := do(r, "Bearer garbage")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":""`)
}

func TestPermissionMiddleware(t *testing.T) {
	setUser := func(role string) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set(constants.ContextKeyUserID, "user-1")
			c.Set(constants.ContextKeyUserRole, role)
		}
	}
	enforcer := &stubEnforcer{allowed: map[string]bool{"admin:offer:write": true}}
	m := NewPermissionMiddleware(enforcer, logger.NewNop())

	t.Run("allowed", func(t *testing.T) {
		r := newEngine(setUser("admin"), m.RequirePermission(authorization.ResourceOffer, authorization.ActionWrite))
		assert.Equal(t, http.StatusOK, do(r, "").Code)
	})

	t.Run("forbidden", func(t *testing.T) {
		r := newEngine(setUser("learner"), m.RequirePermission(authorization.ResourceOffer, authorization.ActionWrite))
		assert.Equal(t, http.StatusForbidden, do(r, "").Code)
	})

	t.Run("anonymous", func(t *testing.T) {
		r := newEngine(m.RequirePermission(authorization.ResourceOffer, authorization.ActionWrite))
		assert.Equal(t, http.StatusUnauthorized, do(r, "").Code)
	})

	t.Run("enforcer failure", func(t *testing.T) {
		broken := NewPermissionMiddleware(&stubEnforcer{err: errors.New("adapter down")}, logger.NewNop())
		r := newEngine(setUser("admin"), broken.RequirePermission(authorization.ResourceOffer, authorization.ActionWrite))
		assert.Equal(t, http.StatusInternalServerError, do(r, "").Code)
	})
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(logger.NewNop()))
	r.GET("/ping", func(c *gin.Context) { panic("boom") })

	w := do(r, "Bearer secret-token")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), constants.ErrMsgInternalServerError)
}

func TestRequestID(t *testing.T) {
	r := newEngine(RequestID())

	w := do(r, "")
	assert.NotEmpty(t, w.Header().Get(constants.HeaderXRequestID))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(constants.HeaderXRequestID, "req-1")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-1", w.Header().Get(constants.HeaderXRequestID))
}
