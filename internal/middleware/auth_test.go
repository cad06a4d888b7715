package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bs23/ems_backend/internal/apperrors"
	"github.com/bs23/ems_backend/internal/core/domain"
	"github.com/bs23/ems_backend/internal/core/services"
	"github.com/bs23/ems_backend/internal/middleware"
	"github.com/bs23/ems_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubIdentity struct {
	principals map[string]domain.Principal
}

func (s *stubIdentity) ResolvePrincipal(ctx context.Context, identifier string) (*domain.Principal, string, error) {
	p, ok := s.principals[identifier]
	if !ok {
		return nil, "", apperrors.ErrNotFound
	}
	return &p, "stored-hash", nil
}

func (s *stubIdentity) ResolveEmployee(ctx context.Context, identifier string) (*domain.Employee, error) {
	return nil, apperrors.ErrNotFound
}

func newGateRouter(t *testing.T) (*gin.Engine, func(subject, role string) string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		JWTSecret:         "gate-test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "ems-backend-test",
	}
	tokens := services.NewTokenService(cfg)
	identity := &stubIdentity{principals: map[string]domain.Principal{
		"admin":            {Subject: "admin", Role: "ADMIN"},
		"jane@example.com": {Subject: "jane@example.com", Role: "EMPLOYEE"},
	}}

	r := gin.New()
	api := r.Group("/api", middleware.AuthenticationGate(tokens, identity))
	api.POST("/auth/login", func(c *gin.Context) {
		c.String(http.StatusOK, "login")
	})
	api.GET("/admin-only", middleware.RequireRoles("ADMIN", "HR"), func(c *gin.Context) {
		principal, _ := middleware.GetPrincipal(c)
		c.String(http.StatusOK, principal.Subject)
	})
	api.GET("/any-authenticated", middleware.RequireAuthenticated(), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	issue := func(subject, role string) string {
		token, err := tokens.Issue(context.Background(), subject, role)
		require.NoError(t, err)
		return token
	}
	return r, issue
}

func doRequest(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGateBypassesLoginPath(t *testing.T) {
	r, _ := newGateRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGateSilentRejectLeadsTo401(t *testing.T) {
	r, issue := newGateRouter(t)

	// No header: unauthenticated, denied by the role guard, not the gate.
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "/api/admin-only", "").Code)

	// Malformed token: same outcome, no 500.
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "/api/admin-only", "garbage").Code)

	// Valid token whose subject no longer resolves.
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "/api/admin-only", issue("deleted-user", "ADMIN")).Code)
}

func TestGateAuthenticatesAndGuardsByRole(t *testing.T) {
	r, issue := newGateRouter(t)

	adminToken := issue("admin", "ADMIN")
	employeeToken := issue("jane@example.com", "EMPLOYEE")

	w := doRequest(r, "/api/admin-only", adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin", w.Body.String())

	// Authenticated but lacking the role: 403, not 401.
	assert.Equal(t, http.StatusForbidden, doRequest(r, "/api/admin-only", employeeToken).Code)

	assert.Equal(t, http.StatusOK, doRequest(r, "/api/any-authenticated", employeeToken).Code)
}

func TestGateRoleComesFromResolutionNotToken(t *testing.T) {
	r, issue := newGateRouter(t)

	// Token minted with a stale ADMIN role for an employee subject: the
	// re-resolved principal wins and the role guard denies.
	staleToken := issue("jane@example.com", "ADMIN")
	assert.Equal(t, http.StatusForbidden, doRequest(r, "/api/admin-only", staleToken).Code)
}
