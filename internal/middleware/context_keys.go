package middleware

import (
	"context"

	"github.com/bs23/ems_backend/internal/core/domain"
	"github.com/gin-gonic/gin"
)

const principalCtxKey = contextKey("principal")

// withPrincipal stores the authenticated principal in the request context.
// Identity is always passed explicitly through the context rather than read
// from ambient process-wide state.
func withPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, principalCtxKey, p)
}

// GetPrincipalFromCtx retrieves the authenticated principal from a context.
func GetPrincipalFromCtx(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(principalCtxKey).(domain.Principal)
	return p, ok
}

// GetPrincipal retrieves the authenticated principal for a Gin request.
func GetPrincipal(c *gin.Context) (domain.Principal, bool) {
	return GetPrincipalFromCtx(c.Request.Context())
}
