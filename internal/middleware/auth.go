package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/bs23/ems_backend/internal/core/domain"
	portssvc "github.com/bs23/ems_backend/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// loginPathPrefix covers the public authentication endpoints the gate
// bypasses entirely.
const loginPathPrefix = "/api/auth/"

// AuthenticationGate creates the per-request filter establishing the
// caller's security context. It has three outcomes: bypass (login endpoint
// or identity already established), reject-silently (absent or invalid token
// -- the request proceeds unauthenticated and the role guard denies it
// downstream), and authenticate (valid token whose subject still resolves to
// the same canonical principal).
func AuthenticationGate(tokens portssvc.TokenSvcFacade, identity portssvc.IdentityResolverSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		if strings.HasPrefix(c.Request.URL.Path, loginPathPrefix) {
			c.Next()
			return
		}
		if _, ok := GetPrincipal(c); ok {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Next()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		subject, err := tokens.DecodeSubject(c.Request.Context(), tokenString)
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			c.Next()
			return
		}

		// Re-resolve the subject so a deleted or renamed account stops
		// authenticating even while its token is unexpired.
		principal, _, err := identity.ResolvePrincipal(c.Request.Context(), subject)
		if err != nil {
			logger.Warn("Token subject no longer resolves", slog.String("subject", subject))
			c.Next()
			return
		}

		if !tokens.Validate(c.Request.Context(), tokenString, principal.Subject) {
			logger.Warn("Token validation failed", slog.String("subject", subject))
			c.Next()
			return
		}

		ctx := withPrincipal(c.Request.Context(), *principal)
		enriched := logger.With(slog.String("subject", principal.Subject), slog.String("role", principal.Role))
		c.Request = c.Request.WithContext(WithLogger(ctx, enriched))

		c.Next()
	}
}

// RequireRoles guards a route group with a role check against the
// ROLE_-prefixed authorities of the request principal. Requests without an
// established identity get 401; authenticated requests lacking the role get 403.
func RequireRoles(roles ...string) gin.HandlerFunc {
	authorities := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		authorities[domain.RolePrefix+r] = struct{}{}
	}
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		if _, allowed := authorities[principal.Authority()]; !allowed {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient role"})
			return
		}
		c.Next()
	}
}

// RequireAuthenticated admits any caller with an established identity.
func RequireAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetPrincipal(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		c.Next()
	}
}
