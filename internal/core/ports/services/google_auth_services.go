package services

import (
	"context"

	"github.com/bs23/ems_backend/internal/core/domain"
)

// GoogleAuthSvcFacade authenticates employee accounts through Google
// sign-in. The verified Google email is resolved through the employee arm of
// the identity resolver; administrative accounts never match this path.
type GoogleAuthSvcFacade interface {
	// GenerateStateString creates the CSRF token for the OAuth redirect flow.
	GenerateStateString(ctx context.Context) (string, error)

	// GetLoginURL returns the Google consent URL for the given state.
	GetLoginURL(ctx context.Context, state string) string

	// AuthenticateCode exchanges an authorization code, fetches the user
	// info, and resolves the verified email to an employee principal.
	AuthenticateCode(ctx context.Context, code string) (*domain.Principal, error)

	// AuthenticateIDToken validates a Google ID token directly and resolves
	// the verified email to an employee principal.
	AuthenticateIDToken(ctx context.Context, idToken string) (*domain.Principal, error)
}
