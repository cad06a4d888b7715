package services

import (
	"context"

	"github.com/bs23/ems_backend/internal/core/domain"
)

// IdentityResolverSvc turns a login identifier into a unified principal.
// Identifiers containing '@' are matched against the employee source only;
// everything else against the administrative source only.
type IdentityResolverSvc interface {
	// ResolvePrincipal looks up the identifier in the source selected by its
	// shape and returns the principal plus the stored secret hash needed for
	// credential verification. An empty hash means the account cannot
	// authenticate with a password. Fails with apperrors.ErrNotFound when no
	// account matches and apperrors.ErrMisconfiguredAccount for an admin
	// account with a blank role.
	ResolvePrincipal(ctx context.Context, identifier string) (*domain.Principal, string, error)

	// ResolveEmployee resolves an employee by email first, then by the
	// firstname.lastname alias when the identifier contains a '.'.
	ResolveEmployee(ctx context.Context, identifier string) (*domain.Employee, error)
}

// AuthenticatorSvc verifies submitted credentials against a resolved principal.
type AuthenticatorSvc interface {
	// Authenticate resolves the identifier and verifies the secret against
	// the stored hash. Every failure collapses to apperrors.ErrUnauthorized
	// so callers cannot distinguish which check failed.
	Authenticate(ctx context.Context, identifier, secret string) (*domain.Principal, error)
}

// IdentitySvcFacade combines identity resolution and credential verification.
type IdentitySvcFacade interface {
	IdentityResolverSvc
	AuthenticatorSvc
}
