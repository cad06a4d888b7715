package services

import "context"

// TokenSvcFacade issues and validates the signed, time-bounded tokens that
// are the service's only session artifact. Tokens are self-contained; expiry
// is the sole lifecycle bound.
type TokenSvcFacade interface {
	// Issue produces a signed token binding subject and the bare role tag.
	Issue(ctx context.Context, subject, role string) (string, error)

	// Validate verifies signature, expiry, and subject match. It never
	// panics or errors on malformed input; it just reports failure.
	Validate(ctx context.Context, token, expectedSubject string) bool

	// DecodeSubject extracts the subject from a token, verifying the
	// signature and expiry along the way.
	DecodeSubject(ctx context.Context, token string) (string, error)

	// DecodeRole extracts the bare role claim from a token.
	DecodeRole(ctx context.Context, token string) (string, error)
}
