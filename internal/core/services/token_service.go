package services

import (
	"context"

	"github.com/bs23/ems_backend/internal/apperrors"
	portssvc "github.com/bs23/ems_backend/internal/core/ports/services"
	"github.com/bs23/ems_backend/internal/platform/config"
	"github.com/bs23/ems_backend/internal/utils"
)

// tokenService implements the TokenSvcFacade over HMAC-signed JWTs. Tokens
// are self-contained: there is no revocation store, expiry is the only
// lifecycle bound.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// Issue produces a signed token binding subject and the bare role tag. The
// ROLE_ prefix is never embedded; it is applied only at authorization time.
func (s *tokenService) Issue(ctx context.Context, subject, role string) (string, error) {
	return utils.GenerateJWT(subject, role, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
}

// Validate verifies signature, expiry, and subject match. Malformed tokens
// simply fail validation.
func (s *tokenService) Validate(ctx context.Context, token, expectedSubject string) bool {
	claims, err := utils.ParseAndValidateJWT(token, s.cfg.JWTSecret)
	if err != nil {
		return false
	}
	return claims.Subject == expectedSubject
}

// DecodeSubject extracts the subject from a verified token.
func (s *tokenService) DecodeSubject(ctx context.Context, token string) (string, error) {
	claims, err := utils.ParseAndValidateJWT(token, s.cfg.JWTSecret)
	if err != nil {
		return "", apperrors.ErrUnauthorized
	}
	return claims.Subject, nil
}

// DecodeRole extracts the bare role claim from a verified token.
func (s *tokenService) DecodeRole(ctx context.Context, token string) (string, error) {
	claims, err := utils.ParseAndValidateJWT(token, s.cfg.JWTSecret)
	if err != nil {
		return "", apperrors.ErrUnauthorized
	}
	return claims.Role, nil
}
