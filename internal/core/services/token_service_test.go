package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/bs23/ems_backend/internal/apperrors"
	portssvc "github.com/bs23/ems_backend/internal/core/ports/services"
	"github.com/bs23/ems_backend/internal/core/services"
	"github.com/bs23/ems_backend/internal/platform/config"
	"github.com/stretchr/testify/suite"
)

type TokenServiceTestSuite struct {
	suite.Suite
	cfg     *config.Config
	service portssvc.TokenSvcFacade
}

func (s *TokenServiceTestSuite) SetupTest() {
	s.cfg = &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "ems-backend-test",
	}
	s.service = services.NewTokenService(s.cfg)
}

func TestTokenServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}

func (s *TokenServiceTestSuite) TestIssueAndDecodeRoundTrip() {
	ctx := context.Background()

	token, err := s.service.Issue(ctx, "jane.doe@example.com", "EMPLOYEE")
	s.Require().NoError(err)
	s.NotEmpty(token)

	subject, err := s.service.DecodeSubject(ctx, token)
	s.Require().NoError(err)
	s.Equal("jane.doe@example.com", subject)

	role, err := s.service.DecodeRole(ctx, token)
	s.Require().NoError(err)
	// The bare role tag, never the ROLE_-prefixed authority.
	s.Equal("EMPLOYEE", role)

	s.True(s.service.Validate(ctx, token, "jane.doe@example.com"))
}

func (s *TokenServiceTestSuite) TestValidateRejectsSubjectMismatch() {
	ctx := context.Background()

	token, err := s.service.Issue(ctx, "admin", "ADMIN")
	s.Require().NoError(err)

	s.False(s.service.Validate(ctx, token, "someone-else"))
}

func (s *TokenServiceTestSuite) TestValidateRejectsGarbageWithoutPanicking() {
	ctx := context.Background()

	s.False(s.service.Validate(ctx, "", "admin"))
	s.False(s.service.Validate(ctx, "not.a.jwt", "admin"))
	s.False(s.service.Validate(ctx, "eyJhbGciOiJIUzI1NiJ9.e30.", "admin"))

	_, err := s.service.DecodeSubject(ctx, "not.a.jwt")
	s.Require().ErrorIs(err, apperrors.ErrUnauthorized)
}

func (s *TokenServiceTestSuite) TestValidateRejectsWrongSecret() {
	ctx := context.Background()

	other := services.NewTokenService(&config.Config{
		JWTSecret:         "different-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "ems-backend-test",
	})
	token, err := other.Issue(ctx, "admin", "ADMIN")
	s.Require().NoError(err)

	s.False(s.service.Validate(ctx, token, "admin"))
}

func (s *TokenServiceTestSuite) TestValidateRejectsExpiredToken() {
	ctx := context.Background()

	expired := services.NewTokenService(&config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: -time.Minute,
		JWTIssuer:         "ems-backend-test",
	})
	token, err := expired.Issue(ctx, "admin", "ADMIN")
	s.Require().NoError(err)

	s.False(s.service.Validate(ctx, token, "admin"))
	_, err = s.service.DecodeSubject(ctx, token)
	s.Require().ErrorIs(err, apperrors.ErrUnauthorized)
}
