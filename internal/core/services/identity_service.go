package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/bs23/ems_backend/internal/apperrors"
	"github.com/bs23/ems_backend/internal/core/domain"
	portsrepo "github.com/bs23/ems_backend/internal/core/ports/repositories"
	portssvc "github.com/bs23/ems_backend/internal/core/ports/services"
	"github.com/bs23/ems_backend/internal/middleware"
	"github.com/bs23/ems_backend/internal/utils"
)

// identityService classifies login identifiers and resolves them against the
// matching account source. The partition is hard: '@'-shaped identifiers are
// employee emails and are never matched against admin usernames, and vice versa.
type identityService struct {
	userRepo     portsrepo.UserReader
	employeeRepo portsrepo.EmployeeReader
}

// NewIdentityService creates a new identity service over the two account sources.
func NewIdentityService(userRepo portsrepo.UserReader, employeeRepo portsrepo.EmployeeReader) portssvc.IdentitySvcFacade {
	return &identityService{
		userRepo:     userRepo,
		employeeRepo: employeeRepo,
	}
}

var _ portssvc.IdentitySvcFacade = (*identityService)(nil)

// ResolveEmployee looks up an employee by exact email first; when that finds
// nothing and the identifier splits as firstname.lastname, the name alias is
// tried case-insensitively.
func (s *identityService) ResolveEmployee(ctx context.Context, identifier string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByEmail(ctx, identifier)
	if err == nil {
		return employee, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	if strings.Contains(identifier, ".") {
		parts := strings.Split(identifier, ".")
		if len(parts) == 2 {
			return s.employeeRepo.FindEmployeeByName(ctx, parts[0], parts[1])
		}
	}
	return nil, apperrors.ErrNotFound
}

// ResolvePrincipal unifies the two account kinds into a single
// (subject, role) principal plus the stored secret hash.
func (s *identityService) ResolvePrincipal(ctx context.Context, identifier string) (*domain.Principal, string, error) {
	if strings.Contains(identifier, "@") {
		employee, err := s.ResolveEmployee(ctx, identifier)
		if err != nil {
			return nil, "", err
		}
		role := strings.TrimSpace(employee.Role)
		if role == "" {
			// Employees without a role tag still log in with the default role.
			role = domain.DefaultEmployeeRole
		}
		hash := ""
		if employee.PasswordHash != nil {
			hash = *employee.PasswordHash
		}
		return &domain.Principal{Subject: employee.Email, Role: role}, hash, nil
	}

	user, err := s.userRepo.FindUserByUsername(ctx, identifier)
	if err != nil {
		return nil, "", err
	}
	if strings.TrimSpace(user.Role) == "" {
		// An admin account without a role cannot participate in
		// authorization decisions; this is a configuration error, not a
		// case for a silent default.
		return nil, "", apperrors.ErrMisconfiguredAccount
	}
	return &domain.Principal{Subject: user.Username, Role: user.Role}, user.PasswordHash, nil
}

// Authenticate verifies the submitted secret against the resolved account.
// All failure modes collapse to ErrUnauthorized so a caller cannot probe
// which identifiers exist.
func (s *identityService) Authenticate(ctx context.Context, identifier, secret string) (*domain.Principal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	principal, hash, err := s.ResolvePrincipal(ctx, identifier)
	if err != nil {
		logger.Warn("Login resolution failed", slog.String("error", err.Error()))
		return nil, apperrors.ErrUnauthorized
	}
	if hash == "" || !utils.CheckPasswordHash(secret, hash) {
		logger.Warn("Login credential mismatch", slog.String("subject", principal.Subject))
		return nil, apperrors.ErrUnauthorized
	}
	return principal, nil
}
