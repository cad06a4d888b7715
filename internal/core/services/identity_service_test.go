package services_test

import (
	"context"
	"testing"

	"github.com/bs23/ems_backend/internal/apperrors"
	"github.com/bs23/ems_backend/internal/core/domain"
	portssvc "github.com/bs23/ems_backend/internal/core/ports/services"
	"github.com/bs23/ems_backend/internal/core/services"
	"github.com/bs23/ems_backend/internal/utils"
	"github.com/stretchr/testify/suite"
)

type IdentityServiceTestSuite struct {
	suite.Suite
	mockUserRepo     *MockUserRepository
	mockEmployeeRepo *MockEmployeeRepository
	service          portssvc.IdentitySvcFacade
}

func (s *IdentityServiceTestSuite) SetupTest() {
	s.mockUserRepo = new(MockUserRepository)
	s.mockEmployeeRepo = new(MockEmployeeRepository)
	s.service = services.NewIdentityService(s.mockUserRepo, s.mockEmployeeRepo)
}

func TestIdentityServiceTestSuite(t *testing.T) {
	suite.Run(t, new(IdentityServiceTestSuite))
}

func hashOf(s *IdentityServiceTestSuite, secret string) string {
	hash, err := utils.HashPassword(secret)
	s.Require().NoError(err)
	return hash
}

func (s *IdentityServiceTestSuite) TestResolvePrincipal_EmailGoesToEmployeeSource() {
	ctx := context.Background()
	hash := hashOf(s, "secret")
	employee := &domain.Employee{
		EmployeeID:   7,
		FirstName:    "Jane",
		LastName:     "Doe",
		Email:        "jane.doe@example.com",
		PasswordHash: &hash,
		Role:         "EMPLOYEE",
	}
	s.mockEmployeeRepo.On("FindEmployeeByEmail", ctx, "jane.doe@example.com").Return(employee, nil).Once()

	principal, gotHash, err := s.service.ResolvePrincipal(ctx, "jane.doe@example.com")

	s.Require().NoError(err)
	s.Equal("jane.doe@example.com", principal.Subject)
	s.Equal("EMPLOYEE", principal.Role)
	s.Equal(hash, gotHash)
	// The admin source must never be consulted for an '@' identifier.
	s.mockUserRepo.AssertNotCalled(s.T(), "FindUserByUsername")
	s.mockEmployeeRepo.AssertExpectations(s.T())
}

func (s *IdentityServiceTestSuite) TestResolvePrincipal_BlankEmployeeRoleDefaults() {
	ctx := context.Background()
	employee := &domain.Employee{
		EmployeeID: 8,
		Email:      "sam@example.com",
		Role:       "  ",
	}
	s.mockEmployeeRepo.On("FindEmployeeByEmail", ctx, "sam@example.com").Return(employee, nil).Once()

	principal, gotHash, err := s.service.ResolvePrincipal(ctx, "sam@example.com")

	s.Require().NoError(err)
	s.Equal(domain.DefaultEmployeeRole, principal.Role)
	s.Empty(gotHash) // no password set
}

func (s *IdentityServiceTestSuite) TestResolvePrincipal_UsernameGoesToAdminSource() {
	ctx := context.Background()
	user := &domain.User{
		UserID:       1,
		Username:     "admin",
		PasswordHash: "some-hash",
		Role:         "ADMIN",
	}
	s.mockUserRepo.On("FindUserByUsername", ctx, "admin").Return(user, nil).Once()

	principal, gotHash, err := s.service.ResolvePrincipal(ctx, "admin")

	s.Require().NoError(err)
	s.Equal("admin", principal.Subject)
	s.Equal("ADMIN", principal.Role)
	s.Equal("some-hash", gotHash)
	s.mockEmployeeRepo.AssertNotCalled(s.T(), "FindEmployeeByEmail")
	s.mockUserRepo.AssertExpectations(s.T())
}

func (s *IdentityServiceTestSuite) TestResolvePrincipal_AdminWithBlankRoleIsMisconfigured() {
	ctx := context.Background()
	user := &domain.User{UserID: 2, Username: "broken", PasswordHash: "hash", Role: ""}
	s.mockUserRepo.On("FindUserByUsername", ctx, "broken").Return(user, nil).Once()

	principal, _, err := s.service.ResolvePrincipal(ctx, "broken")

	s.Require().ErrorIs(err, apperrors.ErrMisconfiguredAccount)
	s.Nil(principal)
}

func (s *IdentityServiceTestSuite) TestResolveEmployee_NameAliasNeedsExactlyTwoParts() {
	ctx := context.Background()
	employee := &domain.Employee{EmployeeID: 3, FirstName: "Jane", LastName: "Doe", Email: "jane.doe@example.com"}

	s.mockEmployeeRepo.On("FindEmployeeByEmail", ctx, "jane.doe").Return(nil, apperrors.ErrNotFound).Once()
	s.mockEmployeeRepo.On("FindEmployeeByName", ctx, "jane", "doe").Return(employee, nil).Once()

	resolved, err := s.service.ResolveEmployee(ctx, "jane.doe")
	s.Require().NoError(err)
	s.Equal(int64(3), resolved.EmployeeID)

	// Three segments are not an alias.
	s.mockEmployeeRepo.On("FindEmployeeByEmail", ctx, "a.b.c").Return(nil, apperrors.ErrNotFound).Once()
	_, err = s.service.ResolveEmployee(ctx, "a.b.c")
	s.Require().ErrorIs(err, apperrors.ErrNotFound)
	s.mockEmployeeRepo.AssertNotCalled(s.T(), "FindEmployeeByName", ctx, "a", "b.c")
}

func (s *IdentityServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	hash := hashOf(s, "correct horse")
	user := &domain.User{Username: "admin", PasswordHash: hash, Role: "ADMIN"}
	s.mockUserRepo.On("FindUserByUsername", ctx, "admin").Return(user, nil).Once()

	principal, err := s.service.Authenticate(ctx, "admin", "correct horse")

	s.Require().NoError(err)
	s.Equal("admin", principal.Subject)
}

func (s *IdentityServiceTestSuite) TestAuthenticate_FailuresCollapseToUnauthorized() {
	ctx := context.Background()

	// Unknown identifier.
	s.mockUserRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()
	_, err := s.service.Authenticate(ctx, "ghost", "whatever")
	s.Require().ErrorIs(err, apperrors.ErrUnauthorized)

	// Wrong password.
	hash := hashOf(s, "right")
	user := &domain.User{Username: "admin", PasswordHash: hash, Role: "ADMIN"}
	s.mockUserRepo.On("FindUserByUsername", ctx, "admin").Return(user, nil).Once()
	_, err = s.service.Authenticate(ctx, "admin", "wrong")
	s.Require().ErrorIs(err, apperrors.ErrUnauthorized)

	// Employee without a stored password cannot authenticate.
	employee := &domain.Employee{Email: "nopass@example.com", Role: "EMPLOYEE"}
	s.mockEmployeeRepo.On("FindEmployeeByEmail", ctx, "nopass@example.com").Return(employee, nil).Once()
	_, err = s.service.Authenticate(ctx, "nopass@example.com", "anything")
	s.Require().ErrorIs(err, apperrors.ErrUnauthorized)

	// Misconfigured admin also surfaces as a plain credential failure.
	broken := &domain.User{Username: "broken", PasswordHash: hash, Role: ""}
	s.mockUserRepo.On("FindUserByUsername", ctx, "broken").Return(broken, nil).Once()
	_, err = s.service.Authenticate(ctx, "broken", "right")
	s.Require().ErrorIs(err, apperrors.ErrUnauthorized)
}
