package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bs23/ems_backend/internal/apperrors"
	"github.com/bs23/ems_backend/internal/core/domain"
	portsrepo "github.com/bs23/ems_backend/internal/core/ports/repositories"
	portssvc "github.com/bs23/ems_backend/internal/core/ports/services"
	"github.com/bs23/ems_backend/internal/dto"
	"github.com/bs23/ems_backend/internal/middleware"
	"github.com/bs23/ems_backend/internal/utils"
)

// userService manages administrative accounts.
type userService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// CreateUser provisions an admin account. Usernames must not contain '@':
// that character is what routes a login identifier to the employee side.
func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	username := strings.TrimSpace(req.Username)
	if strings.Contains(username, "@") {
		return nil, fmt.Errorf("%w: admin usernames must not contain '@'", apperrors.ErrValidation)
	}
	if strings.TrimSpace(req.Role) == "" {
		return nil, fmt.Errorf("%w: admin accounts require a role", apperrors.ErrValidation)
	}

	if existing, err := s.userRepo.FindUserByUsername(ctx, username); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: username %s already in use", apperrors.ErrDuplicate, username)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.userRepo.SaveUser(ctx, domain.User{
		Username:     username,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		Phone:        req.Phone,
		Address:      req.Address,
	})
	if err != nil {
		return nil, err
	}

	middleware.GetLoggerFromCtx(ctx).Info("Admin account created",
		slog.Int64("user_id", created.UserID),
		slog.String("username", created.Username))
	return created, nil
}

// GetUserByID retrieves one admin account.
func (s *userService) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

// ListUsers retrieves all admin accounts.
func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.FindUsers(ctx)
}

// UpdateUser applies the provided fields to an existing account.
func (s *userService) UpdateUser(ctx context.Context, userID int64, req dto.UpdateUserRequest) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Role != nil {
		if strings.TrimSpace(*req.Role) == "" {
			return nil, fmt.Errorf("%w: admin accounts require a role", apperrors.ErrValidation)
		}
		user.Role = *req.Role
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes an admin account.
func (s *userService) DeleteUser(ctx context.Context, userID int64) error {
	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		return err
	}
	return s.userRepo.DeleteUser(ctx, userID)
}

// EnsureBootstrapAdmin seeds the first admin account when the users table is
// empty. A blank password disables seeding so that no account with a known
// credential ever appears by accident.
func (s *userService) EnsureBootstrapAdmin(ctx context.Context, username, password, email string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	count, err := s.userRepo.CountUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to count admin accounts: %w", err)
	}
	if count > 0 {
		return nil
	}
	if password == "" {
		logger.Warn("No admin accounts exist and no bootstrap password configured; skipping seed")
		return nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash bootstrap password: %w", err)
	}

	created, err := s.userRepo.SaveUser(ctx, domain.User{
		Username:     username,
		Name:         "Administrator",
		Email:        email,
		PasswordHash: hash,
		Role:         "ADMIN",
		Phone:        "",
	})
	if err != nil {
		return fmt.Errorf("failed to seed bootstrap admin: %w", err)
	}

	logger.Info("Bootstrap admin seeded", slog.String("username", created.Username))
	return nil
}
