package services

import (
	"context"

	"github.com/bs23/ems_backend/internal/core/domain"
	"github.com/bs23/ems_backend/internal/dto"
)

// UserSvcFacade manages administrative accounts.
type UserSvcFacade interface {
	// CreateUser provisions an admin account. The password is always hashed
	// through the central secret-hashing capability; the role is required.
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)

	// GetUserByID retrieves one admin account.
	GetUserByID(ctx context.Context, userID int64) (*domain.User, error)

	// ListUsers retrieves all admin accounts.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// UpdateUser applies the provided fields.
	UpdateUser(ctx context.Context, userID int64, req dto.UpdateUserRequest) (*domain.User, error)

	// DeleteUser removes an admin account.
	DeleteUser(ctx context.Context, userID int64) error

	// EnsureBootstrapAdmin seeds the first admin account when none exist.
	EnsureBootstrapAdmin(ctx context.Context, username, password, email string) error
}
