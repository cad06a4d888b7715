package repositories

import (
	"context"

	"github.com/bs23/ems_backend/internal/core/domain"
)

// UserReader defines read operations for administrative accounts.
type UserReader interface {
	// FindUserByID retrieves a specific admin account by its ID.
	FindUserByID(ctx context.Context, userID int64) (*domain.User, error)

	// FindUserByUsername retrieves an admin account by its unique username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindUsers retrieves all admin accounts.
	FindUsers(ctx context.Context) ([]domain.User, error)

	// CountUsers returns the number of admin accounts.
	CountUsers(ctx context.Context) (int64, error)
}

// UserWriter defines write operations for administrative accounts.
type UserWriter interface {
	// SaveUser persists a new admin account and returns it with its assigned ID.
	SaveUser(ctx context.Context, user domain.User) (*domain.User, error)

	// UpdateUser updates an existing admin account.
	UpdateUser(ctx context.Context, user domain.User) error

	// DeleteUser removes an admin account.
	DeleteUser(ctx context.Context, userID int64) error
}

// UserRepositoryFacade combines all admin-account repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
