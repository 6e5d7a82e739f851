package ports

import (
	"context"

	"github.com/fitlog/exercise-tracker/internal/core/domain"
)

// UserService exposes the user registry operations.
type UserService interface {
	// CreateUser registers a username and returns the stored user with its id.
	// Duplicate usernames fail with domain.ErrUserExists.
	CreateUser(ctx context.Context, username string) (*domain.User, error)
	// ListUsers returns all users. Order is store-determined.
	ListUsers(ctx context.Context) ([]domain.User, error)
}
