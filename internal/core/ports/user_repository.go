package ports

import (
	"context"

	"github.com/fitlog/exercise-tracker/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// Insert persists a new user and returns it with its assigned id.
	// A duplicate username surfaces as domain.ErrUserExists; the uniqueness
	// guarantee lives in the store (unique index), not in a read-then-write.
	Insert(ctx context.Context, username string) (*domain.User, error)
	// FindByID resolves a user by its store id. Returns domain.ErrUserNotFound
	// when the id matches no user.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindAll returns every user in store order.
	FindAll(ctx context.Context) ([]domain.User, error)
}
