package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/fitlog/exercise-tracker/internal/api/metrics"
	"github.com/fitlog/exercise-tracker/internal/core/domain"
	"github.com/fitlog/exercise-tracker/internal/core/ports"
)

type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// CreateUser registers a new username. The insert is a single atomic
// insert-if-absent: the unique index on username decides winners under
// concurrency, and the duplicate-key error comes back as ErrUserExists.
func (s *UserService) CreateUser(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.repo.Insert(ctx, username)
	if err != nil {
		if err == domain.ErrUserExists {
			s.logger.Info().Str("username", username).Msg("duplicate username rejected")
			return nil, err
		}
		s.logger.Error().Err(err).Str("username", username).Msg("failed to create user")
		return nil, fmt.Errorf("create user: %w", err)
	}

	metrics.UsersCreatedTotal.Inc()
	s.logger.Info().Str("username", username).Str("user_id", user.ID).Msg("user created")
	return user, nil
}

// ListUsers returns every registered user.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list users")
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
