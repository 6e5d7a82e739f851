package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/fitlog/exercise-tracker/internal/api/metrics"
	"github.com/fitlog/exercise-tracker/internal/core/domain"
	"github.com/fitlog/exercise-tracker/internal/core/ports"
)

// UserCache abstracts the best-effort id→username lookup cache (Redis).
// A miss or failure falls through to the repository; correctness never
// depends on the cache.
type UserCache interface {
	Get(ctx context.Context, userID string) (string, error)
	Set(ctx context.Context, userID, username string) error
}

type ExerciseService struct {
	users     ports.UserRepository
	exercises ports.ExerciseRepository
	cache     UserCache
	logger    zerolog.Logger
}

func NewExerciseService(
	users ports.UserRepository,
	exercises ports.ExerciseRepository,
	cache UserCache,
	logger zerolog.Logger,
) *ExerciseService {
	return &ExerciseService{
		users:     users,
		exercises: exercises,
		cache:     cache,
		logger:    logger,
	}
}

// AddExercise appends an exercise to a user's log. The user reference is
// resolved first; an unresolved userId fails with ErrUserNotFound and nothing
// is persisted. Input dates are already canonical YYYY-MM-DD.
func (s *ExerciseService) AddExercise(ctx context.Context, input ports.AddExerciseInput) (*ports.ExerciseResult, error) {
	username, err := s.resolveUsername(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	exercise := &domain.Exercise{
		UserID:      input.UserID,
		Description: input.Description,
		Duration:    input.Duration,
		Date:        input.Date,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.exercises.Insert(ctx, exercise); err != nil {
		s.logger.Error().Err(err).Str("user_id", input.UserID).Msg("failed to insert exercise")
		return nil, fmt.Errorf("add exercise: %w", err)
	}

	metrics.ExercisesLoggedTotal.Inc()
	s.logger.Info().
		Str("user_id", input.UserID).
		Str("date", input.Date).
		Int("duration", input.Duration).
		Msg("exercise logged")

	return &ports.ExerciseResult{
		ID:          input.UserID,
		Username:    username,
		Description: input.Description,
		Duration:    input.Duration,
		Date:        input.Date,
	}, nil
}

// QueryLog resolves a user's exercise log. From/To are inclusive bounds; Limit
// truncates the filtered set to its first entries in insertion order. Count is
// the number of entries returned, not the user's lifetime total.
func (s *ExerciseService) QueryLog(ctx context.Context, input ports.LogQueryInput) (*ports.LogResult, error) {
	username, err := s.resolveUsername(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	entries, err := s.exercises.FindByUser(ctx, input.UserID, input.Filter)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", input.UserID).Msg("failed to query exercise log")
		return nil, fmt.Errorf("query log: %w", err)
	}
	metrics.LogQueriesTotal.Inc()
	metrics.LogQueryDuration.Observe(time.Since(start).Seconds())

	if entries == nil {
		entries = []domain.LogEntry{}
	}

	return &ports.LogResult{
		ID:       input.UserID,
		Username: username,
		Log:      entries,
		Count:    len(entries),
	}, nil
}

// resolveUsername maps a userId to its username, consulting the cache first.
func (s *ExerciseService) resolveUsername(ctx context.Context, userID string) (string, error) {
	if s.cache != nil {
		username, err := s.cache.Get(ctx, userID)
		if err != nil {
			s.logger.Warn().Err(err).Str("user_id", userID).Msg("user cache lookup failed, falling back to store")
		} else if username != "" {
			metrics.UserCacheTotal.WithLabelValues("hit").Inc()
			return username, nil
		} else {
			metrics.UserCacheTotal.WithLabelValues("miss").Inc()
		}
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return "", err
		}
		return "", fmt.Errorf("resolve user: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, userID, user.Username); err != nil {
			s.logger.Warn().Err(err).Str("user_id", userID).Msg("failed to populate user cache")
		}
	}
	return user.Username, nil
}
