package ports

import (
	"context"

	"github.com/fitlog/exercise-tracker/internal/core/domain"
)

// AddExerciseInput is a validated add-exercise request. Date is already
// canonical YYYY-MM-DD (defaulted to today when the caller omitted it).
type AddExerciseInput struct {
	UserID      string
	Description string
	Duration    int
	Date        string
}

// ExerciseResult merges the owning user's identity with the fields of the
// newly logged exercise.
type ExerciseResult struct {
	ID          string
	Username    string
	Description string
	Duration    int
	Date        string
}

// LogQueryInput is a validated log query. From/To are canonical dates when
// present; Limit is 0 when absent.
type LogQueryInput struct {
	UserID string
	Filter LogFilter
}

// LogResult is the shaped response of a log query. Count is the number of
// entries actually returned, after filtering and limiting.
type LogResult struct {
	ID       string
	Username string
	Log      []domain.LogEntry
	Count    int
}

// ExerciseService exposes the exercise log operations.
type ExerciseService interface {
	AddExercise(ctx context.Context, input AddExerciseInput) (*ExerciseResult, error)
	QueryLog(ctx context.Context, input LogQueryInput) (*LogResult, error)
}
