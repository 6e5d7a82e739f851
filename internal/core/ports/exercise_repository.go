package ports

import (
	"context"

	"github.com/fitlog/exercise-tracker/internal/core/domain"
)

// LogFilter carries the optional constraints of a log query. Zero values mean
// the constraint is absent. From and To are canonical YYYY-MM-DD strings and
// both bounds are inclusive.
type LogFilter struct {
	From  string
	To    string
	Limit int
}

// ExerciseRepository defines persistence operations for exercises.
type ExerciseRepository interface {
	Insert(ctx context.Context, exercise *domain.Exercise) error
	// FindByUser returns the user's exercises matching filter, projected down
	// to log entries, in insertion order. When Limit is set, the first Limit
	// entries of the filtered set are returned.
	FindByUser(ctx context.Context, userID string, filter LogFilter) ([]domain.LogEntry, error)
}
