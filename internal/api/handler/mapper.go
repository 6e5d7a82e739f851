package handler

import (
	"github.com/fitlog/exercise-tracker/internal/core/domain"
	"github.com/fitlog/exercise-tracker/internal/core/ports"
)

// --- Request → Service input ---

// toAddExerciseInput canonicalizes the optional date (defaulting to today) so
// the service only ever sees YYYY-MM-DD.
func toAddExerciseInput(req addExerciseRequest) (ports.AddExerciseInput, error) {
	date := domain.Today()
	if req.Date != "" {
		var err error
		if date, err = domain.CanonicalDate(req.Date); err != nil {
			return ports.AddExerciseInput{}, err
		}
	}

	return ports.AddExerciseInput{
		UserID:      req.UserID,
		Description: req.Description,
		Duration:    req.Duration,
		Date:        date,
	}, nil
}

func toLogQueryInput(req logQueryRequest) (ports.LogQueryInput, error) {
	filter := ports.LogFilter{Limit: req.Limit}

	if req.From != "" {
		from, err := domain.CanonicalDate(req.From)
		if err != nil {
			return ports.LogQueryInput{}, err
		}
		filter.From = from
	}
	if req.To != "" {
		to, err := domain.CanonicalDate(req.To)
		if err != nil {
			return ports.LogQueryInput{}, err
		}
		filter.To = to
	}

	return ports.LogQueryInput{UserID: req.UserID, Filter: filter}, nil
}

// --- Service result → HTTP response ---

func toUserResponse(u *domain.User) userResponse {
	return userResponse{ID: u.ID, Username: u.Username}
}

func toAddExerciseResponse(r *ports.ExerciseResult) addExerciseResponse {
	return addExerciseResponse{
		ID:          r.ID,
		Username:    r.Username,
		Description: r.Description,
		Duration:    r.Duration,
		Date:        r.Date,
	}
}

func toLogResponse(r *ports.LogResult) logResponse {
	entries := make([]logEntryResponse, len(r.Log))
	for i, e := range r.Log {
		entries[i] = logEntryResponse{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        e.Date,
		}
	}
	return logResponse{
		ID:       r.ID,
		Username: r.Username,
		Log:      entries,
		Count:    r.Count,
	}
}
