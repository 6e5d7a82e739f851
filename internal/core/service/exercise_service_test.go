package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/fitlog/exercise-tracker/internal/core/domain"
	"github.com/fitlog/exercise-tracker/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub exercise repository
// ---------------------------------------------------------------------------

type stubExerciseRepo struct {
	exercises []domain.Exercise
	insertErr error
	findErr   error
}

func newStubExerciseRepo() *stubExerciseRepo {
	return &stubExerciseRepo{}
}

func (r *stubExerciseRepo) Insert(_ context.Context, e *domain.Exercise) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.exercises = append(r.exercises, *e)
	return nil
}

// FindByUser applies the same filter semantics the real Mongo repo would use:
// inclusive bounds on canonical date strings, first-N truncation in
// insertion order.
func (r *stubExerciseRepo) FindByUser(_ context.Context, userID string, filter ports.LogFilter) ([]domain.LogEntry, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}

	var entries []domain.LogEntry
	for _, e := range r.exercises {
		if e.UserID != userID {
			continue
		}
		if filter.From != "" && e.Date < filter.From {
			continue
		}
		if filter.To != "" && e.Date > filter.To {
			continue
		}
		entries = append(entries, domain.LogEntry{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        e.Date,
		})
	}
	if filter.Limit > 0 && len(entries) > filter.Limit {
		entries = entries[:filter.Limit]
	}
	return entries, nil
}

// ---------------------------------------------------------------------------
// Stub user cache
// ---------------------------------------------------------------------------

type stubUserCache struct {
	entries map[string]string
	getErr  error
	setErr  error
}

func newStubUserCache() *stubUserCache {
	return &stubUserCache{entries: make(map[string]string)}
}

func (c *stubUserCache) Get(_ context.Context, userID string) (string, error) {
	if c.getErr != nil {
		return "", c.getErr
	}
	return c.entries[userID], nil
}

func (c *stubUserCache) Set(_ context.Context, userID, username string) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.entries[userID] = username
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func seedUser(t *testing.T, users *stubUserRepo, username string) *domain.User {
	t.Helper()
	user, err := users.Insert(context.Background(), username)
	if err != nil {
		t.Fatalf("seed user %q: %v", username, err)
	}
	return user
}

func newExerciseFixture() (*stubUserRepo, *stubExerciseRepo, *stubUserCache, *ExerciseService) {
	users := newStubUserRepo()
	exercises := newStubExerciseRepo()
	cache := newStubUserCache()
	svc := NewExerciseService(users, exercises, cache, discardLogger)
	return users, exercises, cache, svc
}

// ---------------------------------------------------------------------------
// AddExercise tests
// ---------------------------------------------------------------------------

func TestExerciseService_Add_Success(t *testing.T) {
	users, exercises, _, svc := newExerciseFixture()
	user := seedUser(t, users, "flo")

	result, err := svc.AddExercise(context.Background(), ports.AddExerciseInput{
		UserID:      user.ID,
		Description: "ex1",
		Duration:    20,
		Date:        "2019-04-10",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The result merges the user's identity with the exercise's fields.
	if result.ID != user.ID {
		t.Errorf("expected id %q, got %q", user.ID, result.ID)
	}
	if result.Username != "flo" {
		t.Errorf("expected username %q, got %q", "flo", result.Username)
	}
	if result.Description != "ex1" || result.Duration != 20 || result.Date != "2019-04-10" {
		t.Errorf("exercise fields not echoed back: %+v", result)
	}

	if len(exercises.exercises) != 1 {
		t.Fatalf("expected 1 stored exercise, got %d", len(exercises.exercises))
	}
	stored := exercises.exercises[0]
	if stored.UserID != user.ID {
		t.Errorf("stored user_id: want %q, got %q", user.ID, stored.UserID)
	}
	if stored.CreatedAt.IsZero() {
		t.Error("stored exercise must carry an insertion timestamp")
	}
}

func TestExerciseService_Add_UnknownUser(t *testing.T) {
	_, exercises, _, svc := newExerciseFixture()

	_, err := svc.AddExercise(context.Background(), ports.AddExerciseInput{
		UserID:      "ffffffffffffffffffffffff",
		Description: "ex1",
		Duration:    20,
		Date:        "2019-04-10",
	})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	// No partial write: the exercise must not be persisted.
	if len(exercises.exercises) != 0 {
		t.Errorf("expected no stored exercises, got %d", len(exercises.exercises))
	}
}

func TestExerciseService_Add_RepoError(t *testing.T) {
	users, exercises, _, svc := newExerciseFixture()
	user := seedUser(t, users, "flo")
	exercises.insertErr = errors.New("db unavailable")

	_, err := svc.AddExercise(context.Background(), ports.AddExerciseInput{
		UserID:      user.ID,
		Description: "ex1",
		Duration:    20,
		Date:        "2019-04-10",
	})
	if err == nil {
		t.Fatal("expected error when repo fails, got nil")
	}
}

// ---------------------------------------------------------------------------
// QueryLog tests
// ---------------------------------------------------------------------------

// seedLog registers "flo" and logs three exercises dated 2019-04-10,
// 2019-04-12, and 2019-04-14, in that order.
func seedLog(t *testing.T, users *stubUserRepo, svc *ExerciseService) *domain.User {
	t.Helper()
	user := seedUser(t, users, "flo")
	for i, date := range []string{"2019-04-10", "2019-04-12", "2019-04-14"} {
		_, err := svc.AddExercise(context.Background(), ports.AddExerciseInput{
			UserID:      user.ID,
			Description: fmt.Sprintf("ex%d", i+1),
			Duration:    20 + i,
			Date:        date,
		})
		if err != nil {
			t.Fatalf("seed exercise %s: %v", date, err)
		}
	}
	return user
}

func queryDates(result *ports.LogResult) []string {
	dates := make([]string, len(result.Log))
	for i, e := range result.Log {
		dates[i] = e.Date
	}
	return dates
}

func TestExerciseService_QueryLog_NoFilter(t *testing.T) {
	users, _, _, svc := newExerciseFixture()
	user := seedLog(t, users, svc)

	result, err := svc.QueryLog(context.Background(), ports.LogQueryInput{UserID: user.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ID != user.ID || result.Username != "flo" {
		t.Errorf("user identity wrong: %+v", result)
	}
	if result.Count != 3 || len(result.Log) != 3 {
		t.Fatalf("expected 3 entries, got count=%d len=%d", result.Count, len(result.Log))
	}

	// Round-trip: the first entry appears verbatim.
	first := result.Log[0]
	if first.Description != "ex1" || first.Duration != 20 || first.Date != "2019-04-10" {
		t.Errorf("first entry mismatch: %+v", first)
	}
}

func TestExerciseService_QueryLog_FromBoundInclusive(t *testing.T) {
	users, _, _, svc := newExerciseFixture()
	user := seedLog(t, users, svc)

	result, err := svc.QueryLog(context.Background(), ports.LogQueryInput{
		UserID: user.ID,
		Filter: ports.LogFilter{From: "2019-04-12"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := queryDates(result)
	if len(got) != 2 || got[0] != "2019-04-12" || got[1] != "2019-04-14" {
		t.Errorf("from=2019-04-12: expected last two entries, got %v", got)
	}
}

func TestExerciseService_QueryLog_ToBoundInclusive(t *testing.T) {
	users, _, _, svc := newExerciseFixture()
	user := seedLog(t, users, svc)

	result, err := svc.QueryLog(context.Background(), ports.LogQueryInput{
		UserID: user.ID,
		Filter: ports.LogFilter{To: "2019-04-11"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := queryDates(result)
	if len(got) != 1 || got[0] != "2019-04-10" {
		t.Errorf("to=2019-04-11: expected only the first entry, got %v", got)
	}
}

func TestExerciseService_QueryLog_Limit(t *testing.T) {
	users, _, _, svc := newExerciseFixture()
	user := seedLog(t, users, svc)

	result, err := svc.QueryLog(context.Background(), ports.LogQueryInput{
		UserID: user.ID,
		Filter: ports.LogFilter{Limit: 2},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := queryDates(result)
	// Limit truncates to the FIRST entries in insertion order, not the most recent.
	if len(got) != 2 || got[0] != "2019-04-10" || got[1] != "2019-04-12" {
		t.Errorf("limit=2: expected first two entries, got %v", got)
	}
	if result.Count != 2 {
		t.Errorf("count must equal returned entries, got %d", result.Count)
	}
}

func TestExerciseService_QueryLog_RangeAndLimit(t *testing.T) {
	users, _, _, svc := newExerciseFixture()
	user := seedLog(t, users, svc)

	result, err := svc.QueryLog(context.Background(), ports.LogQueryInput{
		UserID: user.ID,
		Filter: ports.LogFilter{From: "2019-04-11", To: "2019-04-15", Limit: 1},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := queryDates(result)
	if len(got) != 1 || got[0] != "2019-04-12" {
		t.Errorf("range+limit: expected exactly the 2019-04-12 entry, got %v", got)
	}
}

func TestExerciseService_QueryLog_LimitExceedsCount(t *testing.T) {
	users, _, _, svc := newExerciseFixture()
	user := seedLog(t, users, svc)

	result, err := svc.QueryLog(context.Background(), ports.LogQueryInput{
		UserID: user.ID,
		Filter: ports.LogFilter{Limit: 50},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Count != 3 {
		t.Errorf("limit above filtered count must return all entries, got %d", result.Count)
	}
}

func TestExerciseService_QueryLog_EmptyLog(t *testing.T) {
	users, _, _, svc := newExerciseFixture()
	user := seedUser(t, users, "flo")

	result, err := svc.QueryLog(context.Background(), ports.LogQueryInput{UserID: user.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Count != 0 {
		t.Errorf("expected count 0, got %d", result.Count)
	}
	if result.Log == nil {
		t.Error("log must be an empty slice, not nil")
	}
}

func TestExerciseService_QueryLog_UnknownUser(t *testing.T) {
	_, _, _, svc := newExerciseFixture()

	_, err := svc.QueryLog(context.Background(), ports.LogQueryInput{
		UserID: "ffffffffffffffffffffffff",
	})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// User cache behaviour
// ---------------------------------------------------------------------------

func TestExerciseService_Cache_PopulatedOnResolve(t *testing.T) {
	users, _, cache, svc := newExerciseFixture()
	user := seedLog(t, users, svc)

	if cache.entries[user.ID] != "flo" {
		t.Errorf("expected cache to hold %q for %s, got %q", "flo", user.ID, cache.entries[user.ID])
	}
}

func TestExerciseService_Cache_HitSkipsRepo(t *testing.T) {
	users := newStubUserRepo()
	exercises := newStubExerciseRepo()
	cache := newStubUserCache()
	cache.entries["ffffffffffffffffffffffff"] = "flo"
	svc := NewExerciseService(users, exercises, cache, discardLogger)

	// The user exists only in the cache; a hit must not consult the repo.
	result, err := svc.QueryLog(context.Background(), ports.LogQueryInput{
		UserID: "ffffffffffffffffffffffff",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Username != "flo" {
		t.Errorf("expected cached username, got %q", result.Username)
	}
}

func TestExerciseService_Cache_FailureFallsBack(t *testing.T) {
	users := newStubUserRepo()
	exercises := newStubExerciseRepo()
	cache := newStubUserCache()
	cache.getErr = errors.New("redis down")
	cache.setErr = errors.New("redis down")
	svc := NewExerciseService(users, exercises, cache, discardLogger)

	user := seedUser(t, users, "flo")
	result, err := svc.QueryLog(context.Background(), ports.LogQueryInput{UserID: user.ID})
	if err != nil {
		t.Fatalf("cache failure must not fail the request: %v", err)
	}
	if result.Username != "flo" {
		t.Errorf("expected username from store, got %q", result.Username)
	}
}

func TestExerciseService_Add_SetsInsertionOrderTimestamps(t *testing.T) {
	users, exercises, _, svc := newExerciseFixture()
	user := seedUser(t, users, "flo")

	before := time.Now().UTC()
	_, err := svc.AddExercise(context.Background(), ports.AddExerciseInput{
		UserID:      user.ID,
		Description: "ex1",
		Duration:    20,
		Date:        "2019-04-10",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	created := exercises.exercises[0].CreatedAt
	if created.Before(before.Add(-time.Second)) || created.After(time.Now().UTC().Add(time.Second)) {
		t.Errorf("created_at out of range: %v", created)
	}
}
