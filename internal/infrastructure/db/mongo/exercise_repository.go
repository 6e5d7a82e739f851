package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fitlog/exercise-tracker/internal/core/domain"
	"github.com/fitlog/exercise-tracker/internal/core/ports"
)

const collectionExercises = "exercises"

type ExerciseRepository struct {
	col *mongo.Collection
}

func NewExerciseRepository(db *mongo.Database) *ExerciseRepository {
	return &ExerciseRepository{col: db.Collection(collectionExercises)}
}

// Insert persists a new exercise document.
func (r *ExerciseRepository) Insert(ctx context.Context, exercise *domain.Exercise) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, exercise)
	if err != nil {
		return fmt.Errorf("insert exercise: %w", err)
	}
	return nil
}

// FindByUser returns a user's exercises matching filter, projected to log
// entries. Results sort ascending on created_at so the limit truncates in
// insertion order regardless of how the store iterates.
func (r *ExerciseRepository) FindByUser(ctx context.Context, userID string, filter ports.LogFilter) ([]domain.LogEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetProjection(bson.M{"description": 1, "duration": 1, "date": 1, "_id": 0}).
		SetSort(bson.D{{Key: "created_at", Value: 1}})
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}

	cursor, err := r.col.Find(ctx, buildLogQuery(userID, filter), opts)
	if err != nil {
		return nil, fmt.Errorf("find exercises: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []domain.LogEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("decode exercises: %w", err)
	}
	return entries, nil
}

// buildLogQuery assembles the mongo filter document. Dates are canonical
// YYYY-MM-DD strings, so $gte/$lte string comparison is an inclusive
// date-range comparison.
func buildLogQuery(userID string, filter ports.LogFilter) bson.M {
	query := bson.M{"user_id": userID}

	dateRange := bson.M{}
	if filter.From != "" {
		dateRange["$gte"] = filter.From
	}
	if filter.To != "" {
		dateRange["$lte"] = filter.To
	}
	if len(dateRange) > 0 {
		query["date"] = dateRange
	}
	return query
}

// EnsureIndexes creates the index backing per-user log queries.
func (r *ExerciseRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}},
	})
	return err
}
