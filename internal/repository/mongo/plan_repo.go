package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/camica-bit/fitness-tracker-ai/internal/domain"
	"github.com/camica-bit/fitness-tracker-ai/internal/repository"
)

const planCollectionName = "plans"

// mongoPlanRepository implements repository.PlanRepository. Each document is
// one WorkoutPlan; the current plan for a user is the one with the highest
// week number.
type mongoPlanRepository struct {
	collection *mongo.Collection
}

// NewMongoPlanRepository creates a plan repository backed by the given
// database.
func NewMongoPlanRepository(db *mongo.Database) repository.PlanRepository {
	return &mongoPlanRepository{
		collection: db.Collection(planCollectionName),
	}
}

// Append inserts a new plan into the user's history.
func (r *mongoPlanRepository) Append(ctx context.Context, plan *domain.WorkoutPlan) error {
	if plan.UserID == "" || plan.Week <= 0 {
		return errors.New("plan requires a user id and a positive week number")
	}
	_, err := r.collection.InsertOne(ctx, plan)
	return err
}

// GetCurrent retrieves the user's latest plan.
func (r *mongoPlanRepository) GetCurrent(ctx context.Context, userID string) (*domain.WorkoutPlan, error) {
	var plan domain.WorkoutPlan
	opts := options.FindOne().SetSort(bson.D{{Key: "week", Value: -1}})
	err := r.collection.FindOne(ctx, bson.M{"userId": userID}, opts).Decode(&plan)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// GetHistory retrieves all plans for the user, oldest week first.
func (r *mongoPlanRepository) GetHistory(ctx context.Context, userID string) ([]domain.WorkoutPlan, error) {
	opts := options.Find().SetSort(bson.D{{Key: "week", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var plans []domain.WorkoutPlan
	if err = cursor.All(ctx, &plans); err != nil {
		return nil, err
	}
	// Empty history is not an error.
	return plans, nil
}

// UpdateCurrent overwrites the stored plan for (userID, week).
func (r *mongoPlanRepository) UpdateCurrent(ctx context.Context, plan *domain.WorkoutPlan) error {
	filter := bson.M{"userId": plan.UserID, "week": plan.Week}
	result, err := r.collection.ReplaceOne(ctx, filter, plan)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// DeleteAll purges the user's entire plan history.
func (r *mongoPlanRepository) DeleteAll(ctx context.Context, userID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"userId": userID})
	return err
}

// EnsurePlanIndexes creates necessary indexes for the plans collection.
// Call once during application startup.
func EnsurePlanIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// Main query pattern: latest plan for a user.
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "week", Value: -1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
