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

const progressCollectionName = "progress"

// mongoProgressRepository implements repository.ProgressRepository.
type mongoProgressRepository struct {
	collection *mongo.Collection
}

// NewMongoProgressRepository creates a progress repository backed by the
// given database.
func NewMongoProgressRepository(db *mongo.Database) repository.ProgressRepository {
	return &mongoProgressRepository{
		collection: db.Collection(progressCollectionName),
	}
}

// Save upserts the progress record keyed by user id.
func (r *mongoProgressRepository) Save(ctx context.Context, progress *domain.Progress) error {
	filter := bson.M{"_id": progress.UserID}
	update := bson.M{"$set": progress}
	opts := options.Update().SetUpsert(true)

	_, err := r.collection.UpdateOne(ctx, filter, update, opts)
	return err
}

// Get retrieves the progress record for a user.
func (r *mongoProgressRepository) Get(ctx context.Context, userID string) (*domain.Progress, error) {
	var progress domain.Progress
	err := r.collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&progress)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &progress, nil
}

// Delete removes the progress record for the user.
func (r *mongoProgressRepository) Delete(ctx context.Context, userID string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": userID})
	return err
}
