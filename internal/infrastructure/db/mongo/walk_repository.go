package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nzwalks/walks-api/internal/core/domain"
)

const collectionWalks = "walks"

type WalkRepository struct {
	col *mongo.Collection
}

func NewWalkRepository(db *mongo.Database) *WalkRepository {
	return &WalkRepository{col: db.Collection(collectionWalks)}
}

func (r *WalkRepository) List(ctx context.Context) ([]*domain.Walk, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	walks := []*domain.Walk{}
	if err := cur.All(ctx, &walks); err != nil {
		return nil, err
	}
	return walks, nil
}

func (r *WalkRepository) Get(ctx context.Context, id string) (*domain.Walk, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var walk domain.Walk
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&walk); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrWalkNotFound
		}
		return nil, err
	}
	return &walk, nil
}

func (r *WalkRepository) Create(ctx context.Context, walk *domain.Walk) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, walk)
	return err
}

func (r *WalkRepository) Update(ctx context.Context, id string, walk *domain.Walk) (*domain.Walk, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":          walk.Name,
		"length_km":     walk.LengthKm,
		"region_id":     walk.RegionID,
		"difficulty_id": walk.DifficultyID,
	}}

	var updated domain.Walk
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrWalkNotFound
		}
		return nil, err
	}
	return &updated, nil
}

func (r *WalkRepository) Delete(ctx context.Context, id string) (*domain.Walk, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var deleted domain.Walk
	if err := r.col.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&deleted); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrWalkNotFound
		}
		return nil, err
	}
	return &deleted, nil
}

// EnsureIndexes creates lookup indexes for the reference fields.
func (r *WalkRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "region_id", Value: 1}}},
		{Keys: bson.D{{Key: "difficulty_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
