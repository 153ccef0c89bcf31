package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nzwalks/walks-api/internal/core/domain"
)

const collectionDifficulties = "walk_difficulties"

type DifficultyRepository struct {
	col *mongo.Collection
}

func NewDifficultyRepository(db *mongo.Database) *DifficultyRepository {
	return &DifficultyRepository{col: db.Collection(collectionDifficulties)}
}

func (r *DifficultyRepository) List(ctx context.Context) ([]*domain.WalkDifficulty, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	difficulties := []*domain.WalkDifficulty{}
	if err := cur.All(ctx, &difficulties); err != nil {
		return nil, err
	}
	return difficulties, nil
}

func (r *DifficultyRepository) Get(ctx context.Context, id string) (*domain.WalkDifficulty, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var difficulty domain.WalkDifficulty
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&difficulty); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDifficultyNotFound
		}
		return nil, err
	}
	return &difficulty, nil
}

func (r *DifficultyRepository) Create(ctx context.Context, difficulty *domain.WalkDifficulty) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, difficulty)
	return err
}

func (r *DifficultyRepository) Update(ctx context.Context, id string, difficulty *domain.WalkDifficulty) (*domain.WalkDifficulty, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var updated domain.WalkDifficulty
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"code": difficulty.Code}},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDifficultyNotFound
		}
		return nil, err
	}
	return &updated, nil
}

func (r *DifficultyRepository) Delete(ctx context.Context, id string) (*domain.WalkDifficulty, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var deleted domain.WalkDifficulty
	if err := r.col.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&deleted); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDifficultyNotFound
		}
		return nil, err
	}
	return &deleted, nil
}
