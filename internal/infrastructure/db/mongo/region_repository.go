package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nzwalks/walks-api/internal/core/domain"
)

const collectionRegions = "regions"

type RegionRepository struct {
	col *mongo.Collection
}

func NewRegionRepository(db *mongo.Database) *RegionRepository {
	return &RegionRepository{col: db.Collection(collectionRegions)}
}

func (r *RegionRepository) List(ctx context.Context) ([]*domain.Region, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	regions := []*domain.Region{}
	if err := cur.All(ctx, &regions); err != nil {
		return nil, err
	}
	return regions, nil
}

func (r *RegionRepository) Get(ctx context.Context, id string) (*domain.Region, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var region domain.Region
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&region); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRegionNotFound
		}
		return nil, err
	}
	return &region, nil
}

func (r *RegionRepository) Create(ctx context.Context, region *domain.Region) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, region)
	return err
}

// Update replaces the writable fields and returns the updated record, or
// domain.ErrRegionNotFound when no document matches.
func (r *RegionRepository) Update(ctx context.Context, id string, region *domain.Region) (*domain.Region, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"code":       region.Code,
		"name":       region.Name,
		"area":       region.Area,
		"lat":        region.Lat,
		"long":       region.Long,
		"population": region.Population,
	}}

	var updated domain.Region
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRegionNotFound
		}
		return nil, err
	}
	return &updated, nil
}

// Delete removes the region and returns the deleted record.
func (r *RegionRepository) Delete(ctx context.Context, id string) (*domain.Region, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var deleted domain.Region
	if err := r.col.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&deleted); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRegionNotFound
		}
		return nil, err
	}
	return &deleted, nil
}
