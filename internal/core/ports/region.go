package ports

import (
	"context"

	"github.com/nzwalks/walks-api/internal/core/domain"
)

// RegionInput carries the writable fields of a region.
type RegionInput struct {
	Code       string
	Name       string
	Area       float64
	Lat        float64
	Long       float64
	Population int64
	// Actor is the authenticated username performing the mutation,
	// recorded in the audit trail.
	Actor string
}

// RegionRepository defines persistence operations for regions.
type RegionRepository interface {
	List(ctx context.Context) ([]*domain.Region, error)
	Get(ctx context.Context, id string) (*domain.Region, error)
	Create(ctx context.Context, region *domain.Region) error
	// Update replaces the writable fields of the region with the given id
	// and returns the updated record, or domain.ErrRegionNotFound.
	Update(ctx context.Context, id string, region *domain.Region) (*domain.Region, error)
	// Delete removes the region and returns the deleted record, or
	// domain.ErrRegionNotFound.
	Delete(ctx context.Context, id string) (*domain.Region, error)
}

// RegionService defines use-case operations for regions.
type RegionService interface {
	ListRegions(ctx context.Context) ([]*domain.Region, error)
	GetRegion(ctx context.Context, id string) (*domain.Region, error)
	CreateRegion(ctx context.Context, input RegionInput) (*domain.Region, error)
	UpdateRegion(ctx context.Context, id string, input RegionInput) (*domain.Region, error)
	DeleteRegion(ctx context.Context, id, actor string) (*domain.Region, error)
}
