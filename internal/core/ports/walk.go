package ports

import (
	"context"

	"github.com/nzwalks/walks-api/internal/core/domain"
)

// WalkInput carries the writable fields of a walk.
type WalkInput struct {
	Name         string
	LengthKm     float64
	RegionID     string
	DifficultyID string
	Actor        string
}

// WalkDetail is the full walk view with its region and difficulty resolved,
// mirroring what the read endpoints return.
type WalkDetail struct {
	Walk       domain.Walk
	Region     *domain.Region
	Difficulty *domain.WalkDifficulty
}

// WalkRepository defines persistence operations for walks.
type WalkRepository interface {
	List(ctx context.Context) ([]*domain.Walk, error)
	Get(ctx context.Context, id string) (*domain.Walk, error)
	Create(ctx context.Context, walk *domain.Walk) error
	Update(ctx context.Context, id string, walk *domain.Walk) (*domain.Walk, error)
	Delete(ctx context.Context, id string) (*domain.Walk, error)
}

// WalkService defines use-case operations for walks. Create and Update
// reject inputs whose region or difficulty reference does not resolve.
type WalkService interface {
	ListWalks(ctx context.Context) ([]*WalkDetail, error)
	GetWalk(ctx context.Context, id string) (*WalkDetail, error)
	CreateWalk(ctx context.Context, input WalkInput) (*WalkDetail, error)
	UpdateWalk(ctx context.Context, id string, input WalkInput) (*WalkDetail, error)
	DeleteWalk(ctx context.Context, id, actor string) (*domain.Walk, error)
}
