package ports

import (
	"context"

	"github.com/nzwalks/walks-api/internal/core/domain"
)

// DifficultyInput carries the writable fields of a walk difficulty.
type DifficultyInput struct {
	Code  string
	Actor string
}

// DifficultyRepository defines persistence operations for walk difficulties.
type DifficultyRepository interface {
	List(ctx context.Context) ([]*domain.WalkDifficulty, error)
	Get(ctx context.Context, id string) (*domain.WalkDifficulty, error)
	Create(ctx context.Context, difficulty *domain.WalkDifficulty) error
	Update(ctx context.Context, id string, difficulty *domain.WalkDifficulty) (*domain.WalkDifficulty, error)
	Delete(ctx context.Context, id string) (*domain.WalkDifficulty, error)
}

// DifficultyService defines use-case operations for walk difficulties.
type DifficultyService interface {
	ListDifficulties(ctx context.Context) ([]*domain.WalkDifficulty, error)
	GetDifficulty(ctx context.Context, id string) (*domain.WalkDifficulty, error)
	CreateDifficulty(ctx context.Context, input DifficultyInput) (*domain.WalkDifficulty, error)
	UpdateDifficulty(ctx context.Context, id string, input DifficultyInput) (*domain.WalkDifficulty, error)
	DeleteDifficulty(ctx context.Context, id, actor string) (*domain.WalkDifficulty, error)
}
