package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nzwalks/walks-api/internal/core/domain"
	"github.com/nzwalks/walks-api/internal/core/ports"
)

const walkCachePrefix = "walk:"

// WalkService implements CRUD use cases for walks. It holds the region and
// difficulty repositories as well, because creating or updating a walk
// validates that both references resolve to existing records.
type WalkService struct {
	repo         ports.WalkRepository
	regions      ports.RegionRepository
	difficulties ports.DifficultyRepository
	cache        ResourceCache
	audit        ports.AuditRecorder
	log          zerolog.Logger
}

func NewWalkService(
	repo ports.WalkRepository,
	regions ports.RegionRepository,
	difficulties ports.DifficultyRepository,
	cache ResourceCache,
	audit ports.AuditRecorder,
	log zerolog.Logger,
) *WalkService {
	return &WalkService{
		repo:         repo,
		regions:      regions,
		difficulties: difficulties,
		cache:        cache,
		audit:        audit,
		log:          log,
	}
}

func (s *WalkService) ListWalks(ctx context.Context) ([]*ports.WalkDetail, error) {
	walks, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	// Memoise lookups so a page of walks in the same region does not hit
	// the store once per walk.
	regionMemo := make(map[string]*domain.Region)
	difficultyMemo := make(map[string]*domain.WalkDifficulty)

	details := make([]*ports.WalkDetail, 0, len(walks))
	for _, w := range walks {
		details = append(details, s.resolve(ctx, w, regionMemo, difficultyMemo))
	}
	return details, nil
}

func (s *WalkService) GetWalk(ctx context.Context, id string) (*ports.WalkDetail, error) {
	if s.cache != nil {
		var cached domain.Walk
		if found, err := s.cache.Get(ctx, walkCachePrefix+id, &cached); err != nil {
			s.log.Warn().Err(err).Str("walk_id", id).Msg("cache read failed, falling back to store")
		} else if found {
			return s.resolve(ctx, &cached, nil, nil), nil
		}
	}

	walk, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, walkCachePrefix+id, walk); err != nil {
			s.log.Warn().Err(err).Str("walk_id", id).Msg("cache write failed")
		}
	}
	return s.resolve(ctx, walk, nil, nil), nil
}

func (s *WalkService) CreateWalk(ctx context.Context, input ports.WalkInput) (*ports.WalkDetail, error) {
	if err := s.validateReferences(ctx, input); err != nil {
		return nil, err
	}

	walk := &domain.Walk{
		ID:           uuid.NewString(),
		Name:         input.Name,
		LengthKm:     input.LengthKm,
		RegionID:     input.RegionID,
		DifficultyID: input.DifficultyID,
	}

	if err := s.repo.Create(ctx, walk); err != nil {
		s.log.Error().Err(err).Str("name", input.Name).Msg("failed to create walk")
		return nil, err
	}

	s.recordAudit(ports.AuditActionCreate, walk.ID, input.Actor)
	s.log.Info().Str("walk_id", walk.ID).Str("region_id", walk.RegionID).Msg("walk created")
	return s.resolve(ctx, walk, nil, nil), nil
}

func (s *WalkService) UpdateWalk(ctx context.Context, id string, input ports.WalkInput) (*ports.WalkDetail, error) {
	if err := s.validateReferences(ctx, input); err != nil {
		return nil, err
	}

	updated := &domain.Walk{
		Name:         input.Name,
		LengthKm:     input.LengthKm,
		RegionID:     input.RegionID,
		DifficultyID: input.DifficultyID,
	}

	walk, err := s.repo.Update(ctx, id, updated)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, walkCachePrefix+id)
	s.recordAudit(ports.AuditActionUpdate, id, input.Actor)
	return s.resolve(ctx, walk, nil, nil), nil
}

func (s *WalkService) DeleteWalk(ctx context.Context, id, actor string) (*domain.Walk, error) {
	walk, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, walkCachePrefix+id)
	s.recordAudit(ports.AuditActionDelete, id, actor)
	return walk, nil
}

// validateReferences checks that the region and difficulty the walk points at
// exist. A missing reference is a validation failure, not a lookup miss.
func (s *WalkService) validateReferences(ctx context.Context, input ports.WalkInput) error {
	if _, err := s.regions.Get(ctx, input.RegionID); err != nil {
		if errors.Is(err, domain.ErrRegionNotFound) {
			return domain.ErrUnknownRegion
		}
		return err
	}
	if _, err := s.difficulties.Get(ctx, input.DifficultyID); err != nil {
		if errors.Is(err, domain.ErrDifficultyNotFound) {
			return domain.ErrUnknownDifficulty
		}
		return err
	}
	return nil
}

// resolve attaches the walk's region and difficulty records. A dangling
// reference resolves to nil rather than failing the read.
func (s *WalkService) resolve(
	ctx context.Context,
	walk *domain.Walk,
	regionMemo map[string]*domain.Region,
	difficultyMemo map[string]*domain.WalkDifficulty,
) *ports.WalkDetail {
	detail := &ports.WalkDetail{Walk: *walk}

	if regionMemo != nil {
		if r, ok := regionMemo[walk.RegionID]; ok {
			detail.Region = r
		}
	}
	if detail.Region == nil {
		if r, err := s.regions.Get(ctx, walk.RegionID); err == nil {
			detail.Region = r
			if regionMemo != nil {
				regionMemo[walk.RegionID] = r
			}
		}
	}

	if difficultyMemo != nil {
		if d, ok := difficultyMemo[walk.DifficultyID]; ok {
			detail.Difficulty = d
		}
	}
	if detail.Difficulty == nil {
		if d, err := s.difficulties.Get(ctx, walk.DifficultyID); err == nil {
			detail.Difficulty = d
			if difficultyMemo != nil {
				difficultyMemo[walk.DifficultyID] = d
			}
		}
	}

	return detail
}

func (s *WalkService) invalidate(ctx context.Context, key string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, key); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("cache invalidation failed")
	}
}

func (s *WalkService) recordAudit(action, id, actor string) {
	if s.audit == nil {
		return
	}
	s.audit.Record(ports.AuditEntry{
		Resource:   "walk",
		ResourceID: id,
		Action:     action,
		Actor:      actor,
		Timestamp:  time.Now().UTC(),
	})
}
