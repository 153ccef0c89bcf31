package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nzwalks/walks-api/internal/core/domain"
	"github.com/nzwalks/walks-api/internal/core/ports"
)

const difficultyCachePrefix = "difficulty:"

// DifficultyService implements CRUD use cases for walk difficulties.
type DifficultyService struct {
	repo  ports.DifficultyRepository
	cache ResourceCache
	audit ports.AuditRecorder
	log   zerolog.Logger
}

func NewDifficultyService(repo ports.DifficultyRepository, cache ResourceCache, audit ports.AuditRecorder, log zerolog.Logger) *DifficultyService {
	return &DifficultyService{repo: repo, cache: cache, audit: audit, log: log}
}

func (s *DifficultyService) ListDifficulties(ctx context.Context) ([]*domain.WalkDifficulty, error) {
	return s.repo.List(ctx)
}

func (s *DifficultyService) GetDifficulty(ctx context.Context, id string) (*domain.WalkDifficulty, error) {
	if s.cache != nil {
		var cached domain.WalkDifficulty
		if found, err := s.cache.Get(ctx, difficultyCachePrefix+id, &cached); err != nil {
			s.log.Warn().Err(err).Str("difficulty_id", id).Msg("cache read failed, falling back to store")
		} else if found {
			return &cached, nil
		}
	}

	difficulty, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, difficultyCachePrefix+id, difficulty); err != nil {
			s.log.Warn().Err(err).Str("difficulty_id", id).Msg("cache write failed")
		}
	}
	return difficulty, nil
}

func (s *DifficultyService) CreateDifficulty(ctx context.Context, input ports.DifficultyInput) (*domain.WalkDifficulty, error) {
	difficulty := &domain.WalkDifficulty{
		ID:   uuid.NewString(),
		Code: input.Code,
	}

	if err := s.repo.Create(ctx, difficulty); err != nil {
		s.log.Error().Err(err).Str("code", input.Code).Msg("failed to create walk difficulty")
		return nil, err
	}

	s.recordAudit(ports.AuditActionCreate, difficulty.ID, input.Actor)
	return difficulty, nil
}

func (s *DifficultyService) UpdateDifficulty(ctx context.Context, id string, input ports.DifficultyInput) (*domain.WalkDifficulty, error) {
	difficulty, err := s.repo.Update(ctx, id, &domain.WalkDifficulty{Code: input.Code})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, difficultyCachePrefix+id)
	s.recordAudit(ports.AuditActionUpdate, id, input.Actor)
	return difficulty, nil
}

func (s *DifficultyService) DeleteDifficulty(ctx context.Context, id, actor string) (*domain.WalkDifficulty, error) {
	difficulty, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, difficultyCachePrefix+id)
	s.recordAudit(ports.AuditActionDelete, id, actor)
	return difficulty, nil
}

func (s *DifficultyService) invalidate(ctx context.Context, key string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, key); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("cache invalidation failed")
	}
}

func (s *DifficultyService) recordAudit(action, id, actor string) {
	if s.audit == nil {
		return
	}
	s.audit.Record(ports.AuditEntry{
		Resource:   "difficulty",
		ResourceID: id,
		Action:     action,
		Actor:      actor,
		Timestamp:  time.Now().UTC(),
	})
}
