package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nzwalks/walks-api/internal/core/domain"
	"github.com/nzwalks/walks-api/internal/core/ports"
)

const regionCachePrefix = "region:"

// RegionService implements CRUD use cases for regions.
type RegionService struct {
	repo  ports.RegionRepository
	cache ResourceCache
	audit ports.AuditRecorder
	log   zerolog.Logger
}

func NewRegionService(repo ports.RegionRepository, cache ResourceCache, audit ports.AuditRecorder, log zerolog.Logger) *RegionService {
	return &RegionService{repo: repo, cache: cache, audit: audit, log: log}
}

func (s *RegionService) ListRegions(ctx context.Context) ([]*domain.Region, error) {
	return s.repo.List(ctx)
}

func (s *RegionService) GetRegion(ctx context.Context, id string) (*domain.Region, error) {
	if s.cache != nil {
		var cached domain.Region
		if found, err := s.cache.Get(ctx, regionCachePrefix+id, &cached); err != nil {
			s.log.Warn().Err(err).Str("region_id", id).Msg("cache read failed, falling back to store")
		} else if found {
			return &cached, nil
		}
	}

	region, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, regionCachePrefix+id, region); err != nil {
			s.log.Warn().Err(err).Str("region_id", id).Msg("cache write failed")
		}
	}
	return region, nil
}

func (s *RegionService) CreateRegion(ctx context.Context, input ports.RegionInput) (*domain.Region, error) {
	region := &domain.Region{
		ID:         uuid.NewString(),
		Code:       input.Code,
		Name:       input.Name,
		Area:       input.Area,
		Lat:        input.Lat,
		Long:       input.Long,
		Population: input.Population,
	}

	if err := s.repo.Create(ctx, region); err != nil {
		s.log.Error().Err(err).Str("code", input.Code).Msg("failed to create region")
		return nil, err
	}

	s.recordAudit(ports.AuditActionCreate, region.ID, input.Actor)
	s.log.Info().Str("region_id", region.ID).Str("code", region.Code).Msg("region created")
	return region, nil
}

func (s *RegionService) UpdateRegion(ctx context.Context, id string, input ports.RegionInput) (*domain.Region, error) {
	updated := &domain.Region{
		Code:       input.Code,
		Name:       input.Name,
		Area:       input.Area,
		Lat:        input.Lat,
		Long:       input.Long,
		Population: input.Population,
	}

	region, err := s.repo.Update(ctx, id, updated)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, regionCachePrefix+id)
	s.recordAudit(ports.AuditActionUpdate, id, input.Actor)
	return region, nil
}

func (s *RegionService) DeleteRegion(ctx context.Context, id, actor string) (*domain.Region, error) {
	region, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, regionCachePrefix+id)
	s.recordAudit(ports.AuditActionDelete, id, actor)
	return region, nil
}

func (s *RegionService) invalidate(ctx context.Context, key string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, key); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("cache invalidation failed")
	}
}

func (s *RegionService) recordAudit(action, id, actor string) {
	if s.audit == nil {
		return
	}
	s.audit.Record(ports.AuditEntry{
		Resource:   "region",
		ResourceID: id,
		Action:     action,
		Actor:      actor,
		Timestamp:  time.Now().UTC(),
	})
}
