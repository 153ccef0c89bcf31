package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"

	"github.com/nzwalks/walks-api/internal/core/domain"
	"github.com/nzwalks/walks-api/internal/core/ports"
)

// fakeCache is an in-process ResourceCache used across the service tests.
type fakeCache struct {
	entries map[string][]byte
	deleted []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (f *fakeCache) Get(_ context.Context, key string, dest any) (bool, error) {
	raw, ok := f.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (f *fakeCache) Set(_ context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.entries[key] = raw
	return nil
}

func (f *fakeCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.entries, k)
		f.deleted = append(f.deleted, k)
	}
	return nil
}

// fakeRecorder captures audit entries synchronously.
type fakeRecorder struct {
	entries []ports.AuditEntry
}

func (f *fakeRecorder) Record(entry ports.AuditEntry) {
	f.entries = append(f.entries, entry)
}

type stubRegionRepo struct {
	listFn   func(ctx context.Context) ([]*domain.Region, error)
	getFn    func(ctx context.Context, id string) (*domain.Region, error)
	createFn func(ctx context.Context, region *domain.Region) error
	updateFn func(ctx context.Context, id string, region *domain.Region) (*domain.Region, error)
	deleteFn func(ctx context.Context, id string) (*domain.Region, error)
}

func (s *stubRegionRepo) List(ctx context.Context) ([]*domain.Region, error) {
	return s.listFn(ctx)
}
func (s *stubRegionRepo) Get(ctx context.Context, id string) (*domain.Region, error) {
	return s.getFn(ctx, id)
}
func (s *stubRegionRepo) Create(ctx context.Context, region *domain.Region) error {
	return s.createFn(ctx, region)
}
func (s *stubRegionRepo) Update(ctx context.Context, id string, region *domain.Region) (*domain.Region, error) {
	return s.updateFn(ctx, id, region)
}
func (s *stubRegionRepo) Delete(ctx context.Context, id string) (*domain.Region, error) {
	return s.deleteFn(ctx, id)
}

func TestRegionService_Create_AssignsIDAndAudits(t *testing.T) {
	var stored *domain.Region
	repo := &stubRegionRepo{createFn: func(ctx context.Context, region *domain.Region) error {
		stored = region
		return nil
	}}
	recorder := &fakeRecorder{}
	svc := NewRegionService(repo, nil, recorder, zerolog.Nop())

	region, err := svc.CreateRegion(context.Background(), ports.RegionInput{
		Code: "STL", Name: "Southland", Area: 31196, Population: 100_000, Actor: "alice",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if region.ID == "" {
		t.Fatalf("expected generated id")
	}
	if stored == nil || stored.ID != region.ID || stored.Code != "STL" {
		t.Fatalf("unexpected stored region: %+v", stored)
	}

	if len(recorder.entries) != 1 {
		t.Fatalf("expected 1 audit entry, got %d", len(recorder.entries))
	}
	e := recorder.entries[0]
	if e.Resource != "region" || e.Action != ports.AuditActionCreate || e.ResourceID != region.ID || e.Actor != "alice" {
		t.Fatalf("unexpected audit entry: %+v", e)
	}
}

func TestRegionService_Get_CachesReadThrough(t *testing.T) {
	calls := 0
	repo := &stubRegionRepo{getFn: func(ctx context.Context, id string) (*domain.Region, error) {
		calls++
		return &domain.Region{ID: id, Code: "AKL", Name: "Auckland"}, nil
	}}
	cache := newFakeCache()
	svc := NewRegionService(repo, cache, nil, zerolog.Nop())

	for i := 0; i < 3; i++ {
		region, err := svc.GetRegion(context.Background(), "r1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if region.Code != "AKL" {
			t.Fatalf("unexpected region: %+v", region)
		}
	}
	if calls != 1 {
		t.Fatalf("expected 1 store read, got %d", calls)
	}
}

func TestRegionService_Get_NotFound(t *testing.T) {
	repo := &stubRegionRepo{getFn: func(ctx context.Context, id string) (*domain.Region, error) {
		return nil, domain.ErrRegionNotFound
	}}
	svc := NewRegionService(repo, nil, nil, zerolog.Nop())

	if _, err := svc.GetRegion(context.Background(), "missing"); err != domain.ErrRegionNotFound {
		t.Fatalf("expected ErrRegionNotFound, got %v", err)
	}
}

func TestRegionService_Update_InvalidatesCache(t *testing.T) {
	repo := &stubRegionRepo{updateFn: func(ctx context.Context, id string, region *domain.Region) (*domain.Region, error) {
		updated := *region
		updated.ID = id
		return &updated, nil
	}}
	cache := newFakeCache()
	_ = cache.Set(context.Background(), "region:r1", &domain.Region{ID: "r1", Code: "OLD"})
	recorder := &fakeRecorder{}
	svc := NewRegionService(repo, cache, recorder, zerolog.Nop())

	region, err := svc.UpdateRegion(context.Background(), "r1", ports.RegionInput{Code: "NEW", Name: "Renamed", Area: 1, Actor: "bob"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if region.ID != "r1" || region.Code != "NEW" {
		t.Fatalf("unexpected region: %+v", region)
	}
	if _, ok := cache.entries["region:r1"]; ok {
		t.Fatalf("cache entry not invalidated")
	}
	if len(recorder.entries) != 1 || recorder.entries[0].Action != ports.AuditActionUpdate {
		t.Fatalf("unexpected audit entries: %+v", recorder.entries)
	}
}

func TestRegionService_Delete_ReturnsDeletedRecord(t *testing.T) {
	repo := &stubRegionRepo{deleteFn: func(ctx context.Context, id string) (*domain.Region, error) {
		return &domain.Region{ID: id, Code: "WGN", Name: "Wellington"}, nil
	}}
	recorder := &fakeRecorder{}
	svc := NewRegionService(repo, newFakeCache(), recorder, zerolog.Nop())

	region, err := svc.DeleteRegion(context.Background(), "r9", "carol")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if region.Code != "WGN" {
		t.Fatalf("expected deleted record back, got %+v", region)
	}
	if len(recorder.entries) != 1 || recorder.entries[0].Action != ports.AuditActionDelete || recorder.entries[0].Actor != "carol" {
		t.Fatalf("unexpected audit entries: %+v", recorder.entries)
	}
}

func TestRegionService_Delete_NotFoundSkipsAudit(t *testing.T) {
	repo := &stubRegionRepo{deleteFn: func(ctx context.Context, id string) (*domain.Region, error) {
		return nil, domain.ErrRegionNotFound
	}}
	recorder := &fakeRecorder{}
	svc := NewRegionService(repo, nil, recorder, zerolog.Nop())

	if _, err := svc.DeleteRegion(context.Background(), "missing", "carol"); err != domain.ErrRegionNotFound {
		t.Fatalf("expected ErrRegionNotFound, got %v", err)
	}
	if len(recorder.entries) != 0 {
		t.Fatalf("failed mutation must not be audited: %+v", recorder.entries)
	}
}
