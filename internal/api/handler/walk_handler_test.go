package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/nzwalks/walks-api/internal/core/domain"
	"github.com/nzwalks/walks-api/internal/core/ports"
)

type stubWalkService struct {
	listFn   func(ctx context.Context) ([]*ports.WalkDetail, error)
	getFn    func(ctx context.Context, id string) (*ports.WalkDetail, error)
	createFn func(ctx context.Context, input ports.WalkInput) (*ports.WalkDetail, error)
	updateFn func(ctx context.Context, id string, input ports.WalkInput) (*ports.WalkDetail, error)
	deleteFn func(ctx context.Context, id, actor string) (*domain.Walk, error)
}

func (s *stubWalkService) ListWalks(ctx context.Context) ([]*ports.WalkDetail, error) {
	return s.listFn(ctx)
}
func (s *stubWalkService) GetWalk(ctx context.Context, id string) (*ports.WalkDetail, error) {
	return s.getFn(ctx, id)
}
func (s *stubWalkService) CreateWalk(ctx context.Context, input ports.WalkInput) (*ports.WalkDetail, error) {
	return s.createFn(ctx, input)
}
func (s *stubWalkService) UpdateWalk(ctx context.Context, id string, input ports.WalkInput) (*ports.WalkDetail, error) {
	return s.updateFn(ctx, id, input)
}
func (s *stubWalkService) DeleteWalk(ctx context.Context, id, actor string) (*domain.Walk, error) {
	return s.deleteFn(ctx, id, actor)
}

func TestWalkHandler_Get_ExpandsReferences(t *testing.T) {
	stub := &stubWalkService{getFn: func(ctx context.Context, id string) (*ports.WalkDetail, error) {
		return &ports.WalkDetail{
			Walk:       domain.Walk{ID: id, Name: "Roys Peak Track", LengthKm: 16, RegionID: "r1", DifficultyID: "d1"},
			Region:     &domain.Region{ID: "r1", Code: "OTA", Name: "Otago"},
			Difficulty: &domain.WalkDifficulty{ID: "d1", Code: "Hard"},
		}, nil
	}}
	h := NewWalkHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/v1/walks/w1", "")
	c.SetParamNames("id")
	c.SetParamValues("w1")

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	region, ok := resp["region"].(map[string]any)
	if !ok || region["code"] != "OTA" {
		t.Fatalf("expected expanded region, got %+v", resp["region"])
	}
	difficulty, ok := resp["difficulty"].(map[string]any)
	if !ok || difficulty["code"] != "Hard" {
		t.Fatalf("expected expanded difficulty, got %+v", resp["difficulty"])
	}
}

func TestWalkHandler_Create_UnknownRegion(t *testing.T) {
	stub := &stubWalkService{createFn: func(ctx context.Context, input ports.WalkInput) (*ports.WalkDetail, error) {
		return nil, domain.ErrUnknownRegion
	}}
	h := NewWalkHandler(stub)

	body := `{"name":"Ghost Walk","length_km":5,"region_id":"nope","difficulty_id":"d1"}`
	c, _ := newTestContext(t, http.MethodPost, "/v1/walks", body)

	if err := h.Create(c); err != domain.ErrUnknownRegion {
		t.Fatalf("expected ErrUnknownRegion, got %v", err)
	}
}

func TestWalkHandler_Delete_OmitsReferences(t *testing.T) {
	stub := &stubWalkService{deleteFn: func(ctx context.Context, id, actor string) (*domain.Walk, error) {
		return &domain.Walk{ID: id, Name: "Gone Walk", LengthKm: 3, RegionID: "r1", DifficultyID: "d1"}, nil
	}}
	h := NewWalkHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/v1/walks/w1", "")
	c.SetParamNames("id")
	c.SetParamValues("w1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["name"] != "Gone Walk" {
		t.Fatalf("expected deleted record, got %+v", resp)
	}
	if _, ok := resp["region"]; ok {
		t.Fatalf("delete response should not expand region")
	}
}
