package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/nzwalks/walks-api/internal/api/middleware"
	"github.com/nzwalks/walks-api/internal/core/domain"
	"github.com/nzwalks/walks-api/internal/core/ports"
)

var routerAuthConfig = middleware.Config{
	Secret:   "0123456789abcdef0123456789abcdef",
	Issuer:   "walks-api",
	Audience: "walks-api-clients",
}

type fixedAuthService struct{}

func (fixedAuthService) Login(context.Context, string, string) (string, *domain.User, error) {
	return "token123", &domain.User{Username: "alice"}, nil
}

type fixedRegionService struct{}

func (fixedRegionService) ListRegions(context.Context) ([]*domain.Region, error) {
	return []*domain.Region{{ID: "r1", Code: "AKL", Name: "Auckland", Area: 1}}, nil
}
func (fixedRegionService) GetRegion(_ context.Context, id string) (*domain.Region, error) {
	if id == "missing" {
		return nil, domain.ErrRegionNotFound
	}
	return &domain.Region{ID: id, Code: "AKL", Name: "Auckland", Area: 1}, nil
}
func (fixedRegionService) CreateRegion(_ context.Context, in ports.RegionInput) (*domain.Region, error) {
	return &domain.Region{ID: "r1", Code: in.Code, Name: in.Name, Area: in.Area}, nil
}
func (fixedRegionService) UpdateRegion(_ context.Context, id string, in ports.RegionInput) (*domain.Region, error) {
	return &domain.Region{ID: id, Code: in.Code, Name: in.Name, Area: in.Area}, nil
}
func (fixedRegionService) DeleteRegion(_ context.Context, id, _ string) (*domain.Region, error) {
	return &domain.Region{ID: id, Code: "AKL", Name: "Auckland", Area: 1}, nil
}

type fixedWalkService struct{}

func walkDetail(id string) *ports.WalkDetail {
	return &ports.WalkDetail{Walk: domain.Walk{ID: id, Name: "Track", LengthKm: 5, RegionID: "r1", DifficultyID: "d1"}}
}
func (fixedWalkService) ListWalks(context.Context) ([]*ports.WalkDetail, error) {
	return []*ports.WalkDetail{walkDetail("w1")}, nil
}
func (fixedWalkService) GetWalk(_ context.Context, id string) (*ports.WalkDetail, error) {
	return walkDetail(id), nil
}
func (fixedWalkService) CreateWalk(context.Context, ports.WalkInput) (*ports.WalkDetail, error) {
	return walkDetail("w1"), nil
}
func (fixedWalkService) UpdateWalk(_ context.Context, id string, _ ports.WalkInput) (*ports.WalkDetail, error) {
	return walkDetail(id), nil
}
func (fixedWalkService) DeleteWalk(_ context.Context, id, _ string) (*domain.Walk, error) {
	return &domain.Walk{ID: id, Name: "Track"}, nil
}

type fixedDifficultyService struct{}

func (fixedDifficultyService) ListDifficulties(context.Context) ([]*domain.WalkDifficulty, error) {
	return []*domain.WalkDifficulty{{ID: "d1", Code: "Easy"}}, nil
}
func (fixedDifficultyService) GetDifficulty(_ context.Context, id string) (*domain.WalkDifficulty, error) {
	return &domain.WalkDifficulty{ID: id, Code: "Easy"}, nil
}
func (fixedDifficultyService) CreateDifficulty(context.Context, ports.DifficultyInput) (*domain.WalkDifficulty, error) {
	return &domain.WalkDifficulty{ID: "d1", Code: "Easy"}, nil
}
func (fixedDifficultyService) UpdateDifficulty(_ context.Context, id string, _ ports.DifficultyInput) (*domain.WalkDifficulty, error) {
	return &domain.WalkDifficulty{ID: id, Code: "Easy"}, nil
}
func (fixedDifficultyService) DeleteDifficulty(_ context.Context, id, _ string) (*domain.WalkDifficulty, error) {
	return &domain.WalkDifficulty{ID: id, Code: "Easy"}, nil
}

func bearerFor(t *testing.T, roles ...string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":   "alice",
		"iss":   routerAuthConfig.Issuer,
		"aud":   routerAuthConfig.Audience,
		"exp":   time.Now().Add(15 * time.Minute).Unix(),
		"iat":   time.Now().Unix(),
		"roles": roles,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(routerAuthConfig.Secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return "Bearer " + signed
}

// TestRouter_AccessPolicy drives requests through the fully wired router and
// pins the status per route and role. Each guarded mutation is checked
// anonymous, with a read-only token, and with a write token, so a mis-declared
// route cannot slip past the middleware unit tests.
func TestRouter_AccessPolicy(t *testing.T) {
	e := NewRouter(Dependencies{
		Logger:       zerolog.Nop(),
		Auth:         routerAuthConfig,
		AuthService:  fixedAuthService{},
		Regions:      fixedRegionService{},
		Walks:        fixedWalkService{},
		Difficulties: fixedDifficultyService{},
	})

	regionBody := `{"code":"AKL","name":"Auckland","area":4940,"population":1500000}`
	walkBody := `{"name":"Track","length_km":5,"region_id":"r1","difficulty_id":"d1"}`
	difficultyBody := `{"code":"Easy"}`

	reader := bearerFor(t, domain.RoleReader)
	writer := bearerFor(t, domain.RoleWriter)

	cases := []struct {
		name   string
		method string
		path   string
		body   string
		token  string
		want   int
	}{
		{"login open", http.MethodPost, "/auth/login", `{"username":"alice","password":"secret"}`, "", http.StatusOK},
		{"health open", http.MethodGet, "/health", "", "", http.StatusOK},

		{"regions list anon", http.MethodGet, "/v1/regions", "", "", http.StatusOK},
		{"regions get anon", http.MethodGet, "/v1/regions/r1", "", "", http.StatusOK},
		{"regions get missing anon", http.MethodGet, "/v1/regions/missing", "", "", http.StatusNotFound},
		{"regions create anon", http.MethodPost, "/v1/regions", regionBody, "", http.StatusUnauthorized},
		{"regions create reader", http.MethodPost, "/v1/regions", regionBody, reader, http.StatusForbidden},
		{"regions create writer", http.MethodPost, "/v1/regions", regionBody, writer, http.StatusCreated},
		{"regions update reader", http.MethodPut, "/v1/regions/r1", regionBody, reader, http.StatusForbidden},
		{"regions update writer", http.MethodPut, "/v1/regions/r1", regionBody, writer, http.StatusOK},
		{"regions delete anon", http.MethodDelete, "/v1/regions/r1", "", "", http.StatusUnauthorized},
		{"regions delete reader", http.MethodDelete, "/v1/regions/r1", "", reader, http.StatusForbidden},
		{"regions delete writer", http.MethodDelete, "/v1/regions/r1", "", writer, http.StatusOK},

		{"walks list anon", http.MethodGet, "/v1/walks", "", "", http.StatusUnauthorized},
		{"walks list reader", http.MethodGet, "/v1/walks", "", reader, http.StatusOK},
		{"walks list writer only", http.MethodGet, "/v1/walks", "", writer, http.StatusForbidden},
		{"walks get reader", http.MethodGet, "/v1/walks/w1", "", reader, http.StatusOK},
		{"walks create anon", http.MethodPost, "/v1/walks", walkBody, "", http.StatusUnauthorized},
		{"walks create reader", http.MethodPost, "/v1/walks", walkBody, reader, http.StatusForbidden},
		{"walks create writer", http.MethodPost, "/v1/walks", walkBody, writer, http.StatusCreated},
		{"walks update writer", http.MethodPut, "/v1/walks/w1", walkBody, writer, http.StatusOK},
		{"walks delete anon", http.MethodDelete, "/v1/walks/w1", "", "", http.StatusUnauthorized},
		{"walks delete reader", http.MethodDelete, "/v1/walks/w1", "", reader, http.StatusForbidden},
		{"walks delete writer", http.MethodDelete, "/v1/walks/w1", "", writer, http.StatusOK},

		{"difficulties list anon", http.MethodGet, "/v1/difficulties", "", "", http.StatusOK},
		{"difficulties get anon", http.MethodGet, "/v1/difficulties/d1", "", "", http.StatusOK},
		{"difficulties create anon", http.MethodPost, "/v1/difficulties", difficultyBody, "", http.StatusUnauthorized},
		{"difficulties create reader", http.MethodPost, "/v1/difficulties", difficultyBody, reader, http.StatusForbidden},
		{"difficulties create writer", http.MethodPost, "/v1/difficulties", difficultyBody, writer, http.StatusCreated},
		{"difficulties delete writer", http.MethodDelete, "/v1/difficulties/d1", "", writer, http.StatusOK},

		{"garbage token rejected", http.MethodGet, "/v1/walks", "", "Bearer nonsense", http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var req *http.Request
			if tc.body == "" {
				req = httptest.NewRequest(tc.method, tc.path, nil)
			} else {
				req = httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
				req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			}
			if tc.token != "" {
				req.Header.Set("Authorization", tc.token)
			}

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			if rec.Code != tc.want {
				t.Fatalf("%s %s: expected %d, got %d (body %s)", tc.method, tc.path, tc.want, rec.Code, rec.Body.String())
			}
		})
	}
}
