package handler

import (
	"github.com/nzwalks/walks-api/internal/core/domain"
	"github.com/nzwalks/walks-api/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type regionRequest struct {
	Code       string  `json:"code"       validate:"required"`
	Name       string  `json:"name"       validate:"required"`
	Area       float64 `json:"area"       validate:"required,gt=0"`
	Lat        float64 `json:"lat"`
	Long       float64 `json:"long"`
	Population int64   `json:"population" validate:"gte=0"`
}

// regionResponse is the transport projection of a region. It is intentionally
// separate from the domain type so the JSON contract is not coupled to
// internal changes.
type regionResponse struct {
	ID         string  `json:"id"`
	Code       string  `json:"code"`
	Name       string  `json:"name"`
	Area       float64 `json:"area"`
	Lat        float64 `json:"lat"`
	Long       float64 `json:"long"`
	Population int64   `json:"population"`
}

func toRegionInput(req regionRequest, actorName string) ports.RegionInput {
	return ports.RegionInput{
		Code:       req.Code,
		Name:       req.Name,
		Area:       req.Area,
		Lat:        req.Lat,
		Long:       req.Long,
		Population: req.Population,
		Actor:      actorName,
	}
}

func toRegionResponse(r *domain.Region) regionResponse {
	return regionResponse{
		ID:         r.ID,
		Code:       r.Code,
		Name:       r.Name,
		Area:       r.Area,
		Lat:        r.Lat,
		Long:       r.Long,
		Population: r.Population,
	}
}

func toRegionListResponse(regions []*domain.Region) []regionResponse {
	out := make([]regionResponse, len(regions))
	for i, r := range regions {
		out[i] = toRegionResponse(r)
	}
	return out
}
