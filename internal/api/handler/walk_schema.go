package handler

import (
	"github.com/nzwalks/walks-api/internal/core/ports"
)

type walkRequest struct {
	Name         string  `json:"name"          validate:"required"`
	LengthKm     float64 `json:"length_km"     validate:"required,gt=0"`
	RegionID     string  `json:"region_id"     validate:"required"`
	DifficultyID string  `json:"difficulty_id" validate:"required"`
}

type difficultySummaryResponse struct {
	ID   string `json:"id"`
	Code string `json:"code"`
}

// walkResponse carries the walk with its region and difficulty expanded.
// Dangling references render null.
type walkResponse struct {
	ID           string                     `json:"id"`
	Name         string                     `json:"name"`
	LengthKm     float64                    `json:"length_km"`
	RegionID     string                     `json:"region_id"`
	DifficultyID string                     `json:"difficulty_id"`
	Region       *regionResponse            `json:"region,omitempty"`
	Difficulty   *difficultySummaryResponse `json:"difficulty,omitempty"`
}

func toWalkInput(req walkRequest, actorName string) ports.WalkInput {
	return ports.WalkInput{
		Name:         req.Name,
		LengthKm:     req.LengthKm,
		RegionID:     req.RegionID,
		DifficultyID: req.DifficultyID,
		Actor:        actorName,
	}
}

func toWalkResponse(d *ports.WalkDetail) walkResponse {
	resp := walkResponse{
		ID:           d.Walk.ID,
		Name:         d.Walk.Name,
		LengthKm:     d.Walk.LengthKm,
		RegionID:     d.Walk.RegionID,
		DifficultyID: d.Walk.DifficultyID,
	}
	if d.Region != nil {
		r := toRegionResponse(d.Region)
		resp.Region = &r
	}
	if d.Difficulty != nil {
		resp.Difficulty = &difficultySummaryResponse{ID: d.Difficulty.ID, Code: d.Difficulty.Code}
	}
	return resp
}

func toWalkListResponse(details []*ports.WalkDetail) []walkResponse {
	out := make([]walkResponse, len(details))
	for i, d := range details {
		out[i] = toWalkResponse(d)
	}
	return out
}
