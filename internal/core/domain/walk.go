package domain

import "errors"

var ErrWalkNotFound = errors.New("walk not found")

// ErrUnknownRegion and ErrUnknownDifficulty signal a walk referencing a
// region or difficulty that does not exist. They are validation failures,
// not lookup misses, and map to 400 rather than 404.
var ErrUnknownRegion = errors.New("region does not exist")
var ErrUnknownDifficulty = errors.New("walk difficulty does not exist")

// Walk is a hiking trail. It references the region it is located in and a
// difficulty rating; both references must resolve to existing records.
type Walk struct {
	ID           string  `json:"id" bson:"_id,omitempty"`
	Name         string  `json:"name" bson:"name"`
	LengthKm     float64 `json:"length_km" bson:"length_km"`
	RegionID     string  `json:"region_id" bson:"region_id"`
	DifficultyID string  `json:"difficulty_id" bson:"difficulty_id"`
}
