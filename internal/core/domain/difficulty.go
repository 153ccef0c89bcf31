package domain

import "errors"

var ErrDifficultyNotFound = errors.New("walk difficulty not found")

// WalkDifficulty is a rating a walk can carry, identified by a short code
// such as "Easy" or "Hard".
type WalkDifficulty struct {
	ID   string `json:"id" bson:"_id,omitempty"`
	Code string `json:"code" bson:"code"`
}
