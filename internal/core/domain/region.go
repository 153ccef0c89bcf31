package domain

import "errors"

var ErrRegionNotFound = errors.New("region not found")

// Region is an administrative area that walks belong to.
type Region struct {
	ID         string  `json:"id" bson:"_id,omitempty"`
	Code       string  `json:"code" bson:"code"`
	Name       string  `json:"name" bson:"name"`
	Area       float64 `json:"area" bson:"area"`
	Lat        float64 `json:"lat" bson:"lat"`
	Long       float64 `json:"long" bson:"long"`
	Population int64   `json:"population" bson:"population"`
}
