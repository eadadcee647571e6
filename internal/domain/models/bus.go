package models

import (
	"time"

	"luggagebill/internal/domain"
)

type Bus struct {
	ID               int64     `json:"id"`
	PlateNumber      string    `json:"plate_number"`
	DriverName       string    `json:"driver_name"`
	MaxLuggageWeight *int      `json:"max_luggage_weight,omitempty"` // nullable
	Created          time.Time `json:"created"`
	Updated          time.Time `json:"updated"`

	Trips []Trip `json:"trips,omitempty"`
}

func (b *Bus) Normalize() {
	b.PlateNumber = normalize(b.PlateNumber)
	b.DriverName = normalize(b.DriverName)
}

func (b Bus) Validate() error {
	if err := ValidatePlateNumber("plate_number", b.PlateNumber); err != nil {
		return err
	}
	if err := requireText("driver_name", b.DriverName, 150); err != nil {
		return err
	}
	if b.MaxLuggageWeight != nil && *b.MaxLuggageWeight < 1 {
		return domain.ValidationError{Field: "max_luggage_weight", Msg: "must be at least 1"}
	}
	return nil
}
