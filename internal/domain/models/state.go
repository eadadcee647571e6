package models

import "time"

type State struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	ShortCode string    `json:"short_code"`
	Created   time.Time `json:"created"`
	Updated   time.Time `json:"updated"`

	ParkLocationsCount int            `json:"park_locations_count"`
	ParkLocations      []ParkLocation `json:"park_locations,omitempty"`
}

func (s *State) Normalize() {
	s.Name = normalize(s.Name)
	s.ShortCode = normalize(s.ShortCode)
}

func (s State) Validate() error {
	return firstError(
		requireText("name", s.Name, 20),
		requireText("short_code", s.ShortCode, 3),
	)
}
