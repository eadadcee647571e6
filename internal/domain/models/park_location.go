package models

import "time"

// ParkLocation is a departure/arrival point within a state.
type ParkLocation struct {
	ID          int64     `json:"id"`
	StateID     int64     `json:"state_id"`
	Location    string    `json:"location"`
	FullAddress string    `json:"full_address"`
	Contact     string    `json:"contact"`
	Created     time.Time `json:"created"`
	Updated     time.Time `json:"updated"`

	State      *State `json:"state,omitempty"`
	Departures []Trip `json:"departures,omitempty"`
}

func (p *ParkLocation) Normalize() {
	p.Location = normalize(p.Location)
	p.FullAddress = normalize(p.FullAddress)
	p.Contact = normalize(p.Contact)
}

func (p ParkLocation) Validate() error {
	return firstError(
		requireRef("state_id", p.StateID),
		requireText("location", p.Location, 50),
		requireText("full_address", p.FullAddress, 255),
		requireText("contact", p.Contact, 0),
	)
}
