package models

import (
	"fmt"
	"time"

	"luggagebill/internal/domain"
	"luggagebill/internal/utils"
)

// Trip is a scheduled bus journey between two park locations.
// Name is derived from the related states and the journey date and is
// recomputed on every write; it is never taken from the caller.
type Trip struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	BusID         int64     `json:"bus_id"`
	DepartureID   int64     `json:"departure_id"`
	DestinationID int64     `json:"destination_id"`
	DateOfJourney time.Time `json:"date_of_journey"`
	Created       time.Time `json:"created"`
	Updated       time.Time `json:"updated"`

	Bus         *Bus          `json:"bus,omitempty"`
	Departure   *ParkLocation `json:"departure,omitempty"`
	Destination *ParkLocation `json:"destination,omitempty"`
}

// TripName formats "{departure}-to-{destination}-{DD-MM-YYYY}".
func TripName(departureCode, destinationCode string, dateOfJourney time.Time) string {
	return fmt.Sprintf("%s-to-%s-%s", departureCode, destinationCode, utils.FormatTripDate(dateOfJourney))
}

func (t Trip) Validate() error {
	if err := firstError(
		requireRef("bus_id", t.BusID),
		requireRef("departure_id", t.DepartureID),
		requireRef("destination_id", t.DestinationID),
	); err != nil {
		return err
	}
	if t.DepartureID == t.DestinationID {
		return domain.ValidationError{Field: "destination_id", Msg: "departure and destination locations must be different"}
	}
	if t.DateOfJourney.IsZero() {
		return domain.ValidationError{Field: "date_of_journey", Msg: "required"}
	}
	return nil
}

// DeriveName sets Name from the loaded departure/destination states.
func (t *Trip) DeriveName() error {
	if t.Departure == nil || t.Departure.State == nil {
		return domain.ValidationError{Field: "departure_id", Msg: "departure location has no state"}
	}
	if t.Destination == nil || t.Destination.State == nil {
		return domain.ValidationError{Field: "destination_id", Msg: "destination location has no state"}
	}
	t.Name = TripName(t.Departure.State.ShortCode, t.Destination.State.ShortCode, t.DateOfJourney)
	return nil
}

// TotalLuggageAmount sums the total amount of the given bills.
func TotalLuggageAmount(bills []LuggageBill) Money {
	var total Money
	for _, b := range bills {
		total += b.TotalAmount()
	}
	return total
}
