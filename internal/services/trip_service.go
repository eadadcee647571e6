package services

import (
	"context"
	"time"

	"luggagebill/internal/domain"
	"luggagebill/internal/domain/models"
	"luggagebill/internal/repositories"
)

type TripService struct {
	Trips         TripStore
	Buses         BusStore
	ParkLocations ParkLocationStore
	Bills         BillStore
	RequestID     string
}

// TripSummary is a trip with the luggage total over all of its bills.
type TripSummary struct {
	models.Trip
	TotalLuggageAmount models.Money `json:"total_luggage_amount"`
}

func (s TripService) List(ctx context.Context, f repositories.ListFilter) ([]models.Trip, error) {
	return s.Trips.List(ctx, f)
}

func (s TripService) Get(ctx context.Context, id int64) (TripSummary, error) {
	if err := requireID("trip", id); err != nil {
		return TripSummary{}, err
	}
	t, err := s.Trips.GetByID(ctx, id)
	if err != nil {
		return TripSummary{}, err
	}
	total, err := s.Bills.TotalForTrip(ctx, id)
	if err != nil {
		return TripSummary{}, err
	}
	return TripSummary{Trip: t, TotalLuggageAmount: total}, nil
}

// Detail returns the trip with the bills actor may view. The total covers
// every bill of the trip regardless of who added it.
func (s TripService) Detail(ctx context.Context, actor domain.Actor, id int64) (TripDetail, error) {
	if err := requireActor(actor); err != nil {
		return TripDetail{}, err
	}
	if err := requireID("trip", id); err != nil {
		return TripDetail{}, err
	}
	t, err := s.Trips.GetByID(ctx, id)
	if err != nil {
		return TripDetail{}, err
	}
	bills, err := s.Bills.ListByTrip(ctx, id)
	if err != nil {
		return TripDetail{}, err
	}
	return TripDetail{
		Trip:               t,
		Bills:              billViews(models.VisibleBills(actor, bills)),
		TotalLuggageAmount: models.TotalLuggageAmount(bills),
	}, nil
}

// prepare validates t, loads its locations and derives its name.
// The journey date is moved to the storage zone first so one instant
// always yields the same name whatever offset the caller sent.
func (s TripService) prepare(ctx context.Context, t *models.Trip) error {
	if err := t.Validate(); err != nil {
		return err
	}
	t.DateOfJourney = t.DateOfJourney.In(time.Local)
	if err := refExists(ctx, "bus_id", t.BusID, func(ctx context.Context, id int64) error {
		_, err := s.Buses.GetByID(ctx, id)
		return err
	}); err != nil {
		return err
	}
	dep, err := s.location(ctx, "departure_id", t.DepartureID)
	if err != nil {
		return err
	}
	dest, err := s.location(ctx, "destination_id", t.DestinationID)
	if err != nil {
		return err
	}
	t.Departure, t.Destination = &dep, &dest
	return t.DeriveName()
}

func (s TripService) location(ctx context.Context, field string, id int64) (models.ParkLocation, error) {
	p, err := s.ParkLocations.GetByID(ctx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return p, domain.ValidationError{Field: field, Msg: "does not exist", Err: err}
		}
		return p, err
	}
	return p, nil
}

// Create stores a trip; any caller supplied name is replaced by the derived one.
func (s TripService) Create(ctx context.Context, t models.Trip) (models.Trip, error) {
	t.ID = 0
	if err := s.prepare(ctx, &t); err != nil {
		return t, err
	}
	out, err := s.Trips.Create(ctx, t)
	if err != nil {
		return out, err
	}
	logWrite(s.RequestID, "trip", "create", out.ID)
	return s.Trips.GetByID(ctx, out.ID)
}

// Update rewrites the trip and re-derives its name.
func (s TripService) Update(ctx context.Context, id int64, t models.Trip) (models.Trip, error) {
	if err := requireID("trip", id); err != nil {
		return t, err
	}
	if _, err := s.Trips.GetByID(ctx, id); err != nil {
		return t, err
	}
	t.ID = id
	if err := s.prepare(ctx, &t); err != nil {
		return t, err
	}
	if _, err := s.Trips.Update(ctx, t); err != nil {
		return t, err
	}
	logWrite(s.RequestID, "trip", "update", id)
	return s.Trips.GetByID(ctx, id)
}

func (s TripService) Delete(ctx context.Context, id int64) error {
	if err := requireID("trip", id); err != nil {
		return err
	}
	if err := s.Trips.Delete(ctx, id); err != nil {
		return err
	}
	logWrite(s.RequestID, "trip", "delete", id)
	return nil
}
