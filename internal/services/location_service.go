package services

import (
	"context"

	"luggagebill/internal/domain/models"
	"luggagebill/internal/repositories"
)

// LocationService manages states and the park locations inside them.
type LocationService struct {
	States        StateStore
	ParkLocations ParkLocationStore
	Trips         TripStore
	RequestID     string
}

func (s LocationService) ListStates(ctx context.Context, f repositories.ListFilter) ([]models.State, error) {
	return s.States.List(ctx, f)
}

// GetState returns the state with its park locations inlined.
func (s LocationService) GetState(ctx context.Context, id int64) (models.State, error) {
	if err := requireID("state", id); err != nil {
		return models.State{}, err
	}
	st, err := s.States.GetByID(ctx, id)
	if err != nil {
		return st, err
	}
	locs, err := s.ParkLocations.ListByState(ctx, id)
	if err != nil {
		return st, err
	}
	st.ParkLocations = locs
	st.ParkLocationsCount = len(locs)
	return st, nil
}

func (s LocationService) CreateState(ctx context.Context, st models.State) (models.State, error) {
	st.Normalize()
	if err := st.Validate(); err != nil {
		return st, err
	}
	out, err := s.States.Create(ctx, st)
	if err != nil {
		return out, err
	}
	logWrite(s.RequestID, "state", "create", out.ID)
	return out, nil
}

func (s LocationService) UpdateState(ctx context.Context, id int64, st models.State) (models.State, error) {
	if err := requireID("state", id); err != nil {
		return st, err
	}
	existing, err := s.States.GetByID(ctx, id)
	if err != nil {
		return st, err
	}
	st.ID = id
	st.Created = existing.Created
	st.Normalize()
	if err := st.Validate(); err != nil {
		return st, err
	}
	out, err := s.States.Update(ctx, st)
	if err != nil {
		return out, err
	}
	out.ParkLocationsCount = existing.ParkLocationsCount
	logWrite(s.RequestID, "state", "update", id)
	return out, nil
}

func (s LocationService) DeleteState(ctx context.Context, id int64) error {
	if err := requireID("state", id); err != nil {
		return err
	}
	if err := s.States.Delete(ctx, id); err != nil {
		return err
	}
	logWrite(s.RequestID, "state", "delete", id)
	return nil
}

func (s LocationService) ListParkLocations(ctx context.Context, f repositories.ListFilter) ([]models.ParkLocation, error) {
	return s.ParkLocations.List(ctx, f)
}

// GetParkLocation returns the location with the trips departing from it.
func (s LocationService) GetParkLocation(ctx context.Context, id int64) (models.ParkLocation, error) {
	if err := requireID("park location", id); err != nil {
		return models.ParkLocation{}, err
	}
	p, err := s.ParkLocations.GetByID(ctx, id)
	if err != nil {
		return p, err
	}
	trips, err := s.Trips.ListByDeparture(ctx, id)
	if err != nil {
		return p, err
	}
	p.Departures = trips
	return p, nil
}

func (s LocationService) stateExists(ctx context.Context, id int64) error {
	_, err := s.States.GetByID(ctx, id)
	return err
}

func (s LocationService) CreateParkLocation(ctx context.Context, p models.ParkLocation) (models.ParkLocation, error) {
	p.Normalize()
	if err := p.Validate(); err != nil {
		return p, err
	}
	if err := refExists(ctx, "state_id", p.StateID, s.stateExists); err != nil {
		return p, err
	}
	out, err := s.ParkLocations.Create(ctx, p)
	if err != nil {
		return out, err
	}
	logWrite(s.RequestID, "park_location", "create", out.ID)
	return s.ParkLocations.GetByID(ctx, out.ID)
}

func (s LocationService) UpdateParkLocation(ctx context.Context, id int64, p models.ParkLocation) (models.ParkLocation, error) {
	if err := requireID("park location", id); err != nil {
		return p, err
	}
	if _, err := s.ParkLocations.GetByID(ctx, id); err != nil {
		return p, err
	}
	p.ID = id
	p.Normalize()
	if err := p.Validate(); err != nil {
		return p, err
	}
	if err := refExists(ctx, "state_id", p.StateID, s.stateExists); err != nil {
		return p, err
	}
	if _, err := s.ParkLocations.Update(ctx, p); err != nil {
		return p, err
	}
	logWrite(s.RequestID, "park_location", "update", id)
	return s.ParkLocations.GetByID(ctx, id)
}

func (s LocationService) DeleteParkLocation(ctx context.Context, id int64) error {
	if err := requireID("park location", id); err != nil {
		return err
	}
	if err := s.ParkLocations.Delete(ctx, id); err != nil {
		return err
	}
	logWrite(s.RequestID, "park_location", "delete", id)
	return nil
}
