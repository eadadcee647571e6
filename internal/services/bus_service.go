package services

import (
	"context"

	"luggagebill/internal/domain/models"
	"luggagebill/internal/repositories"
)

type BusService struct {
	Buses     BusStore
	Trips     TripStore
	RequestID string
}

func (s BusService) List(ctx context.Context, f repositories.ListFilter) ([]models.Bus, error) {
	return s.Buses.List(ctx, f)
}

// Get returns the bus with its trips inlined.
func (s BusService) Get(ctx context.Context, id int64) (models.Bus, error) {
	if err := requireID("bus", id); err != nil {
		return models.Bus{}, err
	}
	b, err := s.Buses.GetByID(ctx, id)
	if err != nil {
		return b, err
	}
	trips, err := s.Trips.ListByBus(ctx, id)
	if err != nil {
		return b, err
	}
	b.Trips = trips
	return b, nil
}

func (s BusService) Create(ctx context.Context, b models.Bus) (models.Bus, error) {
	b.Normalize()
	if err := b.Validate(); err != nil {
		return b, err
	}
	out, err := s.Buses.Create(ctx, b)
	if err != nil {
		return out, err
	}
	logWrite(s.RequestID, "bus", "create", out.ID)
	return out, nil
}

func (s BusService) Update(ctx context.Context, id int64, b models.Bus) (models.Bus, error) {
	if err := requireID("bus", id); err != nil {
		return b, err
	}
	existing, err := s.Buses.GetByID(ctx, id)
	if err != nil {
		return b, err
	}
	b.ID = id
	b.Created = existing.Created
	b.Normalize()
	if err := b.Validate(); err != nil {
		return b, err
	}
	out, err := s.Buses.Update(ctx, b)
	if err != nil {
		return out, err
	}
	logWrite(s.RequestID, "bus", "update", id)
	return out, nil
}

func (s BusService) Delete(ctx context.Context, id int64) error {
	if err := requireID("bus", id); err != nil {
		return err
	}
	if err := s.Buses.Delete(ctx, id); err != nil {
		return err
	}
	logWrite(s.RequestID, "bus", "delete", id)
	return nil
}
