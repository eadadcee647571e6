package services

import (
	"context"

	"luggagebill/internal/domain/models"
	"luggagebill/internal/repositories"
)

// Store interfaces are satisfied by the repositories package; tests use in-memory fakes.

type CustomerStore interface {
	List(ctx context.Context, f repositories.ListFilter) ([]models.Customer, error)
	GetByID(ctx context.Context, id int64) (models.Customer, error)
	Create(ctx context.Context, c models.Customer) (models.Customer, error)
	Update(ctx context.Context, c models.Customer) (models.Customer, error)
	Delete(ctx context.Context, id int64) error
}

type BusStore interface {
	List(ctx context.Context, f repositories.ListFilter) ([]models.Bus, error)
	GetByID(ctx context.Context, id int64) (models.Bus, error)
	Create(ctx context.Context, b models.Bus) (models.Bus, error)
	Update(ctx context.Context, b models.Bus) (models.Bus, error)
	Delete(ctx context.Context, id int64) error
}

type StateStore interface {
	List(ctx context.Context, f repositories.ListFilter) ([]models.State, error)
	GetByID(ctx context.Context, id int64) (models.State, error)
	GetByName(ctx context.Context, name string) (models.State, error)
	Create(ctx context.Context, s models.State) (models.State, error)
	Update(ctx context.Context, s models.State) (models.State, error)
	Delete(ctx context.Context, id int64) error
}

type ParkLocationStore interface {
	List(ctx context.Context, f repositories.ListFilter) ([]models.ParkLocation, error)
	ListByState(ctx context.Context, stateID int64) ([]models.ParkLocation, error)
	GetByID(ctx context.Context, id int64) (models.ParkLocation, error)
	Create(ctx context.Context, p models.ParkLocation) (models.ParkLocation, error)
	Update(ctx context.Context, p models.ParkLocation) (models.ParkLocation, error)
	Delete(ctx context.Context, id int64) error
}

type WeightStore interface {
	List(ctx context.Context, f repositories.ListFilter) ([]models.Weight, error)
	GetByID(ctx context.Context, id int64) (models.Weight, error)
	Create(ctx context.Context, w models.Weight) (models.Weight, error)
	Update(ctx context.Context, w models.Weight) (models.Weight, error)
	Delete(ctx context.Context, id int64) error
}

type BagTypeStore interface {
	List(ctx context.Context, f repositories.ListFilter) ([]models.BagType, error)
	GetByID(ctx context.Context, id int64) (models.BagType, error)
	Create(ctx context.Context, b models.BagType) (models.BagType, error)
	Update(ctx context.Context, b models.BagType) (models.BagType, error)
	Delete(ctx context.Context, id int64) error
}

type TripStore interface {
	List(ctx context.Context, f repositories.ListFilter) ([]models.Trip, error)
	ListByBus(ctx context.Context, busID int64) ([]models.Trip, error)
	ListByDeparture(ctx context.Context, parkLocationID int64) ([]models.Trip, error)
	GetByID(ctx context.Context, id int64) (models.Trip, error)
	Create(ctx context.Context, t models.Trip) (models.Trip, error)
	Update(ctx context.Context, t models.Trip) (models.Trip, error)
	Delete(ctx context.Context, id int64) error
}

type BillStore interface {
	List(ctx context.Context, f repositories.ListFilter) ([]models.LuggageBill, error)
	ListByTrip(ctx context.Context, tripID int64) ([]models.LuggageBill, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]models.LuggageBill, error)
	ListByIDs(ctx context.Context, ids []int64) ([]models.LuggageBill, error)
	GetByID(ctx context.Context, id int64) (models.LuggageBill, error)
	TotalForTrip(ctx context.Context, tripID int64) (models.Money, error)
	Create(ctx context.Context, b models.LuggageBill) (models.LuggageBill, error)
	Update(ctx context.Context, b models.LuggageBill, replaceItems bool) (models.LuggageBill, error)
	Delete(ctx context.Context, id int64) error
}

type UserStore interface {
	List(ctx context.Context, f repositories.ListFilter) ([]models.User, error)
	GetByID(ctx context.Context, id int64) (models.User, error)
	GetByUsername(ctx context.Context, username string) (models.User, error)
	Create(ctx context.Context, u models.User) (models.User, error)
	Update(ctx context.Context, u models.User) (models.User, error)
	Delete(ctx context.Context, id int64) error
}

var (
	_ CustomerStore     = repositories.CustomerRepository{}
	_ BusStore          = repositories.BusRepository{}
	_ StateStore        = repositories.StateRepository{}
	_ ParkLocationStore = repositories.ParkLocationRepository{}
	_ WeightStore       = repositories.WeightRepository{}
	_ BagTypeStore      = repositories.BagTypeRepository{}
	_ TripStore         = repositories.TripRepository{}
	_ BillStore         = repositories.LuggageBillRepository{}
	_ UserStore         = repositories.UserRepository{}
)
