package services

import (
	"context"
	"sort"

	"luggagebill/internal/domain"
	"luggagebill/internal/domain/models"
	"luggagebill/internal/repositories"
)

// memStore is a tiny in-memory table keyed by id.
type memStore[T any] struct {
	rows     map[int64]T
	next     int64
	resource string
	id       func(T) int64
	setID    func(*T, int64)
	unique   func(T) string
}

func newMem[T any](resource string, id func(T) int64, setID func(*T, int64)) *memStore[T] {
	return &memStore[T]{rows: map[int64]T{}, resource: resource, id: id, setID: setID}
}

func (m *memStore[T]) all() []T {
	ids := make([]int64, 0, len(m.rows))
	for id := range m.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, m.rows[id])
	}
	return out
}

func (m *memStore[T]) List(_ context.Context, _ repositories.ListFilter) ([]T, error) {
	return m.all(), nil
}

func (m *memStore[T]) GetByID(_ context.Context, id int64) (T, error) {
	v, ok := m.rows[id]
	if !ok {
		var zero T
		return zero, domain.NotFoundError{Resource: m.resource}
	}
	return v, nil
}

func (m *memStore[T]) conflict(v T) bool {
	if m.unique == nil {
		return false
	}
	key := m.unique(v)
	for id, row := range m.rows {
		if id != m.id(v) && m.unique(row) == key {
			return true
		}
	}
	return false
}

func (m *memStore[T]) Create(_ context.Context, v T) (T, error) {
	if m.conflict(v) {
		return v, domain.ConflictError{Resource: m.resource, Msg: "already exists"}
	}
	m.next++
	m.setID(&v, m.next)
	m.rows[m.next] = v
	return v, nil
}

func (m *memStore[T]) Update(_ context.Context, v T) (T, error) {
	if _, ok := m.rows[m.id(v)]; !ok {
		return v, domain.NotFoundError{Resource: m.resource}
	}
	if m.conflict(v) {
		return v, domain.ConflictError{Resource: m.resource, Msg: "already exists"}
	}
	m.rows[m.id(v)] = v
	return v, nil
}

func (m *memStore[T]) Delete(_ context.Context, id int64) error {
	if _, ok := m.rows[id]; !ok {
		return domain.NotFoundError{Resource: m.resource}
	}
	delete(m.rows, id)
	return nil
}

type fakeCustomers struct{ *memStore[models.Customer] }

func newFakeCustomers() fakeCustomers {
	m := newMem("customer", func(c models.Customer) int64 { return c.ID }, func(c *models.Customer, id int64) { c.ID = id })
	m.unique = func(c models.Customer) string { return c.Fullname }
	return fakeCustomers{m}
}

type fakeBuses struct{ *memStore[models.Bus] }

func newFakeBuses() fakeBuses {
	m := newMem("bus", func(b models.Bus) int64 { return b.ID }, func(b *models.Bus, id int64) { b.ID = id })
	m.unique = func(b models.Bus) string { return b.PlateNumber }
	return fakeBuses{m}
}

type fakeStates struct{ *memStore[models.State] }

func newFakeStates() fakeStates {
	m := newMem("state", func(s models.State) int64 { return s.ID }, func(s *models.State, id int64) { s.ID = id })
	m.unique = func(s models.State) string { return s.Name }
	return fakeStates{m}
}

func (f fakeStates) GetByName(_ context.Context, name string) (models.State, error) {
	for _, s := range f.all() {
		if s.Name == name {
			return s, nil
		}
	}
	return models.State{}, domain.NotFoundError{Resource: "state"}
}

type fakeParkLocations struct {
	*memStore[models.ParkLocation]
	states fakeStates
}

func newFakeParkLocations(states fakeStates) fakeParkLocations {
	m := newMem("park location", func(p models.ParkLocation) int64 { return p.ID }, func(p *models.ParkLocation, id int64) { p.ID = id })
	m.unique = func(p models.ParkLocation) string { return p.Location }
	return fakeParkLocations{memStore: m, states: states}
}

// GetByID attaches the state like the SQL join does.
func (f fakeParkLocations) GetByID(ctx context.Context, id int64) (models.ParkLocation, error) {
	p, err := f.memStore.GetByID(ctx, id)
	if err != nil {
		return p, err
	}
	if st, err := f.states.GetByID(ctx, p.StateID); err == nil {
		p.State = &st
	}
	return p, nil
}

func (f fakeParkLocations) ListByState(_ context.Context, stateID int64) ([]models.ParkLocation, error) {
	out := []models.ParkLocation{}
	for _, p := range f.all() {
		if p.StateID == stateID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeWeights struct{ *memStore[models.Weight] }

func newFakeWeights() fakeWeights {
	return fakeWeights{newMem("weight", func(w models.Weight) int64 { return w.ID }, func(w *models.Weight, id int64) { w.ID = id })}
}

type fakeBagTypes struct{ *memStore[models.BagType] }

func newFakeBagTypes() fakeBagTypes {
	return fakeBagTypes{newMem("bag type", func(b models.BagType) int64 { return b.ID }, func(b *models.BagType, id int64) { b.ID = id })}
}

type fakeTrips struct{ *memStore[models.Trip] }

func newFakeTrips() fakeTrips {
	m := newMem("trip", func(t models.Trip) int64 { return t.ID }, func(t *models.Trip, id int64) { t.ID = id })
	m.unique = func(t models.Trip) string { return t.Name }
	return fakeTrips{m}
}

func (f fakeTrips) ListByBus(_ context.Context, busID int64) ([]models.Trip, error) {
	out := []models.Trip{}
	for _, t := range f.all() {
		if t.BusID == busID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f fakeTrips) ListByDeparture(_ context.Context, id int64) ([]models.Trip, error) {
	out := []models.Trip{}
	for _, t := range f.all() {
		if t.DepartureID == id {
			out = append(out, t)
		}
	}
	return out, nil
}

// fakeBills resolves item weights on read so totals can be computed.
type fakeBills struct {
	*memStore[models.LuggageBill]
	weights      fakeWeights
	lastFilter   repositories.ListFilter
	replaceCalls []bool
}

func newFakeBills(weights fakeWeights) *fakeBills {
	m := newMem("luggage bill", func(b models.LuggageBill) int64 { return b.ID }, func(b *models.LuggageBill, id int64) { b.ID = id })
	return &fakeBills{memStore: m, weights: weights}
}

func (f *fakeBills) hydrate(b models.LuggageBill) models.LuggageBill {
	items := make([]models.Luggage, len(b.Items))
	for i, it := range b.Items {
		if w, err := f.weights.GetByID(context.Background(), it.WeightID); err == nil {
			it.Weight = &w
		}
		items[i] = it
	}
	b.Items = items
	return b
}

func (f *fakeBills) filter(keep func(models.LuggageBill) bool) []models.LuggageBill {
	out := []models.LuggageBill{}
	for _, b := range f.all() {
		if keep(b) {
			out = append(out, f.hydrate(b))
		}
	}
	return out
}

func (f *fakeBills) List(_ context.Context, flt repositories.ListFilter) ([]models.LuggageBill, error) {
	f.lastFilter = flt
	return f.filter(func(b models.LuggageBill) bool {
		return flt.AddedByID == 0 || b.AddedByID == flt.AddedByID
	}), nil
}

func (f *fakeBills) ListByTrip(_ context.Context, tripID int64) ([]models.LuggageBill, error) {
	return f.filter(func(b models.LuggageBill) bool { return b.TripID == tripID }), nil
}

func (f *fakeBills) ListByCustomer(_ context.Context, customerID int64) ([]models.LuggageBill, error) {
	return f.filter(func(b models.LuggageBill) bool { return b.CustomerID == customerID }), nil
}

func (f *fakeBills) ListByIDs(_ context.Context, ids []int64) ([]models.LuggageBill, error) {
	want := map[int64]bool{}
	for _, id := range ids {
		want[id] = true
	}
	return f.filter(func(b models.LuggageBill) bool { return want[b.ID] }), nil
}

func (f *fakeBills) GetByID(ctx context.Context, id int64) (models.LuggageBill, error) {
	b, err := f.memStore.GetByID(ctx, id)
	if err != nil {
		return b, err
	}
	return f.hydrate(b), nil
}

func (f *fakeBills) TotalForTrip(ctx context.Context, tripID int64) (models.Money, error) {
	bills, _ := f.ListByTrip(ctx, tripID)
	return models.TotalLuggageAmount(bills), nil
}

func (f *fakeBills) Update(ctx context.Context, b models.LuggageBill, replaceItems bool) (models.LuggageBill, error) {
	f.replaceCalls = append(f.replaceCalls, replaceItems)
	if !replaceItems {
		if old, ok := f.rows[b.ID]; ok {
			b.Items = old.Items
		}
	}
	return f.memStore.Update(ctx, b)
}

type fakeUsers struct{ *memStore[models.User] }

func newFakeUsers() fakeUsers {
	m := newMem("user", func(u models.User) int64 { return u.ID }, func(u *models.User, id int64) { u.ID = id })
	m.unique = func(u models.User) string { return u.Username }
	return fakeUsers{m}
}

func (f fakeUsers) GetByUsername(_ context.Context, username string) (models.User, error) {
	for _, u := range f.all() {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, domain.NotFoundError{Resource: "user"}
}

// Update keeps the stored hash when none is given, like the SQL statement.
func (f fakeUsers) Update(ctx context.Context, u models.User) (models.User, error) {
	if u.PasswordHash == "" {
		if old, ok := f.rows[u.ID]; ok {
			u.PasswordHash = old.PasswordHash
		}
	}
	return f.memStore.Update(ctx, u)
}
