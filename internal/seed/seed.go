// Package seed fills an empty database with realistic demo data.
package seed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"go.uber.org/zap"

	"luggagebill/internal/domain"
	"luggagebill/internal/domain/models"
	"luggagebill/internal/repositories"
	"luggagebill/internal/services"
)

// States are the 36 Nigerian states plus the Federal Capital Territory.
var States = []string{
	"Abia", "Adamawa", "Akwa Ibom", "Anambra", "Bauchi", "Bayelsa", "Benue", "Borno",
	"Cross River", "Delta", "Ebonyi", "Edo", "Ekiti", "Enugu", "Gombe", "Imo",
	"Jigawa", "Kaduna", "Kano", "Katsina", "Kebbi", "Kogi", "Kwara", "Lagos",
	"Nasarawa", "Niger", "Ogun", "Ondo", "Osun", "Oyo", "Plateau", "Rivers",
	"Sokoto", "Taraba", "Yobe", "Zamfara", "FCT",
}

// WeightTiers maps tier names to their minimum weight in kg.
var WeightTiers = []struct {
	Name      string
	MinWeight int
}{
	{"Two Kilogramme", 2},
	{"Three Kilogramme", 3},
	{"Four Kilogramme", 4},
	{"Five Kilogramme", 5},
}

var BagNames = []string{"Backpack", "Suitcase", "Duffel bag", "Tote bag", "Ghana-Must-Go"}

const (
	AdminUsername = "admin"
	AdminEmail    = "admin@admin.com"
	AdminPassword = "admin"
)

type Options struct {
	Customers     int
	Buses         int
	ParkLocations int
	Trips         int
	Bills         int
}

func DefaultOptions() Options {
	return Options{Customers: 100, Buses: 20, ParkLocations: 50, Trips: 50, Bills: 100}
}

// Summary counts the records created by one run.
type Summary struct {
	Customers     int `json:"customers"`
	Buses         int `json:"buses"`
	States        int `json:"states"`
	ParkLocations int `json:"park_locations"`
	Weights       int `json:"weights"`
	BagTypes      int `json:"bag_types"`
	Trips         int `json:"trips"`
	Bills         int `json:"bills"`
}

// Seeder writes through the services so every record passes validation.
type Seeder struct {
	Users     services.UserService
	Accounts  services.UserStore
	Customers services.CustomerService
	Buses     services.BusService
	Locations services.LocationService
	Pricing   services.PricingService
	Trips     services.TripService
	Bills     services.BillService
	Fake      *gofakeit.Faker
	Log       *zap.Logger
	Now       func() time.Time
}

// New wires a Seeder on the shared database handle.
func New(requestID string, fake *gofakeit.Faker, log *zap.Logger) Seeder {
	if fake == nil {
		fake = gofakeit.New(0)
	}
	if log == nil {
		log = zap.NewNop()
	}
	users := repositories.UserRepository{}
	customers := repositories.CustomerRepository{}
	buses := repositories.BusRepository{}
	states := repositories.StateRepository{}
	parks := repositories.ParkLocationRepository{}
	weights := repositories.WeightRepository{}
	bagTypes := repositories.BagTypeRepository{}
	trips := repositories.TripRepository{}
	bills := repositories.LuggageBillRepository{}
	return Seeder{
		Users:     services.UserService{Users: users, RequestID: requestID},
		Accounts:  users,
		Customers: services.CustomerService{Customers: customers, Bills: bills, RequestID: requestID},
		Buses:     services.BusService{Buses: buses, Trips: trips, RequestID: requestID},
		Locations: services.LocationService{States: states, ParkLocations: parks, Trips: trips, RequestID: requestID},
		Pricing:   services.PricingService{Weights: weights, BagTypes: bagTypes, RequestID: requestID},
		Trips:     services.TripService{Trips: trips, Buses: buses, ParkLocations: parks, Bills: bills, RequestID: requestID},
		Bills: services.BillService{
			Bills: bills, Customers: customers, Trips: trips, Weights: weights, BagTypes: bagTypes,
			RequestID: requestID,
		},
		Fake: fake,
		Log:  log,
	}
}

func (s Seeder) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func all() repositories.ListFilter {
	return repositories.ListFilter{Page: domain.Pagination{Page: 1, PageSize: domain.MaxPageSize}}
}

// skip reports whether err only means the record already exists.
func skip(err error) bool {
	return domain.IsConflict(err)
}

// Run seeds every table. Existing rows with the same unique keys are left alone.
func (s Seeder) Run(ctx context.Context, opts Options) (Summary, error) {
	var sum Summary

	admin, err := s.ensureAdmin(ctx)
	if err != nil {
		return sum, fmt.Errorf("superuser: %w", err)
	}

	steps := []struct {
		name string
		fn   func(context.Context) (int, error)
		dst  *int
	}{
		{"customers", func(ctx context.Context) (int, error) { return s.seedCustomers(ctx, opts.Customers) }, &sum.Customers},
		{"buses", func(ctx context.Context) (int, error) { return s.seedBuses(ctx, opts.Buses) }, &sum.Buses},
		{"states", s.seedStates, &sum.States},
		{"park locations", func(ctx context.Context) (int, error) { return s.seedParkLocations(ctx, opts.ParkLocations) }, &sum.ParkLocations},
		{"weights", s.seedWeights, &sum.Weights},
		{"bag types", s.seedBagTypes, &sum.BagTypes},
		{"trips", func(ctx context.Context) (int, error) { return s.seedTrips(ctx, opts.Trips) }, &sum.Trips},
		{"luggage bills", func(ctx context.Context) (int, error) { return s.seedBills(ctx, admin, opts.Bills) }, &sum.Bills},
	}
	for _, step := range steps {
		s.Log.Info("populating", zap.String("table", step.name))
		n, err := step.fn(ctx)
		if err != nil {
			return sum, fmt.Errorf("%s: %w", step.name, err)
		}
		*step.dst = n
	}
	return sum, nil
}

func (s Seeder) ensureAdmin(ctx context.Context) (domain.Actor, error) {
	u, err := s.Accounts.GetByUsername(ctx, AdminUsername)
	if err == nil {
		s.Log.Info("superuser already exists")
		return u.Actor(), nil
	}
	if !domain.IsNotFound(err) {
		return domain.Actor{}, err
	}
	u, err = s.Users.Create(ctx, services.UserInput{
		Username:    AdminUsername,
		Email:       AdminEmail,
		Password:    AdminPassword,
		IsStaff:     true,
		IsSuperuser: true,
	})
	if err != nil {
		return domain.Actor{}, err
	}
	s.Log.Info("superuser created", zap.Int64("user_id", u.ID))
	return u.Actor(), nil
}

func (s Seeder) seedCustomers(ctx context.Context, n int) (int, error) {
	created := 0
	for i := 0; i < n; i++ {
		_, err := s.Customers.Create(ctx, models.Customer{
			Fullname:             s.Fake.Name(),
			Email:                s.Fake.Email(),
			Address:              truncate(s.Fake.Address().Address, 100),
			NextOfKin:            s.Fake.Name(),
			NextOfKinPhoneNumber: PhoneNumber(s.Fake),
		})
		if err != nil {
			if skip(err) {
				continue
			}
			return created, err
		}
		created++
	}
	return created, nil
}

func (s Seeder) seedBuses(ctx context.Context, n int) (int, error) {
	created := 0
	for i := 0; i < n; i++ {
		maxWeight := s.Fake.IntRange(100, 500)
		_, err := s.Buses.Create(ctx, models.Bus{
			PlateNumber:      PlateNumber(s.Fake),
			DriverName:       s.Fake.Name(),
			MaxLuggageWeight: &maxWeight,
		})
		if err != nil {
			if skip(err) {
				continue
			}
			return created, err
		}
		created++
	}
	return created, nil
}

func (s Seeder) seedStates(ctx context.Context) (int, error) {
	created := 0
	for _, name := range States {
		_, err := s.Locations.CreateState(ctx, models.State{Name: name, ShortCode: ShortCode(name)})
		if err != nil {
			if skip(err) {
				continue
			}
			return created, err
		}
		created++
	}
	return created, nil
}

func (s Seeder) seedParkLocations(ctx context.Context, n int) (int, error) {
	states, err := s.Locations.ListStates(ctx, all())
	if err != nil {
		return 0, err
	}
	if len(states) == 0 {
		return 0, nil
	}
	created := 0
	for i := 0; i < n; i++ {
		st := states[s.Fake.IntRange(0, len(states)-1)]
		_, err := s.Locations.CreateParkLocation(ctx, models.ParkLocation{
			StateID:     st.ID,
			Location:    truncate(s.Fake.City(), 50),
			FullAddress: truncate(s.Fake.Address().Address, 255),
			Contact:     s.Fake.Phone(),
		})
		if err != nil {
			if skip(err) {
				continue
			}
			return created, err
		}
		created++
	}
	return created, nil
}

func (s Seeder) seedWeights(ctx context.Context) (int, error) {
	existing, err := s.Pricing.AllWeights(ctx)
	if err != nil {
		return 0, err
	}
	have := weightNames(existing)
	created := 0
	for _, tier := range WeightTiers {
		if have[tier.Name] {
			continue
		}
		_, err := s.Pricing.CreateWeight(ctx, models.Weight{
			Name:      tier.Name,
			MinWeight: tier.MinWeight,
			Price:     models.Money(s.Fake.IntRange(500, 5000) * 100),
		})
		if err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

func (s Seeder) seedBagTypes(ctx context.Context) (int, error) {
	existing, err := s.Pricing.ListBagTypes(ctx, all())
	if err != nil {
		return 0, err
	}
	have := bagTypeKeys(existing)
	created := 0
	for _, name := range BagNames {
		description := s.Fake.Sentence(12)
		for _, size := range models.BagSizes {
			if have[bagTypeKey(name, size)] {
				continue
			}
			_, err := s.Pricing.CreateBagType(ctx, models.BagType{Name: name, Size: size, Description: &description})
			if err != nil {
				return created, err
			}
			created++
		}
	}
	return created, nil
}

// weightNames indexes tiers by name; weights have no unique key in storage.
func weightNames(weights []models.Weight) map[string]bool {
	out := make(map[string]bool, len(weights))
	for _, w := range weights {
		out[w.Name] = true
	}
	return out
}

func bagTypeKey(name string, size models.BagSize) string {
	return name + "|" + string(size)
}

// bagTypeKeys indexes bag types by name and size; bag_types has no unique key.
func bagTypeKeys(bagTypes []models.BagType) map[string]bool {
	out := make(map[string]bool, len(bagTypes))
	for _, b := range bagTypes {
		out[bagTypeKey(b.Name, b.Size)] = true
	}
	return out
}

func (s Seeder) seedTrips(ctx context.Context, n int) (int, error) {
	buses, err := s.Buses.List(ctx, all())
	if err != nil {
		return 0, err
	}
	parks, err := s.Locations.ListParkLocations(ctx, all())
	if err != nil {
		return 0, err
	}
	if len(buses) == 0 || len(parks) < 2 {
		return 0, nil
	}

	now := s.now()
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	created := 0
	for i := 0; i < n; i++ {
		departure, destination := pickPair(s.Fake, len(parks))
		_, err := s.Trips.Create(ctx, models.Trip{
			BusID:         buses[s.Fake.IntRange(0, len(buses)-1)].ID,
			DepartureID:   parks[departure].ID,
			DestinationID: parks[destination].ID,
			DateOfJourney: s.Fake.DateRange(yearStart, now),
		})
		if err != nil {
			if skip(err) {
				continue
			}
			return created, err
		}
		created++
	}
	return created, nil
}

func (s Seeder) seedBills(ctx context.Context, admin domain.Actor, n int) (int, error) {
	customers, err := s.Customers.List(ctx, all())
	if err != nil {
		return 0, err
	}
	trips, err := s.Trips.List(ctx, all())
	if err != nil {
		return 0, err
	}
	weights, err := s.Pricing.AllWeights(ctx)
	if err != nil {
		return 0, err
	}
	bagTypes, err := s.Pricing.ListBagTypes(ctx, all())
	if err != nil {
		return 0, err
	}
	if len(customers) == 0 || len(trips) == 0 || len(weights) == 0 || len(bagTypes) == 0 {
		return 0, nil
	}

	created := 0
	for i := 0; i < n; i++ {
		items := make([]services.ItemInput, s.Fake.IntRange(1, 3))
		for j := range items {
			qty := s.Fake.IntRange(1, 3)
			items[j] = services.ItemInput{
				WeightID:  weights[s.Fake.IntRange(0, len(weights)-1)].ID,
				BagTypeID: bagTypes[s.Fake.IntRange(0, len(bagTypes)-1)].ID,
				Quantity:  &qty,
			}
		}
		_, err := s.Bills.Create(ctx, admin, services.BillInput{
			CustomerID: customers[s.Fake.IntRange(0, len(customers)-1)].ID,
			TripID:     trips[s.Fake.IntRange(0, len(trips)-1)].ID,
			Items:      &items,
		})
		if err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

// PhoneNumber returns an accepted prefix followed by 7 random digits.
func PhoneNumber(f *gofakeit.Faker) string {
	return f.RandomString(models.PhonePrefixes) + f.Numerify("#######")
}

// PlateNumber returns a plate in the AAA-111-AAA format.
func PlateNumber(f *gofakeit.Faker) string {
	return fmt.Sprintf("%s-%d-%s",
		strings.ToUpper(f.LetterN(3)), f.IntRange(100, 999), strings.ToUpper(f.LetterN(3)))
}

// ShortCode is the first three letters of a state name, upper-cased.
func ShortCode(name string) string {
	r := []rune(strings.TrimSpace(name))
	if len(r) > 3 {
		r = r[:3]
	}
	return strings.ToUpper(string(r))
}

// pickPair returns two distinct indexes below n; n must be at least 2.
func pickPair(f *gofakeit.Faker, n int) (int, int) {
	a := f.IntRange(0, n-1)
	b := f.IntRange(0, n-2)
	if b >= a {
		b++
	}
	return a, b
}

func truncate(s string, max int) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) > max {
		r = r[:max]
	}
	return strings.TrimSpace(string(r))
}
