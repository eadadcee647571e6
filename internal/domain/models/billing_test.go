package models

import (
	"testing"
	"time"

	"luggagebill/internal/domain"
)

func TestTripName(t *testing.T) {
	date := time.Date(2024, time.May, 1, 15, 30, 0, 0, time.UTC)
	if got := TripName("LAG", "ENU", date); got != "LAG-to-ENU-01-05-2024" {
		t.Fatalf("unexpected trip name %q", got)
	}
}

func TestTripDeriveNameOverridesCaller(t *testing.T) {
	trip := Trip{
		Name:          "caller supplied",
		BusID:         1,
		DepartureID:   1,
		DestinationID: 2,
		DateOfJourney: time.Date(2024, time.December, 25, 8, 0, 0, 0, time.Local),
		Departure:     &ParkLocation{ID: 1, State: &State{ShortCode: "LAG"}},
		Destination:   &ParkLocation{ID: 2, State: &State{ShortCode: "ENU"}},
	}
	if err := trip.DeriveName(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trip.Name != "LAG-to-ENU-25-12-2024" {
		t.Fatalf("name not derived, got %q", trip.Name)
	}
}

func TestTripSameDepartureAndDestination(t *testing.T) {
	trip := Trip{BusID: 1, DepartureID: 5, DestinationID: 5, DateOfJourney: time.Now()}
	err := trip.Validate()
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}

	trip.DestinationID = 6
	if err := trip.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLuggageBillTotals(t *testing.T) {
	tierA := &Weight{Name: "Two", MinWeight: 2, Price: 1050}
	tierB := &Weight{Name: "Five", MinWeight: 5, Price: 1050}
	bill := LuggageBill{
		Items: []Luggage{
			{Quantity: 2, Weight: tierA},
			{Quantity: 3, Weight: tierB},
		},
	}

	if got := bill.Items[0].Amount(); got != 2100 {
		t.Fatalf("item amount = %s, want 21.00", got)
	}
	if got := bill.TotalAmount(); got != 5250 {
		t.Fatalf("total amount = %s, want 52.50", got)
	}
	if got := bill.TotalAmount().String(); got != "52.50" {
		t.Fatalf("total amount string = %s", got)
	}
	// min weights are summed without quantity
	if got := bill.TotalWeightPerCustomer(); got != 7 {
		t.Fatalf("total weight = %d, want 7", got)
	}
}

func TestLuggageBillTotalsEmpty(t *testing.T) {
	var bill LuggageBill
	if bill.TotalAmount() != 0 || bill.TotalWeightPerCustomer() != 0 {
		t.Fatalf("expected zero totals for bill without items")
	}
}

func TestTotalLuggageAmount(t *testing.T) {
	first := LuggageBill{Items: []Luggage{{Quantity: 5, Weight: &Weight{Price: 1050}}}}
	second := LuggageBill{Items: []Luggage{{Quantity: 1, Weight: &Weight{Price: 10000}}}}

	if got := TotalLuggageAmount([]LuggageBill{first, second}); got != 15250 {
		t.Fatalf("trip total = %s, want 152.50", got)
	}
	if got := TotalLuggageAmount(nil); got != 0 {
		t.Fatalf("trip total without bills = %s, want 0", got)
	}
}

func TestLuggageQuantity(t *testing.T) {
	if got := QuantityOrDefault(nil); got != DefaultQuantity {
		t.Fatalf("default quantity = %d, want 1", got)
	}
	zero := 0
	if got := QuantityOrDefault(&zero); got != 0 {
		t.Fatalf("explicit zero replaced with %d", got)
	}

	cases := []struct {
		qty   int
		valid bool
	}{
		{-1, false},
		{0, false},
		{1, true},
		{MaxQuantity, true},
		{MaxQuantity + 1, false},
	}
	for _, tc := range cases {
		item := Luggage{WeightID: 1, BagTypeID: 1, Quantity: tc.qty}
		err := item.Validate()
		if tc.valid && err != nil {
			t.Fatalf("quantity %d: unexpected error %v", tc.qty, err)
		}
		if !tc.valid && !domain.IsValidation(err) {
			t.Fatalf("quantity %d: expected validation error, got %v", tc.qty, err)
		}
	}
}

func TestLuggageAmountAtLimits(t *testing.T) {
	item := Luggage{Quantity: MaxQuantity, Weight: &Weight{Price: MaxPrice}}
	if got := item.Amount(); got <= 0 || got != MaxPrice*MaxQuantity {
		t.Fatalf("amount at limits = %d", got)
	}
}

func TestBillItemValidationField(t *testing.T) {
	bill := LuggageBill{CustomerID: 1, TripID: 1, Items: []Luggage{
		{WeightID: 1, BagTypeID: 1, Quantity: 1},
		{WeightID: 1, BagTypeID: 1, Quantity: 0},
	}}
	err := bill.Validate()
	ve, ok := err.(domain.ValidationError)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if ve.Field != "items[1].quantity" {
		t.Fatalf("unexpected field %s", ve.Field)
	}
}

func TestCanViewBill(t *testing.T) {
	admin := domain.Actor{UserID: 1, IsStaff: true, IsSuperuser: true}
	staff := domain.Actor{UserID: 2, IsStaff: true}
	other := domain.Actor{UserID: 3, IsStaff: true}

	bills := []LuggageBill{
		{ID: 10, AddedByID: 2},
		{ID: 11, AddedByID: 3},
		{ID: 12, AddedByID: 2},
	}

	if got := VisibleBills(admin, bills); len(got) != 3 {
		t.Fatalf("superuser should see all bills, got %d", len(got))
	}

	got := VisibleBills(staff, bills)
	if len(got) != 2 || got[0].ID != 10 || got[1].ID != 12 {
		t.Fatalf("staff should only see own bills, got %+v", got)
	}
	if len(VisibleBills(other, bills)) != 1 {
		t.Fatalf("other staff should see one bill")
	}
	if CanViewBill(domain.Actor{}, bills[0]) {
		t.Fatalf("anonymous actor must not see bills")
	}
}

func TestAttributeToIsSetOnce(t *testing.T) {
	bill := LuggageBill{}
	bill.AttributeTo(domain.Actor{UserID: 7})
	if bill.AddedByID != 7 {
		t.Fatalf("added_by not set, got %d", bill.AddedByID)
	}
	bill.AttributeTo(domain.Actor{UserID: 9})
	if bill.AddedByID != 7 {
		t.Fatalf("added_by overwritten, got %d", bill.AddedByID)
	}
}
