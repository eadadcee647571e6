package seed

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/brianvoe/gofakeit/v7"

	intconfig "luggagebill/internal/config"
	"luggagebill/internal/domain/models"
)

func TestGeneratedContactsPassValidation(t *testing.T) {
	f := gofakeit.New(42)
	for i := 0; i < 200; i++ {
		phone := PhoneNumber(f)
		if err := models.ValidatePhoneNumber("phone", phone); err != nil {
			t.Fatalf("generated phone %q rejected: %v", phone, err)
		}
		plate := PlateNumber(f)
		if err := models.ValidatePlateNumber("plate", plate); err != nil {
			t.Fatalf("generated plate %q rejected: %v", plate, err)
		}
	}
}

func TestStatesAndShortCodes(t *testing.T) {
	if len(States) != 37 {
		t.Fatalf("expected 37 states, got %d", len(States))
	}
	cases := map[string]string{"Lagos": "LAG", "Akwa Ibom": "AKW", "FCT": "FCT", "Imo": "IMO"}
	for name, want := range cases {
		if got := ShortCode(name); got != want {
			t.Fatalf("ShortCode(%q) = %q, want %q", name, got, want)
		}
	}
	for _, name := range States {
		st := models.State{Name: name, ShortCode: ShortCode(name)}
		if err := st.Validate(); err != nil {
			t.Fatalf("state %q invalid: %v", name, err)
		}
	}
}

func TestPickPairIsDistinct(t *testing.T) {
	f := gofakeit.New(7)
	for i := 0; i < 500; i++ {
		a, b := pickPair(f, 2+i%5)
		if a == b {
			t.Fatalf("pickPair returned equal indexes %d", a)
		}
		if a < 0 || b < 0 || a >= 2+i%5 || b >= 2+i%5 {
			t.Fatalf("pickPair out of range: %d, %d", a, b)
		}
	}
}

func TestTruncateKeepsRunes(t *testing.T) {
	if got := truncate("  Ọ̀yọ́ Road  ", 3); len([]rune(got)) > 3 {
		t.Fatalf("truncate returned %q", got)
	}
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("truncate changed %q", got)
	}
}

func TestExistingTiersAndBagTypesAreRecognised(t *testing.T) {
	weights := weightNames([]models.Weight{{Name: "Two Kilogramme"}, {Name: "Five Kilogramme"}})
	missing := 0
	for _, tier := range WeightTiers {
		if !weights[tier.Name] {
			missing++
		}
	}
	if missing != 2 {
		t.Fatalf("expected 2 missing tiers, got %d", missing)
	}

	bags := bagTypeKeys([]models.BagType{{Name: "Backpack", Size: models.BagSizeSmall}})
	if !bags[bagTypeKey("Backpack", models.BagSizeSmall)] {
		t.Fatalf("existing bag type not recognised")
	}
	if bags[bagTypeKey("Backpack", models.BagSizeLarge)] {
		t.Fatalf("other size of an existing bag treated as present")
	}
}

func TestRerunDoesNotDuplicateTiersOrBagTypes(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	prev := intconfig.DB
	intconfig.DB = db
	t.Cleanup(func() {
		intconfig.DB = prev
		db.Close()
	})

	now := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	weights := sqlmock.NewRows([]string{"id", "name", "min_weight", "price", "created", "updated"})
	for i, tier := range WeightTiers {
		weights.AddRow(i+1, tier.Name, tier.MinWeight, "1000.00", now, now)
	}
	mock.ExpectQuery(`FROM weights`).WillReturnRows(weights)

	bags := sqlmock.NewRows([]string{"id", "name", "size", "description", "created", "updated"})
	id := 0
	for _, name := range BagNames {
		for _, size := range models.BagSizes {
			id++
			bags.AddRow(id, name, string(size), nil, now, now)
		}
	}
	mock.ExpectQuery(`FROM bag_types`).WillReturnRows(bags)

	s := New("test", gofakeit.New(1), nil)
	ctx := context.Background()
	if n, err := s.seedWeights(ctx); err != nil || n != 0 {
		t.Fatalf("seedWeights = %d, %v; want 0 new tiers", n, err)
	}
	if n, err := s.seedBagTypes(ctx); err != nil || n != 0 {
		t.Fatalf("seedBagTypes = %d, %v; want 0 new bag types", n, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
