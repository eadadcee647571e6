package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"

	"luggagebill/internal/domain"
	"luggagebill/internal/domain/models"
)

func TestWeightScanParsesDecimalPrice(t *testing.T) {
	db, mock := newMock(t)
	repo := WeightRepository{DB: db}

	mock.ExpectQuery(`FROM weights WHERE id=\?`).WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "min_weight", "price", "created", "updated"}).
			AddRow(1, "2 kg", 2, "1500.50", fixedTime, fixedTime))

	w, err := repo.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if w.Price != models.Money(150050) || w.MinWeight != 2 {
		t.Fatalf("unexpected weight: %+v", w)
	}
}

func TestWeightCreateWritesDecimalString(t *testing.T) {
	db, mock := newMock(t)
	repo := WeightRepository{DB: db}

	mock.ExpectExec(`INSERT INTO weights`).
		WithArgs("3 kg", 3, "10.50", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(3, 1))

	w, err := repo.Create(context.Background(), models.Weight{Name: "3 kg", MinWeight: 3, Price: 1050})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if w.ID != 3 {
		t.Fatalf("expected id 3, got %d", w.ID)
	}
}

func TestBagTypeNullableDescription(t *testing.T) {
	db, mock := newMock(t)
	repo := BagTypeRepository{DB: db}

	mock.ExpectQuery(`FROM bag_types ORDER BY name ASC`).WithArgs(50, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "size", "description", "created", "updated"}).
			AddRow(1, "Duffel", "L", nil, fixedTime, fixedTime).
			AddRow(2, "Trolley", "M", "hard shell", fixedTime, fixedTime))

	got, err := repo.List(context.Background(), ListFilter{})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 bag types, got %d", len(got))
	}
	if got[0].Description != nil || got[0].String() != "Duffel - Large" {
		t.Fatalf("unexpected first bag type: %+v", got[0])
	}
	if got[1].Description == nil || *got[1].Description != "hard shell" {
		t.Fatalf("unexpected description: %+v", got[1].Description)
	}
}

func TestBusUpdateDuplicatePlateIsConflict(t *testing.T) {
	db, mock := newMock(t)
	repo := BusRepository{DB: db}

	mock.ExpectExec(`UPDATE buses SET plate_number=\?`).
		WithArgs("ABC-123-DEF", "Musa", nil, sqlmock.AnyArg(), int64(4)).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	_, err := repo.Update(context.Background(), models.Bus{ID: 4, PlateNumber: "ABC-123-DEF", DriverName: "Musa"})
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestParkLocationDuplicateLocationIsConflict(t *testing.T) {
	db, mock := newMock(t)
	repo := ParkLocationRepository{DB: db}
	loc := models.ParkLocation{ID: 6, StateID: 1, Location: "Jibowu", FullAddress: "Ikorodu Road", Contact: "08031234567"}
	dup := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'Jibowu' for key 'uq_park_locations_location'"}

	mock.ExpectExec(`INSERT INTO park_locations`).
		WithArgs(int64(1), "Jibowu", "Ikorodu Road", "08031234567", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(dup)
	mock.ExpectExec(`UPDATE park_locations SET state_id=\?`).
		WithArgs(int64(1), "Jibowu", "Ikorodu Road", "08031234567", sqlmock.AnyArg(), int64(6)).
		WillReturnError(dup)

	if _, err := repo.Create(context.Background(), loc); !domain.IsConflict(err) {
		t.Fatalf("Create: expected conflict, got %v", err)
	}
	if _, err := repo.Update(context.Background(), loc); !domain.IsConflict(err) {
		t.Fatalf("Update: expected conflict, got %v", err)
	}
}

func TestStateListCarriesParkLocationCount(t *testing.T) {
	db, mock := newMock(t)
	repo := StateRepository{DB: db}

	mock.ExpectQuery(`AS park_locations_count FROM states s ORDER BY s.created ASC`).WithArgs(50, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "short_code", "created", "updated", "park_locations_count"}).
			AddRow(1, "Lagos", "LAG", fixedTime, fixedTime, 3))

	got, err := repo.List(context.Background(), ListFilter{})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(got) != 1 || got[0].ParkLocationsCount != 3 {
		t.Fatalf("unexpected states: %+v", got)
	}
}

func TestParkLocationListFiltersByState(t *testing.T) {
	db, mock := newMock(t)
	repo := ParkLocationRepository{DB: db}

	mock.ExpectQuery(`WHERE p.state_id = \? AND \(p.full_address LIKE \? OR p.location LIKE \?\)`).
		WithArgs(int64(2), "%jibowu%", "%jibowu%", 50, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "state_id", "location", "full_address", "contact", "created", "updated", "name", "short_code"}).
			AddRow(5, 2, "Jibowu", "1 Ikorodu Rd", "0803", fixedTime, fixedTime, "Lagos", "LAG"))

	got, err := repo.List(context.Background(), ListFilter{StateID: 2, Query: "jibowu"})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(got) != 1 || got[0].State == nil || got[0].State.ShortCode != "LAG" || got[0].State.ID != 2 {
		t.Fatalf("unexpected park locations: %+v", got)
	}
}

func TestParkLocationMissingStateIsValidation(t *testing.T) {
	db, mock := newMock(t)
	repo := ParkLocationRepository{DB: db}

	mock.ExpectExec(`INSERT INTO park_locations`).
		WillReturnError(&mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row"})

	_, err := repo.Create(context.Background(), models.ParkLocation{StateID: 404, Location: "Nowhere"})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
