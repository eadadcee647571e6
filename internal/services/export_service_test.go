package services

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"luggagebill/internal/domain"
	"luggagebill/internal/domain/models"
)

func TestExportBillsCSV(t *testing.T) {
	ctx := context.Background()
	bills := newFakeBills(newFakeWeights())
	created := time.Date(2024, 5, 3, 14, 20, 0, 0, time.UTC)
	mine, _ := bills.Create(ctx, models.LuggageBill{
		CustomerID: 1, TripID: 2, AddedByID: clerkA.UserID, Created: created, Updated: created.AddDate(0, 0, 1),
		Customer: &models.Customer{Fullname: "Ada Obi"},
		Trip:     &models.Trip{Name: "LAG-to-ENU-01-05-2024"},
		AddedBy:  &models.User{Username: "ada"},
		Items:    []models.Luggage{{WeightID: 1, Quantity: 2}},
	})
	theirs, _ := bills.Create(ctx, models.LuggageBill{CustomerID: 1, TripID: 2, AddedByID: clerkB.UserID})

	svc := ExportService{Bills: bills}
	data, name, err := svc.ExportBills(ctx, clerkA, []int64{mine.ID, theirs.ID, 999})
	if err != nil {
		t.Fatalf("ExportBills returned error: %v", err)
	}
	if name != "Luggage Bill.csv" {
		t.Fatalf("filename = %q", name)
	}

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("invalid csv: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header and one row, got %d records", len(records))
	}
	if strings.Join(records[0], ",") != "ID,Created,Updated,Customer,Trip,Added by" {
		t.Fatalf("unexpected header %v", records[0])
	}
	want := []string{idStr(mine.ID), "03/05/2024", "04/05/2024", "Ada Obi", "LAG-to-ENU-01-05-2024", "ada"}
	if strings.Join(records[1], "|") != strings.Join(want, "|") {
		t.Fatalf("row = %v, want %v", records[1], want)
	}
}

func TestExportBillsRequiresSelection(t *testing.T) {
	svc := ExportService{Bills: newFakeBills(newFakeWeights())}
	if _, _, err := svc.ExportBills(context.Background(), superuser, nil); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
