package utils

import (
	"testing"
	"time"
)

func TestTripAndExportDates(t *testing.T) {
	d := time.Date(2024, time.May, 1, 23, 59, 0, 0, time.UTC)
	if got := FormatTripDate(d); got != "01-05-2024" {
		t.Fatalf("trip date = %s", got)
	}
	if got := FormatExportDate(d); got != "01/05/2024" {
		t.Fatalf("export date = %s", got)
	}
}

func TestSplitIDList(t *testing.T) {
	got := SplitIDList("3, 1;x,0,-2\n7")
	want := []int64{3, 1, 7}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v want %v", got, want)
		}
	}
}
