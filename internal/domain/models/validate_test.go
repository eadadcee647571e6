package models

import (
	"testing"

	"luggagebill/internal/domain"
)

func TestValidatePhoneNumber(t *testing.T) {
	for _, prefix := range PhonePrefixes {
		phone := prefix + "1234567"
		if err := ValidatePhoneNumber("phone", phone); err != nil {
			t.Fatalf("expected %s to be valid, got %v", phone, err)
		}
	}

	invalid := []string{
		"08011234567",  // unknown prefix, 11 digits
		"07011234567",  // unknown prefix, 11 digits
		"12345678901",  // 11 digits, no prefix
		"0803123456",   // 10 digits
		"080312345678", // 12 digits
		"0803123456a",
		"",
	}
	for _, phone := range invalid {
		err := ValidatePhoneNumber("phone", phone)
		if err == nil {
			t.Fatalf("expected %q to be rejected", phone)
		}
		if !domain.IsValidation(err) {
			t.Fatalf("expected validation error for %q, got %T", phone, err)
		}
	}
}

func TestValidatePlateNumber(t *testing.T) {
	tests := []struct {
		plate string
		ok    bool
	}{
		{"ABC-123-DEF", true},
		{"LAG-001-XYZ", true},
		{"123-ABC-456", false},
		{"abc-123-def", false},
		{"ABC123DEF", false},
		{"ABCD-123-DEF", false},
		{"ABC-12-DEF", false},
		{"", false},
	}
	for _, tt := range tests {
		err := ValidatePlateNumber("plate_number", tt.plate)
		if tt.ok && err != nil {
			t.Fatalf("%q: unexpected error %v", tt.plate, err)
		}
		if !tt.ok && err == nil {
			t.Fatalf("%q: expected error", tt.plate)
		}
	}
}

func TestWeightValidate(t *testing.T) {
	tests := []struct {
		name   string
		weight Weight
		field  string
	}{
		{"valid", Weight{Name: "Two Kilogramme", MinWeight: 2, Price: 1050}, ""},
		{"smallest", Weight{Name: "Tiny", MinWeight: 1, Price: 1}, ""},
		{"zero min weight", Weight{Name: "Zero", MinWeight: 0, Price: 1050}, "min_weight"},
		{"negative min weight", Weight{Name: "Neg", MinWeight: -3, Price: 1050}, "min_weight"},
		{"zero price", Weight{Name: "Free", MinWeight: 2, Price: 0}, "price"},
		{"negative price", Weight{Name: "Neg", MinWeight: 2, Price: -100}, "price"},
		{"missing name", Weight{MinWeight: 2, Price: 100}, "name"},
		{"long name", Weight{Name: "This name is far too long", MinWeight: 2, Price: 100}, "name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.weight.Validate()
			if tt.field == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			ve, ok := err.(domain.ValidationError)
			if !ok {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Field != tt.field {
				t.Fatalf("expected field %s, got %s", tt.field, ve.Field)
			}
		})
	}
}

func TestBagTypeSize(t *testing.T) {
	for _, size := range []BagSize{"S", "M", "L"} {
		bt := BagType{Name: "Backpack", Size: size}
		if err := bt.Validate(); err != nil {
			t.Fatalf("size %s: unexpected error %v", size, err)
		}
	}
	for _, size := range []BagSize{"XL", "s", "", "Small"} {
		bt := BagType{Name: "Backpack", Size: size}
		if err := bt.Validate(); err == nil {
			t.Fatalf("size %q: expected error", size)
		}
	}

	bt := BagType{Name: "Suitcase", Size: BagSizeLarge}
	if got := bt.String(); got != "Suitcase - Large" {
		t.Fatalf("unexpected label %q", got)
	}
}

func TestCustomerValidate(t *testing.T) {
	c := Customer{
		Fullname:             "Ada Obi",
		Email:                "ada@example.com",
		Address:              "12 Marina Road",
		NextOfKin:            "Chidi Obi",
		NextOfKinPhoneNumber: "08031234567",
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := c
	bad.NextOfKinPhoneNumber = "08001234567"
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected phone validation error")
	}

	bad = c
	bad.Email = "not-an-email"
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected email validation error")
	}
}

func TestBusValidate(t *testing.T) {
	zero := 0
	max := 300
	if err := (Bus{PlateNumber: "ABC-123-DEF", DriverName: "Musa", MaxLuggageWeight: &max}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (Bus{PlateNumber: "ABC-123-DEF", DriverName: "Musa"}).Validate(); err != nil {
		t.Fatalf("max luggage weight is optional, got %v", err)
	}
	if err := (Bus{PlateNumber: "ABC-123-DEF", DriverName: "Musa", MaxLuggageWeight: &zero}).Validate(); err == nil {
		t.Fatalf("expected error for zero max luggage weight")
	}
	if err := (Bus{PlateNumber: "123-ABC-456", DriverName: "Musa"}).Validate(); err == nil {
		t.Fatalf("expected plate validation error")
	}
}
