package models

import (
	"time"

	"luggagebill/internal/domain"
)

// LuggageBill bills one customer's luggage on one trip. It owns its items.
type LuggageBill struct {
	ID         int64     `json:"id"`
	CustomerID int64     `json:"customer_id"`
	TripID     int64     `json:"trip_id"`
	AddedByID  int64     `json:"added_by_id"`
	Created    time.Time `json:"created"`
	Updated    time.Time `json:"updated"`

	Customer *Customer `json:"customer,omitempty"`
	Trip     *Trip     `json:"trip,omitempty"`
	AddedBy  *User     `json:"added_by,omitempty"`
	Items    []Luggage `json:"items"`
}

func (b LuggageBill) Validate() error {
	if err := firstError(
		requireRef("customer_id", b.CustomerID),
		requireRef("trip_id", b.TripID),
	); err != nil {
		return err
	}
	for i, item := range b.Items {
		if err := item.Validate(); err != nil {
			if ve, ok := err.(domain.ValidationError); ok {
				ve.Field = itemField(i, ve.Field)
				return ve
			}
			return err
		}
	}
	return nil
}

// TotalAmount is the sum of the item amounts.
func (b LuggageBill) TotalAmount() Money {
	var total Money
	for _, item := range b.Items {
		total += item.Amount()
	}
	return total
}

// TotalWeightPerCustomer sums the minimum weight of each item's tier.
// Quantity is deliberately not applied, unlike TotalAmount.
func (b LuggageBill) TotalWeightPerCustomer() int {
	total := 0
	for _, item := range b.Items {
		if item.Weight != nil {
			total += item.Weight.MinWeight
		}
	}
	return total
}

// AttributeTo sets AddedByID once; an existing attribution is kept.
func (b *LuggageBill) AttributeTo(actor domain.Actor) {
	if b.AddedByID == 0 {
		b.AddedByID = actor.UserID
	}
}

// CanViewBill reports whether actor may see bill in a listing:
// superusers see every bill, other staff only the bills they added.
func CanViewBill(actor domain.Actor, bill LuggageBill) bool {
	if !actor.Authenticated() {
		return false
	}
	if actor.IsSuperuser {
		return true
	}
	return bill.AddedByID == actor.UserID
}

// VisibleBills keeps the bills actor may see, preserving order.
func VisibleBills(actor domain.Actor, bills []LuggageBill) []LuggageBill {
	out := make([]LuggageBill, 0, len(bills))
	for _, b := range bills {
		if CanViewBill(actor, b) {
			out = append(out, b)
		}
	}
	return out
}

func (b LuggageBill) String() string {
	if b.Customer != nil {
		return "Luggage Bill for " + b.Customer.Fullname
	}
	return "Luggage Bill"
}
