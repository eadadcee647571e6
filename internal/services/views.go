package services

import "luggagebill/internal/domain/models"

// ItemView is a line item with its computed amount.
type ItemView struct {
	models.Luggage
	Amount models.Money `json:"amount"`
}

// BillView is a bill with its computed totals.
type BillView struct {
	models.LuggageBill
	Items                  []ItemView   `json:"items"`
	TotalAmount            models.Money `json:"total_amount"`
	TotalWeightPerCustomer int          `json:"total_weight_per_customer"`
}

func NewBillView(b models.LuggageBill) BillView {
	items := make([]ItemView, 0, len(b.Items))
	for _, it := range b.Items {
		items = append(items, ItemView{Luggage: it, Amount: it.Amount()})
	}
	return BillView{
		LuggageBill:            b,
		Items:                  items,
		TotalAmount:            b.TotalAmount(),
		TotalWeightPerCustomer: b.TotalWeightPerCustomer(),
	}
}

func billViews(bills []models.LuggageBill) []BillView {
	out := make([]BillView, 0, len(bills))
	for _, b := range bills {
		out = append(out, NewBillView(b))
	}
	return out
}

// TripDetail is a trip with the bills visible to the actor and the
// luggage total of every bill on the trip.
type TripDetail struct {
	models.Trip
	Bills              []BillView   `json:"bills"`
	TotalLuggageAmount models.Money `json:"total_luggage_amount"`
}

// CustomerDetail is a customer with the bills visible to the actor.
type CustomerDetail struct {
	models.Customer
	Bills []BillView `json:"bills"`
}
