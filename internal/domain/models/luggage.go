package models

import (
	"time"

	"luggagebill/internal/domain"
)

// Luggage is a bill line item: Quantity bags of one type at one weight tier.
type Luggage struct {
	ID            int64     `json:"id"`
	LuggageBillID int64     `json:"luggagebill_id"`
	WeightID      int64     `json:"weight_id"`
	BagTypeID     int64     `json:"bag_type_id"`
	Quantity      int       `json:"quantity"`
	Created       time.Time `json:"created"`
	Updated       time.Time `json:"updated"`

	Weight  *Weight  `json:"weight,omitempty"`
	BagType *BagType `json:"bag_type,omitempty"`
}

const (
	DefaultQuantity = 1
	// MaxQuantity keeps Amount within int64 at MaxPrice and fits INT UNSIGNED.
	MaxQuantity = 10_000
)

// QuantityOrDefault applies DefaultQuantity when the caller omitted the quantity.
// An explicit value, including 0, is kept for Validate to judge.
func QuantityOrDefault(q *int) int {
	if q == nil {
		return DefaultQuantity
	}
	return *q
}

func (l Luggage) Validate() error {
	if err := firstError(
		requireRef("weight_id", l.WeightID),
		requireRef("bag_type_id", l.BagTypeID),
	); err != nil {
		return err
	}
	if l.Quantity < 1 {
		return domain.ValidationError{Field: "quantity", Msg: "must be at least 1"}
	}
	if l.Quantity > MaxQuantity {
		return domain.ValidationError{Field: "quantity", Msg: "must be at most 10000"}
	}
	return nil
}

// Amount is the tier price times quantity. Items without a loaded tier are worth 0.
func (l Luggage) Amount() Money {
	if l.Weight == nil {
		return 0
	}
	return l.Weight.Price.Times(l.Quantity)
}
