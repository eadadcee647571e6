package models

import (
	"time"

	"luggagebill/internal/domain"
)

// Weight is a pricing tier: bags of at least MinWeight are billed Price each.
type Weight struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	MinWeight int       `json:"min_weight"`
	Price     Money     `json:"price"`
	Created   time.Time `json:"created"`
	Updated   time.Time `json:"updated"`
}

// MaxPrice is the largest value a DECIMAL(10,2) column holds, in cents.
const MaxPrice Money = 99_999_999_99

func (w *Weight) Normalize() {
	w.Name = normalize(w.Name)
}

func (w Weight) Validate() error {
	if err := requireText("name", w.Name, 20); err != nil {
		return err
	}
	if w.MinWeight < 1 {
		return domain.ValidationError{Field: "min_weight", Msg: "must be at least 1"}
	}
	if w.Price < 1 {
		return domain.ValidationError{Field: "price", Msg: "must be at least 0.01"}
	}
	if w.Price > MaxPrice {
		return domain.ValidationError{Field: "price", Msg: "too large"}
	}
	return nil
}
