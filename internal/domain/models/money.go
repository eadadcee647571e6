package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"luggagebill/internal/utils"
)

// Money is an amount in cents (2 fraction digits of the currency unit).
type Money int64

func (m Money) String() string {
	return utils.FormatCents(int64(m))
}

// Times multiplies by a quantity; no rounding is involved.
func (m Money) Times(qty int) Money {
	return m * Money(qty)
}

// MarshalJSON renders the amount as a decimal string to keep the two fraction digits.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON accepts "10.50" as well as 10.5.
func (m *Money) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if bytes.Equal(raw, []byte("null")) {
		*m = 0
		return nil
	}
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		raw = []byte(s)
	}
	cents, err := utils.ParseCents(string(raw))
	if err != nil {
		return fmt.Errorf("money: %w", err)
	}
	*m = Money(cents)
	return nil
}

// ParseMoney parses a DECIMAL(10,2) column value.
func ParseMoney(s string) (Money, error) {
	cents, err := utils.ParseCents(s)
	return Money(cents), err
}
