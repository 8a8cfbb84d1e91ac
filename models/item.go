package models

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// Item represents a stock item that may own zero or more lots.
type Item struct {
	// ID is the internal unique identifier of the item.
	ID int64 `json:"id"`

	// Name is the human-readable item name.
	Name string `json:"name"`

	// Price is the unit price. Must be non-negative.
	Price float64 `json:"price"`
}

// TableName returns the name of the database table
// associated with the Item model.
func (i Item) TableName() string {
	return "items"
}

// ErrUnparseablePrice is returned by [Price.UnmarshalJSON] when the JSON value
// is neither a number nor a numeric string.
var ErrUnparseablePrice = errors.New("price is not a valid decimal")

// Price is a decimal amount that tolerates lenient client input.
//
// Clients send prices either as a JSON number or as a string, and strings may
// use a comma as the decimal separator ("10,50"). The comma is normalized to a
// dot before parsing, so "10,50" and 10.5 decode to the same value.
type Price float64

// UnmarshalJSON implements json.Unmarshaler.
//
// Accepted inputs:
//   - JSON number: 10.5
//   - JSON string: "10.5" or "10,50"
//
// Returns [ErrUnparseablePrice] for any other shape or an unparseable string.
func (p *Price) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		return ErrUnparseablePrice
	}

	if s[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return ErrUnparseablePrice
		}
		s = strings.ReplaceAll(raw, ",", ".")
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return ErrUnparseablePrice
	}

	*p = Price(value)
	return nil
}

// MarshalJSON implements json.Marshaler. Prices always serialize as a plain
// JSON number regardless of how they were received.
func (p Price) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(p))
}

// Float64 returns the price as a plain float64.
func (p Price) Float64() float64 {
	return float64(p)
}
