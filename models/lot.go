package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateFormat is the wire format for calendar dates: four-digit year,
// two-digit month, two-digit day, dash-separated.
const DateFormat = "2006-01-02"

// Lot represents a stock lot belonging to an item.
//
// ItemID references an item by ID but is not enforced as a database-level
// foreign key: deleting an item leaves its lots in place with a dangling
// reference, matching the behavior expected by existing clients.
type Lot struct {
	// ID is the internal unique identifier of the lot.
	ID int64 `json:"id"`

	// Number is the lot number printed on the physical batch.
	Number string `json:"number"`

	// Quantity is the number of units in the lot. Must be non-negative.
	Quantity int64 `json:"quantity"`

	// ExpiryDate is the calendar date the lot expires. No time component.
	ExpiryDate Date `json:"expiry_date"`

	// ItemID is the identifier of the owning item.
	ItemID int64 `json:"item_id"`
}

// TableName returns the name of the database table
// associated with the Lot model.
func (l Lot) TableName() string {
	return "lots"
}

// ErrUnparseableDate is returned by [Date.UnmarshalJSON] when the JSON value
// is not a string in the YYYY-MM-DD format.
var ErrUnparseableDate = errors.New("date does not match YYYY-MM-DD format")

// Date is a calendar date without a time-of-day component.
//
// It marshals to and unmarshals from a JSON string in [DateFormat]. Any other
// input shape or format is rejected.
type Date struct {
	time.Time
}

// NewDate constructs a Date from year, month, and day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// UnmarshalJSON implements json.Unmarshaler, accepting only "YYYY-MM-DD".
func (d *Date) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return ErrUnparseableDate
	}

	parsed, err := time.Parse(DateFormat, raw)
	if err != nil {
		return ErrUnparseableDate
	}

	d.Time = parsed
	return nil
}

// MarshalJSON implements json.Marshaler, producing "YYYY-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(DateFormat))
}

// String returns the date in the YYYY-MM-DD wire format.
func (d Date) String() string {
	return d.Format(DateFormat)
}

// Value implements driver.Valuer so a Date can be written to a DATE column.
func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

// Scan implements sql.Scanner. Drivers hand back DATE columns either as
// time.Time (pgx, go-sqlite3 with declared DATE type) or as a raw string;
// both are accepted.
func (d *Date) Scan(value any) error {
	switch v := value.(type) {
	case time.Time:
		d.Time = v
		return nil
	case []byte:
		return d.parseDateString(string(v))
	case string:
		return d.parseDateString(v)
	case nil:
		d.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", value)
	}
}

func (d *Date) parseDateString(s string) error {
	layouts := []string{
		DateFormat,
		time.RFC3339,
		"2006-01-02 15:04:05.999999999-07:00",
		"2006-01-02 15:04:05",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			d.Time = parsed
			return nil
		}
	}

	return fmt.Errorf("cannot parse %q as date", s)
}

// ErrUnparseableQuantity is returned by [Quantity.UnmarshalJSON] when the JSON
// value is neither an integer nor an integer string.
var ErrUnparseableQuantity = errors.New("quantity is not a valid integer")

// Quantity is an integer count that tolerates lenient client input: either a
// JSON number or a numeric string is accepted.
type Quantity int64

// UnmarshalJSON implements json.Unmarshaler.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		return ErrUnparseableQuantity
	}

	if s[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return ErrUnparseableQuantity
		}
		s = strings.TrimSpace(raw)
	}

	value, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return ErrUnparseableQuantity
	}

	*q = Quantity(value)
	return nil
}

// MarshalJSON implements json.Marshaler. Quantities always serialize as a
// plain JSON number.
func (q Quantity) MarshalJSON() ([]byte, error) {
	return json.Marshal(int64(q))
}

// Int64 returns the quantity as a plain int64.
func (q Quantity) Int64() int64 {
	return int64(q)
}
