// Package brdate implements the API's wire formats for calendar dates
// (dd/mm/yyyy) and times of day (hh:mm, optionally hh:mm:ss). Both types
// marshal to those formats in JSON and scan to/from their database columns
// (DATE and VARCHAR respectively).
package brdate

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "02/01/2006"

// Date is a calendar date exchanged as dd/mm/yyyy.
type Date struct {
	time.Time
}

// NewDate builds a Date from year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a dd/mm/yyyy string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, expected dd/mm/yyyy", s)
	}
	return Date{t}, nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" || s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer for DATE columns.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time, nil
}

// Scan implements sql.Scanner for DATE columns.
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = Date{v}
		return nil
	case string:
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return fmt.Errorf("scan date %q: %w", v, err)
		}
		*d = Date{t}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

// TimeOfDay is a clock time exchanged as hh:mm, or hh:mm:ss when the seconds
// are nonzero. It is stored in the database as an 8-character string.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// ParseTimeOfDay accepts hh:mm and hh:mm:ss.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var td TimeOfDay
	var err error
	switch strings.Count(s, ":") {
	case 1:
		_, err = fmt.Sscanf(s, "%d:%d", &td.Hour, &td.Minute)
	case 2:
		_, err = fmt.Sscanf(s, "%d:%d:%d", &td.Hour, &td.Minute, &td.Second)
	default:
		err = fmt.Errorf("wrong number of separators")
	}
	if err != nil || td.Hour < 0 || td.Hour > 23 ||
		td.Minute < 0 || td.Minute > 59 || td.Second < 0 || td.Second > 59 {
		return TimeOfDay{}, fmt.Errorf("invalid time %q, expected hh:mm or hh:mm:ss", s)
	}
	return td, nil
}

func (t TimeOfDay) String() string {
	if t.Second != 0 {
		return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	}
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

func (t *TimeOfDay) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" || s == "" {
		*t = TimeOfDay{}
		return nil
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value implements driver.Valuer; times are stored as hh:mm:ss strings.
func (t TimeOfDay) Value() (driver.Value, error) {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second), nil
}

// Scan implements sql.Scanner.
func (t *TimeOfDay) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = TimeOfDay{}
		return nil
	case string:
		parsed, err := ParseTimeOfDay(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		return t.Scan(string(v))
	default:
		return fmt.Errorf("cannot scan %T into TimeOfDay", src)
	}
}
