package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// TimeString represents a time of day in "HH:MM" format.
// Used for booking slot times to avoid timezone semantics of time.Time.
type TimeString string

const timeStringLayout = "15:04"

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("invalid time string format, expected HH:MM")
)

// NewTimeString creates a TimeString from the clock portion of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeStringLayout))
}

// NewTimeStringFromString parses and validates an "HH:MM" string.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate checks that the value is a well-formed "HH:MM" time.
func (ts TimeString) Validate() error {
	if _, err := time.Parse(timeStringLayout, string(ts)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return nil
}

// IsZero reports whether the value is empty.
func (ts TimeString) IsZero() bool {
	return ts == ""
}

// String returns the "HH:MM" representation.
func (ts TimeString) String() string {
	return string(ts)
}

// Minutes returns the time as minutes since midnight.
func (ts TimeString) Minutes() (int, error) {
	t, err := time.Parse(timeStringLayout, string(ts))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return t.Hour()*60 + t.Minute(), nil
}

// IsBefore reports whether ts is strictly earlier in the day than other.
// Malformed values compare as not-before.
func (ts TimeString) IsBefore(other TimeString) bool {
	a, err := ts.Minutes()
	if err != nil {
		return false
	}
	b, err := other.Minutes()
	if err != nil {
		return false
	}
	return a < b
}

// IsAfter reports whether ts is strictly later in the day than other.
func (ts TimeString) IsAfter(other TimeString) bool {
	return other.IsBefore(ts)
}

// AddMinutes returns the time shifted forward by m minutes.
// The result wraps within a single day.
func (ts TimeString) AddMinutes(m int) (TimeString, error) {
	total, err := ts.Minutes()
	if err != nil {
		return "", err
	}
	total = (total + m) % (24 * 60)
	if total < 0 {
		total += 24 * 60
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// Value implements driver.Valuer so TimeString can be written directly.
func (ts TimeString) Value() (driver.Value, error) {
	if err := ts.Validate(); err != nil {
		return nil, err
	}
	return string(ts), nil
}

// Scan implements sql.Scanner. Postgres TIME columns come back as strings
// like "10:00:00"; seconds are dropped.
func (ts *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*ts = ""
		return nil
	case string:
		return ts.scanString(v)
	case []byte:
		return ts.scanString(string(v))
	case time.Time:
		*ts = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported source type %T", ErrInvalidTimeString, src)
	}
}

func (ts *TimeString) scanString(s string) error {
	if len(s) >= 5 {
		s = s[:5]
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}
