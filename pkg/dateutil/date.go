// Package dateutil pins calendar dates to a fixed time of day so that a
// booking date never shifts to the previous or next day when rendered in a
// different timezone. All persisted appointment dates are noon UTC.
package dateutil

import (
	"errors"
	"fmt"
	"time"
)

const (
	// ISODateLayout формат даты в запросах и ответах API
	ISODateLayout = "2006-01-02"

	// BrazilianDateLayout формат отображения даты для клиентов
	BrazilianDateLayout = "02/01/2006"
)

// ErrInvalidDate возвращается при некорректной строке даты
var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

// NoonUTC returns the calendar date of t pinned to 12:00:00 UTC.
// The calendar date is taken from t's own location, so "2024-06-10" stays
// June 10th regardless of where it was entered.
func NoonUTC(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

// ParseISODate parses a "YYYY-MM-DD" string into a noon-UTC timestamp.
func ParseISODate(s string) (time.Time, error) {
	t, err := time.Parse(ISODateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return NoonUTC(t), nil
}

// FormatISODate renders the UTC calendar date of t as "YYYY-MM-DD".
func FormatISODate(t time.Time) string {
	return t.UTC().Format(ISODateLayout)
}

// FormatBrazilian renders the UTC calendar date of t as "DD/MM/YYYY".
func FormatBrazilian(t time.Time) string {
	return t.UTC().Format(BrazilianDateLayout)
}

// SameCalendarDay reports whether a and b fall on the same UTC calendar day.
func SameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// IsPastDay reports whether date falls on a UTC calendar day before now's.
func IsPastDay(date, now time.Time) bool {
	y, m, d := date.UTC().Date()
	dateOnly := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	y, m, d = now.UTC().Date()
	nowOnly := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(nowOnly)
}
