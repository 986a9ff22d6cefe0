package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoonUTC(t *testing.T) {
	// Календарный день берется из локации источника
	saoPaulo := time.FixedZone("America/Sao_Paulo", -3*60*60)
	entered := time.Date(2024, 6, 10, 23, 30, 0, 0, saoPaulo)

	pinned := NoonUTC(entered)

	assert.Equal(t, time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC), pinned)
}

func TestParseISODate(t *testing.T) {
	date, err := ParseISODate("2024-06-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC), date)

	_, err = ParseISODate("10/06/2024")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = ParseISODate("2024-13-40")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestFormatRoundTrip(t *testing.T) {
	// Приколотая к полудню дата не уплывает ни в одной таймзоне
	date, err := ParseISODate("2024-06-10")
	require.NoError(t, err)

	assert.Equal(t, "2024-06-10", FormatISODate(date))
	assert.Equal(t, "10/06/2024", FormatBrazilian(date))

	behindUTC := date.In(time.FixedZone("UTC-11", -11*60*60))
	assert.Equal(t, "2024-06-10", FormatISODate(behindUTC))

	aheadUTC := date.In(time.FixedZone("UTC+11", 11*60*60))
	assert.Equal(t, "10/06/2024", FormatBrazilian(aheadUTC))
}

func TestSameCalendarDay(t *testing.T) {
	a := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	b := time.Date(2024, 6, 10, 23, 59, 59, 0, time.UTC)
	c := time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameCalendarDay(a, b))
	assert.False(t, SameCalendarDay(a, c))
}

func TestIsPastDay(t *testing.T) {
	now := time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC)

	assert.True(t, IsPastDay(time.Date(2024, 6, 9, 23, 0, 0, 0, time.UTC), now))
	// Сегодняшний день не считается прошлым
	assert.False(t, IsPastDay(time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), now))
	assert.False(t, IsPastDay(time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC), now))
}
