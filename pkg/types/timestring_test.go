package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("10:30")
	require.NoError(t, err)
	assert.Equal(t, "10:30", ts.String())

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("10:30:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Minutes(t *testing.T) {
	ts := TimeString("09:30")
	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 9*60+30, minutes)
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:30"))
	assert.False(t, TimeString("09:30").IsBefore("09:30"))
	assert.True(t, TimeString("10:00").IsAfter("09:30"))
	assert.False(t, TimeString("bad").IsBefore("09:30"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("11:30")

	result, err := ts.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("12:00"), result)

	// Переход через полночь заворачивается в пределах суток
	result, err = TimeString("23:45").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:15"), result)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	// Postgres TIME приходит с секундами
	require.NoError(t, ts.Scan("10:00:00"))
	assert.Equal(t, TimeString("10:00"), ts)

	require.NoError(t, ts.Scan([]byte("13:30")))
	assert.Equal(t, TimeString("13:30"), ts)

	require.NoError(t, ts.Scan(time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("09:30"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	value, err := TimeString("18:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "18:00", value)

	_, err = TimeString("junk").Value()
	assert.Error(t, err)
}
