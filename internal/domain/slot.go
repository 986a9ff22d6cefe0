package domain

import (
	"time"

	"github.com/m04kA/Barber-BookingService/pkg/types"
)

// Slot is the (barber, date, time) key used to test scheduling conflicts.
// It is never persisted on its own.
type Slot struct {
	BarberID int64
	Date     time.Time
	Time     types.TimeString
}

// scheduleTimes is the fixed booking grid of the shop: half-hour steps from
// opening to the last cut of the day, with the 12:00-13:00 lunch break
// removed.
var scheduleTimes = []types.TimeString{
	"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"13:00", "13:30", "14:00", "14:30", "15:00", "15:30",
	"16:00", "16:30", "17:00", "17:30", "18:00",
}

// ScheduleTimes returns the bookable time grid in day order.
func ScheduleTimes() []types.TimeString {
	out := make([]types.TimeString, len(scheduleTimes))
	copy(out, scheduleTimes)
	return out
}

// IsBookableTime reports whether t is one of the enumerated schedule slots.
func IsBookableTime(t types.TimeString) bool {
	for _, s := range scheduleTimes {
		if s == t {
			return true
		}
	}
	return false
}
