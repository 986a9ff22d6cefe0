package domain

import (
	"time"

	"github.com/m04kA/Barber-BookingService/pkg/types"
)

// Appointment represents one scheduled (or completed) service visit.
type Appointment struct {
	ID      int64
	Client  ClientRef
	Barber  BarberRef
	Service ServiceRef

	// Date is the calendar date of the visit, always pinned to 12:00 UTC so
	// it never shifts across a day boundary when rendered in another zone.
	Date time.Time
	// Time is one of the fixed half-hour slots of the schedule grid.
	Time types.TimeString

	// Revenue is the service price snapshotted at booking time. Later price
	// changes never touch historical revenue.
	Revenue float64

	// Completed transitions false→true once and never back.
	Completed bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Slot returns the conflict-detection key of the appointment.
func (a *Appointment) Slot() Slot {
	return Slot{
		BarberID: a.Barber.ID(),
		Date:     a.Date,
		Time:     a.Time,
	}
}
