package check_availability

import (
	"time"

	"github.com/m04kA/Barber-BookingService/pkg/types"
)

// Request запрос на проверку доступности слота.
// ExcludeAppointmentID указывается при редактировании существующей записи,
// чтобы запись не конфликтовала сама с собой.
type Request struct {
	BarberID             int64
	Date                 time.Time
	Time                 types.TimeString
	ExcludeAppointmentID *int64
}

// Response результат проверки доступности
type Response struct {
	Available bool
}
