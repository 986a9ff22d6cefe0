package create_appointment

import (
	"time"

	"github.com/m04kA/Barber-BookingService/pkg/types"
)

// Request запрос на создание записи
type Request struct {
	ClientName  string
	ClientPhone *string
	BarberID    int64
	ServiceID   int64
	Date        time.Time
	Time        types.TimeString
}

// Response созданная запись
type Response struct {
	ID        int64
	ClientID  int64
	BarberID  int64
	ServiceID int64
	Date      time.Time
	Time      types.TimeString
	Revenue   float64
	Completed bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
