package check_availability

import (
	checkAvailability "github.com/m04kA/Barber-BookingService/internal/usecase/check_availability"
	"github.com/m04kA/Barber-BookingService/pkg/dateutil"
	"github.com/m04kA/Barber-BookingService/pkg/types"
)

// CheckAvailabilityRequest HTTP request model
type CheckAvailabilityRequest struct {
	BarberID             int64  `json:"barberId"`
	Date                 string `json:"date"` // "2024-06-10"
	Time                 string `json:"time"` // "10:00"
	ExcludeAppointmentID *int64 `json:"excludeAppointmentId,omitempty"`
}

// CheckAvailabilityResponse HTTP response model
type CheckAvailabilityResponse struct {
	Available bool `json:"available"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckAvailabilityRequest) ToUseCaseRequest() (*checkAvailability.Request, error) {
	date, err := dateutil.ParseISODate(r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &checkAvailability.Request{
		BarberID:             r.BarberID,
		Date:                 date,
		Time:                 startTime,
		ExcludeAppointmentID: r.ExcludeAppointmentID,
	}, nil
}
