package create_appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/Barber-BookingService/internal/domain"
	"github.com/m04kA/Barber-BookingService/pkg/dateutil"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, now time.Time) error {
	if strings.TrimSpace(req.ClientName) == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}

	if len(req.ClientName) > domain.MaxClientNameLength {
		return fmt.Errorf("%w: clientName exceeds %d characters", ErrInvalidInput, domain.MaxClientNameLength)
	}

	if req.ClientPhone != nil && len(*req.ClientPhone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: clientPhone exceeds %d characters", ErrInvalidInput, domain.MaxPhoneLength)
	}

	if req.BarberID <= 0 {
		return fmt.Errorf("%w: barberId must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceId must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if dateutil.IsPastDay(req.Date, now) {
		return ErrInvalidDate
	}

	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	if !domain.IsBookableTime(req.Time) {
		return fmt.Errorf("%w: %s", ErrInvalidTimeSlot, req.Time)
	}

	return nil
}
