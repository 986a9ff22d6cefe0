package create_appointment

import (
	"time"

	"github.com/m04kA/Barber-BookingService/internal/domain"
	createAppointment "github.com/m04kA/Barber-BookingService/internal/usecase/create_appointment"
	"github.com/m04kA/Barber-BookingService/pkg/dateutil"
	"github.com/m04kA/Barber-BookingService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ClientName  string  `json:"clientName"`
	ClientPhone *string `json:"clientPhone,omitempty"`
	BarberID    int64   `json:"barberId"`
	ServiceID   int64   `json:"serviceId"`
	Date        string  `json:"date"` // "2024-06-10"
	Time        string  `json:"time"` // "10:00"
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID          int64   `json:"id"`
	ClientID    int64   `json:"clientId"`
	BarberID    int64   `json:"barberId"`
	ServiceID   int64   `json:"serviceId"`
	Date        string  `json:"date"`
	DateDisplay string  `json:"dateDisplay"` // "10/06/2024"
	Time        string  `json:"time"`
	Revenue     float64 `json:"revenue"`
	Completed   bool    `json:"completed"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := dateutil.ParseISODate(r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		ClientName:  r.ClientName,
		ClientPhone: r.ClientPhone,
		BarberID:    r.BarberID,
		ServiceID:   r.ServiceID,
		Date:        date,
		Time:        startTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:          resp.ID,
		ClientID:    resp.ClientID,
		BarberID:    resp.BarberID,
		ServiceID:   resp.ServiceID,
		Date:        resp.Date.Format(domain.DateFormat),
		DateDisplay: dateutil.FormatBrazilian(resp.Date),
		Time:        resp.Time.String(),
		Revenue:     resp.Revenue,
		Completed:   resp.Completed,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
