package models

import (
	"time"

	"github.com/m04kA/Barber-BookingService/internal/domain"
	"github.com/m04kA/Barber-BookingService/pkg/dateutil"
)

// Request модели

// DeleteAppointmentRequest запрос на удаление записи.
// Удаление необратимо, поэтому требует явного подтверждения.
type DeleteAppointmentRequest struct {
	Confirmed bool `json:"confirmed"`
}

// ListAppointmentsFilter опциональный фильтр списка: расписание барбера
// на конкретный день. Оба поля задаются вместе.
type ListAppointmentsFilter struct {
	BarberID int64
	Date     time.Time
}

// Response модели

// AppointmentResponse ответ с данными записи.
// Ссылки на клиента, барбера и услугу сериализуются либо голым id,
// либо развёрнутой записью — в зависимости от доступности смежных сервисов.
type AppointmentResponse struct {
	ID          int64             `json:"id"`
	Client      domain.ClientRef  `json:"client"`
	Barber      domain.BarberRef  `json:"barber"`
	Service     domain.ServiceRef `json:"service"`
	Date        string            `json:"date"`        // "2024-06-10"
	DateDisplay string            `json:"dateDisplay"` // "10/06/2024"
	Time        string            `json:"time"`        // "10:00"
	Revenue     float64           `json:"revenue"`
	Completed   bool              `json:"completed"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей и сводкой по выручке
type AppointmentListResponse struct {
	Appointments []*AppointmentResponse `json:"appointments"`
	Total        int                    `json:"total"`
	TotalRevenue float64                `json:"totalRevenue"`
}

// FromDomainAppointment конвертирует доменную запись в response
func FromDomainAppointment(appt *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:          appt.ID,
		Client:      appt.Client,
		Barber:      appt.Barber,
		Service:     appt.Service,
		Date:        dateutil.FormatISODate(appt.Date),
		DateDisplay: dateutil.FormatBrazilian(appt.Date),
		Time:        appt.Time.String(),
		Revenue:     appt.Revenue,
		Completed:   appt.Completed,
		CreatedAt:   appt.CreatedAt,
		UpdatedAt:   appt.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список записей в response.
// TotalRevenue суммирует снапшоты revenue всех записей списка: цены в
// каталоге могли измениться, сводка считается по ценам на момент записи.
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	responses := make([]*AppointmentResponse, 0, len(appointments))
	totalRevenue := 0.0

	for _, appt := range appointments {
		responses = append(responses, FromDomainAppointment(appt))
		totalRevenue += appt.Revenue
	}

	return &AppointmentListResponse{
		Appointments: responses,
		Total:        len(responses),
		TotalRevenue: totalRevenue,
	}
}
