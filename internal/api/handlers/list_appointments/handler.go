package list_appointments

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/Barber-BookingService/internal/api/handlers"
	"github.com/m04kA/Barber-BookingService/internal/domain"
	"github.com/m04kA/Barber-BookingService/internal/service/appointments/models"
)

const msgInvalidFilter = "некорректные параметры фильтра"

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments
// Опциональные query-параметры barberId и date (YYYY-MM-DD) сужают список
// до расписания барбера на день; задаются только вместе.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		h.logger.Warn("GET /appointments - Invalid filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	result, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("GET /appointments - Failed to list appointments: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointments - Listed %d appointments", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// parseFilter разбирает опциональный фильтр barberId+date из query-строки
func parseFilter(r *http.Request) (*models.ListAppointmentsFilter, error) {
	barberParam := r.URL.Query().Get("barberId")
	dateParam := r.URL.Query().Get("date")

	if barberParam == "" && dateParam == "" {
		return nil, nil
	}

	if barberParam == "" || dateParam == "" {
		return nil, fmt.Errorf("barberId and date must be provided together")
	}

	barberID, err := strconv.ParseInt(barberParam, 10, 64)
	if err != nil || barberID <= 0 {
		return nil, fmt.Errorf("invalid barberId %q", barberParam)
	}

	date, err := time.Parse(domain.DateFormat, dateParam)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q", dateParam)
	}

	return &models.ListAppointmentsFilter{
		BarberID: barberID,
		Date:     date,
	}, nil
}
