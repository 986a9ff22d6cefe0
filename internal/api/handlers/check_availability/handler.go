package check_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/Barber-BookingService/internal/api/handlers"
	checkAvailability "github.com/m04kA/Barber-BookingService/internal/usecase/check_availability"
)

const msgInvalidRequestBody = "некорректное тело запроса"

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/check-availability
//
// Внутренние сбои отдаются как available=false (fail-closed): лучше
// показать занятый слот, чем позволить форме отправить запись, которую
// транзакция создания все равно отклонит.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments/check-availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments/check-availability - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if errors.Is(err, checkAvailability.ErrInvalidInput) {
			h.logger.Warn("POST /appointments/check-availability - Invalid input: %v", err)
			handlers.RespondJSON(w, http.StatusOK, CheckAvailabilityResponse{Available: false})
			return
		}

		h.logger.Error("POST /appointments/check-availability - Check failed, responding unavailable: %v", err)
		handlers.RespondJSON(w, http.StatusOK, CheckAvailabilityResponse{Available: false})
		return
	}

	h.logger.Info("POST /appointments/check-availability - barber_id=%d, date=%s, time=%s, available=%t",
		req.BarberID, req.Date, req.Time, result.Available)
	handlers.RespondJSON(w, http.StatusOK, CheckAvailabilityResponse{Available: result.Available})
}
