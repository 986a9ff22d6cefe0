package check_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/Barber-BookingService/internal/domain"
	"github.com/m04kA/Barber-BookingService/pkg/dateutil"
)

// UseCase use case для проверки доступности слота
type UseCase struct {
	appointmentRepo AppointmentRepository
	tracker         *Tracker
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(appointmentRepo AppointmentRepository, logger Logger) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		tracker:         NewTracker(),
		logger:          logger,
	}
}

// Execute выполняет проверку доступности слота.
// Результат — снимок на момент запроса, он не резервирует слот:
// авторитетная проверка выполняется внутри транзакции создания записи.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	slot := domain.Slot{
		BarberID: req.BarberID,
		Date:     dateutil.NoonUTC(req.Date),
		Time:     req.Time,
	}

	// Проверки могут завершаться не в порядке выдачи, трекер отбрасывает
	// устаревшие результаты
	seq := uc.tracker.Begin()

	count, err := uc.appointmentRepo.CountAtSlot(ctx, slot, req.ExcludeAppointmentID)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to count appointments at slot: %v", err)
		return nil, fmt.Errorf("%w: failed to count appointments: %w", ErrInternal, err)
	}

	available := count == 0

	// Проверки завершаются не в порядке выдачи: если за время этой проверки
	// успела завершиться более поздняя, её результат актуальнее и именно он
	// уходит в ответ
	if !uc.tracker.Record(seq, available) {
		if latest, ok := uc.tracker.Latest(); ok {
			uc.logger.Warn("CheckAvailability: check %d superseded by a later one, answering with its result", seq)
			available = latest
		}
	}

	uc.logger.Info("CheckAvailability: barber=%d, date=%s, time=%s, available=%t",
		req.BarberID, req.Date.Format(domain.DateFormat), req.Time, available)

	return &Response{Available: available}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BarberID <= 0 {
		return fmt.Errorf("%w: barberId must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	if !domain.IsBookableTime(req.Time) {
		return fmt.Errorf("%w: time %s is outside the booking grid", ErrInvalidInput, req.Time)
	}

	if req.ExcludeAppointmentID != nil && *req.ExcludeAppointmentID <= 0 {
		return fmt.Errorf("%w: excludeAppointmentId must be positive", ErrInvalidInput)
	}

	return nil
}
