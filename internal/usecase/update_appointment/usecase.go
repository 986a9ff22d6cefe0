package update_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Barber-BookingService/internal/domain"
	appointmentRepo "github.com/m04kA/Barber-BookingService/internal/infra/storage/appointment"
	catalogClient "github.com/m04kA/Barber-BookingService/internal/integrations/catalogservice"
	"github.com/m04kA/Barber-BookingService/pkg/dateutil"
	"github.com/m04kA/Barber-BookingService/pkg/ptr"
)

// UseCase use case для редактирования записи
type UseCase struct {
	repo          AppointmentRepository
	catalogClient CatalogServiceClient
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	repo AppointmentRepository,
	catalogClient CatalogServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		repo:          repo,
		catalogClient: catalogClient,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case редактирования записи.
// При проверке занятости слота собственная запись исключается: перенос
// на тот же слот — валидная операция. Revenue переснапшотится из
// актуальной цены услуги.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateAppointment: id=%d, barber=%d, service=%d, date=%s, time=%s",
		req.AppointmentID, req.BarberID, req.ServiceID, req.Date.Format(domain.DateFormat), req.Time)

	// 1. Валидация входных данных
	now := uc.timeProvider.Now()
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("UpdateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что запись существует
	existing, err := uc.repo.GetByID(ctx, req.AppointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("UpdateAppointment: appointment id=%d not found", req.AppointmentID)
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("UpdateAppointment: failed to get appointment id=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	// 3. Получаем барбера
	barber, err := uc.catalogClient.GetBarber(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrBarberNotFound) {
			uc.logger.Warn("UpdateAppointment: barber id=%d not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("UpdateAppointment: failed to get barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}

	// 4. Получаем услугу для переснапшота revenue
	service, err := uc.catalogClient.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			uc.logger.Warn("UpdateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("UpdateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	bookingDate := dateutil.NoonUTC(req.Date)

	var result *domain.Appointment

	// 5. Проверка слота и обновление в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		slot := domain.Slot{
			BarberID: barber.ID,
			Date:     bookingDate,
			Time:     req.Time,
		}

		// 5.1. Пересчитываем занятость слота без собственной записи
		count, err := uc.repo.CountAtSlot(txCtx, slot, ptr.Ptr(req.AppointmentID))
		if err != nil {
			uc.logger.Error("UpdateAppointment: failed to count appointments at slot: %v", err)
			return fmt.Errorf("%w: failed to count appointments: %w", ErrInternal, err)
		}

		if count > 0 {
			uc.logger.Warn("UpdateAppointment: slot taken, barber=%d, date=%s, time=%s",
				barber.ID, bookingDate.Format(domain.DateFormat), req.Time)
			return ErrSlotTaken
		}

		// 5.2. Сохраняем изменения, клиент остается прежним
		appt := &domain.Appointment{
			Client:  existing.Client,
			Barber:  domain.BarberReference(barber.ID),
			Service: domain.ServiceReference(service.ID),
			Date:    bookingDate,
			Time:    req.Time,
			Revenue: service.Price,
		}

		updated, err := uc.repo.Update(txCtx, req.AppointmentID, appt)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				uc.logger.Warn("UpdateAppointment: unique index rejected slot, barber=%d, date=%s, time=%s",
					barber.ID, bookingDate.Format(domain.DateFormat), req.Time)
				return ErrSlotTaken
			}
			uc.logger.Error("UpdateAppointment: failed to update appointment id=%d: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to update appointment: %w", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateAppointment: successfully updated appointment id=%d", result.ID)

	return &Response{
		ID:        result.ID,
		ClientID:  result.Client.ID(),
		BarberID:  result.Barber.ID(),
		ServiceID: result.Service.ID(),
		Date:      result.Date,
		Time:      result.Time,
		Revenue:   result.Revenue,
		Completed: result.Completed,
		CreatedAt: result.CreatedAt,
		UpdatedAt: result.UpdatedAt,
	}, nil
}
