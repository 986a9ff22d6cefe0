package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Barber-BookingService/internal/domain"
	appointmentRepo "github.com/m04kA/Barber-BookingService/internal/infra/storage/appointment"
	"github.com/m04kA/Barber-BookingService/internal/service/appointments/models"
	"github.com/m04kA/Barber-BookingService/pkg/dateutil"
)

// Service сервис для работы с записями
type Service struct {
	repo          AppointmentRepository
	catalogClient CatalogServiceClient
	clientClient  ClientServiceClient
	logger        Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	repo AppointmentRepository,
	catalogClient CatalogServiceClient,
	clientClient ClientServiceClient,
	logger Logger,
) *Service {
	return &Service{
		repo:          repo,
		catalogClient: catalogClient,
		clientClient:  clientClient,
		logger:        logger,
	}
}

// GetByID получает запись по ID с развёрнутыми ссылками на клиента,
// барбера и услугу. При недоступности смежных сервисов ссылки остаются
// голыми id (graceful degradation).
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.expandReferences(ctx, appt)

	s.logger.Info("GetByID: successfully fetched appointment id=%d", id)
	return models.FromDomainAppointment(appt), nil
}

// List получает записи, новые первыми. Непустой фильтр сужает список
// до расписания барбера на день, в порядке слотов.
// Ссылки не разворачиваются: список может быть большим, а развёртка
// делает по три HTTP вызова на запись.
func (s *Service) List(ctx context.Context, filter *models.ListAppointmentsFilter) (*models.AppointmentListResponse, error) {
	var (
		appointments []*domain.Appointment
		err          error
	)

	if filter != nil {
		s.logger.Info("List: fetching appointments for barber=%d on %s",
			filter.BarberID, filter.Date.Format(domain.DateFormat))
		appointments, err = s.repo.ListByBarberAndDate(ctx, filter.BarberID, dateutil.NoonUTC(filter.Date))
	} else {
		s.logger.Info("List: fetching all appointments")
		appointments, err = s.repo.List(ctx)
	}

	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d appointments", len(appointments))
	return models.FromDomainAppointmentList(appointments), nil
}

// Complete отмечает запись выполненной.
// Операция идемпотентна: повторный вызов для уже выполненной записи
// возвращает успех без изменений.
func (s *Service) Complete(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("Complete: completing appointment id=%d", id)

	appt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Complete: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Complete: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
	}

	if appt.Completed {
		s.logger.Info("Complete: appointment id=%d already completed", id)
		return models.FromDomainAppointment(appt), nil
	}

	if err := s.repo.SetCompleted(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Complete: appointment id=%d disappeared during completion", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Complete: failed to complete appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
	}

	appt.Completed = true

	s.logger.Info("Complete: successfully completed appointment id=%d", id)
	return models.FromDomainAppointment(appt), nil
}

// Delete удаляет запись. Требует явного подтверждения: удаление
// необратимо и сразу освобождает слот.
func (s *Service) Delete(ctx context.Context, id int64, confirmed bool) error {
	s.logger.Info("Delete: deleting appointment id=%d, confirmed=%t", id, confirmed)

	if !confirmed {
		s.logger.Warn("Delete: deletion of appointment id=%d not confirmed", id)
		return ErrNotConfirmed
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: failed to delete appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted appointment id=%d", id)
	return nil
}

// expandReferences разворачивает ссылки записи в полные объекты.
// Ошибки не прерывают запрос: недоступная ссылка остается голым id.
func (s *Service) expandReferences(ctx context.Context, appt *domain.Appointment) {
	if client, err := s.clientClient.GetClientWithGracefulDegradation(ctx, appt.Client.ID()); err == nil {
		appt.Client = domain.ExpandedClient(client.ToDomain())
	} else {
		s.logger.Warn("expandReferences: client id=%d not expanded: %v", appt.Client.ID(), err)
	}

	if barber, err := s.catalogClient.GetBarberWithGracefulDegradation(ctx, appt.Barber.ID()); err == nil {
		appt.Barber = domain.ExpandedBarber(barber.ToDomain())
	} else {
		s.logger.Warn("expandReferences: barber id=%d not expanded: %v", appt.Barber.ID(), err)
	}

	if service, err := s.catalogClient.GetServiceWithGracefulDegradation(ctx, appt.Service.ID()); err == nil {
		appt.Service = domain.ExpandedService(service.ToDomain())
	} else {
		s.logger.Warn("expandReferences: service id=%d not expanded: %v", appt.Service.ID(), err)
	}
}
