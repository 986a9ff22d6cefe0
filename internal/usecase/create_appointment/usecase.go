package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Barber-BookingService/internal/domain"
	appointmentRepo "github.com/m04kA/Barber-BookingService/internal/infra/storage/appointment"
	catalogClient "github.com/m04kA/Barber-BookingService/internal/integrations/catalogservice"
	"github.com/m04kA/Barber-BookingService/internal/integrations/clientservice"
	"github.com/m04kA/Barber-BookingService/pkg/dateutil"
)

// UseCase use case для создания записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalogClient   CatalogServiceClient
	clientClient    ClientServiceClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalogClient CatalogServiceClient,
	clientClient ClientServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalogClient:   catalogClient,
		clientClient:    clientClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи.
// Проверка занятости слота и вставка выполняются в одной сериализуемой
// транзакции: клиентская пред-проверка доступности остается подсказкой,
// финальное слово за этой транзакцией.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: client=%q, barber=%d, service=%d, date=%s, time=%s",
		req.ClientName, req.BarberID, req.ServiceID, req.Date.Format(domain.DateFormat), req.Time)

	// 1. Валидация входных данных
	now := uc.timeProvider.Now()
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем барбера
	barber, err := uc.catalogClient.GetBarber(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrBarberNotFound) {
			uc.logger.Warn("CreateAppointment: barber id=%d not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}

	// 3. Получаем услугу — её цена снапшотится в revenue записи
	service, err := uc.catalogClient.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// Дата хранится приколотой к полудню UTC, чтобы день не уплывал
	// при конвертации таймзон
	bookingDate := dateutil.NoonUTC(req.Date)

	slot := domain.Slot{
		BarberID: barber.ID,
		Date:     bookingDate,
		Time:     req.Time,
	}

	// 4. Проверяем занятость слота до каких-либо мутаций: конфликт на этом
	// шаге означает, что запись клиента создаваться не будет. Финальное
	// слово за пересчетом внутри транзакции ниже.
	count, err := uc.appointmentRepo.CountAtSlot(ctx, slot, nil)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to count appointments at slot: %v", err)
		return nil, fmt.Errorf("%w: failed to count appointments: %w", ErrInternal, err)
	}

	if count > 0 {
		uc.logger.Warn("CreateAppointment: slot taken, barber=%d, date=%s, time=%s",
			barber.ID, bookingDate.Format(domain.DateFormat), req.Time)
		return nil, ErrSlotTaken
	}

	// 5. Создаем запись клиента
	// TODO: дедуплицировать клиентов по телефону, сейчас каждый сабмит
	// формы создает новую запись
	clientRecord, err := uc.clientClient.CreateClient(ctx, &clientservice.CreateClientRequest{
		Name:  req.ClientName,
		Phone: req.ClientPhone,
	})
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to create client record: %v", err)
		return nil, fmt.Errorf("%w: failed to create client record: %v", ErrInternal, err)
	}

	var result *domain.Appointment

	// 6. Пересчет слота и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Пересчитываем занятость слота с блокировкой (FOR UPDATE)
		count, err := uc.appointmentRepo.CountAtSlot(txCtx, slot, nil)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to count appointments at slot: %v", err)
			return fmt.Errorf("%w: failed to count appointments: %w", ErrInternal, err)
		}

		if count > 0 {
			uc.logger.Warn("CreateAppointment: slot taken, barber=%d, date=%s, time=%s",
				barber.ID, bookingDate.Format(domain.DateFormat), req.Time)
			return ErrSlotTaken
		}

		// 6.2. Сохраняем запись с денормализованной ценой услуги
		appt := &domain.Appointment{
			Client:  domain.ClientReference(clientRecord.ID),
			Barber:  domain.BarberReference(barber.ID),
			Service: domain.ServiceReference(service.ID),
			Date:    bookingDate,
			Time:    req.Time,
			Revenue: service.Price,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			// Уникальный индекс слота ловит гонку, которую пересчет не успел
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateAppointment: unique index rejected slot, barber=%d, date=%s, time=%s",
					barber.ID, bookingDate.Format(domain.DateFormat), req.Time)
				return ErrSlotTaken
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

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
