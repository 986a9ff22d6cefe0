package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/Barber-BookingService/internal/domain"
	"github.com/m04kA/Barber-BookingService/internal/integrations/catalogservice"
	"github.com/m04kA/Barber-BookingService/internal/integrations/clientservice"
)

// AppointmentRepository интерфейс репозитория бронирований
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	CountAtSlot(ctx context.Context, slot domain.Slot, excludeID *int64) (int, error)
}

// CatalogServiceClient интерфейс клиента для CatalogService
type CatalogServiceClient interface {
	GetBarber(ctx context.Context, barberID int64) (*catalogservice.Barber, error)
	GetService(ctx context.Context, serviceID int64) (*catalogservice.Service, error)
}

// ClientServiceClient интерфейс клиента для ClientService
type ClientServiceClient interface {
	CreateClient(ctx context.Context, req *clientservice.CreateClientRequest) (*clientservice.ClientRecord, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
