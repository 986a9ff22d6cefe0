package appointments

import (
	"context"
	"time"

	"github.com/m04kA/Barber-BookingService/internal/domain"
	"github.com/m04kA/Barber-BookingService/internal/integrations/catalogservice"
	"github.com/m04kA/Barber-BookingService/internal/integrations/clientservice"
)

// AppointmentRepository интерфейс репозитория бронирований
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	List(ctx context.Context) ([]*domain.Appointment, error)
	ListByBarberAndDate(ctx context.Context, barberID int64, date time.Time) ([]*domain.Appointment, error)
	SetCompleted(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

// CatalogServiceClient интерфейс клиента для CatalogService
type CatalogServiceClient interface {
	GetBarberWithGracefulDegradation(ctx context.Context, barberID int64) (*catalogservice.Barber, error)
	GetServiceWithGracefulDegradation(ctx context.Context, serviceID int64) (*catalogservice.Service, error)
}

// ClientServiceClient интерфейс клиента для ClientService
type ClientServiceClient interface {
	GetClientWithGracefulDegradation(ctx context.Context, clientID int64) (*clientservice.ClientRecord, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
