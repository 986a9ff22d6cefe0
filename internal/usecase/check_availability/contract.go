package check_availability

import (
	"context"

	"github.com/m04kA/Barber-BookingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория бронирований
type AppointmentRepository interface {
	CountAtSlot(ctx context.Context, slot domain.Slot, excludeID *int64) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
