package catalogservice

import "github.com/m04kA/Barber-BookingService/internal/domain"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Barber модель барбера из CatalogService
type Barber struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Specialties []string `json:"specialties"`
	Available   bool     `json:"available"`
}

// Service модель услуги из CatalogService
type Service struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
	Description     *string `json:"description,omitempty"`
}

// ErrorResponse модель ошибки от CatalogService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ToDomain конвертирует модель барбера в доменную запись
func (b *Barber) ToDomain() *domain.Barber {
	return &domain.Barber{
		ID:          b.ID,
		Name:        b.Name,
		Specialties: b.Specialties,
		Available:   b.Available,
	}
}

// ToDomain конвертирует модель услуги в доменную запись
func (s *Service) ToDomain() *domain.Service {
	return &domain.Service{
		ID:              s.ID,
		Name:            s.Name,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		Description:     s.Description,
	}
}
