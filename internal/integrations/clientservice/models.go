package clientservice

import "github.com/m04kA/Barber-BookingService/internal/domain"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// CreateClientRequest запрос на создание записи клиента
type CreateClientRequest struct {
	Name  string  `json:"name"`
	Phone *string `json:"phone,omitempty"`
}

// ClientRecord модель клиента из ClientService
type ClientRecord struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Phone  *string `json:"phone,omitempty"`
	Points int     `json:"points"`
}

// ToDomain конвертирует запись клиента в доменную запись
func (r *ClientRecord) ToDomain() *domain.Client {
	return &domain.Client{
		ID:     r.ID,
		Name:   r.Name,
		Phone:  r.Phone,
		Points: r.Points,
	}
}
