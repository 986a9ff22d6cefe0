package catalogservice

import "errors"

var (
	// ErrBarberNotFound возвращается, когда барбер не найден
	ErrBarberNotFound = errors.New("barber not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("service not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("catalogservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("catalogservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что CatalogService недоступен и следует отдавать голые ссылки
	ErrServiceDegraded = errors.New("catalogservice unavailable: graceful degradation applied")
)
