package clientservice

import "errors"

var (
	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("client not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("clientservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("clientservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	ErrServiceDegraded = errors.New("clientservice unavailable: graceful degradation applied")
)
