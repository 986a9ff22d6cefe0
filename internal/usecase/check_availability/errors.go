package check_availability

import "errors"

var (
	// ErrInvalidInput возвращается при невалидных входных данных
	ErrInvalidInput = errors.New("check_availability: invalid input")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("check_availability: internal error")
)
