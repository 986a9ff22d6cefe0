package create_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при невалидных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input")

	// ErrInvalidDate возвращается, когда дата записи в прошлом
	ErrInvalidDate = errors.New("create_appointment: date is in the past")

	// ErrInvalidTimeSlot возвращается, когда время вне сетки расписания
	ErrInvalidTimeSlot = errors.New("create_appointment: time is outside the booking grid")

	// ErrSlotTaken возвращается, когда слот уже занят
	ErrSlotTaken = errors.New("create_appointment: slot already taken")

	// ErrBarberNotFound возвращается, когда барбер не найден
	ErrBarberNotFound = errors.New("create_appointment: barber not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("create_appointment: internal error")
)
