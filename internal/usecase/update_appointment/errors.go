package update_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при невалидных входных данных
	ErrInvalidInput = errors.New("update_appointment: invalid input")

	// ErrInvalidDate возвращается, когда дата записи в прошлом
	ErrInvalidDate = errors.New("update_appointment: date is in the past")

	// ErrInvalidTimeSlot возвращается, когда время вне сетки расписания
	ErrInvalidTimeSlot = errors.New("update_appointment: time is outside the booking grid")

	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("update_appointment: appointment not found")

	// ErrSlotTaken возвращается, когда слот занят другой записью
	ErrSlotTaken = errors.New("update_appointment: slot already taken")

	// ErrBarberNotFound возвращается, когда барбер не найден
	ErrBarberNotFound = errors.New("update_appointment: barber not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("update_appointment: service not found")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("update_appointment: internal error")
)
