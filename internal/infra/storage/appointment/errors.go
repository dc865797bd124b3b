package appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrDuplicateID возвращается при попытке создать запись с существующим ID
	ErrDuplicateID = errors.New("appointment.repository: duplicate appointment id")
)
