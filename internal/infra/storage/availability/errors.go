package availability

import "errors"

var (
	// ErrInvalidDate возвращается при некорректном формате даты
	ErrInvalidDate = errors.New("availability.repository: invalid date format")

	// ErrInvalidTime возвращается при некорректном формате времени
	ErrInvalidTime = errors.New("availability.repository: invalid time format")

	// ErrDateNotFound возвращается, когда дата отсутствует в каталоге
	ErrDateNotFound = errors.New("availability.repository: date not found")

	// ErrTimeNotFound возвращается, когда время отсутствует в записи каталога
	ErrTimeNotFound = errors.New("availability.repository: time not found")
)
