package submit_measurements

import "errors"

var (
	// ErrInvalidInput невалидные входные данные
	ErrInvalidInput = errors.New("submit_measurements: invalid input data")
	// ErrInvalidMeasurement мерка вне допустимого диапазона
	ErrInvalidMeasurement = errors.New("submit_measurements: measurement out of range")
	// ErrIDGenerationExhausted не удалось сгенерировать уникальный код заказа
	ErrIDGenerationExhausted = errors.New("submit_measurements: unable to generate unique order code")
	// ErrInternal внутренняя ошибка операции
	ErrInternal = errors.New("submit_measurements: internal error")
)
