package book_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_appointment: invalid input data")

	// ErrMissingName возвращается, когда имя клиента пустое
	ErrMissingName = errors.New("book_appointment: client name is required")

	// ErrInvalidEmail возвращается, когда email пуст или синтаксически неправдоподобен
	ErrInvalidEmail = errors.New("book_appointment: invalid client email")

	// ErrSlotNotAvailable возвращается, когда пара (дата, время) уже не
	// предлагается каталогом: слот забронирован или снят оператором
	ErrSlotNotAvailable = errors.New("book_appointment: slot is not available")

	// ErrIDGenerationExhausted возвращается, когда не удалось сгенерировать
	// уникальный код записи за отведенное число попыток
	ErrIDGenerationExhausted = errors.New("book_appointment: unable to generate unique appointment code")

	// ErrInvalidTransition возвращается при недопустимом переходе мастера
	ErrInvalidTransition = errors.New("book_appointment: invalid wizard transition")

	// ErrNoSelection возвращается при попытке перейти к подтверждению
	// без выбранных даты и времени
	ErrNoSelection = errors.New("book_appointment: date and time must be selected")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_appointment: internal error")
)
