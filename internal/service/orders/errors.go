package orders

import "errors"

var (
	// ErrOrderNotFound возвращается, когда заказ не найден по коду.
	// Не фатальная ошибка: консоль показывает отдельное состояние
	// "не найдено", отличное от "поиск не выполнялся".
	ErrOrderNotFound = errors.New("orders.service: order not found")

	// ErrInvalidStatus возвращается при попытке установить неизвестный статус
	ErrInvalidStatus = errors.New("orders.service: invalid order status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("orders.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("orders.service: internal error")
)
