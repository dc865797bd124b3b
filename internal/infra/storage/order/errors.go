package order

import "errors"

var (
	// ErrOrderNotFound возвращается, когда заказ не найден
	ErrOrderNotFound = errors.New("order.repository: order not found")

	// ErrDuplicateID возвращается при попытке создать заказ с существующим кодом
	ErrDuplicateID = errors.New("order.repository: duplicate order id")

	// ErrInvalidStatus возвращается при попытке установить неизвестный статус
	ErrInvalidStatus = errors.New("order.repository: invalid order status")
)
