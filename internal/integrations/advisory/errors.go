package advisory

import "errors"

var (
	// ErrNoCredential возвращается, когда API-ключ не сконфигурирован
	ErrNoCredential = errors.New("advisory client: no credential configured")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("advisory client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе сервиса
	ErrInvalidResponse = errors.New("advisory client: invalid response")

	// ErrEmptyResponse возвращается, когда сервис вернул пустой текст
	ErrEmptyResponse = errors.New("advisory client: empty response text")
)
