package book_appointment

import (
	"fmt"
	"strings"

	"github.com/m04kA/FDL-AtelierService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Отклоненный запрос не производит никаких записей - мастер остается
// на шаге подтверждения.
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Date) == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if _, err := domain.ParseDate(req.Date); err != nil {
		return fmt.Errorf("%w: invalid date format: %v", ErrInvalidInput, err)
	}

	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}
	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	if strings.TrimSpace(req.ClientName) == "" {
		return ErrMissingName
	}

	if !isPlausibleEmail(req.ClientEmail) {
		return ErrInvalidEmail
	}

	return nil
}

// isPlausibleEmail проверяет синтаксическую правдоподобность адреса:
// непустая локальная часть, один "@", домен с точкой. Полная валидация
// по RFC здесь не нужна - подтверждение придет по внешнему каналу.
func isPlausibleEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	if at <= 0 || at != strings.LastIndex(email, "@") {
		return false
	}

	local, host := email[:at], email[at+1:]
	if local == "" || host == "" {
		return false
	}

	dot := strings.Index(host, ".")
	if dot <= 0 || strings.HasSuffix(host, ".") {
		return false
	}

	return !strings.ContainsAny(email, " \t\n")
}
