package book_appointment

import (
	"context"
	"fmt"

	"github.com/m04kA/FDL-AtelierService/internal/domain"
	"github.com/m04kA/FDL-AtelierService/pkg/types"
)

// WizardState состояние трехшагового мастера бронирования.
type WizardState int

const (
	// StateSelecting выбор даты и времени из витрины каталога
	StateSelecting WizardState = iota
	// StateConfirming ввод имени и email, подтверждение
	StateConfirming
	// StateConfirmed терминальное состояние: бронь зафиксирована
	StateConfirmed
)

// String возвращает читаемое имя состояния.
func (s WizardState) String() string {
	switch s {
	case StateSelecting:
		return "selecting"
	case StateConfirming:
		return "confirming"
	case StateConfirmed:
		return "confirmed"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// BookingExecutor интерфейс коммита бронирования
type BookingExecutor interface {
	Execute(ctx context.Context, req *Request) (*Response, error)
}

// Wizard трехшаговый мастер бронирования:
// Selecting -> Confirming -> Confirmed.
// Переход к подтверждению требует выбранных даты и времени; подтверждение
// требует непустого имени и правдоподобного email. Отклоненное
// подтверждение оставляет мастер в Confirming без частичных записей.
type Wizard struct {
	state    WizardState
	date     string
	time     types.TimeString
	executor BookingExecutor
	result   *Response
}

// NewWizard создает мастер в состоянии выбора.
func NewWizard(executor BookingExecutor) *Wizard {
	return &Wizard{state: StateSelecting, executor: executor}
}

// State возвращает текущее состояние мастера.
func (w *Wizard) State() WizardState {
	return w.state
}

// SelectedDate возвращает выбранную дату (пустая строка, если не выбрана).
func (w *Wizard) SelectedDate() string {
	return w.date
}

// SelectedTime возвращает выбранное время (пустое, если не выбрано).
func (w *Wizard) SelectedTime() types.TimeString {
	return w.time
}

// SelectDate выбирает дату. Допустимо только в состоянии выбора.
// Смена даты сбрасывает ранее выбранное время.
func (w *Wizard) SelectDate(date string) error {
	if w.state != StateSelecting {
		return fmt.Errorf("%w: SelectDate in state %s", ErrInvalidTransition, w.state)
	}
	if _, err := domain.ParseDate(date); err != nil {
		return fmt.Errorf("%w: invalid date format: %v", ErrInvalidInput, err)
	}
	w.date = date
	w.time = ""
	return nil
}

// SelectTime выбирает время. Допустимо только в состоянии выбора
// и только после выбора даты.
func (w *Wizard) SelectTime(t types.TimeString) error {
	if w.state != StateSelecting {
		return fmt.Errorf("%w: SelectTime in state %s", ErrInvalidTransition, w.state)
	}
	if w.date == "" {
		return ErrNoSelection
	}
	if err := t.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}
	w.time = t
	return nil
}

// Proceed переводит мастер к подтверждению.
// Требует выбранных даты и времени.
func (w *Wizard) Proceed() error {
	if w.state != StateSelecting {
		return fmt.Errorf("%w: Proceed in state %s", ErrInvalidTransition, w.state)
	}
	if w.date == "" || w.time.IsZero() {
		return ErrNoSelection
	}
	w.state = StateConfirming
	return nil
}

// Back возвращает мастер к выбору, сохраняя текущий выбор.
func (w *Wizard) Back() error {
	if w.state != StateConfirming {
		return fmt.Errorf("%w: Back in state %s", ErrInvalidTransition, w.state)
	}
	w.state = StateSelecting
	return nil
}

// Confirm подтверждает бронирование. При любой ошибке мастер остается
// в Confirming и никакие записи не производятся; при успехе переходит
// в терминальное Confirmed.
func (w *Wizard) Confirm(ctx context.Context, clientName, clientEmail string) (*Response, error) {
	if w.state != StateConfirming {
		return nil, fmt.Errorf("%w: Confirm in state %s", ErrInvalidTransition, w.state)
	}

	resp, err := w.executor.Execute(ctx, &Request{
		Date:        w.date,
		Time:        w.time,
		ClientName:  clientName,
		ClientEmail: clientEmail,
	})
	if err != nil {
		return nil, err
	}

	w.state = StateConfirmed
	w.result = resp
	return resp, nil
}

// Result возвращает подтвержденную бронь (nil до Confirmed).
func (w *Wizard) Result() *Response {
	return w.result
}
