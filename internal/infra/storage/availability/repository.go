package availability

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/FDL-AtelierService/internal/domain"
	"github.com/m04kA/FDL-AtelierService/pkg/types"
)

// Repository in-memory каталог доступности: набор открытых дат с временами.
// Инвариант: запись с пустым набором времен не существует - при удалении
// последнего времени запись с датой удаляется целиком.
// Записи хранятся отсортированными по дате по возрастанию, времена внутри
// даты - по возрастанию и без дубликатов.
type Repository struct {
	mu    sync.RWMutex
	slots []*domain.AvailabilitySlot
}

// NewRepository создает пустой каталог доступности.
func NewRepository() *Repository {
	return &Repository{}
}

// AddSlot добавляет время к дате. Если дата уже существует, время
// вставляется в её набор (дубликат - тихий no-op). Если даты нет,
// создается новая запись, каталог пересортировывается по дате.
func (r *Repository) AddSlot(ctx context.Context, date string, t types.TimeString) error {
	if _, err := domain.ParseDate(date); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	if err := t.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, slot := range r.slots {
		if slot.Date != date {
			continue
		}
		if slot.HasTime(t) {
			// Дубликат времени - no-op по контракту каталога
			return nil
		}
		slot.Times = append(slot.Times, t)
		sort.Slice(slot.Times, func(i, j int) bool {
			return slot.Times[i].IsBefore(slot.Times[j])
		})
		return nil
	}

	r.slots = append(r.slots, &domain.AvailabilitySlot{
		Date:  date,
		Times: []types.TimeString{t},
	})
	sort.Slice(r.slots, func(i, j int) bool {
		return r.slots[i].Date < r.slots[j].Date
	})
	return nil
}

// RemoveTime удаляет время из записи даты. Если после удаления набор времен
// пуст, запись с датой удаляется целиком. Возвращает ErrTimeNotFound, если
// пары (дата, время) нет в каталоге - вызывающая сторона решает, считать
// это ошибкой (бронирование) или no-op (админ-редактор).
func (r *Repository) RemoveTime(ctx context.Context, date string, t types.TimeString) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, slot := range r.slots {
		if slot.Date != date {
			continue
		}
		for j, existing := range slot.Times {
			if existing != t {
				continue
			}
			slot.Times = append(slot.Times[:j], slot.Times[j+1:]...)
			if slot.IsEmpty() {
				r.slots = append(r.slots[:i], r.slots[i+1:]...)
			}
			return nil
		}
		return fmt.Errorf("%w: %s %s", ErrTimeNotFound, date, t)
	}

	return fmt.Errorf("%w: %s %s", ErrTimeNotFound, date, t)
}

// RemoveDate безусловно удаляет запись даты со всеми временами.
// Подтверждение деструктивного намерения - ответственность вызывающего.
func (r *Repository) RemoveDate(ctx context.Context, date string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, slot := range r.slots {
		if slot.Date == date {
			r.slots = append(r.slots[:i], r.slots[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrDateNotFound, date)
}

// ListUpcoming возвращает записи с датой не раньше сегодняшнего дня
// (время суток обнуляется до полуночи), отсортированные по дате по
// возрастанию. Чистая проекция: возвращаются глубокие копии.
func (r *Repository) ListUpcoming(ctx context.Context, now time.Time) []*domain.AvailabilitySlot {
	today := domain.Midnight(now)

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.AvailabilitySlot, 0, len(r.slots))
	for _, slot := range r.slots {
		date, err := domain.ParseDate(slot.Date)
		if err != nil {
			continue
		}
		if date.Before(today) {
			continue
		}
		result = append(result, slot.Clone())
	}
	return result
}

// ListAll возвращает копию всего каталога, включая прошедшие даты.
// Используется админ-редактором доступности.
func (r *Repository) ListAll(ctx context.Context) []*domain.AvailabilitySlot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.AvailabilitySlot, 0, len(r.slots))
	for _, slot := range r.slots {
		result = append(result, slot.Clone())
	}
	return result
}

// GetByDate возвращает копию записи даты.
func (r *Repository) GetByDate(ctx context.Context, date string) (*domain.AvailabilitySlot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, slot := range r.slots {
		if slot.Date == date {
			return slot.Clone(), nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrDateNotFound, date)
}
