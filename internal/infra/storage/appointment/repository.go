package appointment

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/FDL-AtelierService/internal/domain"
)

// Repository in-memory реестр подтвержденных записей на визит.
// Реестр append-mostly: записи создаются потоком бронирования,
// никогда не мутируются и не удаляются. Новые записи добавляются
// в начало - отображение "сначала свежие".
type Repository struct {
	mu           sync.RWMutex
	appointments []*domain.Appointment
}

// NewRepository создает пустой реестр записей.
func NewRepository() *Repository {
	return &Repository{}
}

// Create добавляет новую запись в начало реестра.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.appointments {
		if existing.ID == appt.ID {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, appt.ID)
		}
	}

	stored := *appt
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	r.appointments = append([]*domain.Appointment{&stored}, r.appointments...)

	result := stored
	return &result, nil
}

// Exists проверяет наличие записи с данным ID.
// Используется генерацией кодов для проверки коллизий.
func (r *Repository) Exists(ctx context.Context, id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, existing := range r.appointments {
		if existing.ID == id {
			return true
		}
	}
	return false
}

// GetByID возвращает копию записи по ID.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, existing := range r.appointments {
		if existing.ID == id {
			result := *existing
			return &result, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrAppointmentNotFound, id)
}

// List возвращает копии всех записей, сначала свежие.
func (r *Repository) List(ctx context.Context) []*domain.Appointment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Appointment, 0, len(r.appointments))
	for _, existing := range r.appointments {
		appt := *existing
		result = append(result, &appt)
	}
	return result
}
