package order

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/m04kA/FDL-AtelierService/internal/domain"
)

// Repository in-memory реестр заказов на пошив.
// Заказы создаются формой снятия мерок, мутируются только сменой статуса
// через админ-консоль и никогда не удаляются. Новые заказы добавляются
// в начало - отображение "сначала свежие".
type Repository struct {
	mu     sync.RWMutex
	orders []*domain.Order
}

// NewRepository создает пустой реестр заказов.
func NewRepository() *Repository {
	return &Repository{}
}

// Create добавляет новый заказ в начало реестра.
func (r *Repository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.orders {
		if strings.EqualFold(existing.ID, order.ID) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, order.ID)
		}
	}

	stored := *order
	stored.Items = append([]string(nil), order.Items...)
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	r.orders = append([]*domain.Order{&stored}, r.orders...)

	return cloneOrder(&stored), nil
}

// Exists проверяет наличие заказа с данным кодом (без учета регистра).
// Используется генерацией кодов проектов для проверки коллизий.
func (r *Repository) Exists(ctx context.Context, id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, existing := range r.orders {
		if strings.EqualFold(existing.ID, id) {
			return true
		}
	}
	return false
}

// GetByCode возвращает копию заказа по коду проекта без учета регистра.
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, existing := range r.orders {
		if strings.EqualFold(existing.ID, code) {
			return cloneOrder(existing), nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, code)
}

// UpdateStatus безусловно перезаписывает статус заказа.
// Граф переходов не проверяется: оператор может перевести заказ
// в любой статус, включая откат назад.
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.orders {
		if strings.EqualFold(existing.ID, id) {
			existing.Status = status
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrOrderNotFound, id)
}

// List возвращает копии всех заказов, сначала свежие.
func (r *Repository) List(ctx context.Context) []*domain.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Order, 0, len(r.orders))
	for _, existing := range r.orders {
		result = append(result, cloneOrder(existing))
	}
	return result
}

func cloneOrder(o *domain.Order) *domain.Order {
	clone := *o
	clone.Items = append([]string(nil), o.Items...)
	return &clone
}
