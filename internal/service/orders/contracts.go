package orders

import (
	"context"

	"github.com/m04kA/FDL-AtelierService/internal/domain"
)

// OrderRepository интерфейс реестра заказов
type OrderRepository interface {
	GetByCode(ctx context.Context, code string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
	List(ctx context.Context) []*domain.Order
}

// Metrics интерфейс учета операций над заказами
type Metrics interface {
	OrderStatusUpdated()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
