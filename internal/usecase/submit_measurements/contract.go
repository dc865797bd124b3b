package submit_measurements

import (
	"context"
	"time"

	"github.com/m04kA/FDL-AtelierService/internal/domain"
	"github.com/m04kA/FDL-AtelierService/internal/notify"
)

// OrderRepository интерфейс для работы с хранилищем заказов
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	Exists(ctx context.Context, id string) bool
}

// TransactionManager интерфейс для выполнения операций внутри критической секции
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// CodeGenerator интерфейс генерации кодов заказов
type CodeGenerator interface {
	ProjectCode() string
}

// AdvisoryClient интерфейс консультационного сервиса.
// Анализ мерок не возвращает ошибок: при недоступности сервиса
// клиент отдает запасной текст.
type AdvisoryClient interface {
	AnalyzeMeasurements(ctx context.Context, data domain.MeasurementData) string
}

// Notifier интерфейс для отправки уведомлений ателье
type Notifier interface {
	OrderPlaced(ev notify.OrderPlaced) error
}

// Metrics интерфейс для записи метрик операции
type Metrics interface {
	OrderCreated()
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реализация TimeProvider с реальным временем
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
