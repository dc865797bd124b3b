package book_appointment

import (
	"context"
	"time"

	"github.com/m04kA/FDL-AtelierService/internal/domain"
	"github.com/m04kA/FDL-AtelierService/internal/notify"
	"github.com/m04kA/FDL-AtelierService/pkg/types"
)

// AppointmentRepository интерфейс реестра записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	Exists(ctx context.Context, id string) bool
}

// CatalogRepository интерфейс каталога доступности
type CatalogRepository interface {
	RemoveTime(ctx context.Context, date string, t types.TimeString) error
	ListUpcoming(ctx context.Context, now time.Time) []*domain.AvailabilitySlot
}

// TransactionManager интерфейс критической секции для связки
// "снять слот + записать бронь"
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// CodeGenerator интерфейс генерации кодов записей
type CodeGenerator interface {
	AppointmentCode() string
}

// Notifier интерфейс пост-коммит хука уведомлений.
// Вызывается после фиксации брони; сбой доставки не откатывает бронь.
type Notifier interface {
	AppointmentBooked(ev notify.AppointmentBooked) error
}

// Metrics интерфейс учета операций бронирования
type Metrics interface {
	AppointmentConfirmed()
	SlotTimeRetired(count int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
