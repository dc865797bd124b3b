package availability

import (
	"context"
	"time"

	"github.com/m04kA/FDL-AtelierService/internal/domain"
	"github.com/m04kA/FDL-AtelierService/pkg/types"
)

// CatalogRepository интерфейс каталога доступности
type CatalogRepository interface {
	AddSlot(ctx context.Context, date string, t types.TimeString) error
	RemoveTime(ctx context.Context, date string, t types.TimeString) error
	RemoveDate(ctx context.Context, date string) error
	GetByDate(ctx context.Context, date string) (*domain.AvailabilitySlot, error)
	ListUpcoming(ctx context.Context, now time.Time) []*domain.AvailabilitySlot
	ListAll(ctx context.Context) []*domain.AvailabilitySlot
}

// Metrics интерфейс учета операций над каталогом
type Metrics interface {
	SlotTimePublished()
	SlotTimeRetired(count int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
