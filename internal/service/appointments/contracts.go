package appointments

import (
	"context"

	"github.com/m04kA/FDL-AtelierService/internal/domain"
)

// AppointmentRepository интерфейс реестра записей
type AppointmentRepository interface {
	List(ctx context.Context) []*domain.Appointment
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
