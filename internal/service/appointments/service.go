package appointments

import (
	"context"

	"github.com/m04kA/FDL-AtelierService/internal/service/appointments/models"
)

// Service сервис чтения реестра записей для админ-консоли.
// Реестр append-mostly: записи создаются только потоком бронирования,
// поэтому у консоли нет операций изменения.
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей.
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// List возвращает все записи, сначала свежие.
func (s *Service) List(ctx context.Context) *models.AppointmentListResponse {
	return models.FromDomainAppointmentList(s.appointmentRepo.List(ctx))
}
