package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	availabilityRepo "github.com/m04kA/FDL-AtelierService/internal/infra/storage/availability"
	"github.com/m04kA/FDL-AtelierService/internal/service/availability/models"
	"github.com/m04kA/FDL-AtelierService/pkg/types"
)

// Service сервис управления каталогом доступности.
// Операторская CRUD-поверхность над каталогом: публикация времен приема,
// снятие времени или целой даты, листинг для витрины и редактора.
type Service struct {
	catalog CatalogRepository
	metrics Metrics
	logger  Logger
}

// NewService создает новый экземпляр сервиса доступности.
func NewService(catalog CatalogRepository, metrics Metrics, logger Logger) *Service {
	return &Service{
		catalog: catalog,
		metrics: metrics,
		logger:  logger,
	}
}

// AddSlot публикует время приема на дату. Дубликат времени - тихий no-op
// на уровне каталога. Добавление времени к полностью разобранной дате
// легально и вновь открывает её для бронирования.
func (s *Service) AddSlot(ctx context.Context, req *models.AddSlotRequest) error {
	t, err := types.NewTimeStringFromString(req.Time)
	if err != nil {
		s.logger.Warn("AddSlot: invalid time %q", req.Time)
		return fmt.Errorf("%w: invalid time", ErrInvalidInput)
	}

	if err := s.catalog.AddSlot(ctx, req.Date, t); err != nil {
		if errors.Is(err, availabilityRepo.ErrInvalidDate) || errors.Is(err, availabilityRepo.ErrInvalidTime) {
			s.logger.Warn("AddSlot: invalid input date=%q time=%q: %v", req.Date, req.Time, err)
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		s.logger.Error("AddSlot: repository error for date=%s: %v", req.Date, err)
		return fmt.Errorf("%w: AddSlot - repository error: %v", ErrInternal, err)
	}

	s.metrics.SlotTimePublished()
	s.logger.Info("AddSlot: published %s %s", req.Date, req.Time)
	return nil
}

// RemoveTime снимает одно время с даты. Отсутствующее время - тихий no-op
// по контракту каталога: оператору не о чем сообщать.
func (s *Service) RemoveTime(ctx context.Context, req *models.RemoveTimeRequest) error {
	t := types.TimeString(req.Time)

	if err := s.catalog.RemoveTime(ctx, req.Date, t); err != nil {
		if errors.Is(err, availabilityRepo.ErrTimeNotFound) {
			s.logger.Info("RemoveTime: %s %s not in catalog, nothing to do", req.Date, req.Time)
			return nil
		}
		s.logger.Error("RemoveTime: repository error for %s %s: %v", req.Date, req.Time, err)
		return fmt.Errorf("%w: RemoveTime - repository error: %v", ErrInternal, err)
	}

	s.metrics.SlotTimeRetired(1)
	s.logger.Info("RemoveTime: retired %s %s", req.Date, req.Time)
	return nil
}

// RemoveDate безусловно снимает дату со всеми временами.
// Подтверждение деструктивного действия - ответственность консоли.
func (s *Service) RemoveDate(ctx context.Context, date string) error {
	// Количество снимаемых времен нужно до удаления
	retired := 0
	if slot, err := s.catalog.GetByDate(ctx, date); err == nil {
		retired = len(slot.Times)
	}

	if err := s.catalog.RemoveDate(ctx, date); err != nil {
		if errors.Is(err, availabilityRepo.ErrDateNotFound) {
			s.logger.Warn("RemoveDate: date %s not found", date)
			return ErrDateNotFound
		}
		s.logger.Error("RemoveDate: repository error for %s: %v", date, err)
		return fmt.Errorf("%w: RemoveDate - repository error: %v", ErrInternal, err)
	}

	if retired > 0 {
		s.metrics.SlotTimeRetired(retired)
	}
	s.logger.Info("RemoveDate: removed %s (%d times)", date, retired)
	return nil
}

// ListUpcoming возвращает будущие записи каталога, отсортированные по дате.
func (s *Service) ListUpcoming(ctx context.Context, now time.Time) *models.CatalogResponse {
	return models.FromDomainSlots(s.catalog.ListUpcoming(ctx, now))
}

// ListAll возвращает весь каталог для админ-редактора.
func (s *Service) ListAll(ctx context.Context) *models.CatalogResponse {
	return models.FromDomainSlots(s.catalog.ListAll(ctx))
}
