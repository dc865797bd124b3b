package book_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/FDL-AtelierService/internal/domain"
	availabilityRepo "github.com/m04kA/FDL-AtelierService/internal/infra/storage/availability"
	"github.com/m04kA/FDL-AtelierService/internal/notify"
)

// maxCodeAttempts ограничивает число попыток подобрать уникальный код записи.
// Кодов вида APP-NNNN девять тысяч; пока реестр на порядки меньше,
// исчерпание лимита означает сбой генератора, а не переполнение.
const maxCodeAttempts = 25

// UseCase use case подтверждения бронирования.
// Выполняет как одну логическую единицу: генерацию уникального кода,
// снятие времени из каталога доступности и запись подтвержденной брони
// в реестр. Пост-коммит уведомление излучается после фиксации и не
// влияет на результат.
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalog         CatalogRepository
	txManager       TransactionManager
	codes           CodeGenerator
	notifier        Notifier
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case.
func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalog CatalogRepository,
	txManager TransactionManager,
	codes CodeGenerator,
	notifier Notifier,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalog:         catalog,
		txManager:       txManager,
		codes:           codes,
		notifier:        notifier,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет подтверждение бронирования.
// Снятие слота и запись брони выполняются в сериализуемой критической
// секции: два конкурентных подтверждения одной пары (дата, время) не
// могут пройти оба - проигравший получает ErrSlotNotAvailable.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookAppointment: date=%s time=%s client=%q", req.Date, req.Time, req.ClientName)

	// 1. Валидация входных данных - при отказе никаких записей
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookAppointment: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Appointment

	// 2. Критическая секция: код + снятие слота + запись брони
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Уникальный код записи: проверяем коллизии по реестру
		// и повторяем генерацию до успеха в пределах лимита
		code, err := uc.generateUniqueCode(txCtx)
		if err != nil {
			uc.logger.Error("BookAppointment: code generation failed: %v", err)
			return err
		}

		// 2.2. Снимаем время с витрины - это и есть захват слота.
		// Отсутствие пары означает, что слот уже забронирован или убран
		if err := uc.catalog.RemoveTime(txCtx, req.Date, req.Time); err != nil {
			if errors.Is(err, availabilityRepo.ErrTimeNotFound) {
				uc.logger.Warn("BookAppointment: slot %s %s not available", req.Date, req.Time)
				return ErrSlotNotAvailable
			}
			return fmt.Errorf("%w: failed to claim slot: %v", ErrInternal, err)
		}

		// 2.3. Фиксируем бронь в реестре
		appt := &domain.Appointment{
			ID:          code,
			ClientName:  strings.TrimSpace(req.ClientName),
			ClientEmail: strings.TrimSpace(req.ClientEmail),
			Date:        req.Date,
			Time:        req.Time,
			Status:      domain.AppointmentConfirmed,
			CreatedAt:   uc.timeProvider.Now(),
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.AppointmentConfirmed()
	uc.metrics.SlotTimeRetired(1)
	uc.logger.Info("BookAppointment: confirmed %s for %s %s", result.ID, result.Date, result.Time)

	// 3. Пост-коммит хук: fire-and-forget, сбой не откатывает бронь
	if err := uc.notifier.AppointmentBooked(notify.NewAppointmentBooked(result)); err != nil {
		uc.logger.Warn("BookAppointment: notification failed for %s: %v", result.ID, err)
	}

	return &Response{
		AppointmentID: result.ID,
		ClientName:    result.ClientName,
		ClientEmail:   result.ClientEmail,
		Date:          result.Date,
		DisplayDate:   domain.FormatDisplayDate(result.Date),
		Time:          result.Time,
		Status:        string(result.Status),
		CreatedAt:     result.CreatedAt,
	}, nil
}

// generateUniqueCode подбирает код записи, отсутствующий в реестре.
func (uc *UseCase) generateUniqueCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code := uc.codes.AppointmentCode()
		if !uc.appointmentRepo.Exists(ctx, code) {
			return code, nil
		}
		uc.logger.Warn("BookAppointment: code collision %s, retrying", code)
	}
	return "", ErrIDGenerationExhausted
}
