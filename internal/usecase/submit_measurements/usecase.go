package submit_measurements

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/FDL-AtelierService/internal/domain"
	"github.com/m04kA/FDL-AtelierService/internal/notify"
)

// maxCodeAttempts предел повторов генерации кода заказа при коллизиях
const maxCodeAttempts = 25

// UseCase операция оформления заказа по меркам клиента
type UseCase struct {
	orderRepo    OrderRepository
	txManager    TransactionManager
	codes        CodeGenerator
	advisory     AdvisoryClient
	notifier     Notifier
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает операцию оформления заказа
func NewUseCase(
	orderRepo OrderRepository,
	txManager TransactionManager,
	codes CodeGenerator,
	advisory AdvisoryClient,
	notifier Notifier,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		orderRepo:    orderRepo,
		txManager:    txManager,
		codes:        codes,
		advisory:     advisory,
		notifier:     notifier,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute оформляет заказ по переданным меркам.
// Пустые контактные поля заменяются плейсхолдерами ателье, поэтому
// форма мерок никогда не отклоняет клиента из-за отсутствия контактов.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitMeasurements: client=%q clothing=%q", req.ClientName, req.Measurements.ClothingType)

	// 1. Валидация входных данных - при отказе никаких записей
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitMeasurements: validation failed: %v", err)
		return nil, err
	}

	// 2. Анализ мерок до критической секции: вызов не возвращает
	// ошибок, при недоступности сервиса приходит запасной текст
	analysis := uc.advisory.AnalyzeMeasurements(ctx, req.Measurements)

	clientName := strings.TrimSpace(req.ClientName)
	if clientName == "" {
		clientName = domain.DefaultClientName
	}
	clientEmail := strings.TrimSpace(req.ClientEmail)
	if clientEmail == "" {
		clientEmail = domain.DefaultClientEmail
	}
	clothingType := strings.TrimSpace(req.Measurements.ClothingType)
	if clothingType == "" {
		clothingType = domain.DefaultClothingType
	}

	var result *domain.Order

	// 3. Критическая секция: уникальный код + запись заказа
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		code, err := uc.generateUniqueCode(txCtx)
		if err != nil {
			uc.logger.Error("SubmitMeasurements: code generation failed: %v", err)
			return err
		}

		now := uc.timeProvider.Now()
		order := &domain.Order{
			ID:           code,
			ClientName:   clientName,
			ClientEmail:  clientEmail,
			Items:        []string{clothingType + " Sob Medida"},
			ClothingType: clothingType,
			Status:       domain.StatusPending,
			Date:         now,
			CreatedAt:    now,
		}

		created, err := uc.orderRepo.Create(txCtx, order)
		if err != nil {
			return fmt.Errorf("%w: failed to create order: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.OrderCreated()
	uc.logger.Info("SubmitMeasurements: order %s created for %q", result.ID, result.ClientName)

	// 4. Уведомление ателье после фиксации: сбой не откатывает заказ
	if err := uc.notifier.OrderPlaced(notify.NewOrderPlaced(result, req.Measurements)); err != nil {
		uc.logger.Error("SubmitMeasurements: notification failed for order %s: %v", result.ID, err)
	}

	return &Response{
		OrderID:      result.ID,
		ClientName:   result.ClientName,
		ClientEmail:  result.ClientEmail,
		ClothingType: result.ClothingType,
		Status:       result.Status,
		Analysis:     analysis,
		CreatedAt:    result.CreatedAt,
	}, nil
}

// generateUniqueCode генерирует код заказа, отсутствующий в реестре
func (uc *UseCase) generateUniqueCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code := uc.codes.ProjectCode()
		if !uc.orderRepo.Exists(ctx, code) {
			return code, nil
		}
		uc.logger.Warn("SubmitMeasurements: order code collision on %s, retrying", code)
	}
	return "", ErrIDGenerationExhausted
}
