package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"

	orderRepo "github.com/m04kA/FDL-AtelierService/internal/infra/storage/order"
	"github.com/m04kA/FDL-AtelierService/internal/service/orders/models"
)

// Service сервис работы с заказами: операторская поверхность админ-консоли
// (листинг, смена статуса) и клиентский трекер статуса по коду проекта.
type Service struct {
	orderRepo OrderRepository
	metrics   Metrics
	logger    Logger
}

// NewService создает новый экземпляр сервиса заказов.
func NewService(orderRepo OrderRepository, metrics Metrics, logger Logger) *Service {
	return &Service{
		orderRepo: orderRepo,
		metrics:   metrics,
		logger:    logger,
	}
}

// List возвращает все заказы, сначала свежие.
func (s *Service) List(ctx context.Context) *models.OrderListResponse {
	return models.FromDomainOrderList(s.orderRepo.List(ctx))
}

// Track ищет заказ по коду проекта без учета регистра.
// Отсутствие совпадения - не фатальное состояние "не найдено".
func (s *Service) Track(ctx context.Context, code string) (*models.OrderResponse, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("%w: empty project code", ErrInvalidInput)
	}

	order, err := s.orderRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, orderRepo.ErrOrderNotFound) {
			s.logger.Info("Track: no order for code %q", code)
			return nil, ErrOrderNotFound
		}
		s.logger.Error("Track: repository error for code %q: %v", code, err)
		return nil, fmt.Errorf("%w: Track - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainOrder(order), nil
}

// UpdateStatus безусловно перезаписывает статус заказа.
// Семь стадий производства - это порядок отображения, а не граф переходов:
// оператор может перевести заказ в любой статус, включая откат назад.
// Повторная установка текущего статуса оставляет реестр без изменений.
func (s *Service) UpdateStatus(ctx context.Context, req *models.UpdateStatusRequest) error {
	status, err := models.ToDomainOrderStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status %q for order %s", req.Status, req.OrderID)
		return fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}

	if err := s.orderRepo.UpdateStatus(ctx, req.OrderID, status); err != nil {
		if errors.Is(err, orderRepo.ErrOrderNotFound) {
			s.logger.Warn("UpdateStatus: order %s not found", req.OrderID)
			return ErrOrderNotFound
		}
		s.logger.Error("UpdateStatus: repository error for order %s: %v", req.OrderID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.metrics.OrderStatusUpdated()
	s.logger.Info("UpdateStatus: order %s moved to %s", req.OrderID, status)
	return nil
}
