package models

import (
	"fmt"

	"github.com/m04kA/FDL-AtelierService/internal/domain"
)

// UpdateStatusRequest запрос оператора на смену статуса заказа
type UpdateStatusRequest struct {
	OrderID string
	Status  string
}

// OrderResponse заказ в модели отображения
type OrderResponse struct {
	ID            string
	ClientName    string
	ClientEmail   string
	Items         []string
	ClothingType  string
	Status        string
	StatusDisplay string
	Date          string // DD/MM/YYYY
	ProgressIndex int
	ProgressTotal int
}

// OrderListResponse список заказов, сначала свежие
type OrderListResponse struct {
	Orders []OrderResponse
}

// ToDomainOrderStatus конвертирует строковый статус в доменный.
func ToDomainOrderStatus(status string) (domain.OrderStatus, error) {
	s := domain.OrderStatus(status)
	if !s.IsValid() {
		return "", fmt.Errorf("unknown order status: %q", status)
	}
	return s, nil
}

// FromDomainOrder конвертирует доменный заказ в модель отображения.
func FromDomainOrder(order *domain.Order) *OrderResponse {
	return &OrderResponse{
		ID:            order.ID,
		ClientName:    order.ClientName,
		ClientEmail:   order.ClientEmail,
		Items:         append([]string(nil), order.Items...),
		ClothingType:  order.ClothingType,
		Status:        string(order.Status),
		StatusDisplay: order.Status.DisplayName(),
		Date:          order.Date.Format(domain.DisplayDateFormat),
		ProgressIndex: order.Status.ProgressIndex(),
		ProgressTotal: len(domain.ProgressSteps),
	}
}

// FromDomainOrderList конвертирует список доменных заказов.
func FromDomainOrderList(orders []*domain.Order) *OrderListResponse {
	result := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		result = append(result, *FromDomainOrder(order))
	}
	return &OrderListResponse{Orders: result}
}
