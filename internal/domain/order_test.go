package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_ProgressIndex(t *testing.T) {
	assert.Equal(t, 0, StatusPending.ProgressIndex())
	assert.Equal(t, 3, StatusInProduction.ProgressIndex())
	assert.Equal(t, 5, StatusReady.ProgressIndex())

	// Доставленный заказ отображается полностью завершенным
	assert.Equal(t, len(ProgressSteps)-1, StatusDelivered.ProgressIndex())
}

func TestOrderStatus_DisplayName(t *testing.T) {
	assert.Equal(t, "Aguardando Início", StatusPending.DisplayName())
	assert.Equal(t, "Costura e Ajustes", StatusInProduction.DisplayName())
	assert.Equal(t, "Entregue", StatusDelivered.DisplayName())
}

func TestOrderStatus_IsValid(t *testing.T) {
	for _, stage := range ProductionStages {
		assert.True(t, stage.IsValid(), "stage %s", stage)
	}
	assert.False(t, OrderStatus("shipped").IsValid())
	assert.False(t, OrderStatus("").IsValid())
}

func TestFormatDisplayDate(t *testing.T) {
	assert.Equal(t, "02/06/2026", FormatDisplayDate("2026-06-02"))

	// Невалидная дата возвращается как есть
	assert.Equal(t, "junho", FormatDisplayDate("junho"))
}
