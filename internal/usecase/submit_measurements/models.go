package submit_measurements

import (
	"time"

	"github.com/m04kA/FDL-AtelierService/internal/domain"
)

// Request данные формы снятия мерок. Имя и email необязательны:
// пустые значения заменяются плейсхолдерами ателье.
type Request struct {
	ClientName   string
	ClientEmail  string
	Measurements domain.MeasurementData
}

// Response результат оформления заказа по меркам
type Response struct {
	OrderID      string
	ClientName   string
	ClientEmail  string
	ClothingType string
	Status       domain.OrderStatus
	Analysis     string
	CreatedAt    time.Time
}
