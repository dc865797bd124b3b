package notify

import (
	"github.com/google/uuid"

	"github.com/m04kA/FDL-AtelierService/internal/domain"
	"github.com/m04kA/FDL-AtelierService/pkg/types"
)

// AppointmentBooked событие пост-коммит хука процесса бронирования.
// Излучается после того, как запись зафиксирована в реестре и слот снят
// с витрины. Доставка уведомления никак не влияет на само бронирование.
type AppointmentBooked struct {
	EventID       string
	AppointmentID string
	ClientName    string
	ClientEmail   string
	Date          string // ISO calendar date
	Time          types.TimeString
}

// NewAppointmentBooked создает событие с уникальным EventID.
func NewAppointmentBooked(appt *domain.Appointment) AppointmentBooked {
	return AppointmentBooked{
		EventID:       uuid.NewString(),
		AppointmentID: appt.ID,
		ClientName:    appt.ClientName,
		ClientEmail:   appt.ClientEmail,
		Date:          appt.Date,
		Time:          appt.Time,
	}
}

// OrderPlaced событие пост-коммит хука формы снятия мерок.
type OrderPlaced struct {
	EventID      string
	OrderID      string
	ClientName   string
	ClothingType string
	Measurements domain.MeasurementData
}

// NewOrderPlaced создает событие с уникальным EventID.
func NewOrderPlaced(order *domain.Order, measurements domain.MeasurementData) OrderPlaced {
	return OrderPlaced{
		EventID:      uuid.NewString(),
		OrderID:      order.ID,
		ClientName:   order.ClientName,
		ClothingType: order.ClothingType,
		Measurements: measurements,
	}
}
