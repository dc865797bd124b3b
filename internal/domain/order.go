package domain

import "time"

// OrderStatus represents a production stage of a tailoring order.
type OrderStatus string

const (
	StatusPending      OrderStatus = "pending"
	StatusMeasured     OrderStatus = "measured"
	StatusInCutting    OrderStatus = "in_cutting"
	StatusInProduction OrderStatus = "in_production"
	StatusQualityCheck OrderStatus = "quality_check"
	StatusReady        OrderStatus = "ready"
	StatusDelivered    OrderStatus = "delivered"
)

// ProductionStages is the ordered display sequence of all production stages.
// It is a display ordering, not an enforced state machine: the operator may
// move an order to any stage at any time.
var ProductionStages = []OrderStatus{
	StatusPending,
	StatusMeasured,
	StatusInCutting,
	StatusInProduction,
	StatusQualityCheck,
	StatusReady,
	StatusDelivered,
}

// ProgressSteps is the six-step subsequence shown by the order tracker.
// Delivered orders render as fully complete.
var ProgressSteps = []OrderStatus{
	StatusPending,
	StatusMeasured,
	StatusInCutting,
	StatusInProduction,
	StatusQualityCheck,
	StatusReady,
}

var statusDisplayNames = map[OrderStatus]string{
	StatusPending:      "Aguardando Início",
	StatusMeasured:     "Medidas Validada",
	StatusInCutting:    "Em Corte",
	StatusInProduction: "Costura e Ajustes",
	StatusQualityCheck: "Finalização Técnica",
	StatusReady:        "Pronto para Entrega",
	StatusDelivered:    "Entregue",
}

// IsValid reports whether the status is one of the seven production stages.
func (s OrderStatus) IsValid() bool {
	_, ok := statusDisplayNames[s]
	return ok
}

// DisplayName returns the client-facing label of the stage.
func (s OrderStatus) DisplayName() string {
	if name, ok := statusDisplayNames[s]; ok {
		return name
	}
	return string(s)
}

// ProgressIndex returns the position of the status within ProgressSteps.
// Statuses outside the visible subsequence (delivered) report the last index,
// rendering the order as fully complete.
func (s OrderStatus) ProgressIndex() int {
	for i, step := range ProgressSteps {
		if step == s {
			return i
		}
	}
	return len(ProgressSteps) - 1
}

// Order represents a garment production request.
type Order struct {
	ID           string // project code, "FDL-XXXX-YYYY"
	ClientName   string
	ClientEmail  string
	Items        []string // ordered garment descriptions
	ClothingType string
	Status       OrderStatus
	Date         time.Time // creation date

	CreatedAt time.Time
}

// IsDelivered reports whether the order has reached its terminal display stage.
func (o *Order) IsDelivered() bool {
	return o.Status == StatusDelivered
}
