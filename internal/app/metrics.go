package app

import (
	"github.com/m04kA/FDL-AtelierService/internal/notify"
	"github.com/m04kA/FDL-AtelierService/pkg/metrics"
)

// MetricsRecorder адаптирует общий набор счетчиков под узкие
// метрик-интерфейсы сервисов и операций.
type MetricsRecorder struct {
	m *metrics.Metrics
}

// NewMetricsRecorder создает адаптер над набором счетчиков.
func NewMetricsRecorder(m *metrics.Metrics) *MetricsRecorder {
	return &MetricsRecorder{m: m}
}

func (r *MetricsRecorder) AppointmentConfirmed() {
	r.m.AppointmentsConfirmed.Inc()
}

func (r *MetricsRecorder) OrderCreated() {
	r.m.OrdersCreated.Inc()
}

func (r *MetricsRecorder) OrderStatusUpdated() {
	r.m.OrderStatusUpdates.Inc()
}

func (r *MetricsRecorder) SlotTimePublished() {
	r.m.SlotTimesPublished.Inc()
}

func (r *MetricsRecorder) SlotTimeRetired(count int) {
	r.m.SlotTimesRetired.Add(float64(count))
}

func (r *MetricsRecorder) AdvisoryCall(outcome string) {
	r.m.AdvisoryRequests.WithLabelValues(outcome).Inc()
}

func (r *MetricsRecorder) NotificationEmitted() {
	r.m.NotificationsEmitted.Inc()
}

// Snapshot возвращает текущие значения счетчиков для консоли администратора.
func (r *MetricsRecorder) Snapshot() ([]string, error) {
	return r.m.Snapshot()
}

// NoopRecorder заглушка метрик для metrics.enabled = false.
type NoopRecorder struct{}

func (NoopRecorder) AppointmentConfirmed() {}
func (NoopRecorder) OrderCreated()         {}
func (NoopRecorder) OrderStatusUpdated()   {}
func (NoopRecorder) SlotTimePublished()    {}
func (NoopRecorder) SlotTimeRetired(int)   {}
func (NoopRecorder) AdvisoryCall(string)   {}
func (NoopRecorder) NotificationEmitted()  {}

func (NoopRecorder) Snapshot() ([]string, error) { return nil, nil }

// Recorder объединяет все метрик-интерфейсы приложения.
type Recorder interface {
	AppointmentConfirmed()
	OrderCreated()
	OrderStatusUpdated()
	SlotTimePublished()
	SlotTimeRetired(count int)
	AdvisoryCall(outcome string)
	NotificationEmitted()
	Snapshot() ([]string, error)
}

// CountingNotifier декоратор нотификатора, учитывающий успешно
// отправленные уведомления.
type CountingNotifier struct {
	next notify.Notifier
	rec  Recorder
}

// NewCountingNotifier оборачивает нотификатор учетом отправок.
func NewCountingNotifier(next notify.Notifier, rec Recorder) *CountingNotifier {
	return &CountingNotifier{next: next, rec: rec}
}

func (n *CountingNotifier) AppointmentBooked(ev notify.AppointmentBooked) error {
	if err := n.next.AppointmentBooked(ev); err != nil {
		return err
	}
	n.rec.NotificationEmitted()
	return nil
}

func (n *CountingNotifier) OrderPlaced(ev notify.OrderPlaced) error {
	if err := n.next.OrderPlaced(ev); err != nil {
		return err
	}
	n.rec.NotificationEmitted()
	return nil
}
