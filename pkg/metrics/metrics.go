package metrics

import (
	"fmt"
	"sort"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics содержит счётчики бизнес-операций сервиса.
// Используется собственный registry, чтобы не зависеть от глобального состояния
// prometheus и иметь возможность отдавать снимок метрик в консоль администратора.
type Metrics struct {
	registry *prometheus.Registry

	AppointmentsConfirmed prometheus.Counter
	OrdersCreated         prometheus.Counter
	OrderStatusUpdates    prometheus.Counter
	SlotTimesPublished    prometheus.Counter
	SlotTimesRetired      prometheus.Counter
	AdvisoryRequests      *prometheus.CounterVec
	NotificationsEmitted  prometheus.Counter
}

// New создает новый набор метрик для сервиса с указанным именем.
func New(serviceName string) *Metrics {
	registry := prometheus.NewRegistry()
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registry: registry,
		AppointmentsConfirmed: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "atelier_appointments_confirmed_total",
			Help:        "Total number of confirmed appointments.",
			ConstLabels: labels,
		}),
		OrdersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "atelier_orders_created_total",
			Help:        "Total number of created tailoring orders.",
			ConstLabels: labels,
		}),
		OrderStatusUpdates: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "atelier_order_status_updates_total",
			Help:        "Total number of order status updates performed by the operator.",
			ConstLabels: labels,
		}),
		SlotTimesPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "atelier_slot_times_published_total",
			Help:        "Total number of slot times added to the availability catalog.",
			ConstLabels: labels,
		}),
		SlotTimesRetired: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "atelier_slot_times_retired_total",
			Help:        "Total number of slot times removed from the availability catalog.",
			ConstLabels: labels,
		}),
		AdvisoryRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "atelier_advisory_requests_total",
			Help:        "Total number of advisory service calls by outcome.",
			ConstLabels: labels,
		}, []string{"outcome"}),
		NotificationsEmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "atelier_notifications_emitted_total",
			Help:        "Total number of outbound notification events emitted.",
			ConstLabels: labels,
		}),
	}

	registry.MustRegister(
		m.AppointmentsConfirmed,
		m.OrdersCreated,
		m.OrderStatusUpdates,
		m.SlotTimesPublished,
		m.SlotTimesRetired,
		m.AdvisoryRequests,
		m.NotificationsEmitted,
	)

	return m
}

// Возможные значения label outcome для AdvisoryRequests.
const (
	AdvisoryOutcomeOK       = "ok"
	AdvisoryOutcomeFallback = "fallback"
)

// Snapshot возвращает текущие значения всех счетчиков в виде
// отсортированных строк "имя{label=...} значение" для вывода в консоль.
func (m *Metrics) Snapshot() ([]string, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("metrics: failed to gather registry: %w", err)
	}

	var lines []string
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			name := family.GetName()
			for _, label := range metric.GetLabel() {
				if label.GetName() == "service" {
					continue
				}
				name += fmt.Sprintf("{%s=%q}", label.GetName(), label.GetValue())
			}
			lines = append(lines, fmt.Sprintf("%s %v", name, metric.GetCounter().GetValue()))
		}
	}

	sort.Strings(lines)
	return lines, nil
}
