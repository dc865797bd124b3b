package notify

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Notifier интерфейс доставки исходящих уведомлений.
// Реализации могут открывать deep-link, слать email или просто логировать.
type Notifier interface {
	AppointmentBooked(ev AppointmentBooked) error
	OrderPlaced(ev OrderPlaced) error
}

// WhatsAppNotifier строит deep-link к WhatsApp ателье и выводит его
// в лог/консоль - аналог открытия новой вкладки браузера в исходной
// системе. Одностороннее, best-effort уведомление.
type WhatsAppNotifier struct {
	number string
	log    Logger
}

// NewWhatsAppNotifier создает нотификатор для указанного номера ателье.
func NewWhatsAppNotifier(number string, log Logger) *WhatsAppNotifier {
	return &WhatsAppNotifier{number: number, log: log}
}

// AppointmentBooked публикует ссылку уведомления о новом агендаменто.
func (n *WhatsAppNotifier) AppointmentBooked(ev AppointmentBooked) error {
	link := WhatsAppLink(n.number, AppointmentMessage(ev))
	n.log.Info("notify: appointment booked event_id=%s appointment=%s link=%s",
		ev.EventID, ev.AppointmentID, link)
	return nil
}

// OrderPlaced публикует ссылку уведомления о новом заказе.
func (n *WhatsAppNotifier) OrderPlaced(ev OrderPlaced) error {
	link := WhatsAppLink(n.number, OrderMessage(ev))
	n.log.Info("notify: order placed event_id=%s order=%s link=%s",
		ev.EventID, ev.OrderID, link)
	return nil
}
