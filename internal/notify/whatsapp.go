package notify

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/m04kA/FDL-AtelierService/internal/domain"
)

// WhatsAppLink строит deep-link к мессенджеру с предзаполненным текстом.
// Ссылка односторонняя, best-effort: ответ не читается.
func WhatsAppLink(number, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(message))
}

// AppointmentMessage собирает текст уведомления о новом агендаменто.
// Дата выводится в локальном формате DD/MM/YYYY.
func AppointmentMessage(ev AppointmentBooked) string {
	var b strings.Builder
	b.WriteString("🔔 *NOVO AGENDAMENTO RECEBIDO*\n\n")
	b.WriteString(fmt.Sprintf("📌 *Protocolo:* %s\n", ev.AppointmentID))
	b.WriteString(fmt.Sprintf("👤 *Cliente:* %s\n", ev.ClientName))
	b.WriteString(fmt.Sprintf("✉️ *E-mail:* %s\n", ev.ClientEmail))
	b.WriteString(fmt.Sprintf("📅 *Data:* %s\n", domain.FormatDisplayDate(ev.Date)))
	b.WriteString(fmt.Sprintf("⏰ *Horário:* %s\n\n", ev.Time))
	b.WriteString("_Notificação automática gerada pela Maison Fio de Linho._")
	return b.String()
}

// OrderMessage собирает текст уведомления о новом заказе с мерками.
func OrderMessage(ev OrderPlaced) string {
	var b strings.Builder
	b.WriteString("🧵 *NOVO PEDIDO DE CONFECÇÃO SOB MEDIDA*\n\n")
	b.WriteString(fmt.Sprintf("📌 *Protocolo:* %s\n", ev.OrderID))
	b.WriteString(fmt.Sprintf("👤 *Cliente:* %s\n", ev.ClientName))
	b.WriteString(fmt.Sprintf("👗 *Peça:* %s\n\n", ev.ClothingType))
	b.WriteString("📏 *Medidas (cm):*\n")
	b.WriteString(fmt.Sprintf("• Peito: %s\n", formatMeasurement(ev.Measurements.Chest)))
	b.WriteString(fmt.Sprintf("• Cintura: %s\n", formatMeasurement(ev.Measurements.Waist)))
	b.WriteString(fmt.Sprintf("• Quadril: %s\n", formatMeasurement(ev.Measurements.Hips)))
	b.WriteString(fmt.Sprintf("• Ombros: %s\n\n", formatMeasurement(ev.Measurements.Shoulders)))
	b.WriteString("_O cliente aguarda contato para validação do design._")
	return b.String()
}

func formatMeasurement(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%g", *v)
}
