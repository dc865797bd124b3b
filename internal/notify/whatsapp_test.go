package notify

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/FDL-AtelierService/internal/domain"
	"github.com/m04kA/FDL-AtelierService/pkg/ptr"
)

func TestWhatsAppLink_EncodesMessage(t *testing.T) {
	link := WhatsAppLink("5571984060628", "Olá, tudo bem? 🔔")

	require.True(t, strings.HasPrefix(link, "https://wa.me/5571984060628?text="))

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "Olá, tudo bem? 🔔", parsed.Query().Get("text"))
}

func TestAppointmentMessage(t *testing.T) {
	msg := AppointmentMessage(AppointmentBooked{
		AppointmentID: "APP-1020",
		ClientName:    "Mariana Costa",
		ClientEmail:   "mariana@exemplo.com",
		Date:          "2026-06-02",
		Time:          "16:30",
	})

	assert.Contains(t, msg, "🔔 *NOVO AGENDAMENTO RECEBIDO*")
	assert.Contains(t, msg, "*Protocolo:* APP-1020")
	assert.Contains(t, msg, "*Cliente:* Mariana Costa")
	assert.Contains(t, msg, "*Data:* 02/06/2026")
	assert.Contains(t, msg, "*Horário:* 16:30")
}

func TestOrderMessage_RendersMissingMeasurementsAsDash(t *testing.T) {
	msg := OrderMessage(OrderPlaced{
		OrderID:      "FDL-A2B3-2026",
		ClientName:   "Carla Mendes",
		ClothingType: "Vestido de Gala",
		Measurements: domain.MeasurementData{
			Chest: ptr.Ptr(92.0),
			Waist: ptr.Ptr(74.5),
		},
	})

	assert.Contains(t, msg, "🧵 *NOVO PEDIDO DE CONFECÇÃO SOB MEDIDA*")
	assert.Contains(t, msg, "*Protocolo:* FDL-A2B3-2026")
	assert.Contains(t, msg, "• Peito: 92")
	assert.Contains(t, msg, "• Cintura: 74.5")
	assert.Contains(t, msg, "• Quadril: -")
	assert.Contains(t, msg, "• Ombros: -")
}

func TestNewAppointmentBooked_AssignsUniqueEventIDs(t *testing.T) {
	appt := &domain.Appointment{
		ID:         "APP-1020",
		ClientName: "Mariana Costa",
		Date:       "2026-06-02",
		Time:       "16:30",
	}

	a := NewAppointmentBooked(appt)
	b := NewAppointmentBooked(appt)

	assert.NotEmpty(t, a.EventID)
	assert.NotEqual(t, a.EventID, b.EventID)
	assert.Equal(t, "APP-1020", a.AppointmentID)
}

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Info(format string, v ...interface{}) {
	l.lines = append(l.lines, format)
}
func (l *recordingLogger) Warn(string, ...interface{})  {}
func (l *recordingLogger) Error(string, ...interface{}) {}

func TestWhatsAppNotifier_LogsDeepLink(t *testing.T) {
	log := &recordingLogger{}
	notifier := NewWhatsAppNotifier("5571984060628", log)

	err := notifier.AppointmentBooked(AppointmentBooked{
		EventID:       "ev-1",
		AppointmentID: "APP-1020",
		Date:          "2026-06-02",
		Time:          "16:30",
	})
	require.NoError(t, err)
	require.Len(t, log.lines, 1)
}
