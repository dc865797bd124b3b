package app

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/FDL-AtelierService/internal/config"
	"github.com/m04kA/FDL-AtelierService/internal/domain"
	appointmentRepo "github.com/m04kA/FDL-AtelierService/internal/infra/storage/appointment"
	availabilityRepo "github.com/m04kA/FDL-AtelierService/internal/infra/storage/availability"
	orderRepo "github.com/m04kA/FDL-AtelierService/internal/infra/storage/order"
	advisoryClient "github.com/m04kA/FDL-AtelierService/internal/integrations/advisory"
	"github.com/m04kA/FDL-AtelierService/internal/notify"
	appointmentsService "github.com/m04kA/FDL-AtelierService/internal/service/appointments"
	availabilityService "github.com/m04kA/FDL-AtelierService/internal/service/availability"
	ordersService "github.com/m04kA/FDL-AtelierService/internal/service/orders"
	bookAppointmentUC "github.com/m04kA/FDL-AtelierService/internal/usecase/book_appointment"
	submitMeasurementsUC "github.com/m04kA/FDL-AtelierService/internal/usecase/submit_measurements"
	"github.com/m04kA/FDL-AtelierService/pkg/codes"
	"github.com/m04kA/FDL-AtelierService/pkg/memtx"
	"github.com/m04kA/FDL-AtelierService/pkg/metrics"
)

type testLogger struct{}

func (testLogger) Info(string, ...interface{})  {}
func (testLogger) Warn(string, ...interface{})  {}
func (testLogger) Error(string, ...interface{}) {}

type consoleFixture struct {
	app          *App
	out          *bytes.Buffer
	catalog      *availabilityRepo.Repository
	orders       *orderRepo.Repository
	appointments *appointmentRepo.Repository
}

// newConsole собирает приложение на полном стеке с in-memory реестрами,
// сценарным вводом и мгновенными косметическими паузами.
func newConsole(t *testing.T, script ...string) *consoleFixture {
	t.Helper()

	cfg := &config.Config{
		Atelier: config.AtelierConfig{
			WhatsAppNumber: "5571984060628",
			AdminEmail:     "atelier@fiodelinho.com.br",
		},
	}

	catalog := availabilityRepo.NewRepository()
	orders := orderRepo.NewRepository()
	appointments := appointmentRepo.NewRepository()
	txManager := memtx.NewTransactionManager()
	log := testLogger{}
	recorder := NewMetricsRecorder(metrics.New("test"))

	advisor := advisoryClient.NewClient("http://127.0.0.1:0", "", "gemini-2.5-flash",
		time.Second, log, recorder)
	notifier := NewCountingNotifier(notify.NewWhatsAppNotifier(cfg.Atelier.WhatsAppNumber, log), recorder)

	booking := bookAppointmentUC.NewUseCase(appointments, catalog, txManager,
		codes.New(), notifier, recorder, log)
	intake := submitMeasurementsUC.NewUseCase(orders, txManager, codes.New(),
		advisor, notifier, recorder, log)

	out := &bytes.Buffer{}
	console := New(strings.NewReader(strings.Join(script, "\n")+"\n"), out, Deps{
		Availability: availabilityService.NewService(catalog, recorder, log),
		Orders:       ordersService.NewService(orders, recorder, log),
		Appointments: appointmentsService.NewService(appointments, log),
		Booking:      booking,
		Intake:       intake,
		Advisor:      advisor,
		Recorder:     recorder,
		Config:       cfg,
		Logger:       log,
	})
	console.clock = func() time.Time {
		return time.Date(2026, time.June, 1, 10, 0, 0, 0, time.Local)
	}
	console.delay = func(time.Duration) {}

	return &consoleFixture{
		app:          console,
		out:          out,
		catalog:      catalog,
		orders:       orders,
		appointments: appointments,
	}
}

func TestRun_BookingFlowEndToEnd(t *testing.T) {
	ctx := context.Background()
	f := newConsole(t,
		"5",               // agendar visita
		"1",               // primeira data
		"1",               // primeiro horário
		"Ana",             // nome
		"ana@exemplo.com", // email
		"",                // voltar
		"0",               // sair
	)
	require.NoError(t, f.catalog.AddSlot(ctx, "2026-06-02", "16:30"))
	require.NoError(t, f.catalog.AddSlot(ctx, "2026-06-02", "16:50"))

	f.app.Run(ctx)

	output := f.out.String()
	assert.Contains(t, output, "Visita confirmada!")
	assert.Contains(t, output, "02/06/2026")

	list := f.appointments.List(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, "Ana", list[0].ClientName)

	// Занятое время снято с витрины
	slot, err := f.catalog.GetByDate(ctx, "2026-06-02")
	require.NoError(t, err)
	assert.Len(t, slot.Times, 1)
}

func TestRun_TrackerDistinguishesNotFound(t *testing.T) {
	ctx := context.Background()
	f := newConsole(t,
		"4",             // acompanhar pedido
		"FDL-XXXX-2026", // código inexistente
		"4",             // acompanhar de novo
		"fl-2024-001",   // код существующего заказа, поиск без учета регистра
		"",              // voltar
		"0",             // sair
	)
	_, err := f.orders.Create(ctx, &domain.Order{
		ID:         "FL-2024-001",
		ClientName: "Ana Beatriz",
		Status:     domain.StatusInProduction,
		Date:       time.Date(2024, time.May, 15, 0, 0, 0, 0, time.Local),
	})
	require.NoError(t, err)

	f.app.Run(ctx)

	output := f.out.String()
	assert.Contains(t, output, "Pedido não encontrado")
	assert.Contains(t, output, "FL-2024-001 · Ana Beatriz")
	assert.Contains(t, output, "Costura e Ajustes")
}

func TestRun_AdminRequiresAtelierEmail(t *testing.T) {
	ctx := context.Background()
	f := newConsole(t,
		"6",                         // área administrativa
		"curioso@exemplo.com",       // чужой email отклоняется
		"6",                         // повторная попытка
		"atelier@fiodelinho.com.br", // email ателье
		"0",                        // encerrar sessão
		"0",                        // sair
	)

	f.app.Run(ctx)

	output := f.out.String()
	assert.Contains(t, output, "Acesso restrito")
	assert.Contains(t, output, "Painel do Ateliê")
}

func TestRun_MeasurementIntakeWithBlankContacts(t *testing.T) {
	ctx := context.Background()
	f := newConsole(t,
		"2", // medidas e pedido
		"",  // nome em branco
		"",  // email em branco
		"",  // tipo de peça em branco
		"",  // pescoço
		"96", // peito
		"80", // cintura
		"",  // quadril
		"",  // manga
		"",  // ombros
		"",  // altura
		"",  // peso
		"",  // voltar
		"0", // sair
	)

	f.app.Run(ctx)

	output := f.out.String()
	assert.Contains(t, output, "Pedido FDL-")

	list := f.orders.List(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, domain.DefaultClientName, list[0].ClientName)
	assert.Equal(t, domain.StatusPending, list[0].Status)
}

func TestRun_PanicRecoversToHome(t *testing.T) {
	f := newConsole(t, "0")
	f.app.advisor = nil // вызов консьержа паникует
	f.app.view = ViewConcierge
	f.app.in = bufio.NewScanner(strings.NewReader("festa\nclássico\n\n\n0\n"))

	f.app.Run(context.Background())

	output := f.out.String()
	assert.Contains(t, output, "manutenção momentânea")
	assert.Contains(t, output, "Maison Fio de Linho")
}
