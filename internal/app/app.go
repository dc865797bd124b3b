package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/FDL-AtelierService/internal/config"
	"github.com/m04kA/FDL-AtelierService/internal/domain"
	availabilitySvc "github.com/m04kA/FDL-AtelierService/internal/service/availability"
	appointmentsSvc "github.com/m04kA/FDL-AtelierService/internal/service/appointments"
	ordersSvc "github.com/m04kA/FDL-AtelierService/internal/service/orders"
	"github.com/m04kA/FDL-AtelierService/internal/usecase/book_appointment"
	"github.com/m04kA/FDL-AtelierService/internal/usecase/submit_measurements"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Advisor интерфейс консьерж-сервиса стилистических рекомендаций
type Advisor interface {
	GetStylingAdvice(ctx context.Context, data domain.MeasurementData, occasion, preference string) string
}

// App консольное приложение ателье. Все состояние навигации живет
// в контроллере; представления переключаются явным переходом между
// экранами.
type App struct {
	in  *bufio.Scanner
	out io.Writer
	log Logger

	availability *availabilitySvc.Service
	orders       *ordersSvc.Service
	appointments *appointmentsSvc.Service
	booking      *book_appointment.UseCase
	intake       *submit_measurements.UseCase
	advisor      Advisor
	recorder     Recorder
	cfg          *config.Config

	role Role
	view View

	clock func() time.Time
	delay func(time.Duration)
}

// Deps зависимости приложения
type Deps struct {
	Availability *availabilitySvc.Service
	Orders       *ordersSvc.Service
	Appointments *appointmentsSvc.Service
	Booking      *book_appointment.UseCase
	Intake       *submit_measurements.UseCase
	Advisor      Advisor
	Recorder     Recorder
	Config       *config.Config
	Logger       Logger
}

// New создает приложение поверх указанных потоков ввода/вывода.
func New(in io.Reader, out io.Writer, deps Deps) *App {
	return &App{
		in:           bufio.NewScanner(in),
		out:          out,
		log:          deps.Logger,
		availability: deps.Availability,
		orders:       deps.Orders,
		appointments: deps.Appointments,
		booking:      deps.Booking,
		intake:       deps.Intake,
		advisor:      deps.Advisor,
		recorder:     deps.Recorder,
		cfg:          deps.Config,
		role:         RoleClient,
		view:         ViewHome,
		clock:        time.Now,
		delay:        time.Sleep,
	}
}

// Run запускает главный цикл приложения. Паника любого экрана не
// роняет процесс: пользователю показывается сообщение о техработах,
// приложение возвращается на главный экран.
func (a *App) Run(ctx context.Context) {
	a.printf("\n✂  Maison Fio de Linho · Alfaiataria Sob Medida\n")
	for a.view != ViewExit {
		if ctx.Err() != nil {
			return
		}
		a.step(ctx)
	}
	a.printf("\nAté breve. A maison agradece a visita.\n")
}

func (a *App) step(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			a.log.Error("app: panic on view %s: %v", a.view, r)
			a.printf("\nEstamos em manutenção momentânea. Tente novamente em instantes.\n")
			a.view = ViewHome
		}
	}()

	switch a.view {
	case ViewHome:
		a.viewHome()
	case ViewCollection:
		a.viewCollection()
	case ViewMeasurements:
		a.viewMeasurements(ctx)
	case ViewConcierge:
		a.viewConcierge(ctx)
	case ViewStatus:
		a.viewStatus(ctx)
	case ViewBooking:
		a.viewBooking(ctx)
	case ViewLogin:
		a.viewLogin()
	case ViewAdmin:
		a.viewAdmin(ctx)
	case ViewExit:
	default:
		a.view = ViewHome
	}
}

func (a *App) viewHome() {
	a.printf("\n═══════════════════════════════════════\n")
	a.printf("  1. Coleção\n")
	a.printf("  2. Medidas e Pedido\n")
	a.printf("  3. Concierge de Estilo\n")
	a.printf("  4. Acompanhar Pedido\n")
	a.printf("  5. Agendar Visita\n")
	a.printf("  6. Área Administrativa\n")
	a.printf("  0. Sair\n")

	switch a.readLine("Escolha uma opção: ") {
	case "1":
		a.view = ViewCollection
	case "2":
		a.view = ViewMeasurements
	case "3":
		a.view = ViewConcierge
	case "4":
		a.view = ViewStatus
	case "5":
		a.view = ViewBooking
	case "6":
		if a.role == RoleAdmin {
			a.view = ViewAdmin
		} else {
			a.view = ViewLogin
		}
	case "0":
		a.view = ViewExit
	default:
		a.printf("Opção inválida.\n")
	}
}

// printf пишет форматированную строку в поток вывода приложения
func (a *App) printf(format string, v ...interface{}) {
	fmt.Fprintf(a.out, format, v...)
}

// readLine выводит приглашение и читает одну строку ввода
func (a *App) readLine(prompt string) string {
	a.printf("%s", prompt)
	if !a.in.Scan() {
		a.view = ViewExit
		return ""
	}
	return strings.TrimSpace(a.in.Text())
}

// readIndex читает номер пункта в диапазоне [1, max]; 0 означает отмену
func (a *App) readIndex(prompt string, max int) (int, bool) {
	raw := a.readLine(prompt)
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 || n > max {
		a.printf("Opção inválida.\n")
		return 0, false
	}
	if n == 0 {
		return 0, false
	}
	return n, true
}

// readOptionalFloat читает необязательную мерку; пустой ввод дает nil
func (a *App) readOptionalFloat(prompt string) *float64 {
	raw := a.readLine(prompt)
	if raw == "" {
		return nil
	}
	raw = strings.ReplaceAll(raw, ",", ".")
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		a.printf("Valor ignorado: %q não é um número.\n", raw)
		return nil
	}
	return &v
}
