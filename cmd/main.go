package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m04kA/FDL-AtelierService/internal/app"
	"github.com/m04kA/FDL-AtelierService/internal/config"
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
	"github.com/m04kA/FDL-AtelierService/pkg/logger"
	"github.com/m04kA/FDL-AtelierService/pkg/memtx"
	"github.com/m04kA/FDL-AtelierService/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting FDL-AtelierService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var recorder app.Recorder = app.NoopRecorder{}
	if cfg.Metrics.Enabled {
		recorder = app.NewMetricsRecorder(metrics.New(cfg.Metrics.ServiceName))
		log.Info("Metrics enabled for service %s", cfg.Metrics.ServiceName)
	}

	// Инициализируем реестры в памяти и менеджер критической секции
	availabilityRepository := availabilityRepo.NewRepository()
	appointmentRepository := appointmentRepo.NewRepository()
	orderRepository := orderRepo.NewRepository()
	txManager := memtx.NewTransactionManager()
	codeGenerator := codes.New()

	// Клиент консультационного сервиса: без ключа работает в режиме
	// запасных текстов, сетевые вызовы не выполняются
	advisor := advisoryClient.NewClient(
		cfg.Advisory.BaseURL,
		cfg.Advisory.APIKey,
		cfg.Advisory.Model,
		cfg.Advisory.Timeout(),
		log,
		recorder,
	)
	if cfg.Advisory.APIKey == "" {
		log.Warn("Advisory API key is empty, styling advice falls back to canned texts")
	}

	// Нотификатор WhatsApp с учетом отправленных уведомлений
	notifier := app.NewCountingNotifier(
		notify.NewWhatsAppNotifier(cfg.Atelier.WhatsAppNumber, log),
		recorder,
	)

	// Сервисы и операции
	availabilitySvc := availabilityService.NewService(availabilityRepository, recorder, log)
	ordersSvc := ordersService.NewService(orderRepository, recorder, log)
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, log)

	bookingUC := bookAppointmentUC.NewUseCase(
		appointmentRepository,
		availabilityRepository,
		txManager,
		codeGenerator,
		notifier,
		recorder,
		log,
	)
	intakeUC := submitMeasurementsUC.NewUseCase(
		orderRepository,
		txManager,
		codeGenerator,
		advisor,
		notifier,
		recorder,
		log,
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Демонстрационные данные
	if cfg.Seed.Enabled {
		if err := app.Seed(ctx, availabilityRepository, orderRepository, appointmentRepository, cfg.Seed, time.Now()); err != nil {
			log.Fatal("Failed to seed demo data: %v", err)
		}
		log.Info("Demo data seeded (%d days ahead, %d slot times per weekday)",
			cfg.Seed.DaysAhead, len(cfg.Seed.Times))
	}

	console := app.New(os.Stdin, os.Stdout, app.Deps{
		Availability: availabilitySvc,
		Orders:       ordersSvc,
		Appointments: appointmentsSvc,
		Booking:      bookingUC,
		Intake:       intakeUC,
		Advisor:      advisor,
		Recorder:     recorder,
		Config:       cfg,
		Logger:       log,
	})

	log.Info("Console application ready")
	console.Run(ctx)
	log.Info("FDL-AtelierService stopped")
}
