package app

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/FDL-AtelierService/internal/config"
	"github.com/m04kA/FDL-AtelierService/internal/domain"
	"github.com/m04kA/FDL-AtelierService/pkg/types"
)

// SeedCatalog интерфейс каталога доступности для посева
type SeedCatalog interface {
	AddSlot(ctx context.Context, date string, t types.TimeString) error
	RemoveTime(ctx context.Context, date string, t types.TimeString) error
}

// SeedOrders интерфейс реестра заказов для посева
type SeedOrders interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
}

// SeedAppointments интерфейс реестра записей для посева
type SeedAppointments interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
}

// Seed наполняет реестры демонстрационными данными: витрина слотов на
// ближайшие будние дни, один заказ в производстве и одна подтвержденная
// запись на первый доступный день.
func Seed(
	ctx context.Context,
	catalog SeedCatalog,
	orders SeedOrders,
	appointments SeedAppointments,
	cfg config.SeedConfig,
	now time.Time,
) error {
	slotTimes := make([]types.TimeString, 0, len(cfg.Times))
	for _, raw := range cfg.Times {
		t, err := types.NewTimeStringFromString(raw)
		if err != nil {
			return fmt.Errorf("seed: invalid slot time %q: %w", raw, err)
		}
		slotTimes = append(slotTimes, t)
	}

	firstDate := ""
	for d := 0; d < cfg.DaysAhead; d++ {
		day := now.AddDate(0, 0, d)
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		date := day.Format(domain.DateFormat)
		if firstDate == "" {
			firstDate = date
		}
		for _, t := range slotTimes {
			if err := catalog.AddSlot(ctx, date, t); err != nil {
				return fmt.Errorf("seed: failed to publish slot %s %s: %w", date, t, err)
			}
		}
	}

	orderDate := time.Date(2024, time.May, 15, 0, 0, 0, 0, time.Local)
	if _, err := orders.Create(ctx, &domain.Order{
		ID:           "FL-2024-001",
		ClientName:   "Ana Beatriz",
		ClientEmail:  "ana.beatriz@exemplo.com",
		Items:        []string{"Terno de Linho Italiano"},
		ClothingType: "Terno Completo",
		Status:       domain.StatusInProduction,
		Date:         orderDate,
		CreatedAt:    orderDate,
	}); err != nil {
		return fmt.Errorf("seed: failed to create order: %w", err)
	}

	if firstDate == "" {
		return nil
	}

	apptTime := types.TimeString("16:30")
	if _, err := appointments.Create(ctx, &domain.Appointment{
		ID:          "APP-1020",
		ClientName:  "Mariana Costa",
		ClientEmail: "mariana.costa@exemplo.com",
		Date:        firstDate,
		Time:        apptTime,
		Status:      domain.AppointmentConfirmed,
		CreatedAt:   now,
	}); err != nil {
		return fmt.Errorf("seed: failed to create appointment: %w", err)
	}

	// Слот занятой записи снимается с витрины
	if err := catalog.RemoveTime(ctx, firstDate, apptTime); err != nil {
		return fmt.Errorf("seed: failed to retire slot %s %s: %w", firstDate, apptTime, err)
	}

	return nil
}
