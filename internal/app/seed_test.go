package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/FDL-AtelierService/internal/config"
	"github.com/m04kA/FDL-AtelierService/internal/domain"
	appointmentRepo "github.com/m04kA/FDL-AtelierService/internal/infra/storage/appointment"
	availabilityRepo "github.com/m04kA/FDL-AtelierService/internal/infra/storage/availability"
	orderRepo "github.com/m04kA/FDL-AtelierService/internal/infra/storage/order"
)

func TestSeed_PublishesWeekdaySlotsOnly(t *testing.T) {
	ctx := context.Background()
	catalog := availabilityRepo.NewRepository()
	orders := orderRepo.NewRepository()
	appointments := appointmentRepo.NewRepository()

	// Понедельник: за 7 дней вперед попадают 5 будних дней
	monday := time.Date(2026, time.June, 1, 10, 0, 0, 0, time.Local)
	cfg := config.SeedConfig{
		Enabled:   true,
		DaysAhead: 7,
		Times:     []string{"16:30", "16:50", "17:10", "17:30"},
	}

	require.NoError(t, Seed(ctx, catalog, orders, appointments, cfg, monday))

	slots := catalog.ListAll(ctx)
	require.Len(t, slots, 5)
	for _, slot := range slots {
		date, err := domain.ParseDate(slot.Date)
		require.NoError(t, err)
		wd := date.Weekday()
		assert.NotEqual(t, time.Saturday, wd)
		assert.NotEqual(t, time.Sunday, wd)
	}

	// У первого дня слот 16:30 занят демонстрационной записью
	assert.Len(t, slots[0].Times, 3)
	assert.Len(t, slots[1].Times, 4)
}

func TestSeed_CreatesDemoOrderAndAppointment(t *testing.T) {
	ctx := context.Background()
	catalog := availabilityRepo.NewRepository()
	orders := orderRepo.NewRepository()
	appointments := appointmentRepo.NewRepository()

	now := time.Date(2026, time.June, 1, 10, 0, 0, 0, time.Local)
	cfg := config.SeedConfig{Enabled: true, DaysAhead: 7, Times: []string{"16:30"}}

	require.NoError(t, Seed(ctx, catalog, orders, appointments, cfg, now))

	order, err := orders.GetByCode(ctx, "FL-2024-001")
	require.NoError(t, err)
	assert.Equal(t, "Ana Beatriz", order.ClientName)
	assert.Equal(t, domain.StatusInProduction, order.Status)

	appt, err := appointments.GetByID(ctx, "APP-1020")
	require.NoError(t, err)
	assert.Equal(t, "Mariana Costa", appt.ClientName)
	assert.Equal(t, "2026-06-01", appt.Date)
	assert.Equal(t, "16:30", appt.Time.String())
	assert.True(t, appt.IsConfirmed())
}

func TestSeed_RejectsInvalidSlotTime(t *testing.T) {
	ctx := context.Background()
	cfg := config.SeedConfig{Enabled: true, DaysAhead: 7, Times: []string{"half past four"}}

	err := Seed(ctx, availabilityRepo.NewRepository(), orderRepo.NewRepository(),
		appointmentRepo.NewRepository(), cfg, time.Now())
	assert.Error(t, err)
}
