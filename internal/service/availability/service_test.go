package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	availabilityRepo "github.com/m04kA/FDL-AtelierService/internal/infra/storage/availability"
	"github.com/m04kA/FDL-AtelierService/internal/service/availability/models"
)

type testLogger struct{}

func (testLogger) Info(string, ...interface{})  {}
func (testLogger) Warn(string, ...interface{})  {}
func (testLogger) Error(string, ...interface{}) {}

type stubMetrics struct {
	published int
	retired   int
}

func (s *stubMetrics) SlotTimePublished()        { s.published++ }
func (s *stubMetrics) SlotTimeRetired(count int) { s.retired += count }

func newService(t *testing.T) (*Service, *stubMetrics) {
	t.Helper()
	metrics := &stubMetrics{}
	return NewService(availabilityRepo.NewRepository(), metrics, testLogger{}), metrics
}

func TestAddSlot_PublishesTime(t *testing.T) {
	ctx := context.Background()
	svc, metrics := newService(t)

	require.NoError(t, svc.AddSlot(ctx, &models.AddSlotRequest{Date: "2026-06-01", Time: "16:30"}))
	require.NoError(t, svc.AddSlot(ctx, &models.AddSlotRequest{Date: "2026-06-01", Time: "16:50"}))

	catalog := svc.ListAll(ctx)
	require.Len(t, catalog.Entries, 1)
	assert.Equal(t, "01/06/2026", catalog.Entries[0].DisplayDate)
	assert.Equal(t, []string{"16:30", "16:50"}, catalog.Entries[0].Times)
	assert.Equal(t, 2, metrics.published)
}

func TestAddSlot_InvalidInput(t *testing.T) {
	ctx := context.Background()
	svc, metrics := newService(t)

	assert.ErrorIs(t, svc.AddSlot(ctx, &models.AddSlotRequest{Date: "2026-06-01", Time: "4pm"}), ErrInvalidInput)
	assert.ErrorIs(t, svc.AddSlot(ctx, &models.AddSlotRequest{Date: "junho", Time: "16:30"}), ErrInvalidInput)
	assert.Zero(t, metrics.published)
}

func TestRemoveTime_MissingPairIsSilentNoop(t *testing.T) {
	ctx := context.Background()
	svc, metrics := newService(t)

	require.NoError(t, svc.RemoveTime(ctx, &models.RemoveTimeRequest{Date: "2026-06-01", Time: "16:30"}))
	assert.Zero(t, metrics.retired)
}

func TestRemoveTime_RetiresTime(t *testing.T) {
	ctx := context.Background()
	svc, metrics := newService(t)
	require.NoError(t, svc.AddSlot(ctx, &models.AddSlotRequest{Date: "2026-06-01", Time: "16:30"}))

	require.NoError(t, svc.RemoveTime(ctx, &models.RemoveTimeRequest{Date: "2026-06-01", Time: "16:30"}))

	assert.Empty(t, svc.ListAll(ctx).Entries)
	assert.Equal(t, 1, metrics.retired)
}

func TestRemoveDate_CountsRetiredTimes(t *testing.T) {
	ctx := context.Background()
	svc, metrics := newService(t)
	require.NoError(t, svc.AddSlot(ctx, &models.AddSlotRequest{Date: "2026-06-01", Time: "16:30"}))
	require.NoError(t, svc.AddSlot(ctx, &models.AddSlotRequest{Date: "2026-06-01", Time: "16:50"}))
	require.NoError(t, svc.AddSlot(ctx, &models.AddSlotRequest{Date: "2026-06-01", Time: "17:10"}))

	require.NoError(t, svc.RemoveDate(ctx, "2026-06-01"))

	assert.Empty(t, svc.ListAll(ctx).Entries)
	assert.Equal(t, 3, metrics.retired)
}

func TestRemoveDate_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	assert.ErrorIs(t, svc.RemoveDate(ctx, "2026-06-01"), ErrDateNotFound)
}

func TestListUpcoming_HidesPastDates(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)
	require.NoError(t, svc.AddSlot(ctx, &models.AddSlotRequest{Date: "2026-05-20", Time: "16:30"}))
	require.NoError(t, svc.AddSlot(ctx, &models.AddSlotRequest{Date: "2026-06-02", Time: "16:30"}))

	now := time.Date(2026, time.June, 1, 12, 0, 0, 0, time.Local)
	upcoming := svc.ListUpcoming(ctx, now)
	require.Len(t, upcoming.Entries, 1)
	assert.Equal(t, "2026-06-02", upcoming.Entries[0].Date)

	// Редактор видит и прошедшие даты
	assert.Len(t, svc.ListAll(ctx).Entries, 2)
}
