package order

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/FDL-AtelierService/internal/domain"
)

func sampleOrder(id string) *domain.Order {
	return &domain.Order{
		ID:           id,
		ClientName:   "Ana Beatriz",
		ClientEmail:  "ana@exemplo.com",
		Items:        []string{"Terno de Linho Italiano"},
		ClothingType: "Terno Completo",
		Status:       domain.StatusPending,
		Date:         time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreate_RejectsDuplicateIDCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	_, err := repo.Create(ctx, sampleOrder("FDL-A2B3-2026"))
	require.NoError(t, err)

	dup := sampleOrder("fdl-a2b3-2026")
	_, err = repo.Create(ctx, dup)
	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.Len(t, repo.List(ctx), 1)
}

func TestGetByCode_CaseInsensitive(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	_, err := repo.Create(ctx, sampleOrder("FDL-A2B3-2026"))
	require.NoError(t, err)

	got, err := repo.GetByCode(ctx, "fdl-A2b3-2026")
	require.NoError(t, err)
	assert.Equal(t, "FDL-A2B3-2026", got.ID)

	_, err = repo.GetByCode(ctx, "FDL-ZZZZ-2026")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	_, err := repo.Create(ctx, sampleOrder("FDL-A2B3-2026"))
	require.NoError(t, err)

	require.NoError(t, repo.UpdateStatus(ctx, "FDL-A2B3-2026", domain.StatusReady))
	got, err := repo.GetByCode(ctx, "FDL-A2B3-2026")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusReady, got.Status)

	// Откат назад легален
	require.NoError(t, repo.UpdateStatus(ctx, "FDL-A2B3-2026", domain.StatusMeasured))

	assert.ErrorIs(t, repo.UpdateStatus(ctx, "FDL-A2B3-2026", "shipped"), ErrInvalidStatus)
	assert.ErrorIs(t, repo.UpdateStatus(ctx, "FDL-ZZZZ-2026", domain.StatusReady), ErrOrderNotFound)
}

func TestList_ReturnsIndependentCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	_, err := repo.Create(ctx, sampleOrder("FDL-A2B3-2026"))
	require.NoError(t, err)

	list := repo.List(ctx)
	require.Len(t, list, 1)
	list[0].Items[0] = "mutated"
	list[0].Status = domain.StatusDelivered

	fresh, err := repo.GetByCode(ctx, "FDL-A2B3-2026")
	require.NoError(t, err)
	assert.Equal(t, "Terno de Linho Italiano", fresh.Items[0])
	assert.Equal(t, domain.StatusPending, fresh.Status)
}
