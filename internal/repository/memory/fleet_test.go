package memory

import (
	"context"
	"testing"

	"github.com/shenikar/ambulance_dispatch_system/internal/models"
	"github.com/shenikar/ambulance_dispatch_system/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAmbulance(id string) *models.Ambulance {
	return &models.Ambulance{
		ID:            id,
		VehicleNumber: "RJ-14-" + id,
		DriverName:    "Водитель " + id,
		DriverPhone:   "+91-0000000000",
		Status:        models.AmbulanceAvailable,
		Latitude:      26.9,
		Longitude:     75.8,
	}
}

func TestFleetRepository_ListPreservesRegistrationOrder(t *testing.T) {
	// Подготовка
	repo := NewFleetRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newAmbulance("a2")))
	require.NoError(t, repo.Create(ctx, newAmbulance("a1")))
	require.NoError(t, repo.Create(ctx, newAmbulance("a3")))

	// Действие
	ambulances, err := repo.List(ctx)

	// Проверки
	require.NoError(t, err)
	require.Len(t, ambulances, 3)
	assert.Equal(t, "a2", ambulances[0].ID)
	assert.Equal(t, "a1", ambulances[1].ID)
	assert.Equal(t, "a3", ambulances[2].ID)
}

func TestFleetRepository_CreateGeneratesID(t *testing.T) {
	// Подготовка
	repo := NewFleetRepository()
	ctx := context.Background()
	ambulance := newAmbulance("")

	// Действие
	err := repo.Create(ctx, ambulance)

	// Проверки
	require.NoError(t, err)
	assert.NotEmpty(t, ambulance.ID)

	got, err := repo.GetByID(ctx, ambulance.ID)
	require.NoError(t, err)
	assert.Equal(t, ambulance.ID, got.ID)
}

func TestFleetRepository_SnapshotsAreIsolated(t *testing.T) {
	// Подготовка
	repo := NewFleetRepository()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, newAmbulance("a1")))

	// Действие: мутируем полученный снапшот
	got, err := repo.GetByID(ctx, "a1")
	require.NoError(t, err)
	got.Status = models.AmbulanceOffline
	got.Latitude = 0

	// Проверки: состояние хранилища не изменилось
	fresh, err := repo.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, models.AmbulanceAvailable, fresh.Status)
	assert.Equal(t, 26.9, fresh.Latitude)
}

func TestFleetRepository_SetStatus(t *testing.T) {
	// Подготовка
	repo := NewFleetRepository()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, newAmbulance("a1")))

	// Действие
	updated, err := repo.SetStatus(ctx, "a1", models.AmbulanceBusy)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.AmbulanceBusy, updated.Status)

	got, err := repo.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, models.AmbulanceBusy, got.Status)
}

func TestFleetRepository_SetPositionKeepsStatus(t *testing.T) {
	// Подготовка
	repo := NewFleetRepository()
	ctx := context.Background()
	ambulance := newAmbulance("a1")
	ambulance.Status = models.AmbulanceBusy
	require.NoError(t, repo.Create(ctx, ambulance))

	// Действие
	updated, err := repo.SetPosition(ctx, "a1", 26.95, 75.85)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 26.95, updated.Latitude)
	assert.Equal(t, 75.85, updated.Longitude)
	assert.Equal(t, models.AmbulanceBusy, updated.Status)
}

func TestFleetRepository_NotFound(t *testing.T) {
	repo := NewFleetRepository()
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, service.ErrAmbulanceNotFound)

	_, err = repo.SetStatus(ctx, "missing", models.AmbulanceBusy)
	assert.ErrorIs(t, err, service.ErrAmbulanceNotFound)

	_, err = repo.SetPosition(ctx, "missing", 26.9, 75.8)
	assert.ErrorIs(t, err, service.ErrAmbulanceNotFound)
}
