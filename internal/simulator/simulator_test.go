package simulator

import (
	"bytes"
	"context"
	"testing"

	"github.com/shenikar/ambulance_dispatch_system/internal/config"
	"github.com/shenikar/ambulance_dispatch_system/internal/models"
	"github.com/shenikar/ambulance_dispatch_system/internal/repository/memory"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSimulator(t *testing.T) (*FleetSimulator, *memory.FleetRepository) {
	fleet := memory.NewFleetRepository()

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		SimulatorMaxStep:  0.001,
		ServiceAreaMinLat: 26.82,
		ServiceAreaMaxLat: 26.98,
		ServiceAreaMinLon: 75.72,
		ServiceAreaMaxLon: 75.88,
	}

	return NewFleetSimulator(fleet, logger, cfg), fleet
}

func seedAmbulance(t *testing.T, fleet *memory.FleetRepository, id string, status models.AmbulanceStatus, lat, lon float64) {
	t.Helper()
	err := fleet.Create(context.Background(), &models.Ambulance{
		ID:            id,
		VehicleNumber: "RJ-14-" + id,
		DriverName:    "Водитель " + id,
		DriverPhone:   "+91-0000000000",
		Status:        status,
		Latitude:      lat,
		Longitude:     lon,
	})
	require.NoError(t, err)
}

func TestMoveFleet_OnlyAvailableAmbulancesMove(t *testing.T) {
	// Подготовка
	sim, fleet := newTestSimulator(t)
	ctx := context.Background()
	seedAmbulance(t, fleet, "a1", models.AmbulanceAvailable, 26.9, 75.8)
	seedAmbulance(t, fleet, "a2", models.AmbulanceBusy, 26.9, 75.8)
	seedAmbulance(t, fleet, "a3", models.AmbulanceOffline, 26.9, 75.8)

	// Действие: достаточно шагов, чтобы свободная машина точно сдвинулась
	for i := 0; i < 20; i++ {
		sim.moveFleet(ctx)
	}

	// Проверки
	free, err := fleet.GetByID(ctx, "a1")
	require.NoError(t, err)
	moved := free.Latitude != 26.9 || free.Longitude != 75.8
	assert.True(t, moved, "available ambulance should have moved")
	assert.Equal(t, models.AmbulanceAvailable, free.Status)

	busy, err := fleet.GetByID(ctx, "a2")
	require.NoError(t, err)
	assert.Equal(t, 26.9, busy.Latitude)
	assert.Equal(t, 75.8, busy.Longitude)

	offline, err := fleet.GetByID(ctx, "a3")
	require.NoError(t, err)
	assert.Equal(t, 26.9, offline.Latitude)
	assert.Equal(t, 75.8, offline.Longitude)
}

func TestMoveFleet_StepIsBounded(t *testing.T) {
	// Подготовка
	sim, fleet := newTestSimulator(t)
	ctx := context.Background()
	seedAmbulance(t, fleet, "a1", models.AmbulanceAvailable, 26.9, 75.8)

	// Действие
	sim.moveFleet(ctx)

	// Проверки: один шаг не больше SimulatorMaxStep по каждой оси
	got, err := fleet.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.InDelta(t, 26.9, got.Latitude, 0.001)
	assert.InDelta(t, 75.8, got.Longitude, 0.001)
}

func TestMoveFleet_ClampsToServiceArea(t *testing.T) {
	// Подготовка: машина стоит ровно на границе зоны
	sim, fleet := newTestSimulator(t)
	ctx := context.Background()
	seedAmbulance(t, fleet, "a1", models.AmbulanceAvailable, 26.98, 75.88)

	// Действие
	for i := 0; i < 50; i++ {
		sim.moveFleet(ctx)
	}

	// Проверки: границы не нарушены ни на одном шаге
	got, err := fleet.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, got.Latitude, 26.82)
	assert.LessOrEqual(t, got.Latitude, 26.98)
	assert.GreaterOrEqual(t, got.Longitude, 75.72)
	assert.LessOrEqual(t, got.Longitude, 75.88)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 26.82, clamp(26.80, 26.82, 26.98))
	assert.Equal(t, 26.98, clamp(27.00, 26.82, 26.98))
	assert.Equal(t, 26.90, clamp(26.90, 26.82, 26.98))
}
