package service_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/ambulance_dispatch_system/internal/config"
	"github.com/shenikar/ambulance_dispatch_system/internal/models"
	"github.com/shenikar/ambulance_dispatch_system/internal/repository/memory"
	"github.com/shenikar/ambulance_dispatch_system/internal/service"
	"github.com/shenikar/ambulance_dispatch_system/internal/service/mocks"
	webhook_mocks "github.com/shenikar/ambulance_dispatch_system/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestDispatchService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestDispatchService(t *testing.T) (service.DispatchService, *mocks.MockFleetRepository, *mocks.MockIncidentRepository, *webhook_mocks.MockDispatchPublisher) {
	ctrl := gomock.NewController(t)
	fleetMock := mocks.NewMockFleetRepository(ctrl)
	incidentsMock := mocks.NewMockIncidentRepository(ctrl)
	publisherMock := webhook_mocks.NewMockDispatchPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		FallbackEtaMinutes: 15,
		NearestCandidates:  3,
	}

	svc := service.NewDispatchService(fleetMock, incidentsMock, logger, cfg, publisherMock)
	return svc, fleetMock, incidentsMock, publisherMock
}

func availableAmbulance(id string, lat, lon float64) *models.Ambulance {
	return &models.Ambulance{
		ID:            id,
		VehicleNumber: "RJ-14-" + id,
		DriverName:    "Водитель " + id,
		DriverPhone:   "+91-0000000000",
		Status:        models.AmbulanceAvailable,
		Latitude:      lat,
		Longitude:     lon,
	}
}

func TestHandleSos_AssignsNearestAmbulance(t *testing.T) {
	// Подготовка
	svc, fleetMock, incidentsMock, publisherMock := newTestDispatchService(t)
	ctx := context.Background()
	lat, lon := 26.9, 75.8

	near := availableAmbulance("a-near", 26.905, 75.8)
	mid := availableAmbulance("a-mid", 26.93, 75.8)
	far := availableAmbulance("a-far", 26.97, 75.85)

	// Хранилище отдает машины в произвольном порядке
	fleetMock.EXPECT().
		List(ctx).
		Return([]*models.Ambulance{far, near, mid}, nil).
		Times(1)

	busyNear := *near
	busyNear.Status = models.AmbulanceBusy
	fleetMock.EXPECT().
		SetStatus(ctx, "a-near", models.AmbulanceBusy).
		Return(&busyNear, nil).
		Times(1)

	incidentID := uuid.New()
	incidentsMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, incident *models.Incident) error {
			incident.ID = incidentID
			return nil
		}).
		Times(1)

	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Return(nil).
		Times(1)

	// Действие
	result, err := svc.HandleSos(ctx, "p1", lat, lon)

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, result.Assigned)
	assert.Equal(t, "a-near", result.Assigned.ID)
	assert.Equal(t, models.AmbulanceBusy, result.Assigned.Status)

	assert.Equal(t, incidentID, result.Incident.ID)
	assert.Equal(t, models.IncidentAssigned, result.Incident.Status)
	require.NotNil(t, result.Incident.AssignedAmbulanceID)
	assert.Equal(t, "a-near", *result.Incident.AssignedAmbulanceID)

	// Кандидаты отсортированы по расстоянию, победитель помечен как assigned
	require.Len(t, result.Nearest, 3)
	assert.Equal(t, "a-near", result.Nearest[0].Ambulance.ID)
	assert.Equal(t, "a-mid", result.Nearest[1].Ambulance.ID)
	assert.Equal(t, "a-far", result.Nearest[2].Ambulance.ID)
	assert.Equal(t, "assigned", result.Nearest[0].EffectiveStatus)
	assert.Equal(t, "available", result.Nearest[1].EffectiveStatus)
	assert.LessOrEqual(t, result.Nearest[0].DistanceKm, result.Nearest[1].DistanceKm)
	assert.LessOrEqual(t, result.Nearest[1].DistanceKm, result.Nearest[2].DistanceKm)

	// ETA инцидента соответствует расчетному ETA победителя
	assert.Equal(t, fmt.Sprintf("%d min", result.Nearest[0].EtaMinutes), result.Incident.ETA)
}

func TestHandleSos_NoAvailableAmbulances_CreatesPendingIncident(t *testing.T) {
	// Подготовка
	svc, fleetMock, incidentsMock, publisherMock := newTestDispatchService(t)
	ctx := context.Background()

	busy := availableAmbulance("a1", 26.9, 75.8)
	busy.Status = models.AmbulanceBusy
	offline := availableAmbulance("a2", 26.91, 75.81)
	offline.Status = models.AmbulanceOffline

	// Ожидания: резервирование не вызывается вовсе
	fleetMock.EXPECT().
		List(ctx).
		Return([]*models.Ambulance{busy, offline}, nil).
		Times(1)

	incidentsMock.EXPECT().
		Create(ctx, gomock.Any()).
		Return(nil).
		Times(1)

	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Return(nil).
		Times(1)

	// Действие
	result, err := svc.HandleSos(ctx, "p2", 26.9, 75.8)

	// Проверки
	require.NoError(t, err)
	assert.Nil(t, result.Assigned)
	assert.Empty(t, result.Nearest)
	assert.Equal(t, models.IncidentPending, result.Incident.Status)
	assert.Nil(t, result.Incident.AssignedAmbulanceID)
	assert.Equal(t, "15 min", result.Incident.ETA)
}

func TestHandleSos_LimitsNearestCandidates(t *testing.T) {
	// Подготовка
	svc, fleetMock, incidentsMock, publisherMock := newTestDispatchService(t)
	ctx := context.Background()

	fleet := []*models.Ambulance{
		availableAmbulance("a1", 26.90, 75.80),
		availableAmbulance("a2", 26.91, 75.80),
		availableAmbulance("a3", 26.92, 75.80),
		availableAmbulance("a4", 26.93, 75.80),
		availableAmbulance("a5", 26.94, 75.80),
	}

	fleetMock.EXPECT().List(ctx).Return(fleet, nil).Times(1)
	fleetMock.EXPECT().
		SetStatus(ctx, "a1", models.AmbulanceBusy).
		Return(fleet[0], nil).
		Times(1)
	incidentsMock.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	result, err := svc.HandleSos(ctx, "p3", 26.90, 75.80)

	// Проверки
	require.NoError(t, err)
	assert.Len(t, result.Nearest, 3)
}

func TestHandleSos_PublishFailureDoesNotFailRequest(t *testing.T) {
	// Подготовка
	svc, fleetMock, incidentsMock, publisherMock := newTestDispatchService(t)
	ctx := context.Background()

	fleetMock.EXPECT().List(ctx).Return([]*models.Ambulance{}, nil).Times(1)
	incidentsMock.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Return(fmt.Errorf("redis недоступен")).
		Times(1)

	// Действие
	result, err := svc.HandleSos(ctx, "p1", 26.9, 75.8)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.IncidentPending, result.Incident.Status)
}

func TestHandleSos_CreateFailureReleasesReservedAmbulance(t *testing.T) {
	// Подготовка
	svc, fleetMock, incidentsMock, _ := newTestDispatchService(t)
	ctx := context.Background()

	near := availableAmbulance("a1", 26.905, 75.8)
	fleetMock.EXPECT().
		List(ctx).
		Return([]*models.Ambulance{near}, nil).
		Times(1)

	busyNear := *near
	busyNear.Status = models.AmbulanceBusy
	fleetMock.EXPECT().
		SetStatus(ctx, "a1", models.AmbulanceBusy).
		Return(&busyNear, nil).
		Times(1)

	incidentsMock.EXPECT().
		Create(ctx, gomock.Any()).
		Return(fmt.Errorf("хранилище недоступно")).
		Times(1)

	// Ожидания: резерв снимается, машина возвращается в available
	fleetMock.EXPECT().
		SetStatus(ctx, "a1", models.AmbulanceAvailable).
		Return(near, nil).
		Times(1)

	// Действие
	result, err := svc.HandleSos(ctx, "p1", 26.9, 75.8)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, result)
}

func TestAssign_ReleasesPreviouslyAssignedAmbulance(t *testing.T) {
	// Подготовка
	svc, fleetMock, incidentsMock, publisherMock := newTestDispatchService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	prevID := "a-old"

	incident := &models.Incident{
		ID:                  incidentID,
		PatientID:           "p1",
		Latitude:            26.9,
		Longitude:           75.8,
		Status:              models.IncidentAssigned,
		AssignedAmbulanceID: &prevID,
	}
	newAmbulance := availableAmbulance("a-new", 26.92, 75.81)

	// Ожидания
	incidentsMock.EXPECT().GetByID(ctx, incidentID).Return(incident, nil).Times(1)
	fleetMock.EXPECT().GetByID(ctx, "a-new").Return(newAmbulance, nil).Times(1)

	busyNew := *newAmbulance
	busyNew.Status = models.AmbulanceBusy
	fleetMock.EXPECT().
		SetStatus(ctx, "a-new", models.AmbulanceBusy).
		Return(&busyNew, nil).
		Times(1)

	// Старая машина возвращается в available
	fleetMock.EXPECT().
		SetStatus(ctx, "a-old", models.AmbulanceAvailable).
		Return(availableAmbulance("a-old", 26.9, 75.8), nil).
		Times(1)

	incidentsMock.EXPECT().
		Update(ctx, incidentID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, update models.IncidentUpdate) (*models.Incident, error) {
			require.NotNil(t, update.Status)
			assert.Equal(t, models.IncidentAssigned, *update.Status)
			require.NotNil(t, update.AssignedAmbulanceID)
			assert.Equal(t, "a-new", *update.AssignedAmbulanceID)
			require.NotNil(t, update.ETA)

			updated := *incident
			updated.AssignedAmbulanceID = update.AssignedAmbulanceID
			updated.ETA = *update.ETA
			return &updated, nil
		}).
		Times(1)

	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	result, err := svc.Assign(ctx, incidentID, "a-new")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "a-new", result.Ambulance.ID)
	assert.Equal(t, models.AmbulanceBusy, result.Ambulance.Status)
	assert.NotEmpty(t, result.ETA)
	assert.Equal(t, result.ETA, result.Incident.ETA)
}

func TestAssign_SameAmbulance_NoRelease(t *testing.T) {
	// Подготовка
	svc, fleetMock, incidentsMock, publisherMock := newTestDispatchService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	sameID := "a1"

	incident := &models.Incident{
		ID:                  incidentID,
		PatientID:           "p1",
		Latitude:            26.9,
		Longitude:           75.8,
		Status:              models.IncidentAssigned,
		AssignedAmbulanceID: &sameID,
	}
	ambulance := availableAmbulance("a1", 26.91, 75.8)

	// Ожидания: SetStatus(available) для прежней машины не вызывается
	incidentsMock.EXPECT().GetByID(ctx, incidentID).Return(incident, nil).Times(1)
	fleetMock.EXPECT().GetByID(ctx, "a1").Return(ambulance, nil).Times(1)
	fleetMock.EXPECT().
		SetStatus(ctx, "a1", models.AmbulanceBusy).
		Return(ambulance, nil).
		Times(1)
	incidentsMock.EXPECT().
		Update(ctx, incidentID, gomock.Any()).
		Return(incident, nil).
		Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	_, err := svc.Assign(ctx, incidentID, "a1")

	// Проверки
	require.NoError(t, err)
}

func TestAssign_IncidentNotFound(t *testing.T) {
	// Подготовка
	svc, _, incidentsMock, _ := newTestDispatchService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	// Ожидания
	incidentsMock.EXPECT().
		GetByID(ctx, incidentID).
		Return(nil, service.ErrIncidentNotFound).
		Times(1)

	// Действие
	result, err := svc.Assign(ctx, incidentID, "a1")

	// Проверки
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, service.ErrIncidentNotFound)
}

func TestAssign_AmbulanceNotFound(t *testing.T) {
	// Подготовка
	svc, fleetMock, incidentsMock, _ := newTestDispatchService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	incident := &models.Incident{
		ID:        incidentID,
		PatientID: "p1",
		Status:    models.IncidentPending,
	}

	// Ожидания
	incidentsMock.EXPECT().GetByID(ctx, incidentID).Return(incident, nil).Times(1)
	fleetMock.EXPECT().
		GetByID(ctx, "missing").
		Return(nil, service.ErrAmbulanceNotFound).
		Times(1)

	// Действие
	result, err := svc.Assign(ctx, incidentID, "missing")

	// Проверки
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, service.ErrAmbulanceNotFound)
}

func TestResolve_ReleasesAssignedAmbulance(t *testing.T) {
	// Подготовка
	svc, fleetMock, incidentsMock, publisherMock := newTestDispatchService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	ambulanceID := "a1"

	incident := &models.Incident{
		ID:                  incidentID,
		PatientID:           "p1",
		Status:              models.IncidentEnRoute,
		AssignedAmbulanceID: &ambulanceID,
	}

	// Ожидания
	incidentsMock.EXPECT().GetByID(ctx, incidentID).Return(incident, nil).Times(1)
	fleetMock.EXPECT().
		SetStatus(ctx, "a1", models.AmbulanceAvailable).
		Return(availableAmbulance("a1", 26.9, 75.8), nil).
		Times(1)

	incidentsMock.EXPECT().
		Update(ctx, incidentID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, update models.IncidentUpdate) (*models.Incident, error) {
			require.NotNil(t, update.Status)
			assert.Equal(t, models.IncidentResolved, *update.Status)
			require.NotNil(t, update.ResolvedAt)

			updated := *incident
			updated.Status = *update.Status
			updated.ResolvedAt = update.ResolvedAt
			return &updated, nil
		}).
		Times(1)

	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	resolved, err := svc.Resolve(ctx, incidentID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.IncidentResolved, resolved.Status)
	assert.NotNil(t, resolved.ResolvedAt)
}

func TestResolve_WithoutAssignedAmbulance(t *testing.T) {
	// Подготовка
	svc, _, incidentsMock, publisherMock := newTestDispatchService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	incident := &models.Incident{
		ID:        incidentID,
		PatientID: "p2",
		Status:    models.IncidentPending,
	}

	// Ожидания: освобождать нечего, SetStatus не вызывается
	incidentsMock.EXPECT().GetByID(ctx, incidentID).Return(incident, nil).Times(1)
	incidentsMock.EXPECT().
		Update(ctx, incidentID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, update models.IncidentUpdate) (*models.Incident, error) {
			updated := *incident
			updated.Status = *update.Status
			updated.ResolvedAt = update.ResolvedAt
			return &updated, nil
		}).
		Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	resolved, err := svc.Resolve(ctx, incidentID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.IncidentResolved, resolved.Status)
}

func TestResolve_IncidentNotFound(t *testing.T) {
	// Подготовка
	svc, _, incidentsMock, _ := newTestDispatchService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	// Ожидания
	incidentsMock.EXPECT().
		GetByID(ctx, incidentID).
		Return(nil, service.ErrIncidentNotFound).
		Times(1)

	// Действие
	resolved, err := svc.Resolve(ctx, incidentID)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, resolved)
	assert.ErrorIs(t, err, service.ErrIncidentNotFound)
}

func TestResolve_RepeatedResolveIsIdempotent(t *testing.T) {
	// Подготовка: живые in-memory хранилища, чтобы проверить итоговое состояние
	fleetRepo := memory.NewFleetRepository()
	incidentsRepo := memory.NewIncidentRepository()

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		FallbackEtaMinutes: 15,
		NearestCandidates:  3,
	}
	svc := service.NewDispatchService(fleetRepo, incidentsRepo, logger, cfg, nil)

	ctx := context.Background()
	ambulance := availableAmbulance("a1", 26.91, 75.8)
	ambulance.Status = models.AmbulanceBusy
	require.NoError(t, fleetRepo.Create(ctx, ambulance))

	ambulanceID := "a1"
	incident := &models.Incident{
		PatientID:           "p1",
		Latitude:            26.9,
		Longitude:           75.8,
		Status:              models.IncidentEnRoute,
		AssignedAmbulanceID: &ambulanceID,
		CreatedAt:           time.Now(),
	}
	require.NoError(t, incidentsRepo.Create(ctx, incident))

	// Действие: инцидент разрешается дважды
	first, err := svc.Resolve(ctx, incident.ID)
	require.NoError(t, err)
	second, err := svc.Resolve(ctx, incident.ID)

	// Проверки: повторный вызов безопасен, статусы не откатываются
	require.NoError(t, err)
	assert.Equal(t, models.IncidentResolved, first.Status)
	assert.Equal(t, models.IncidentResolved, second.Status)
	require.NotNil(t, second.ResolvedAt)
	require.NotNil(t, second.AssignedAmbulanceID)
	assert.Equal(t, "a1", *second.AssignedAmbulanceID)

	released, err := fleetRepo.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, models.AmbulanceAvailable, released.Status)

	stored, err := incidentsRepo.GetByID(ctx, incident.ID)
	require.NoError(t, err)
	assert.Equal(t, models.IncidentResolved, stored.Status)
}

func TestGetStats(t *testing.T) {
	// Подготовка
	svc, fleetMock, incidentsMock, _ := newTestDispatchService(t)
	ctx := context.Background()

	busy := availableAmbulance("a2", 26.9, 75.8)
	busy.Status = models.AmbulanceBusy

	// Ожидания
	incidentsMock.EXPECT().CountActive(ctx).Return(2, nil).Times(1)
	fleetMock.EXPECT().
		List(ctx).
		Return([]*models.Ambulance{availableAmbulance("a1", 26.9, 75.8), busy}, nil).
		Times(1)

	// Действие
	stats, err := svc.GetStats(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 2, stats.ActiveIncidents)
	assert.Equal(t, 1, stats.AvailableAmbulances)
}
