package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/ambulance_dispatch_system/internal/models"
	"github.com/shenikar/ambulance_dispatch_system/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIncident(patientID string, createdAt time.Time) *models.Incident {
	return &models.Incident{
		PatientID: patientID,
		Latitude:  26.9,
		Longitude: 75.8,
		Status:    models.IncidentPending,
		CreatedAt: createdAt,
		ETA:       "15 min",
	}
}

func TestIncidentRepository_CreateGeneratesID(t *testing.T) {
	// Подготовка
	repo := NewIncidentRepository()
	ctx := context.Background()
	incident := newIncident("p1", time.Now())

	// Действие
	err := repo.Create(ctx, incident)

	// Проверки
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, incident.ID)

	got, err := repo.GetByID(ctx, incident.ID)
	require.NoError(t, err)
	assert.Equal(t, "p1", got.PatientID)
}

func TestIncidentRepository_ListNewestFirst(t *testing.T) {
	// Подготовка
	repo := NewIncidentRepository()
	ctx := context.Background()
	now := time.Now()

	oldest := newIncident("p1", now.Add(-2*time.Hour))
	middle := newIncident("p2", now.Add(-time.Hour))
	newest := newIncident("p3", now)

	require.NoError(t, repo.Create(ctx, oldest))
	require.NoError(t, repo.Create(ctx, newest))
	require.NoError(t, repo.Create(ctx, middle))

	// Действие
	incidents, err := repo.List(ctx)

	// Проверки
	require.NoError(t, err)
	require.Len(t, incidents, 3)
	assert.Equal(t, "p3", incidents[0].PatientID)
	assert.Equal(t, "p2", incidents[1].PatientID)
	assert.Equal(t, "p1", incidents[2].PatientID)
}

func TestIncidentRepository_UpdateAppliesOnlyGivenFields(t *testing.T) {
	// Подготовка
	repo := NewIncidentRepository()
	ctx := context.Background()
	incident := newIncident("p1", time.Now())
	require.NoError(t, repo.Create(ctx, incident))

	ambulanceID := "a1"
	statusAssigned := models.IncidentAssigned
	eta := "4 min"

	// Действие: частичное обновление
	updated, err := repo.Update(ctx, incident.ID, models.IncidentUpdate{
		Status:              &statusAssigned,
		AssignedAmbulanceID: &ambulanceID,
		ETA:                 &eta,
	})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.IncidentAssigned, updated.Status)
	require.NotNil(t, updated.AssignedAmbulanceID)
	assert.Equal(t, "a1", *updated.AssignedAmbulanceID)
	assert.Equal(t, "4 min", updated.ETA)
	// Незаданные поля не тронуты
	assert.Equal(t, "p1", updated.PatientID)
	assert.Nil(t, updated.ResolvedAt)

	// Второе обновление не затирает назначение
	statusEnRoute := models.IncidentEnRoute
	updated, err = repo.Update(ctx, incident.ID, models.IncidentUpdate{Status: &statusEnRoute})
	require.NoError(t, err)
	assert.Equal(t, models.IncidentEnRoute, updated.Status)
	require.NotNil(t, updated.AssignedAmbulanceID)
	assert.Equal(t, "a1", *updated.AssignedAmbulanceID)
}

func TestIncidentRepository_UpdateNotFound(t *testing.T) {
	repo := NewIncidentRepository()
	ctx := context.Background()

	status := models.IncidentResolved
	_, err := repo.Update(ctx, uuid.New(), models.IncidentUpdate{Status: &status})
	assert.ErrorIs(t, err, service.ErrIncidentNotFound)
}

func TestIncidentRepository_CountActive(t *testing.T) {
	// Подготовка
	repo := NewIncidentRepository()
	ctx := context.Background()

	pending := newIncident("p1", time.Now())
	assigned := newIncident("p2", time.Now())
	assigned.Status = models.IncidentAssigned
	resolved := newIncident("p3", time.Now())
	resolved.Status = models.IncidentResolved

	require.NoError(t, repo.Create(ctx, pending))
	require.NoError(t, repo.Create(ctx, assigned))
	require.NoError(t, repo.Create(ctx, resolved))

	// Действие
	count, err := repo.CountActive(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestIncidentRepository_SnapshotsAreIsolated(t *testing.T) {
	// Подготовка
	repo := NewIncidentRepository()
	ctx := context.Background()
	ambulanceID := "a1"
	incident := newIncident("p1", time.Now())
	incident.AssignedAmbulanceID = &ambulanceID
	require.NoError(t, repo.Create(ctx, incident))

	// Действие: мутируем снапшот и указатель внутри него
	got, err := repo.GetByID(ctx, incident.ID)
	require.NoError(t, err)
	got.Status = models.IncidentResolved
	*got.AssignedAmbulanceID = "hacked"

	// Проверки
	fresh, err := repo.GetByID(ctx, incident.ID)
	require.NoError(t, err)
	assert.Equal(t, models.IncidentPending, fresh.Status)
	assert.Equal(t, "a1", *fresh.AssignedAmbulanceID)
}
