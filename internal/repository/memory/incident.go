package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/shenikar/ambulance_dispatch_system/internal/models"
	"github.com/shenikar/ambulance_dispatch_system/internal/service"
)

// IncidentRepository - in-memory хранилище инцидентов. История только
// дополняется, инциденты никогда не удаляются.
type IncidentRepository struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]*models.Incident
}

func NewIncidentRepository() *IncidentRepository {
	return &IncidentRepository{
		byID: make(map[uuid.UUID]*models.Incident),
	}
}

// List возвращает снапшоты всех инцидентов, новые первыми
func (r *IncidentRepository) List(ctx context.Context) ([]*models.Incident, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	incidents := make([]*models.Incident, 0, len(r.byID))
	for _, incident := range r.byID {
		incidents = append(incidents, snapshotIncident(incident))
	}
	sort.Slice(incidents, func(i, j int) bool {
		return incidents[i].CreatedAt.After(incidents[j].CreatedAt)
	})
	return incidents, nil
}

// GetByID возвращает снапшот инцидента по его UUID
func (r *IncidentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	incident, ok := r.byID[id]
	if !ok {
		return nil, service.ErrIncidentNotFound
	}
	return snapshotIncident(incident), nil
}

// Create сохраняет новый инцидент. Нулевой ID заменяется сгенерированным.
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if incident.ID == uuid.Nil {
		incident.ID = uuid.New()
	}
	r.byID[incident.ID] = snapshotIncident(incident)
	return nil
}

// Update применяет частичное обновление: только поля, заданные в update,
// меняются; остальные остаются как были
func (r *IncidentRepository) Update(ctx context.Context, id uuid.UUID, update models.IncidentUpdate) (*models.Incident, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	incident, ok := r.byID[id]
	if !ok {
		return nil, service.ErrIncidentNotFound
	}

	if update.Status != nil {
		incident.Status = *update.Status
	}
	if update.AssignedAmbulanceID != nil {
		ambulanceID := *update.AssignedAmbulanceID
		incident.AssignedAmbulanceID = &ambulanceID
	}
	if update.ETA != nil {
		incident.ETA = *update.ETA
	}
	if update.ResolvedAt != nil {
		resolvedAt := *update.ResolvedAt
		incident.ResolvedAt = &resolvedAt
	}
	if update.Notes != nil {
		incident.Notes = *update.Notes
	}
	return snapshotIncident(incident), nil
}

// CountActive возвращает количество неразрешенных инцидентов
func (r *IncidentRepository) CountActive(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, incident := range r.byID {
		if incident.Status != models.IncidentResolved {
			count++
		}
	}
	return count, nil
}

func snapshotIncident(i *models.Incident) *models.Incident {
	snapshot := *i
	if i.AssignedAmbulanceID != nil {
		ambulanceID := *i.AssignedAmbulanceID
		snapshot.AssignedAmbulanceID = &ambulanceID
	}
	if i.ResolvedAt != nil {
		resolvedAt := *i.ResolvedAt
		snapshot.ResolvedAt = &resolvedAt
	}
	return &snapshot
}
