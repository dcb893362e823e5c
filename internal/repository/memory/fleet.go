package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/shenikar/ambulance_dispatch_system/internal/models"
	"github.com/shenikar/ambulance_dispatch_system/internal/service"
)

// FleetRepository - in-memory хранилище автопарка. Единственный владелец
// состояния машин: наружу отдаются только копии, порядок выдачи List
// совпадает с порядком регистрации.
type FleetRepository struct {
	mu    sync.RWMutex
	byID  map[string]*models.Ambulance
	order []string
}

func NewFleetRepository() *FleetRepository {
	return &FleetRepository{
		byID: make(map[string]*models.Ambulance),
	}
}

// List возвращает снапшоты всех машин в порядке регистрации
func (r *FleetRepository) List(ctx context.Context) ([]*models.Ambulance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ambulances := make([]*models.Ambulance, 0, len(r.order))
	for _, id := range r.order {
		ambulances = append(ambulances, snapshotAmbulance(r.byID[id]))
	}
	return ambulances, nil
}

// GetByID возвращает снапшот машины по её ID
func (r *FleetRepository) GetByID(ctx context.Context, id string) (*models.Ambulance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ambulance, ok := r.byID[id]
	if !ok {
		return nil, service.ErrAmbulanceNotFound
	}
	return snapshotAmbulance(ambulance), nil
}

// Create регистрирует машину. Пустой ID заменяется сгенерированным.
func (r *FleetRepository) Create(ctx context.Context, ambulance *models.Ambulance) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ambulance.ID == "" {
		ambulance.ID = uuid.NewString()
	}
	r.byID[ambulance.ID] = snapshotAmbulance(ambulance)
	r.order = append(r.order, ambulance.ID)
	return nil
}

// SetStatus атомарно меняет статус машины и возвращает её снапшот
func (r *FleetRepository) SetStatus(ctx context.Context, id string, status models.AmbulanceStatus) (*models.Ambulance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ambulance, ok := r.byID[id]
	if !ok {
		return nil, service.ErrAmbulanceNotFound
	}
	ambulance.Status = status
	return snapshotAmbulance(ambulance), nil
}

// SetPosition атомарно меняет позицию машины и возвращает её снапшот.
// Статус не затрагивается: это путь симулятора движения.
func (r *FleetRepository) SetPosition(ctx context.Context, id string, lat, lon float64) (*models.Ambulance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ambulance, ok := r.byID[id]
	if !ok {
		return nil, service.ErrAmbulanceNotFound
	}
	ambulance.Latitude = lat
	ambulance.Longitude = lon
	return snapshotAmbulance(ambulance), nil
}

func snapshotAmbulance(a *models.Ambulance) *models.Ambulance {
	snapshot := *a
	return &snapshot
}
